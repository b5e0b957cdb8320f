package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/playdead/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// PauseActions are called from PauseUI.Update when a button is clicked.
type PauseActions struct {
	OnResume           func()
	OnRestart          func()
	OnVolume           func(direction int)
	OnToggleMute       func()
	OnToggleFullscreen func()
}

// PauseValues is what the settings rows display.
type PauseValues struct {
	Volume     float64
	Muted      bool
	Fullscreen bool
	Hint       string
}

// PauseUI is the pause overlay: resume and restart buttons plus the
// persisted settings.
type PauseUI struct {
	UI *ebitenui.UI

	actions PauseActions

	volumeLabel     *widget.Label
	muteLabel       *widget.Label
	fullscreenLabel *widget.Label
	hintLabel       *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

var (
	panelColor      = color.RGBA{20, 20, 30, 220}
	labelColor      = color.RGBA{200, 200, 200, 255}
	titleColor      = color.RGBA{255, 255, 255, 255}
	hintColor       = color.RGBA{255, 200, 100, 255}
	buttonIdle      = color.RGBA{60, 60, 80, 255}
	buttonHover     = color.RGBA{80, 80, 110, 255}
	buttonPressed   = color.RGBA{40, 40, 60, 255}
	buttonTextColor = &widget.ButtonTextColor{
		Idle:    color.RGBA{255, 255, 255, 255},
		Hover:   color.RGBA{200, 255, 200, 255},
		Pressed: color.RGBA{150, 200, 150, 255},
	}
)

// NewPauseUI builds the overlay. fonts.Load must have run.
func NewPauseUI(actions PauseActions) *PauseUI {
	ui := &PauseUI{
		actions:    actions,
		titleFace:  fonts.Title.Face(),
		normalFace: fonts.Regular.Face(),
		smallFace:  fonts.Small.Face(),
	}
	ui.buildUI()
	return ui
}

func (ui *PauseUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 10, Bottom: 10, Left: 16, Right: 16}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(ui.label("PAUSED", &ui.titleFace, titleColor))
	actionsRow := ui.row()
	actionsRow.AddChild(ui.button("Resume", 80, run(ui.actions.OnResume)))
	actionsRow.AddChild(ui.button("Restart", 80, run(ui.actions.OnRestart)))
	panel.AddChild(actionsRow)

	ui.volumeLabel = ui.label("", &ui.normalFace, labelColor)
	volumeRow := ui.row()
	volumeRow.AddChild(ui.button("-", 24, ui.volume(-1)))
	volumeRow.AddChild(ui.volumeLabel)
	volumeRow.AddChild(ui.button("+", 24, ui.volume(+1)))
	panel.AddChild(volumeRow)

	ui.muteLabel = ui.label("", &ui.normalFace, labelColor)
	muteRow := ui.row()
	muteRow.AddChild(ui.button("Mute", 80, run(ui.actions.OnToggleMute)))
	muteRow.AddChild(ui.muteLabel)
	panel.AddChild(muteRow)

	ui.fullscreenLabel = ui.label("", &ui.normalFace, labelColor)
	fullscreenRow := ui.row()
	fullscreenRow.AddChild(ui.button("Fullscreen", 80, run(ui.actions.OnToggleFullscreen)))
	fullscreenRow.AddChild(ui.fullscreenLabel)
	panel.AddChild(fullscreenRow)

	ui.hintLabel = ui.label("", &ui.smallFace, hintColor)
	panel.AddChild(ui.hintLabel)

	rootContainer.AddChild(panel)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *PauseUI) row() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
}

func (ui *PauseUI) label(s string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: c}),
	)
}

func (ui *PauseUI) button(s string, minWidth int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(minWidth, 20)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(buttonIdle),
			Hover:   image.NewNineSliceColor(buttonHover),
			Pressed: image.NewNineSliceColor(buttonPressed),
		}),
		widget.ButtonOpts.Text(s, &ui.normalFace, buttonTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// run tolerates unset actions.
func run(f func()) func() {
	return func() {
		if f != nil {
			f()
		}
	}
}

func (ui *PauseUI) volume(direction int) func() {
	return func() {
		if ui.actions.OnVolume != nil {
			ui.actions.OnVolume(direction)
		}
	}
}

// SetValues refreshes the settings rows and the hint line.
func (ui *PauseUI) SetValues(v PauseValues) {
	ui.volumeLabel.Label = VolumeText(v.Volume, v.Muted)
	ui.muteLabel.Label = "Sound: " + OnOff(!v.Muted)
	ui.fullscreenLabel.Label = "Fullscreen: " + OnOff(v.Fullscreen)
	ui.hintLabel.Label = v.Hint
}

func (ui *PauseUI) Update() {
	ui.UI.Update()
}

func (ui *PauseUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}

// VolumeText formats a 0..1 volume as a percentage.
func VolumeText(volume float64, muted bool) string {
	if muted {
		return "Volume: muted"
	}
	return fmt.Sprintf("Volume: %3d%%", int(volume*100+0.5))
}

func OnOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
