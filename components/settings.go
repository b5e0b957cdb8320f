package components

import "github.com/yohamta/donburi"

// SettingsData is the live copy of the persisted player options.
type SettingsData struct {
	SFXVolume  float64
	Muted      bool
	Fullscreen bool
	Debug      bool
}

var Settings = donburi.NewComponentType[SettingsData]()
