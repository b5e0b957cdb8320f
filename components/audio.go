package components

import (
	"github.com/automoto/playdead/shared/playstate"
	"github.com/yohamta/donburi"
)

// AudioData queues cues for the audio system (singleton component)
type AudioData struct {
	PendingSFX []playstate.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
