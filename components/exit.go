package components

import "github.com/yohamta/donburi"

type ExitData struct {
	Activated bool
}

var Exit = donburi.NewComponentType[ExitData]()
