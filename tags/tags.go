package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Checkpoint = donburi.NewTag().SetName("Checkpoint")
	Exit       = donburi.NewTag().SetName("Exit")
	DeadZone   = donburi.NewTag().SetName("DeadZone")
)

// Resolv tags for trigger volumes
const (
	ResolvPlayer     = "Player"
	ResolvDeadZone   = "deadzone"
	ResolvCheckpoint = "checkpoint"
	ResolvExit       = "exit"
)
