package components

import (
	"github.com/automoto/duality/shared/gamemath"
	"github.com/yohamta/donburi"
)

// LevelData holds the completion state of one level attempt.
type LevelData struct {
	Name        string
	Title       string
	IsComplete  bool // key collected, door unlocked
	DoorReached bool // player entered the open door this tick
	Start       Vector
	StartPlane  gamemath.Plane
}

var Level = donburi.NewComponentType[LevelData]()
