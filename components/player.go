package components

import (
	"github.com/automoto/duality/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PlayerData is the controller state. Position is the sprite center.
type PlayerData struct {
	Position         Vector
	SpeedY           float64 // positive is down
	Plane            gamemath.Plane
	IdleTimer        float64
	TeleportCooldown float64
	Mirrored         bool
	Teleported       bool // a teleport was applied this tick
}

var Player = donburi.NewComponentType[PlayerData]()
