package systems

import (
	"github.com/automoto/duality/components"
	cfg "github.com/automoto/duality/config"
	"github.com/automoto/duality/shared/gamemath"
)

// integrate applies gravity, the ground clamp and the horizontal screen
// clamp. The ground clamp is skipped on the tick a teleport happened.
func integrate(p *components.PlayerData, dt float64) {
	p.SpeedY += cfg.Player.Gravity * dt
	p.Position.Y += p.SpeedY * dt

	if !p.Teleported {
		if ground := groundY(p.Plane); p.Position.Y > ground {
			p.Position.Y = ground
			p.SpeedY = 0
		}
	}

	halfW := cfg.Player.HalfWidth()
	p.Position.X = gamemath.Clamp(p.Position.X, halfW, float64(cfg.C.Width)-halfW)
}
