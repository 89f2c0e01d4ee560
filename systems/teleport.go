package systems

import (
	"github.com/automoto/duality/components"
	cfg "github.com/automoto/duality/config"
	"github.com/automoto/duality/shared/gamemath"
)

func tryTeleportInput(t *playerTick) {
	switch {
	case t.in.IsPressed(cfg.ActionTeleportDown):
		TryTeleport(t.p, t.anim, gamemath.Lower, t.grounded)
	case t.in.IsPressed(cfg.ActionTeleportUp):
		TryTeleport(t.p, t.anim, gamemath.Upper, t.grounded)
	}
}

// TryTeleport moves the player to target if it is grounded, off cooldown
// and not already there. Otherwise nothing changes and false is returned.
// The x coordinate is preserved and y shifts by half the screen height.
func TryTeleport(p *components.PlayerData, anim Animator, target gamemath.Plane, grounded bool) bool {
	if !grounded || p.TeleportCooldown > 0 || target == p.Plane {
		return false
	}

	anim.Play(cfg.TagTeleport)
	p.TeleportCooldown = cfg.Teleport.Cooldown
	p.Position.Y += gamemath.TeleportOffset(p.Plane, target, float64(cfg.C.Height))
	p.Plane = target
	p.SpeedY = 0
	p.Teleported = true
	return true
}
