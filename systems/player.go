package systems

import (
	"github.com/automoto/duality/components"
	cfg "github.com/automoto/duality/config"
	"github.com/automoto/duality/shared/gamemath"
	"github.com/automoto/duality/tags"
	"github.com/yohamta/donburi"
)

// Animator is the animation port the player controller drives.
type Animator interface {
	Play(tag cfg.AnimationTag)
	SetMirror(mirrored bool)
	CurrentTag() cfg.AnimationTag
	SetHitbox(w, h, offsetX, offsetY float64)
	ResetHitbox()
}

var _ Animator = (*components.AnimationData)(nil)

// playerTick carries one controller step.
type playerTick struct {
	p        *components.PlayerData
	anim     Animator
	in       components.InputSnapshot
	dt       float64
	grounded bool
	jumped   bool
}

type movementRule struct {
	name string
	when func(t *playerTick) bool
	do   func(t *playerTick)
	// crouch keeps the reduced hitbox, every other outcome restores it
	keepsHitbox bool
}

// movementRules are evaluated in order and the first match wins.
// Crouching therefore suppresses jumping and walking, and left beats right.
var movementRules = []movementRule{
	{
		name:        "crouch",
		when:        func(t *playerTick) bool { return t.in.IsPressed(cfg.ActionCrouch) && t.grounded },
		do:          crouch,
		keepsHitbox: true,
	},
	{
		name: "jump",
		when: func(t *playerTick) bool { return t.in.IsPressed(cfg.ActionJump) && t.grounded },
		do:   jump,
	},
	{
		name: "move-left",
		when: func(t *playerTick) bool { return t.in.IsPressed(cfg.ActionMoveLeft) },
		do:   func(t *playerTick) { move(t, -1) },
	},
	{
		name: "move-right",
		when: func(t *playerTick) bool { return t.in.IsPressed(cfg.ActionMoveRight) },
		do:   func(t *playerTick) { move(t, 1) },
	},
}

// UpdatePlayer steps every player with the current frame.
func UpdatePlayer(w donburi.World) {
	frame := GetFrame(w)
	tags.Player.Each(w, func(e *donburi.Entry) {
		StepPlayer(components.Player.Get(e), components.Animation.Get(e), frame.Input, frame.DT)
	})
}

// StepPlayer advances one player by dt seconds. It returns the name of the
// movement rule that fired, or "" when none did.
func StepPlayer(p *components.PlayerData, anim Animator, in components.InputSnapshot, dt float64) string {
	if dt < 0 {
		dt = 0
	}
	p.Teleported = false
	p.TeleportCooldown = gamemath.Decay(p.TeleportCooldown, dt)

	t := &playerTick{p: p, anim: anim, in: in, dt: dt, grounded: IsGrounded(p)}

	rule := applyMovementRules(t)
	updateIdle(t)
	tryTeleportInput(t)
	integrate(p, dt)

	return rule
}

// IsGrounded reports whether the player stands on its plane's ground line.
func IsGrounded(p *components.PlayerData) bool {
	return p.Position.Y >= groundY(p.Plane)-cfg.GroundTolerance
}

func groundY(plane gamemath.Plane) float64 {
	return gamemath.GroundY(plane, float64(cfg.C.Height), cfg.Player.HalfHeight())
}

func applyMovementRules(t *playerTick) string {
	for _, r := range movementRules {
		if !r.when(t) {
			continue
		}
		if !r.keepsHitbox {
			t.anim.ResetHitbox()
		}
		r.do(t)
		return r.name
	}
	t.anim.ResetHitbox()
	return ""
}

func crouch(t *playerTick) {
	t.anim.Play(cfg.TagDuck)
	hb := cfg.Player.CrouchHitbox
	t.anim.SetHitbox(hb.Width, hb.Height, hb.OffsetX, hb.OffsetY)
}

func jump(t *playerTick) {
	t.p.SpeedY = cfg.Player.JumpPower
	t.jumped = true
	t.anim.Play(cfg.TagJump)
}

// move shifts the player horizontally; dir is -1 for left, 1 for right.
func move(t *playerTick, dir float64) {
	running := t.in.IsPressed(cfg.ActionRun)
	speed := cfg.Player.WalkSpeed
	if running {
		speed = cfg.Player.RunSpeed
	}
	t.p.Position.X += dir * speed * t.dt

	if t.grounded {
		if running {
			t.anim.Play(cfg.TagRun)
		} else {
			t.anim.Play(cfg.TagWalk)
		}
	}
	t.p.Mirrored = dir < 0
	t.anim.SetMirror(t.p.Mirrored)
}

// updateIdle accumulates stillness and swaps stance for stand once the
// player has been idle long enough. A jump started this tick counts as
// airborne.
func updateIdle(t *playerTick) {
	moving := t.in.IsPressed(cfg.ActionMoveLeft) || t.in.IsPressed(cfg.ActionMoveRight)
	crouching := t.in.IsPressed(cfg.ActionCrouch)
	airborne := !t.grounded || t.jumped

	if moving || crouching || airborne {
		t.p.IdleTimer = 0
		return
	}

	t.p.IdleTimer += t.dt
	if t.p.IdleTimer < cfg.IdleToStand {
		if t.anim.CurrentTag() != cfg.TagStance {
			t.anim.Play(cfg.TagStance)
		}
	} else if t.anim.CurrentTag() != cfg.TagStand {
		t.anim.Play(cfg.TagStand)
	}
}
