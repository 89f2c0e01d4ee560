package systems

import (
	"github.com/automoto/duality/components"
	cfg "github.com/automoto/duality/config"
	"github.com/automoto/duality/tags"
	"github.com/yohamta/donburi"
)

// ResetLevel restores a level to a fresh attempt. Every piece of mutable
// state is reset together: player kinematics, timers, facing, animation and
// hitbox, the completion flags and each trigger's display variant.
func ResetLevel(w donburi.World) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	level.IsComplete = false
	level.DoorReached = false

	tags.Player.Each(w, func(e *donburi.Entry) {
		components.Player.SetValue(e, components.PlayerData{
			Position: level.Start,
			Plane:    level.StartPlane,
		})
		anim := components.Animation.Get(e)
		anim.ResetHitbox()
		anim.SetMirror(false)
		anim.Play(cfg.TagStance)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Restart()
		}
	})

	tags.Key.Each(w, func(e *donburi.Entry) {
		key := components.Key.Get(e)
		key.Collected = false
		key.BobOffset = 0
		components.Animation.Get(e).Play(cfg.TagKey)
		components.Bob.Get(e).Reset()
	})
	tags.Door.Each(w, func(e *donburi.Entry) {
		components.Door.Get(e).Open = false
		components.Animation.Get(e).Play(cfg.TagDoorClose)
	})
	tags.KeySlot.Each(w, func(e *donburi.Entry) {
		components.KeySlot.Get(e).Filled = false
	})

	SyncObjects(w)
}
