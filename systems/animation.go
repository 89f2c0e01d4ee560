package systems

import (
	"github.com/automoto/duality/components"
	"github.com/automoto/duality/tags"
	"github.com/yohamta/donburi"
)

// UpdateAnimations advances every active animation clock.
func UpdateAnimations(w donburi.World) {
	dt := GetFrame(w).DT
	for e := range components.Animation.Iter(w) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update(dt)
		}
	}
}

// UpdateKeyBob floats uncollected keys up and down. Collision bounds stay
// at the key's resting position.
func UpdateKeyBob(w donburi.World) {
	dt := float32(GetFrame(w).DT)
	tags.Key.Each(w, func(e *donburi.Entry) {
		key := components.Key.Get(e)
		if key.Collected {
			key.BobOffset = 0
			return
		}
		key.BobOffset = float64(components.Bob.Get(e).Update(dt))
	})
}
