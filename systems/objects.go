package systems

import (
	"github.com/automoto/duality/components"
	cfg "github.com/automoto/duality/config"
	"github.com/automoto/duality/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SyncObjects moves the player's collision object to its position and current
// hitbox, then re-buckets every object in the space. Trigger objects never move.
func SyncObjects(w donburi.World) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		hb := components.Animation.Get(e).Hitbox()
		obj := components.Object.Get(e)

		obj.X = p.Position.X - cfg.Player.HalfWidth() + hb.OffsetX
		obj.Y = p.Position.Y - cfg.Player.HalfHeight() + hb.OffsetY
		if obj.W != hb.Width || obj.H != hb.Height {
			obj.W, obj.H = hb.Width, hb.Height
			obj.SetShape(resolv.NewRectangle(0, 0, hb.Width, hb.Height))
		}
	})

	for e := range components.Object.Iter(w) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Update()
		}
	}
}
