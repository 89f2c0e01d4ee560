package factory

import (
	"github.com/automoto/duality/archetypes"
	"github.com/automoto/duality/components"
	cfg "github.com/automoto/duality/config"
	"github.com/automoto/duality/shared/gamemath"
	"github.com/automoto/duality/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player standing on plane at x.
func CreatePlayer(w donburi.World, x float64, plane gamemath.Plane) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	y := gamemath.GroundY(plane, float64(cfg.C.Height), cfg.Player.HalfHeight())
	components.Player.SetValue(player, components.PlayerData{
		Position: components.Vector{X: x, Y: y},
		Plane:    plane,
	})

	hitbox := cfg.Player.DefaultHitbox()
	obj := resolv.NewObject(x-cfg.Player.HalfWidth(), y-cfg.Player.HalfHeight(), hitbox.Width, hitbox.Height)
	obj.SetShape(resolv.NewRectangle(0, 0, hitbox.Width, hitbox.Height))
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Animation.SetValue(player, components.NewAnimationData(
		cfg.CharacterAnimations["player"], cfg.TagStance, hitbox))

	return player
}
