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

func newObject(entry *donburi.Entry, r gamemath.Rect, tag string) *resolv.Object {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.AddTags(tag)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	return obj
}

func CreateKey(w donburi.World, r gamemath.Rect) *donburi.Entry {
	key := archetypes.Key.Spawn(w)
	addToSpace(w, newObject(key, r, tags.ResolvKey))

	components.Key.SetValue(key, components.KeyData{
		Rest: components.Vector{X: r.X, Y: r.Y},
	})
	components.Animation.SetValue(key, components.NewAnimationData(
		cfg.CharacterAnimations["key"], cfg.TagKey, cfg.Hitbox{Width: r.W, Height: r.H}))
	components.Bob.SetValue(key, components.NewBob(
		float32(cfg.Trigger.KeyBobHeight), float32(cfg.Trigger.KeyBobDuration)))
	return key
}

func CreateDoor(w donburi.World, r gamemath.Rect) *donburi.Entry {
	door := archetypes.Door.Spawn(w)
	addToSpace(w, newObject(door, r, tags.ResolvDoor))

	components.Animation.SetValue(door, components.NewAnimationData(
		cfg.CharacterAnimations["door"], cfg.TagDoorClose, cfg.Hitbox{Width: r.W, Height: r.H}))
	return door
}

// CreateKeySlot spawns the door's key indicator. It is not added to the
// collision space.
func CreateKeySlot(w donburi.World, r gamemath.Rect) *donburi.Entry {
	slot := archetypes.KeySlot.Spawn(w)
	newObject(slot, r, tags.ResolvDecor)
	return slot
}

func CreateSign(w donburi.World, r gamemath.Rect, text string) *donburi.Entry {
	sign := archetypes.Sign.Spawn(w)
	newObject(sign, r, tags.ResolvDecor)
	components.Sign.SetValue(sign, components.SignData{Text: text})
	return sign
}
