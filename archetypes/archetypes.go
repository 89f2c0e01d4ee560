package archetypes

import (
	"github.com/automoto/duality/components"
	"github.com/automoto/duality/tags"
	"github.com/yohamta/donburi"
)

var (
	Frame = newArchetype(
		components.Frame,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
	)
	Key = newArchetype(
		tags.Key,
		components.Key,
		components.Object,
		components.Animation,
		components.Bob,
	)
	Door = newArchetype(
		tags.Door,
		components.Door,
		components.Object,
		components.Animation,
	)
	KeySlot = newArchetype(
		tags.KeySlot,
		components.KeySlot,
		components.Object,
	)
	Sign = newArchetype(
		tags.Sign,
		components.Sign,
		components.Object,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(append([]donburi.IComponentType{}, a.components...), cs...)
	return w.Entry(w.Create(all...))
}
