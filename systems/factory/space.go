package factory

import (
	"github.com/automoto/duality/archetypes"
	"github.com/automoto/duality/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Cell size of the trigger space. Candidates are confirmed with an exact
// rectangle test, so this only trades memory for query width.
const spaceCellSize = 16

func CreateSpace(w donburi.World, width, height int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, spaceCellSize, spaceCellSize)
	components.Space.Set(space, spaceData)
	return space
}

// CreateFrame spawns the per-frame context singleton.
func CreateFrame(w donburi.World) *donburi.Entry {
	return archetypes.Frame.Spawn(w)
}

func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
