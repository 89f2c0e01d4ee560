package factory

import (
	"github.com/automoto/duality/archetypes"
	"github.com/automoto/duality/components"
	cfg "github.com/automoto/duality/config"
	"github.com/automoto/duality/shared/gamemath"
	"github.com/automoto/duality/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateLevel populates w with everything a level attempt needs: the frame
// context, collision space, level state, player and trigger entities.
func CreateLevel(w donburi.World, layout *leveldata.Layout) *donburi.Entry {
	CreateFrame(w)
	CreateSpace(w, cfg.C.Width, cfg.C.Height)

	startX := gamemath.Clamp(layout.Start.X,
		cfg.Player.HalfWidth(), float64(cfg.C.Width)-cfg.Player.HalfWidth())
	startY := gamemath.GroundY(layout.Start.Plane, float64(cfg.C.Height), cfg.Player.HalfHeight())

	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{
		Name:       layout.Name,
		Title:      layout.Title,
		Start:      components.Vector{X: startX, Y: startY},
		StartPlane: layout.Start.Plane,
	})

	CreatePlayer(w, startX, layout.Start.Plane)
	CreateKey(w, layout.Key)
	CreateDoor(w, layout.Door)
	if layout.HasKeySlot() {
		CreateKeySlot(w, layout.KeySlot)
	}
	for _, s := range layout.Signs {
		CreateSign(w, s.Bounds, s.Text)
	}

	return level
}
