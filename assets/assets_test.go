package assets

import (
	"testing"

	"github.com/automoto/duality/shared/gamemath"
)

func TestEmbeddedLevels(t *testing.T) {
	layouts, err := LoadLevels()
	if err != nil {
		t.Fatalf("load levels: %v", err)
	}
	if len(layouts) != 2 {
		t.Fatalf("got %d levels, want 2", len(layouts))
	}
	if layouts[0].Name != "level1" || layouts[1].Name != "level2" {
		t.Fatalf("levels out of order: %s, %s", layouts[0].Name, layouts[1].Name)
	}

	for _, l := range layouts {
		t.Run(l.Name, func(t *testing.T) {
			if l.MapWidth != 800 || l.MapHeight != 600 {
				t.Errorf("map size %dx%d, want 800x600", l.MapWidth, l.MapHeight)
			}
			keyPlane := gamemath.PlaneAt(l.Key.Y, 600)
			doorPlane := gamemath.PlaneAt(l.Door.Y, 600)
			if keyPlane == doorPlane {
				t.Errorf("key and door both on %v plane", keyPlane)
			}
			if !l.HasKeySlot() {
				t.Error("missing key slot")
			}
			if l.Title == l.Name {
				t.Error("missing title")
			}
		})
	}
}
