// Package leveldata provides TMX level layout parsing.
// It has no dependencies on ebitengine, donburi, or resolv; it is pure data.
package leveldata

import "github.com/automoto/duality/shared/gamemath"

// Layout holds everything a level scene needs from a TMX file.
type Layout struct {
	Name      string // file stem, also the scene name
	Title     string
	MapWidth  int
	MapHeight int
	Start     Start
	Key       gamemath.Rect
	Door      gamemath.Rect
	KeySlot   gamemath.Rect // zero when the level has no indicator
	Signs     []Sign
}

// Start is the player's level-start coordinates.
type Start struct {
	X, Y  float64
	Plane gamemath.Plane
}

// Sign is a decorative marker with optional text.
type Sign struct {
	Bounds gamemath.Rect
	Text   string
}

// HasKeySlot reports whether the level draws a key indicator above the door.
func (l *Layout) HasKeySlot() bool {
	return l.KeySlot.W > 0 && l.KeySlot.H > 0
}
