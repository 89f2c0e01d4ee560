package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// BobData moves an entity up and down between 0 and -Height forever.
type BobData struct {
	Up     *gween.Tween
	Down   *gween.Tween
	rising bool
}

func NewBob(height, halfCycle float32) BobData {
	return BobData{
		Up:     gween.New(0, -height, halfCycle, ease.InOutSine),
		Down:   gween.New(-height, 0, halfCycle, ease.InOutSine),
		rising: true,
	}
}

// Update advances the active leg and returns the current offset.
func (b *BobData) Update(dt float32) float32 {
	leg := b.Down
	if b.rising {
		leg = b.Up
	}
	offset, finished := leg.Update(dt)
	if finished {
		leg.Reset()
		b.rising = !b.rising
	}
	return offset
}

func (b *BobData) Reset() {
	b.Up.Reset()
	b.Down.Reset()
	b.rising = true
}

var Bob = donburi.NewComponentType[BobData]()
