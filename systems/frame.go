package systems

import (
	"github.com/automoto/duality/components"
	"github.com/yohamta/donburi"
)

// SetFrame stores this frame's elapsed time and input for the systems that
// follow. Negative dt is treated as zero.
func SetFrame(w donburi.World, dt float64, input components.InputSnapshot) {
	if dt < 0 {
		dt = 0
	}
	entry, ok := components.Frame.First(w)
	if !ok {
		return
	}
	components.Frame.SetValue(entry, components.FrameData{DT: dt, Input: input})
}

func GetFrame(w donburi.World) components.FrameData {
	entry, ok := components.Frame.First(w)
	if !ok {
		return components.FrameData{}
	}
	return *components.Frame.Get(entry)
}
