package components

import "github.com/yohamta/donburi"

// FrameData is the per-frame context handed to systems: elapsed seconds and
// the input captured for this frame.
type FrameData struct {
	DT    float64
	Input InputSnapshot
}

var Frame = donburi.NewComponentType[FrameData]()
