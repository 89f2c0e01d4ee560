package animations

// Animation steps through a list of sheet indices at a fixed rate.
type Animation struct {
	Frames  []int
	FPS     float64
	Loop    bool   // false freezes on the last frame
	Looped  bool   // reached the end at least once since Restart
	elapsed float64
	index   int
}

func (a *Animation) Update(dt float64) {
	if a.FPS <= 0 || len(a.Frames) < 2 || dt <= 0 {
		return
	}
	a.elapsed += dt
	step := 1 / a.FPS
	for a.elapsed >= step {
		a.elapsed -= step
		a.index++
		if a.index >= len(a.Frames) {
			a.Looped = true
			if a.Loop {
				a.index = 0
			} else {
				a.index = len(a.Frames) - 1
				a.elapsed = 0
				return
			}
		}
	}
}

func (a *Animation) Frame() int {
	if len(a.Frames) == 0 {
		return 0
	}
	return a.Frames[a.index]
}

func (a *Animation) Restart() {
	a.index = 0
	a.elapsed = 0
	a.Looped = false
}

func NewAnimation(frames []int, fps float64, loop bool) *Animation {
	return &Animation{
		Frames: append([]int(nil), frames...),
		FPS:    fps,
		Loop:   loop,
	}
}
