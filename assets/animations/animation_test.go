package animations

import "testing"

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation([]int{1, 7, 8, 9}, 8, true)

	want := []int{7, 8, 9, 1, 7}
	for i, w := range want {
		a.Update(0.125)
		if got := a.Frame(); got != w {
			t.Fatalf("step %d: frame = %d, want %d", i, got, w)
		}
	}
	if !a.Looped {
		t.Fatal("expected Looped after wrapping")
	}
}

func TestAnimationFreezesWithoutLoop(t *testing.T) {
	a := NewAnimation([]int{9, 10}, 8, false)
	a.Update(1)
	if got := a.Frame(); got != 10 {
		t.Fatalf("frame = %d, want last frame 10", got)
	}
	a.Restart()
	if got := a.Frame(); got != 9 || a.Looped {
		t.Fatalf("after restart frame = %d looped = %v", got, a.Looped)
	}
}

func TestAnimationSingleFrame(t *testing.T) {
	a := NewAnimation([]int{0}, 8, true)
	a.Update(10)
	if a.Frame() != 0 {
		t.Fatalf("single-frame clip moved to %d", a.Frame())
	}
}
