package scenes

import (
	"testing"

	"github.com/automoto/duality/components"
	cfg "github.com/automoto/duality/config"
	"github.com/automoto/duality/shared/gamemath"
	"github.com/automoto/duality/shared/leveldata"
	"github.com/automoto/duality/tags"
	"github.com/yohamta/donburi"
)

const tick = 1.0 / 60

func testLayout() *leveldata.Layout {
	return &leveldata.Layout{
		Name:  "trial",
		Title: "Trial",
		Start: leveldata.Start{X: 60, Y: 279, Plane: gamemath.Upper},
		Key:   gamemath.Rect{X: 380, Y: 540, W: 40, H: 40},
		Door:  gamemath.Rect{X: 706, Y: 174, W: 63, H: 126},
	}
}

type levelHarness struct {
	m        *Manager
	menu     *fakeScene
	level    *LevelScene
	progress *Progress
	calls    []string
}

func newLevelHarness(t *testing.T) *levelHarness {
	t.Helper()
	h := &levelHarness{m: NewManager(), progress: NewProgress()}
	h.menu = &fakeScene{name: MenuSceneName, log: &h.calls}
	h.level = NewLevelScene(h.m, h.progress, testLayout())
	if err := h.m.AddScene(h.menu); err != nil {
		t.Fatal(err)
	}
	if err := h.m.AddScene(h.level); err != nil {
		t.Fatal(err)
	}
	if err := h.m.SwitchTo("trial"); err != nil {
		t.Fatal(err)
	}
	return h
}

func (h *levelHarness) player(t *testing.T) *components.PlayerData {
	t.Helper()
	e, ok := tags.Player.First(h.level.World())
	if !ok {
		t.Fatal("no player")
	}
	return components.Player.Get(e)
}

func (h *levelHarness) state(t *testing.T) *components.LevelData {
	t.Helper()
	e, ok := components.Level.First(h.level.World())
	if !ok {
		t.Fatal("no level")
	}
	return components.Level.Get(e)
}

func (h *levelHarness) put(t *testing.T, x, y float64, plane gamemath.Plane) {
	t.Helper()
	p := h.player(t)
	p.Position = components.Vector{X: x, Y: y}
	p.Plane = plane
}

func firstTrigger(t *testing.T, w donburi.World, tag *donburi.ComponentType[donburi.Tag]) *donburi.Entry {
	t.Helper()
	e, ok := tag.First(w)
	if !ok {
		t.Fatalf("no %s", tag.Name())
	}
	return e
}

func TestLevelEnterStartsFresh(t *testing.T) {
	h := newLevelHarness(t)
	p := h.player(t)
	want := components.Vector{X: 60, Y: 279}
	if p.Position != want || p.Plane != gamemath.Upper {
		t.Fatalf("start = %+v on %v, want %+v on upper", p.Position, p.Plane, want)
	}
	if h.state(t).IsComplete {
		t.Fatal("fresh level already complete")
	}
}

func TestLevelCompletionReturnsToMenuAndResets(t *testing.T) {
	h := newLevelHarness(t)
	w := h.level.World()

	h.put(t, 400, 579, gamemath.Lower)
	if err := h.m.Update(Frame{DT: tick}); err != nil {
		t.Fatal(err)
	}
	if !h.state(t).IsComplete {
		t.Fatal("key not collected")
	}
	if h.m.Current() != h.level {
		t.Fatal("left the level before reaching the door")
	}

	h.put(t, 737, 279, gamemath.Upper)
	if err := h.m.Update(Frame{DT: tick}); err != nil {
		t.Fatal(err)
	}

	if h.m.Current() != h.menu {
		t.Fatalf("current = %s, want menu", h.m.Current().Name())
	}
	if !h.progress.Completed("trial") {
		t.Error("completion not recorded")
	}

	lvl := h.state(t)
	if lvl.IsComplete || lvl.DoorReached {
		t.Error("level flags not reset")
	}
	p := h.player(t)
	if p.Position != lvl.Start || p.Plane != gamemath.Upper || p.SpeedY != 0 {
		t.Errorf("player not back at start: %+v", *p)
	}
	if components.Key.Get(firstTrigger(t, w, tags.Key)).Collected {
		t.Error("key still collected")
	}
	if components.Door.Get(firstTrigger(t, w, tags.Door)).Open {
		t.Error("door still open")
	}
}

func TestLockedDoorDoesNotFinishLevel(t *testing.T) {
	h := newLevelHarness(t)
	h.put(t, 737, 279, gamemath.Upper)
	if err := h.m.Update(Frame{DT: tick}); err != nil {
		t.Fatal(err)
	}
	if h.m.Current() != h.level {
		t.Error("locked door ended the level")
	}
	if h.progress.Completed("trial") {
		t.Error("locked door recorded completion")
	}
}

func TestCancelReturnsToMenu(t *testing.T) {
	h := newLevelHarness(t)
	before := h.player(t).Position

	in := components.Pressed(cfg.ActionCancel, cfg.ActionMoveRight)
	if err := h.m.Update(Frame{DT: tick, Input: in}); err != nil {
		t.Fatal(err)
	}
	if h.m.Current() != h.menu {
		t.Fatal("cancel did not open the menu")
	}
	if h.player(t).Position != before {
		t.Error("level advanced on the cancel frame")
	}
}

func TestReenteringLevelDiscardsProgress(t *testing.T) {
	h := newLevelHarness(t)
	h.put(t, 400, 579, gamemath.Lower)
	_ = h.m.Update(Frame{DT: tick})
	if !h.state(t).IsComplete {
		t.Fatal("key not collected")
	}

	_ = h.m.SwitchTo(MenuSceneName)
	_ = h.m.SwitchTo("trial")

	if h.state(t).IsComplete {
		t.Error("level kept its key after re-entry")
	}
	if p := h.player(t); p.Plane != gamemath.Upper || p.Position != h.state(t).Start {
		t.Errorf("player not at start after re-entry: %+v", *p)
	}
}

func TestKeyHeldFromMenuIsIgnoredUntilReleased(t *testing.T) {
	h := newLevelHarness(t)
	held := components.Pressed(cfg.ActionJump)
	held = held.Advance(held.Current)

	for i := 0; i < 3; i++ {
		if err := h.m.Update(Frame{DT: tick, Input: held}); err != nil {
			t.Fatal(err)
		}
		if y := h.player(t).Position.Y; y != 279 {
			t.Fatalf("frame %d: jumped on a key held from the menu, y = %v", i, y)
		}
	}

	released := held.Advance([cfg.ActionCount]bool{})
	if err := h.m.Update(Frame{DT: tick, Input: released}); err != nil {
		t.Fatal(err)
	}
	pressed := released.Advance(components.Pressed(cfg.ActionJump).Current)
	if err := h.m.Update(Frame{DT: tick, Input: pressed}); err != nil {
		t.Fatal(err)
	}
	if y := h.player(t).Position.Y; y >= 279 {
		t.Errorf("fresh jump ignored after release, y = %v", y)
	}
}

func TestFreshPressOnFirstFrameIsKept(t *testing.T) {
	h := newLevelHarness(t)
	if err := h.m.Update(Frame{DT: tick, Input: components.Pressed(cfg.ActionJump)}); err != nil {
		t.Fatal(err)
	}
	if y := h.player(t).Position.Y; y >= 279 {
		t.Errorf("jump pressed on the first frame was dropped, y = %v", y)
	}
}
