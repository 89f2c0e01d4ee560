package scenes

import (
	"errors"
	"reflect"
	"testing"

	"github.com/automoto/duality/components"
	cfg "github.com/automoto/duality/config"
	"github.com/hajimehoshi/ebiten/v2"
)

type fakeScene struct {
	name   string
	log    *[]string
	inputs int
	err    error
}

func (s *fakeScene) Name() string { return s.name }
func (s *fakeScene) OnEnter()     { *s.log = append(*s.log, "enter "+s.name) }
func (s *fakeScene) OnExit()      { *s.log = append(*s.log, "exit "+s.name) }
func (s *fakeScene) Draw(*ebiten.Image) {
	*s.log = append(*s.log, "draw "+s.name)
}

func (s *fakeScene) Update(Frame) error {
	*s.log = append(*s.log, "update "+s.name)
	return s.err
}

type inputScene struct {
	fakeScene
}

func (s *inputScene) HandleInput(components.InputSnapshot) {
	s.inputs++
}

// plainScene has none of the optional hooks.
type plainScene struct {
	name    string
	updates int
}

func (s *plainScene) Name() string       { return s.name }
func (s *plainScene) Draw(*ebiten.Image) {}

func (s *plainScene) Update(Frame) error {
	s.updates++
	return nil
}

func TestSwitchToRunsExitBeforeEnter(t *testing.T) {
	var calls []string
	m := NewManager()
	a := &fakeScene{name: "a", log: &calls}
	b := &fakeScene{name: "b", log: &calls}
	for _, s := range []Scene{a, b} {
		if err := m.AddScene(s); err != nil {
			t.Fatal(err)
		}
	}

	if err := m.SwitchTo("a"); err != nil {
		t.Fatal(err)
	}
	if err := m.SwitchTo("b"); err != nil {
		t.Fatal(err)
	}

	want := []string{"enter a", "exit a", "enter b"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
	if m.Current() != b {
		t.Errorf("current = %v, want b", m.Current().Name())
	}
}

func TestSwitchToSameSceneReenters(t *testing.T) {
	var calls []string
	m := NewManager()
	a := &fakeScene{name: "a", log: &calls}
	_ = m.AddScene(a)
	_ = m.SwitchTo("a")
	_ = m.SwitchTo("a")

	want := []string{"enter a", "exit a", "enter a"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestRegistrationErrors(t *testing.T) {
	var calls []string
	m := NewManager()
	a := &fakeScene{name: "a", log: &calls}
	if err := m.AddScene(a); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"duplicate name", func() error { return m.AddScene(&fakeScene{name: "a", log: &calls}) }, ErrDuplicateScene},
		{"unknown scene", func() error { return m.SwitchTo("missing") }, ErrUnknownScene},
		{"update before switch", func() error { return m.Update(Frame{}) }, ErrNoActiveScene},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if m.Current() != nil {
		t.Error("failed operations changed the active scene")
	}
	if len(calls) != 0 {
		t.Errorf("failed operations ran hooks: %v", calls)
	}
	if got := m.Names(); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("names = %v, want [a]", got)
	}
}

func TestUnknownSwitchKeepsActiveScene(t *testing.T) {
	var calls []string
	m := NewManager()
	a := &fakeScene{name: "a", log: &calls}
	_ = m.AddScene(a)
	_ = m.SwitchTo("a")

	if err := m.SwitchTo("nope"); !errors.Is(err, ErrUnknownScene) {
		t.Fatalf("err = %v", err)
	}
	if m.Current() != a {
		t.Error("active scene changed")
	}
	if want := []string{"enter a"}; !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestUpdateAndDrawReachOnlyActiveScene(t *testing.T) {
	var calls []string
	m := NewManager()
	a := &fakeScene{name: "a", log: &calls}
	b := &fakeScene{name: "b", log: &calls}
	_ = m.AddScene(a)
	_ = m.AddScene(b)
	_ = m.SwitchTo("b")
	calls = calls[:0]

	if err := m.Update(Frame{DT: 1.0 / 60}); err != nil {
		t.Fatal(err)
	}
	m.Draw(nil)

	want := []string{"update b", "draw b"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestUpdatePropagatesSceneError(t *testing.T) {
	var calls []string
	m := NewManager()
	_ = m.AddScene(&fakeScene{name: "a", log: &calls, err: ebiten.Termination})
	_ = m.SwitchTo("a")

	if err := m.Update(Frame{}); !errors.Is(err, ebiten.Termination) {
		t.Errorf("err = %v, want termination", err)
	}
}

func TestScenesWithoutHooks(t *testing.T) {
	m := NewManager()
	p := &plainScene{name: "plain"}
	_ = m.AddScene(p)
	if err := m.SwitchTo("plain"); err != nil {
		t.Fatal(err)
	}
	if err := m.Update(Frame{}); err != nil {
		t.Fatal(err)
	}
	m.HandleInput(components.InputSnapshot{})
	if p.updates != 1 {
		t.Errorf("updates = %d, want 1", p.updates)
	}
}

func TestHandleInputOnlyReachesInputHandlers(t *testing.T) {
	var calls []string
	m := NewManager()
	menu := &inputScene{fakeScene{name: "menu", log: &calls}}
	game := &fakeScene{name: "game", log: &calls}
	_ = m.AddScene(menu)
	_ = m.AddScene(game)

	in := components.Pressed(cfg.ActionMenuDown)

	_ = m.SwitchTo("menu")
	_ = m.Update(Frame{})
	m.HandleInput(in)
	if menu.inputs != 1 {
		t.Errorf("menu inputs = %d, want 1", menu.inputs)
	}

	_ = m.SwitchTo("game")
	_ = m.Update(Frame{})
	m.HandleInput(in)
	if menu.inputs != 1 {
		t.Errorf("inactive menu received input")
	}
}

// switcher moves to another scene from inside its own Update.
type switcher struct {
	plainScene
	m      *Manager
	target string
}

func (s *switcher) Update(Frame) error {
	return s.m.SwitchTo(s.target)
}

func TestHandleInputSkipsSceneEnteredThisFrame(t *testing.T) {
	var calls []string
	m := NewManager()
	menu := &inputScene{fakeScene{name: "menu", log: &calls}}
	game := &switcher{plainScene: plainScene{name: "game"}, m: m, target: "menu"}
	_ = m.AddScene(menu)
	_ = m.AddScene(game)
	_ = m.SwitchTo("game")

	in := components.Pressed(cfg.ActionCancel)
	if err := m.Update(Frame{Input: in}); err != nil {
		t.Fatal(err)
	}
	m.HandleInput(in)
	if menu.inputs != 0 {
		t.Fatalf("menu saw the input that opened it")
	}

	if err := m.Update(Frame{}); err != nil {
		t.Fatal(err)
	}
	m.HandleInput(in)
	if menu.inputs != 1 {
		t.Errorf("menu inputs = %d, want 1 on the following frame", menu.inputs)
	}
}

func TestProgress(t *testing.T) {
	p := NewProgress()
	if p.Completed("level1") {
		t.Fatal("fresh progress reports completion")
	}
	p.MarkCompleted("level1")
	if !p.Completed("level1") || p.Completed("level2") {
		t.Error("completion not tracked per level")
	}
}
