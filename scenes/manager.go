package scenes

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/duality/components"
	cfg "github.com/automoto/duality/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	ErrUnknownScene   = errors.New("unknown scene")
	ErrDuplicateScene = errors.New("duplicate scene")
	ErrNoActiveScene  = errors.New("no active scene")
)

// Frame is what the host hands the active scene each tick.
type Frame struct {
	DT    float64
	Input components.InputSnapshot
}

// Scene is the capability every registered scene provides.
type Scene interface {
	Name() string
	Update(f Frame) error
	Draw(screen *ebiten.Image)
}

// Enterer is implemented by scenes that prepare state when they become active.
type Enterer interface {
	OnEnter()
}

// Exiter is implemented by scenes that clean up when they stop being active.
type Exiter interface {
	OnExit()
}

// InputHandler is implemented by scenes that take input directly rather than
// reading it inside Update.
type InputHandler interface {
	HandleInput(in components.InputSnapshot)
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	SwitchTo(name string) error
}

// Manager owns the registered scenes and forwards host calls to the active one.
type Manager struct {
	scenes   map[string]Scene
	order    []string
	current  Scene
	switched bool
}

func NewManager() *Manager {
	return &Manager{scenes: make(map[string]Scene)}
}

// AddScene registers s under its own name. Names must be unique.
func (m *Manager) AddScene(s Scene) error {
	name := s.Name()
	if _, ok := m.scenes[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateScene, name)
	}
	m.scenes[name] = s
	m.order = append(m.order, name)
	return nil
}

// SwitchTo makes the named scene active. The outgoing scene's OnExit runs
// before the incoming scene's OnEnter.
func (m *Manager) SwitchTo(name string) error {
	next, ok := m.scenes[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}

	if ex, ok := m.current.(Exiter); ok {
		ex.OnExit()
	}
	prev := m.current
	m.current = next
	m.switched = true
	if en, ok := next.(Enterer); ok {
		en.OnEnter()
	}

	if cfg.Debug.Enabled {
		from := "<none>"
		if prev != nil {
			from = prev.Name()
		}
		log.Printf("scene: %s -> %s", from, name)
	}
	return nil
}

func (m *Manager) Current() Scene {
	return m.current
}

// Names lists registered scenes in registration order.
func (m *Manager) Names() []string {
	return append([]string(nil), m.order...)
}

func (m *Manager) Update(f Frame) error {
	m.switched = false
	if m.current == nil {
		return ErrNoActiveScene
	}
	return m.current.Update(f)
}

func (m *Manager) Draw(screen *ebiten.Image) {
	if m.current == nil {
		return
	}
	m.current.Draw(screen)
}

// HandleInput forwards in to the active scene if it handles input directly.
// A scene entered during this frame's Update does not see that frame's input,
// so the key that caused the switch cannot also act in the new scene.
func (m *Manager) HandleInput(in components.InputSnapshot) {
	if m.current == nil || m.switched {
		return
	}
	if h, ok := m.current.(InputHandler); ok {
		h.HandleInput(in)
	}
}
