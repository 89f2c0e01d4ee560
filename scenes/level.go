package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/duality/components"
	cfg "github.com/automoto/duality/config"
	"github.com/automoto/duality/render"
	"github.com/automoto/duality/shared/leveldata"
	"github.com/automoto/duality/systems"
	"github.com/automoto/duality/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelScene runs one playable level. Each time it becomes active the level
// starts over from its canonical initial state.
type LevelScene struct {
	layout       *leveldata.Layout
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	progress     *Progress
	once         sync.Once

	// actions held since before the level became active, ignored until released
	entering bool
	held     [cfg.ActionCount]bool
}

func NewLevelScene(sc SceneChanger, progress *Progress, layout *leveldata.Layout) *LevelScene {
	return &LevelScene{layout: layout, sceneChanger: sc, progress: progress}
}

func (ls *LevelScene) Name() string {
	return ls.layout.Name
}

func (ls *LevelScene) World() donburi.World {
	ls.once.Do(ls.configure)
	return ls.ecs.World
}

func (ls *LevelScene) OnEnter() {
	ls.once.Do(ls.configure)
	systems.ResetLevel(ls.ecs.World)
	ls.entering = true
}

func (ls *LevelScene) Update(f Frame) error {
	ls.once.Do(ls.configure)
	f.Input = ls.maskHeld(f.Input)

	if f.Input.JustPressed(cfg.ActionCancel) {
		return ls.sceneChanger.SwitchTo(MenuSceneName)
	}

	systems.SetFrame(ls.ecs.World, f.DT, f.Input)
	ls.ecs.Update()

	levelEntry, ok := components.Level.First(ls.ecs.World)
	if !ok || !components.Level.Get(levelEntry).DoorReached {
		return nil
	}

	ls.progress.MarkCompleted(ls.layout.Name)
	if cfg.Debug.Enabled {
		log.Printf("level %s complete", ls.layout.Name)
	}
	err := ls.sceneChanger.SwitchTo(MenuSceneName)
	systems.ResetLevel(ls.ecs.World)
	return err
}

// maskHeld hides actions that were already held when the level was entered,
// such as the key that selected it in the menu, until they are released.
func (ls *LevelScene) maskHeld(in components.InputSnapshot) components.InputSnapshot {
	if ls.entering {
		ls.held = in.Previous
		ls.entering = false
	}
	for a := range ls.held {
		if !ls.held[a] {
			continue
		}
		if !in.Current[a] {
			ls.held[a] = false
			continue
		}
		in.Current[a] = false
		in.Previous[a] = false
	}
	return in
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LevelScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(withWorld(systems.UpdatePlayer))
	ecs.AddSystem(withWorld(systems.SyncObjects))
	ecs.AddSystem(withWorld(systems.UpdateTriggers))
	ecs.AddSystem(withWorld(systems.UpdateKeyBob))
	ecs.AddSystem(withWorld(systems.UpdateAnimations))

	ecs.AddRenderer(render.LayerWorld, render.DrawPlanes)
	ecs.AddRenderer(render.LayerWorld, render.DrawTriggers)
	ecs.AddRenderer(render.LayerWorld, render.DrawPlayer)
	ecs.AddRenderer(render.LayerHUD, render.DrawHUD)
	ecs.AddRenderer(render.LayerHUD, render.DrawDebug)

	ls.ecs = ecs
	factory.CreateLevel(ls.ecs.World, ls.layout)
}

// withWorld adapts a headless system to the ecs scheduler.
func withWorld(system func(donburi.World)) ecs.System {
	return func(e *ecs.ECS) {
		system(e.World)
	}
}
