package main

import (
	"log"
	"time"

	"github.com/automoto/duality/assets"
	"github.com/automoto/duality/components"
	"github.com/automoto/duality/config"
	"github.com/automoto/duality/fonts"
	"github.com/automoto/duality/input"
	"github.com/automoto/duality/scenes"
	"github.com/automoto/duality/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// maxFrameDT caps the step after a stall (window drag, breakpoint) so the
// player cannot fall through the ground in one frame.
const maxFrameDT = 0.1

type Game struct {
	manager *scenes.Manager
	input   components.InputSnapshot
	last    time.Time
	watcher *config.TuningWatcher
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(config.HUD.FontSize, config.HUD.DebugFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	layouts, err := assets.LoadLevels()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	if len(layouts) == 0 {
		log.Fatal("No levels found")
	}

	g := &Game{
		manager: scenes.NewManager(),
	}

	progress := scenes.NewProgress()
	entries := make([]ui.LevelEntry, 0, len(layouts))
	for _, l := range layouts {
		entries = append(entries, ui.LevelEntry{Name: l.Name, Title: l.Title})
	}

	mustAdd(g.manager, scenes.NewMenuScene(g.manager, progress, entries))
	for _, l := range layouts {
		mustAdd(g.manager, scenes.NewLevelScene(g.manager, progress, l))
	}

	start := scenes.MenuSceneName
	if config.Debug.SkipMenu {
		start = config.Debug.StartLevel
	}
	if err := g.manager.SwitchTo(start); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	return g
}

func mustAdd(m *scenes.Manager, s scenes.Scene) {
	if err := m.AddScene(s); err != nil {
		log.Fatalf("Failed to register scene: %v", err)
	}
}

func (g *Game) Update() error {
	g.reloadTuning()

	g.input = input.Poll(g.input)
	f := scenes.Frame{DT: g.frameDT(), Input: g.input}

	if err := g.manager.Update(f); err != nil {
		return err
	}
	g.manager.HandleInput(g.input)
	return nil
}

// frameDT returns the wall-clock time since the previous update.
func (g *Game) frameDT() float64 {
	now := time.Now()
	if g.last.IsZero() {
		g.last = now
		return 1 / float64(ebiten.TPS())
	}
	dt := now.Sub(g.last).Seconds()
	g.last = now
	if dt < 0 {
		return 0
	}
	if dt > maxFrameDT {
		return maxFrameDT
	}
	return dt
}

// reloadTuning applies pending tuning file changes between frames.
func (g *Game) reloadTuning() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path := <-g.watcher.Events:
			if err := config.LoadTuningFile(path); err != nil {
				log.Printf("Warning: tuning reload failed: %v", err)
				continue
			}
			log.Printf("Reloaded tuning from %s", path)
		case err := <-g.watcher.Errors:
			log.Printf("Warning: tuning watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.manager.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	if err := config.ParseEnv(&config.Debug); err != nil {
		log.Printf("Warning: %v", err)
	}

	if config.Debug.TuningPath != "" {
		if err := config.LoadTuningFile(config.Debug.TuningPath); err != nil {
			log.Printf("Warning: Could not load tuning: %v", err)
		}
	}

	g := NewGame()

	if config.Debug.Enabled && config.Debug.TuningPath != "" {
		w, err := config.WatchTuning(config.Debug.TuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch tuning: %v", err)
		} else {
			g.watcher = w
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	err := ebiten.RunGame(g)
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if err != nil {
		log.Fatal(err)
	}
}
