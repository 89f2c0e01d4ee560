package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/duality/components"
	cfg "github.com/automoto/duality/config"
	"github.com/automoto/duality/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

const MenuSceneName = "menu"

// MenuScene displays the main menu
type MenuScene struct {
	sceneChanger SceneChanger
	progress     *Progress
	levels       []ui.LevelEntry
	menu         *ui.MenuUI
	once         sync.Once

	quit bool
	err  error
}

// NewMenuScene creates the menu offering levels in the given order
func NewMenuScene(sc SceneChanger, progress *Progress, levels []ui.LevelEntry) *MenuScene {
	return &MenuScene{sceneChanger: sc, progress: progress, levels: levels}
}

func (ms *MenuScene) Name() string {
	return MenuSceneName
}

func (ms *MenuScene) OnEnter() {
	ms.once.Do(ms.configure)
	ms.quit = false
	ms.err = nil
	for _, lvl := range ms.levels {
		if ms.progress.Completed(lvl.Name) {
			ms.menu.MarkCompleted(lvl.Name)
		}
	}
}

func (ms *MenuScene) Update(Frame) error {
	ms.once.Do(ms.configure)
	if ms.quit {
		return ebiten.Termination
	}
	ms.menu.Update()
	return ms.takeErr()
}

func (ms *MenuScene) HandleInput(in components.InputSnapshot) {
	ms.once.Do(ms.configure)
	switch {
	case in.JustPressed(cfg.ActionCancel):
		ms.quit = true
	case in.JustPressed(cfg.ActionMenuUp):
		ms.menu.Move(-1)
	case in.JustPressed(cfg.ActionMenuDown):
		ms.menu.Move(1)
	case in.JustPressed(cfg.ActionMenuSelect):
		ms.menu.Activate()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menu == nil {
		return
	}
	ms.menu.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.menu = ui.NewMenuUI(ms.levels, ms.play, func() { ms.quit = true })
}

func (ms *MenuScene) play(level string) {
	if err := ms.sceneChanger.SwitchTo(level); err != nil {
		ms.err = err
	}
}

func (ms *MenuScene) takeErr() error {
	err := ms.err
	ms.err = nil
	return err
}
