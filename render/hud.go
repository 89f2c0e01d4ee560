package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/duality/components"
	cfg "github.com/automoto/duality/config"
	"github.com/automoto/duality/fonts"
	"github.com/automoto/duality/shared/gamemath"
	"github.com/automoto/duality/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the level title, key status and control hints in the
// top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	c := hudColor(e.World)
	face := fonts.HUD.Get()
	x := int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin + cfg.HUD.LineHeight)

	status := "find the key"
	if level.IsComplete {
		status = "door unlocked"
	}
	text.Draw(screen, fmt.Sprintf("%s - %s", level.Title, status), face, x, y, c)

	for _, line := range cfg.HUD.Instructions {
		y += int(cfg.HUD.LineHeight)
		text.Draw(screen, line, face, x, y, c)
	}
}

// DrawDebug outlines collision bounds and prints controller state.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}

	for entry := range components.Object.Iter(e.World) {
		b := components.Object.Get(entry).Bounds()
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, cfg.Colors.DebugHitbox, false)
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	p := components.Player.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)

	lines := []string{
		fmt.Sprintf("tag %s frame %d", anim.CurrentTag(), anim.Frame()),
		fmt.Sprintf("pos %.1f,%.1f vy %.1f", p.Position.X, p.Position.Y, p.SpeedY),
		fmt.Sprintf("plane %s idle %.2f cooldown %.2f", p.Plane, p.IdleTimer, p.TeleportCooldown),
		fmt.Sprintf("fps %.0f tps %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
	}
	face := fonts.Debug.Get()
	c := hudColor(e.World)
	y := cfg.C.Height - int(cfg.HUD.Margin) - len(lines)*int(cfg.HUD.LineHeight)
	for _, line := range lines {
		y += int(cfg.HUD.LineHeight)
		text.Draw(screen, line, face, int(cfg.HUD.Margin), y, c)
	}
}

func hudColor(w donburi.World) color.Color {
	if activePlane(w) == gamemath.Lower {
		return cfg.HUD.LowerText
	}
	return cfg.HUD.UpperText
}
