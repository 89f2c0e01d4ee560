package render

import (
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

const groundThickness = 4

var inactiveShade = color.RGBA{0, 0, 0, 90}

// DrawPlanes fills the screen with the active plane's backdrop, shades the
// other plane and draws both ground lines.
func DrawPlanes(e *ecs.ECS, screen *ebiten.Image) {
	plane := activePlane(e.World)

	bg := cfg.Colors.UpperBackground
	if plane == gamemath.Lower {
		bg = cfg.Colors.LowerBackground
	}
	screen.Fill(bg)

	w := float32(cfg.C.Width)
	half := float32(cfg.C.Height) / 2
	shadeY := half
	if plane == gamemath.Lower {
		shadeY = 0
	}
	vector.DrawFilledRect(screen, 0, shadeY, w, half, inactiveShade, false)

	// Floors sit under the player's feet: ground line plus half height.
	for _, p := range []gamemath.Plane{gamemath.Upper, gamemath.Lower} {
		floor := float32(gamemath.GroundY(p, float64(cfg.C.Height), cfg.Player.HalfHeight()) + cfg.Player.HalfHeight())
		vector.DrawFilledRect(screen, 0, floor-groundThickness, w, groundThickness, cfg.Colors.Ground, false)
	}
}

// DrawTriggers draws the door, key slot, key and signs.
func DrawTriggers(e *ecs.ECS, screen *ebiten.Image) {
	tags.Sign.Each(e.World, func(entry *donburi.Entry) {
		b := components.Object.Get(entry).Bounds()
		fillRect(screen, b, cfg.Colors.Sign)
		if s := components.Sign.Get(entry).Text; s != "" {
			text.Draw(screen, s, fonts.Sign.Get(), int(b.X)+4, int(b.Y+b.H/2)+4, color.White)
		}
	})

	tags.Door.Each(e.World, func(entry *donburi.Entry) {
		c := cfg.Colors.DoorClosed
		if components.Door.Get(entry).Open {
			c = cfg.Colors.DoorOpen
		}
		fillRect(screen, components.Object.Get(entry).Bounds(), c)
	})

	tags.KeySlot.Each(e.World, func(entry *donburi.Entry) {
		b := components.Object.Get(entry).Bounds()
		if components.KeySlot.Get(entry).Filled {
			fillRect(screen, b, cfg.Colors.Key)
			return
		}
		strokeRect(screen, b, cfg.Colors.KeySlotEmpty)
	})

	tags.Key.Each(e.World, func(entry *donburi.Entry) {
		key := components.Key.Get(entry)
		b := components.Object.Get(entry).Bounds()
		if key.Collected {
			strokeRect(screen, b, cfg.Colors.KeySlotEmpty)
			return
		}
		b.Y += key.BobOffset
		fillRect(screen, b, cfg.Colors.Key)
	})
}

// DrawPlayer draws the player sprite box, colored by animation, with a
// marker on the side it faces.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		p := components.Player.Get(entry)
		anim := components.Animation.Get(entry)

		c := cfg.Colors.Player
		switch anim.CurrentTag() {
		case cfg.TagDuck:
			c = cfg.Colors.PlayerCrouch
		case cfg.TagTeleport:
			c = cfg.Colors.PlayerTeleport
		}

		hb := anim.Hitbox()
		left := p.Position.X - cfg.Player.HalfWidth()
		top := p.Position.Y - cfg.Player.HalfHeight()
		body := gamemath.Rect{X: left + hb.OffsetX, Y: top + hb.OffsetY, W: hb.Width, H: hb.Height}
		fillRect(screen, body, c)

		eyeX := body.Right() - 10
		if anim.Mirrored {
			eyeX = body.X + 4
		}
		vector.DrawFilledRect(screen, float32(eyeX), float32(body.Y+6), 6, 6, color.White, false)
	})
}

func activePlane(w donburi.World) gamemath.Plane {
	if entry, ok := tags.Player.First(w); ok {
		return components.Player.Get(entry).Plane
	}
	return gamemath.Upper
}

func fillRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, c, false)
}
