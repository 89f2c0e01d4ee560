package config

import "image/color"

// Fixed continuous-time constants of the player controller. They are not
// tunable: ground detection and the long-idle switch depend on them exactly.
const (
	GroundTolerance = 0.1
	IdleToStand     = 2.0
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement, in units per second
	WalkSpeed float64 `yaml:"walk_speed"`
	RunSpeed  float64 `yaml:"run_speed"`
	JumpPower float64 `yaml:"jump_power"` // negative is up

	// Physics
	Gravity float64 `yaml:"gravity"`

	// Dimensions
	FrameWidth  int     `yaml:"frame_width"`
	FrameHeight int     `yaml:"frame_height"`
	Scale       float64 `yaml:"scale"`

	// Crouch hitbox, relative to the scaled sprite's top-left corner
	CrouchHitbox Hitbox `yaml:"crouch_hitbox"`
}

// Hitbox is a collision rectangle offset from a sprite origin.
type Hitbox struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// Width of the scaled player sprite.
func (p PlayerConfig) Width() float64 {
	return float64(p.FrameWidth) * p.Scale
}

// Height of the scaled player sprite.
func (p PlayerConfig) Height() float64 {
	return float64(p.FrameHeight) * p.Scale
}

func (p PlayerConfig) HalfWidth() float64  { return p.Width() / 2 }
func (p PlayerConfig) HalfHeight() float64 { return p.Height() / 2 }

// DefaultHitbox covers the whole scaled sprite.
func (p PlayerConfig) DefaultHitbox() Hitbox {
	return Hitbox{Width: p.Width(), Height: p.Height()}
}

// TeleportConfig contains plane-switching configuration
type TeleportConfig struct {
	Cooldown float64 `yaml:"cooldown"` // seconds
}

// TriggerConfig contains key/door trigger configuration
type TriggerConfig struct {
	KeyBobHeight   float64 `yaml:"key_bob_height"`   // pixels
	KeyBobDuration float64 `yaml:"key_bob_duration"` // seconds per half cycle
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA `yaml:"-"`
	TitleColor      color.RGBA `yaml:"-"`
	TextColor       color.RGBA `yaml:"-"`
	ButtonIdle      color.RGBA `yaml:"-"`
	ButtonHover     color.RGBA `yaml:"-"`
	ButtonPressed   color.RGBA `yaml:"-"`
	Title           string     `yaml:"title"`
	PlayLabel       string     `yaml:"play_label"`
	AgainSuffix     string     `yaml:"again_suffix"`
	QuitLabel       string     `yaml:"quit_label"`
	Hint            string     `yaml:"hint"`
	ButtonWidth     int        `yaml:"button_width"`
	ButtonHeight    int        `yaml:"button_height"`
	TitleFontSize   float64    `yaml:"title_font_size"`
	FontSize        float64    `yaml:"font_size"`
}

// HUDConfig contains in-level overlay configuration values
type HUDConfig struct {
	UpperText     color.RGBA `yaml:"-"`
	LowerText     color.RGBA `yaml:"-"`
	Instructions  []string   `yaml:"instructions"`
	FontSize      float64    `yaml:"font_size"`
	DebugFontSize float64    `yaml:"debug_font_size"`
	Margin        float64    `yaml:"margin"`
	LineHeight    float64    `yaml:"line_height"`
}

// ColorConfig contains world rendering colors
type ColorConfig struct {
	UpperBackground color.RGBA
	LowerBackground color.RGBA
	Ground          color.RGBA
	Player          color.RGBA
	PlayerCrouch    color.RGBA
	PlayerTeleport  color.RGBA
	Key             color.RGBA
	KeySlotEmpty    color.RGBA
	DoorClosed      color.RGBA
	DoorOpen        color.RGBA
	Sign            color.RGBA
	DebugHitbox     color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Teleport TeleportConfig
var Trigger TriggerConfig
var Menu MenuConfig
var HUD HUDConfig
var Colors ColorConfig

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "Duality",
	}

	Player = PlayerConfig{
		WalkSpeed: 200,
		RunSpeed:  400,
		JumpPower: -500,
		Gravity:   1500,

		FrameWidth:  21,
		FrameHeight: 21,
		Scale:       2,

		// Bottom half of the sprite while ducking
		CrouchHitbox: Hitbox{Width: 42, Height: 21, OffsetX: 0, OffsetY: 21},
	}

	Teleport = TeleportConfig{
		Cooldown: 0.5,
	}

	Trigger = TriggerConfig{
		KeyBobHeight:   6,
		KeyBobDuration: 0.6,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 24, G: 22, B: 34, A: 255},
		TitleColor:      color.RGBA{R: 240, G: 236, B: 220, A: 255},
		TextColor:       color.RGBA{R: 200, G: 200, B: 210, A: 255},
		ButtonIdle:      color.RGBA{R: 60, G: 58, B: 82, A: 255},
		ButtonHover:     color.RGBA{R: 86, G: 84, B: 118, A: 255},
		ButtonPressed:   color.RGBA{R: 40, G: 38, B: 58, A: 255},
		Title:           "DUALITY",
		PlayLabel:       "Play",
		AgainSuffix:     " - again",
		QuitLabel:       "Quit",
		Hint:            "Up/Down select, Enter play, Esc quit",
		ButtonWidth:     280,
		ButtonHeight:    40,
		TitleFontSize:   48,
		FontSize:        20,
	}

	HUD = HUDConfig{
		UpperText: color.RGBA{R: 20, G: 20, B: 20, A: 255},
		LowerText: color.RGBA{R: 230, G: 230, B: 240, A: 255},
		Instructions: []string{
			"A/D move, Shift run, Space jump, S duck",
			"Q drop to the lower world, E rise to the upper world",
			"Esc back to menu",
		},
		FontSize:      14,
		DebugFontSize: 10,
		Margin:        10,
		LineHeight:    18,
	}

	Colors = ColorConfig{
		UpperBackground: color.RGBA{R: 222, G: 230, B: 240, A: 255},
		LowerBackground: color.RGBA{R: 36, G: 34, B: 52, A: 255},
		Ground:          color.RGBA{R: 96, G: 80, B: 64, A: 255},
		Player:          color.RGBA{R: 220, G: 90, B: 70, A: 255},
		PlayerCrouch:    color.RGBA{R: 180, G: 70, B: 60, A: 255},
		PlayerTeleport:  color.RGBA{R: 150, G: 110, B: 230, A: 255},
		Key:             color.RGBA{R: 240, G: 200, B: 40, A: 255},
		KeySlotEmpty:    color.RGBA{R: 90, G: 90, B: 90, A: 255},
		DoorClosed:      color.RGBA{R: 110, G: 70, B: 40, A: 255},
		DoorOpen:        color.RGBA{R: 60, G: 160, B: 90, A: 255},
		Sign:            color.RGBA{R: 150, G: 120, B: 80, A: 255},
		DebugHitbox:     color.RGBA{R: 255, G: 0, B: 255, A: 255},
	}
}
