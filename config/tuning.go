package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is returned when a tuning document would leave the game
// in an unplayable state.
var ErrInvalidTuning = errors.New("invalid tuning")

type tuningDoc struct {
	Screen   Config         `yaml:"screen"`
	Player   PlayerConfig   `yaml:"player"`
	Teleport TeleportConfig `yaml:"teleport"`
	Trigger  TriggerConfig  `yaml:"trigger"`
	Menu     MenuConfig     `yaml:"menu"`
	HUD      HUDConfig      `yaml:"hud"`
}

// LoadTuningFile applies the YAML tuning file at path.
func LoadTuningFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	if err := LoadTuning(f); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// LoadTuning decodes a YAML document on top of the current global values.
// Keys missing from the document keep their value. Nothing is applied if the
// result fails validation.
func LoadTuning(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read tuning: %w", err)
	}

	doc := tuningDoc{
		Screen:   *C,
		Player:   Player,
		Teleport: Teleport,
		Trigger:  Trigger,
		Menu:     Menu,
		HUD:      HUD,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal tuning: %w", err)
	}
	if err := doc.validate(); err != nil {
		return err
	}

	screen := doc.Screen
	C = &screen
	Player = doc.Player
	Teleport = doc.Teleport
	Trigger = doc.Trigger
	Menu = doc.Menu
	HUD = doc.HUD
	return nil
}

func (d *tuningDoc) validate() error {
	switch {
	case d.Screen.Width <= 0 || d.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidTuning, d.Screen.Width, d.Screen.Height)
	case d.Player.FrameWidth <= 0 || d.Player.FrameHeight <= 0 || d.Player.Scale <= 0:
		return fmt.Errorf("%w: player frame %dx%d scale %v", ErrInvalidTuning,
			d.Player.FrameWidth, d.Player.FrameHeight, d.Player.Scale)
	case d.Player.WalkSpeed < 0 || d.Player.RunSpeed < 0:
		return fmt.Errorf("%w: negative move speed", ErrInvalidTuning)
	case d.Player.JumpPower > 0:
		return fmt.Errorf("%w: jump power %v must be negative (up)", ErrInvalidTuning, d.Player.JumpPower)
	case d.Player.Gravity < 0:
		return fmt.Errorf("%w: negative gravity", ErrInvalidTuning)
	case d.Teleport.Cooldown < 0:
		return fmt.Errorf("%w: negative teleport cooldown", ErrInvalidTuning)
	case d.Player.Width() > float64(d.Screen.Width) || d.Player.Height() > float64(d.Screen.Height)/2:
		return fmt.Errorf("%w: player does not fit a plane", ErrInvalidTuning)
	}
	return nil
}
