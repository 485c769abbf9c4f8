package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// file mirrors the YAML layout. Sections absent from the document keep
// their current values.
type file struct {
	Player     *PlayerConfig     `yaml:"player"`
	Transition *TransitionConfig `yaml:"transition"`
	Hazards    *HazardConfig     `yaml:"hazards"`
	Pickups    *PickupConfig     `yaml:"pickups"`
	Screen     *ScreenConfig     `yaml:"screen"`
	Levels     *LevelsConfig     `yaml:"levels"`
	Debug      *DebugConfig      `yaml:"debug"`
}

// Load applies YAML overrides from r to the global configuration.
func Load(r io.Reader) error {
	player, transition, hazards, pickups := Player, Transition, Hazards, Pickups
	screen, levels, debug := Screen, Levels, Debug
	f := file{
		Player:     &player,
		Transition: &transition,
		Hazards:    &hazards,
		Pickups:    &pickups,
		Screen:     &screen,
		Levels:     &levels,
		Debug:      &debug,
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return fmt.Errorf("decode config: %w", err)
	}
	if err := validate(&player, &transition, &hazards, &screen); err != nil {
		return err
	}

	Player, Transition, Hazards, Pickups = player, transition, hazards, pickups
	Screen, Levels, Debug = screen, levels, debug
	return nil
}

// LoadFile applies YAML overrides from a file.
func LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	if err := Load(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func validate(p *PlayerConfig, t *TransitionConfig, h *HazardConfig, s *ScreenConfig) error {
	switch {
	case p.DecayDen <= 0 || p.AirAccelDen <= 0 || p.DirectionalJumpDen <= 0 || p.SlipperyAccelDiv <= 0:
		return fmt.Errorf("player: denominators must be positive")
	case p.CollisionWidth <= 0 || p.CollisionHeight <= 0:
		return fmt.Errorf("player: collision size must be positive")
	case t.DeathTicks <= 0 || t.DoorTicks <= 0:
		return fmt.Errorf("transition: countdowns must be positive")
	case h.FastPeriod <= 0 || h.SlowPeriod <= 0:
		return fmt.Errorf("hazards: launcher periods must be positive")
	case s.TickRate <= 0:
		return fmt.Errorf("screen: tick rate must be positive")
	}
	return nil
}
