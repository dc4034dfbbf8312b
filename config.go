package main

import (
	"image/color"
	"time"

	"agelife/life"
)

const (
	displayWidth  = 500 // board area in pixels
	displayHeight = 500
)

// Config holds the startup parameters of a run. Nothing in it changes
// once the simulation is running.
type Config struct {
	Rows, Cols int
	Period     time.Duration // time between generations
	Threshold  float64       // probability that a cell starts alive
	Seed       int64         // RNG seed; 0 means derive from the clock
	Palette    life.Palette
}

// DefaultConfig returns the age-gradient variant: a 100x100 board
// updated every 100ms, cells colored by age over an 11-step ramp.
func DefaultConfig() Config {
	return Config{
		Rows:      100,
		Cols:      100,
		Period:    100 * time.Millisecond,
		Threshold: 0.3,
		Seed:      0,
		Palette: life.Palette{
			Background: color.Black,
			Ramp:       life.AgeRamp(),
		},
	}
}

// FlatConfig returns the single-color variant: same board and rules,
// every live cell drawn green regardless of age.
func FlatConfig() Config {
	cfg := DefaultConfig()
	cfg.Palette.Ramp = life.FlatRamp(color.RGBA{0x00, 0xc8, 0x00, 0xff})
	return cfg
}
