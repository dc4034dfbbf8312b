package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigGradient(t *testing.T) {
	cfg := DefaultConfig()
	require.Len(t, cfg.Palette.Ramp, 11)

	// Ages within the ramp get distinct colors, older ages saturate.
	assert.NotEqual(t, cfg.Palette.ColorFor(0), cfg.Palette.ColorFor(1))
	assert.Equal(t, cfg.Palette.ColorFor(10), cfg.Palette.ColorFor(99))
	assert.Equal(t, cfg.Palette.Background, cfg.Palette.ColorFor(-1))
}

func TestFlatConfigSingleColor(t *testing.T) {
	cfg := FlatConfig()
	require.Len(t, cfg.Palette.Ramp, 1)

	// Same board parameters as the gradient variant, one foreground color.
	def := DefaultConfig()
	assert.Equal(t, def.Rows, cfg.Rows)
	assert.Equal(t, def.Cols, cfg.Cols)
	assert.Equal(t, def.Period, cfg.Period)
	assert.Equal(t, def.Threshold, cfg.Threshold)

	assert.Equal(t, cfg.Palette.ColorFor(0), cfg.Palette.ColorFor(50))
	assert.Equal(t, cfg.Palette.Background, cfg.Palette.ColorFor(-1))
}
