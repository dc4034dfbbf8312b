package life

import "image/color"

// Palette maps a cell's age to a display color. Ramp[0] is the color of
// a newly born cell; older cells walk up the ramp and stay on the last
// entry once their age outgrows it.
type Palette struct {
	Background color.Color
	Ramp       []color.Color
}

// ColorFor returns the color for a cell of the given age. Dead cells
// (age < 0) get the background color.
func (p Palette) ColorFor(age int) color.Color {
	if age < 0 {
		return p.Background
	}
	if age >= len(p.Ramp) {
		return p.Ramp[len(p.Ramp)-1]
	}
	return p.Ramp[age]
}

// AgeRamp returns the reference 11-step diverging ramp, red through
// yellow to purple-blue.
func AgeRamp() []color.Color {
	return []color.Color{
		color.RGBA{0x9e, 0x01, 0x42, 0xff},
		color.RGBA{0xd5, 0x3e, 0x4f, 0xff},
		color.RGBA{0xf4, 0x6d, 0x43, 0xff},
		color.RGBA{0xfd, 0xae, 0x61, 0xff},
		color.RGBA{0xfe, 0xe0, 0x8b, 0xff},
		color.RGBA{0xff, 0xff, 0xbf, 0xff},
		color.RGBA{0xe6, 0xf5, 0x98, 0xff},
		color.RGBA{0xab, 0xdd, 0xa4, 0xff},
		color.RGBA{0x66, 0xc2, 0xa5, 0xff},
		color.RGBA{0x32, 0x88, 0xbd, 0xff},
		color.RGBA{0x5e, 0x4f, 0xa2, 0xff},
	}
}

// FlatRamp returns a single-entry ramp: every live cell is drawn in the
// same color regardless of age.
func FlatRamp(c color.Color) []color.Color {
	return []color.Color{c}
}
