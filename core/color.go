package core

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Color identifies a drawable foreground color from the base and bright
// ANSI palette (universally supported, including Linux TTY, tmux, SSH).
// ColorNone is the zero value and means "no color applied"; ColorReset
// exists only for emission and is never stored on a cell.
type Color uint8

const (
	ColorNone Color = iota

	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite

	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite

	ColorReset
)

// ResetCode is the SGR parameter that clears all attributes
const ResetCode = 0

// sgrCodes maps drawable colors to SGR foreground parameters.
// Base palette is 30-37, bright palette is 90-97.
var sgrCodes = [...]int{
	ColorBlack:         30,
	ColorRed:           31,
	ColorGreen:         32,
	ColorYellow:        33,
	ColorBlue:          34,
	ColorMagenta:       35,
	ColorCyan:          36,
	ColorWhite:         37,
	ColorBrightBlack:   90,
	ColorBrightRed:     91,
	ColorBrightGreen:   92,
	ColorBrightYellow:  93,
	ColorBrightBlue:    94,
	ColorBrightMagenta: 95,
	ColorBrightCyan:    96,
	ColorBrightWhite:   97,
}

// Code returns the SGR parameter for the color.
// ColorNone and ColorReset both map to the reset parameter: emitting
// "no color" means returning the terminal to its default attributes.
func (c Color) Code() int {
	if c.Drawable() {
		return sgrCodes[c]
	}
	return ResetCode
}

// Drawable returns true for colors that may be stored on a cell
func (c Color) Drawable() bool {
	return c >= ColorBlack && c <= ColorBrightWhite
}

// paletteRGB holds the xterm default sRGB values for the 16 drawable
// colors, used only for nearest-color matching
var paletteRGB = [...][3]uint8{
	ColorBlack:         {0, 0, 0},
	ColorRed:           {205, 0, 0},
	ColorGreen:         {0, 205, 0},
	ColorYellow:        {205, 205, 0},
	ColorBlue:          {0, 0, 238},
	ColorMagenta:       {205, 0, 205},
	ColorCyan:          {0, 205, 205},
	ColorWhite:         {229, 229, 229},
	ColorBrightBlack:   {127, 127, 127},
	ColorBrightRed:     {255, 0, 0},
	ColorBrightGreen:   {0, 255, 0},
	ColorBrightYellow:  {255, 255, 0},
	ColorBrightBlue:    {92, 92, 255},
	ColorBrightMagenta: {255, 0, 255},
	ColorBrightCyan:    {0, 255, 255},
	ColorBrightWhite:   {255, 255, 255},
}

// paletteLab caches the Lab-space palette, computed at init.
// Nearest-color lookups run at asset-load time, not per frame, but 16
// conversions per call is still wasted work.
var paletteLab [len(paletteRGB)]colorful.Color

func init() {
	for c := ColorBlack; c <= ColorBrightWhite; c++ {
		v := paletteRGB[c]
		paletteLab[c] = colorful.Color{
			R: float64(v[0]) / 255.0,
			G: float64(v[1]) / 255.0,
			B: float64(v[2]) / 255.0,
		}
	}
}

// FromRGB returns the drawable palette color perceptually nearest to the
// given 24-bit value, using CIE-Lab distance
func FromRGB(r, g, b uint8) Color {
	target := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}

	best := ColorBlack
	bestDist := target.DistanceLab(paletteLab[ColorBlack])
	for c := ColorRed; c <= ColorBrightWhite; c++ {
		if d := target.DistanceLab(paletteLab[c]); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}
