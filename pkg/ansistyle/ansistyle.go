// Package ansistyle provides a public API for generating ANSI/SGR escape
// sequences.
//
// This package provides functions to:
//   - Build 4-bit, 8-bit (256-color palette) and 24-bit (direct RGB)
//     color values with optional style modifiers
//   - Render values into the exact escape-sequence string terminals expect
//   - Toggle escape-sequence output process-wide
//   - Look up the standard named colors and styles
//
// Example usage:
//
//	import "ansistyle/pkg/ansistyle"
//
//	warn := ansistyle.NewBasic(31, ansistyle.Bold)
//	fmt.Print(warn.Render(), "disk almost full", ansistyle.Reset.Render())
//
//	accent := ansistyle.NewRGBHex(0xE34FE3, false)
//	fmt.Print(accent.Render(), "fancy", ansistyle.Reset.Render())
package ansistyle

import (
	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/cases"

	"ansistyle/internal/exporter"
	"ansistyle/internal/types"
)

// Type aliases for public API
type (
	// Color is the contract shared by the three color variants.
	Color = types.Color

	// Basic is a 4-bit color carrying a raw SGR code.
	Basic = types.Basic

	// Indexed is an 8-bit color addressing the 256-color palette.
	Indexed = types.Indexed

	// RGB is a 24-bit direct color.
	RGB = types.RGB

	// Modifier is a style attribute identified by its SGR code.
	Modifier = types.Modifier

	// ModifierSet is a set of distinct modifiers attached to a color value.
	ModifierSet = types.ModifierSet
)

// Modifier constants
const (
	ModReset     = types.Reset
	ModBold      = types.Bold
	ModFaint     = types.Faint
	ModItalic    = types.Italic
	ModUnderline = types.Underline
	ModReverse   = types.Reverse
	ModStrike    = types.Strike
)

// NewModifierSet creates a set from the given modifiers, dropping
// duplicates.
func NewModifierSet(mods ...Modifier) ModifierSet {
	return types.NewModifierSet(mods...)
}

// NewBasic creates a 4-bit color from a raw SGR code (30-37 foreground,
// 40-47 background, or a bare modifier code).
func NewBasic(code uint8, mods ...Modifier) *Basic {
	return types.NewBasic(code, mods...)
}

// NewIndexed creates an 8-bit color from a palette index.
func NewIndexed(index uint8, background bool, mods ...Modifier) *Indexed {
	return types.NewIndexed(index, background, mods...)
}

// NewIndexedCube creates an 8-bit color from RGB cube components,
// conventionally each in [0,5].
func NewIndexedCube(r, g, b uint8, background bool, mods ...Modifier) *Indexed {
	return types.NewIndexedCube(r, g, b, background, mods...)
}

// NewRGB creates a 24-bit color from its components.
func NewRGB(r, g, b uint8, background bool, mods ...Modifier) *RGB {
	return types.NewRGB(r, g, b, background, mods...)
}

// NewRGBHex creates a 24-bit color from a packed 0xRRGGBB value.
func NewRGBHex(hex uint32, background bool, mods ...Modifier) *RGB {
	return types.NewRGBHex(hex, background, mods...)
}

// CubeIndex maps RGB cube components onto a palette index (16-231 for
// in-range components).
func CubeIndex(r, g, b uint8) uint8 {
	return types.CubeIndex(r, g, b)
}

// HexRGB unpacks a packed 0xRRGGBB value into its components.
func HexRGB(hex uint32) (r, g, b uint8) {
	return types.HexRGB(hex)
}

// SetEnabled toggles escape-sequence output globally; while disabled,
// Render returns "" for every value. Output is enabled at startup.
func SetEnabled(enabled bool) {
	types.SetEnabled(enabled)
}

// Enabled reports whether Render currently produces escape sequences.
func Enabled() bool {
	return types.Enabled()
}

// ToTcellStyle converts a color value into the equivalent tcell style.
func ToTcellStyle(c Color) tcell.Style {
	return exporter.ToTcellStyle(c)
}

// Quantize returns the 8-bit palette color closest to a 24-bit color.
func Quantize(c *RGB) *Indexed {
	return exporter.Quantize(c)
}

/////////////////////////////////////////////////////////////////////////////
// NAMED PRESETS
/////////////////////////////////////////////////////////////////////////////

// Standard named values, pre-constructed with no modifiers. Treat them as
// read-only: Copy before attaching modifiers.
var (
	Reset     = NewBasic(0)
	Bold      = NewBasic(1)
	Faint     = NewBasic(2)
	Italic    = NewBasic(3)
	Underline = NewBasic(4)
	Reverse   = NewBasic(7)
	Strike    = NewBasic(9)

	FgBlack   = NewBasic(30)
	FgRed     = NewBasic(31)
	FgGreen   = NewBasic(32)
	FgYellow  = NewBasic(33)
	FgBlue    = NewBasic(34)
	FgMagenta = NewBasic(35)
	FgCyan    = NewBasic(36)
	FgWhite   = NewBasic(37)

	BgBlack   = NewBasic(40)
	BgRed     = NewBasic(41)
	BgGreen   = NewBasic(42)
	BgYellow  = NewBasic(43)
	BgBlue    = NewBasic(44)
	BgMagenta = NewBasic(45)
	BgCyan    = NewBasic(46)
	BgWhite   = NewBasic(47)
)

var presets = map[string]*Basic{
	"reset":     Reset,
	"bold":      Bold,
	"faint":     Faint,
	"italic":    Italic,
	"underline": Underline,
	"reverse":   Reverse,
	"strike":    Strike,

	"black":   FgBlack,
	"red":     FgRed,
	"green":   FgGreen,
	"yellow":  FgYellow,
	"blue":    FgBlue,
	"magenta": FgMagenta,
	"cyan":    FgCyan,
	"white":   FgWhite,

	"bg-black":   BgBlack,
	"bg-red":     BgRed,
	"bg-green":   BgGreen,
	"bg-yellow":  BgYellow,
	"bg-blue":    BgBlue,
	"bg-magenta": BgMagenta,
	"bg-cyan":    BgCyan,
	"bg-white":   BgWhite,
}

// Lookup finds a preset by name, case-insensitively ("red", "BG-Blue",
// "Bold", ...). The returned value is a copy, safe to mutate without
// touching the table. A fresh caser per call: cases.Caser is stateful
// and must not be shared between goroutines.
func Lookup(name string) (*Basic, bool) {
	preset, ok := presets[cases.Fold().String(name)]
	if !ok {
		return nil, false
	}
	return preset.Copy().(*Basic), true
}
