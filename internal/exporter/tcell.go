package exporter

import (
	"github.com/gdamore/tcell/v2"

	"ansistyle/internal/types"
)

// ToTcellStyle converts a color value into the equivalent tcell style, so
// values built with this package can drive tcell-based screens directly
// instead of going through the escape-sequence form.
func ToTcellStyle(c types.Color) tcell.Style {
	style := applyModifiers(tcell.StyleDefault, c.Modifiers())

	switch v := c.(type) {
	case *types.Basic:
		style = applyBasicCode(style, v.Code)

	case *types.Indexed:
		if v.Background {
			style = style.Background(tcell.PaletteColor(int(v.Index)))
		} else {
			style = style.Foreground(tcell.PaletteColor(int(v.Index)))
		}

	case *types.RGB:
		color := tcell.NewRGBColor(int32(v.R), int32(v.G), int32(v.B))
		if v.Background {
			style = style.Background(color)
		} else {
			style = style.Foreground(color)
		}
	}

	return style
}

func applyModifiers(style tcell.Style, mods types.ModifierSet) tcell.Style {
	// Reset needs no handling: tcell.StyleDefault already is the reset
	// state.
	if mods.Has(types.Bold) {
		style = style.Bold(true)
	}
	if mods.Has(types.Faint) {
		style = style.Dim(true)
	}
	if mods.Has(types.Italic) {
		style = style.Italic(true)
	}
	if mods.Has(types.Underline) {
		style = style.Underline(true)
	}
	if mods.Has(types.Reverse) {
		style = style.Reverse(true)
	}
	if mods.Has(types.Strike) {
		style = style.StrikeThrough(true)
	}
	return style
}

// applyBasicCode maps a raw 4-bit SGR code onto the style the way a
// terminal would interpret it: 30-37/90-97 foreground, 40-47/100-107
// background, bare modifier codes as style-only attributes.
func applyBasicCode(style tcell.Style, code uint8) tcell.Style {
	switch {
	case code >= 30 && code <= 37:
		return style.Foreground(tcell.PaletteColor(int(code) - 30))
	case code >= 40 && code <= 47:
		return style.Background(tcell.PaletteColor(int(code) - 40))
	case code >= 90 && code <= 97:
		return style.Foreground(tcell.PaletteColor(int(code) - 90 + 8))
	case code >= 100 && code <= 107:
		return style.Background(tcell.PaletteColor(int(code) - 100 + 8))
	}

	switch types.Modifier(code) {
	case types.Bold:
		return style.Bold(true)
	case types.Faint:
		return style.Dim(true)
	case types.Italic:
		return style.Italic(true)
	case types.Underline:
		return style.Underline(true)
	case types.Reverse:
		return style.Reverse(true)
	case types.Strike:
		return style.StrikeThrough(true)
	}

	// Reset and unknown codes leave the default style.
	return style
}
