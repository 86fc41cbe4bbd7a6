package exporter

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"ansistyle/internal/types"
)

func TestToTcellStyleBasicForeground(t *testing.T) {
	style := ToTcellStyle(types.NewBasic(31, types.Bold))

	fg, _, attrs := style.Decompose()
	if fg != tcell.ColorMaroon {
		t.Fatalf("expected maroon foreground, got %v", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Fatalf("expected bold attribute, got %v", attrs)
	}
}

func TestToTcellStyleBasicBackgroundAndBright(t *testing.T) {
	_, bg, _ := ToTcellStyle(types.NewBasic(44)).Decompose()
	if bg != tcell.PaletteColor(4) {
		t.Fatalf("expected palette color 4 background, got %v", bg)
	}

	fg, _, _ := ToTcellStyle(types.NewBasic(91)).Decompose()
	if fg != tcell.PaletteColor(9) {
		t.Fatalf("expected bright red foreground, got %v", fg)
	}
}

func TestToTcellStyleBareModifierCode(t *testing.T) {
	_, _, attrs := ToTcellStyle(types.NewBasic(4)).Decompose()
	if attrs&tcell.AttrUnderline == 0 {
		t.Fatalf("expected underline attribute, got %v", attrs)
	}

	// Reset as a bare code is the default style.
	if ToTcellStyle(types.NewBasic(0)) != tcell.StyleDefault {
		t.Fatalf("expected default style for reset code")
	}
}

func TestToTcellStyleIndexed(t *testing.T) {
	_, bg, _ := ToTcellStyle(types.NewIndexed(200, true)).Decompose()
	if bg != tcell.PaletteColor(200) {
		t.Fatalf("expected palette color 200 background, got %v", bg)
	}
}

func TestToTcellStyleRGB(t *testing.T) {
	fg, _, attrs := ToTcellStyle(types.NewRGB(255, 0, 128, false, types.Underline)).Decompose()
	if fg != tcell.NewRGBColor(255, 0, 128) {
		t.Fatalf("expected rgb(255,0,128) foreground, got %v", fg)
	}
	if attrs&tcell.AttrUnderline == 0 {
		t.Fatalf("expected underline attribute, got %v", attrs)
	}
}
