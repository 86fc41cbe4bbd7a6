package types

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync/atomic"
)

/////////////////////////////////////////////////////////////////////////////
// MODIFIER
/////////////////////////////////////////////////////////////////////////////

// Modifier is a text style attribute identified by its SGR parameter code.
type Modifier int

// SGR codes 5 (blink), 6 (rapid blink) and 8 (concealed) are deliberately
// not exposed, hence the gaps in the sequence.
const (
	Reset     Modifier = 0
	Bold      Modifier = 1
	Faint     Modifier = 2
	Italic    Modifier = 3
	Underline Modifier = 4
	Reverse   Modifier = 7
	Strike    Modifier = 9
)

func (m Modifier) String() string {
	switch m {
	case Reset:
		return "reset"
	case Bold:
		return "bold"
	case Faint:
		return "faint"
	case Italic:
		return "italic"
	case Underline:
		return "underline"
	case Reverse:
		return "reverse"
	case Strike:
		return "strike"
	}
	return fmt.Sprintf("modifier(%d)", int(m))
}

// ModifierSet is an unordered collection of distinct modifiers attached to
// a color value. The zero value is usable for reads only; build mutable
// sets with NewModifierSet.
type ModifierSet map[Modifier]struct{}

func NewModifierSet(mods ...Modifier) ModifierSet {
	set := make(ModifierSet, len(mods))
	for _, m := range mods {
		set[m] = struct{}{}
	}
	return set
}

func (s ModifierSet) Add(m Modifier) {
	s[m] = struct{}{}
}

func (s ModifierSet) Remove(m Modifier) {
	delete(s, m)
}

func (s ModifierSet) Has(m Modifier) bool {
	_, ok := s[m]
	return ok
}

// Codes returns the numeric codes of the set in ascending order.
func (s ModifierSet) Codes() []int {
	codes := make([]int, 0, len(s))
	for m := range s {
		codes = append(codes, int(m))
	}
	slices.Sort(codes)
	return codes
}

// String renders the codes in ascending order joined by ";", with no
// leading or trailing separator. An empty set renders as "".
func (s ModifierSet) String() string {
	var sb strings.Builder
	for _, code := range s.Codes() {
		sb.WriteString(fmt.Sprintf("%d;", code))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// Copy returns an independent set; mutations on either side are invisible
// to the other.
func (s ModifierSet) Copy() ModifierSet {
	return maps.Clone(s)
}

// prefix returns the modifier codes followed by a trailing ";" separator
// when the set is non-empty, ready to prepend to the main color
// parameters. Terminals treat "\x1b[;31m" differently from "\x1b[31m", so
// an empty set must contribute nothing at all.
func (s ModifierSet) prefix() string {
	if len(s) == 0 {
		return ""
	}
	return s.String() + ";"
}

/////////////////////////////////////////////////////////////////////////////
// COLOR VALUES
/////////////////////////////////////////////////////////////////////////////

// Color is the contract shared by the three SGR color variants.
type Color interface {
	// Render produces the escape sequence for the value, or "" when
	// rendering is globally disabled.
	Render() string

	// Copy returns an independent clone: mutating the clone's modifiers
	// never affects the original, and vice versa.
	Copy() Color

	// Modifiers exposes the value's modifier set for direct
	// Add/Remove/Has operations.
	Modifiers() ModifierSet
}

// Basic is a 4-bit color holding a raw SGR code: 30-37 for foreground,
// 40-47 for background, or a bare modifier code used on its own (the
// reset value is Basic{Code: 0}). Unlike the 8-bit and 24-bit variants
// there is no background flag; background colors are expressed through
// the code itself.
type Basic struct {
	Code uint8
	Mods ModifierSet
}

func NewBasic(code uint8, mods ...Modifier) *Basic {
	return &Basic{Code: code, Mods: NewModifierSet(mods...)}
}

func (c *Basic) Render() string {
	if !Enabled() {
		return ""
	}
	return fmt.Sprintf("\x1b[%s%dm", c.Mods.prefix(), c.Code)
}

func (c *Basic) Copy() Color {
	return &Basic{Code: c.Code, Mods: c.Mods.Copy()}
}

func (c *Basic) Modifiers() ModifierSet {
	return c.Mods
}

func (c *Basic) String() string {
	return fmt.Sprintf("basic:%d mods:[%s]", c.Code, c.Mods)
}

// Indexed is an 8-bit color addressing the 256-color palette.
type Indexed struct {
	Index      uint8
	Background bool
	Mods       ModifierSet
}

func NewIndexed(index uint8, background bool, mods ...Modifier) *Indexed {
	return &Indexed{Index: index, Background: background, Mods: NewModifierSet(mods...)}
}

// CubeIndex maps three components, conventionally in [0,5], onto the
// 6x6x6 RGB cube occupying palette entries 16-231. Components are not
// range-checked; out-of-range values land outside the cube (0-15 and
// 232-255 are the standard colors and the grayscale ramp).
func CubeIndex(r, g, b uint8) uint8 {
	return uint8(16 + 36*int(r) + 6*int(g) + int(b))
}

// NewIndexedCube builds an 8-bit color from RGB cube components.
func NewIndexedCube(r, g, b uint8, background bool, mods ...Modifier) *Indexed {
	return NewIndexed(CubeIndex(r, g, b), background, mods...)
}

func (c *Indexed) Render() string {
	if !Enabled() {
		return ""
	}
	return fmt.Sprintf("\x1b[%s%d;5;%dm", c.Mods.prefix(), extendedCode(c.Background), c.Index)
}

func (c *Indexed) Copy() Color {
	return &Indexed{Index: c.Index, Background: c.Background, Mods: c.Mods.Copy()}
}

func (c *Indexed) Modifiers() ModifierSet {
	return c.Mods
}

func (c *Indexed) String() string {
	return fmt.Sprintf("idx:%d bg:%t mods:[%s]", c.Index, c.Background, c.Mods)
}

// RGB is a 24-bit direct color.
type RGB struct {
	R, G, B    uint8
	Background bool
	Mods       ModifierSet
}

func NewRGB(r, g, b uint8, background bool, mods ...Modifier) *RGB {
	return &RGB{R: r, G: g, B: b, Background: background, Mods: NewModifierSet(mods...)}
}

// HexRGB unpacks a packed 0xRRGGBB value into its components. Bits above
// the low 24 are discarded by the masks; short values simply leave the
// high components at zero.
func HexRGB(hex uint32) (r, g, b uint8) {
	return uint8(hex >> 16 & 0xFF), uint8(hex >> 8 & 0xFF), uint8(hex & 0xFF)
}

// NewRGBHex builds a 24-bit color from a packed 0xRRGGBB value.
func NewRGBHex(hex uint32, background bool, mods ...Modifier) *RGB {
	r, g, b := HexRGB(hex)
	return NewRGB(r, g, b, background, mods...)
}

func (c *RGB) Render() string {
	if !Enabled() {
		return ""
	}
	return fmt.Sprintf("\x1b[%s%d;2;%d;%d;%dm", c.Mods.prefix(), extendedCode(c.Background), c.R, c.G, c.B)
}

func (c *RGB) Copy() Color {
	return &RGB{R: c.R, G: c.G, B: c.B, Background: c.Background, Mods: c.Mods.Copy()}
}

func (c *RGB) Modifiers() ModifierSet {
	return c.Mods
}

func (c *RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d) bg:%t mods:[%s]", c.R, c.G, c.B, c.Background, c.Mods)
}

// extendedCode returns the SGR parameter selecting extended color: 38 for
// foreground, 48 for background.
func extendedCode(background bool) int {
	if background {
		return 48
	}
	return 38
}

/////////////////////////////////////////////////////////////////////////////
// GLOBAL SWITCH
/////////////////////////////////////////////////////////////////////////////

// Rendering is enabled process-wide by default. The flag is atomic, so
// concurrent readers are safe; a writer racing a reader only affects
// whether that one sequence comes out colored.
var renderingOff atomic.Bool

// SetEnabled toggles escape-sequence output globally. While disabled,
// Render returns "" for every variant; re-enabling restores the previous
// output unchanged.
func SetEnabled(enabled bool) {
	renderingOff.Store(!enabled)
}

// Enabled reports whether Render currently produces escape sequences.
func Enabled() bool {
	return !renderingOff.Load()
}
