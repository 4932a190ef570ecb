// Package atlas parses SDF/MSDF glyph-atlas descriptors and builds
// quad-per-glyph text geometry from them. Two descriptor shapes are
// accepted, msdf-atlas-gen JSON ("atlas"+"metrics") and BMFont JSON
// ("chars"), and normalized into one Font value.
package atlas

import (
	"sort"

	"github.com/gogpu/textmesh"
)

// Info describes the source face of an atlas font.
type Info struct {
	// Face is the source font family name, when the descriptor
	// carries one.
	Face string

	// Size is the em size in atlas pixels at which the atlas was
	// generated. All pixel-space glyph metrics are relative to it.
	Size float64
}

// Common holds the shared pixel-space metrics of an atlas font.
type Common struct {
	// LineHeight is the baseline-to-baseline distance in pixels.
	LineHeight float64

	// Base is the distance from the top of a line to the baseline.
	Base float64

	// ScaleW and ScaleH are the atlas texture dimensions in pixels.
	ScaleW, ScaleH float64

	// Pages is the number of atlas texture pages.
	Pages int
}

// DistanceField describes the distance encoding of the atlas bitmap.
type DistanceField struct {
	// FieldType is the encoding: "sdf", "msdf" or "mtsdf".
	FieldType string

	// DistanceRange is the field's pixel range.
	DistanceRange float64
}

// Glyph is one atlas glyph in normalized pixel space with a top-left
// atlas origin.
type Glyph struct {
	// X, Y, Width, Height locate the glyph's rectangle in the atlas.
	X, Y, Width, Height float64

	// XOffset and YOffset position the rectangle relative to the pen:
	// XOffset from the pen x, YOffset from the top of the line.
	XOffset, YOffset float64

	// XAdvance is the pen advance after this glyph.
	XAdvance float64

	// Page is the atlas page index.
	Page int
}

// KernPair keys a kerning amount by its rune pair.
type KernPair struct {
	First, Second rune
}

// Font is a normalized SDF/MSDF atlas font.
//
// Font implements textmesh.FontMetrics over an internal rune index
// (glyph IDs are indices into the sorted rune table), so package
// layout wraps, aligns and kerns atlas text exactly as it does
// outline text.
type Font struct {
	Info          Info
	Common        Common
	DistanceField DistanceField

	// Glyphs maps codepoints to their atlas glyphs.
	Glyphs map[rune]Glyph

	// Kernings maps rune pairs to pixel advance adjustments.
	Kernings map[KernPair]float64

	// runes is the sorted codepoint table backing glyph IDs.
	runes []rune
	// index is the inverse of runes.
	index map[rune]textmesh.GlyphID
}

// buildIndex derives the deterministic rune↔glyph-ID tables. Called
// once at the end of parsing.
func (f *Font) buildIndex() {
	f.runes = make([]rune, 0, len(f.Glyphs))
	for r := range f.Glyphs {
		f.runes = append(f.runes, r)
	}
	sort.Slice(f.runes, func(i, j int) bool { return f.runes[i] < f.runes[j] })

	f.index = make(map[rune]textmesh.GlyphID, len(f.runes))
	for i, r := range f.runes {
		f.index[r] = textmesh.GlyphID(i)
	}
}

// UnitsPerEm implements textmesh.FontMetrics. The design grid of an
// atlas font is its generation pixel size.
func (f *Font) UnitsPerEm() float64 {
	return f.Info.Size
}

// Ascender implements textmesh.FontMetrics: top of line to baseline.
func (f *Font) Ascender() float64 {
	return f.Common.Base
}

// GlyphIndex implements textmesh.FontMetrics.
func (f *Font) GlyphIndex(r rune) (textmesh.GlyphID, bool) {
	gid, ok := f.index[r]
	return gid, ok
}

// AdvanceWidth implements textmesh.FontMetrics.
func (f *Font) AdvanceWidth(gid textmesh.GlyphID) float64 {
	r, ok := f.runeFor(gid)
	if !ok {
		return 0
	}
	return f.Glyphs[r].XAdvance
}

// Kerning implements textmesh.FontMetrics.
func (f *Font) Kerning(a, b textmesh.GlyphID) float64 {
	ra, okA := f.runeFor(a)
	rb, okB := f.runeFor(b)
	if !okA || !okB {
		return 0
	}
	return f.Kernings[KernPair{First: ra, Second: rb}]
}

// Rune returns the codepoint a glyph ID stands for.
func (f *Font) Rune(gid textmesh.GlyphID) (rune, bool) {
	return f.runeFor(gid)
}

func (f *Font) runeFor(gid textmesh.GlyphID) (rune, bool) {
	if int(gid) >= len(f.runes) {
		return 0, false
	}
	return f.runes[int(gid)], true
}
