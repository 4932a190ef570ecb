package opentype

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textmesh"
)

// ShapedFace is a Face whose kerning comes from HarfBuzz shaping via
// go-text/typesetting, covering both kern-table and GPOS fonts.
//
// A pair's kerning is measured by shaping the two runes together and
// comparing the run width against the glyphs' individual advances.
// Results are cached per pair. Glyph-to-rune mappings are recorded as
// GlyphIndex is called, so kerning queries always follow a lookup for
// both glyphs during layout.
//
// ShapedFace is safe for concurrent use. The HarfbuzzShaper is not,
// so instances are pooled.
type ShapedFace struct {
	*Face

	gfont *gtfont.Font

	shapers sync.Pool

	mu    sync.RWMutex
	runes map[textmesh.GlyphID]rune
	kerns map[kernKey]float64
}

type kernKey struct {
	a, b textmesh.GlyphID
}

// ParseShapedFace parses font data into a face with HarfBuzz kerning.
func ParseShapedFace(data []byte) (*ShapedFace, error) {
	base, err := ParseFace(data)
	if err != nil {
		return nil, err
	}

	gtFace, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opentype: parsing font for shaping: %w", err)
	}

	return &ShapedFace{
		Face:  base,
		gfont: gtFace.Font,
		shapers: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		runes: make(map[textmesh.GlyphID]rune),
		kerns: make(map[kernKey]float64),
	}, nil
}

// GlyphIndex implements textmesh.FontMetrics and records the
// glyph-to-rune mapping for later kerning queries.
func (f *ShapedFace) GlyphIndex(r rune) (textmesh.GlyphID, bool) {
	gid, ok := f.Face.GlyphIndex(r)
	if !ok {
		return 0, false
	}

	f.mu.RLock()
	_, seen := f.runes[gid]
	f.mu.RUnlock()
	if !seen {
		f.mu.Lock()
		f.runes[gid] = r
		f.mu.Unlock()
	}
	return gid, true
}

// Kerning implements textmesh.FontMetrics through HarfBuzz shaping.
// Pairs whose runes have not been seen through GlyphIndex fall back
// to the kern table.
func (f *ShapedFace) Kerning(a, b textmesh.GlyphID) float64 {
	key := kernKey{a: a, b: b}

	f.mu.RLock()
	k, cached := f.kerns[key]
	ra, okA := f.runes[a]
	rb, okB := f.runes[b]
	f.mu.RUnlock()
	if cached {
		return k
	}
	if !okA || !okB {
		return f.Face.Kerning(a, b)
	}

	k = f.shapePairKern(ra, rb, a, b)

	f.mu.Lock()
	f.kerns[key] = k
	f.mu.Unlock()
	return k
}

// shapePairKern shapes the rune pair at design size and returns the
// width delta against the glyphs' individual advances.
func (f *ShapedFace) shapePairKern(ra, rb rune, a, b textmesh.GlyphID) float64 {
	runes := []rune{ra, rb}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(f.gfont),
		Size:      fixed.Int26_6(f.upem * 64),
		Script:    language.LookupScript(ra),
		Language:  language.NewLanguage("en"),
	}

	shaper := f.shapers.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	f.shapers.Put(shaper)

	// Shaping may substitute the pair (ligatures). Only a clean
	// two-glyph run measures pure pair kerning.
	if len(output.Glyphs) != 2 {
		return 0
	}

	var shaped float64
	for _, g := range output.Glyphs {
		shaped += fixedToFloat(g.Advance)
	}
	return shaped - f.Face.AdvanceWidth(a) - f.Face.AdvanceWidth(b)
}
