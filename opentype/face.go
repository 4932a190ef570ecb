// Package opentype loads OpenType and TrueType fonts and exposes them
// through the textmesh font interfaces. The base Face reads metrics
// and outlines via golang.org/x/image/font/sfnt; ShapedFace layers
// HarfBuzz pair kerning from go-text/typesetting on top.
package opentype

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textmesh"
)

// fontIDs issues process-unique font identities for cache keying.
var fontIDs atomic.Uint64

// Face is an sfnt-backed font face. All metrics and outline
// coordinates are in font design units with a Y-up axis.
//
// Face is safe for concurrent use; the underlying sfnt buffer is
// guarded by a mutex.
type Face struct {
	font *sfnt.Font
	upem float64
	asc  float64
	id   uint64

	mu  sync.Mutex
	buf sfnt.Buffer
}

// ParseFace parses OpenType or TrueType font data.
func ParseFace(data []byte) (*Face, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("opentype: parsing font: %w", err)
	}

	upem := float64(f.UnitsPerEm())
	if upem <= 0 {
		return nil, fmt.Errorf("opentype: font reports %v units per em", upem)
	}

	face := &Face{
		font: f,
		upem: upem,
		id:   fontIDs.Add(1),
	}

	// Loading at ppem == unitsPerEm keeps every sfnt value on the
	// design grid.
	var buf sfnt.Buffer
	m, err := f.Metrics(&buf, face.designPPEM(), font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("opentype: reading font metrics: %w", err)
	}
	face.asc = fixedToFloat(m.Ascent)

	return face, nil
}

func (f *Face) designPPEM() fixed.Int26_6 {
	return fixed.Int26_6(f.upem * 64)
}

// FontID implements textmesh.Face.
func (f *Face) FontID() uint64 {
	return f.id
}

// UnitsPerEm implements textmesh.FontMetrics.
func (f *Face) UnitsPerEm() float64 {
	return f.upem
}

// Ascender implements textmesh.FontMetrics.
func (f *Face) Ascender() float64 {
	return f.asc
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Face) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// Name returns the font family name, or "" when the font has none.
func (f *Face) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, err := f.font.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// GlyphIndex implements textmesh.FontMetrics. Glyph 0 is .notdef and
// reported as missing.
func (f *Face) GlyphIndex(r rune) (textmesh.GlyphID, bool) {
	f.mu.Lock()
	idx, err := f.font.GlyphIndex(&f.buf, r)
	f.mu.Unlock()
	if err != nil || idx == 0 {
		return 0, false
	}
	return textmesh.GlyphID(idx), true
}

// AdvanceWidth implements textmesh.FontMetrics.
func (f *Face) AdvanceWidth(gid textmesh.GlyphID) float64 {
	f.mu.Lock()
	adv, err := f.font.GlyphAdvance(&f.buf, sfnt.GlyphIndex(gid), f.designPPEM(), font.HintingNone)
	f.mu.Unlock()
	if err != nil {
		return 0
	}
	return fixedToFloat(adv)
}

// Kerning implements textmesh.FontMetrics using the font's kern
// table. Fonts that only carry GPOS kerning need a ShapedFace.
func (f *Face) Kerning(a, b textmesh.GlyphID) float64 {
	f.mu.Lock()
	k, err := f.font.Kern(&f.buf, sfnt.GlyphIndex(a), sfnt.GlyphIndex(b), f.designPPEM(), font.HintingNone)
	f.mu.Unlock()
	if err != nil {
		return 0
	}
	return fixedToFloat(k)
}

// GlyphCommands implements textmesh.Face. The returned commands are in
// design units with a Y-up axis. Glyphs without an outline, such as
// the space character, return an empty slice.
func (f *Face) GlyphCommands(gid textmesh.GlyphID) ([]textmesh.PathCommand, error) {
	f.mu.Lock()
	segments, err := f.font.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), f.designPPEM(), nil)
	f.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("opentype: loading glyph %d: %w", gid, err)
	}

	// sfnt emits outlines with a Y-down axis; flip to Y-up.
	cmds := make([]textmesh.PathCommand, 0, len(segments))
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			cmds = append(cmds, textmesh.MoveTo{Point: segPoint(seg.Args[0])})
		case sfnt.SegmentOpLineTo:
			cmds = append(cmds, textmesh.LineTo{Point: segPoint(seg.Args[0])})
		case sfnt.SegmentOpQuadTo:
			cmds = append(cmds, textmesh.QuadTo{
				Control: segPoint(seg.Args[0]),
				Point:   segPoint(seg.Args[1]),
			})
		case sfnt.SegmentOpCubeTo:
			cmds = append(cmds, textmesh.CubicTo{
				Control1: segPoint(seg.Args[0]),
				Control2: segPoint(seg.Args[1]),
				Point:    segPoint(seg.Args[2]),
			})
		}
	}
	return cmds, nil
}

func segPoint(p fixed.Point26_6) textmesh.Point {
	return textmesh.Pt(float64(p.X)/64.0, -float64(p.Y)/64.0)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
