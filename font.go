package textmesh

// GlyphID identifies a glyph within a font.
type GlyphID uint16

// FontMetrics is the measurement side of the font collaborator.
// All lengths are in font design units; callers scale by
// fontSize / UnitsPerEm().
//
// Implementations must be deterministic: identical inputs must return
// identical values, or text layout loses its reproducibility guarantee.
type FontMetrics interface {
	// UnitsPerEm returns the font's design grid resolution.
	UnitsPerEm() float64

	// Ascender returns the distance from the baseline to the top of
	// the em box, in design units.
	Ascender() float64

	// GlyphIndex maps a rune to its glyph. ok is false when the font
	// has no glyph for the rune.
	GlyphIndex(r rune) (gid GlyphID, ok bool)

	// AdvanceWidth returns the horizontal advance of a glyph in
	// design units.
	AdvanceWidth(gid GlyphID) float64

	// Kerning returns the pairwise advance adjustment between two
	// glyphs in design units. Zero when the pair has no kerning.
	Kerning(a, b GlyphID) float64
}

// Face is the full font collaborator: metrics plus outline access.
// Implementations live in package opentype; tests may provide fakes.
type Face interface {
	FontMetrics

	// FontID returns a process-unique identity for this font, used as
	// the outer key of the glyph triangulation cache. Releasing the
	// font must be paired with glyphcache.Cache.ReleaseFont.
	FontID() uint64

	// GlyphCommands returns the outline of a glyph as path commands in
	// design units, Y-up. An empty slice means the glyph has no
	// outline (for example, the space character).
	GlyphCommands(gid GlyphID) ([]PathCommand, error)
}
