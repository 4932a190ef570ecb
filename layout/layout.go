package layout

import (
	"strings"

	"github.com/gogpu/textmesh"
)

// ellipsisRune ends truncated lines under OverflowEllipsis. Faces
// without it fall back to three fallbackEllipsisRune glyphs.
const (
	ellipsisRune         = '…'
	fallbackEllipsisRune = '.'
)

// missingAdvanceFraction of FontSize is the pen advance for a rune the
// face cannot map when even the space glyph is absent.
const missingAdvanceFraction = 0.25

// Glyph is one positioned glyph: the pen position at which the glyph's
// local geometry is placed. Y increases downward per line and marks
// the baseline.
type Glyph struct {
	ID   textmesh.GlyphID
	Rune rune
	X, Y float64
}

// Metrics is the immutable result of one layout call.
type Metrics struct {
	// Width is the widest line's advance width, after truncation,
	// before alignment offsets.
	Width float64

	// Height is Lines times the line height.
	Height float64

	// Glyphs lists every positioned glyph in text order.
	Glyphs []Glyph

	// Lines is the number of emitted lines.
	Lines int
}

// shapedGlyph is a glyph within line assembly, positioned relative to
// its line start.
type shapedGlyph struct {
	id      textmesh.GlyphID
	r       rune
	x       float64
	advance float64
}

// line is a fully measured line before alignment.
type line struct {
	glyphs []shapedGlyph
	width  float64
}

// measurer resolves and scales face metrics once per layout call.
type measurer struct {
	face  textmesh.FontMetrics
	scale float64

	letterSpacing float64
	fontSize      float64

	spaceGlyph   textmesh.GlyphID
	hasSpace     bool
	spaceAdvance float64
}

func newMeasurer(face textmesh.FontMetrics, opts Options) *measurer {
	m := &measurer{
		face:          face,
		scale:         opts.FontSize / face.UnitsPerEm(),
		letterSpacing: opts.LetterSpacing,
		fontSize:      opts.FontSize,
	}
	if gid, ok := face.GlyphIndex(' '); ok {
		m.spaceGlyph = gid
		m.hasSpace = true
		m.spaceAdvance = face.AdvanceWidth(gid)*m.scale + m.letterSpacing
	} else {
		m.spaceAdvance = opts.FontSize*missingAdvanceFraction + m.letterSpacing
	}
	return m
}

// advance returns the scaled advance for a glyph including letter
// spacing.
func (m *measurer) advance(gid textmesh.GlyphID) float64 {
	return m.face.AdvanceWidth(gid)*m.scale + m.letterSpacing
}

// kern returns the scaled kerning adjustment between two glyphs.
func (m *measurer) kern(a, b textmesh.GlyphID) float64 {
	return m.face.Kerning(a, b) * m.scale
}

// shapeWord measures the runes of one word into relatively positioned
// glyphs. Runes the face cannot map advance the pen by the space
// glyph's advance (or a fraction of the font size) without emitting a
// glyph; a missing glyph never fails the layout.
func (m *measurer) shapeWord(word string) ([]shapedGlyph, float64) {
	var (
		glyphs  []shapedGlyph
		x       float64
		prev    textmesh.GlyphID
		hasPrev bool
	)
	for _, r := range word {
		gid, ok := m.face.GlyphIndex(r)
		if !ok {
			x += m.spaceAdvance
			hasPrev = false
			continue
		}
		if hasPrev {
			x += m.kern(prev, gid)
		}
		adv := m.advance(gid)
		glyphs = append(glyphs, shapedGlyph{id: gid, r: r, x: x, advance: adv})
		x += adv
		prev = gid
		hasPrev = true
	}
	return glyphs, x
}

// Layout positions the glyphs of text under the given options.
func Layout(text string, face textmesh.FontMetrics, opts Options) Metrics {
	opts = opts.Normalized()
	if face == nil || face.UnitsPerEm() <= 0 {
		return Metrics{}
	}

	m := newMeasurer(face, opts)
	lines := buildLines(text, m, opts)
	lines = applyOverflow(lines, m, opts)

	lineHeight := opts.FontSize * opts.LineHeight
	ascent := face.Ascender() * m.scale

	metrics := Metrics{Lines: len(lines)}
	for i, ln := range lines {
		if ln.width > metrics.Width {
			metrics.Width = ln.width
		}
		offset := alignOffset(opts, ln.width)
		baseline := ascent + float64(i)*lineHeight

		for _, g := range ln.glyphs {
			metrics.Glyphs = append(metrics.Glyphs, Glyph{
				ID:   g.id,
				Rune: g.r,
				X:    offset + g.x,
				Y:    baseline,
			})
		}
	}
	metrics.Height = float64(len(lines)) * lineHeight
	return metrics
}

// Measure returns the advance width of text laid out on a single
// unbounded line.
func Measure(text string, face textmesh.FontMetrics, opts Options) float64 {
	opts.MaxWidth = 0
	opts.Wrap = WrapNone
	return Layout(text, face, opts).Width
}

// buildLines splits text into paragraphs on hard breaks, paragraphs
// into words on spaces, and greedily packs words into lines.
func buildLines(text string, m *measurer, opts Options) []line {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	paragraphs := strings.Split(normalized, "\n")

	wrapping := opts.Wrap != WrapNone && opts.MaxWidth > 0

	var lines []line
	for _, para := range paragraphs {
		words := strings.Split(para, " ")

		current := line{}
		for i, word := range words {
			glyphs, width := m.shapeWord(word)

			// Every word after the first is preceded by the space it
			// was split on, even when the word itself is empty.
			leadingSpace := i > 0

			joined := current.width + width
			if leadingSpace {
				joined += m.spaceAdvance
			}

			// The space is consumed by the line break, never carried
			// to the start of the next line. Pure spaces accumulate
			// on the current line instead of forcing a break.
			if wrapping && len(glyphs) > 0 && joined > opts.MaxWidth &&
				(len(current.glyphs) > 0 || current.width > 0) {
				lines = append(lines, current)
				current = line{}
				leadingSpace = false
			}

			if opts.Wrap == WrapBreakWord && wrapping && width > opts.MaxWidth {
				if leadingSpace {
					current.width += m.spaceAdvance
				}
				lines, current = breakLongWord(lines, current, glyphs, m, opts)
				continue
			}

			appendWord(&current, glyphs, width, m.spaceAdvance, leadingSpace)
		}
		lines = append(lines, current)
	}
	return lines
}

// appendWord places a measured word at the end of a line, preceded by
// a space advance when the word followed a space in the source text.
func appendWord(ln *line, glyphs []shapedGlyph, width float64, spaceAdvance float64, leadingSpace bool) {
	start := ln.width
	if leadingSpace {
		start += spaceAdvance
	}
	for _, g := range glyphs {
		g.x += start
		ln.glyphs = append(ln.glyphs, g)
	}
	ln.width = start + width
}

// breakLongWord splits a word wider than MaxWidth across lines at
// character boundaries (WrapBreakWord only).
func breakLongWord(lines []line, current line, glyphs []shapedGlyph, m *measurer, opts Options) ([]line, line) {
	for _, g := range glyphs {
		if current.width+g.advance > opts.MaxWidth && len(current.glyphs) > 0 {
			lines = append(lines, current)
			current = line{}
		}
		g.x = current.width
		current.glyphs = append(current.glyphs, g)
		current.width += g.advance
	}
	return lines, current
}

// applyOverflow truncates lines wider than MaxWidth and discards lines
// beyond MaxHeight under OverflowHidden and OverflowEllipsis.
func applyOverflow(lines []line, m *measurer, opts Options) []line {
	if opts.Overflow == OverflowVisible {
		return lines
	}

	if opts.MaxHeight > 0 {
		lineHeight := opts.FontSize * opts.LineHeight
		maxLines := int(opts.MaxHeight / lineHeight)
		if maxLines < len(lines) {
			lines = lines[:maxLines]
		}
	}

	if opts.MaxWidth <= 0 {
		return lines
	}
	for i := range lines {
		truncateLine(&lines[i], m, opts)
	}
	return lines
}

// truncateLine cuts a single over-wide line down to MaxWidth,
// appending the ellipsis glyphs under OverflowEllipsis.
func truncateLine(ln *line, m *measurer, opts Options) {
	if ln.width <= opts.MaxWidth {
		return
	}

	var marker []shapedGlyph
	var markerWidth float64
	if opts.Overflow == OverflowEllipsis {
		marker, markerWidth = m.ellipsis()
		// A marker wider than the line budget cannot fit anywhere.
		if markerWidth > opts.MaxWidth {
			marker, markerWidth = nil, 0
		}
	}

	budget := opts.MaxWidth - markerWidth
	cut := len(ln.glyphs)
	for cut > 0 {
		g := ln.glyphs[cut-1]
		if g.x+g.advance <= budget {
			break
		}
		cut--
	}
	ln.glyphs = ln.glyphs[:cut]

	var x float64
	if cut > 0 {
		last := ln.glyphs[cut-1]
		x = last.x + last.advance
	}
	for _, g := range marker {
		g.x += x
		ln.glyphs = append(ln.glyphs, g)
	}
	ln.width = x + markerWidth
}

// ellipsis returns the truncation marker glyphs: U+2026 when the face
// has it, else three periods, else nothing.
func (m *measurer) ellipsis() ([]shapedGlyph, float64) {
	if gid, ok := m.face.GlyphIndex(ellipsisRune); ok {
		adv := m.advance(gid)
		return []shapedGlyph{{id: gid, r: ellipsisRune, advance: adv}}, adv
	}
	gid, ok := m.face.GlyphIndex(fallbackEllipsisRune)
	if !ok {
		return nil, 0
	}
	adv := m.advance(gid)
	glyphs := make([]shapedGlyph, 3)
	for i := range glyphs {
		glyphs[i] = shapedGlyph{id: gid, r: fallbackEllipsisRune, x: float64(i) * adv, advance: adv}
	}
	return glyphs, 3 * adv
}

// alignOffset returns the per-line x offset for the alignment mode.
// Without a bounded width every line starts at zero.
func alignOffset(opts Options, lineWidth float64) float64 {
	if opts.MaxWidth <= 0 {
		return 0
	}
	switch opts.Align {
	case AlignCenter:
		return (opts.MaxWidth - lineWidth) / 2
	case AlignRight:
		return opts.MaxWidth - lineWidth
	default:
		return 0
	}
}
