// Package layout positions glyphs for a text string given font
// metrics and layout configuration: wrapping, alignment, overflow.
//
// Layout is pure and deterministic: identical inputs produce
// identical results, so the measured text always agrees with the
// geometry built from it.
package layout

// unknownStr is returned by String methods for out-of-range values.
const unknownStr = "Unknown"

// Alignment specifies horizontal text alignment within MaxWidth.
type Alignment int

const (
	// AlignLeft aligns text to the left edge (default).
	AlignLeft Alignment = iota
	// AlignCenter centers text horizontally.
	AlignCenter
	// AlignRight aligns text to the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// Overflow specifies what happens to lines exceeding MaxWidth and to
// lines exceeding MaxHeight.
type Overflow int

const (
	// OverflowVisible keeps all glyphs even past the bounds (default).
	OverflowVisible Overflow = iota
	// OverflowHidden drops glyphs that would exceed the bounds.
	OverflowHidden
	// OverflowEllipsis drops glyphs that would exceed the bounds and
	// ends each truncated line with an ellipsis glyph.
	OverflowEllipsis
)

// String returns the string representation of the overflow mode.
func (o Overflow) String() string {
	switch o {
	case OverflowVisible:
		return "Visible"
	case OverflowHidden:
		return "Hidden"
	case OverflowEllipsis:
		return "Ellipsis"
	default:
		return unknownStr
	}
}

// WrapMode specifies how text is wrapped when it exceeds MaxWidth.
type WrapMode int

const (
	// WrapNormal breaks lines at word boundaries. A single word wider
	// than MaxWidth overflows its line.
	WrapNormal WrapMode = iota
	// WrapNone disables wrapping; only hard line breaks start lines.
	WrapNone
	// WrapBreakWord breaks at word boundaries first and falls back to
	// character boundaries for words wider than MaxWidth.
	WrapBreakWord
)

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapNormal:
		return "Normal"
	case WrapNone:
		return "None"
	case WrapBreakWord:
		return "BreakWord"
	default:
		return unknownStr
	}
}

// Options configures text layout behavior. The zero value of every
// field is replaced by its documented default, so callers may set only
// what they need.
type Options struct {
	// FontSize is the rendered em size in output units (pixels).
	FontSize float64

	// LineHeight is a multiplier on FontSize for the baseline-to-
	// baseline distance. Default: 1.2.
	LineHeight float64

	// LetterSpacing is extra advance between glyphs, in output units.
	LetterSpacing float64

	// MaxWidth is the wrapping and alignment width. 0 means unbounded.
	MaxWidth float64

	// MaxHeight limits the laid-out height under OverflowHidden and
	// OverflowEllipsis. 0 means unbounded.
	MaxHeight float64

	// Align specifies horizontal alignment within MaxWidth.
	Align Alignment

	// Overflow specifies truncation behavior at MaxWidth/MaxHeight.
	Overflow Overflow

	// Wrap specifies the line wrapping mode.
	Wrap WrapMode
}

// DefaultOptions returns layout options for the given font size with
// all other fields at their defaults.
func DefaultOptions(fontSize float64) Options {
	return Options{
		FontSize:   fontSize,
		LineHeight: defaultLineHeight,
	}
}

const defaultLineHeight = 1.2

// Normalized returns a copy with zero values replaced by defaults.
func (o Options) Normalized() Options {
	if o.FontSize <= 0 {
		o.FontSize = 16
	}
	if o.LineHeight <= 0 {
		o.LineHeight = defaultLineHeight
	}
	return o
}
