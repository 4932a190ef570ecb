package textmesh

// PathCommand represents a single command in a glyph outline.
// Coordinates are in font design units unless stated otherwise.
type PathCommand interface {
	isPathCommand()
}

// MoveTo starts a new contour at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathCommand() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathCommand() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathCommand() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathCommand() {}

// Close closes the current contour.
type Close struct{}

func (Close) isPathCommand() {}

// Path records a sequence of path commands. It is a convenience for
// hand-building outlines; font adapters produce []PathCommand directly.
type Path struct {
	commands []PathCommand
	start    Point // starting point of current contour
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		commands: make([]PathCommand, 0, 16),
	}
}

// MoveTo starts a new contour at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.commands = append(p.commands, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.commands = append(p.commands, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve with control point (cx, cy).
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.commands = append(p.commands, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
}

// CubicTo draws a cubic Bezier curve with control points (c1x, c1y) and (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.commands = append(p.commands, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// Close closes the current contour back to its starting point.
func (p *Path) Close() {
	p.commands = append(p.commands, Close{})
	p.current = p.start
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.commands = p.commands[:0]
	p.start = Point{}
	p.current = Point{}
}

// Commands returns the recorded command sequence.
func (p *Path) Commands() []PathCommand {
	return p.commands
}

// CurrentPoint returns the current pen position.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Rectangle adds a closed rectangular contour.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Circle adds a closed circular contour using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	// Magic constant for circle approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	offset := r * k

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+offset, cx+offset, cy+r, cx, cy+r)
	p.CubicTo(cx-offset, cy+r, cx-r, cy+offset, cx-r, cy)
	p.CubicTo(cx-r, cy-offset, cx-offset, cy-r, cx, cy-r)
	p.CubicTo(cx+offset, cy-r, cx+r, cy-offset, cx+r, cy)
	p.Close()
}
