package atlas

import (
	"encoding/json"
	"math"
)

// defaultAtlasSize is the pixel em size assumed when an
// msdf-atlas-gen descriptor omits atlas.size.
const defaultAtlasSize = 32.0

// msdf-atlas-gen descriptor shape.
type msdfBounds struct {
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
}

type msdfGlyph struct {
	Unicode     rune        `json:"unicode"`
	Advance     float64     `json:"advance"`
	PlaneBounds *msdfBounds `json:"planeBounds"`
	AtlasBounds *msdfBounds `json:"atlasBounds"`
}

type msdfAtlas struct {
	Type          string  `json:"type"`
	DistanceRange float64 `json:"distanceRange"`
	Size          float64 `json:"size"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	YOrigin       string  `json:"yOrigin"`
}

type msdfMetrics struct {
	EmSize     float64 `json:"emSize"`
	LineHeight float64 `json:"lineHeight"`
	Ascender   float64 `json:"ascender"`
	Descender  float64 `json:"descender"`
}

type msdfKerning struct {
	Unicode1 rune    `json:"unicode1"`
	Unicode2 rune    `json:"unicode2"`
	Advance  float64 `json:"advance"`
}

type msdfDescriptor struct {
	Name    string        `json:"name"`
	Atlas   msdfAtlas     `json:"atlas"`
	Metrics msdfMetrics   `json:"metrics"`
	Glyphs  []msdfGlyph   `json:"glyphs"`
	Kerning []msdfKerning `json:"kerning"`
}

// BMFont JSON descriptor shape.
type bmfontInfo struct {
	Face string  `json:"face"`
	Size float64 `json:"size"`
}

type bmfontCommon struct {
	LineHeight float64 `json:"lineHeight"`
	Base       float64 `json:"base"`
	ScaleW     float64 `json:"scaleW"`
	ScaleH     float64 `json:"scaleH"`
	Pages      int     `json:"pages"`
}

type bmfontChar struct {
	ID       rune    `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	XOffset  float64 `json:"xoffset"`
	YOffset  float64 `json:"yoffset"`
	XAdvance float64 `json:"xadvance"`
	Page     int     `json:"page"`
}

type bmfontKerning struct {
	First  rune    `json:"first"`
	Second rune    `json:"second"`
	Amount float64 `json:"amount"`
}

type bmfontDistanceField struct {
	FieldType     string  `json:"fieldType"`
	DistanceRange float64 `json:"distanceRange"`
}

type bmfontDescriptor struct {
	Info   bmfontInfo   `json:"info"`
	Common bmfontCommon `json:"common"`
	Chars  []bmfontChar `json:"chars"`
	// Some exporters write the char array under "glyphs".
	GlyphsAlias   []bmfontChar         `json:"glyphs"`
	Kernings      []bmfontKerning      `json:"kernings"`
	DistanceField *bmfontDistanceField `json:"distanceField"`
}

// Parse decodes an atlas descriptor in either the msdf-atlas-gen JSON
// shape or the BMFont JSON shape and normalizes it into a Font.
//
// The schema is probed by top-level keys: "atlas" together with
// "metrics" selects the msdf-atlas-gen shape, a "chars" (or "glyphs")
// array selects BMFont. Anything else fails with ErrUnknownSchema.
func Parse(data []byte) (*Font, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, &ParseError{Schema: "atlas", Err: err}
	}

	_, hasAtlas := probe["atlas"]
	_, hasMetrics := probe["metrics"]
	if hasAtlas && hasMetrics {
		return parseMSDF(data)
	}
	_, hasChars := probe["chars"]
	_, hasGlyphs := probe["glyphs"]
	if hasChars || hasGlyphs {
		return parseBMFont(data)
	}
	return nil, ErrUnknownSchema
}

func parseMSDF(data []byte) (*Font, error) {
	var d msdfDescriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, &ParseError{Schema: "msdf-atlas-gen", Err: err}
	}
	if len(d.Glyphs) == 0 {
		return nil, ErrNoGlyphs
	}

	// All msdf-atlas-gen font metrics are in em units. Scale them to
	// the pixel grid the atlas was rendered at.
	size := d.Atlas.Size
	if size <= 0 {
		size = defaultAtlasSize
	}
	unit := 1.0
	if d.Metrics.EmSize > 0 {
		unit = 1.0 / d.Metrics.EmSize
	}
	px := unit * size

	f := &Font{
		Info: Info{Face: d.Name, Size: size},
		Common: Common{
			LineHeight: d.Metrics.LineHeight * px,
			Base:       d.Metrics.Ascender * px,
			ScaleW:     d.Atlas.Width,
			ScaleH:     d.Atlas.Height,
			Pages:      1,
		},
		DistanceField: DistanceField{
			FieldType:     d.Atlas.Type,
			DistanceRange: d.Atlas.DistanceRange,
		},
		Glyphs:   make(map[rune]Glyph, len(d.Glyphs)),
		Kernings: make(map[KernPair]float64, len(d.Kerning)),
	}

	// msdf-atlas-gen atlas coordinates default to a bottom-left
	// origin. Normalize everything to top-left.
	bottomUp := d.Atlas.YOrigin != "top"

	for _, g := range d.Glyphs {
		ng := Glyph{XAdvance: g.Advance * px}
		if g.PlaneBounds != nil {
			ng.XOffset = g.PlaneBounds.Left * px
			ng.YOffset = f.Common.Base - g.PlaneBounds.Top*px
		}
		if g.AtlasBounds != nil {
			b := g.AtlasBounds
			ng.X = b.Left
			ng.Width = math.Abs(b.Right - b.Left)
			ng.Height = math.Abs(b.Top - b.Bottom)
			if bottomUp {
				ng.Y = d.Atlas.Height - b.Top
			} else {
				ng.Y = b.Top
			}
		}
		f.Glyphs[g.Unicode] = ng
	}
	for _, k := range d.Kerning {
		f.Kernings[KernPair{First: k.Unicode1, Second: k.Unicode2}] = k.Advance * px
	}

	f.buildIndex()
	return f, nil
}

func parseBMFont(data []byte) (*Font, error) {
	var d bmfontDescriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, &ParseError{Schema: "bmfont", Err: err}
	}
	chars := d.Chars
	if len(chars) == 0 {
		chars = d.GlyphsAlias
	}
	if len(chars) == 0 {
		return nil, ErrNoGlyphs
	}

	// BMFont writes a negative size when the font was rendered by
	// pixel height.
	size := math.Abs(d.Info.Size)
	if size == 0 {
		size = d.Common.LineHeight
	}

	pages := d.Common.Pages
	if pages <= 0 {
		pages = 1
	}

	f := &Font{
		Info: Info{Face: d.Info.Face, Size: size},
		Common: Common{
			LineHeight: d.Common.LineHeight,
			Base:       d.Common.Base,
			ScaleW:     d.Common.ScaleW,
			ScaleH:     d.Common.ScaleH,
			Pages:      pages,
		},
		Glyphs:   make(map[rune]Glyph, len(chars)),
		Kernings: make(map[KernPair]float64, len(d.Kernings)),
	}
	if d.DistanceField != nil {
		f.DistanceField = DistanceField{
			FieldType:     d.DistanceField.FieldType,
			DistanceRange: d.DistanceField.DistanceRange,
		}
	}

	for _, c := range chars {
		f.Glyphs[c.ID] = Glyph{
			X:        c.X,
			Y:        c.Y,
			Width:    c.Width,
			Height:   c.Height,
			XOffset:  c.XOffset,
			YOffset:  c.YOffset,
			XAdvance: c.XAdvance,
			Page:     c.Page,
		}
	}
	for _, k := range d.Kernings {
		f.Kernings[KernPair{First: k.First, Second: k.Second}] = k.Amount
	}

	f.buildIndex()
	return f, nil
}
