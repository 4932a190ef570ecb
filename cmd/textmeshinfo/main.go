// Command textmeshinfo builds text geometry from a font or atlas
// descriptor and prints buffer statistics, for inspecting what a
// renderer would upload.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gogpu/textmesh"
	"github.com/gogpu/textmesh/atlas"
	"github.com/gogpu/textmesh/glyphcache"
	"github.com/gogpu/textmesh/layout"
	"github.com/gogpu/textmesh/opentype"
	"github.com/gogpu/textmesh/vector"
)

func main() {
	var (
		fontPath  = flag.String("font", "", "path to a .ttf/.otf font (vector pipeline)")
		atlasPath = flag.String("atlas", "", "path to an atlas descriptor JSON (atlas pipeline)")
		text      = flag.String("text", "Hello, world", "text to lay out")
		size      = flag.Float64("size", 32, "font size in pixels")
		maxWidth  = flag.Float64("maxwidth", 0, "wrap width, 0 for unbounded")
	)
	flag.Parse()

	opts := layout.DefaultOptions(*size)
	opts.MaxWidth = *maxWidth

	switch {
	case *fontPath != "":
		runVector(*fontPath, *text, opts)
	case *atlasPath != "":
		runAtlas(*atlasPath, *text, opts)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runVector(path, text string, opts layout.Options) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("reading font: %v", err)
	}
	face, err := opentype.ParseFace(data)
	if err != nil {
		log.Fatalf("parsing font: %v", err)
	}

	cache := glyphcache.New()
	builder := vector.NewBuilder(cache)
	mesh, metrics, err := builder.Build(text, face, opts)
	if err != nil {
		log.Fatalf("building geometry: %v", err)
	}

	fmt.Printf("font: %s (%d glyphs, %.0f units/em)\n", face.Name(), face.NumGlyphs(), face.UnitsPerEm())
	printMesh(mesh, metrics)

	hits, misses, _ := cache.StatsSnapshot()
	fmt.Printf("cache: %d hits, %d misses, %d unique glyphs\n", hits, misses, cache.Len())
	cache.ReleaseFont(face.FontID())
}

func runAtlas(path, text string, opts layout.Options) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("reading atlas descriptor: %v", err)
	}
	font, err := atlas.Parse(data)
	if err != nil {
		log.Fatalf("parsing atlas descriptor: %v", err)
	}

	mesh, metrics, err := atlas.NewBuilder().Build(text, font, opts)
	if err != nil {
		log.Fatalf("building geometry: %v", err)
	}

	fmt.Printf("atlas: %s, %d glyphs, %s field, %.0fx%.0f texture\n",
		font.Info.Face, len(font.Glyphs), font.DistanceField.FieldType,
		font.Common.ScaleW, font.Common.ScaleH)
	printMesh(mesh, metrics)
}

func printMesh(mesh *textmesh.Mesh, metrics layout.Metrics) {
	fmt.Printf("layout: %d glyphs on %d lines, %.1f x %.1f\n",
		len(metrics.Glyphs), metrics.Lines, metrics.Width, metrics.Height)
	fmt.Printf("mesh: %d vertices, %d triangles, %v indices\n",
		mesh.VertexCount(), mesh.TriangleCount(), mesh.IndexFormat())
	if !mesh.Bounds.IsEmpty() {
		fmt.Printf("bounds: (%.1f, %.1f) to (%.1f, %.1f)\n",
			mesh.Bounds.MinX, mesh.Bounds.MinY, mesh.Bounds.MaxX, mesh.Bounds.MaxY)
	}
}
