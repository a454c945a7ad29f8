// Package slicer turns a canvas's named graphics into cropped image files:
// it collects named shapes from the graphic tree, validates their names,
// plans integer-pixel crop rectangles under a scale factor, and crops them
// out of a pre-rendered canvas raster.
package slicer

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hellenic-development/graffle-slicer/pkg/geometry"
	"github.com/hellenic-development/graffle-slicer/pkg/graffle"
)

// NamedShape is a graphic confirmed to carry a name, the unit of export.
// ID is the graphic's document identifier, carried for diagnostics only.
type NamedShape struct {
	Name   string
	Bounds string
	ID     int
}

// CropPlan is one crop instruction: an integer pixel rectangle in the source
// raster's coordinate space and the file the cropped slice is written to.
type CropPlan struct {
	Name       string
	Width      int
	Height     int
	OffsetX    int
	OffsetY    int
	OutputPath string
}

// CollectNamedShapes walks a canvas's graphic tree and returns every
// descendant that carries a name, regardless of nesting depth. Unnamed
// graphics are walked for their children but not collected. An empty canvas
// yields an empty result.
func CollectNamedShapes(c *graffle.Canvas) []NamedShape {
	var shapes []NamedShape
	roots := c.Graphics()
	for i := range roots {
		collectNamed(&roots[i], &shapes)
	}
	return shapes
}

func collectNamed(g *graffle.Graphic, shapes *[]NamedShape) {
	if g.Name != "" {
		*shapes = append(*shapes, NamedShape{Name: g.Name, Bounds: g.Bounds, ID: g.ID})
	}
	for i := range g.Graphics {
		collectNamed(&g.Graphics[i], shapes)
	}
	for i := range g.GraphicsList {
		collectNamed(&g.GraphicsList[i], shapes)
	}
}

// DuplicateNames returns the sorted set of names that occur more than once,
// each listed exactly once. An empty result means the shape list is safe to
// export: every shape maps to a distinct output file.
func DuplicateNames(shapes []NamedShape) []string {
	counts := make(map[string]int, len(shapes))
	for _, s := range shapes {
		counts[s.Name]++
	}

	var dupes []string
	for name, n := range counts {
		if n > 1 {
			dupes = append(dupes, name)
		}
	}
	sort.Strings(dupes)
	return dupes
}

// ValidateNames fails if any shape name occurs more than once. Duplicate
// names would collide on the same output file, so this must pass before any
// crop is planned.
func ValidateNames(shapes []NamedShape) error {
	if dupes := DuplicateNames(shapes); len(dupes) > 0 {
		return fmt.Errorf("duplicate shape names: %s", strings.Join(dupes, ", "))
	}
	return nil
}

// SortByName orders shapes lexicographically (case-sensitive) in place,
// giving runs a deterministic, reproducible processing order. Output paths do
// not depend on order; only logs do.
func SortByName(shapes []NamedShape) {
	sort.Slice(shapes, func(i, j int) bool { return shapes[i].Name < shapes[j].Name })
}

// Plan converts a shape's rectangle into a crop instruction under the given
// scale factor. All four components are multiplied by scale and truncated
// toward zero; this is where the origin loses its fractional part. The output
// file is <outDir>/<name>.png with the shape name used verbatim as the stem.
func Plan(name string, r geometry.Rect, scale int, outDir string) CropPlan {
	s := float64(scale)
	return CropPlan{
		Name:       name,
		Width:      int(r.W * s),
		Height:     int(r.H * s),
		OffsetX:    int(r.X * s),
		OffsetY:    int(r.Y * s),
		OutputPath: filepath.Join(outDir, name+".png"),
	}
}
