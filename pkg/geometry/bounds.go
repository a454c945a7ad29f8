// Package geometry parses the textual bounds strings that diagram documents
// attach to their graphics and applies the slicing rounding policy.
package geometry

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Rect is an axis-aligned rectangle derived from a bounds string. The origin
// keeps its original precision; width and height are always whole numbers,
// rounded up at parse time so a crop never clips intended content. Truncation
// of the origin happens later, when the crop instruction is built.
type Rect struct {
	X, Y float64
	W, H float64
}

// Bounds strings look like {{19.5, 7}, {64, 64}}: origin first, size second.
// Whitespace after the separators is optional. Anchored so a bounds string
// with leading or trailing garbage is rejected.
var boundsRe = regexp.MustCompile(`^\{\{(\d+(?:\.\d+)?),\s*(\d+(?:\.\d+)?)\},\s*\{(\d+(?:\.\d+)?),\s*(\d+(?:\.\d+)?)\}\}$`)

// ParseBounds parses a bounds string of the form {{x, y}, {width, height}}
// into a Rect. The shape name is used only for diagnostics.
//
// Non-integer origins are kept as-is but produce an advisory warning, since
// the exported slice may land off the pixel grid and look blurry.
// Non-integer sizes are rounded up to the next whole unit, with a warning
// naming the rounded dimensions. Warnings are returned to the caller rather
// than logged here.
func ParseBounds(name, bounds string) (Rect, []string, error) {
	if bounds == "" {
		return Rect{}, nil, fmt.Errorf("shape %q has no Bounds", name)
	}

	m := boundsRe.FindStringSubmatch(bounds)
	if m == nil {
		return Rect{}, nil, fmt.Errorf("shape %q has unparseable Bounds %q", name, bounds)
	}

	x, _ := strconv.ParseFloat(m[1], 64)
	y, _ := strconv.ParseFloat(m[2], 64)
	w, _ := strconv.ParseFloat(m[3], 64)
	h, _ := strconv.ParseFloat(m[4], 64)

	var warnings []string
	if x != math.Trunc(x) || y != math.Trunc(y) {
		warnings = append(warnings,
			fmt.Sprintf("shape %q has a non-integer origin (%g, %g); the exported slice may look blurry", name, x, y))
	}
	if w != math.Ceil(w) || h != math.Ceil(h) {
		warnings = append(warnings,
			fmt.Sprintf("shape %q has a non-integer size (%g, %g); exporting with size rounded up to %gx%g",
				name, w, h, math.Ceil(w), math.Ceil(h)))
	}

	return Rect{X: x, Y: y, W: math.Ceil(w), H: math.Ceil(h)}, warnings, nil
}
