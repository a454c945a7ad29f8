// Package formatter renders a run's results as a markdown manifest.
package formatter

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/graffle-slicer/pkg/slicer"
)

// ToMarkdown renders a markdown manifest of the slices produced from one
// canvas: which shape each file came from, its pixel size, and its offset in
// the source raster. The manifest is meant to be committed next to the
// exported assets so reviewers can see what a re-export will touch.
func ToMarkdown(canvasTitle string, scale int, plans []slicer.CropPlan) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Slices - %s\n\n", canvasTitle))
	sb.WriteString(fmt.Sprintf("%d slice(s) exported at %dx scale.\n\n", len(plans), scale))

	if len(plans) == 0 {
		return sb.String()
	}

	sb.WriteString("| Shape | File | Size | Offset |\n")
	sb.WriteString("|-------|------|------|--------|\n")
	for _, p := range plans {
		sb.WriteString(fmt.Sprintf("| %s | `%s` | %dx%d | +%d+%d |\n",
			p.Name, p.OutputPath, p.Width, p.Height, p.OffsetX, p.OffsetY))
	}
	sb.WriteString("\n")

	return sb.String()
}
