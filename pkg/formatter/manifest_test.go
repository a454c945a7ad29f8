package formatter

import (
	"strings"
	"testing"

	"github.com/hellenic-development/graffle-slicer/pkg/slicer"
)

func TestToMarkdown(t *testing.T) {
	plans := []slicer.CropPlan{
		{Name: "a", Width: 20, Height: 20, OffsetX: 0, OffsetY: 0, OutputPath: "Icons/a.png"},
		{Name: "b", Width: 10, Height: 10, OffsetX: 20, OffsetY: 0, OutputPath: "Icons/b.png"},
	}

	md := ToMarkdown("Icons", 2, plans)

	for _, want := range []string{
		"# Slices - Icons",
		"2 slice(s) exported at 2x scale.",
		"| a | `Icons/a.png` | 20x20 | +0+0 |",
		"| b | `Icons/b.png` | 10x10 | +20+0 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("manifest missing %q:\n%s", want, md)
		}
	}
}

func TestToMarkdownNoSlices(t *testing.T) {
	md := ToMarkdown("Blank", 1, nil)

	if !strings.Contains(md, "0 slice(s)") {
		t.Errorf("manifest should report zero slices:\n%s", md)
	}
	if strings.Contains(md, "| Shape |") {
		t.Errorf("manifest should omit the table when there are no slices:\n%s", md)
	}
}
