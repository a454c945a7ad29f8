package geometry

import (
	"strings"
	"testing"
)

func TestParseBounds(t *testing.T) {
	tests := []struct {
		name      string
		bounds    string
		want      Rect
		wantWarns int
		wantErr   bool
	}{
		{
			name:   "whole numbers",
			bounds: "{{0, 0}, {10, 10}}",
			want:   Rect{X: 0, Y: 0, W: 10, H: 10},
		},
		{
			name:   "no spaces after commas",
			bounds: "{{10,0},{5,5}}",
			want:   Rect{X: 10, Y: 0, W: 5, H: 5},
		},
		{
			name:      "fractional origin kept, warned",
			bounds:    "{{19.5, 7}, {64, 64}}",
			want:      Rect{X: 19.5, Y: 7, W: 64, H: 64},
			wantWarns: 1,
		},
		{
			name:      "fractional size rounded up, warned",
			bounds:    "{{0, 0}, {10.1, 20.9}}",
			want:      Rect{X: 0, Y: 0, W: 11, H: 21},
			wantWarns: 1,
		},
		{
			name:      "fractional origin and size",
			bounds:    "{{1.5, 2}, {10, 10.4}}",
			want:      Rect{X: 1.5, Y: 2, W: 10, H: 11},
			wantWarns: 2,
		},
		{
			name:    "empty bounds",
			bounds:  "",
			wantErr: true,
		},
		{
			name:    "missing outer braces",
			bounds:  "{0, 0}, {10, 10}",
			wantErr: true,
		},
		{
			name:    "negative coordinate rejected",
			bounds:  "{{-3, 0}, {10, 10}}",
			wantErr: true,
		},
		{
			name:    "trailing garbage rejected",
			bounds:  "{{0, 0}, {10, 10}} extra",
			wantErr: true,
		},
		{
			name:    "non-numeric component",
			bounds:  "{{a, 0}, {10, 10}}",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warns, err := ParseBounds("shape", tt.bounds)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBounds() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("ParseBounds() = %+v, want %+v", got, tt.want)
			}
			if len(warns) != tt.wantWarns {
				t.Errorf("ParseBounds() produced %d warning(s), want %d: %v", len(warns), tt.wantWarns, warns)
			}
		})
	}
}

func TestParseBoundsWarningsNameShape(t *testing.T) {
	_, warns, err := ParseBounds("icon", "{{1.5, 2}, {10, 10.4}}")
	if err != nil {
		t.Fatalf("ParseBounds() unexpected error: %v", err)
	}
	for _, w := range warns {
		if !strings.Contains(w, `"icon"`) {
			t.Errorf("warning does not name the shape: %q", w)
		}
	}
}

func TestParseBoundsErrorNamesShape(t *testing.T) {
	_, _, err := ParseBounds("logo", "")
	if err == nil || !strings.Contains(err.Error(), `"logo"`) {
		t.Errorf("error should name the shape, got %v", err)
	}
}
