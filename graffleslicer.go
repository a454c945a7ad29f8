package graffleslicer

import (
	"fmt"
	"os"

	"github.com/hellenic-development/graffle-slicer/pkg/formatter"
	"github.com/hellenic-development/graffle-slicer/pkg/geometry"
	"github.com/hellenic-development/graffle-slicer/pkg/graffle"
	"github.com/hellenic-development/graffle-slicer/pkg/slicer"
)

// Options configures a slicing run.
type Options struct {
	DocumentPath string         // converted diagram document (JSON)
	ImagePath    string         // pre-rendered raster of the selected canvas, at Scale
	Canvas       string         // canvas title; empty = canvas active at last save
	Scale        int            // positive integer multiplier, 0 = 1
	OutputDir    string         // empty = canvas title
	Cropper      slicer.Cropper // nil = in-process cropper over ImagePath
	Logger       Logger         // nil = no logging
}

// Logger receives progress and advisory messages. A nil Logger means silent
// operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the slicing output.
type Result struct {
	CanvasTitle string
	Slices      []slicer.CropPlan
	Markdown    string // slice manifest
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// Run executes the slicing pipeline and returns the result.
//
// The pipeline is strictly staged: the canvas is selected, every named shape
// is collected and validated, and every crop is planned before the first
// slice is written. Any structural or validation error therefore aborts with
// the output directory untouched (beyond its creation). Crops then run
// sequentially in name order; the first crop failure aborts the run, leaving
// earlier slices in place.
func Run(opts Options) (*Result, error) {
	// Apply defaults.
	if opts.Scale == 0 {
		opts.Scale = 1
	}
	if opts.Scale < 1 {
		return nil, fmt.Errorf("scale factor must be a positive integer, got %d", opts.Scale)
	}

	opts.logInfo("Loading document %s...", opts.DocumentPath)
	doc, err := graffle.LoadDocument(opts.DocumentPath)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	var canvas *graffle.Canvas
	if opts.Canvas != "" {
		canvas, err = doc.CanvasByTitle(opts.Canvas)
	} else {
		canvas, err = doc.CurrentCanvas()
	}
	if err != nil {
		return nil, fmt.Errorf("select canvas: %w", err)
	}
	opts.logInfo("Canvas: %s", canvas.SheetTitle)

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = canvas.SheetTitle
	}
	if info, err := os.Stat(outDir); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("output path %q exists and is not a directory", outDir)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory %q: %w", outDir, err)
	}

	shapes := slicer.CollectNamedShapes(canvas)
	opts.logInfo("Found %d named shape(s)", len(shapes))

	if err := slicer.ValidateNames(shapes); err != nil {
		return nil, err
	}
	slicer.SortByName(shapes)

	// Plan every crop up front so bounds errors surface before any file is
	// written.
	plans := make([]slicer.CropPlan, 0, len(shapes))
	for _, shape := range shapes {
		rect, warnings, err := geometry.ParseBounds(shape.Name, shape.Bounds)
		if err != nil {
			return nil, err
		}
		for _, w := range warnings {
			opts.logWarn("%s", w)
		}
		plans = append(plans, slicer.Plan(shape.Name, rect, opts.Scale, outDir))
	}

	cropper := opts.Cropper
	if cropper == nil && len(plans) > 0 {
		cropper, err = slicer.NewImagingCropper(opts.ImagePath)
		if err != nil {
			return nil, err
		}
	}

	for _, plan := range plans {
		opts.logInfo("Exporting %s", plan.Name)
		if err := cropper.Crop(plan); err != nil {
			return nil, fmt.Errorf("slice %s: %w", plan.Name, err)
		}
	}

	return &Result{
		CanvasTitle: canvas.SheetTitle,
		Slices:      plans,
		Markdown:    formatter.ToMarkdown(canvas.SheetTitle, opts.Scale, plans),
	}, nil
}
