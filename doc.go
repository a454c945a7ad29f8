// Package graffleslicer extracts named regions from a structured diagram
// document and produces one cropped PNG per named shape from a single
// pre-rendered canvas raster, scaled by an integer factor.
//
// The CLI lives in cmd/graffle-slicer; this root package exposes the same
// pipeline as a Go API so that callers can embed slicing in their own tools
// without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named graffleslicer:
//
//	import "github.com/hellenic-development/graffle-slicer" // package graffleslicer
//
// # Quick start
//
//	result, err := graffleslicer.Run(graffleslicer.Options{
//	    DocumentPath: "diagram.json",
//	    ImagePath:    "canvas@2x.png",
//	    Scale:        2,
//	    OutputDir:    "assets",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("SLICES.md", []byte(result.Markdown), 0644)
//
// # Inputs
//
// The document is the JSON form of the diagram's container format; converting
// from the native format is the caller's job. The image is a raster of the
// whole selected canvas, rendered at the same scale passed in
// [Options.Scale]. Any graphic carrying a name is exported; names must be
// unique within a canvas and are used verbatim as file stems.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages and advisory warnings. A nil Logger silences all output.
//
// # Cropping
//
// By default slices are cropped in-process. Pass a [slicer.Cropper] in
// [Options.Cropper] to crop differently, e.g. via ImageMagick with
// [slicer.NewMagickCropper].
package graffleslicer
