package slicer

import (
	"fmt"
	"image"
	"os/exec"

	"github.com/disintegration/imaging"
)

// Cropper crops planned regions out of a single pre-rendered source raster.
// The source is fixed at construction time; Crop writes exactly one file at
// the plan's output path, overwriting any existing file.
type Cropper interface {
	Crop(plan CropPlan) error
}

// imagingCropper crops in-process. The source image is decoded once and held
// for the duration of the run; crops are re-anchored at the origin so no
// source-offset metadata survives into the slice.
type imagingCropper struct {
	src image.Image
}

// NewImagingCropper decodes the source raster at srcPath and returns a
// Cropper that slices it in-process.
func NewImagingCropper(srcPath string) (Cropper, error) {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open source image %q: %w", srcPath, err)
	}
	return &imagingCropper{src: img}, nil
}

func (c *imagingCropper) Crop(plan CropPlan) error {
	r := image.Rect(plan.OffsetX, plan.OffsetY, plan.OffsetX+plan.Width, plan.OffsetY+plan.Height)
	slice := imaging.Crop(c.src, r)
	if err := imaging.Save(slice, plan.OutputPath); err != nil {
		return fmt.Errorf("failed to write slice %q: %w", plan.OutputPath, err)
	}
	return nil
}

// magickCropper shells out to ImageMagick. +repage discards the canvas-origin
// metadata ImageMagick would otherwise embed in the crop, so slices combine
// cleanly later (e.g. into an animated composite).
type magickCropper struct {
	bin string
	src string
}

// NewMagickCropper returns a Cropper that invokes the ImageMagick binary
// against the source raster at srcPath. Returns an error if ImageMagick is
// not installed.
func NewMagickCropper(srcPath string) (Cropper, error) {
	bin, err := exec.LookPath("magick")
	if err != nil {
		return nil, fmt.Errorf("ImageMagick not found in PATH: %w", err)
	}
	return &magickCropper{bin: bin, src: srcPath}, nil
}

func (c *magickCropper) Crop(plan CropPlan) error {
	geom := fmt.Sprintf("%dx%d+%d+%d", plan.Width, plan.Height, plan.OffsetX, plan.OffsetY)
	cmd := exec.Command(c.bin, c.src, "-crop", geom, "+repage", plan.OutputPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("magick -crop %s failed: %w\n%s", geom, err, out)
	}
	return nil
}
