package main

import (
	"fmt"
	"os"

	graffleslicer "github.com/hellenic-development/graffle-slicer"
	"github.com/hellenic-development/graffle-slicer/pkg/graffle"
	"github.com/hellenic-development/graffle-slicer/pkg/slicer"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = graffle.Version

var (
	documentPath string
	imagePath    string
	canvasTitle  string
	scale        int
	outputDir    string
	manifestFile string
	useMagick    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "graffle-slicer",
		Short: "Slice named shapes out of a rendered diagram canvas",
		Long:  "A tool to crop each named shape of a diagram canvas out of a pre-rendered raster image, producing one PNG per shape",
		Run:   run,
	}

	rootCmd.Flags().StringVarP(&documentPath, "document", "d", "", "Converted diagram document, JSON (required)")
	rootCmd.Flags().StringVarP(&imagePath, "image", "i", "", "Pre-rendered canvas raster image (required)")
	rootCmd.Flags().StringVarP(&canvasTitle, "canvas", "c", "", "Canvas title (default: canvas active at last save)")
	rootCmd.Flags().IntVarP(&scale, "scale", "s", 1, "Integer scale factor the raster was rendered at")
	rootCmd.Flags().StringVarP(&outputDir, "out", "o", "", "Output directory for slices (default: canvas title)")
	rootCmd.Flags().StringVar(&manifestFile, "manifest", "", "Write a markdown manifest of produced slices to this file")
	rootCmd.Flags().BoolVar(&useMagick, "magick", false, "Crop with ImageMagick instead of in-process")

	rootCmd.MarkFlagRequired("document")
	rootCmd.MarkFlagRequired("image")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("graffle-slicer version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🔪 Graffle Slicer")
	cyan.Println("==================")
	cyan.Println()

	opts := graffleslicer.Options{
		DocumentPath: documentPath,
		ImagePath:    imagePath,
		Canvas:       canvasTitle,
		Scale:        scale,
		OutputDir:    outputDir,
		Logger:       &cliLogger{},
	}

	// ImageMagick is opt-in; its absence is a precondition error, checked
	// before the pipeline touches the output directory.
	if useMagick {
		cropper, err := slicer.NewMagickCropper(imagePath)
		if err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		opts.Cropper = cropper
	}

	result, err := graffleslicer.Run(opts)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cyan.Println("\n📊 Slicing Summary:")
	fmt.Printf("  • Canvas: %s\n", result.CanvasTitle)
	fmt.Printf("  • Slices: %d\n", len(result.Slices))
	fmt.Printf("  • Scale: %dx\n", scale)

	if manifestFile != "" {
		green.Printf("\n💾 Writing manifest to %s... ", manifestFile)
		if err := os.WriteFile(manifestFile, []byte(result.Markdown), 0644); err != nil {
			red.Printf("✗\n")
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		green.Println("✓")
	}

	green.Printf("\n✨ Successfully sliced %d shape(s) from %s\n\n", len(result.Slices), result.CanvasTitle)
}

// cliLogger implements graffleslicer.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
