package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/imgtools/go-expand/images"
	"github.com/imgtools/go-expand/util"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse command line arguments
	var (
		outputPath  string
		colorName   string
		targetRatio float64
		sourceRatio float64
		scaleHeight int
	)
	flag.StringVar(&outputPath, "o", "", "Output image path (default: adds '_expanded' suffix to input filename)")
	flag.StringVar(&outputPath, "output", "", "Output image path (default: adds '_expanded' suffix to input filename)")
	flag.StringVar(&colorName, "c", string(images.PaddingBlack), "Padding color: black or white")
	flag.StringVar(&colorName, "color", string(images.PaddingBlack), "Padding color: black or white")
	flag.Float64Var(&targetRatio, "t", images.DefaultTargetRatio, "Target aspect ratio width:height")
	flag.Float64Var(&targetRatio, "target-ratio", images.DefaultTargetRatio, "Target aspect ratio width:height")
	flag.Float64Var(&sourceRatio, "s", images.DefaultSourceRatio, "Source aspect ratio width:height")
	flag.Float64Var(&sourceRatio, "source-ratio", images.DefaultSourceRatio, "Source aspect ratio width:height")
	flag.IntVar(&scaleHeight, "height", 0, "Scale the source to this height before padding (0 = keep)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		return 1
	}
	inputPath := flag.Arg(0)

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		fmt.Printf("Error: Input file '%s' does not exist\n", inputPath)
		return 1
	}

	if outputPath != "" && !util.SupportedExtension(outputPath) {
		fmt.Printf("Error: unsupported output format '%s'\n", filepath.Ext(outputPath))
		return 1
	}

	opts := images.Options{
		TargetRatio: targetRatio,
		SourceRatio: sourceRatio,
		Color:       images.ParsePaddingColor(colorName),
		ScaleHeight: scaleHeight,
	}

	if _, err := images.ExpandFile(inputPath, outputPath, opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] input\n\n", filepath.Base(os.Args[0]))
	fmt.Fprintf(os.Stderr, "Expand an image to a target aspect ratio by padding its sides.\n\nOptions:\n")
	flag.PrintDefaults()
}
