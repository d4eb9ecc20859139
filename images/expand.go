package images

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/imgtools/go-expand/util"
)

// Expand pads src symmetrically on the horizontal axis to reach
// opts.TargetRatio, returning a new canvas with the source pasted in
// the center over a uniform background.
//
// Arguments:
//   - src: The image to expand. It is read, never mutated.
//   - opts: The expansion options.
//
// Returns:
//   - image.Image: The expanded canvas.
//
// The canvas height equals the source height and the canvas width is
// floor(height * TargetRatio). A target ratio narrower than the source
// produces a negative centering offset; the paste then clips against
// the canvas bounds, so the result degrades to a horizontal center
// crop rather than an error.
func Expand(src image.Image, opts Options) image.Image {
	bounds := src.Bounds()
	srcWidth := bounds.Dx()
	srcHeight := bounds.Dy()

	newWidth := int(float64(srcHeight) * opts.TargetRatio)
	newHeight := srcHeight

	canvas := newCanvas(src, newWidth, newHeight)
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(opts.Color.background()), image.Point{}, draw.Src)

	// Straight overwrite: source transparency is copied as-is, not
	// blended against the background.
	xOffset := floorDiv(newWidth-srcWidth, 2)
	target := image.Rect(xOffset, 0, xOffset+srcWidth, newHeight)
	draw.Draw(canvas, target, src, bounds.Min, draw.Src)

	return canvas
}

// ExpandFile expands the image stored at inputPath and writes the
// result to outputPath, deriving the destination from the input path
// when outputPath is empty. Progress is reported on stdout.
//
// Arguments:
//   - inputPath: Path to the source image.
//   - outputPath: Destination path, or "" to derive one.
//   - opts: The expansion options.
//
// Returns:
//   - string: The path the expanded image was written to.
//   - error: An error if decoding, encoding, or writing fails.
func ExpandFile(inputPath, outputPath string, opts Options) (string, error) {
	img, err := Decode(inputPath)
	if err != nil {
		return "", err
	}

	bounds := img.Bounds()
	fmt.Printf("Original image size: %dx%d\n", bounds.Dx(), bounds.Dy())
	fmt.Printf("Original aspect ratio: %.2f:1\n", float64(bounds.Dx())/float64(bounds.Dy()))

	if opts.ScaleHeight > 0 {
		img = ScaleToHeight(img, opts.ScaleHeight)
	}

	expanded := Expand(img, opts)

	out := expanded.Bounds()
	fmt.Printf("Target aspect ratio: %g:1\n", opts.TargetRatio)
	fmt.Printf("New image size: %dx%d\n", out.Dx(), out.Dy())

	if outputPath == "" {
		outputPath = util.DeriveOutputPath(inputPath)
	}

	if err := Encode(outputPath, expanded); err != nil {
		return "", err
	}
	fmt.Printf("Saved expanded image to: %s\n", outputPath)

	return outputPath, nil
}

// newCanvas allocates the output canvas. Sources carrying transparency
// get an NRGBA canvas so their alpha channel survives the overwrite;
// fully opaque sources get RGBA.
func newCanvas(src image.Image, width, height int) draw.Image {
	if opaque(src) {
		return image.NewRGBA(image.Rect(0, 0, width, height))
	}
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

func opaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return true
}

// floorDiv divides rounding toward negative infinity, so negative
// centering offsets follow the same floor semantics as the dimension
// math.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
