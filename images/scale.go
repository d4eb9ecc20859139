package images

import (
	"image"

	"github.com/nfnt/resize"
)

// ScaleToHeight resizes img to the given height using Lanczos3
// resampling, preserving its aspect ratio. A non-positive height or a
// source already at that height returns img unchanged.
func ScaleToHeight(img image.Image, height int) image.Image {
	if height <= 0 || img.Bounds().Dy() == height {
		return img
	}
	return resize.Resize(0, uint(height), img, resize.Lanczos3)
}
