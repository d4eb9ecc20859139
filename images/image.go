// Package images - aspect ratio expansion utilities.
package images

import (
	"image/color"
	"strings"
)

const (
	// DefaultTargetRatio is the default target aspect ratio (width:height).
	DefaultTargetRatio = 1.91
	// DefaultSourceRatio is the default source aspect ratio (width:height).
	DefaultSourceRatio = 16.0
)

// PaddingColor names a padding fill color.
type PaddingColor string

const (
	// PaddingBlack fills the margins with black.
	PaddingBlack PaddingColor = "black"
	// PaddingWhite fills the margins with white.
	PaddingWhite PaddingColor = "white"
)

// ParsePaddingColor resolves a color name to a PaddingColor.
//
// Arguments:
//   - name: The color name to resolve.
//
// Returns:
//   - PaddingColor: The resolved color.
//
// Matching is case-insensitive. Any name other than "white" resolves to
// black; unknown names are not an error.
func ParsePaddingColor(name string) PaddingColor {
	if strings.ToLower(name) == string(PaddingWhite) {
		return PaddingWhite
	}
	return PaddingBlack
}

// background returns the canvas fill color. Alpha is always fully
// opaque; whether it is carried depends on the canvas type.
func (c PaddingColor) background() color.Color {
	if c == PaddingWhite {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.NRGBA{A: 255}
}

// Options configures an expansion.
type Options struct {
	// TargetRatio is the target aspect ratio (width:height).
	TargetRatio float64
	// SourceRatio is the source aspect ratio (width:height). It is
	// accepted for interface symmetry and never consulted by the
	// computation.
	SourceRatio float64
	// Color is the padding fill color.
	Color PaddingColor
	// ScaleHeight, when positive, scales the source to this height
	// (preserving its aspect ratio) before expansion.
	ScaleHeight int
}

// DefaultOptions returns an Options populated with the documented
// defaults: 1.91 target ratio, 16.0 source ratio, black padding.
func DefaultOptions() Options {
	return Options{
		TargetRatio: DefaultTargetRatio,
		SourceRatio: DefaultSourceRatio,
		Color:       PaddingBlack,
	}
}
