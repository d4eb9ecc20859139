// Package util - path helpers for the expand CLI.
package util

import (
	"path/filepath"
	"strings"
)

// OutputSuffix is appended to the input filename's stem when no output
// path is given.
const OutputSuffix = "_expanded"

// DeriveOutputPath derives the default destination for an expanded
// image: the input's directory and extension, with OutputSuffix
// appended to the filename's stem.
//
// Arguments:
//   - inputPath: Path to the source image.
//
// Returns:
//   - string: The derived output path.
func DeriveOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	stem := strings.TrimSuffix(filepath.Base(inputPath), ext)
	return filepath.Join(filepath.Dir(inputPath), stem+OutputSuffix+ext)
}

// SupportedExtension reports whether path carries a raster extension
// the codec can read and write.
func SupportedExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".bmp", ".webp", ".gif":
		return true
	}
	return false
}
