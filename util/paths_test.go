package util

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDeriveOutputPath validates the _expanded stem-suffix derivation across
// bare names, nested paths, and extensionless inputs.
func TestDeriveOutputPath(t *testing.T) {
	assert.Equal(t, "photo_expanded.png", DeriveOutputPath("photo.png"))
	assert.Equal(t, filepath.Join("some", "dir", "banner_expanded.jpg"),
		DeriveOutputPath(filepath.Join("some", "dir", "banner.jpg")))
	assert.Equal(t, "banner_expanded", DeriveOutputPath("banner"),
		"inputs without an extension keep none")
}

func TestSupportedExtension(t *testing.T) {
	assert.True(t, SupportedExtension("a.png"))
	assert.True(t, SupportedExtension("a.JPG"), "matching is case-insensitive")
	assert.True(t, SupportedExtension("a.jpeg"))
	assert.True(t, SupportedExtension("a.webp"))
	assert.True(t, SupportedExtension("a.bmp"))
	assert.True(t, SupportedExtension("a.gif"))
	assert.False(t, SupportedExtension("a.tiff"))
	assert.False(t, SupportedExtension("a"))
}
