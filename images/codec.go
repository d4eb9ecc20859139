package images

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// Decode reads and decodes the image at path. The format is detected
// from the file contents, except WebP which is selected by extension
// because its codec does not self-register.
//
// Arguments:
//   - path: Path to the image file.
//
// Returns:
//   - image.Image: The decoded image.
//   - error: An error if the file cannot be opened or decoded.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image")
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".webp") {
		img, err := webp.Decode(f)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode webp image")
		}
		return img, nil
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode image")
	}
	return img, nil
}

// Encode writes img to path, selecting the encoder from the path's
// extension.
//
// Arguments:
//   - path: Destination path; the extension picks the format.
//   - img: The image to encode.
//
// Returns:
//   - error: An error if the extension is unsupported or encoding fails.
func Encode(path string, img image.Image) error {
	var encode func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = png.Encode
	case ".jpg", ".jpeg":
		encode = func(w io.Writer, m image.Image) error {
			return jpeg.Encode(w, m, nil)
		}
	case ".webp":
		encode = func(w io.Writer, m image.Image) error {
			return webp.Encode(w, m, &webp.Options{Lossless: true})
		}
	case ".bmp":
		encode = bmp.Encode
	case ".gif":
		encode = func(w io.Writer, m image.Image) error {
			return gif.Encode(w, m, nil)
		}
	default:
		return errors.Errorf("unsupported output format: %q", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create output file")
	}
	defer f.Close()

	if err := encode(f, img); err != nil {
		return errors.Wrap(err, "failed to encode image")
	}
	return nil
}
