// Package downsample decodes source images and shrinks them to the bead
// grid resolution.
package downsample

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrInvalidTargetWidth is returned for a target width below 1.
	ErrInvalidTargetWidth = errors.New("invalid target width")
	// ErrImageDecode is returned when the source cannot be read as an image.
	ErrImageDecode = errors.New("image decode error")
)

// Filter is the resampling kernel. Box averages every source pixel that
// falls inside a cell, which keeps sharp edges from aliasing.
var Filter = imaging.Box

// TargetHeight keeps the source aspect ratio: round(targetWidth*srcH/srcW),
// rounding halves away from zero, never less than one row.
func TargetHeight(srcW, srcH, targetWidth int) int {
	if srcW <= 0 || srcH <= 0 || targetWidth <= 0 {
		return 0
	}
	h := int(math.Round(float64(targetWidth) * float64(srcH) / float64(srcW)))
	if h < 1 {
		h = 1
	}
	return h
}

// Resize shrinks img to targetWidth columns, keeping the aspect ratio.
func Resize(img image.Image, targetWidth int) (*image.NRGBA, error) {
	if targetWidth < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTargetWidth, targetWidth)
	}
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrImageDecode)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty image %dx%d", ErrImageDecode, b.Dx(), b.Dy())
	}

	h := TargetHeight(b.Dx(), b.Dy(), targetWidth)
	return imaging.Resize(img, targetWidth, h, Filter), nil
}

// Decode reads an image, applying any EXIF orientation.
// Supported: png, jpeg, gif, bmp, tiff, webp.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	return img, nil
}

// Open decodes the image file at path.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageDecode, path, err)
	}
	return img, nil
}
