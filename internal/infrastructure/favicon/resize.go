// Package favicon provides the image backend and storage used around the
// favicon tracker: scaling, decoding, fetching and a PNG cache.
package favicon

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

var (
	// ErrEmptySource is returned when the source image has no pixels.
	ErrEmptySource = errors.New("favicon: source image is empty")
	// ErrInvalidTarget is returned for non-positive target dimensions.
	ErrInvalidTarget = errors.New("favicon: invalid target size")
)

// Fit selects how a source is mapped onto the target rectangle.
type Fit string

const (
	// FitStretch scales the whole source to the target, ignoring aspect ratio.
	FitStretch Fit = "stretch"
	// FitCrop center-crops the source to a square before scaling.
	FitCrop Fit = "crop"
)

// ParseFilter maps a filter name to an x/image interpolator.
func ParseFilter(name string) (draw.Interpolator, error) {
	switch strings.ToLower(name) {
	case "", "catmullrom":
		return draw.CatmullRom, nil
	case "bilinear":
		return draw.BiLinear, nil
	case "approxbilinear":
		return draw.ApproxBiLinear, nil
	case "nearest":
		return draw.NearestNeighbor, nil
	default:
		return nil, fmt.Errorf("unknown favicon filter %q", name)
	}
}

// ParseFit validates a fit mode name.
func ParseFit(name string) (Fit, error) {
	switch Fit(strings.ToLower(name)) {
	case "", FitStretch:
		return FitStretch, nil
	case FitCrop:
		return FitCrop, nil
	default:
		return "", fmt.Errorf("unknown favicon fit %q", name)
	}
}

// Scaler rescales icons with a high-quality interpolator.
// It implements port.ImageScaler.
type Scaler struct {
	filter draw.Interpolator
	fit    Fit
}

// NewScaler creates a scaler. A nil filter defaults to CatmullRom.
func NewScaler(filter draw.Interpolator, fit Fit) *Scaler {
	if filter == nil {
		filter = draw.CatmullRom
	}
	if fit == "" {
		fit = FitStretch
	}
	return &Scaler{filter: filter, fit: fit}
}

// Scale returns a new width×height RGBA raster. The source is never modified.
func (s *Scaler) Scale(_ context.Context, src image.Image, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidTarget, width, height)
	}
	if src == nil || src.Bounds().Empty() {
		return nil, ErrEmptySource
	}

	srcImg := src
	if s.fit == FitCrop {
		srcImg = cropImage(src, squareCrop(src.Bounds()))
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	s.filter.Scale(dst, dst.Bounds(), srcImg, srcImg.Bounds(), draw.Over, nil)
	return dst, nil
}

// squareCrop returns the largest centered square inside b.
func squareCrop(b image.Rectangle) image.Rectangle {
	w, h := b.Dx(), b.Dy()
	switch {
	case w > h:
		offset := (w - h) / 2
		return image.Rect(b.Min.X+offset, b.Min.Y, b.Min.X+offset+h, b.Max.Y)
	case h > w:
		offset := (h - w) / 2
		return image.Rect(b.Min.X, b.Min.Y+offset, b.Max.X, b.Min.Y+offset+w)
	default:
		return b
	}
}

// cropImage returns a cropped portion of the source image.
func cropImage(src image.Image, rect image.Rectangle) image.Image {
	// If the source supports SubImage, use it for efficiency
	if subImager, ok := src.(interface {
		SubImage(r image.Rectangle) image.Image
	}); ok {
		return subImager.SubImage(rect)
	}

	// Otherwise, copy pixels manually
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	for y := 0; y < rect.Dy(); y++ {
		for x := 0; x < rect.Dx(); x++ {
			dst.Set(x, y, src.At(rect.Min.X+x, rect.Min.Y+y))
		}
	}
	return dst
}
