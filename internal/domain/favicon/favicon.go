// Package favicon holds the favicon selection policy used by a tab to pick
// its representative icon out of the candidates delivered during a page load.
package favicon

import "image"

// Size is the intrinsic pixel size of an icon.
type Size struct {
	Width  int
	Height int
}

// SizeOf returns the bounds size of img, or the zero Size for nil.
func SizeOf(img image.Image) Size {
	if img == nil {
		return Size{}
	}
	b := img.Bounds()
	return Size{Width: b.Dx(), Height: b.Dy()}
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Square reports whether width equals height.
func (s Size) Square() bool {
	return s.Width == s.Height
}

// AtLeast reports whether both dimensions reach edge.
func (s Size) AtLeast(edge int) bool {
	return s.Width >= edge && s.Height >= edge
}

// Candidate is an icon offered by the engine while a page loads.
// The image is borrowed and must not be mutated.
type Candidate struct {
	Image   image.Image
	Size    Size
	PageURL string
}

// Valid reports whether the candidate carries an image with positive dimensions.
func (c Candidate) Valid() bool {
	return c.Image != nil && c.Size.Valid()
}

// Held is the icon a tab currently represents.
// Source is the intrinsic size of the candidate that produced Image, not of Image itself.
type Held struct {
	Image     image.Image
	Source    Size
	SourceURL string
}
