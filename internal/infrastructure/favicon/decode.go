package favicon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

// MaxDecodeEdge bounds the width and height of a decodable icon. Dimensions
// come from the header, so oversized images are rejected before any pixel
// buffer is allocated.
const MaxDecodeEdge = 4096

var (
	// ErrUnsupportedFormat is returned for content that is not a supported raster format.
	ErrUnsupportedFormat = errors.New("favicon: unsupported image format")
	// ErrImageTooLarge is returned when an icon header exceeds MaxDecodeEdge.
	ErrImageTooLarge = errors.New("favicon: image too large")
)

type codec struct {
	decode func(r io.Reader) (image.Image, error)
	config func(r io.Reader) (image.Config, error)
}

var codecs = map[string]codec{
	"image/png":  {png.Decode, png.DecodeConfig},
	"image/jpeg": {jpeg.Decode, jpeg.DecodeConfig},
	"image/gif":  {gif.Decode, gif.DecodeConfig},
	"image/bmp":  {bmp.Decode, bmp.DecodeConfig},
	"image/webp": {webp.Decode, webp.DecodeConfig},
}

// Decode sniffs data and decodes it as a raster icon.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrUnsupportedFormat)
	}

	mtype := mimetype.Detect(data)
	c, ok := codecs[mtype.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, mtype.String())
	}

	cfg, err := c.config(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s header: %w", mtype.String(), err)
	}
	if cfg.Width > MaxDecodeEdge || cfg.Height > MaxDecodeEdge {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrImageTooLarge, cfg.Width, cfg.Height, MaxDecodeEdge)
	}

	img, err := c.decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", mtype.String(), err)
	}
	return img, nil
}
