package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
)

// Raster is raw icon pixel data as the OS icon subsystem returns it: the
// color bitmap in BGRA byte order with top-down rows, and the monochrome
// mask bitmap rendered through the same 32bpp geometry. Mask may be nil when
// the mask bitmap could not be read; missing mask bytes count as opaque.
type Raster struct {
	Width  int
	Height int
	Color  []byte
	Mask   []byte
}

// RGBA converts the raster into a correctly ordered, correctly transparent
// image.
//
// Per pixel: the 1st and 3rd bytes swap (BGR to RGB). When the color
// bitmap's own alpha byte is exactly zero, which is how legacy non-32-bit
// icon resources arrive, alpha is synthesized from the mask instead: mask 0
// is opaque, mask 255 is transparent, so alpha = 255 - maskByte. Pixels that
// already carry alpha are left untouched by mask processing.
func (r *Raster) RGBA() (*image.RGBA, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("%w: bad raster geometry %dx%d", ErrExtraction, r.Width, r.Height)
	}
	want := r.Width * r.Height * 4
	if len(r.Color) != want {
		return nil, fmt.Errorf("%w: color buffer holds %d bytes, want %d", ErrExtraction, len(r.Color), want)
	}

	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for i := 0; i < want; i += 4 {
		b, g, red, alpha := r.Color[i], r.Color[i+1], r.Color[i+2], r.Color[i+3]
		if alpha == 0 {
			var maskByte byte
			if i < len(r.Mask) {
				maskByte = r.Mask[i]
			}
			alpha = 255 - maskByte
		}
		img.Pix[i] = red
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = alpha
	}
	return img, nil
}

// EncodePNG serializes an image to PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: encode png: %v", ErrExtraction, err)
	}
	return buf.Bytes(), nil
}
