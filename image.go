package softvg

import (
	"fmt"
	"image"
	"math"
)

// WrapMode controls how image patterns sample outside the image bounds.
type WrapMode uint8

const (
	// WrapRepeat tiles the image in both directions.
	WrapRepeat WrapMode = iota
	// WrapClamp extends the edge pixels.
	WrapClamp
)

// FilterMode selects the sampling filter for image patterns.
type FilterMode uint8

const (
	// FilterBilinear blends the four nearest texels.
	FilterBilinear FilterMode = iota
	// FilterNearest snaps to the nearest texel.
	FilterNearest
)

// Image is a straight-alpha RGBA source for ImagePattern paints. Pix holds
// 4 bytes per pixel in R, G, B, A order, rows tightly packed.
type Image struct {
	Pix    []byte
	Width  int
	Height int
	Wrap   WrapMode
	Filter FilterMode
}

// NewImage wraps pix as an image of the given size. The pixel slice is
// retained, not copied.
func NewImage(pix []byte, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("softvg: invalid image size %dx%d: %w", width, height, ErrInvalidSize)
	}
	if len(pix) < width*height*4 {
		return nil, fmt.Errorf("softvg: image buffer %d bytes, need %d: %w", len(pix), width*height*4, ErrBufferTooSmall)
	}
	return &Image{Pix: pix, Width: width, Height: height}, nil
}

// ImageFromNRGBA wraps a standard library image without copying when its
// stride is tight, copying row by row otherwise.
func ImageFromNRGBA(src *image.NRGBA) (*Image, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if src.Stride == w*4 && b.Min == (image.Point{}) {
		return NewImage(src.Pix, w, h)
	}
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		row := src.Pix[(b.Min.Y+y-src.Rect.Min.Y)*src.Stride+(b.Min.X-src.Rect.Min.X)*4:]
		copy(pix[y*w*4:(y+1)*w*4], row[:w*4])
	}
	return NewImage(pix, w, h)
}

func (im *Image) texel(x, y int) RGBA {
	switch im.Wrap {
	case WrapClamp:
		if x < 0 {
			x = 0
		} else if x >= im.Width {
			x = im.Width - 1
		}
		if y < 0 {
			y = 0
		} else if y >= im.Height {
			y = im.Height - 1
		}
	default:
		x = wrapIndex(x, im.Width)
		y = wrapIndex(y, im.Height)
	}
	i := (y*im.Width + x) * 4
	return RGBA{
		R: float64(im.Pix[i]) / 255,
		G: float64(im.Pix[i+1]) / 255,
		B: float64(im.Pix[i+2]) / 255,
		A: float64(im.Pix[i+3]) / 255,
	}
}

// sample reads the image at continuous coordinates (x, y), texel centers at
// half-integer positions.
func (im *Image) sample(x, y float64) RGBA {
	if im.Filter == FilterNearest {
		return im.texel(int(math.Floor(x)), int(math.Floor(y)))
	}
	fx := x - 0.5
	fy := y - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := im.texel(x0, y0)
	c10 := im.texel(x0+1, y0)
	c01 := im.texel(x0, y0+1)
	c11 := im.texel(x0+1, y0+1)

	top := lerpRGBA(c00, c10, tx)
	bot := lerpRGBA(c01, c11, tx)
	return lerpRGBA(top, bot, ty)
}

func lerpRGBA(a, b RGBA, t float64) RGBA {
	return RGBA{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
