package softvg

import (
	"errors"
	"image"
	"testing"
)

func checkerImage(t *testing.T) *Image {
	t.Helper()
	// 2x2: white, black / black, white.
	pix := []byte{
		255, 255, 255, 255, 0, 0, 0, 255,
		0, 0, 0, 255, 255, 255, 255, 255,
	}
	img, err := NewImage(pix, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestNewImageValidation(t *testing.T) {
	if _, err := NewImage(make([]byte, 16), 0, 2); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero width err = %v", err)
	}
	if _, err := NewImage(make([]byte, 8), 2, 2); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("short buffer err = %v", err)
	}
}

func TestNearestSampling(t *testing.T) {
	img := checkerImage(t)
	img.Filter = FilterNearest
	if c := img.sample(0.5, 0.5); c.R != 1 {
		t.Errorf("texel (0,0) = %+v, want white", c)
	}
	if c := img.sample(1.5, 0.5); c.R != 0 {
		t.Errorf("texel (1,0) = %+v, want black", c)
	}
}

func TestBilinearSampling(t *testing.T) {
	img := checkerImage(t)
	// At the shared corner of all four texels the checker blends to half.
	c := img.sample(1, 1)
	if c.R < 0.45 || c.R > 0.55 {
		t.Errorf("corner blend = %f, want about 0.5", c.R)
	}
	// At a texel center the sample is exact.
	if c := img.sample(0.5, 0.5); c.R != 1 {
		t.Errorf("texel center = %f, want 1", c.R)
	}
}

func TestWrapModes(t *testing.T) {
	img := checkerImage(t)
	img.Filter = FilterNearest

	img.Wrap = WrapRepeat
	if c := img.sample(2.5, 0.5); c.R != 1 {
		t.Errorf("repeat wrap = %+v, want texel (0,0)", c)
	}
	if c := img.sample(-0.5, 0.5); c.R != 0 {
		t.Errorf("negative repeat wrap = %+v, want texel (1,0)", c)
	}

	img.Wrap = WrapClamp
	if c := img.sample(10, 0.5); c.R != 0 {
		t.Errorf("clamp wrap = %+v, want edge texel (1,0)", c)
	}
	if c := img.sample(-10, 10); c.R != 0 {
		t.Errorf("clamp corner = %+v, want texel (0,1)", c)
	}
}

func TestImageFromNRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.Pix[0] = 200 // R of (0,0)
	img, err := ImageFromNRGBA(src)
	if err != nil {
		t.Fatal(err)
	}
	if img.Width != 3 || img.Height != 2 {
		t.Errorf("size = %dx%d", img.Width, img.Height)
	}
	if img.Pix[0] != 200 {
		t.Errorf("pixel data not carried over: %d", img.Pix[0])
	}

	// Subimage with a loose stride forces a copy.
	sub := src.SubImage(image.Rect(1, 0, 3, 2)).(*image.NRGBA)
	img2, err := ImageFromNRGBA(sub)
	if err != nil {
		t.Fatal(err)
	}
	if img2.Width != 2 || img2.Height != 2 {
		t.Errorf("subimage size = %dx%d", img2.Width, img2.Height)
	}
}
