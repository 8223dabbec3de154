package softvg

import "fmt"

// Framebuffer describes the pixel buffer a Context renders into. Pixels are
// 32-bit words stored little-endian, each channel placed at its shift
// within the word. RGBA byte order corresponds to shifts 0, 8, 16, 24;
// BGRA to 16, 8, 0, 24.
//
// Shifts may overlap or be unaligned; channels then overwrite each other's
// bits in pack order, which corrupts the output but never faults. A shift
// above 24 would place channel bits outside the word and is rejected.
type Framebuffer struct {
	Pix    []byte
	Width  int
	Height int

	RShift uint
	GShift uint
	BShift uint
	AShift uint
}

func (fb *Framebuffer) validate() error {
	if fb.Width <= 0 || fb.Height <= 0 {
		return fmt.Errorf("softvg: framebuffer size %dx%d: %w", fb.Width, fb.Height, ErrInvalidSize)
	}
	if need := fb.Width * fb.Height * 4; len(fb.Pix) < need {
		return fmt.Errorf("softvg: framebuffer %d bytes, need %d: %w", len(fb.Pix), need, ErrBufferTooSmall)
	}
	for _, s := range []uint{fb.RShift, fb.GShift, fb.BShift, fb.AShift} {
		if s > 24 {
			return fmt.Errorf("softvg: channel shift %d: %w", s, ErrInvalidShift)
		}
	}
	return nil
}
