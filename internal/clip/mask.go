// Package clip provides coverage masks for path-based clipping.
package clip

// Mask is an 8-bit coverage mask over the destination surface. A nil Mask
// means "no clip" (full coverage everywhere).
type Mask struct {
	Width  int
	Height int
	Cov    []uint8
}

// NewMask creates a zero-coverage mask of the given size.
func NewMask(width, height int) *Mask {
	if width <= 0 || height <= 0 {
		return &Mask{}
	}
	return &Mask{
		Width:  width,
		Height: height,
		Cov:    make([]uint8, width*height),
	}
}

// At returns the coverage at pixel (x, y); out of bounds is zero.
func (m *Mask) At(x, y int) uint8 {
	if m == nil {
		return 255
	}
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return 0
	}
	return m.Cov[y*m.Width+x]
}

// Set stores coverage at pixel (x, y), ignoring out-of-bounds writes.
func (m *Mask) Set(x, y int, cov uint8) {
	if m == nil || x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	m.Cov[y*m.Width+x] = cov
}

// AddRow accumulates coverage into a row, saturating at 255.
func (m *Mask) AddRow(x, y int, cov []uint8) {
	if m == nil || y < 0 || y >= m.Height {
		return
	}
	for i, c := range cov {
		xi := x + i
		if xi < 0 || xi >= m.Width {
			continue
		}
		idx := y*m.Width + xi
		sum := uint16(m.Cov[idx]) + uint16(c)
		if sum > 255 {
			sum = 255
		}
		m.Cov[idx] = uint8(sum)
	}
}

// Intersect multiplies this mask by another, in place. A nil other leaves
// the mask unchanged.
func (m *Mask) Intersect(other *Mask) {
	if m == nil || other == nil {
		return
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := y*m.Width + x
			m.Cov[idx] = mulDiv255(m.Cov[idx], other.At(x, y))
		}
	}
}

// Clone returns a deep copy of the mask; nil clones to nil.
func (m *Mask) Clone() *Mask {
	if m == nil {
		return nil
	}
	c := &Mask{Width: m.Width, Height: m.Height, Cov: make([]uint8, len(m.Cov))}
	copy(c.Cov, m.Cov)
	return c
}

// Bounds returns the tight integer bounding box of non-zero coverage as
// x0, y0, x1, y1 (x1/y1 exclusive). A nil or empty mask returns all zeros.
func (m *Mask) Bounds() (x0, y0, x1, y1 int) {
	if m == nil {
		return 0, 0, 0, 0
	}
	x0, y0 = m.Width, m.Height
	for y := 0; y < m.Height; y++ {
		row := m.Cov[y*m.Width : (y+1)*m.Width]
		for x, c := range row {
			if c == 0 {
				continue
			}
			if x < x0 {
				x0 = x
			}
			if x+1 > x1 {
				x1 = x + 1
			}
			if y < y0 {
				y0 = y
			}
			y1 = y + 1
		}
	}
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0
	}
	return x0, y0, x1, y1
}

func mulDiv255(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 255) >> 8)
}
