package pixcodec

// MemorySurface is a plain slice-backed Surface. The zero pixel is black; the
// grid is allocated once and never resized.
type MemorySurface struct {
	w, h int
	pix  []Pixel
}

var _ Surface = (*MemorySurface)(nil)

// NewMemorySurface creates a w x h surface of black pixels. Dimensions below
// 1x1 yield a surface that NewWriter/NewReader reject with ErrEmptySurface.
func NewMemorySurface(w, h int) *MemorySurface {
	s := &MemorySurface{w: w, h: h}
	if w > 0 && h > 0 {
		s.pix = make([]Pixel, w*h)
	}
	return s
}

func (s *MemorySurface) Width() int  { return s.w }
func (s *MemorySurface) Height() int { return s.h }

func (s *MemorySurface) PixelAt(x, y int) Pixel { return s.pix[y*s.w+x] }

func (s *MemorySurface) SetPixel(x, y int, p Pixel) { s.pix[y*s.w+x] = p }
