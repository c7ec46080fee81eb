package pixcodec

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
)

// ImageSurface adapts an NRGBA raster image as a Surface. Only the R, G and B
// channels are ever written; alpha is initialized opaque and left alone
// afterwards, so an encoded image stays visible in ordinary viewers.
type ImageSurface struct {
	img *image.NRGBA
}

var _ Surface = (*ImageSurface)(nil)

// NewImageSurface creates a black, fully opaque w x h surface.
func NewImageSurface(w, h int) *ImageSurface {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF
	}
	return &ImageSurface{img: img}
}

// SurfaceFromImage wraps m as a surface. NRGBA images are used in place;
// anything else is copied into a fresh NRGBA raster first.
func SurfaceFromImage(m image.Image) *ImageSurface {
	if img, ok := m.(*image.NRGBA); ok {
		return &ImageSurface{img: img}
	}
	b := m.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), m, b.Min, draw.Src)
	return &ImageSurface{img: img}
}

func (s *ImageSurface) Width() int  { return s.img.Rect.Dx() }
func (s *ImageSurface) Height() int { return s.img.Rect.Dy() }

func (s *ImageSurface) PixelAt(x, y int) Pixel {
	i := s.img.PixOffset(x, y)
	return Pixel{s.img.Pix[i], s.img.Pix[i+1], s.img.Pix[i+2]}
}

func (s *ImageSurface) SetPixel(x, y int, p Pixel) {
	i := s.img.PixOffset(x, y)
	s.img.Pix[i], s.img.Pix[i+1], s.img.Pix[i+2] = p[0], p[1], p[2]
}

// Image exposes the backing raster for callers that need direct access.
func (s *ImageSurface) Image() *image.NRGBA { return s.img }

// EncodePNG writes the surface as a PNG. PNG is lossless, so an embedded
// byte stream survives the encode/decode cycle bit-exact; lossy formats
// would not preserve it.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// DecodePNG loads a PNG into a surface.
func DecodePNG(r io.Reader) (*ImageSurface, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pixcodec: decode png: %w", err)
	}
	return SurfaceFromImage(img), nil
}
