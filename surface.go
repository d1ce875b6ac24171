package avifpix

import (
	"encoding/binary"
	"math"
)

// PixelSurface is a caller-owned packed pixel buffer. The conversion routines
// read and write rows within Width/Height/Stride and never reallocate Data.
type PixelSurface struct {
	Data   []byte
	Width  int
	Height int
	// Stride is the distance between rows in bytes.
	Stride int
	Format SurfaceFormat
}

// NewPixelSurface allocates a tightly packed surface of the given format.
func NewPixelSurface(width, height int, format SurfaceFormat) *PixelSurface {
	stride := width * format.BytesPerPixel()
	return &PixelSurface{
		Data:   make([]byte, stride*height),
		Width:  width,
		Height: height,
		Stride: stride,
		Format: format,
	}
}

func (s *PixelSurface) valid() bool {
	return s != nil && s.Data != nil && s.Width > 0 && s.Height > 0 &&
		s.Stride >= s.Width*s.Format.BytesPerPixel()
}

// bgraAt reads one FormatBGRA8 pixel.
func (s *PixelSurface) bgraAt(x, y int) (b, g, r, a uint8) {
	off := y*s.Stride + x*4
	return s.Data[off], s.Data[off+1], s.Data[off+2], s.Data[off+3]
}

// setBGRA writes one FormatBGRA8 pixel.
func (s *PixelSurface) setBGRA(x, y int, b, g, r, a uint8) {
	off := y*s.Stride + x*4
	s.Data[off] = b
	s.Data[off+1] = g
	s.Data[off+2] = r
	s.Data[off+3] = a
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// roundUnorm8 scales a [0,1] value to an 8-bit code, rounding half up.
func roundUnorm8(v float32) uint8 {
	return uint8(0.5 + v*255.0)
}

func roundUnorm16(v float32) uint16 {
	return uint16(0.5 + v*65535.0)
}

// pixelWriter writes converted channel values into a destination surface.
// Coordinates are relative to the tile's destination rectangle; channel
// values must already be clamped to [0,1]. Color methods leave the alpha
// channel untouched and setAlpha leaves the color channels untouched, so the
// color and alpha sub-images can be decoded independently into one surface.
type pixelWriter interface {
	setRGB(x, y int, r, g, b float32)
	setGray(x, y int, v float32)
	setAlpha(x, y int, a float32)
}

// newPixelWriter selects the writer for the surface format, anchored at the
// destination offset (destX, destY).
func newPixelWriter(dst *PixelSurface, destX, destY int) (pixelWriter, error) {
	switch dst.Format {
	case FormatBGRA8:
		return &bgra8Writer{surface: dst, destX: destX, destY: destY}, nil
	case FormatRGBA16:
		return &rgba16Writer{surface: dst, destX: destX, destY: destY}, nil
	case FormatRGBAF32:
		return &rgbaF32Writer{surface: dst, destX: destX, destY: destY}, nil
	default:
		return nil, ErrUnsupportedPixelFormat
	}
}

type bgra8Writer struct {
	surface      *PixelSurface
	destX, destY int
}

func (w *bgra8Writer) offset(x, y int) int {
	return (w.destY+y)*w.surface.Stride + (w.destX+x)*4
}

func (w *bgra8Writer) setRGB(x, y int, r, g, b float32) {
	off := w.offset(x, y)
	w.surface.Data[off] = roundUnorm8(b)
	w.surface.Data[off+1] = roundUnorm8(g)
	w.surface.Data[off+2] = roundUnorm8(r)
}

func (w *bgra8Writer) setGray(x, y int, v float32) {
	gray := roundUnorm8(v)
	off := w.offset(x, y)
	w.surface.Data[off] = gray
	w.surface.Data[off+1] = gray
	w.surface.Data[off+2] = gray
}

func (w *bgra8Writer) setAlpha(x, y int, a float32) {
	w.surface.Data[w.offset(x, y)+3] = roundUnorm8(a)
}

type rgba16Writer struct {
	surface      *PixelSurface
	destX, destY int
}

func (w *rgba16Writer) offset(x, y int) int {
	return (w.destY+y)*w.surface.Stride + (w.destX+x)*8
}

func (w *rgba16Writer) setRGB(x, y int, r, g, b float32) {
	off := w.offset(x, y)
	binary.LittleEndian.PutUint16(w.surface.Data[off:], roundUnorm16(r))
	binary.LittleEndian.PutUint16(w.surface.Data[off+2:], roundUnorm16(g))
	binary.LittleEndian.PutUint16(w.surface.Data[off+4:], roundUnorm16(b))
}

func (w *rgba16Writer) setGray(x, y int, v float32) {
	gray := roundUnorm16(v)
	off := w.offset(x, y)
	binary.LittleEndian.PutUint16(w.surface.Data[off:], gray)
	binary.LittleEndian.PutUint16(w.surface.Data[off+2:], gray)
	binary.LittleEndian.PutUint16(w.surface.Data[off+4:], gray)
}

func (w *rgba16Writer) setAlpha(x, y int, a float32) {
	binary.LittleEndian.PutUint16(w.surface.Data[w.offset(x, y)+6:], roundUnorm16(a))
}

type rgbaF32Writer struct {
	surface      *PixelSurface
	destX, destY int
}

func (w *rgbaF32Writer) offset(x, y int) int {
	return (w.destY+y)*w.surface.Stride + (w.destX+x)*16
}

func (w *rgbaF32Writer) setRGB(x, y int, r, g, b float32) {
	off := w.offset(x, y)
	binary.LittleEndian.PutUint32(w.surface.Data[off:], math.Float32bits(r))
	binary.LittleEndian.PutUint32(w.surface.Data[off+4:], math.Float32bits(g))
	binary.LittleEndian.PutUint32(w.surface.Data[off+8:], math.Float32bits(b))
}

func (w *rgbaF32Writer) setGray(x, y int, v float32) {
	off := w.offset(x, y)
	bits := math.Float32bits(v)
	binary.LittleEndian.PutUint32(w.surface.Data[off:], bits)
	binary.LittleEndian.PutUint32(w.surface.Data[off+4:], bits)
	binary.LittleEndian.PutUint32(w.surface.Data[off+8:], bits)
}

func (w *rgbaF32Writer) setAlpha(x, y int, a float32) {
	binary.LittleEndian.PutUint32(w.surface.Data[w.offset(x, y)+12:], math.Float32bits(a))
}

// SetAlphaOpaque fills the alpha channel of the whole surface with the
// maximum value, used when an image carries no alpha sub-image.
func SetAlphaOpaque(dst *PixelSurface) error {
	if !dst.valid() {
		return ErrNullParameter
	}
	w, err := newPixelWriter(dst, 0, 0)
	if err != nil {
		return err
	}
	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			w.setAlpha(x, y, 1)
		}
	}
	return nil
}
