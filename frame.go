package avifpix

import (
	"encoding/binary"
	"math"
)

// Plane is one sample plane of a planar frame. Samples are one byte each for
// 8-bit frames and two little-endian bytes for deeper frames; Stride is in
// bytes.
type Plane struct {
	Data   []byte
	Stride int
}

func (p *Plane) empty() bool {
	return p == nil || len(p.Data) == 0
}

// PlanarYUVFrame is a decoded or to-be-encoded image as planar samples.
// Frames returned by a Decoder are read-only to the conversion routines;
// frames built for encoding are owned by the call that created them until
// handed to an Encoder.
type PlanarYUVFrame struct {
	Width  int
	Height int
	// BitDepth is the sample depth: 8, 10, 12 or 16.
	BitDepth int

	Y Plane
	U Plane
	V Plane

	// XChromaShift and YChromaShift give the chroma plane downsampling as
	// right shifts of luma coordinates (1,1 for 4:2:0; 1,0 for 4:2:2; 0,0
	// for 4:4:4).
	XChromaShift int
	YChromaShift int

	Range ColorRange
	// UVFlipped marks frames whose chroma planes are stored in V, U order.
	UVFlipped bool
	// Monochrome frames carry only the Y plane.
	Monochrome bool

	// CICP values embedded in the coded frame.
	ColorPrimaries          ColorPrimaries
	TransferCharacteristics TransferCharacteristics
	MatrixCoefficients      MatrixCoefficients
}

// CICP returns the frame's embedded colour values as a quadruple.
func (f *PlanarYUVFrame) CICP() CICPColorData {
	return CICPColorData{
		ColorPrimaries:          f.ColorPrimaries,
		TransferCharacteristics: f.TransferCharacteristics,
		MatrixCoefficients:      f.MatrixCoefficients,
		FullRange:               f.Range == RangeFull,
	}
}

// chromaPlanes returns the U and V planes honoring UVFlipped.
func (f *PlanarYUVFrame) chromaPlanes() (u, v *Plane) {
	if f.UVFlipped {
		return &f.V, &f.U
	}
	return &f.U, &f.V
}

// ChromaWidth returns the width of the chroma planes in samples.
func (f *PlanarYUVFrame) ChromaWidth() int {
	return subsampledExtent(f.Width, f.XChromaShift)
}

// ChromaHeight returns the height of the chroma planes in samples.
func (f *PlanarYUVFrame) ChromaHeight() int {
	return subsampledExtent(f.Height, f.YChromaShift)
}

func subsampledExtent(extent, shift int) int {
	return (extent + (1 << shift) - 1) >> shift
}

func (f *PlanarYUVFrame) bytesPerSample() int {
	if f.BitDepth > 8 {
		return 2
	}
	return 1
}

// maxChannel returns the largest representable sample code.
func (f *PlanarYUVFrame) maxChannel() int {
	return (1 << f.BitDepth) - 1
}

// sample reads the raw sample at (x, y) of a plane, per the frame's depth.
func (f *PlanarYUVFrame) sample(p *Plane, x, y int) int {
	if f.BitDepth > 8 {
		return int(binary.LittleEndian.Uint16(p.Data[y*p.Stride+x*2:]))
	}
	return int(p.Data[y*p.Stride+x])
}

func (f *PlanarYUVFrame) setSample(p *Plane, x, y, v int) {
	if f.BitDepth > 8 {
		binary.LittleEndian.PutUint16(p.Data[y*p.Stride+x*2:], uint16(v))
		return
	}
	p.Data[y*p.Stride+x] = uint8(v)
}

// holds reports whether the plane carries enough data for the given row
// geometry.
func (p *Plane) holds(rowBytes, rows int) bool {
	if len(p.Data) == 0 || p.Stride < rowBytes {
		return false
	}
	return len(p.Data) >= (rows-1)*p.Stride+rowBytes
}

// validate checks the invariants every conversion relies on: supported bit
// depth and planes sized for the frame's declared geometry.
func (f *PlanarYUVFrame) validate() error {
	if f == nil || f.Width <= 0 || f.Height <= 0 || f.Y.empty() {
		return ErrNullParameter
	}
	switch f.BitDepth {
	case 8, 10, 12, 16:
	default:
		return ErrUnsupportedBitDepth
	}

	bps := f.bytesPerSample()
	if !f.Y.holds(f.Width*bps, f.Height) {
		return ErrNullParameter
	}
	if !f.Monochrome {
		rowBytes := f.ChromaWidth() * bps
		rows := f.ChromaHeight()
		if !f.U.holds(rowBytes, rows) || !f.V.holds(rowBytes, rows) {
			return ErrNullParameter
		}
	}
	return nil
}

// newEncodeFrame allocates an 8-bit frame laid out for the requested chroma
// format. Subsampling400 allocates zeroed 4:2:0 chroma planes, matching the
// codec convention for monochrome input.
func newEncodeFrame(width, height int, format ChromaSubsampling) (*PlanarYUVFrame, error) {
	f := &PlanarYUVFrame{
		Width:    width,
		Height:   height,
		BitDepth: 8,
		Range:    RangeFull,
	}

	switch format {
	case Subsampling420, Subsampling400:
		f.XChromaShift, f.YChromaShift = 1, 1
	case Subsampling422:
		f.XChromaShift, f.YChromaShift = 1, 0
	case Subsampling444, SubsamplingIdentity:
		f.XChromaShift, f.YChromaShift = 0, 0
	default:
		return nil, ErrUnknownYUVFormat
	}
	f.Monochrome = format == Subsampling400

	ySize, ok := planeSize(width, height)
	if !ok {
		return nil, ErrOutOfMemory
	}
	uvSize, ok := planeSize(f.ChromaWidth(), f.ChromaHeight())
	if !ok {
		return nil, ErrOutOfMemory
	}

	f.Y = Plane{Data: make([]byte, ySize), Stride: width}
	f.U = Plane{Data: make([]byte, uvSize), Stride: f.ChromaWidth()}
	f.V = Plane{Data: make([]byte, uvSize), Stride: f.ChromaWidth()}

	return f, nil
}

func planeSize(width, height int) (int, bool) {
	if width <= 0 || height <= 0 {
		return 0, false
	}
	size := uint64(width) * uint64(height)
	if size > uint64(math.MaxInt32) {
		return 0, false
	}
	return int(size), true
}
