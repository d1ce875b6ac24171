// Package rawcodec is a lossless reference codec for planar YUV frames.
// It frames the planes behind a small binary header and compresses the
// result with zstd. It implements the avifpix Encoder and Decoder interfaces
// and stands in for a real AV1 codec in tests and tooling.
package rawcodec

import (
	"encoding/binary"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/vearutop/avifpix"
)

// Header layout, all fields little-endian:
//
//	0  magic "AVPX"
//	4  width uint32
//	8  height uint32
//	12 bitDepth uint8
//	13 xChromaShift uint8
//	14 yChromaShift uint8
//	15 flags uint8 (bit 0 full range, bit 1 monochrome, bit 2 UV flipped)
//	16 colorPrimaries uint16
//	18 transferCharacteristics uint16
//	20 matrixCoefficients uint16
//	22 reserved uint16
//
// Tightly packed Y, U, V planes follow (Y only for monochrome frames).
const (
	headerSize = 24
	magic      = "AVPX"

	flagFullRange  = 1 << 0
	flagMonochrome = 1 << 1
	flagUVFlipped  = 1 << 2
)

// Codec compresses and decompresses planar frames losslessly.
type Codec struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// New creates a codec. The zstd encoder and decoder are reused across calls.
func New() (*Codec, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("rawcodec: %w: %w", avifpix.ErrCodecInitFailed, err)
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("rawcodec: %w: %w", avifpix.ErrCodecInitFailed, err)
	}

	return &Codec{enc: enc, dec: dec}, nil
}

// Encode frames and compresses one planar frame. The quality and effort
// options are ignored: the payload is always lossless.
func (c *Codec) Encode(frame *avifpix.PlanarYUVFrame, _ *avifpix.EncodeOptions) ([]byte, error) {
	if frame == nil {
		return nil, avifpix.ErrNullParameter
	}

	bps := 1
	if frame.BitDepth > 8 {
		bps = 2
	}

	yRowBytes := frame.Width * bps
	uvRowBytes := frame.ChromaWidth() * bps
	uvHeight := frame.ChromaHeight()

	size := headerSize + yRowBytes*frame.Height
	if !frame.Monochrome {
		size += 2 * uvRowBytes * uvHeight
	}

	raw := make([]byte, headerSize, size)
	copy(raw, magic)
	binary.LittleEndian.PutUint32(raw[4:], uint32(frame.Width))
	binary.LittleEndian.PutUint32(raw[8:], uint32(frame.Height))
	raw[12] = uint8(frame.BitDepth)
	raw[13] = uint8(frame.XChromaShift)
	raw[14] = uint8(frame.YChromaShift)

	var flags uint8
	if frame.Range == avifpix.RangeFull {
		flags |= flagFullRange
	}
	if frame.Monochrome {
		flags |= flagMonochrome
	}
	if frame.UVFlipped {
		flags |= flagUVFlipped
	}
	raw[15] = flags

	binary.LittleEndian.PutUint16(raw[16:], uint16(frame.ColorPrimaries))
	binary.LittleEndian.PutUint16(raw[18:], uint16(frame.TransferCharacteristics))
	binary.LittleEndian.PutUint16(raw[20:], uint16(frame.MatrixCoefficients))

	raw = appendPlane(raw, frame.Y, yRowBytes, frame.Height)
	if !frame.Monochrome {
		raw = appendPlane(raw, frame.U, uvRowBytes, uvHeight)
		raw = appendPlane(raw, frame.V, uvRowBytes, uvHeight)
	}

	return c.enc.EncodeAll(raw, make([]byte, 0, len(raw)/2)), nil
}

// Decode decompresses a payload produced by Encode.
func (c *Codec) Decode(data []byte) (*avifpix.PlanarYUVFrame, error) {
	if len(data) == 0 {
		return nil, avifpix.ErrNullParameter
	}

	raw, err := c.dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("rawcodec: %w: %w", avifpix.ErrDecodeFailed, err)
	}
	if len(raw) < headerSize || string(raw[:4]) != magic {
		return nil, fmt.Errorf("rawcodec: %w: bad header", avifpix.ErrDecodeFailed)
	}

	frame := &avifpix.PlanarYUVFrame{
		Width:        int(binary.LittleEndian.Uint32(raw[4:])),
		Height:       int(binary.LittleEndian.Uint32(raw[8:])),
		BitDepth:     int(raw[12]),
		XChromaShift: int(raw[13]),
		YChromaShift: int(raw[14]),
	}

	flags := raw[15]
	if flags&flagFullRange != 0 {
		frame.Range = avifpix.RangeFull
	}
	frame.Monochrome = flags&flagMonochrome != 0
	frame.UVFlipped = flags&flagUVFlipped != 0

	frame.ColorPrimaries = avifpix.ColorPrimaries(binary.LittleEndian.Uint16(raw[16:]))
	frame.TransferCharacteristics = avifpix.TransferCharacteristics(binary.LittleEndian.Uint16(raw[18:]))
	frame.MatrixCoefficients = avifpix.MatrixCoefficients(binary.LittleEndian.Uint16(raw[20:]))

	if frame.Width <= 0 || frame.Height <= 0 {
		return nil, fmt.Errorf("rawcodec: %w: bad dimensions", avifpix.ErrDecodeFailed)
	}

	bps := 1
	if frame.BitDepth > 8 {
		bps = 2
	}

	yRowBytes := frame.Width * bps
	uvRowBytes := frame.ChromaWidth() * bps
	uvHeight := frame.ChromaHeight()

	want := yRowBytes * frame.Height
	if !frame.Monochrome {
		want += 2 * uvRowBytes * uvHeight
	}
	body := raw[headerSize:]
	if len(body) != want {
		return nil, fmt.Errorf("rawcodec: %w: truncated planes", avifpix.ErrDecodeFailed)
	}

	frame.Y = avifpix.Plane{Data: body[:yRowBytes*frame.Height], Stride: yRowBytes}
	if !frame.Monochrome {
		body = body[yRowBytes*frame.Height:]
		frame.U = avifpix.Plane{Data: body[:uvRowBytes*uvHeight], Stride: uvRowBytes}
		frame.V = avifpix.Plane{Data: body[uvRowBytes*uvHeight:], Stride: uvRowBytes}
	}

	return frame, nil
}

// Close releases the zstd state.
func (c *Codec) Close() {
	c.enc.Close()
	c.dec.Close()
}

// appendPlane copies the used part of each row, dropping stride padding.
func appendPlane(dst []byte, p avifpix.Plane, rowBytes, rows int) []byte {
	for y := 0; y < rows; y++ {
		dst = append(dst, p.Data[y*p.Stride:y*p.Stride+rowBytes]...)
	}
	return dst
}
