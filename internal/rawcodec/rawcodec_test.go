package rawcodec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/vearutop/avifpix"
)

func newFrame(width, height, depth int) *avifpix.PlanarYUVFrame {
	bps := 1
	if depth > 8 {
		bps = 2
	}
	f := &avifpix.PlanarYUVFrame{
		Width:        width,
		Height:       height,
		BitDepth:     depth,
		XChromaShift: 1,
		YChromaShift: 1,
		Range:        avifpix.RangeFull,

		ColorPrimaries:          avifpix.PrimariesBT709,
		TransferCharacteristics: avifpix.TransferSRGB,
		MatrixCoefficients:      avifpix.MatrixBT709,
	}
	f.Y = avifpix.Plane{Data: make([]byte, width*height*bps), Stride: width * bps}
	cw, ch := f.ChromaWidth(), f.ChromaHeight()
	f.U = avifpix.Plane{Data: make([]byte, cw*ch*bps), Stride: cw * bps}
	f.V = avifpix.Plane{Data: make([]byte, cw*ch*bps), Stride: cw * bps}

	for i := range f.Y.Data {
		f.Y.Data[i] = uint8(i * 7)
	}
	for i := range f.U.Data {
		f.U.Data[i] = uint8(i*3 + 1)
		f.V.Data[i] = uint8(i*5 + 2)
	}
	return f
}

func TestRoundTrip(t *testing.T) {
	codec, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer codec.Close()

	for _, depth := range []int{8, 10, 12, 16} {
		src := newFrame(5, 3, depth)

		data, err := codec.Encode(src, nil)
		if err != nil {
			t.Fatal(err)
		}

		got, err := codec.Decode(data)
		if err != nil {
			t.Fatal(err)
		}

		if got.Width != src.Width || got.Height != src.Height || got.BitDepth != src.BitDepth {
			t.Fatalf("depth %d: dims/depth mismatch: %+v", depth, got)
		}
		if got.XChromaShift != 1 || got.YChromaShift != 1 {
			t.Fatalf("depth %d: chroma shifts lost", depth)
		}
		if got.Range != avifpix.RangeFull || got.Monochrome || got.UVFlipped {
			t.Fatalf("depth %d: flags lost", depth)
		}
		if got.ColorPrimaries != src.ColorPrimaries ||
			got.TransferCharacteristics != src.TransferCharacteristics ||
			got.MatrixCoefficients != src.MatrixCoefficients {
			t.Fatalf("depth %d: CICP lost", depth)
		}

		if !bytes.Equal(got.Y.Data, src.Y.Data) ||
			!bytes.Equal(got.U.Data, src.U.Data) ||
			!bytes.Equal(got.V.Data, src.V.Data) {
			t.Fatalf("depth %d: plane data corrupted", depth)
		}
	}
}

func TestRoundTripMonochrome(t *testing.T) {
	codec, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer codec.Close()

	src := newFrame(4, 4, 8)
	src.Monochrome = true
	src.U = avifpix.Plane{}
	src.V = avifpix.Plane{}

	data, err := codec.Encode(src, nil)
	if err != nil {
		t.Fatal(err)
	}

	got, err := codec.Decode(data)
	if err != nil {
		t.Fatal(err)
	}

	if !got.Monochrome {
		t.Fatal("monochrome flag lost")
	}
	if len(got.U.Data) != 0 || len(got.V.Data) != 0 {
		t.Fatal("monochrome frame carries chroma planes")
	}
	if !bytes.Equal(got.Y.Data, src.Y.Data) {
		t.Fatal("luma plane corrupted")
	}
}

func TestRoundTripDropsStridePadding(t *testing.T) {
	codec, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer codec.Close()

	// A padded stride: 4 pixels per row stored in 6 bytes.
	src := newFrame(4, 2, 8)
	padded := make([]byte, 6*2)
	for y := 0; y < 2; y++ {
		copy(padded[y*6:], src.Y.Data[y*4:y*4+4])
	}
	want := append([]byte(nil), src.Y.Data...)
	src.Y = avifpix.Plane{Data: padded, Stride: 6}

	data, err := codec.Encode(src, nil)
	if err != nil {
		t.Fatal(err)
	}

	got, err := codec.Decode(data)
	if err != nil {
		t.Fatal(err)
	}

	if got.Y.Stride != 4 {
		t.Fatalf("stride = %d, want tight 4", got.Y.Stride)
	}
	if !bytes.Equal(got.Y.Data, want) {
		t.Fatal("padding leaked into payload")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	codec, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer codec.Close()

	if _, err := codec.Decode(nil); !errors.Is(err, avifpix.ErrNullParameter) {
		t.Errorf("empty input: got %v, want ErrNullParameter", err)
	}
	if _, err := codec.Decode([]byte("not zstd at all")); !errors.Is(err, avifpix.ErrDecodeFailed) {
		t.Errorf("garbage input: got %v, want ErrDecodeFailed", err)
	}

	// Valid zstd, wrong magic.
	bad := codec.enc.EncodeAll([]byte("XXXXsomething"), nil)
	if _, err := codec.Decode(bad); !errors.Is(err, avifpix.ErrDecodeFailed) {
		t.Errorf("bad magic: got %v, want ErrDecodeFailed", err)
	}
}
