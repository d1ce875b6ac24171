package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"

	"github.com/vearutop/avifpix"
	"github.com/vearutop/avifpix/internal/rawcodec"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "encode":
		if err := runEncode(os.Args[2:]); err != nil {
			fail(err)
		}
	case "decode":
		if err := runDecode(os.Args[2:]); err != nil {
			fail(err)
		}
	case "info":
		if err := runInfo(os.Args[2:]); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: avifpixtool <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  encode -in input.png -out color.av1p [-alpha-out alpha.av1p] [-q 85] [-mode fast|normal|slow] [-yuv 420|422|444|identity] [-w N -h N]")
	fmt.Fprintln(os.Stderr, "  decode -in color.av1p [-alpha alpha.av1p] -out output.png")
	fmt.Fprintln(os.Stderr, "  info   -in color.av1p")
}

func runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	inPath := fs.String("in", "", "input PNG")
	outPath := fs.String("out", "", "output color payload")
	alphaOut := fs.String("alpha-out", "", "output alpha payload")
	q := fs.Int("q", 85, "quality 0-100, 100 is lossless")
	mode := fs.String("mode", "normal", "compression mode: fast, normal or slow")
	yuv := fs.String("yuv", "420", "chroma format: 420, 422, 444 or identity")
	width := fs.Int("w", 0, "prescale width")
	height := fs.Int("h", 0, "prescale height")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}

	opts := &avifpix.EncodeOptions{
		Quality:      *q,
		IncludeAlpha: *alphaOut != "",
	}

	switch *mode {
	case "fast":
		opts.CompressionMode = avifpix.CompressionFast
	case "normal":
		opts.CompressionMode = avifpix.CompressionNormal
	case "slow":
		opts.CompressionMode = avifpix.CompressionSlow
	default:
		return fmt.Errorf("unknown compression mode %q", *mode)
	}

	var colorInfo *avifpix.CICPColorData

	switch *yuv {
	case "420":
		opts.ChromaSubsampling = avifpix.Subsampling420
	case "422":
		opts.ChromaSubsampling = avifpix.Subsampling422
	case "444":
		opts.ChromaSubsampling = avifpix.Subsampling444
	case "identity":
		opts.ChromaSubsampling = avifpix.SubsamplingIdentity
		colorInfo = &avifpix.CICPColorData{
			ColorPrimaries:          avifpix.PrimariesBT709,
			TransferCharacteristics: avifpix.TransferSRGB,
			MatrixCoefficients:      avifpix.MatrixIdentity,
			FullRange:               true,
		}
	default:
		return fmt.Errorf("unknown chroma format %q", *yuv)
	}

	img, err := readPNG(*inPath)
	if err != nil {
		return err
	}
	if *width > 0 && *height > 0 {
		img = resize.Resize(uint(*width), uint(*height), img, resize.Lanczos3)
	}

	codec, err := rawcodec.New()
	if err != nil {
		return err
	}
	defer codec.Close()

	out, err := avifpix.CompressImage(surfaceFromImage(img), colorInfo, opts, codec, nil)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Clean(*outPath), out.Color, 0o644); err != nil {
		return err
	}
	if *alphaOut != "" {
		return os.WriteFile(filepath.Clean(*alphaOut), out.Alpha, 0o644)
	}
	return nil
}

func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	inPath := fs.String("in", "", "input color payload")
	alphaPath := fs.String("alpha", "", "input alpha payload")
	outPath := fs.String("out", "", "output PNG")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}

	colorData, err := os.ReadFile(filepath.Clean(*inPath))
	if err != nil {
		return err
	}

	codec, err := rawcodec.New()
	if err != nil {
		return err
	}
	defer codec.Close()

	frame, err := codec.Decode(colorData)
	if err != nil {
		return err
	}

	dst := avifpix.NewPixelSurface(frame.Width, frame.Height, avifpix.FormatBGRA8)
	state := &avifpix.DecodeState{}

	if err := avifpix.ConvertColorFrame(frame, nil, state, dst); err != nil {
		return err
	}

	if *alphaPath != "" {
		alphaData, err := os.ReadFile(filepath.Clean(*alphaPath))
		if err != nil {
			return err
		}
		alphaFrame, err := codec.Decode(alphaData)
		if err != nil {
			return err
		}
		if err := avifpix.ConvertAlphaFrame(alphaFrame, &avifpix.DecodeState{}, dst); err != nil {
			return err
		}
	} else if err := avifpix.SetAlphaOpaque(dst); err != nil {
		return err
	}

	return writePNG(*outPath, imageFromSurface(dst))
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	inPath := fs.String("in", "", "input payload")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}

	data, err := os.ReadFile(filepath.Clean(*inPath))
	if err != nil {
		return err
	}

	codec, err := rawcodec.New()
	if err != nil {
		return err
	}
	defer codec.Close()

	frame, err := codec.Decode(data)
	if err != nil {
		return err
	}

	info := struct {
		Width                   int    `json:"width"`
		Height                  int    `json:"height"`
		BitDepth                int    `json:"bitDepth"`
		XChromaShift            int    `json:"xChromaShift"`
		YChromaShift            int    `json:"yChromaShift"`
		Monochrome              bool   `json:"monochrome"`
		FullRange               bool   `json:"fullRange"`
		ColorPrimaries          uint16 `json:"colorPrimaries"`
		TransferCharacteristics uint16 `json:"transferCharacteristics"`
		MatrixCoefficients      uint16 `json:"matrixCoefficients"`
	}{
		Width:                   frame.Width,
		Height:                  frame.Height,
		BitDepth:                frame.BitDepth,
		XChromaShift:            frame.XChromaShift,
		YChromaShift:            frame.YChromaShift,
		Monochrome:              frame.Monochrome,
		FullRange:               frame.Range == avifpix.RangeFull,
		ColorPrimaries:          uint16(frame.ColorPrimaries),
		TransferCharacteristics: uint16(frame.TransferCharacteristics),
		MatrixCoefficients:      uint16(frame.MatrixCoefficients),
	}

	payload, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(payload))
	return nil
}

func readPNG(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func surfaceFromImage(img image.Image) *avifpix.PixelSurface {
	bounds := img.Bounds()
	s := avifpix.NewPixelSurface(bounds.Dx(), bounds.Dy(), avifpix.FormatBGRA8)

	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			off := y*s.Stride + x*4
			s.Data[off] = c.B
			s.Data[off+1] = c.G
			s.Data[off+2] = c.R
			s.Data[off+3] = c.A
		}
	}
	return s
}

func imageFromSurface(s *avifpix.PixelSurface) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.Width, s.Height))
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			off := y*s.Stride + x*4
			img.SetNRGBA(x, y, color.NRGBA{
				B: s.Data[off],
				G: s.Data[off+1],
				R: s.Data[off+2],
				A: s.Data[off+3],
			})
		}
	}
	return img
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
