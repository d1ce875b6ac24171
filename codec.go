package avifpix

// Encoder compresses one planar frame into a codec payload. Implementations
// read the quality and effort settings from the options.
type Encoder interface {
	Encode(frame *PlanarYUVFrame, opts *EncodeOptions) ([]byte, error)
}

// Decoder decompresses one codec payload into a planar frame.
type Decoder interface {
	Decode(data []byte) (*PlanarYUVFrame, error)
}

// ProgressFunc receives the number of completed steps out of the total.
// Returning false cancels the operation.
type ProgressFunc func(done, total int) bool

// ProgressContext tracks encoding progress across the color and alpha
// sub-images. A nil context disables reporting.
type ProgressContext struct {
	Callback ProgressFunc
	Done     int
	Total    int
}

// step reports one completed step and tells whether to continue.
func (p *ProgressContext) step() bool {
	if p == nil || p.Callback == nil {
		return true
	}
	p.Done++
	return p.Callback(p.Done, p.Total)
}

// CompressedImage is the output of CompressImage: the color payload plus the
// alpha payload when transparency was requested.
type CompressedImage struct {
	Color []byte
	Alpha []byte
}

// CompressImage converts a BGRA surface to planar frames and runs them
// through the encoder: the color image first, then the alpha channel as an
// independent monochrome sub-image when opts.IncludeAlpha is set.
//
// The progress callback fires once up front and once per encoded sub-image;
// cancelling at any point discards all payloads and returns ErrUserCancelled.
func CompressImage(src *PixelSurface, colorInfo *CICPColorData, opts *EncodeOptions, enc Encoder, progress *ProgressContext) (*CompressedImage, error) {
	if !src.valid() || opts == nil || enc == nil {
		return nil, ErrNullParameter
	}

	if progress != nil && progress.Total == 0 {
		progress.Total = 2
		if opts.IncludeAlpha {
			progress.Total++
		}
	}

	if !progress.step() {
		return nil, ErrUserCancelled
	}

	colorFrame, err := ConvertToPlanar(src, colorInfo, opts.ChromaSubsampling)
	if err != nil {
		return nil, err
	}

	colorData, err := enc.Encode(colorFrame, opts)
	if err != nil {
		return nil, err
	}
	if !progress.step() {
		return nil, ErrUserCancelled
	}

	out := &CompressedImage{Color: colorData}

	if opts.IncludeAlpha {
		alphaFrame, err := AlphaToPlanar(src)
		if err != nil {
			return nil, err
		}

		out.Alpha, err = enc.Encode(alphaFrame, opts)
		if err != nil {
			return nil, err
		}
		if !progress.step() {
			return nil, ErrUserCancelled
		}
	}

	return out, nil
}

// DecompressImage decodes a single-image (non-grid) payload pair into the
// destination surface. state carries the container's expected dimensions;
// decoded images of a different size are rejected. When alphaData is empty
// the destination's alpha channel is filled opaque.
func DecompressImage(colorData, alphaData []byte, colorInfo *CICPColorData, state *DecodeState, dec Decoder, dst *PixelSurface) error {
	if len(colorData) == 0 || state == nil || dec == nil || !dst.valid() {
		return ErrNullParameter
	}

	frame, err := dec.Decode(colorData)
	if err != nil {
		return err
	}
	if sizeMismatch(frame, state) {
		return ErrColorSizeMismatch
	}

	if err := ConvertColorFrame(frame, colorInfo, state, dst); err != nil {
		return err
	}

	if len(alphaData) == 0 {
		return SetAlphaOpaque(dst)
	}

	alphaFrame, err := dec.Decode(alphaData)
	if err != nil {
		return err
	}
	if sizeMismatch(alphaFrame, state) {
		return ErrAlphaSizeMismatch
	}

	// Alpha sub-images may use a different bit depth than the color image,
	// so they get their own tracking state.
	alphaState := &DecodeState{
		ExpectedWidth:  state.ExpectedWidth,
		ExpectedHeight: state.ExpectedHeight,
	}

	return ConvertAlphaFrame(alphaFrame, alphaState, dst)
}

func sizeMismatch(frame *PlanarYUVFrame, state *DecodeState) bool {
	if frame == nil {
		return true
	}
	if state.ExpectedWidth == 0 && state.ExpectedHeight == 0 {
		return false
	}
	return frame.Width != state.ExpectedWidth || frame.Height != state.ExpectedHeight
}
