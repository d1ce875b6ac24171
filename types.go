package avifpix

// ColorPrimaries is an ITU-T H.273 colour primaries code point.
type ColorPrimaries uint16

const (
	PrimariesBT709       ColorPrimaries = 1
	PrimariesUnspecified ColorPrimaries = 2
	PrimariesBT470M      ColorPrimaries = 4
	PrimariesBT470BG     ColorPrimaries = 5
	PrimariesBT601       ColorPrimaries = 6
	PrimariesSmpte240    ColorPrimaries = 7
	PrimariesGenericFilm ColorPrimaries = 8
	PrimariesBT2020      ColorPrimaries = 9
	PrimariesXYZ         ColorPrimaries = 10
	PrimariesSmpte431    ColorPrimaries = 11
	PrimariesSmpte432    ColorPrimaries = 12
	PrimariesEBU3213     ColorPrimaries = 22
)

// TransferCharacteristics is an ITU-T H.273 transfer characteristics code point.
type TransferCharacteristics uint16

const (
	TransferBT709       TransferCharacteristics = 1
	TransferUnspecified TransferCharacteristics = 2
	TransferBT470M      TransferCharacteristics = 4
	TransferBT470BG     TransferCharacteristics = 5
	TransferBT601       TransferCharacteristics = 6
	TransferSmpte240    TransferCharacteristics = 7
	TransferLinear      TransferCharacteristics = 8
	TransferSRGB        TransferCharacteristics = 13
	TransferPQ          TransferCharacteristics = 16
	TransferHLG         TransferCharacteristics = 18
)

// MatrixCoefficients is an ITU-T H.273 matrix coefficients code point.
// Its value selects the decoding algorithm: a linear Kr/Kb transform for the
// table-backed and chromaticity-derived values, or a dedicated non-linear
// routine for Identity and the YCgCo family.
type MatrixCoefficients uint16

const (
	MatrixIdentity    MatrixCoefficients = 0
	MatrixBT709       MatrixCoefficients = 1
	MatrixUnspecified MatrixCoefficients = 2
	MatrixFCC         MatrixCoefficients = 4
	MatrixBT470BG     MatrixCoefficients = 5
	MatrixBT601       MatrixCoefficients = 6
	MatrixSmpte240    MatrixCoefficients = 7
	MatrixYCgCo       MatrixCoefficients = 8
	MatrixBT2020NCL   MatrixCoefficients = 9
	MatrixBT2020CL    MatrixCoefficients = 10
	MatrixSmpte2085   MatrixCoefficients = 11
	MatrixChromatNCL  MatrixCoefficients = 12
	MatrixChromatCL   MatrixCoefficients = 13
	MatrixICtCp       MatrixCoefficients = 14
	MatrixYCgCoRe     MatrixCoefficients = 16
	MatrixYCgCoRo     MatrixCoefficients = 17
)

// CICPColorData is the CICP colour quadruple carried by the container's
// colour information property or embedded in a coded frame.
type CICPColorData struct {
	ColorPrimaries          ColorPrimaries
	TransferCharacteristics TransferCharacteristics
	MatrixCoefficients      MatrixCoefficients
	FullRange               bool
}

// ColorRange tells whether sample codes use the full numeric range or the
// narrower studio ("limited") range.
type ColorRange int

const (
	RangeLimited ColorRange = iota
	RangeFull
)

// ChromaSubsampling identifies the chroma plane layout of a YUV image.
type ChromaSubsampling int

const (
	// Subsampling420 stores chroma at half resolution in both dimensions.
	Subsampling420 ChromaSubsampling = iota
	// Subsampling422 stores chroma at half horizontal resolution.
	Subsampling422
	// Subsampling444 stores chroma at full resolution.
	Subsampling444
	// Subsampling400 is luma-only (monochrome).
	Subsampling400
	// SubsamplingIdentity marks planes that carry G/B/R channels directly
	// with no color transform.
	SubsamplingIdentity
)

// SurfaceFormat identifies the packed pixel layout of a PixelSurface.
type SurfaceFormat int

const (
	// FormatBGRA8 is 8 bits per channel in B, G, R, A byte order.
	FormatBGRA8 SurfaceFormat = iota
	// FormatRGBA16 is 16 bits per channel, little-endian, in R, G, B, A order.
	FormatRGBA16
	// FormatRGBAF32 is 32-bit float channels in R, G, B, A order.
	FormatRGBAF32
)

// BytesPerPixel returns the packed size of one pixel in the format.
func (f SurfaceFormat) BytesPerPixel() int {
	switch f {
	case FormatRGBA16:
		return 8
	case FormatRGBAF32:
		return 16
	default:
		return 4
	}
}

// CompressionMode trades encoding speed against compression density.
type CompressionMode int

const (
	CompressionNormal CompressionMode = iota
	CompressionFast
	CompressionSlow
)

// EncodeOptions controls frame conversion and compression.
type EncodeOptions struct {
	// Quality is 0-100; 100 requests lossless encoding.
	Quality int
	// CompressionMode selects the encoder effort level.
	CompressionMode CompressionMode
	// ChromaSubsampling selects the chroma layout of the color image.
	// Ignored when the color model is Identity (always 4:4:4).
	ChromaSubsampling ChromaSubsampling
	// IncludeAlpha encodes the alpha channel as a second monochrome image.
	IncludeAlpha bool
}

// CQLevel maps Quality to the AV1 constant-quality level (63 best
// compression .. 0 lossless).
func (o *EncodeOptions) CQLevel() int {
	q := o.Quality
	if q < 0 {
		q = 0
	}
	if q > 100 {
		q = 100
	}
	return 63 - int(float64(q)*63.0/100.0+0.5)
}

// Lossless reports whether the options request a lossless encode.
func (o *EncodeOptions) Lossless() bool {
	return o.CQLevel() == 0
}

// Effort returns the encoder speed setting for the compression mode
// (higher is faster).
func (o *EncodeOptions) Effort() int {
	switch o.CompressionMode {
	case CompressionFast:
		return 8
	case CompressionSlow:
		return 0
	default:
		return 4
	}
}
