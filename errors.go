package avifpix

import "errors"

// Conversion and codec errors. Every public entry point reports failure
// through exactly one of these sentinels (possibly wrapped with context).
var (
	// ErrNullParameter means a required argument was nil or empty.
	ErrNullParameter = errors.New("avifpix: required parameter is missing")
	// ErrOutOfMemory means a plane or lookup-table allocation would overflow.
	ErrOutOfMemory = errors.New("avifpix: out of memory")
	// ErrUnknownYUVFormat means the chroma layout is not recognized.
	ErrUnknownYUVFormat = errors.New("avifpix: unknown YUV format")
	// ErrUnsupportedBitDepth means the sample bit depth is not 8, 10, 12 or 16.
	ErrUnsupportedBitDepth = errors.New("avifpix: unsupported bit depth, must be 8, 10, 12 or 16")
	// ErrUnsupportedPixelFormat means the surface pixel format is not supported
	// by the requested conversion.
	ErrUnsupportedPixelFormat = errors.New("avifpix: unsupported pixel format")
	// ErrTileFormatMismatch means a tile disagrees with the bit depth or chroma
	// layout recorded from the first tile of the image grid.
	ErrTileFormatMismatch = errors.New("avifpix: tile format does not match the first tile")
	// ErrTileNclxProfileMismatch means a tile's CICP colour values disagree with
	// the values recorded from the first tile of the image grid.
	ErrTileNclxProfileMismatch = errors.New("avifpix: tile NCLX color profile does not match the first tile")
	// ErrColorSizeMismatch means the decoded color image dimensions disagree
	// with the dimensions reported by the container.
	ErrColorSizeMismatch = errors.New("avifpix: color image size does not match the container")
	// ErrAlphaSizeMismatch means the decoded alpha image dimensions disagree
	// with the color image dimensions.
	ErrAlphaSizeMismatch = errors.New("avifpix: alpha image size does not match the color image")
	// ErrCodecInitFailed is reported by codec implementations that fail to
	// initialize.
	ErrCodecInitFailed = errors.New("avifpix: codec initialization failed")
	// ErrDecodeFailed is reported by codec implementations on decode failure.
	ErrDecodeFailed = errors.New("avifpix: decode failed")
	// ErrEncodeFailed is reported by codec implementations on encode failure.
	ErrEncodeFailed = errors.New("avifpix: encode failed")
	// ErrUserCancelled means the progress callback requested cancellation.
	ErrUserCancelled = errors.New("avifpix: cancelled")
)
