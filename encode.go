package avifpix

// unorm8 maps an 8-bit channel code to its normalized value.
var unorm8 = buildUnorm8()

func buildUnorm8() (t [256]float32) {
	for i := range t {
		t[i] = float32(i) / 255.0
	}
	return t
}

// yuvToUnorm8 converts a normalized luma or chroma value back to an 8-bit
// sample code. Chroma values arrive centered around zero and are shifted
// before clamping.
func yuvToUnorm8(v float32, isChroma bool) uint8 {
	if isChroma {
		v += 0.5
	}
	return roundUnorm8(clamp01(v))
}

// ConvertToPlanar converts a BGRA surface to a full-range 8-bit planar frame
// laid out for the requested chroma format. colorInfo selects the color
// model; nil falls back to BT.601. An Identity colorInfo forces 4:4:4 with
// G/B/R stored directly in the planes.
func ConvertToPlanar(src *PixelSurface, colorInfo *CICPColorData, format ChromaSubsampling) (*PlanarYUVFrame, error) {
	if !src.valid() {
		return nil, ErrNullParameter
	}
	if src.Format != FormatBGRA8 {
		return nil, ErrUnsupportedPixelFormat
	}

	cicp := CICPColorData{
		ColorPrimaries:          PrimariesUnspecified,
		TransferCharacteristics: TransferUnspecified,
		MatrixCoefficients:      MatrixUnspecified,
		FullRange:               true,
	}
	if colorInfo != nil {
		cicp = *colorInfo
		cicp.FullRange = true
	}
	if cicp.MatrixCoefficients == MatrixIdentity {
		format = SubsamplingIdentity
	}
	if format == Subsampling400 {
		// Monochrome sub-images carry no usable color interpretation.
		cicp.ColorPrimaries = PrimariesUnspecified
		cicp.TransferCharacteristics = TransferUnspecified
		cicp.MatrixCoefficients = MatrixUnspecified
	}

	frame, err := newEncodeFrame(src.Width, src.Height, format)
	if err != nil {
		return nil, err
	}
	frame.ColorPrimaries = cicp.ColorPrimaries
	frame.TransferCharacteristics = cicp.TransferCharacteristics
	frame.MatrixCoefficients = cicp.MatrixCoefficients

	switch format {
	case SubsamplingIdentity:
		convertIdentityPlanes(src, frame)
	case Subsampling400:
		convertMonoPlane(src, frame)
	default:
		convertYUVPlanes(src, frame, format, cicp.Coefficients())
	}

	return frame, nil
}

// convertIdentityPlanes stores G, B and R directly in the Y, U and V planes.
func convertIdentityPlanes(src *PixelSurface, frame *PlanarYUVFrame) {
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			b, g, r, _ := src.bgraAt(x, y)
			frame.Y.Data[y*frame.Y.Stride+x] = g
			frame.U.Data[y*frame.U.Stride+x] = b
			frame.V.Data[y*frame.V.Stride+x] = r
		}
	}
}

// convertMonoPlane fills the luma plane of a monochrome frame from the red
// channel, which carries the gray value in a grayscale BGRA surface.
func convertMonoPlane(src *PixelSurface, frame *PlanarYUVFrame) {
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			_, _, r, _ := src.bgraAt(x, y)
			frame.Y.Data[y*frame.Y.Stride+x] = r
		}
	}
}

type yuvBlock struct {
	y float32
	u float32
	v float32
}

// convertYUVPlanes runs the standard RGB to YUV transform over 2x2 blocks,
// writing luma at full resolution and chroma per the frame's subsampling.
// Blocks at the right and bottom edges of odd-sized images shrink to the
// pixels that exist.
func convertYUVPlanes(src *PixelSurface, frame *PlanarYUVFrame, format ChromaSubsampling, coef YUVCoefficients) {
	kr, kg, kb := coef.Kr, coef.Kg, coef.Kb

	var block [2][2]yuvBlock

	for imageY := 0; imageY < src.Height; imageY += 2 {
		for imageX := 0; imageX < src.Width; imageX += 2 {
			blockWidth, blockHeight := 2, 2
			if imageX+1 >= src.Width {
				blockWidth = 1
			}
			if imageY+1 >= src.Height {
				blockHeight = 1
			}

			for blockY := 0; blockY < blockHeight; blockY++ {
				for blockX := 0; blockX < blockWidth; blockX++ {
					x := imageX + blockX
					y := imageY + blockY

					bc, gc, rc, _ := src.bgraAt(x, y)
					r := unorm8[rc]
					g := unorm8[gc]
					b := unorm8[bc]

					luma := kr*r + kg*g + kb*b
					block[blockX][blockY] = yuvBlock{
						y: luma,
						u: (b - luma) / (2 * (1 - kb)),
						v: (r - luma) / (2 * (1 - kr)),
					}

					frame.Y.Data[y*frame.Y.Stride+x] = yuvToUnorm8(luma, false)

					if format == Subsampling444 {
						frame.U.Data[y*frame.U.Stride+x] = yuvToUnorm8(block[blockX][blockY].u, true)
						frame.V.Data[y*frame.V.Stride+x] = yuvToUnorm8(block[blockX][blockY].v, true)
					}
				}
			}

			switch format {
			case Subsampling420:
				var sumU, sumV float32
				for bJ := 0; bJ < blockHeight; bJ++ {
					for bI := 0; bI < blockWidth; bI++ {
						sumU += block[bI][bJ].u
						sumV += block[bI][bJ].v
					}
				}
				samples := float32(blockWidth * blockHeight)

				x := imageX >> 1
				y := imageY >> 1
				frame.U.Data[y*frame.U.Stride+x] = yuvToUnorm8(sumU/samples, true)
				frame.V.Data[y*frame.V.Stride+x] = yuvToUnorm8(sumV/samples, true)

			case Subsampling422:
				for blockY := 0; blockY < blockHeight; blockY++ {
					var sumU, sumV float32
					for blockX := 0; blockX < blockWidth; blockX++ {
						sumU += block[blockX][blockY].u
						sumV += block[blockX][blockY].v
					}
					samples := float32(blockWidth)

					x := imageX >> 1
					y := imageY + blockY
					frame.U.Data[y*frame.U.Stride+x] = yuvToUnorm8(sumU/samples, true)
					frame.V.Data[y*frame.V.Stride+x] = yuvToUnorm8(sumV/samples, true)
				}
			}
		}
	}
}

// AlphaToPlanar extracts the alpha channel of a BGRA surface as a full-range
// monochrome frame, suitable for encoding as the alpha sub-image.
func AlphaToPlanar(src *PixelSurface) (*PlanarYUVFrame, error) {
	if !src.valid() {
		return nil, ErrNullParameter
	}
	if src.Format != FormatBGRA8 {
		return nil, ErrUnsupportedPixelFormat
	}

	frame, err := newEncodeFrame(src.Width, src.Height, Subsampling400)
	if err != nil {
		return nil, err
	}
	frame.ColorPrimaries = PrimariesUnspecified
	frame.TransferCharacteristics = TransferUnspecified
	frame.MatrixCoefficients = MatrixUnspecified

	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			_, _, _, a := src.bgraAt(x, y)
			frame.Y.Data[y*frame.Y.Stride+x] = a
		}
	}

	return frame, nil
}
