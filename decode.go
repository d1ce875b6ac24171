package avifpix

// ConvertColorFrame converts one decoded color frame (or grid tile) into its
// rectangle of the destination surface. containerColor is the container's
// color property and overrides the frame's embedded CICP values when present;
// state carries the tile position and the format recorded from the first
// tile. On a tile mismatch the destination is left untouched.
func ConvertColorFrame(frame *PlanarYUVFrame, containerColor *CICPColorData, state *DecodeState, dst *PixelSurface) error {
	if state == nil || !dst.valid() {
		return ErrNullParameter
	}
	if err := frame.validate(); err != nil {
		return err
	}

	color, err := state.validateAndRecordColor(frame, containerColor)
	if err != nil {
		return err
	}

	switch color.MatrixCoefficients {
	case MatrixYCgCo, MatrixYCgCoRe, MatrixYCgCoRo:
		// The YCgCo family is defined only for non-subsampled chroma.
		if !frame.Monochrome && (frame.XChromaShift != 0 || frame.YChromaShift != 0) {
			return ErrUnknownYUVFormat
		}
	}

	copyWidth, copyHeight := state.copySizes(frame, dst)
	if copyWidth <= 0 || copyHeight <= 0 {
		return nil
	}

	destX := state.TileColumn * state.ExpectedWidth
	destY := state.TileRow * state.ExpectedHeight

	if color.MatrixCoefficients == MatrixIdentity &&
		frame.BitDepth == 8 && !frame.Monochrome && dst.Format == FormatBGRA8 {
		// Identity 8-bit samples map to output bytes directly; skip the
		// float tables entirely.
		identity8ToBGRA8(frame, dst, destX, destY, copyWidth, copyHeight)
		return nil
	}

	w, err := newPixelWriter(dst, destX, destY)
	if err != nil {
		return err
	}

	tables, err := newYUVLookupTables(frame)
	if err != nil {
		return err
	}

	if frame.Monochrome {
		grayToRGB(frame, tables, w, copyWidth, copyHeight)
		return nil
	}

	switch color.MatrixCoefficients {
	case MatrixIdentity:
		identityToRGB(frame, tables, w, copyWidth, copyHeight)
	case MatrixYCgCo:
		ycgcoToRGB(frame, tables, w, copyWidth, copyHeight)
	case MatrixYCgCoRe, MatrixYCgCoRo:
		ycgcoReRoToRGB(frame, w, copyWidth, copyHeight)
	default:
		yuvToRGB(frame, color.Coefficients(), tables, w, copyWidth, copyHeight)
	}

	return nil
}

// ConvertAlphaFrame converts one decoded alpha frame (or grid tile) into the
// alpha channel of its rectangle of the destination surface, leaving the
// color channels untouched.
func ConvertAlphaFrame(frame *PlanarYUVFrame, state *DecodeState, dst *PixelSurface) error {
	if state == nil || !dst.valid() {
		return ErrNullParameter
	}
	if err := frame.validate(); err != nil {
		return err
	}

	if err := state.validateAndRecordAlpha(frame); err != nil {
		return err
	}

	copyWidth, copyHeight := state.copySizes(frame, dst)
	if copyWidth <= 0 || copyHeight <= 0 {
		return nil
	}

	w, err := newPixelWriter(dst, state.TileColumn*state.ExpectedWidth, state.TileRow*state.ExpectedHeight)
	if err != nil {
		return err
	}

	tables, err := newYUVLookupTables(frame)
	if err != nil {
		return err
	}

	for y := 0; y < copyHeight; y++ {
		for x := 0; x < copyWidth; x++ {
			v := clampSample(frame.sample(&frame.Y, x, y), frame.maxChannel())
			w.setAlpha(x, y, clamp01(tables.luma[v]))
		}
	}

	return nil
}

// clampSample keeps a raw sample inside the lookup-table range; decoded
// two-byte samples can exceed the nominal depth.
func clampSample(v, max int) int {
	if v > max {
		return max
	}
	return v
}

// chromaX clamps an upsampled chroma column to the plane extent.
func chromaX(frame *PlanarYUVFrame, x int) int {
	return clampSample(x>>frame.XChromaShift, frame.ChromaWidth()-1)
}

func chromaY(frame *PlanarYUVFrame, y int) int {
	return clampSample(y>>frame.YChromaShift, frame.ChromaHeight()-1)
}

// grayToRGB expands a monochrome frame into equal R, G and B channels.
func grayToRGB(frame *PlanarYUVFrame, tables *yuvLookupTables, w pixelWriter, copyWidth, copyHeight int) {
	max := frame.maxChannel()

	for y := 0; y < copyHeight; y++ {
		for x := 0; x < copyWidth; x++ {
			v := clampSample(frame.sample(&frame.Y, x, y), max)
			w.setGray(x, y, clamp01(tables.luma[v]))
		}
	}
}

// yuvToRGB is the standard linear inverse transform with nearest-neighbor
// chroma upsampling.
func yuvToRGB(frame *PlanarYUVFrame, coef YUVCoefficients, tables *yuvLookupTables, w pixelWriter, copyWidth, copyHeight int) {
	kr, kg, kb := coef.Kr, coef.Kg, coef.Kb
	max := frame.maxChannel()
	uPlane, vPlane := frame.chromaPlanes()

	for y := 0; y < copyHeight; y++ {
		uvJ := chromaY(frame, y)
		for x := 0; x < copyWidth; x++ {
			uvI := chromaX(frame, x)

			lum := tables.luma[clampSample(frame.sample(&frame.Y, x, y), max)]
			cb := tables.chroma[clampSample(frame.sample(uPlane, uvI, uvJ), max)]
			cr := tables.chroma[clampSample(frame.sample(vPlane, uvI, uvJ), max)]

			r := lum + (2*(1-kr))*cr
			b := lum + (2*(1-kb))*cb
			g := lum - (2*((kr*(1-kr)*cr)+(kb*(1-kb)*cb)))/kg

			w.setRGB(x, y, clamp01(r), clamp01(g), clamp01(b))
		}
	}
}

// identityToRGB unpacks Identity planes: Y carries G, U carries B, V carries
// R. The chroma table aliases the luma table so all three channels use the
// luma range expansion.
func identityToRGB(frame *PlanarYUVFrame, tables *yuvLookupTables, w pixelWriter, copyWidth, copyHeight int) {
	max := frame.maxChannel()
	uPlane, vPlane := frame.chromaPlanes()

	for y := 0; y < copyHeight; y++ {
		uvJ := chromaY(frame, y)
		for x := 0; x < copyWidth; x++ {
			uvI := chromaX(frame, x)

			g := tables.luma[clampSample(frame.sample(&frame.Y, x, y), max)]
			b := tables.chroma[clampSample(frame.sample(uPlane, uvI, uvJ), max)]
			r := tables.chroma[clampSample(frame.sample(vPlane, uvI, uvJ), max)]

			w.setRGB(x, y, clamp01(r), clamp01(g), clamp01(b))
		}
	}
}

// identity8ToBGRA8 copies 8-bit Identity samples straight into a BGRA
// destination, going through the limited-to-full byte table when needed.
// The Identity matrix uses the luma range for all three planes.
func identity8ToBGRA8(frame *PlanarYUVFrame, dst *PixelSurface, destX, destY, copyWidth, copyHeight int) {
	uPlane, vPlane := frame.chromaPlanes()
	limited := frame.Range == RangeLimited

	for y := 0; y < copyHeight; y++ {
		uvJ := chromaY(frame, y)
		yRow := frame.Y.Data[y*frame.Y.Stride:]
		uRow := uPlane.Data[uvJ*uPlane.Stride:]
		vRow := vPlane.Data[uvJ*vPlane.Stride:]

		off := (destY+y)*dst.Stride + destX*4
		for x := 0; x < copyWidth; x++ {
			uvI := chromaX(frame, x)
			g := yRow[x]
			b := uRow[uvI]
			r := vRow[uvI]

			if limited {
				g = identity8LimitedToFull[g]
				b = identity8LimitedToFull[b]
				r = identity8LimitedToFull[r]
			}

			dst.Data[off] = b
			dst.Data[off+1] = g
			dst.Data[off+2] = r
			off += 4
		}
	}
}

// ycgcoToRGB is the float YCgCo inverse. YCgCo frames are always 4:4:4, so
// chroma indices track luma directly.
func ycgcoToRGB(frame *PlanarYUVFrame, tables *yuvLookupTables, w pixelWriter, copyWidth, copyHeight int) {
	max := frame.maxChannel()
	uPlane, vPlane := frame.chromaPlanes()

	for y := 0; y < copyHeight; y++ {
		for x := 0; x < copyWidth; x++ {
			lum := tables.luma[clampSample(frame.sample(&frame.Y, x, y), max)]
			cg := tables.chroma[clampSample(frame.sample(uPlane, x, y), max)]
			co := tables.chroma[clampSample(frame.sample(vPlane, x, y), max)]

			t := lum - cg
			g := lum + cg
			b := t - co
			r := t + co

			w.setRGB(x, y, clamp01(r), clamp01(g), clamp01(b))
		}
	}
}

// ycgcoReRoToRGB reconstructs the reversible YCgCo-Re/Ro variants in the
// integer domain: chroma is recentered and halved with arithmetic shifts
// before the channels are normalized.
func ycgcoReRoToRGB(frame *PlanarYUVFrame, w pixelWriter, copyWidth, copyHeight int) {
	max := frame.maxChannel()
	half := (max + 1) / 2
	divisor := float32(max)
	uPlane, vPlane := frame.chromaPlanes()

	for y := 0; y < copyHeight; y++ {
		for x := 0; x < copyWidth; x++ {
			lum := clampSample(frame.sample(&frame.Y, x, y), max)
			cg := clampSample(frame.sample(uPlane, x, y), max) - half
			co := clampSample(frame.sample(vPlane, x, y), max) - half

			t := lum - (cg >> 1)
			g := clampInt(t+cg, 0, max)
			b := clampInt(t-(co>>1), 0, max)
			r := clampInt(b+co, 0, max)

			w.setRGB(x, y, float32(r)/divisor, float32(g)/divisor, float32(b)/divisor)
		}
	}
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
