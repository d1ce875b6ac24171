package avifpix

// DecodeState tracks per-image state across the tiles of an image grid. The
// caller sets TileColumn and TileRow before converting each tile; the first
// tile (column 0, row 0) records the format every later tile must match.
// ExpectedWidth and ExpectedHeight may be pre-filled from the container's
// grid description; when left zero they are taken from the first tile.
//
// A DecodeState belongs to one logical decode and is not safe for concurrent
// use.
type DecodeState struct {
	TileColumn int
	TileRow    int

	ExpectedWidth  int
	ExpectedHeight int

	bitDepth int
	chroma   ChromaSubsampling

	firstTileColor      CICPColorData
	usingFirstTileColor bool
}

func (s *DecodeState) firstTile() bool {
	return s.TileColumn == 0 && s.TileRow == 0
}

// classifyChroma derives the chroma layout class of a frame. Monochrome and
// Identity take precedence over the plane shifts.
func classifyChroma(frame *PlanarYUVFrame, identity bool) (ChromaSubsampling, error) {
	if frame.Monochrome {
		return Subsampling400, nil
	}
	if identity {
		return SubsamplingIdentity, nil
	}
	switch {
	case frame.XChromaShift == 1 && frame.YChromaShift == 1:
		return Subsampling420, nil
	case frame.XChromaShift == 1 && frame.YChromaShift == 0:
		return Subsampling422, nil
	case frame.XChromaShift == 0 && frame.YChromaShift == 0:
		return Subsampling444, nil
	}
	return 0, ErrUnknownYUVFormat
}

// validateAndRecordColor checks a color tile against the recorded first-tile
// format and returns the effective CICP values for its conversion: the
// container's color property when present, otherwise the frame's own values,
// which must then stay constant across tiles.
func (s *DecodeState) validateAndRecordColor(frame *PlanarYUVFrame, containerColor *CICPColorData) (CICPColorData, error) {
	identity := frame.MatrixCoefficients == MatrixIdentity ||
		(containerColor != nil && containerColor.MatrixCoefficients == MatrixIdentity)

	if s.firstTile() {
		if s.ExpectedWidth == 0 && s.ExpectedHeight == 0 {
			s.ExpectedWidth = frame.Width
			s.ExpectedHeight = frame.Height
		}
		s.bitDepth = frame.BitDepth

		chroma, err := classifyChroma(frame, identity)
		if err != nil {
			return CICPColorData{}, err
		}
		s.chroma = chroma
	} else {
		if frame.BitDepth != s.bitDepth {
			return CICPColorData{}, ErrTileFormatMismatch
		}

		chroma, err := classifyChroma(frame, identity)
		if err != nil {
			return CICPColorData{}, err
		}
		if chroma != s.chroma {
			return CICPColorData{}, ErrTileFormatMismatch
		}
	}

	if containerColor != nil {
		return *containerColor, nil
	}

	color := frame.CICP()

	if s.firstTile() {
		s.firstTileColor = color
		s.usingFirstTileColor = true
	} else if s.usingFirstTileColor && s.firstTileColor != color {
		return CICPColorData{}, ErrTileNclxProfileMismatch
	}

	return color, nil
}

// validateAndRecordAlpha checks an alpha tile. Alpha sub-images are always
// monochrome; only the bit depth is tracked.
func (s *DecodeState) validateAndRecordAlpha(frame *PlanarYUVFrame) error {
	if s.firstTile() {
		if s.ExpectedWidth == 0 && s.ExpectedHeight == 0 {
			s.ExpectedWidth = frame.Width
			s.ExpectedHeight = frame.Height
		}
		if s.bitDepth == 0 {
			s.bitDepth = frame.BitDepth
			s.chroma = Subsampling400
			return nil
		}
	}
	if frame.BitDepth != s.bitDepth {
		return ErrTileFormatMismatch
	}
	return nil
}

// copySizes clips the tile's extent to the part of the destination surface it
// covers, so edge tiles of a grid larger than the image don't write past it.
func (s *DecodeState) copySizes(frame *PlanarYUVFrame, dst *PixelSurface) (copyWidth, copyHeight int) {
	copyWidth = frame.Width
	if maxWidth := frame.Width * (s.TileColumn + 1); maxWidth > dst.Width {
		copyWidth -= maxWidth - dst.Width
	}

	copyHeight = frame.Height
	if maxHeight := frame.Height * (s.TileRow + 1); maxHeight > dst.Height {
		copyHeight -= maxHeight - dst.Height
	}

	return copyWidth, copyHeight
}
