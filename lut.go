package avifpix

// limitedToFull rescales one limited-range sample code to full range.
// min/max are the limited-range bounds and full is the full-range maximum.
func limitedToFull(min, max, full, v int) int {
	v = (((v - min) * full) + ((max - min) / 2)) / (max - min)
	if v < 0 {
		return 0
	}
	if v > full {
		return full
	}
	return v
}

// limitedToFullLuma expands a limited-range luma code to full range for the
// given bit depth (16..235 at 8 bits, scaled by 4x per extra 2 bits).
func limitedToFullLuma(bitDepth, v int) int {
	switch bitDepth {
	case 8:
		return limitedToFull(16, 235, 255, v)
	case 10:
		return limitedToFull(64, 940, 1023, v)
	case 12:
		return limitedToFull(256, 3760, 4095, v)
	case 16:
		return limitedToFull(1024, 60160, 65535, v)
	}
	return v
}

// limitedToFullChroma expands a limited-range chroma code to full range
// (16..240 at 8 bits).
func limitedToFullChroma(bitDepth, v int) int {
	switch bitDepth {
	case 8:
		return limitedToFull(16, 240, 255, v)
	case 10:
		return limitedToFull(64, 960, 1023, v)
	case 12:
		return limitedToFull(256, 3840, 4095, v)
	case 16:
		return limitedToFull(1024, 61440, 65535, v)
	}
	return v
}

// yuvLookupTables maps raw sample codes to normalized channel values so the
// per-pixel loops do one table read instead of a range expansion, a divide
// and a recenter. Luma entries land in [0,1]; chroma entries are recentered
// around zero in [-0.5,0.5].
type yuvLookupTables struct {
	luma   []float32
	chroma []float32
}

// newYUVLookupTables builds the tables for a frame's depth, range and color
// model. Identity frames keep raw channel values in all three planes, so
// their chroma table aliases the luma table instead of recentering.
func newYUVLookupTables(f *PlanarYUVFrame) (*yuvLookupTables, error) {
	switch f.BitDepth {
	case 8, 10, 12, 16:
	default:
		return nil, ErrUnsupportedBitDepth
	}
	count := f.maxChannel() + 1

	t := &yuvLookupTables{luma: make([]float32, count)}
	divisor := float32(count - 1)
	fullRange := f.Range == RangeFull

	for i := 0; i < count; i++ {
		v := i
		if !fullRange {
			v = limitedToFullLuma(f.BitDepth, v)
		}
		t.luma[i] = float32(v) / divisor
	}

	if f.MatrixCoefficients == MatrixIdentity {
		t.chroma = t.luma
		return t, nil
	}

	t.chroma = make([]float32, count)
	for i := 0; i < count; i++ {
		v := i
		if !fullRange {
			v = limitedToFullChroma(f.BitDepth, v)
		}
		t.chroma[i] = float32(v)/divisor - 0.5
	}

	return t, nil
}

// identity8LimitedToFull maps limited-range 8-bit codes straight to full
// range, used by the fast path that copies Identity samples byte for byte.
var identity8LimitedToFull = buildIdentity8LimitedToFull()

func buildIdentity8LimitedToFull() (table [256]uint8) {
	for i := range table {
		table[i] = uint8(limitedToFullLuma(8, i))
	}
	return table
}
