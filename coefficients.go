package avifpix

// YUVCoefficients is the (Kr, Kg, Kb) triple relating RGB to luma/chroma for
// the linear color models. Kg is always 1 - Kr - Kb.
type YUVCoefficients struct {
	Kr float32
	Kg float32
	Kb float32
}

// chromaticity holds CIE xy coordinates for the three primaries and the
// white point: rX, rY, gX, gY, bX, bY, wX, wY.
type chromaticity [8]float32

var primariesChromaticities = map[ColorPrimaries]chromaticity{
	PrimariesBT709:       {0.64, 0.33, 0.3, 0.6, 0.15, 0.06, 0.3127, 0.329},
	PrimariesBT470M:      {0.67, 0.33, 0.21, 0.71, 0.14, 0.08, 0.310, 0.316},
	PrimariesBT470BG:     {0.64, 0.33, 0.29, 0.60, 0.15, 0.06, 0.3127, 0.3290},
	PrimariesBT601:       {0.630, 0.340, 0.310, 0.595, 0.155, 0.070, 0.3127, 0.3290},
	PrimariesSmpte240:    {0.630, 0.340, 0.310, 0.595, 0.155, 0.070, 0.3127, 0.3290},
	PrimariesGenericFilm: {0.681, 0.319, 0.243, 0.692, 0.145, 0.049, 0.310, 0.316},
	PrimariesBT2020:      {0.708, 0.292, 0.170, 0.797, 0.131, 0.046, 0.3127, 0.3290},
	PrimariesXYZ:         {1.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.3333, 0.3333},
	PrimariesSmpte431:    {0.680, 0.320, 0.265, 0.690, 0.150, 0.060, 0.314, 0.351},
	PrimariesSmpte432:    {0.680, 0.320, 0.265, 0.690, 0.150, 0.060, 0.3127, 0.3290},
	PrimariesEBU3213:     {0.630, 0.340, 0.295, 0.605, 0.155, 0.077, 0.3127, 0.3290},
}

// Fixed Kr/Kb constants from H.273 Table 4. Identity and the YCgCo family
// are absent on purpose: they dispatch to dedicated non-linear routines.
var matrixKrKb = map[MatrixCoefficients][2]float32{
	MatrixBT709:     {0.2126, 0.0722},
	MatrixFCC:       {0.30, 0.11},
	MatrixBT470BG:   {0.299, 0.114},
	MatrixBT601:     {0.299, 0.114},
	MatrixSmpte240:  {0.212, 0.087},
	MatrixBT2020NCL: {0.2627, 0.0593},
}

// Coefficients resolves the conversion coefficients for the colour data.
//
// Values without a usable Kr/Kb pair fall back to BT.601 (kr=0.299,
// kb=0.114): per MIAF 7.3.6.4 an image without an explicit colour property
// defaults to matrix coefficients 5/6, so the permissive fallback matches the
// container format's documented default rather than failing.
func (c CICPColorData) Coefficients() YUVCoefficients {
	kr, kb := float32(0.299), float32(0.114)

	if c.MatrixCoefficients == MatrixChromatNCL {
		kr, kb = chromaticityDerivedKrKb(c.ColorPrimaries)
	} else if pair, ok := matrixKrKb[c.MatrixCoefficients]; ok {
		kr, kb = pair[0], pair[1]
	}

	return YUVCoefficients{Kr: kr, Kg: 1 - kr - kb, Kb: kb}
}

// chromaticityDerivedKrKb computes Kr/Kb from the colour primaries per
// H.273 Eq. 32-37 (non-constant luminance).
func chromaticityDerivedKrKb(cp ColorPrimaries) (kr, kb float32) {
	prim, ok := primariesChromaticities[cp]
	if !ok {
		// Unknown primaries: use BT.709 as a reasonable default.
		prim = primariesChromaticities[PrimariesBT709]
	}

	rX, rY := prim[0], prim[1]
	gX, gY := prim[2], prim[3]
	bX, bY := prim[4], prim[5]
	wX, wY := prim[6], prim[7]
	rZ := 1.0 - (rX + rY)
	gZ := 1.0 - (gX + gY)
	bZ := 1.0 - (bX + bY)
	wZ := 1.0 - (wX + wY)

	denom := wY * (rX*(gY*bZ-bY*gZ) + gX*(bY*rZ-rY*bZ) + bX*(rY*gZ-gY*rZ))
	kr = rY * (wX*(gY*bZ-bY*gZ) + wY*(bX*gZ-gX*bZ) + wZ*(gX*bY-bX*gY)) / denom
	kb = bY * (wX*(rY*gZ-gY*rZ) + wY*(gX*rZ-rX*gZ) + wZ*(rX*gY-gX*rY)) / denom

	return kr, kb
}
