package video

// ConversionMatrix describes an affine YUV to RGB conversion: each sampled
// component first has its offset subtracted, then the 3x3 coefficient matrix
// is applied. Conversions are pure data so alternative colorimetry standards
// are swapped in without touching the conversion code or shaders.
type ConversionMatrix struct {
	// Coeff is the row-major coefficient matrix. Row 0 produces R, row 1
	// produces G, row 2 produces B; columns multiply Y, U, V in that order.
	Coeff [3][3]float32

	// Offset holds the per-component offsets subtracted before the matrix is
	// applied, in Y, U, V order.
	Offset [3]float32
}

// BT601Limited is the ITU-R BT.601 limited-range ("studio swing") conversion.
// Luma occupies [16/256, 235/256] and chroma is centered at 128/256, which the
// offsets remove before the matrix expands the range to full-swing RGB.
// This is the canonical matrix for SD video and the default for NV12 frames.
var BT601Limited = ConversionMatrix{
	Coeff: [3][3]float32{
		{1.164, 0.0, 1.596},
		{1.164, -0.391, -0.813},
		{1.164, 2.018, 0.0},
	},
	Offset: [3]float32{0.0625, 0.5, 0.5},
}

// BT709Limited is the ITU-R BT.709 limited-range conversion used by HD video.
// Offsets are identical to BT.601; only the chroma coefficients differ.
var BT709Limited = ConversionMatrix{
	Coeff: [3][3]float32{
		{1.164, 0.0, 1.793},
		{1.164, -0.213, -0.533},
		{1.164, 2.112, 0.0},
	},
	Offset: [3]float32{0.0625, 0.5, 0.5},
}

// Convert applies the affine conversion to a single normalized YUV sample.
// Inputs are expected in [0, 1] as produced by unorm texture sampling, but no
// clamping is performed on input or output: out-of-gamut results pass through
// unchanged, matching the fragment shader. Callers targeting 8-bit surfaces
// clamp at the byte-conversion boundary instead.
//
// Parameters:
//   - y: the normalized luma sample
//   - u: the normalized blue-difference chroma sample
//   - v: the normalized red-difference chroma sample
//
// Returns:
//   - r, g, b: the converted color components, unclamped
func (m ConversionMatrix) Convert(y, u, v float32) (r, g, b float32) {
	y -= m.Offset[0]
	u -= m.Offset[1]
	v -= m.Offset[2]

	r = m.Coeff[0][0]*y + m.Coeff[0][1]*u + m.Coeff[0][2]*v
	g = m.Coeff[1][0]*y + m.Coeff[1][1]*u + m.Coeff[1][2]*v
	b = m.Coeff[2][0]*y + m.Coeff[2][1]*u + m.Coeff[2][2]*v
	return r, g, b
}
