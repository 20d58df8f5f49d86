package video

import (
	"math"
	"testing"
)

const colorEpsilon = 1e-5

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < colorEpsilon
}

func TestConvertBlackLevel(t *testing.T) {
	// Limited-range black: Y = 16/256, neutral chroma.
	r, g, b := BT601Limited.Convert(0.0625, 0.5, 0.5)
	if !near(r, 0) || !near(g, 0) || !near(b, 0) {
		t.Errorf("black converts to (%v, %v, %v), want (0, 0, 0)", r, g, b)
	}
}

func TestConvertWhiteLevel(t *testing.T) {
	// Limited-range white: Y = 235/255, neutral chroma. 1.164 is the
	// rounded 255/219 range expansion, so white lands near 1.0.
	r, g, b := BT601Limited.Convert(235.0/255.0, 0.5, 0.5)
	for _, c := range []float32{r, g, b} {
		if math.Abs(float64(c-1.0)) > 0.005 {
			t.Errorf("white converts to (%v, %v, %v), want ~(1, 1, 1)", r, g, b)
		}
	}
}

func TestConvertCoefficients(t *testing.T) {
	// Probing with unit deltas on each input isolates one matrix column at
	// a time, pinning all nine coefficients through the public API.
	base := func() (float32, float32, float32) { return BT601Limited.Convert(0.0625, 0.5, 0.5) }
	br, bg, bb := base()

	yr, yg, yb := BT601Limited.Convert(1.0625, 0.5, 0.5)
	if !near(yr-br, 1.164) || !near(yg-bg, 1.164) || !near(yb-bb, 1.164) {
		t.Errorf("luma column = (%v, %v, %v), want (1.164, 1.164, 1.164)", yr-br, yg-bg, yb-bb)
	}

	ur, ug, ub := BT601Limited.Convert(0.0625, 1.5, 0.5)
	if !near(ur-br, 0) || !near(ug-bg, -0.391) || !near(ub-bb, 2.018) {
		t.Errorf("U column = (%v, %v, %v), want (0, -0.391, 2.018)", ur-br, ug-bg, ub-bb)
	}

	vr, vg, vb := BT601Limited.Convert(0.0625, 0.5, 1.5)
	if !near(vr-br, 1.596) || !near(vg-bg, -0.813) || !near(vb-bb, 0) {
		t.Errorf("V column = (%v, %v, %v), want (1.596, -0.813, 0)", vr-br, vg-bg, vb-bb)
	}
}

func TestConvertDoesNotClamp(t *testing.T) {
	// Super-white luma must overshoot 1.0 and full-swing chroma must drive
	// components negative; clamping is the caller's responsibility.
	r, _, _ := BT601Limited.Convert(1.0, 0.5, 0.5)
	if r <= 1.0 {
		t.Errorf("super-white r = %v, want > 1.0", r)
	}

	_, g, _ := BT601Limited.Convert(0.0625, 1.0, 1.0)
	if g >= 0 {
		t.Errorf("saturated chroma g = %v, want < 0", g)
	}
}

func TestConvertLinearity(t *testing.T) {
	// The conversion is affine: averaging inputs must average outputs.
	r1, g1, b1 := BT601Limited.Convert(0.2, 0.3, 0.4)
	r2, g2, b2 := BT601Limited.Convert(0.8, 0.7, 0.6)
	rm, gm, bm := BT601Limited.Convert(0.5, 0.5, 0.5)

	if !near((r1+r2)/2, rm) || !near((g1+g2)/2, gm) || !near((b1+b2)/2, bm) {
		t.Errorf("midpoint (%v, %v, %v) does not match averaged endpoints", rm, gm, bm)
	}
}

func TestBT709DiffersInChromaOnly(t *testing.T) {
	if BT601Limited.Offset != BT709Limited.Offset {
		t.Error("BT.601 and BT.709 offsets should match")
	}
	if BT601Limited.Coeff[0][0] != BT709Limited.Coeff[0][0] {
		t.Error("luma coefficient should match across standards")
	}
	if BT601Limited.Coeff[0][2] == BT709Limited.Coeff[0][2] {
		t.Error("V-to-R coefficient should differ across standards")
	}
}
