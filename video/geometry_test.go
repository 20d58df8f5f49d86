package video

import "testing"

func TestGenerateVertexPattern(t *testing.T) {
	r := Rect{X0: -0.5, Y0: -0.5, X1: 0.5, Y1: 0.5}

	tests := []struct {
		index   uint32
		wantUV  [2]float32
		wantPos [4]float32
	}{
		{0, [2]float32{0, 0}, [4]float32{-1, 1, 1, 1}},
		{1, [2]float32{2, 0}, [4]float32{3, 1, 1, 1}},
		{2, [2]float32{0, 2}, [4]float32{-1, -3, 1, 1}},
		{3, [2]float32{0, 0}, [4]float32{-1, 1, 1, 1}},
		{4, [2]float32{0, 0}, [4]float32{-1, 1, 1, 1}},
		{5, [2]float32{0, 0}, [4]float32{-1, 1, 1, 1}},
	}

	for _, tt := range tests {
		pos, uv := GenerateVertex(tt.index, r)
		if uv != tt.wantUV {
			t.Errorf("index %d: uv = %v, want %v", tt.index, uv, tt.wantUV)
		}
		if pos != tt.wantPos {
			t.Errorf("index %d: pos = %v, want %v", tt.index, pos, tt.wantPos)
		}
	}
}

func TestGenerateVertexIgnoresRect(t *testing.T) {
	rects := []Rect{
		{},
		{X0: -1, Y0: -1, X1: 1, Y1: 1},
		{X0: 5, Y0: -7, X1: 100, Y1: 0.25},
	}

	for idx := uint32(0); idx < PlaneVertexCount; idx++ {
		refPos, refUV := GenerateVertex(idx, Rect{})
		for _, r := range rects {
			pos, uv := GenerateVertex(idx, r)
			if pos != refPos || uv != refUV {
				t.Errorf("index %d: output varies with rect %+v", idx, r)
			}
		}
	}
}

func TestGenerateVertexCoversTarget(t *testing.T) {
	// The three distinct outputs form a triangle spanning x in [-1, 3] and
	// y in [-3, 1], so the [-1, 1] clip region is fully covered with the
	// visible uv range being exactly [0, 1].
	p0, _ := GenerateVertex(0, Rect{})
	p1, _ := GenerateVertex(1, Rect{})
	p2, _ := GenerateVertex(2, Rect{})

	if p0[0] != -1 || p1[0] != 3 {
		t.Errorf("x extent = [%v, %v], want [-1, 3]", p0[0], p1[0])
	}
	if p2[1] != -3 || p0[1] != 1 {
		t.Errorf("y extent = [%v, %v], want [-3, 1]", p2[1], p0[1])
	}
	for i, p := range [][4]float32{p0, p1, p2} {
		if p[2] != 1 || p[3] != 1 {
			t.Errorf("vertex %d: z, w = %v, %v, want 1, 1", i, p[2], p[3])
		}
	}
}

func TestRectCorners(t *testing.T) {
	r := Rect{X0: -0.25, Y0: 0.75, X1: 0.5, Y1: -0.5}

	got := r.Corners()
	want := [6][2]float32{
		{-0.25, 0.75},
		{0.5, 0.75},
		{-0.25, -0.5},
		{0.5, -0.5},
		{0.5, 0.75},
		{-0.25, -0.5},
	}
	if got != want {
		t.Errorf("Corners() = %v, want %v", got, want)
	}

	// The two triangles share the (X1,Y0)-(X0,Y1) diagonal.
	if got[1] != got[4] || got[2] != got[5] {
		t.Error("triangles do not share the diagonal corners")
	}
}
