package video

import "testing"

func TestColorBarsDimensions(t *testing.T) {
	f := ColorBars(140, 64, 0)
	if err := f.Validate(); err != nil {
		t.Fatalf("pattern frame fails validation: %v", err)
	}
	if f.Width != 140 || f.Height != 64 {
		t.Errorf("dims = %dx%d, want 140x64", f.Width, f.Height)
	}
}

func TestColorBarsLumaDescends(t *testing.T) {
	// 140 wide gives exactly 20 columns per bar. Standard bars run from
	// white down to blue, so luma sampled at bar centers strictly decreases.
	f := ColorBars(140, 4, 0)

	prev := int(f.Y[10])
	for bar := 1; bar < 7; bar++ {
		y := int(f.Y[bar*20+10])
		if y >= prev {
			t.Errorf("bar %d luma %d not below previous %d", bar, y, prev)
		}
		prev = y
	}
}

func TestColorBarsUniformColumns(t *testing.T) {
	f := ColorBars(140, 8, 0)

	// Every row carries the same column pattern.
	for row := 1; row < f.Height; row++ {
		for col := 0; col < f.Width; col++ {
			if f.Y[row*f.YStride+col] != f.Y[col] {
				t.Fatalf("luma row %d col %d differs from row 0", row, col)
			}
		}
	}
	for row := 1; row < f.ChromaHeight(); row++ {
		for i := 0; i < f.ChromaWidth()*2; i++ {
			if f.UV[row*f.UVStride+i] != f.UV[i] {
				t.Fatalf("chroma row %d byte %d differs from row 0", row, i)
			}
		}
	}
}

func TestColorBarsShiftWraps(t *testing.T) {
	base := ColorBars(140, 4, 0)
	wrapped := ColorBars(140, 4, 140)

	if string(base.Y) != string(wrapped.Y) || string(base.UV) != string(wrapped.UV) {
		t.Error("shift of a full width should reproduce the unshifted pattern")
	}

	shifted := ColorBars(140, 4, 20)
	if shifted.Y[0] != base.Y[20] {
		t.Errorf("shifted column 0 luma = %d, want %d", shifted.Y[0], base.Y[20])
	}
}
