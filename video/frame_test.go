package video

import (
	"strings"
	"testing"
)

func TestNewFrameLayout(t *testing.T) {
	f := NewFrame(64, 48)

	if f.YStride != 64 || len(f.Y) != 64*48 {
		t.Errorf("luma plane: stride %d, len %d", f.YStride, len(f.Y))
	}
	if f.UVStride != 64 || len(f.UV) != 64*24 {
		t.Errorf("chroma plane: stride %d, len %d", f.UVStride, len(f.UV))
	}
	if f.ChromaWidth() != 32 || f.ChromaHeight() != 24 {
		t.Errorf("chroma dims = %dx%d, want 32x24", f.ChromaWidth(), f.ChromaHeight())
	}
	if err := f.Validate(); err != nil {
		t.Errorf("fresh frame fails validation: %v", err)
	}
}

func TestNewFramePanicsOnOddDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for odd width")
		}
	}()
	NewFrame(63, 48)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Frame)
		wantMsg string
	}{
		{"odd width", func(f *Frame) { f.Width = 63 }, "even dimensions"},
		{"short luma stride", func(f *Frame) { f.YStride = 32 }, "luma stride"},
		{"short chroma stride", func(f *Frame) { f.UVStride = 10 }, "chroma stride"},
		{"truncated luma", func(f *Frame) { f.Y = f.Y[:100] }, "luma plane"},
		{"truncated chroma", func(f *Frame) { f.UV = f.UV[:10] }, "chroma plane"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame(64, 48)
			tt.mutate(f)
			err := f.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}

	var nilFrame *Frame
	if err := nilFrame.Validate(); err == nil {
		t.Error("nil frame should fail validation")
	}
}

func TestFromI420Interleaves(t *testing.T) {
	// 4x2 frame: chroma plane is 2x1.
	y := []byte{10, 11, 12, 13, 20, 21, 22, 23}
	u := []byte{100, 101}
	v := []byte{200, 201}

	f, err := FromI420(y, u, v, 4, 2, 2, 4, 2)
	if err != nil {
		t.Fatalf("FromI420: %v", err)
	}

	if string(f.Y) != string(y) {
		t.Errorf("luma = %v, want %v", f.Y, y)
	}
	wantUV := []byte{100, 200, 101, 201}
	if string(f.UV) != string(wantUV) {
		t.Errorf("chroma = %v, want %v", f.UV, wantUV)
	}
}

func TestFromI420StridedSource(t *testing.T) {
	// Source planes with padding: luma stride 6 for a width of 4.
	y := []byte{
		1, 2, 3, 4, 0, 0,
		5, 6, 7, 8, 0, 0,
	}
	u := []byte{100, 101, 0}
	v := []byte{200, 201, 0}

	f, err := FromI420(y, u, v, 6, 3, 3, 4, 2)
	if err != nil {
		t.Fatalf("FromI420: %v", err)
	}
	wantY := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if string(f.Y) != string(wantY) {
		t.Errorf("luma = %v, want %v", f.Y, wantY)
	}
	if f.YStride != 4 {
		t.Errorf("repacked stride = %d, want 4", f.YStride)
	}
}

func TestFromI420Errors(t *testing.T) {
	y := make([]byte, 8)
	u := make([]byte, 2)
	v := make([]byte, 2)

	if _, err := FromI420(y, u, v, 4, 2, 2, 3, 2); err == nil {
		t.Error("expected error for odd width")
	}
	if _, err := FromI420(y[:4], u, v, 4, 2, 2, 4, 2); err == nil {
		t.Error("expected error for truncated luma")
	}
	if _, err := FromI420(y, u[:1], v, 4, 2, 2, 4, 2); err == nil {
		t.Error("expected error for truncated chroma")
	}
}
