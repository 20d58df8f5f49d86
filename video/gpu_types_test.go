package video

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"
)

func TestGPURectUniformLayout(t *testing.T) {
	u := NewGPURectUniform(Rect{X0: 0.25, Y0: 0.5, X1: 0.75, Y1: 1.0})

	if got := u.Size(); got != 16 {
		t.Fatalf("Size() = %d, want 16", got)
	}

	buf := u.Marshal()
	if len(buf) != 16 {
		t.Fatalf("Marshal() returned %d bytes, want 16", len(buf))
	}

	// Field order must match the WGSL PlaneRect struct: min corner then max
	// corner, little-endian float32 each.
	want := []float32{0.25, 0.5, 0.75, 1.0}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != w {
			t.Errorf("field %d = %v, want %v", i, got, w)
		}
	}
}

func TestGPURectUniformSourceDefinesPlaneRect(t *testing.T) {
	if !strings.Contains(GPURectUniformSource, "struct PlaneRect") {
		t.Error("embedded WGSL source does not define struct PlaneRect")
	}
	if !strings.Contains(GPURectUniformSource, "vec2<f32>") {
		t.Error("embedded WGSL source does not use vec2<f32> fields")
	}
}
