package video

import (
	"bytes"
	"testing"
)

func TestConvertRGBAMatchesReference(t *testing.T) {
	// 2x2 luma block with a single uniform chroma sample, so nearest chroma
	// addressing reads the same UV pair for every pixel.
	f := NewFrame(2, 2)
	copy(f.Y, []byte{16, 81, 145, 235})
	f.UV[0] = 128
	f.UV[1] = 128

	c := NewConverter(WithWorkers(1))
	dst := make([]byte, 2*2*4)
	if err := c.ConvertRGBA(f, BT601Limited, dst); err != nil {
		t.Fatalf("ConvertRGBA: %v", err)
	}

	for i, yv := range f.Y {
		r, g, b := BT601Limited.Convert(float32(yv)/255.0, 128.0/255.0, 128.0/255.0)
		want := []byte{clampByte(r), clampByte(g), clampByte(b), 255}
		got := dst[i*4 : i*4+4]
		if !bytes.Equal(got, want) {
			t.Errorf("pixel %d: got %v, want %v", i, got, want)
		}
	}
}

func TestConvertRGBAClampsAtByteBoundary(t *testing.T) {
	// Full-swing chroma with black luma drives green far negative and blue
	// far beyond 1.0; the byte output must clamp rather than wrap.
	f := NewFrame(2, 2)
	copy(f.Y, []byte{16, 16, 16, 16})
	f.UV[0] = 255
	f.UV[1] = 255

	c := NewConverter(WithWorkers(1))
	dst := make([]byte, 2*2*4)
	if err := c.ConvertRGBA(f, BT601Limited, dst); err != nil {
		t.Fatalf("ConvertRGBA: %v", err)
	}

	if dst[1] != 0 {
		t.Errorf("green = %d, want clamped to 0", dst[1])
	}
	if dst[2] != 255 {
		t.Errorf("blue = %d, want clamped to 255", dst[2])
	}
	if dst[3] != 255 {
		t.Errorf("alpha = %d, want 255", dst[3])
	}
}

func TestConvertRGBAParallelMatchesSerial(t *testing.T) {
	f := ColorBars(128, 64, 5)

	serial := make([]byte, 128*64*4)
	if err := NewConverter(WithWorkers(1)).ConvertRGBA(f, BT601Limited, serial); err != nil {
		t.Fatalf("serial ConvertRGBA: %v", err)
	}

	parallel := make([]byte, 128*64*4)
	if err := NewConverter(WithWorkers(4)).ConvertRGBA(f, BT601Limited, parallel); err != nil {
		t.Fatalf("parallel ConvertRGBA: %v", err)
	}

	if !bytes.Equal(serial, parallel) {
		t.Error("parallel conversion differs from serial conversion")
	}
}

func TestConvertRGBAErrors(t *testing.T) {
	c := NewConverter(WithWorkers(1))

	f := NewFrame(4, 4)
	if err := c.ConvertRGBA(f, BT601Limited, make([]byte, 10)); err == nil {
		t.Error("expected error for short destination")
	}

	f.YStride = 1
	if err := c.ConvertRGBA(f, BT601Limited, make([]byte, 4*4*4)); err == nil {
		t.Error("expected error for invalid frame")
	}
}
