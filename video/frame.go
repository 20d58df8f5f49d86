package video

import "fmt"

// Frame is a single NV12 video frame: a full-resolution luma plane followed by
// a half-resolution plane of interleaved UV byte pairs. Strides are in bytes
// and may exceed the packed row width for decoder-aligned frames.
type Frame struct {
	// Width and Height are the visible frame dimensions in pixels. Both must
	// be even: NV12 stores one UV pair per 2x2 luma block.
	Width, Height int

	// Y is the luma plane, one byte per pixel, Height rows of YStride bytes.
	Y []byte

	// YStride is the byte distance between luma rows. Must be >= Width.
	YStride int

	// UV is the interleaved chroma plane: ChromaHeight rows of UVStride bytes,
	// each row holding ChromaWidth U,V byte pairs.
	UV []byte

	// UVStride is the byte distance between chroma rows. Must be >= 2*ChromaWidth.
	UVStride int
}

// NewFrame allocates a tightly packed NV12 frame of the given dimensions.
// Panics if either dimension is not a positive even number, since such a frame
// can never hold valid NV12 data.
//
// Parameters:
//   - width: frame width in pixels (positive, even)
//   - height: frame height in pixels (positive, even)
//
// Returns:
//   - *Frame: the allocated frame with packed strides
func NewFrame(width, height int) *Frame {
	if width <= 0 || height <= 0 || width%2 != 0 || height%2 != 0 {
		panic(fmt.Sprintf("video: invalid NV12 frame dimensions %dx%d", width, height))
	}
	return &Frame{
		Width:    width,
		Height:   height,
		Y:        make([]byte, width*height),
		YStride:  width,
		UV:       make([]byte, width*height/2),
		UVStride: width,
	}
}

// ChromaWidth returns the width of the chroma plane in UV pairs.
//
// Returns:
//   - int: half the frame width
func (f *Frame) ChromaWidth() int {
	return f.Width / 2
}

// ChromaHeight returns the height of the chroma plane in rows.
//
// Returns:
//   - int: half the frame height
func (f *Frame) ChromaHeight() int {
	return f.Height / 2
}

// Validate checks that the frame's dimensions, strides, and plane lengths are
// mutually consistent for NV12 layout.
//
// Returns:
//   - error: a descriptive error for the first inconsistency found, or nil
func (f *Frame) Validate() error {
	if f == nil {
		return fmt.Errorf("frame is nil")
	}
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("invalid frame dimensions %dx%d", f.Width, f.Height)
	}
	if f.Width%2 != 0 || f.Height%2 != 0 {
		return fmt.Errorf("NV12 requires even dimensions, got %dx%d", f.Width, f.Height)
	}
	if f.YStride < f.Width {
		return fmt.Errorf("luma stride %d is less than width %d", f.YStride, f.Width)
	}
	if f.UVStride < f.ChromaWidth()*2 {
		return fmt.Errorf("chroma stride %d is less than packed row width %d", f.UVStride, f.ChromaWidth()*2)
	}
	if need := f.YStride * f.Height; len(f.Y) < need {
		return fmt.Errorf("luma plane holds %d bytes, need %d", len(f.Y), need)
	}
	if need := f.UVStride * f.ChromaHeight(); len(f.UV) < need {
		return fmt.Errorf("chroma plane holds %d bytes, need %d", len(f.UV), need)
	}
	return nil
}

// FromI420 repacks a triple-plane I420 frame into NV12 by interleaving the
// separate U and V planes. This is an ingest convenience for decoder output;
// the render path itself only consumes NV12.
//
// Parameters:
//   - y: the luma plane, height rows of yStride bytes
//   - u: the blue-difference plane, height/2 rows of uStride bytes
//   - v: the red-difference plane, height/2 rows of vStride bytes
//   - yStride, uStride, vStride: the byte distances between source rows
//   - width, height: the frame dimensions in pixels (even)
//
// Returns:
//   - *Frame: the repacked NV12 frame with packed strides
//   - error: an error if the dimensions or source planes are inconsistent
func FromI420(y, u, v []byte, yStride, uStride, vStride, width, height int) (*Frame, error) {
	if width <= 0 || height <= 0 || width%2 != 0 || height%2 != 0 {
		return nil, fmt.Errorf("invalid I420 dimensions %dx%d", width, height)
	}
	cw, ch := width/2, height/2
	if yStride < width || uStride < cw || vStride < cw {
		return nil, fmt.Errorf("source strides (%d, %d, %d) too small for %dx%d", yStride, uStride, vStride, width, height)
	}
	if len(y) < yStride*height {
		return nil, fmt.Errorf("luma plane holds %d bytes, need %d", len(y), yStride*height)
	}
	if len(u) < uStride*ch || len(v) < vStride*ch {
		return nil, fmt.Errorf("chroma planes hold %d and %d bytes, need %d", len(u), len(v), max(uStride, vStride)*ch)
	}

	f := NewFrame(width, height)
	for row := 0; row < height; row++ {
		copy(f.Y[row*f.YStride:row*f.YStride+width], y[row*yStride:])
	}
	for row := 0; row < ch; row++ {
		dst := f.UV[row*f.UVStride:]
		srcU := u[row*uStride:]
		srcV := v[row*vStride:]
		for col := 0; col < cw; col++ {
			dst[col*2] = srcU[col]
			dst[col*2+1] = srcV[col]
		}
	}
	return f, nil
}
