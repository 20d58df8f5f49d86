// package video contains the CPU-side core of the NV12 plane renderer: the
// placement rectangle and vertex generation, the YUV to RGB conversion
// matrices, NV12 frame handling, the latest-frame feed, and the CPU fallback
// converter. It has no GPU dependencies so every function here is directly
// testable; the shader sources in assets/ mirror these functions exactly.
package video

// PlaneVertexCount is the number of vertex invocations required to draw the
// video plane. The vertex stage generates all geometry from the vertex index,
// so a draw call uses this count with no vertex or index buffers bound.
const PlaneVertexCount = 6

// Rect is the placement rectangle for the video plane, expressed as two
// corner points in a clip-compatible coordinate space. No range validation is
// performed; values outside [-1, 1] are legal and simply place geometry
// off-target.
type Rect struct {
	X0, Y0 float32
	X1, Y1 float32
}

// Corners returns the six corner positions of the rectangle as two triangles
// sharing the X1,Y0 / X0,Y1 diagonal. The sequence is fixed:
// (X0,Y0) (X1,Y0) (X0,Y1) (X1,Y1) (X1,Y0) (X0,Y1).
//
// Returns:
//   - [6][2]float32: the corner sequence, one entry per vertex invocation
func (r Rect) Corners() [6][2]float32 {
	return [6][2]float32{
		{r.X0, r.Y0},
		{r.X1, r.Y0},
		{r.X0, r.Y1},
		{r.X1, r.Y1},
		{r.X1, r.Y0},
		{r.X0, r.Y1},
	}
}

// GenerateVertex is the CPU mirror of the plane vertex shader. It maps a
// vertex index to an output position and uv coordinate using only the index;
// the rectangle parameter matches the shader's uniform binding but does not
// influence the emitted position, so the generated triangle always covers the
// full render target regardless of r.
//
// uv.x is 2.0 only when index == 1 and uv.y is 2.0 only when index == 2,
// producing an oversized triangle whose on-target uv range is [0, 1].
// Position is uv scaled by (2, -2) and offset by (-1, 1), with z = w = 1.
//
// Parameters:
//   - index: the vertex index, 0 through PlaneVertexCount-1 for a full draw
//   - r: the placement rectangle (bound but unused by the position math)
//
// Returns:
//   - pos: the clip-space position as (x, y, z, w)
//   - uv: the texture coordinate forwarded to the fragment stage
func GenerateVertex(index uint32, r Rect) (pos [4]float32, uv [2]float32) {
	_ = r

	if index == 1 {
		uv[0] = 2.0
	}
	if index == 2 {
		uv[1] = 2.0
	}

	pos = [4]float32{
		uv[0]*2.0 - 1.0,
		uv[1]*-2.0 + 1.0,
		1.0,
		1.0,
	}
	return pos, uv
}
