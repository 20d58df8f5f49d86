package video

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPURectUniformSource is the canonical WGSL definition of the PlaneRect struct.
// Matches GPURectUniform layout exactly (16 bytes, std430 aligned).
//
//go:embed assets/plane_rect.wgsl
var GPURectUniformSource string

// GPURectUniform is the GPU-aligned representation of the plane rectangle
// uniform buffer. Matches the WGSL PlaneRect struct layout exactly (see
// GPURectUniformSource). Size: 16 bytes (std430 / WGSL aligned).
type GPURectUniform struct {
	X0 float32 // offset  0: min corner x (vec2<f32>.x)
	Y0 float32 // offset  4: min corner y (vec2<f32>.y)
	X1 float32 // offset  8: max corner x (vec2<f32>.x)
	Y1 float32 // offset 12: max corner y (vec2<f32>.y)
}

// NewGPURectUniform builds the uniform representation of a placement Rect.
//
// Parameters:
//   - r: the placement rectangle to pack
//
// Returns:
//   - GPURectUniform: the packed uniform value
func NewGPURectUniform(r Rect) GPURectUniform {
	return GPURectUniform{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y1}
}

// Size returns the size of the GPURectUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (16)
func (g *GPURectUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPURectUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPURectUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(g.X0))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(g.Y0))
	binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(g.X1))
	binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(g.Y1))
	return buf
}
