// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// PlaneFormat identifies the pixel layout of a single video plane texture.
type PlaneFormat int

const (
	// PlaneFormatLuma is a single-channel 8-bit plane, one byte per pixel.
	PlaneFormatLuma PlaneFormat = iota
	// PlaneFormatChroma is a two-channel 8-bit plane holding interleaved
	// UV byte pairs, two bytes per texel.
	PlaneFormatChroma
)

// TextureFormat returns the GPU texture format matching the plane format.
//
// Returns:
//   - wgpu.TextureFormat: R8Unorm for luma planes, RG8Unorm for chroma planes
func (p PlaneFormat) TextureFormat() wgpu.TextureFormat {
	if p == PlaneFormatChroma {
		return wgpu.TextureFormatRG8Unorm
	}
	return wgpu.TextureFormatR8Unorm
}

// BytesPerTexel returns the byte width of one texel in the plane format.
//
// Returns:
//   - uint32: 1 for luma planes, 2 for chroma planes
func (p PlaneFormat) BytesPerTexel() uint32 {
	if p == PlaneFormatChroma {
		return 2
	}
	return 1
}

// PlaneStagingData holds the pixel data for one video plane pending GPU upload.
// This is used in the BindGroupProvider to stage plane data before creating the
// GPU texture, and again on every frame to describe the queue write.
type PlaneStagingData struct {
	// Pixels is the plane's byte data, Height rows of Stride bytes.
	Pixels []byte
	// Width is the plane width in texels. For chroma planes this is half the
	// frame width, since each texel carries one UV pair.
	Width uint32
	// Height is the plane height in rows.
	Height uint32
	// Stride is the byte distance between rows. Zero means tightly packed.
	Stride uint32
	// Format selects the texel layout of the plane.
	Format PlaneFormat
}

// RowPitch returns the effective byte distance between rows, resolving a zero
// stride to the packed row width.
//
// Returns:
//   - uint32: the stride in bytes
func (p PlaneStagingData) RowPitch() uint32 {
	return Coalesce(p.Stride, p.Width*p.Format.BytesPerTexel())
}

// SamplerStagingData holds the configuration for a sampler binding pending GPU creation.
// This is primarily used in the BindGroupProvider to stage sampler data before creating the GPU sampler and bind group.
type SamplerStagingData struct {
	// AddressModeU, AddressModeV, AddressModeW specify the addressing mode for texture coordinates outside the [0, 1] range in each dimension (U, V, W).
	AddressModeU, AddressModeV, AddressModeW wgpu.AddressMode
	// MagFilter and MinFilter specify the filtering mode for magnification and minification.
	MagFilter, MinFilter wgpu.FilterMode
	// MipmapFilter specifies the filtering mode for mipmap level selection.
	MipmapFilter wgpu.MipmapFilterMode
	// LodMinClamp and LodMaxClamp specify the minimum and maximum level of detail (LOD) for mipmapping.
	LodMinClamp, LodMaxClamp float32
	// Compare specifies the comparison function for comparison samplers, used in shadow mapping and similar techniques.
	Compare wgpu.CompareFunction
	// MaxAnisotropy specifies the maximum anisotropy level for anisotropic filtering, which can improve texture quality at oblique viewing angles.
	MaxAnisotropy uint16
}
