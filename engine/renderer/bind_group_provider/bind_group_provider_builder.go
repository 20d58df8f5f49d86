package bind_group_provider

import "github.com/cogentcore/webgpu/wgpu"

// BindGroupProviderOption is a functional option used to configure a BindGroupProvider during construction.
type BindGroupProviderOption func(*bindGroupProvider)

// WithBindGroup seeds the provider with an existing bind group. Most callers
// let the renderer create the bind group via InitBindGroup instead.
//
// Parameters:
//   - bg: the bind group to store on the provider
//
// Returns:
//   - BindGroupProviderOption: a function that sets the bind group on the provider
func WithBindGroup(bg *wgpu.BindGroup) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.bindGroup = bg
	}
}

// WithBindGroupLayout seeds the provider with an existing bind group layout.
//
// Parameters:
//   - bgl: the bind group layout to store on the provider
//
// Returns:
//   - BindGroupProviderOption: a function that sets the bind group layout on the provider
func WithBindGroupLayout(bgl *wgpu.BindGroupLayout) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.bindGroupLayout = bgl
	}
}

// WithBuffer stores an existing buffer at the given binding index, e.g. a
// pre-created uniform buffer shared between providers.
//
// Parameters:
//   - binding: the binding index for the buffer
//   - buf: the buffer to store at that binding
//
// Returns:
//   - BindGroupProviderOption: a function that sets the buffer on the provider
func WithBuffer(binding int, buf *wgpu.Buffer) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.buffers[binding] = buf
	}
}

// WithBuffers replaces the provider's buffer map wholesale.
//
// Parameters:
//   - buffers: buffers keyed by binding index
//
// Returns:
//   - BindGroupProviderOption: a function that sets the buffer map on the provider
func WithBuffers(buffers map[int]*wgpu.Buffer) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.buffers = buffers
	}
}
