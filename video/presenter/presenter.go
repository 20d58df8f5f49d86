// Package presenter renders decoded NV12 video frames to a window surface.
//
// A Presenter owns the GPU resources for one video layer: the luma and chroma
// plane textures, the shared bilinear sampler, the placement rect uniform, and
// the render pipeline that blits the planes to the surface with YUV to RGB
// conversion in the fragment stage. Frames are pulled from a video.Feed, so
// decoders can push at their own rate while the presenter uploads at most one
// frame per rendered frame.
package presenter

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/jackpot51/video-player/common"
	"github.com/jackpot51/video-player/engine/renderer"
	"github.com/jackpot51/video-player/engine/renderer/bind_group_provider"
	"github.com/jackpot51/video-player/engine/renderer/pipeline"
	"github.com/jackpot51/video-player/engine/renderer/shader"
	"github.com/jackpot51/video-player/video"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/plane_vert.wgsl
var planeVertexSource string

//go:embed assets/plane_frag.wgsl
var planeFragmentSource string

// planePipelineKey is the cache key for the shared plane blit render pipeline.
// All presenters on the same renderer share one pipeline.
const planePipelineKey = "video_plane"

// presenter is the implementation of the Presenter interface.
type presenter struct {
	mu sync.Mutex

	r    renderer.Renderer
	feed video.Feed

	provider bind_group_provider.BindGroupProvider

	vertexShader   shader.Shader
	fragmentShader shader.Shader

	// groupLayout is the merged group-0 bind group layout descriptor covering
	// both shader stages. Used to (re)build the provider's bind group.
	groupLayout wgpu.BindGroupLayoutDescriptor

	// Binding indices resolved from the shader provider declarations.
	lumaBinding    int
	chromaBinding  int
	samplerBinding int
	rectBinding    int

	// planeWidth/planeHeight track the dimensions of the currently allocated
	// plane textures. Zero until the first frame arrives.
	planeWidth  int
	planeHeight int

	sampler        common.SamplerStagingData
	samplerCreated bool

	rect      video.Rect
	rectDirty bool

	active bool
}

// Presenter is a renderable video layer. It satisfies the engine's View
// interface so it can be registered directly with an Engine.
type Presenter interface {
	// Active reports whether this presenter is uploaded and drawn each frame.
	//
	// Returns:
	//   - bool: true if the presenter participates in the frame
	Active() bool

	// SetActive enables or disables this presenter.
	//
	// Parameters:
	//   - active: true to draw this presenter each frame
	SetActive(active bool)

	// Renderer returns the Renderer this presenter draws with.
	//
	// Returns:
	//   - renderer.Renderer: the renderer instance
	Renderer() renderer.Renderer

	// Feed returns the frame source this presenter pulls from, or nil if none is set.
	//
	// Returns:
	//   - video.Feed: the current feed
	Feed() video.Feed

	// SetFeed replaces the frame source this presenter pulls from.
	//
	// Parameters:
	//   - f: the feed to pull frames from
	SetFeed(f video.Feed)

	// SetRect updates the placement rectangle uniform. The new value is staged
	// and written to the GPU on the next Upload.
	//
	// Parameters:
	//   - r: the placement rectangle in normalized coordinates
	SetRect(r video.Rect)

	// Upload takes the latest frame from the feed and pushes its planes to the
	// GPU. Plane textures and the bind group are (re)allocated when the frame
	// dimensions change. Called by the engine before the render pass begins.
	Upload()

	// Draw encodes the plane blit draw call within the current render pass.
	// A no-op until the first frame has been uploaded.
	//
	// Returns:
	//   - error: an error if the draw could not be encoded
	Draw() error

	// Release releases all GPU resources held by this presenter.
	Release()
}

var _ Presenter = &presenter{}

// NewPresenter creates a Presenter drawing into the given renderer. The plane
// blit shaders are compiled and the shared render pipeline registered during
// construction. Panics if the pipeline cannot be created, since a presenter
// without a pipeline can never draw.
//
// Parameters:
//   - r: the renderer to draw with
//   - options: functional options to configure the presenter
//
// Returns:
//   - Presenter: the configured presenter
func NewPresenter(r renderer.Renderer, options ...PresenterOption) Presenter {
	p := &presenter{
		r:      r,
		rect:   video.Rect{X0: 0, Y0: 0, X1: 1, Y1: 1},
		active: true,
	}

	p.vertexShader = shader.NewShaderFromSource(planePipelineKey+"_vert", shader.ShaderTypeVertex, planeVertexSource)
	p.fragmentShader = shader.NewShaderFromSource(planePipelineKey+"_frag", shader.ShaderTypeFragment, planeFragmentSource)
	p.resolveBindings()

	merged := shader.MergeBindGroupLayouts(
		p.vertexShader.BindGroupLayoutDescriptors(),
		p.fragmentShader.BindGroupLayoutDescriptors(),
	)
	p.groupLayout = merged[0]

	for _, opt := range options {
		opt(p)
	}

	blit := pipeline.NewPipeline(planePipelineKey,
		pipeline.WithVertexShader(p.vertexShader),
		pipeline.WithFragmentShader(p.fragmentShader),
	)
	if err := r.RegisterPipelines(blit); err != nil {
		panic(fmt.Sprintf("presenter: failed to register plane pipeline: %v", err))
	}

	p.provider = bind_group_provider.NewBindGroupProvider("Video Plane")

	return p
}

// resolveBindings extracts the binding indices for the plane textures, sampler,
// and rect uniform from the shader annotation declarations. Falls back to the
// conventional 0-3 layout if a declaration is missing.
func (p *presenter) resolveBindings() {
	p.lumaBinding, p.chromaBinding, p.samplerBinding, p.rectBinding = 0, 1, 2, 3

	for _, d := range p.fragmentShader.Declarations() {
		if d.Type != shader.AnnotationTypeProvider || len(d.Args) < 2 || d.Args[0] != shader.AnnotationArgVideoPlane {
			continue
		}
		switch d.Args[1] {
		case shader.AnnotationArgLumaTexture:
			p.lumaBinding = *d.Binding
		case shader.AnnotationArgChromaTexture:
			p.chromaBinding = *d.Binding
		case shader.AnnotationArgPlaneSampler:
			p.samplerBinding = *d.Binding
		}
	}

	for _, d := range p.vertexShader.Declarations() {
		if d.Type == shader.AnnotationTypeBindingGroup && d.Args[2] == shader.AnnotationArgRect {
			p.rectBinding = *d.Binding
		}
	}
}

func (p *presenter) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

func (p *presenter) SetActive(active bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active = active
}

func (p *presenter) Renderer() renderer.Renderer {
	return p.r
}

func (p *presenter) Feed() video.Feed {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.feed
}

func (p *presenter) SetFeed(f video.Feed) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.feed = f
}

func (p *presenter) SetRect(r video.Rect) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rect = r
	p.rectDirty = true
}

func (p *presenter) Upload() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.feed == nil {
		return
	}

	f, fresh := p.feed.Take()
	if f == nil {
		return
	}

	created, err := p.ensureResources(f)
	if err != nil {
		return
	}

	if fresh {
		if !created {
			// Resources already sized for this frame; per-frame upload path.
			_ = p.r.WritePlaneTexture(p.provider, p.lumaBinding, lumaStaging(f))
			_ = p.r.WritePlaneTexture(p.provider, p.chromaBinding, chromaStaging(f))
		}
		video.CountFrameUploaded()
	}

	if p.rectDirty {
		uniform := video.NewGPURectUniform(p.rect)
		p.r.WriteBuffers([]bind_group_provider.BufferWrite{
			{Provider: p.provider, Binding: p.rectBinding, Offset: 0, Data: uniform.Marshal()},
		})
		p.rectDirty = false
	}
}

// ensureResources (re)allocates the plane textures and bind group when the
// incoming frame dimensions differ from the current allocation. The initial
// pixels are uploaded as part of texture creation. Returns true if resources
// were (re)created for this frame.
func (p *presenter) ensureResources(f *video.Frame) (bool, error) {
	if f.Width == p.planeWidth && f.Height == p.planeHeight {
		return false, nil
	}

	if err := p.r.InitPlaneTexture(p.provider, p.lumaBinding, lumaStaging(f)); err != nil {
		return false, err
	}
	if err := p.r.InitPlaneTexture(p.provider, p.chromaBinding, chromaStaging(f)); err != nil {
		return false, err
	}

	if !p.samplerCreated {
		if err := p.r.InitSampler(p.provider, p.samplerBinding, p.sampler); err != nil {
			return false, err
		}
		p.samplerCreated = true
	}

	// The bind group references the old texture views, so it must be rebuilt
	// whenever the plane textures are replaced.
	if bg := p.provider.BindGroup(); bg != nil {
		bg.Release()
		p.provider.SetBindGroup(nil)
	}
	if err := p.r.InitBindGroup(p.provider, p.groupLayout, nil, nil); err != nil {
		return false, err
	}

	p.planeWidth = f.Width
	p.planeHeight = f.Height
	p.rectDirty = true

	return true, nil
}

func (p *presenter) Draw() error {
	p.mu.Lock()
	ready := p.provider.BindGroup() != nil
	p.mu.Unlock()

	if !ready {
		return nil
	}
	return p.r.Draw(planePipelineKey, video.PlaneVertexCount, 1, []bind_group_provider.BindGroupProvider{p.provider})
}

func (p *presenter) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.provider.Release()
	p.planeWidth = 0
	p.planeHeight = 0
	p.samplerCreated = false
}

// lumaStaging wraps a frame's full-resolution luma plane as texture staging data.
func lumaStaging(f *video.Frame) common.PlaneStagingData {
	return common.PlaneStagingData{
		Pixels: f.Y,
		Width:  uint32(f.Width),
		Height: uint32(f.Height),
		Stride: uint32(f.YStride),
		Format: common.PlaneFormatLuma,
	}
}

// chromaStaging wraps a frame's half-resolution interleaved chroma plane as texture staging data.
func chromaStaging(f *video.Frame) common.PlaneStagingData {
	return common.PlaneStagingData{
		Pixels: f.UV,
		Width:  uint32(f.ChromaWidth()),
		Height: uint32(f.ChromaHeight()),
		Stride: uint32(f.UVStride),
		Format: common.PlaneFormatChroma,
	}
}
