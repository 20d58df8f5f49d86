package shader

import (
	"strings"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

const planeVertexTestSource = `
// @oxy:include rect
// @oxy:group 0 3 storage_uniform bounds rect

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
}

@vertex
fn vs_main(@builtin(vertex_index) idx: u32) -> VertexOutput {
    var uv = vec2<f32>(0.0, 0.0);
    if (idx == 1u) {
        uv.x = 2.0;
    }
    if (idx == 2u) {
        uv.y = 2.0;
    }
    var out: VertexOutput;
    out.position = vec4<f32>(uv * vec2<f32>(2.0, -2.0) + vec2<f32>(-1.0, 1.0), 1.0, 1.0);
    out.uv = uv;
    return out;
}
`

const planeFragmentTestSource = `
// @oxy:provider 0 0 video_plane luma_texture
@group(0) @binding(0) var luma_tex: texture_2d<f32>;
// @oxy:provider 0 1 video_plane chroma_texture
@group(0) @binding(1) var chroma_tex: texture_2d<f32>;
// @oxy:provider 0 2 video_plane plane_sampler
@group(0) @binding(2) var plane_sampler: sampler;

@fragment
fn fs_main(@location(0) uv: vec2<f32>) -> @location(0) vec4<f32> {
    let y = textureSample(luma_tex, plane_sampler, uv).r;
    let c = textureSample(chroma_tex, plane_sampler, uv).rg;
    return vec4<f32>(y, c.r, c.g, 1.0);
}
`

func TestVertexShaderParsesRectUniform(t *testing.T) {
	s := NewShaderFromSource("test_vert", ShaderTypeVertex, planeVertexTestSource)

	if got := s.EntryPoint(); got != "vs_main" {
		t.Fatalf("EntryPoint() = %q, want %q", got, "vs_main")
	}

	// The include annotation injects the PlaneRect struct definition and the
	// group annotation generates the uniform declaration.
	if !strings.Contains(s.Source(), "struct PlaneRect") {
		t.Error("processed source missing injected PlaneRect struct")
	}
	if !strings.Contains(s.Source(), "@group(0) @binding(3) var<uniform> bounds: PlaneRect;") {
		t.Error("processed source missing generated uniform declaration")
	}

	desc, ok := s.BindGroupLayoutDescriptors()[0]
	if !ok {
		t.Fatal("no layout descriptor for group 0")
	}
	if len(desc.Entries) != 1 {
		t.Fatalf("group 0 has %d entries, want 1", len(desc.Entries))
	}
	entry := desc.Entries[0]
	if entry.Binding != 3 {
		t.Errorf("uniform binding = %d, want 3", entry.Binding)
	}
	if entry.Visibility != wgpu.ShaderStageVertex {
		t.Errorf("uniform visibility = %v, want vertex", entry.Visibility)
	}
	if entry.Buffer.Type != wgpu.BufferBindingTypeUniform {
		t.Errorf("buffer type = %v, want uniform", entry.Buffer.Type)
	}
	// PlaneRect is two vec2<f32> fields.
	if entry.Buffer.MinBindingSize != 16 {
		t.Errorf("MinBindingSize = %d, want 16", entry.Buffer.MinBindingSize)
	}

	if name := s.BindGroupVarName(0, 3); name != "bounds" {
		t.Errorf("BindGroupVarName(0, 3) = %q, want %q", name, "bounds")
	}
}

func TestFragmentShaderParsesPlaneBindings(t *testing.T) {
	s := NewShaderFromSource("test_frag", ShaderTypeFragment, planeFragmentTestSource)

	if got := s.EntryPoint(); got != "fs_main" {
		t.Fatalf("EntryPoint() = %q, want %q", got, "fs_main")
	}

	desc, ok := s.BindGroupLayoutDescriptors()[0]
	if !ok {
		t.Fatal("no layout descriptor for group 0")
	}
	if len(desc.Entries) != 3 {
		t.Fatalf("group 0 has %d entries, want 3", len(desc.Entries))
	}

	for i, binding := range []uint32{0, 1} {
		entry := desc.Entries[i]
		if entry.Binding != binding {
			t.Errorf("entry %d binding = %d, want %d", i, entry.Binding, binding)
		}
		if entry.Texture.SampleType != wgpu.TextureSampleTypeFloat {
			t.Errorf("binding %d sample type = %v, want float", binding, entry.Texture.SampleType)
		}
		if entry.Texture.ViewDimension != wgpu.TextureViewDimension2D {
			t.Errorf("binding %d view dimension = %v, want 2D", binding, entry.Texture.ViewDimension)
		}
		if entry.Visibility != wgpu.ShaderStageFragment {
			t.Errorf("binding %d visibility = %v, want fragment", binding, entry.Visibility)
		}
	}

	samplerEntry := desc.Entries[2]
	if samplerEntry.Binding != 2 {
		t.Errorf("sampler binding = %d, want 2", samplerEntry.Binding)
	}
	if samplerEntry.Sampler.Type != wgpu.SamplerBindingTypeFiltering {
		t.Errorf("sampler type = %v, want filtering", samplerEntry.Sampler.Type)
	}
}

func TestFragmentShaderDeclarationsCarryBindingRoles(t *testing.T) {
	s := NewShaderFromSource("test_frag", ShaderTypeFragment, planeFragmentTestSource)

	roles := make(map[AnnotationArg]int)
	for _, d := range s.Declarations() {
		if d.Type != AnnotationTypeProvider {
			t.Fatalf("unexpected declaration type %q", d.Type)
		}
		if d.Args[0] != AnnotationArgVideoPlane {
			t.Fatalf("provider identity = %q, want %q", d.Args[0], AnnotationArgVideoPlane)
		}
		if len(d.Args) != 2 {
			t.Fatalf("provider declaration has %d args, want 2", len(d.Args))
		}
		roles[d.Args[1]] = *d.Binding
	}

	want := map[AnnotationArg]int{
		AnnotationArgLumaTexture:   0,
		AnnotationArgChromaTexture: 1,
		AnnotationArgPlaneSampler:  2,
	}
	for role, binding := range want {
		got, ok := roles[role]
		if !ok {
			t.Errorf("missing declaration for role %q", role)
			continue
		}
		if got != binding {
			t.Errorf("role %q binding = %d, want %d", role, got, binding)
		}
	}
}

func TestMergeBindGroupLayoutsUnionsStages(t *testing.T) {
	vert := NewShaderFromSource("test_vert", ShaderTypeVertex, planeVertexTestSource)
	frag := NewShaderFromSource("test_frag", ShaderTypeFragment, planeFragmentTestSource)

	merged := MergeBindGroupLayouts(vert.BindGroupLayoutDescriptors(), frag.BindGroupLayoutDescriptors())

	desc, ok := merged[0]
	if !ok {
		t.Fatal("no merged descriptor for group 0")
	}
	if len(desc.Entries) != 4 {
		t.Fatalf("merged group 0 has %d entries, want 4", len(desc.Entries))
	}

	// Entries must be sorted by binding index.
	for i, entry := range desc.Entries {
		if entry.Binding != uint32(i) {
			t.Errorf("entry %d binding = %d, want %d", i, entry.Binding, i)
		}
	}

	if vis := desc.Entries[3].Visibility; vis != wgpu.ShaderStageVertex {
		t.Errorf("uniform visibility after merge = %v, want vertex", vis)
	}
	if vis := desc.Entries[0].Visibility; vis != wgpu.ShaderStageFragment {
		t.Errorf("luma texture visibility after merge = %v, want fragment", vis)
	}
}

func TestMergeBindGroupLayoutsORsSharedBinding(t *testing.T) {
	a := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {Entries: []wgpu.BindGroupLayoutEntry{
			{Binding: 0, Visibility: wgpu.ShaderStageVertex, Buffer: wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform}},
		}},
	}
	b := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {Entries: []wgpu.BindGroupLayoutEntry{
			{Binding: 0, Visibility: wgpu.ShaderStageFragment, Buffer: wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform}},
		}},
	}

	merged := MergeBindGroupLayouts(a, b)
	entries := merged[0].Entries
	if len(entries) != 1 {
		t.Fatalf("merged group 0 has %d entries, want 1", len(entries))
	}
	want := wgpu.ShaderStageVertex | wgpu.ShaderStageFragment
	if entries[0].Visibility != want {
		t.Errorf("visibility = %v, want %v", entries[0].Visibility, want)
	}
}

func TestPreProcessorRejectsMalformedAnnotations(t *testing.T) {
	cases := []struct {
		name   string
		source string
	}{
		{"unknown type", "// @oxy:frobnicate rect"},
		{"unknown struct", "// @oxy:include widget"},
		{"group wrong arity", "// @oxy:group 0 3 storage_uniform bounds"},
		{"bad group index", "// @oxy:group x 3 storage_uniform bounds rect"},
		{"unknown address space", "// @oxy:group 0 3 storage_banana bounds rect"},
		{"unknown provider", "// @oxy:provider 0 0 audio_plane"},
		{"unknown binding role", "// @oxy:provider 0 0 video_plane depth_texture"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pp := NewPreProcessor()
			if _, err := pp.Process(tc.source); err == nil {
				t.Errorf("Process(%q) succeeded, want error", tc.source)
			}
		})
	}
}

func TestPreProcessorPassesPlainSourceThrough(t *testing.T) {
	pp := NewPreProcessor()
	src := "@vertex\nfn vs_main() -> @builtin(position) vec4<f32> {\n    return vec4<f32>(0.0);\n}"
	out, err := pp.Process(src)
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}
	if out != src {
		t.Errorf("Process() altered annotation-free source")
	}
}
