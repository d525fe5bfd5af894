package gpu

import (
	"fmt"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/vertexcloud/render/core"
	"github.com/gekko3d/vertexcloud/render/shaders"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraUniform matches the WGSL Camera struct.
type CameraUniform struct {
	ViewProj mgl32.Mat4
}

const cameraUniformSize = uint64(unsafe.Sizeof(CameraUniform{}))

type meshBuffer struct {
	buffer      *wgpu.Buffer
	vertexCount uint32
}

// PointRenderPass draws billboard instances recorded through its PointList.
type PointRenderPass struct {
	PointList

	Device   *wgpu.Device
	Pipeline *wgpu.RenderPipeline

	CameraBuffer    *wgpu.Buffer
	CameraBindGroup *wgpu.BindGroup

	InstanceBuffer *wgpu.Buffer
	InstanceCap    uint32

	textureLayout *wgpu.BindGroupLayout
	sampler       *wgpu.Sampler
	white         *core.Texture
	meshes        map[*core.PointMesh]meshBuffer
	textures      map[*core.Texture]*wgpu.BindGroup
}

func NewPointRenderPass(device *wgpu.Device, format wgpu.TextureFormat) (*PointRenderPass, error) {
	shaderModule, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "PointShader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.PointsWGSL},
	})
	if err != nil {
		return nil, fmt.Errorf("point shader: %w", err)
	}
	defer shaderModule.Release()

	cameraLayout, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "PointCameraBGL",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: cameraUniformSize,
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("point camera layout: %w", err)
	}

	textureLayout, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "PointSpriteBGL",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("point sprite layout: %w", err)
	}

	pipelineLayout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		BindGroupLayouts: []*wgpu.BindGroupLayout{cameraLayout, textureLayout},
	})
	if err != nil {
		return nil, fmt.Errorf("point pipeline layout: %w", err)
	}

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "PointPipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     shaderModule,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(unsafe.Sizeof(core.PointVertex{})),
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
						{Format: wgpu.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1},
					},
				},
				{
					ArrayStride: uint64(unsafe.Sizeof(PointInstance{})),
					StepMode:    wgpu.VertexStepModeInstance,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 2},
						{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 3},
						{Format: wgpu.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 4},
						{Format: wgpu.VertexFormatFloat32x4, Offset: 48, ShaderLocation: 5},
						{Format: wgpu.VertexFormatFloat32x4, Offset: 64, ShaderLocation: 6},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shaderModule,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					WriteMask: wgpu.ColorWriteMaskAll,
					Blend: &wgpu.BlendState{
						Color: wgpu.BlendComponent{
							Operation: wgpu.BlendOperationAdd,
							SrcFactor: wgpu.BlendFactorSrcAlpha,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						},
						Alpha: wgpu.BlendComponent{
							Operation: wgpu.BlendOperationAdd,
							SrcFactor: wgpu.BlendFactorOne,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						},
					},
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("point pipeline: %w", err)
	}

	cameraBuffer, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "PointCameraBuffer",
		Size:  cameraUniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("point camera buffer: %w", err)
	}

	cameraBindGroup, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "PointCameraBG",
		Layout: cameraLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: cameraBuffer, Size: cameraUniformSize},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("point camera bind group: %w", err)
	}

	sampler, err := device.CreateSampler(&wgpu.SamplerDescriptor{
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		LodMaxClamp:   1,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("point sampler: %w", err)
	}

	return &PointRenderPass{
		Device:          device,
		Pipeline:        pipeline,
		CameraBuffer:    cameraBuffer,
		CameraBindGroup: cameraBindGroup,
		textureLayout:   textureLayout,
		sampler:         sampler,
		white:           &core.Texture{Width: 1, Height: 1, Pix: []uint8{255, 255, 255, 255}},
		meshes:          make(map[*core.PointMesh]meshBuffer),
		textures:        make(map[*core.Texture]*wgpu.BindGroup),
	}, nil
}

// SetCamera writes the view-projection matrix used by the next Encode.
func (p *PointRenderPass) SetCamera(queue *wgpu.Queue, viewProj mgl32.Mat4) error {
	uniform := CameraUniform{ViewProj: viewProj}
	return queue.WriteBuffer(p.CameraBuffer, 0, unsafe.Slice((*byte)(unsafe.Pointer(&uniform)), cameraUniformSize))
}

// Upload creates GPU resources for meshes and textures seen for the first
// time and writes the frame's instances.
func (p *PointRenderPass) Upload(queue *wgpu.Queue) error {
	for _, d := range p.Draws {
		if _, err := p.meshBuffer(queue, d.Mesh); err != nil {
			return err
		}
		if _, err := p.textureBindGroup(queue, d.Texture); err != nil {
			return err
		}
	}

	if len(p.Instances) == 0 {
		return nil
	}

	instanceCount := uint32(len(p.Instances))
	instanceSize := uint64(unsafe.Sizeof(PointInstance{}))
	if p.InstanceBuffer == nil || p.InstanceCap < instanceCount {
		if p.InstanceBuffer != nil {
			p.InstanceBuffer.Release()
		}
		p.InstanceCap = instanceCount + instanceCount/4
		buffer, err := p.Device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "PointInstanceBuffer",
			Size:  uint64(p.InstanceCap) * instanceSize,
			Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			p.InstanceBuffer, p.InstanceCap = nil, 0
			return fmt.Errorf("point instance buffer: %w", err)
		}
		p.InstanceBuffer = buffer
	}

	sizeBytes := uint64(instanceCount) * instanceSize
	return queue.WriteBuffer(p.InstanceBuffer, 0, unsafe.Slice((*byte)(unsafe.Pointer(&p.Instances[0])), sizeBytes))
}

// Encode replays the recorded draws into pass. Upload must run first.
func (p *PointRenderPass) Encode(pass *wgpu.RenderPassEncoder) {
	if len(p.Draws) == 0 || p.InstanceBuffer == nil {
		return
	}

	pass.SetPipeline(p.Pipeline)
	pass.SetBindGroup(0, p.CameraBindGroup, nil)
	pass.SetVertexBuffer(1, p.InstanceBuffer, 0, p.InstanceBuffer.GetSize())

	for _, d := range p.Draws {
		mesh, ok := p.meshes[d.Mesh]
		texture := d.Texture
		if texture == nil {
			texture = p.white
		}
		bindGroup, okTex := p.textures[texture]
		if !ok || !okTex || mesh.vertexCount == 0 {
			continue
		}

		pass.SetVertexBuffer(0, mesh.buffer, 0, mesh.buffer.GetSize())
		pass.SetBindGroup(1, bindGroup, nil)
		pass.Draw(mesh.vertexCount, d.InstanceCount, 0, d.FirstInstance)
	}
}

func (p *PointRenderPass) meshBuffer(queue *wgpu.Queue, mesh *core.PointMesh) (meshBuffer, error) {
	if mb, ok := p.meshes[mesh]; ok {
		return mb, nil
	}

	mb := meshBuffer{vertexCount: mesh.VertexCount()}
	if mb.vertexCount > 0 {
		size := uint64(len(mesh.Vertices)) * uint64(unsafe.Sizeof(core.PointVertex{}))
		buffer, err := p.Device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "PointMeshBuffer " + mesh.Name,
			Size:  size,
			Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			return mb, fmt.Errorf("point mesh %s: %w", mesh.Name, err)
		}
		if err := queue.WriteBuffer(buffer, 0, unsafe.Slice((*byte)(unsafe.Pointer(&mesh.Vertices[0])), size)); err != nil {
			buffer.Release()
			return mb, fmt.Errorf("point mesh %s: %w", mesh.Name, err)
		}
		mb.buffer = buffer
	}
	p.meshes[mesh] = mb
	return mb, nil
}

func (p *PointRenderPass) textureBindGroup(queue *wgpu.Queue, texture *core.Texture) (*wgpu.BindGroup, error) {
	if texture == nil {
		texture = p.white
	}
	if bg, ok := p.textures[texture]; ok {
		return bg, nil
	}

	extent := wgpu.Extent3D{Width: texture.Width, Height: texture.Height, DepthOrArrayLayers: 1}
	gpuTexture, err := p.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "PointSprite",
		Size:          extent,
		Format:        wgpu.TextureFormatRGBA8Unorm,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension:     wgpu.TextureDimension2D,
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if err != nil {
		return nil, fmt.Errorf("point sprite texture: %w", err)
	}
	defer gpuTexture.Release()

	err = queue.WriteTexture(gpuTexture.AsImageCopy(), texture.Pix, &wgpu.TextureDataLayout{
		Offset:       0,
		BytesPerRow:  texture.Width * 4,
		RowsPerImage: texture.Height,
	}, &extent)
	if err != nil {
		return nil, fmt.Errorf("point sprite upload: %w", err)
	}

	view, err := gpuTexture.CreateView(nil)
	if err != nil {
		return nil, fmt.Errorf("point sprite view: %w", err)
	}

	bg, err := p.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "PointSpriteBG",
		Layout: p.textureLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: view},
			{Binding: 1, Sampler: p.sampler},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("point sprite bind group: %w", err)
	}
	p.textures[texture] = bg
	return bg, nil
}

func (p *PointRenderPass) Release() {
	for _, mb := range p.meshes {
		if mb.buffer != nil {
			mb.buffer.Release()
		}
	}
	for _, bg := range p.textures {
		bg.Release()
	}
	if p.InstanceBuffer != nil {
		p.InstanceBuffer.Release()
	}
	p.CameraBindGroup.Release()
	p.CameraBuffer.Release()
	p.sampler.Release()
	p.Pipeline.Release()
}
