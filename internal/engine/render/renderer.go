package render

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshgrad/internal/engine/shader"
	"github.com/Faultbox/meshgrad/internal/logger"
	"github.com/Faultbox/meshgrad/pkg/mesh"
)

const vertexShaderSource = `#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;

out vec4 vColor;

void main() {
    // Mesh space is [0,1] with y down; clip space is [-1,1] with y up.
    gl_Position = vec4(aPos.x * 2.0 - 1.0, 1.0 - aPos.y * 2.0, 0.0, 1.0);
    vColor = aColor;
}
` + "\x00"

const fragmentShaderSource = `#version 410 core
in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
` + "\x00"

// Renderer draws mesh frames with OpenGL: each frame the control grid is
// refined on the CPU and streamed to the GPU as a color-interpolated
// triangle mesh.
//
// Must be created after an OpenGL context exists.
type Renderer struct {
	program    uint32
	vao        uint32
	vbo        uint32
	ebo        uint32
	resolution int
	indexCount int32

	// Scratch buffers reused across frames to avoid per-tick allocation.
	vertices []float32
	indices  []uint32
}

// NewRenderer creates the mesh renderer with the given subdivision
// resolution per control cell.
func NewRenderer(resolution int) (*Renderer, error) {
	if resolution < 1 {
		resolution = DefaultResolution
	}
	r := &Renderer{resolution: resolution}

	var err error
	r.program, err = shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Vertex layout: position (vec2) + color (vec4), tightly packed.
	stride := int32(6 * 4)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	logger.Debug("mesh renderer created",
		zap.Uint32("program", r.program),
		zap.Int("resolution", resolution),
	)
	return r, nil
}

// Draw refines the frame and renders it to the current framebuffer/viewport.
// Called exactly once per render tick.
func (r *Renderer) Draw(f mesh.Frame) {
	grid := Refine(f, r.resolution)
	r.buildBuffers(grid)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.vertices)*4, unsafe.Pointer(&r.vertices[0]), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(r.indices)*4, unsafe.Pointer(&r.indices[0]), gl.DYNAMIC_DRAW)

	gl.UseProgram(r.program)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// buildBuffers flattens the refined grid into the interleaved vertex and
// index buffers.
func (r *Renderer) buildBuffers(g Grid) {
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]

	for i, p := range g.Positions {
		c := g.Colors[i]
		r.vertices = append(r.vertices, p.X, p.Y, c.R, c.G, c.B, c.A)
	}

	for j := 0; j < g.Rows-1; j++ {
		for i := 0; i < g.Cols-1; i++ {
			i00 := uint32(j*g.Cols + i)
			i10 := i00 + 1
			i01 := i00 + uint32(g.Cols)
			i11 := i01 + 1
			r.indices = append(r.indices, i00, i10, i11, i00, i11, i01)
		}
	}
	r.indexCount = int32(len(r.indices))
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}
