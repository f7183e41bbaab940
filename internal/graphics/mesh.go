package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh owns one vao/vbo/ibo triple of static, indexed geometry.
type Mesh struct {
	vao, vbo, ibo uint32
	indexCount    int32
}

// NewMesh uploads interleaved float32 vertex data and uint32 indices.
// attribSizes gives the float count of each consecutive vertex attribute,
// e.g. 3,3 for position+normal or just 3 for position only. Empty geometry
// is legal; Draw becomes a no-op for it.
func NewMesh(vertices []float32, indices []uint32, attribSizes ...int32) *Mesh {
	m := &Mesh{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 4*len(vertices), gl.Ptr(vertices), gl.STATIC_DRAW)
	}

	var stride int32
	for _, s := range attribSizes {
		stride += s
	}
	var offset int32
	for i, s := range attribSizes {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointer(uint32(i), s, gl.FLOAT, false, 4*stride, gl.PtrOffset(int(4*offset)))
		offset += s
	}

	gl.GenBuffers(1, &m.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
	if len(indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 4*len(indices), gl.Ptr(indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	return m
}

// Draw issues an indexed triangle draw; zero-primitive meshes draw nothing.
func (m *Mesh) Draw() {
	if m.indexCount == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

// Delete releases the GL objects.
func (m *Mesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ibo != 0 {
		gl.DeleteBuffers(1, &m.ibo)
		m.ibo = 0
	}
	m.indexCount = 0
}
