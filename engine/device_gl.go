package engine

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type glMesh struct {
	vao     uint32
	buffers []uint32
}

// GLDevice uploads into OpenGL buffer objects. It must only be used from
// the thread holding the GL context.
type GLDevice struct {
	meshes map[MeshID]glMesh
	nextID MeshID
}

func NewGLDevice() *GLDevice {
	return &GLDevice{
		meshes: make(map[MeshID]glMesh),
		nextID: 1,
	}
}

func (d *GLDevice) UploadPointCloud(positions, normals []float32) (MeshID, error) {
	if len(positions) == 0 {
		return 0, fmt.Errorf("upload of empty point cloud")
	}
	if len(positions) != len(normals) {
		return 0, fmt.Errorf("upload with %v position floats but %v normal floats", len(positions), len(normals))
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var posVBO uint32
	gl.GenBuffers(1, &posVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, posVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(0)

	var norVBO uint32
	gl.GenBuffers(1, &norVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, norVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(normals)*4, gl.Ptr(normals), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return d.track(glMesh{vao: vao, buffers: []uint32{posVBO, norVBO}}), nil
}

func (d *GLDevice) UploadWireframe(vertices []float32, indices []uint32) (MeshID, error) {
	if len(vertices) == 0 || len(indices) == 0 {
		return 0, fmt.Errorf("upload of empty wireframe")
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(0)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	return d.track(glMesh{vao: vao, buffers: []uint32{vbo, ebo}}), nil
}

func (d *GLDevice) track(m glMesh) MeshID {
	id := d.nextID
	d.nextID++
	d.meshes[id] = m
	return id
}

func (d *GLDevice) Release(id MeshID) {
	m, ok := d.meshes[id]
	if !ok {
		panic(fmt.Sprintf("release of unknown mesh %v", id))
	}
	delete(d.meshes, id)

	for _, b := range m.buffers {
		gl.DeleteBuffers(1, &b)
	}
	gl.DeleteVertexArrays(1, &m.vao)
}

func (d *GLDevice) DrawPoints(id MeshID, count int32) {
	m, ok := d.meshes[id]
	if !ok {
		panic(fmt.Sprintf("draw of unknown mesh %v", id))
	}

	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.POINTS, 0, count)
	gl.BindVertexArray(0)
}

func (d *GLDevice) DrawLines(id MeshID, count int32) {
	m, ok := d.meshes[id]
	if !ok {
		panic(fmt.Sprintf("draw of unknown mesh %v", id))
	}

	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.LINES, count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (d *GLDevice) SetPointSize(size float32) {
	gl.PointSize(size)
}
