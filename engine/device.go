package engine

// MeshID identifies one uploaded buffer set. The zero value is never a
// live mesh.
type MeshID uint64

// Device owns the raw GPU buffer traffic. Everything above it works with
// opaque MeshIDs, so scene lifetime can be exercised without a GL context.
type Device interface {
	// UploadPointCloud allocates a buffer set with attribute 0 as vec3
	// position and attribute 1 as vec3 normal, tightly packed.
	UploadPointCloud(positions, normals []float32) (MeshID, error)

	// UploadWireframe allocates a position buffer plus a line index buffer.
	UploadWireframe(vertices []float32, indices []uint32) (MeshID, error)

	// Release frees the buffer set. Releasing an unknown id panics, it is
	// a programmer error on the caller's side.
	Release(id MeshID)

	DrawPoints(id MeshID, count int32)
	DrawLines(id MeshID, count int32)
	SetPointSize(size float32)
}
