package engine

import "fmt"

// PointCloud is one GPU-resident mesh of positions and normals. Buffers
// are immutable after upload; the vertex count never changes.
type PointCloud struct {
	name     string
	mesh     MeshID
	count    int32
	disposed bool
}

// UploadPointCloud validates the shape and allocates its buffer set.
// Shapes with no vertices or mismatching streams are rejected, never
// truncated.
func UploadPointCloud(dev Device, s Shape) (*PointCloud, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if len(s.Positions) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyShape, s.Name)
	}

	mesh, err := dev.UploadPointCloud(s.Positions, s.Normals)
	if err != nil {
		return nil, fmt.Errorf("upload %q: %v", s.Name, err)
	}

	return &PointCloud{
		name:  s.Name,
		mesh:  mesh,
		count: int32(s.VertexCount()),
	}, nil
}

func (p *PointCloud) VertexCount() int {
	return int(p.count)
}

func (p *PointCloud) Draw(dev Device) {
	dev.DrawPoints(p.mesh, p.count)
}

// Dispose releases the GPU storage. Calling it twice is a programmer
// error.
func (p *PointCloud) Dispose(dev Device) {
	if p.disposed {
		panic("point cloud disposed twice: " + p.name)
	}
	p.disposed = true

	dev.Release(p.mesh)
}
