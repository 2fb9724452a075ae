package engine

import (
	m "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Bounds is the axis-aligned bounding box of a scene.
type Bounds struct {
	Min, Max mgl32.Vec3
}

// boxEdges enumerates the 12 edges of a box as indices into Corners().
// No face diagonals.
var boxEdges = [24]uint32{
	0, 1, 1, 2, 2, 3, 3, 0, // bottom
	4, 5, 5, 6, 6, 7, 7, 4, // top
	0, 4, 1, 5, 2, 6, 3, 7, // verticals
}

// ComputeBounds folds every vertex of every shape into a running
// component-wise min/max. With includeOrigin the origin is seeded into
// the running bounds: a scene entirely offset from the origin still
// produces bounds containing the origin.
// Without it the bounds fit the data exactly and collapse to the origin
// point only when there are no vertices.
func ComputeBounds(shapes []Shape, includeOrigin bool) Bounds {
	b := Bounds{
		Min: mgl32.Vec3{float32(m.Inf(1)), float32(m.Inf(1)), float32(m.Inf(1))},
		Max: mgl32.Vec3{float32(m.Inf(-1)), float32(m.Inf(-1)), float32(m.Inf(-1))},
	}

	if includeOrigin {
		b = Bounds{}
	}

	var total int
	for _, s := range shapes {
		for i := 0; i+2 < len(s.Positions); i += 3 {
			b.addPoint(s.Positions[i], s.Positions[i+1], s.Positions[i+2])
			total++
		}
	}

	if total == 0 && !includeOrigin {
		return Bounds{}
	}

	return b
}

func (b *Bounds) addPoint(x, y, z float32) {
	b.Min[0], b.Max[0] = min(b.Min[0], x), max(b.Max[0], x)
	b.Min[1], b.Max[1] = min(b.Min[1], y), max(b.Max[1], y)
	b.Min[2], b.Max[2] = min(b.Min[2], z), max(b.Max[2], z)
}

func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Corners returns the 8 box corners, bottom face first, each face wound
// consistently with boxEdges.
func (b Bounds) Corners() [8]mgl32.Vec3 {
	return [8]mgl32.Vec3{
		{b.Min[0], b.Min[1], b.Min[2]},
		{b.Max[0], b.Min[1], b.Min[2]},
		{b.Max[0], b.Min[1], b.Max[2]},
		{b.Min[0], b.Min[1], b.Max[2]},
		{b.Min[0], b.Max[1], b.Min[2]},
		{b.Max[0], b.Max[1], b.Min[2]},
		{b.Max[0], b.Max[1], b.Max[2]},
		{b.Min[0], b.Max[1], b.Max[2]},
	}
}

// BoundsMesh owns the wireframe edge representation of a Bounds on the
// GPU.
type BoundsMesh struct {
	bounds   Bounds
	mesh     MeshID
	disposed bool
}

func NewBoundsMesh(dev Device, b Bounds) (*BoundsMesh, error) {
	vertices := make([]float32, 0, 8*3)
	for _, c := range b.Corners() {
		vertices = append(vertices, c[0], c[1], c[2])
	}

	mesh, err := dev.UploadWireframe(vertices, boxEdges[:])
	if err != nil {
		return nil, err
	}

	return &BoundsMesh{bounds: b, mesh: mesh}, nil
}

func (bm *BoundsMesh) Bounds() Bounds {
	return bm.bounds
}

func (bm *BoundsMesh) Draw(dev Device) {
	dev.DrawLines(bm.mesh, int32(len(boxEdges)))
}

func (bm *BoundsMesh) Dispose(dev Device) {
	if bm.disposed {
		panic("bounds mesh disposed twice")
	}
	bm.disposed = true

	dev.Release(bm.mesh)
}
