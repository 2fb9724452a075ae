package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func pointShape(points ...[3]float32) Shape {
	s := Shape{}
	for _, p := range points {
		s.Positions = append(s.Positions, p[0], p[1], p[2])
		s.Normals = append(s.Normals, 0, 1, 0)
	}
	return s
}

func TestComputeBounds_OriginSeed(t *testing.T) {
	// with the origin seeded, a scene entirely in the positive octant
	// still reaches back to (0,0,0)
	tests := []struct {
		Shapes   []Shape
		Min, Max mgl32.Vec3
	}{
		{
			[]Shape{pointShape([3]float32{2, 3, 4})},
			mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 3, 4},
		},
		{
			[]Shape{pointShape([3]float32{-1, -2, -3})},
			mgl32.Vec3{-1, -2, -3}, mgl32.Vec3{0, 0, 0},
		},
		{
			[]Shape{pointShape([3]float32{-1, 0, 0}), pointShape([3]float32{0, 1, 0}, [3]float32{1, 0, -1})},
			mgl32.Vec3{-1, 0, -1}, mgl32.Vec3{1, 1, 0},
		},
	}

	for _, c := range tests {
		b := ComputeBounds(c.Shapes, true)
		if b.Min != c.Min || b.Max != c.Max {
			t.Errorf("ComputeBounds(%v, true) != {%v %v} (got {%v %v})", c.Shapes, c.Min, c.Max, b.Min, b.Max)
		}
	}
}

func TestComputeBounds_Tight(t *testing.T) {
	b := ComputeBounds([]Shape{pointShape([3]float32{2, 3, 4}, [3]float32{5, 6, 7})}, false)

	want := Bounds{Min: mgl32.Vec3{2, 3, 4}, Max: mgl32.Vec3{5, 6, 7}}
	if b != want {
		t.Errorf("ComputeBounds(offset scene, false) != %v (got %v)", want, b)
	}
}

func TestComputeBounds_Degenerate(t *testing.T) {
	// no vertices collapses to the origin point, never an error
	for _, includeOrigin := range []bool{true, false} {
		b := ComputeBounds(nil, includeOrigin)
		if b.Min != (mgl32.Vec3{}) || b.Max != (mgl32.Vec3{}) {
			t.Errorf("ComputeBounds(nil, %v) != origin point (got {%v %v})", includeOrigin, b.Min, b.Max)
		}

		b = ComputeBounds([]Shape{{}}, includeOrigin)
		if b.Min != (mgl32.Vec3{}) || b.Max != (mgl32.Vec3{}) {
			t.Errorf("ComputeBounds(empty shape, %v) != origin point (got {%v %v})", includeOrigin, b.Min, b.Max)
		}
	}
}

func TestBounds_Invariant(t *testing.T) {
	b := ComputeBounds([]Shape{pointShape([3]float32{5, -2, 1}, [3]float32{-3, 7, 0})}, true)

	for i := 0; i < 3; i++ {
		if b.Min[i] > b.Max[i] {
			t.Errorf("Bounds min[%v] %v > max[%v] %v", i, b.Min[i], i, b.Max[i])
		}
	}
}

func TestBoxEdges(t *testing.T) {
	if len(boxEdges) != 24 {
		t.Fatalf("len(boxEdges) != 24 (got %v)", len(boxEdges))
	}

	b := Bounds{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 1, 1}}
	corners := b.Corners()

	seen := map[[2]uint32]bool{}
	degree := map[uint32]int{}

	for i := 0; i < len(boxEdges); i += 2 {
		a, c := boxEdges[i], boxEdges[i+1]
		if a >= 8 || c >= 8 {
			t.Fatalf("edge (%v,%v) indexes outside the 8 corners", a, c)
		}

		// every edge of a box changes exactly one coordinate, a face or
		// space diagonal changes more
		var changed int
		for axis := 0; axis < 3; axis++ {
			if corners[a][axis] != corners[c][axis] {
				changed++
			}
		}
		if changed != 1 {
			t.Errorf("edge (%v,%v) is a diagonal, %v axes differ", a, c, changed)
		}

		key := [2]uint32{min(a, c), max(a, c)}
		if seen[key] {
			t.Errorf("edge (%v,%v) duplicated", a, c)
		}
		seen[key] = true

		degree[a]++
		degree[c]++
	}

	if len(seen) != 12 {
		t.Errorf("boxEdges enumerates %v distinct edges, want 12", len(seen))
	}

	for corner, d := range degree {
		if d != 3 {
			t.Errorf("corner %v has degree %v, want 3", corner, d)
		}
	}
}

func TestBoundsMesh_Lifecycle(t *testing.T) {
	dev := newFakeDevice()

	bm, err := NewBoundsMesh(dev, Bounds{Max: mgl32.Vec3{1, 2, 3}})
	if err != nil {
		t.Fatal(err)
	}

	bm.Draw(dev)
	if len(dev.lineDraws) != 1 {
		t.Errorf("Draw() submitted %v line draws, want 1", len(dev.lineDraws))
	}

	bm.Dispose(dev)
	if len(dev.live) != 0 {
		t.Errorf("Dispose() left %v live buffers", len(dev.live))
	}
}
