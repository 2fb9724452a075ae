package engine

import (
	"fmt"
	"log"
)

// Scene is the full set of uploaded geometry plus its bounding volume.
// Exactly one scene is live at a time; it is read-only during the frame
// loop and replaced wholesale on load.
type Scene struct {
	clouds []*PointCloud
	bounds *BoundsMesh
}

func (s *Scene) PointClouds() []*PointCloud {
	return s.clouds
}

func (s *Scene) Bounds() Bounds {
	if s.bounds == nil {
		return Bounds{}
	}
	return s.bounds.bounds
}

func (s *Scene) VertexCount() int {
	var n int
	for _, c := range s.clouds {
		n += c.VertexCount()
	}
	return n
}

func (s *Scene) dispose(dev Device) {
	for _, c := range s.clouds {
		c.Dispose(dev)
	}
	s.clouds = nil

	if s.bounds != nil {
		s.bounds.Dispose(dev)
		s.bounds = nil
	}
}

// Store orchestrates scene loading and owns the lifetime of the current
// scene's GPU buffers.
type Store struct {
	dev           Device
	current       *Scene
	includeOrigin bool
}

func NewStore(dev Device, includeOrigin bool) *Store {
	return &Store{
		dev:           dev,
		includeOrigin: includeOrigin,
	}
}

func (st *Store) Current() *Scene {
	return st.current
}

// Load builds a new scene without touching the current one, so a failed
// load leaves the previous scene fully intact. Zero-vertex shapes are
// skipped; a malformed shape aborts the load and releases everything
// uploaded so far.
func (st *Store) Load(shapes []Shape) (*Scene, error) {
	if len(shapes) == 0 {
		return nil, ErrNoShapes
	}

	scene := &Scene{}

	for i, s := range shapes {
		if err := s.Validate(); err != nil {
			scene.dispose(st.dev)
			return nil, fmt.Errorf("shape %v: %w", i, err)
		}

		if s.VertexCount() == 0 {
			log.Printf("skipping empty shape %v %q", i, s.Name)
			continue
		}

		cloud, err := UploadPointCloud(st.dev, s)
		if err != nil {
			scene.dispose(st.dev)
			return nil, fmt.Errorf("shape %v: %w", i, err)
		}

		scene.clouds = append(scene.clouds, cloud)
	}

	// a scene with zero total vertices renders empty with degenerate
	// bounds, it is not an error
	bounds := ComputeBounds(shapes, st.includeOrigin)

	bm, err := NewBoundsMesh(st.dev, bounds)
	if err != nil {
		scene.dispose(st.dev)
		return nil, fmt.Errorf("bounds: %v", err)
	}
	scene.bounds = bm

	return scene, nil
}

// Replace disposes every buffer of the current scene, then publishes the
// new one. Must be called at a frame boundary; afterwards no previously
// issued handle of the old scene is valid.
func (st *Store) Replace(scene *Scene) {
	if st.current != nil {
		st.current.dispose(st.dev)
	}
	st.current = scene
}

// Dispose releases the current scene. Called once before process exit.
func (st *Store) Dispose() {
	if st.current != nil {
		st.current.dispose(st.dev)
		st.current = nil
	}
}
