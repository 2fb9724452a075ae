package engine

import (
	"errors"
	"fmt"
)

var (
	ErrNoShapes       = errors.New("no shapes in scene")
	ErrMalformedShape = errors.New("malformed shape")
	ErrEmptyShape     = errors.New("shape has no vertices")
)

// Shape is one contiguous piece of input geometry as delivered by the
// loader: flat xyz position triples and matching xyz normal triples.
type Shape struct {
	Name      string
	Positions []float32
	Normals   []float32
}

func (s Shape) VertexCount() int {
	return len(s.Positions) / 3
}

// Validate rejects shapes whose position and normal streams disagree.
// A zero-vertex shape is valid here; the store skips it during upload.
func (s Shape) Validate() error {
	if len(s.Positions)%3 != 0 {
		return fmt.Errorf("%w: %v position floats, not divisible by 3", ErrMalformedShape, len(s.Positions))
	}

	if len(s.Positions) != len(s.Normals) {
		return fmt.Errorf("%w: %v position floats but %v normal floats", ErrMalformedShape, len(s.Positions), len(s.Normals))
	}

	return nil
}
