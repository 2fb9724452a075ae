package engine

import (
	"fmt"
	"log"

	"github.com/g3n/engine/loader/obj"
)

// LoadOBJ decodes an OBJ file into loader-agnostic shapes, one per OBJ
// object, de-indexing the face streams into flat position and normal
// triples. Decoder warnings are logged and non-fatal; only a decode
// error aborts.
func LoadOBJ(path string) ([]Shape, error) {
	dec, err := obj.Decode(path, "")
	if err != nil {
		return nil, fmt.Errorf("decode %v: %v", path, err)
	}

	for _, w := range dec.Warnings {
		log.Printf("obj warning: %v", w)
	}

	var shapes []Shape
	for _, o := range dec.Objects {
		s := Shape{Name: o.Name}

		for _, face := range o.Faces {
			for i, vi := range face.Vertices {
				if 3*vi+2 >= len(dec.Vertices) {
					return nil, fmt.Errorf("decode %v: object %q references vertex %v out of range", path, o.Name, vi)
				}
				s.Positions = append(s.Positions, dec.Vertices[3*vi], dec.Vertices[3*vi+1], dec.Vertices[3*vi+2])

				ni := -1
				if i < len(face.Normals) {
					ni = face.Normals[i]
				}
				if ni >= 0 && 3*ni+2 < len(dec.Normals) {
					s.Normals = append(s.Normals, dec.Normals[3*ni], dec.Normals[3*ni+1], dec.Normals[3*ni+2])
				} else {
					s.Normals = append(s.Normals, 0, 0, 0)
				}
			}
		}

		shapes = append(shapes, s)
	}

	// a cloud of bare v/vn lines has no faces at all; fall back to the
	// raw streams as a single shape
	if totalVertices(shapes) == 0 && len(dec.Vertices) > 0 {
		s := Shape{
			Name:      "points",
			Positions: dec.Vertices,
			Normals:   dec.Normals,
		}
		if len(s.Normals) != len(s.Positions) {
			log.Printf("obj warning: %v normals for %v positions, padding with zeros", len(s.Normals)/3, len(s.Positions)/3)
			s.Normals = make([]float32, len(s.Positions))
			copy(s.Normals, dec.Normals)
		}
		shapes = []Shape{s}
	}

	return shapes, nil
}

func totalVertices(shapes []Shape) int {
	var n int
	for _, s := range shapes {
		n += s.VertexCount()
	}
	return n
}
