package engine

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DrawMode selects which shading formula produces the final fragment
// color.
type DrawMode int32

const (
	DrawUnlit DrawMode = iota
	DrawNormals
	DrawLit
)

func (m DrawMode) String() string {
	switch m {
	case DrawUnlit:
		return "unlit"
	case DrawNormals:
		return "normals"
	case DrawLit:
		return "lit"
	}
	return "unknown"
}

// ShadingState holds the draw mode and lighting/material parameters.
// Mutated only through UI-driven setters; read once per frame.
type ShadingState struct {
	Mode DrawMode

	LightDir       mgl32.Vec3
	LightColor     mgl32.Vec4
	DiffuseColor   mgl32.Vec4
	AmbientColor   mgl32.Vec4
	LightIntensity float32

	PointScale         bool
	PointScaleExponent float32

	// ClampLighting clamps the diffuse term to zero. Off by default:
	// back-facing normals then darken the fragment below ambient.
	ClampLighting bool
}

func DefaultShadingState() ShadingState {
	return ShadingState{
		Mode: DrawLit,

		LightDir:       mgl32.Vec3{0, -1, 0},
		LightColor:     mgl32.Vec4{1, 1, 1, 1},
		DiffuseColor:   mgl32.Vec4{1, 1, 1, 1},
		AmbientColor:   mgl32.Vec4{0.01, 0.01, 0.01, 1},
		LightIntensity: 1,

		PointScale:         true,
		PointScaleExponent: 0.8,
	}
}

// FrameUniforms is the exact uniform set pushed before the draw calls of
// one frame.
type FrameUniforms struct {
	MVP  mgl32.Mat4
	Mode int32

	LightDir       mgl32.Vec3
	LightColor     mgl32.Vec4
	DiffuseColor   mgl32.Vec4
	AmbientColor   mgl32.Vec4
	LightIntensity float32
	ClampDiffuse   int32

	PointSize float32
}

// FrameUniforms derives the uniform set from the camera pose and the
// shading parameters. Pure; no GL calls.
func (s ShadingState) FrameUniforms(cam *Camera, aspect float32) FrameUniforms {
	mvp := cam.Projection(aspect).Mul4(cam.View())

	u := FrameUniforms{
		MVP:  mvp,
		Mode: int32(s.Mode),

		LightDir:       s.LightDir,
		LightColor:     s.LightColor,
		DiffuseColor:   s.DiffuseColor,
		AmbientColor:   s.AmbientColor,
		LightIntensity: s.LightIntensity,

		PointSize: s.PointSize(cam.Position()),
	}

	if s.ClampLighting {
		u.ClampDiffuse = 1
	}

	return u
}

// PointSize computes the distance falloff of the rasterized point size.
// With scaling enabled the camera must never sit on the exact origin;
// the distance would be zero and the division undefined.
func (s ShadingState) PointSize(camPos mgl32.Vec3) float32 {
	if !s.PointScale {
		return 1
	}

	dist := camPos.Len()
	return (1 / math32.Pow(dist, s.PointScaleExponent)) * 20
}
