package main

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"

	"github.com/Belfer/PointCloudViewer/engine"
)

type Config struct {
	Window  WindowConfig
	Frame   FrameConfig
	Camera  CameraConfig
	Shading ShadingConfig
	Bounds  BoundsConfig
}

type WindowConfig struct {
	Title  string
	Width  int
	Height int
}

type FrameConfig struct {
	FPS int
}

type CameraConfig struct {
	MoveSpeed   float32
	RotateSpeed float32
}

type ShadingConfig struct {
	Mode               string
	LightDir           [3]float32
	LightColor         [4]float32
	DiffuseColor       [4]float32
	AmbientColor       [4]float32
	LightIntensity     float32
	PointScale         bool
	PointScaleExponent float32
	ClampLighting      bool
}

type BoundsConfig struct {
	Draw bool

	// IncludeOrigin seeds the origin into the bounding box, so a scene
	// far from the origin gets a box stretching back to it.
	IncludeOrigin bool
}

func DefaultConfig() Config {
	shading := engine.DefaultShadingState()

	return Config{
		Window: WindowConfig{
			Title:  "PCLViewer",
			Width:  640,
			Height: 480,
		},
		Frame: FrameConfig{
			FPS: 60,
		},
		Camera: CameraConfig{
			MoveSpeed:   2,
			RotateSpeed: 0.005,
		},
		Shading: ShadingConfig{
			Mode:               shading.Mode.String(),
			LightDir:           shading.LightDir,
			LightColor:         shading.LightColor,
			DiffuseColor:       shading.DiffuseColor,
			AmbientColor:       shading.AmbientColor,
			LightIntensity:     shading.LightIntensity,
			PointScale:         shading.PointScale,
			PointScaleExponent: shading.PointScaleExponent,
			ClampLighting:      shading.ClampLighting,
		},
		Bounds: BoundsConfig{
			Draw:          false,
			IncludeOrigin: true,
		},
	}
}

// LoadConfig reads the TOML file over the defaults. A missing file is
// not an error; every setting has a default.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %v: %v", path, err)
	}

	return cfg, nil
}

func (c Config) ShadingState() (engine.ShadingState, error) {
	s := engine.ShadingState{
		LightDir:           mgl32.Vec3(c.Shading.LightDir),
		LightColor:         mgl32.Vec4(c.Shading.LightColor),
		DiffuseColor:       mgl32.Vec4(c.Shading.DiffuseColor),
		AmbientColor:       mgl32.Vec4(c.Shading.AmbientColor),
		LightIntensity:     c.Shading.LightIntensity,
		PointScale:         c.Shading.PointScale,
		PointScaleExponent: c.Shading.PointScaleExponent,
		ClampLighting:      c.Shading.ClampLighting,
	}

	switch c.Shading.Mode {
	case "unlit":
		s.Mode = engine.DrawUnlit
	case "normals":
		s.Mode = engine.DrawNormals
	case "lit":
		s.Mode = engine.DrawLit
	default:
		return s, fmt.Errorf("unknown draw mode: %q", c.Shading.Mode)
	}

	return s, nil
}
