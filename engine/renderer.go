package engine

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Renderer owns the window, the GL context and the point program, and
// submits the two draw passes of each frame: one point draw per cloud
// and the bounds wireframe.
type Renderer struct {
	title  string
	width  int
	height int
	window *glfw.Window

	dev     *GLDevice
	program *Program
}

func NewRenderer(title string, width, height int) (*Renderer, error) {
	r := &Renderer{
		title:  title,
		width:  width,
		height: height,
	}

	if err := r.initGLFW(); err != nil {
		return nil, err
	}

	if err := r.initGL(); err != nil {
		return nil, err
	}

	program, err := NewProgram(pointVertexShader, pointFragmentShader, pointUniforms)
	if err != nil {
		return nil, fmt.Errorf("point program: %w", err)
	}
	r.program = program
	r.dev = NewGLDevice()

	return r, nil
}

func (r *Renderer) initGLFW() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(r.width, r.height, r.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return err
	}

	window.SetFramebufferSizeCallback(r.onResize)
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	w, h := window.GetFramebufferSize()
	r.width, r.height = w, h

	r.window = window
	return nil
}

func (r *Renderer) initGL() error {
	if err := gl.Init(); err != nil {
		return err
	}

	log.Println(gl.GoStr(gl.GetString(gl.VERSION)))

	gl.ClearColor(0.1, 0.1, 0.1, 1)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.DEPTH_CLAMP)
	gl.Enable(gl.MULTISAMPLE)
	gl.Disable(gl.CULL_FACE)

	return nil
}

func (r *Renderer) Window() *glfw.Window {
	return r.window
}

func (r *Renderer) Device() Device {
	return r.dev
}

func (r *Renderer) Running() bool {
	return !r.window.ShouldClose()
}

func (r *Renderer) Quit() {
	r.window.SetShouldClose(true)
}

func (r *Renderer) onResize(window *glfw.Window, w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	r.width = w
	r.height = h
}

// Aspect is the live framebuffer aspect ratio, refreshed by the resize
// callback.
func (r *Renderer) Aspect() float32 {
	return float32(r.width) / float32(r.height)
}

// Frame renders the current scene. Scene replacement must never happen
// between the uniform push and the draws; the caller runs single
// threaded, so holding that boundary is its responsibility.
func (r *Renderer) Frame(scene *Scene, cam *Camera, shading ShadingState, drawBounds bool) {
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if scene == nil {
		return
	}

	uniforms := shading.FrameUniforms(cam, r.Aspect())

	r.program.Use()
	r.program.Push(uniforms)
	r.dev.SetPointSize(uniforms.PointSize)

	for _, cloud := range scene.PointClouds() {
		cloud.Draw(r.dev)
	}

	if drawBounds && scene.bounds != nil {
		// the wireframe has no normals bound, draw it unlit
		gl.Uniform1i(r.program.Uniform("Mode"), int32(DrawUnlit))
		scene.bounds.Draw(r.dev)
	}
}

func (r *Renderer) SwapBuffers() {
	r.window.SwapBuffers()
	glfw.PollEvents()
}

func (r *Renderer) Dispose() {
	if r.program != nil {
		r.program.Dispose()
	}

	glfw.Terminate()
}
