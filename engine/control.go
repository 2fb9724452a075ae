package engine

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Control caches keyboard and mouse state from the window callbacks and
// folds it into one NavigationInput per frame. Rotation is driven by the
// right mouse button, translation by WASD.
type Control struct {
	window *glfw.Window

	moveForward, moveBack bool
	moveLeft, moveRight   bool

	rotating    bool
	mouseX      float64
	mouseY      float64
	oldX, oldY  float64
	firstSample bool

	// UI hooks, invoked from the key callback
	OnMode         func(DrawMode)
	OnToggleBounds func()
	OnToggleScale  func()
	OnReload       func()
	OnQuit         func()
}

func NewControl(window *glfw.Window) *Control {
	c := &Control{
		window:      window,
		firstSample: true,
	}

	window.SetKeyCallback(c.onKey)
	window.SetCursorPosCallback(c.onMouseMove)
	window.SetMouseButtonCallback(c.onMouseButton)

	return c
}

func (c *Control) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	pressed := action == glfw.Press || action == glfw.Repeat

	switch key {
	case glfw.KeyW, glfw.KeyUp:
		c.moveForward = pressed
	case glfw.KeyS, glfw.KeyDown:
		c.moveBack = pressed
	case glfw.KeyA, glfw.KeyLeft:
		c.moveLeft = pressed
	case glfw.KeyD, glfw.KeyRight:
		c.moveRight = pressed
	}

	if action != glfw.Press {
		return
	}

	switch key {
	case glfw.Key1:
		c.mode(DrawUnlit)
	case glfw.Key2:
		c.mode(DrawNormals)
	case glfw.Key3:
		c.mode(DrawLit)
	case glfw.KeyB:
		if c.OnToggleBounds != nil {
			c.OnToggleBounds()
		}
	case glfw.KeyP:
		if c.OnToggleScale != nil {
			c.OnToggleScale()
		}
	case glfw.KeyR:
		if c.OnReload != nil {
			c.OnReload()
		}
	case glfw.KeyEscape:
		if c.OnQuit != nil {
			c.OnQuit()
		}
	}
}

func (c *Control) mode(m DrawMode) {
	if c.OnMode != nil {
		c.OnMode(m)
	}
}

func (c *Control) onMouseMove(w *glfw.Window, x, y float64) {
	c.mouseX, c.mouseY = x, y

	if c.firstSample {
		c.oldX, c.oldY = x, y
		c.firstSample = false
	}
}

func (c *Control) onMouseButton(w *glfw.Window, b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if b != glfw.MouseButtonRight {
		return
	}

	switch action {
	case glfw.Press:
		c.rotating = true
		c.oldX, c.oldY = c.mouseX, c.mouseY
	case glfw.Release:
		c.rotating = false
	}
}

// Poll consumes the cached state and produces the input delta for one
// frame.
func (c *Control) Poll(dt float64) NavigationInput {
	deltaX := c.mouseX - c.oldX
	deltaY := c.mouseY - c.oldY
	c.oldX, c.oldY = c.mouseX, c.mouseY

	var move mgl32.Vec2
	if c.moveLeft {
		move[0] = 1
	} else if c.moveRight {
		move[0] = -1
	}
	if c.moveForward {
		move[1] = 1
	} else if c.moveBack {
		move[1] = -1
	}

	return NavigationInput{
		Move:       move,
		MouseDelta: mgl32.Vec2{float32(deltaX), float32(deltaY)},
		Rotating:   c.rotating,
		DT:         float32(dt),
	}
}
