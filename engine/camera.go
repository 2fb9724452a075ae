package engine

import (
	m "math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	right    = mgl32.Vec3{1, 0, 0}
	up       = mgl32.Vec3{0, 1, 0}
	forward  = mgl32.Vec3{0, 0, 1}
	pitchMax = float32(m.Pi / 2)
)

// NavigationInput is the per-frame input delta consumed by the camera.
type NavigationInput struct {
	// Move holds the strafe/forward axes, each in {-1, 0, 1}.
	Move mgl32.Vec2

	// MouseDelta is the cursor movement in pixels since the last frame.
	MouseDelta mgl32.Vec2

	// Rotating is true while the look button is held.
	Rotating bool

	// DT is the elapsed frame time in seconds.
	DT float32
}

// Camera is the orbit/fly hybrid: mouse-driven look rotation plus
// keyboard-driven translation on the local forward/right plane. Only
// Update mutates the pose.
type Camera struct {
	position    mgl32.Vec3
	yaw, pitch  float32
	orientation mgl32.Quat

	fov, near, far float32

	moveSpeed   float32
	rotateSpeed float32
}

func NewCamera(moveSpeed, rotateSpeed float32) *Camera {
	c := &Camera{
		position: mgl32.Vec3{0, 0, -1},

		fov:  70,
		near: 0.1,
		far:  1000,

		moveSpeed:   moveSpeed,
		rotateSpeed: rotateSpeed,
	}
	c.updateOrientation()

	return c
}

func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

func (c *Camera) SetPosition(p mgl32.Vec3) {
	c.position = p
}

func (c *Camera) Yaw() float32 {
	return c.yaw
}

func (c *Camera) Pitch() float32 {
	return c.pitch
}

// Update applies one frame of input. Rotation only happens while the
// look button is held; translation is always active.
func (c *Camera) Update(in NavigationInput) {
	if in.Rotating {
		c.yaw += in.MouseDelta.X() * c.rotateSpeed
		c.pitch -= in.MouseDelta.Y() * c.rotateSpeed
		c.pitch = clamp(c.pitch, -pitchMax, pitchMax)
		c.updateOrientation()
	}

	move := moveVector(in.Move)
	if move.Dot(move) > 0 {
		// local frame into world space
		world := c.transformLocal(move)
		c.position = c.position.Add(world.Mul(c.moveSpeed * in.DT))

		// the point size falloff divides by the distance to the origin;
		// stop a step short of landing exactly on it
		if c.position.ApproxEqual(mgl32.Vec3{}) {
			c.position = world.Mul(-1e-4)
		}
	}
}

// updateOrientation recomputes the pose quaternion as pitch about the
// local right axis times yaw about the world up axis. Yaw is applied
// after pitch; swapping the order rolls the horizon.
func (c *Camera) updateOrientation() {
	c.orientation = mgl32.QuatRotate(c.pitch, right).Mul(mgl32.QuatRotate(c.yaw, up))
}

// moveVector builds the desired move on the right/forward plane and
// renormalizes it when its squared length exceeds 1, so diagonal
// movement is no faster than axis-aligned.
func moveVector(axes mgl32.Vec2) mgl32.Vec3 {
	move := mgl32.Vec3{axes.X(), 0, axes.Y()}
	if move.Dot(move) > 1 {
		move = move.Normalize()
	}
	return move
}

// transformLocal rotates a camera-local vector into world space.
func (c *Camera) transformLocal(v mgl32.Vec3) mgl32.Vec3 {
	return c.orientation.Conjugate().Rotate(v)
}

// Forward is the world-space view direction.
func (c *Camera) Forward() mgl32.Vec3 {
	return c.transformLocal(forward)
}

func (c *Camera) View() mgl32.Mat4 {
	target := c.position.Add(c.Forward())
	return mgl32.LookAtV(c.position, target, up)
}

// Projection is recomputed every frame from the live framebuffer aspect
// ratio, so a resize reflects on the next frame.
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, c.near, c.far)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
