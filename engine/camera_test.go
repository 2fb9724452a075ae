package engine

import (
	m "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func nearlyEqualsVec3(a, b mgl32.Vec3, epsilon float32) bool {
	return a.Sub(b).Len() < epsilon
}

func TestCamera_PitchClamp(t *testing.T) {
	tests := []struct {
		Deltas []mgl32.Vec2
	}{
		{[]mgl32.Vec2{{0, -10000}}},
		{[]mgl32.Vec2{{0, 10000}}},
		{[]mgl32.Vec2{{500, -300}, {-200, 900}, {0, -100000}, {0, 100000}}},
	}

	for _, c := range tests {
		cam := NewCamera(2, 0.005)

		for _, d := range c.Deltas {
			cam.Update(NavigationInput{MouseDelta: d, Rotating: true, DT: 0.016})

			if p := cam.Pitch(); p < -pitchMax || p > pitchMax {
				t.Errorf("Camera pitch %v outside [-pi/2, pi/2] after delta %v", p, d)
			}
		}
	}
}

func TestCamera_IgnoresMouseWhenNotRotating(t *testing.T) {
	cam := NewCamera(2, 0.005)

	cam.Update(NavigationInput{MouseDelta: mgl32.Vec2{500, 500}, Rotating: false, DT: 0.016})

	if cam.Yaw() != 0 || cam.Pitch() != 0 {
		t.Errorf("Camera rotated without rotate flag: yaw %v pitch %v", cam.Yaw(), cam.Pitch())
	}
}

func TestMoveVector_Normalized(t *testing.T) {
	tests := []struct {
		Axes mgl32.Vec2
	}{
		{mgl32.Vec2{0, 0}},
		{mgl32.Vec2{1, 0}},
		{mgl32.Vec2{0, -1}},
		{mgl32.Vec2{1, 1}},
		{mgl32.Vec2{-1, 1}},
		{mgl32.Vec2{-1, -1}},
	}

	for _, c := range tests {
		v := moveVector(c.Axes)
		if l := v.Len(); l > 1.000001 {
			t.Errorf("moveVector(%v) length %v > 1", c.Axes, l)
		}
	}
}

func TestCamera_DiagonalNotFaster(t *testing.T) {
	straight := NewCamera(2, 0.005)
	diagonal := NewCamera(2, 0.005)

	in := NavigationInput{DT: 0.1}

	in.Move = mgl32.Vec2{0, 1}
	straight.Update(in)

	in.Move = mgl32.Vec2{1, 1}
	diagonal.Update(in)

	ds := straight.Position().Sub(mgl32.Vec3{0, 0, -1}).Len()
	dd := diagonal.Position().Sub(mgl32.Vec3{0, 0, -1}).Len()

	if dd > ds+0.000001 {
		t.Errorf("diagonal move %v faster than axis move %v", dd, ds)
	}
}

func TestCamera_ForwardFromYaw(t *testing.T) {
	// rotation order is pitch about local right, then yaw about world
	// up; a quarter yaw turn swings the forward axis onto -x
	cam := NewCamera(2, 1)
	cam.Update(NavigationInput{MouseDelta: mgl32.Vec2{float32(m.Pi / 2), 0}, Rotating: true, DT: 0.016})

	want := mgl32.Vec3{-1, 0, 0}
	if f := cam.Forward(); !nearlyEqualsVec3(f, want, 0.0001) {
		t.Errorf("Camera.Forward() after quarter yaw != %v (got %v)", want, f)
	}
}

func TestCamera_ForwardFromPitch(t *testing.T) {
	// pitching up a quarter turn looks straight along +y
	cam := NewCamera(2, 1)
	cam.Update(NavigationInput{MouseDelta: mgl32.Vec2{0, -float32(m.Pi / 2)}, Rotating: true, DT: 0.016})

	want := mgl32.Vec3{0, 1, 0}
	if f := cam.Forward(); !nearlyEqualsVec3(f, want, 0.0001) {
		t.Errorf("Camera.Forward() after quarter pitch != %v (got %v)", want, f)
	}
}

func TestCamera_MoveFollowsYaw(t *testing.T) {
	cam := NewCamera(1, 1)
	cam.Update(NavigationInput{MouseDelta: mgl32.Vec2{float32(m.Pi / 2), 0}, Rotating: true, DT: 0.016})

	start := cam.Position()
	cam.Update(NavigationInput{Move: mgl32.Vec2{0, 1}, DT: 1})

	moved := cam.Position().Sub(start)
	want := mgl32.Vec3{-1, 0, 0}
	if !nearlyEqualsVec3(moved, want, 0.0001) {
		t.Errorf("forward move after quarter yaw != %v (got %v)", want, moved)
	}
}

func TestCamera_MoveScalesWithDT(t *testing.T) {
	cam := NewCamera(2, 0.005)

	start := cam.Position()
	cam.Update(NavigationInput{Move: mgl32.Vec2{0, 1}, DT: 0.5})

	if d := cam.Position().Sub(start).Len(); m.Abs(float64(d)-1) > 0.0001 {
		t.Errorf("move distance != speed*dt = 1 (got %v)", d)
	}
}

func TestCamera_Projection(t *testing.T) {
	cam := NewCamera(2, 0.005)

	// a resize must reflect in the very next projection
	wide := cam.Projection(2)
	tall := cam.Projection(0.5)

	if wide == tall {
		t.Error("Projection ignores the aspect ratio")
	}

	want := mgl32.Perspective(mgl32.DegToRad(70), 2, 0.1, 1000)
	if wide != want {
		t.Errorf("Projection(2) != perspective(70deg, 2, 0.1, 1000)")
	}
}

func TestCameraUpdate_AvoidsExactOrigin(t *testing.T) {
	// starting at (0,0,-1), one unit forward would land exactly on the
	// origin and blow up the point size falloff
	cam := NewCamera(1, 0.005)
	cam.Update(NavigationInput{Move: mgl32.Vec2{0, 1}, DT: 1})

	if pos := cam.Position(); pos.ApproxEqual(mgl32.Vec3{}) {
		t.Errorf("camera landed on the exact origin (got %v)", pos)
	}
}
