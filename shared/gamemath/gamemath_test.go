package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

const eps = 1e-9

func TestMoveDirectionNormalizesDiagonal(t *testing.T) {
	dir := MoveDirection(mgl64.Vec2{1, 1})
	if math.Abs(dir.Len()-1) > eps {
		t.Fatalf("|dir| = %v, want 1", dir.Len())
	}
	if dir.Y() != 0 {
		t.Fatalf("dir.y = %v, want 0", dir.Y())
	}

	half := MoveDirection(mgl64.Vec2{0.5, 0})
	if half != (mgl64.Vec3{0.5, 0, 0}) {
		t.Fatalf("short input changed: %v", half)
	}
}

func TestScaleForMass(t *testing.T) {
	tests := []struct {
		mass, mult, want float64
	}{
		{1, 1, 1},
		{8, 1, 2},
		{27, 0.5, 1.5},
		{1.25, 1, 1.0772173450159417},
	}
	for _, tt := range tests {
		got := ScaleForMass(tt.mass, tt.mult)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("ScaleForMass(%v, %v) = %v, want %v", tt.mass, tt.mult, got, tt.want)
		}
		if again := ScaleForMass(tt.mass, tt.mult); again != got {
			t.Errorf("ScaleForMass not idempotent: %v then %v", got, again)
		}
	}
}

func TestLookRotationFacesDirection(t *testing.T) {
	dirs := []mgl64.Vec3{
		{0, 0, 1},
		{1, 0, 0},
		{-1, 0, 0},
		{0, 0, -1},
		{3, 0, 4},
	}
	for _, d := range dirs {
		q := LookRotation(d, Up)
		got := q.Rotate(Forward)
		want := d.Normalize()
		if !vecNear(got, want, 1e-9) {
			t.Errorf("LookRotation(%v) forward = %v, want %v", d, got, want)
		}
		if up := q.Rotate(Up); !vecNear(up, Up, 1e-9) {
			t.Errorf("LookRotation(%v) up = %v, want %v", d, up, Up)
		}
	}

	if q := LookRotation(mgl64.Vec3{}, Up); q != mgl64.QuatIdent() {
		t.Fatalf("zero forward = %v, want identity", q)
	}
}

func TestSlerpTakesShortPath(t *testing.T) {
	a := YawRotation(10)
	b := YawRotation(-10).Scale(-1) // same rotation, opposite hemisphere

	mid := Slerp(a, b, 0.5)
	if yaw := mgl64.RadToDeg(Yaw(mid)); math.Abs(yaw) > 1e-6 {
		t.Fatalf("midpoint yaw = %v, want 0", yaw)
	}

	if got := Slerp(a, b, 5); AngleBetween(got, b) > 1e-5 {
		t.Fatalf("t > 1 not clamped: %v", got)
	}
	if got := Slerp(a, b, -1); AngleBetween(got, a) > 1e-5 {
		t.Fatalf("t < 0 not clamped: %v", got)
	}
}

func TestTiltRotationPitchesDown(t *testing.T) {
	f := TiltRotation(60).Rotate(Forward)
	if f.Y() >= 0 {
		t.Fatalf("tilted forward %v should point down", f)
	}
	if math.Abs(f.Y()+math.Sin(mgl64.DegToRad(60))) > eps {
		t.Fatalf("tilt y = %v, want %v", f.Y(), -math.Sin(mgl64.DegToRad(60)))
	}
}

func TestSmoothDampConvergesWithoutOvershoot(t *testing.T) {
	target := mgl64.Vec3{10, 0, 0}
	pos := mgl64.Vec3{}
	var vel mgl64.Vec3

	prev := pos.X()
	for i := 0; i < 600; i++ {
		pos = SmoothDamp(pos, target, &vel, 0.12, 1.0/60)
		if pos.X() > target.X()+eps {
			t.Fatalf("frame %d overshot: %v", i, pos)
		}
		if pos.X() < prev-eps {
			t.Fatalf("frame %d moved backwards: %v -> %v", i, prev, pos.X())
		}
		prev = pos.X()
	}
	if math.Abs(pos.X()-target.X()) > 1e-3 {
		t.Fatalf("did not converge: %v", pos)
	}
}

func TestSmoothDampZeroDelta(t *testing.T) {
	vel := mgl64.Vec3{1, 2, 3}
	cur := mgl64.Vec3{4, 5, 6}
	if got := SmoothDamp(cur, mgl64.Vec3{}, &vel, 0.12, 0); got != cur {
		t.Fatalf("dt=0 moved camera to %v", got)
	}
	if vel != (mgl64.Vec3{1, 2, 3}) {
		t.Fatalf("dt=0 changed velocity to %v", vel)
	}
}

func TestSmoothDampTinySmoothTime(t *testing.T) {
	var vel mgl64.Vec3
	got := SmoothDamp(mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, &vel, 0, 1.0/60)
	for i := 0; i < 3; i++ {
		if math.IsNaN(got[i]) || math.IsInf(got[i], 0) {
			t.Fatalf("non-finite result %v", got)
		}
	}
}

func TestInterpolateEndpointsExact(t *testing.T) {
	for _, name := range []string{"linear", "OutBack", "inoutsine", "nope"} {
		fn := Ease(name)
		if got := Interpolate(fn, 1.3, 7.9, 0); got != 1.3 {
			t.Errorf("%s t=0 = %v, want 1.3", name, got)
		}
		if got := Interpolate(fn, 1.3, 7.9, 1); got != 7.9 {
			t.Errorf("%s t=1 = %v, want 7.9", name, got)
		}
		if got := Interpolate(fn, 1.3, 7.9, 2); got != 7.9 {
			t.Errorf("%s t=2 = %v, want 7.9", name, got)
		}
	}
	if got := Interpolate(Linear, 0, 2, 0.5); got != 1 {
		t.Fatalf("linear midpoint = %v, want 1", got)
	}
	// No float32 rounding on the default curve.
	if got := Interpolate(Ease("linear"), 0, 1, 0.1); got != 0.1 {
		t.Fatalf("linear at 0.1 = %v, want 0.1", got)
	}
	if got := Interpolate(FromTween(ease.OutQuad), 0, 1, 0.5); math.Abs(got-0.75) > 1e-6 {
		t.Fatalf("outquad midpoint = %v, want 0.75", got)
	}
}

func TestEaseLookup(t *testing.T) {
	if !KnownEase("Linear") || !KnownEase("outcubic") {
		t.Fatal("expected known easing names")
	}
	if KnownEase("bouncy") {
		t.Fatal("unexpected easing name accepted")
	}
}

func TestRayBox(t *testing.T) {
	box := Box{Min: mgl64.Vec3{-1, -1, 4}, Max: mgl64.Vec3{1, 1, 6}}

	d, ok := RayBox(mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}, box)
	if !ok || math.Abs(d-4) > eps {
		t.Fatalf("RayBox hit = %v,%v, want 4,true", d, ok)
	}

	if _, ok := RayBox(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}, box); ok {
		t.Fatal("ray pointing away reported a hit")
	}
	if _, ok := RayBox(mgl64.Vec3{3, 0, 0}, mgl64.Vec3{0, 0, 1}, box); ok {
		t.Fatal("parallel ray outside the slab reported a hit")
	}
	if _, ok := RayBox(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, 1}, box); ok {
		t.Fatal("ray starting inside reported a hit")
	}
}

func TestSphereCast(t *testing.T) {
	box := Box{Min: mgl64.Vec3{-1, -1, 4}, Max: mgl64.Vec3{1, 1, 6}}

	d, ok := SphereCast(mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}, 0.5, box)
	if !ok || math.Abs(d-3.5) > eps {
		t.Fatalf("SphereCast = %v,%v, want 3.5,true", d, ok)
	}

	// Already touching: heading into the box hits at once, leaving is free.
	if d, ok := SphereCast(mgl64.Vec3{0, 0, 3.8}, mgl64.Vec3{0, 0, 1}, 0.5, box); !ok || d != 0 {
		t.Fatalf("touching start heading in = %v,%v, want 0,true", d, ok)
	}
	if _, ok := SphereCast(mgl64.Vec3{0, 0, 3.8}, mgl64.Vec3{0, 0, -1}, 0.5, box); ok {
		t.Fatal("touching start heading away reported a hit")
	}
	if d, ok := SphereCast(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -1}, 0.5, box); !ok || d != 0 {
		t.Fatalf("start inside the box = %v,%v, want 0,true", d, ok)
	}
}

// vecNear compares per component with an absolute tolerance; mgl64's
// ApproxEqualThreshold squares the tolerance when a component is zero.
func vecNear(a, b mgl64.Vec3, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}
