package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// LookRotation returns the rotation whose +Z axis points along forward with
// +Y as close to up as possible. A zero forward yields the identity.
func LookRotation(forward, up mgl64.Vec3) mgl64.Quat {
	if forward.Len() < 1e-9 {
		return mgl64.QuatIdent()
	}
	f := forward.Normalize()
	r := up.Cross(f)
	if r.Len() < 1e-9 {
		// forward is parallel to up
		r = mgl64.Vec3{1, 0, 0}
	}
	r = r.Normalize()
	u := f.Cross(r)

	m := mgl64.Mat3FromCols(r, u, f)
	return mgl64.Mat4ToQuat(m.Mat4()).Normalize()
}

// Slerp interpolates from a to b along the shorter arc. t is clamped to
// [0, 1].
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	t = Clamp01(t)
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t).Normalize()
}

// YawRotation returns a rotation of degrees around world up.
func YawRotation(degrees float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(degrees), Up)
}

// TiltRotation returns a downward pitch of degrees around +X.
func TiltRotation(degrees float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(degrees), mgl64.Vec3{1, 0, 0})
}

// Yaw returns the heading of q on the XZ plane in radians, 0 facing +Z.
func Yaw(q mgl64.Quat) float64 {
	f := q.Rotate(Forward)
	return math.Atan2(f.X(), f.Z())
}

// AngleBetween returns the angle in radians between two rotations.
func AngleBetween(a, b mgl64.Quat) float64 {
	d := math.Abs(a.Normalize().Dot(b.Normalize()))
	if d > 1 {
		d = 1
	}
	return 2 * math.Acos(d)
}
