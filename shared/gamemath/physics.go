package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis.
var Up = mgl64.Vec3{0, 1, 0}

// Forward is the local facing axis of an unrotated transform.
var Forward = mgl64.Vec3{0, 0, 1}

// MovementEpsilonSq is the squared horizontal speed below which a body is
// considered stationary for facing purposes (0.001 squared).
const MovementEpsilonSq = 1e-6

// MoveDirection maps a 2D move input onto the XZ plane. Inputs longer than
// 1 are normalized so diagonals are not faster than a single axis.
func MoveDirection(move mgl64.Vec2) mgl64.Vec3 {
	dir := mgl64.Vec3{move.X(), 0, move.Y()}
	if dir.Dot(dir) > 1 {
		dir = dir.Normalize()
	}
	return dir
}

// Horizontal drops the vertical component of v.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// ScaleForMass returns the uniform visual scale for a mass.
func ScaleForMass(mass, multiplier float64) float64 {
	return math.Cbrt(mass) * multiplier
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec linearly interpolates between two vectors.
func LerpVec(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// SmoothDamp moves current toward target with a critically damped spring.
// velocity carries the spring state between calls. The coefficients follow
// the usual game-engine approximation of exp(-omega*dt), and the result is
// clamped so it never passes the target.
func SmoothDamp(current, target mgl64.Vec3, velocity *mgl64.Vec3, smoothTime, dt float64) mgl64.Vec3 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current.Sub(target)
	temp := velocity.Add(change.Mul(omega)).Mul(dt)
	*velocity = velocity.Sub(temp.Mul(omega)).Mul(decay)
	out := target.Add(change.Add(temp).Mul(decay))

	// Overshoot check
	if target.Sub(current).Dot(out.Sub(target)) > 0 {
		out = target
		*velocity = mgl64.Vec3{}
	}
	return out
}
