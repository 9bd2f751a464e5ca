package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max mgl64.Vec3
}

// Inflate grows the box by r on every side.
func (b Box) Inflate(r float64) Box {
	d := mgl64.Vec3{r, r, r}
	return Box{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}

// Contains reports whether p lies inside the box, borders included.
func (b Box) Contains(p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// RayBox intersects the ray origin + dir*t (t >= 0) with b using the slab
// method and returns the entry distance. Rays starting inside the box do not
// report a hit. dir does not need to be normalized, but the returned
// distance is in units of |dir|.
func RayBox(origin, dir mgl64.Vec3, b Box) (float64, bool) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < b.Min[i] || origin[i] > b.Max[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (b.Min[i] - origin[i]) * inv
		t2 := (b.Max[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}

	if tmin < 0 || math.IsInf(tmin, -1) {
		return 0, false
	}
	return tmin, true
}

// SphereCast sweeps a sphere of radius from origin along dir (normalized)
// against b and returns the travel distance at first contact. A sphere that
// already touches b at the origin hits at distance 0 when it starts inside b
// or its path crosses b, and is free to move away otherwise.
func SphereCast(origin, dir mgl64.Vec3, radius float64, b Box) (float64, bool) {
	grown := b.Inflate(radius)
	if !grown.Contains(origin) {
		return RayBox(origin, dir, grown)
	}
	if b.Contains(origin) {
		return 0, true
	}
	if _, ok := RayBox(origin, dir, b); ok {
		return 0, true
	}
	return 0, false
}
