// Package bounding holds the world-space bounding volumes the render queue
// measures camera distances against.
package bounding

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type Volume interface {
	// Center of the volume in world space
	Center() mgl32.Vec3
	// DistanceTo returns the distance from p to the center
	DistanceTo(p mgl32.Vec3) float32
	// DistanceToEdge returns the distance from p to the closest point of the
	// volume, 0 when p is inside
	DistanceToEdge(p mgl32.Vec3) float32
	// Translate returns a copy moved by offset
	Translate(offset mgl32.Vec3) Volume
}

// Sphere is a bounding sphere. Used by frustum culling as well as queue sorting.
type Sphere struct {
	center mgl32.Vec3
	radius float32
}

func NewSphere(center mgl32.Vec3, radius float32) *Sphere {
	return &Sphere{center: center, radius: math32.Abs(radius)}
}

func (s *Sphere) Center() mgl32.Vec3 {
	return s.center
}

func (s *Sphere) Radius() float32 {
	return s.radius
}

func (s *Sphere) DistanceTo(p mgl32.Vec3) float32 {
	return p.Sub(s.center).Len()
}

func (s *Sphere) DistanceToEdge(p mgl32.Vec3) float32 {
	return math32.Max(0, s.DistanceTo(p)-s.radius)
}

func (s *Sphere) Translate(offset mgl32.Vec3) Volume {
	return &Sphere{center: s.center.Add(offset), radius: s.radius}
}

// Box is an axis aligned bounding box stored as center and half extents
type Box struct {
	center mgl32.Vec3
	extent mgl32.Vec3
}

func NewBox(center, extent mgl32.Vec3) *Box {
	return &Box{
		center: center,
		extent: mgl32.Vec3{math32.Abs(extent[0]), math32.Abs(extent[1]), math32.Abs(extent[2])},
	}
}

func (b *Box) Center() mgl32.Vec3 {
	return b.center
}

// Extent returns the half extents
func (b *Box) Extent() mgl32.Vec3 {
	return b.extent
}

func (b *Box) Min() mgl32.Vec3 {
	return b.center.Sub(b.extent)
}

func (b *Box) Max() mgl32.Vec3 {
	return b.center.Add(b.extent)
}

func (b *Box) DistanceTo(p mgl32.Vec3) float32 {
	return p.Sub(b.center).Len()
}

func (b *Box) DistanceToEdge(p mgl32.Vec3) float32 {
	var sq float32
	for i := 0; i < 3; i++ {
		d := math32.Abs(p[i]-b.center[i]) - b.extent[i]
		if d > 0 {
			sq += d * d
		}
	}
	return math32.Sqrt(sq)
}

func (b *Box) Translate(offset mgl32.Vec3) Volume {
	return &Box{center: b.center.Add(offset), extent: b.extent}
}

// SphereFromPoints computes a sphere centered on the centroid of points with
// the radius reaching the farthest point. Returns nil for no points.
func SphereFromPoints(points []mgl32.Vec3) *Sphere {
	if len(points) == 0 {
		return nil
	}

	var center mgl32.Vec3
	for _, p := range points {
		center = center.Add(p)
	}
	center = center.Mul(1.0 / float32(len(points)))

	var maxDistanceSq float32
	for _, p := range points {
		distanceSq := p.Sub(center).LenSqr()
		if distanceSq > maxDistanceSq {
			maxDistanceSq = distanceSq
		}
	}
	return &Sphere{center: center, radius: math32.Sqrt(maxDistanceSq)}
}

// BoxFromPoints computes the tight axis aligned box around points. Returns nil
// for no points.
func BoxFromPoints(points []mgl32.Vec3) *Box {
	if len(points) == 0 {
		return nil
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		for i := 0; i < 3; i++ {
			lo[i] = math32.Min(lo[i], p[i])
			hi[i] = math32.Max(hi[i], p[i])
		}
	}
	return &Box{
		center: lo.Add(hi).Mul(0.5),
		extent: hi.Sub(lo).Mul(0.5),
	}
}
