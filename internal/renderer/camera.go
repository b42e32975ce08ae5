// camera.go
package renderer

import (
	"math"

	"GopherQueue/internal/bounding"

	"github.com/go-gl/mathgl/mgl32"
)

type Camera struct {
	// HOT DATA - Read by the queue comparators and frustum culling every frame
	Position   mgl32.Vec3 // Camera position in world space
	Front      mgl32.Vec3 // Forward direction vector
	Up         mgl32.Vec3 // Up direction vector
	Right      mgl32.Vec3 // Right direction vector
	Projection mgl32.Mat4 // Projection matrix
	Pitch      float32    // Pitch angle (vertical rotation)
	Yaw        float32    // Yaw angle (horizontal rotation)

	// COLD DATA - Configuration
	WorldUp     mgl32.Vec3 // World up vector (usually (0,1,0))
	Sensitivity float32    // Rotation sensitivity
	Fov         float32    // Field of view
	Near        float32    // Near clipping plane
	Far         float32    // Far clipping plane
	AspectRatio float32    // Screen aspect ratio
	InvertMouse bool       // Invert pitch input

	Name string // Camera name, used in logs

	frustum      Frustum
	frustumDirty bool
}

type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

type Frustum struct {
	Planes [6]Plane
}

func NewDefaultCamera(width int32, height int32) *Camera {
	camera := Camera{
		Position:    mgl32.Vec3{0, 0, 10},
		Front:       mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Pitch:       0.0,
		Yaw:         -90.0,
		Sensitivity: 0.1,
		Fov:         45.0,
		Near:        0.1,
		Far:         10000.0,
		AspectRatio: float32(width) / float32(height),
		InvertMouse: true,
		Name:        "main",
	}
	camera.updateCameraVectors()
	camera.UpdateProjection()
	return &camera
}

// Location is the camera position, used by the render queue
func (c *Camera) Location() mgl32.Vec3 {
	return c.Position
}

// Direction is the normalized view direction, used by the render queue
func (c *Camera) Direction() mgl32.Vec3 {
	return c.Front
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
	c.frustumDirty = true
}

// Setter methods that automatically update projection
func (c *Camera) SetNear(near float32) {
	c.Near = near
	c.UpdateProjection()
}

func (c *Camera) SetFar(far float32) {
	c.Far = far
	c.UpdateProjection()
}

func (c *Camera) SetFov(fov float32) {
	c.Fov = fov
	c.UpdateProjection()
}

func (c *Camera) SetAspectRatio(aspectRatio float32) {
	c.AspectRatio = aspectRatio
	c.UpdateProjection()
}

// SetPosition moves the camera
func (c *Camera) SetPosition(position mgl32.Vec3) {
	c.Position = position
	c.frustumDirty = true
}

func (c *Camera) GetViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.GetViewMatrix())
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return c.Projection
}

func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	xoffset *= c.Sensitivity
	yoffset *= c.Sensitivity

	c.Yaw += xoffset

	if c.InvertMouse {
		c.Pitch -= yoffset
	} else {
		c.Pitch += yoffset
	}
	if constrainPitch {
		c.Pitch = mgl32.Clamp(c.Pitch, -89.0, 89.0) // Prevent extreme pitch values
	}
	c.updateCameraVectors()
}

// LookAt points the camera at target
func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.Position)
	if direction.Len() == 0 {
		return
	}
	direction = direction.Normalize()
	c.Yaw = mgl32.RadToDeg(float32(math.Atan2(float64(direction.Z()), float64(direction.X()))))
	c.Pitch = mgl32.RadToDeg(float32(math.Asin(float64(direction.Y()))))
	c.updateCameraVectors()
}

func (c *Camera) updateCameraVectors() {
	yawRad := mgl32.DegToRad(c.Yaw)
	pitchRad := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		float32(math.Cos(float64(yawRad)) * math.Cos(float64(pitchRad))),
		float32(math.Sin(float64(pitchRad))),
		float32(math.Sin(float64(yawRad)) * math.Cos(float64(pitchRad))),
	}

	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
	c.frustumDirty = true
}

// Frustum returns the view frustum, recalculated only after the camera moved
func (c *Camera) Frustum() Frustum {
	if c.frustumDirty {
		c.frustum = c.CalculateFrustum()
		c.frustumDirty = false
	}
	return c.frustum
}

func (c *Camera) CalculateFrustum() Frustum {
	var frustum Frustum
	vp := c.GetViewProjection()

	// Left Plane
	frustum.Planes[0] = Plane{
		Normal:   mgl32.Vec3{vp[3] + vp[0], vp[7] + vp[4], vp[11] + vp[8]},
		Distance: vp[15] + vp[12],
	}

	// Right Plane
	frustum.Planes[1] = Plane{
		Normal:   mgl32.Vec3{vp[3] - vp[0], vp[7] - vp[4], vp[11] - vp[8]},
		Distance: vp[15] - vp[12],
	}

	// Bottom Plane
	frustum.Planes[2] = Plane{
		Normal:   mgl32.Vec3{vp[3] + vp[1], vp[7] + vp[5], vp[11] + vp[9]},
		Distance: vp[15] + vp[13],
	}

	// Top Plane
	frustum.Planes[3] = Plane{
		Normal:   mgl32.Vec3{vp[3] - vp[1], vp[7] - vp[5], vp[11] - vp[9]},
		Distance: vp[15] - vp[13],
	}

	// Near Plane
	frustum.Planes[4] = Plane{
		Normal:   mgl32.Vec3{vp[3] + vp[2], vp[7] + vp[6], vp[11] + vp[10]},
		Distance: vp[15] + vp[14],
	}

	// Far Plane
	frustum.Planes[5] = Plane{
		Normal:   mgl32.Vec3{vp[3] - vp[2], vp[7] - vp[6], vp[11] - vp[10]},
		Distance: vp[15] - vp[14],
	}

	// Normalize the planes
	for i := 0; i < 6; i++ {
		length := frustum.Planes[i].Normal.Len()
		frustum.Planes[i].Normal = frustum.Planes[i].Normal.Mul(1.0 / length)
		frustum.Planes[i].Distance /= length
	}

	return frustum
}

func (p *Plane) DistanceToPoint(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.Distance
}

func (f *Frustum) IntersectsSphere(center mgl32.Vec3, radius float32) bool {
	for _, plane := range f.Planes {
		if plane.DistanceToPoint(center) < -radius {
			return false // Sphere is outside the frustum
		}
	}
	return true
}

// Intersects tests a bounding volume. Volumes other than spheres are tested
// through their center only.
func (f *Frustum) Intersects(v bounding.Volume) bool {
	if s, ok := v.(*bounding.Sphere); ok {
		return f.IntersectsSphere(s.Center(), s.Radius())
	}
	if b, ok := v.(*bounding.Box); ok {
		return f.IntersectsSphere(b.Center(), b.Extent().Len())
	}
	return f.IntersectsSphere(v.Center(), 0)
}
