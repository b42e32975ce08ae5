package bounding

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSphereDistanceToEdge(t *testing.T) {
	s := NewSphere(mgl32.Vec3{0, 0, 0}, 2)

	assert.Equal(t, float32(3), s.DistanceToEdge(mgl32.Vec3{5, 0, 0}))
	assert.Equal(t, float32(0), s.DistanceToEdge(mgl32.Vec3{1, 0, 0}), "point inside the sphere")
	assert.Equal(t, float32(4), s.DistanceTo(mgl32.Vec3{0, 4, 0}))
}

func TestNegativeRadiusIsNormalised(t *testing.T) {
	s := NewSphere(mgl32.Vec3{}, -3)
	assert.Equal(t, float32(3), s.Radius())
}

func TestBoxDistanceToEdge(t *testing.T) {
	b := NewBox(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})

	assert.Equal(t, float32(3), b.DistanceToEdge(mgl32.Vec3{4, 0, 0}))
	assert.Equal(t, float32(0), b.DistanceToEdge(mgl32.Vec3{0.5, -0.5, 0}), "point inside the box")
	// corner region: (4,5,1) is 3 and 4 away on x and y
	assert.Equal(t, float32(5), b.DistanceToEdge(mgl32.Vec3{4, 5, 1}))
}

func TestTranslate(t *testing.T) {
	var v Volume = NewBox(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1})
	moved := v.Translate(mgl32.Vec3{1, 0, 0})

	assert.Equal(t, mgl32.Vec3{2, 1, 1}, moved.Center())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, v.Center(), "Translate leaves the original alone")
}

func TestSphereFromPoints(t *testing.T) {
	s := SphereFromPoints([]mgl32.Vec3{{-1, 0, 0}, {1, 0, 0}, {0, 0, 0}})
	require.NotNil(t, s)

	assert.Equal(t, mgl32.Vec3{0, 0, 0}, s.Center())
	assert.Equal(t, float32(1), s.Radius())
	assert.Nil(t, SphereFromPoints(nil))
}

func TestBoxFromPoints(t *testing.T) {
	b := BoxFromPoints([]mgl32.Vec3{{0, 0, 0}, {2, 4, -2}})
	require.NotNil(t, b)

	assert.Equal(t, mgl32.Vec3{1, 2, -1}, b.Center())
	assert.Equal(t, mgl32.Vec3{1, 2, 1}, b.Extent())
	assert.Equal(t, mgl32.Vec3{0, 0, -2}, b.Min())
	assert.Equal(t, mgl32.Vec3{2, 4, 0}, b.Max())
	assert.Nil(t, BoxFromPoints(nil))
}
