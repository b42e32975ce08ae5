package renderer

import (
	"math"

	"GopherQueue/internal/bounding"
	"GopherQueue/internal/queue"

	"github.com/go-gl/mathgl/mgl32"
)

// Geometry is a drawable mesh placed in the world. It is the renderable the
// render queue sorts.
type Geometry struct {
	// HOT DATA - Accessed every frame while queueing and sorting
	ModelMatrix mgl32.Mat4 // Transformation matrix
	Position    mgl32.Vec3 // Position in world space
	Scale       mgl32.Vec3 // Scale factors
	Rotation    mgl32.Quat // Rotation quaternion
	Material    *Material  // Material properties pointer
	QueueBucket queue.Bucket
	ShadowMode  queue.ShadowMode

	worldBound       bounding.Volume
	queueDistance    float32
	hasQueueDistance bool

	// COLD DATA
	Name     string       // Geometry name
	Vertices []mgl32.Vec3 // Local space vertex positions
	UseBox   bool         // Bound with a box instead of a sphere
}

// NewGeometry creates a geometry at the origin that inherits its bucket and
// shadow mode from the node it is attached to.
func NewGeometry(name string, vertices []mgl32.Vec3, material *Material) *Geometry {
	g := &Geometry{
		Name:        name,
		Vertices:    vertices,
		Material:    material,
		Scale:       mgl32.Vec3{1, 1, 1},
		Rotation:    mgl32.QuatIdent(),
		QueueBucket: queue.Inherit,
		ShadowMode:  queue.ShadowInherit,
	}
	g.updateModelMatrix()
	return g
}

func (g *Geometry) X() float32 {
	return g.Position[0]
}

func (g *Geometry) Y() float32 {
	return g.Position[1]
}

func (g *Geometry) Z() float32 {
	return g.Position[2]
}

func (g *Geometry) Rotate(angleX, angleY, angleZ float32) {
	if g.Rotation == (mgl32.Quat{}) {
		g.Rotation = mgl32.QuatIdent()
	}
	rotationX := mgl32.QuatRotate(mgl32.DegToRad(angleX), mgl32.Vec3{1, 0, 0})
	rotationY := mgl32.QuatRotate(mgl32.DegToRad(angleY), mgl32.Vec3{0, 1, 0})
	rotationZ := mgl32.QuatRotate(mgl32.DegToRad(angleZ), mgl32.Vec3{0, 0, 1})
	g.Rotation = g.Rotation.Mul(rotationX).Mul(rotationY).Mul(rotationZ)
	g.updateModelMatrix()
}

// SetPosition sets the position of the geometry
func (g *Geometry) SetPosition(x, y, z float32) {
	g.Position = mgl32.Vec3{x, y, z}
	g.updateModelMatrix()
}

func (g *Geometry) SetScale(x, y, z float32) {
	g.Scale = mgl32.Vec3{x, y, z}
	g.updateModelMatrix()
}

// SetAlpha changes the material transparency. A geometry that becomes
// transparent while still inheriting its bucket is moved to the
// Transparent bucket.
func (g *Geometry) SetAlpha(alpha float32) {
	if g.Material == nil || g.Material == DefaultMaterial {
		g.Material = NewMaterial(g.Name, DefaultMaterial.Shader)
	}
	g.Material.Alpha = alpha
	if g.Material.IsTransparent() && g.QueueBucket == queue.Inherit {
		g.QueueBucket = queue.Transparent
	}
}

// SetWorldBound overrides the computed bound, nil clears it
func (g *Geometry) SetWorldBound(v bounding.Volume) {
	g.worldBound = v
}

func (g *Geometry) updateModelMatrix() {
	// Translation * Rotation * Scale
	scaleMatrix := mgl32.Scale3D(g.Scale[0], g.Scale[1], g.Scale[2])
	rotationMatrix := g.Rotation.Mat4()
	translationMatrix := mgl32.Translate3D(g.Position[0], g.Position[1], g.Position[2])
	g.ModelMatrix = translationMatrix.Mul4(rotationMatrix).Mul4(scaleMatrix)
	g.UpdateWorldBound()
}

// UpdateWorldBound recomputes the bound from the vertices in world space
func (g *Geometry) UpdateWorldBound() {
	if len(g.Vertices) == 0 {
		return
	}

	world := make([]mgl32.Vec3, len(g.Vertices))
	for i, v := range g.Vertices {
		world[i] = ApplyModelTransformation(v, g.Position, g.Scale, g.Rotation)
	}
	if g.UseBox {
		g.worldBound = bounding.BoxFromPoints(world)
	} else {
		g.worldBound = bounding.SphereFromPoints(world)
	}
}

func ApplyModelTransformation(vertex, position, scale mgl32.Vec3, rotation mgl32.Quat) mgl32.Vec3 {
	scaledVertex := mgl32.Vec3{vertex[0] * scale[0], vertex[1] * scale[1], vertex[2] * scale[2]}
	rotatedVertex := rotation.Rotate(scaledVertex)
	return rotatedVertex.Add(position)
}

func (g *Geometry) material() *Material {
	if g.Material == nil {
		return DefaultMaterial
	}
	return g.Material
}

// The queue accessors below accept a nil *Geometry. A nil handle has no
// bound, sits at the origin and sorts before every material.

func (g *Geometry) IsNil() bool {
	return g == nil
}

// WorldBound returns the world space bound or nil
func (g *Geometry) WorldBound() bounding.Volume {
	if g == nil {
		return nil
	}
	return g.worldBound
}

func (g *Geometry) WorldTranslation() mgl32.Vec3 {
	if g == nil {
		return mgl32.Vec3{}
	}
	return g.Position
}

func (g *Geometry) SortKey() int {
	if g == nil {
		return math.MinInt
	}
	return g.material().SortID()
}

// QueueDistance is the render queue's per-frame distance cache. The zero
// value reads as queue.UnsetDistance.
func (g *Geometry) QueueDistance() float32 {
	if g == nil || !g.hasQueueDistance {
		return queue.UnsetDistance
	}
	return g.queueDistance
}

func (g *Geometry) SetQueueDistance(d float32) {
	if g == nil {
		return
	}
	g.queueDistance = d
	g.hasQueueDistance = d != queue.UnsetDistance
}

var _ queue.Geometry = (*Geometry)(nil)
