package queue

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestAddToQueueRoutesByBucket(t *testing.T) {
	q := NewRenderQueue()
	for _, b := range Buckets {
		require.NoError(t, q.AddToQueue(newGeom(b.String(), 0, mgl32.Vec3{}), b))
	}

	for _, b := range Buckets {
		list, err := q.List(b)
		require.NoError(t, err)
		require.Equal(t, 1, list.Size(), b.String())
		assert.Equal(t, b.String(), list.Get(0).(*testGeometry).name)
	}
}

func TestAddToQueueRejectsInherit(t *testing.T) {
	q := NewRenderQueue()

	err := q.AddToQueue(newGeom("g", 0, mgl32.Vec3{}), Inherit)
	assert.True(t, errors.Is(err, ErrUnsupportedBucket))

	err = q.AddToQueue(newGeom("g", 0, mgl32.Vec3{}), Bucket(42))
	assert.True(t, errors.Is(err, ErrUnsupportedBucket))
}

func TestBucketKeyedOperationsFailFast(t *testing.T) {
	q := NewRenderQueue()
	rm := &recorder{}

	_, err := q.IsQueueEmpty(Inherit)
	assert.ErrorIs(t, err, ErrUnsupportedBucket)
	assert.ErrorIs(t, q.Render(Inherit, rm, forward, true), ErrUnsupportedBucket)
	assert.ErrorIs(t, q.SetGeometryComparator(Bucket(-1), NullComparator{}), ErrUnsupportedBucket)
	_, err = q.GeometryComparator(Inherit)
	assert.ErrorIs(t, err, ErrUnsupportedBucket)
	assert.ErrorIs(t, q.Render(Opaque, nil, forward, true), ErrNilRenderManager)
}

func TestAddToShadowQueue(t *testing.T) {
	q := NewRenderQueue()
	both := newGeom("both", 0, mgl32.Vec3{})
	require.NoError(t, q.AddToShadowQueue(both, ShadowCastAndReceive))

	cast, err := q.ShadowQueueContent(ShadowCast)
	require.NoError(t, err)
	recv, err := q.ShadowQueueContent(ShadowReceive)
	require.NoError(t, err)

	require.Equal(t, 1, cast.Size())
	require.Equal(t, 1, recv.Size())
	assert.Same(t, both, cast.Get(0))
	assert.Same(t, both, recv.Get(0))

	require.NoError(t, q.AddToShadowQueue(newGeom("c", 0, mgl32.Vec3{}), ShadowCast))
	require.NoError(t, q.AddToShadowQueue(newGeom("r", 0, mgl32.Vec3{}), ShadowReceive))
	require.NoError(t, q.AddToShadowQueue(newGeom("off", 0, mgl32.Vec3{}), ShadowOff))
	require.NoError(t, q.AddToShadowQueue(newGeom("inherit", 0, mgl32.Vec3{}), ShadowInherit))
	assert.Equal(t, 2, cast.Size())
	assert.Equal(t, 2, recv.Size())

	assert.ErrorIs(t, q.AddToShadowQueue(both, ShadowMode(9)), ErrUnsupportedShadowMode)
}

func TestRenderShadowOnlyCastOrReceive(t *testing.T) {
	q := NewRenderQueue()
	rm := &recorder{}
	require.NoError(t, q.AddToShadowQueue(newGeom("far", 0, mgl32.Vec3{0, 0, 8}), ShadowCast))
	require.NoError(t, q.AddToShadowQueue(newGeom("near", 0, mgl32.Vec3{0, 0, 2}), ShadowCast))

	require.NoError(t, q.RenderShadow(ShadowCast, rm, forward, true))
	assert.Equal(t, []string{"near", "far"}, rm.names())

	cast, _ := q.ShadowQueueContent(ShadowCast)
	assert.Equal(t, 0, cast.Size())

	for _, mode := range []ShadowMode{ShadowOff, ShadowCastAndReceive, ShadowInherit} {
		assert.ErrorIs(t, q.RenderShadow(mode, rm, forward, true), ErrUnsupportedShadowMode, mode.String())
	}
}

func TestRenderSortsAndClears(t *testing.T) {
	q := NewRenderQueue()
	r1 := newGeom("R1", 2, mgl32.Vec3{0, 0, 5})
	r2 := newGeom("R2", 1, mgl32.Vec3{0, 0, 1})
	r3 := newGeom("R3", 1, mgl32.Vec3{0, 0, 3})
	for _, g := range []*testGeometry{r1, r2, r3} {
		require.NoError(t, q.AddToQueue(g, Opaque))
	}

	rm := &recorder{}
	require.NoError(t, q.Render(Opaque, rm, forward, true))

	assert.Equal(t, []string{"R2", "R3", "R1"}, rm.names())
	empty, err := q.IsQueueEmpty(Opaque)
	require.NoError(t, err)
	assert.True(t, empty)

	for _, g := range []*testGeometry{r1, r2, r3} {
		assert.Equal(t, UnsetDistance, g.QueueDistance(), "queue distance should be reset after rendering")
	}
}

func TestRenderSkipsTypedNilGeometry(t *testing.T) {
	q := NewRenderQueue()
	var missing *testGeometry
	near := newGeom("near", 0, mgl32.Vec3{0, 0, 1})
	far := newGeom("far", 0, mgl32.Vec3{0, 0, 9})
	for _, g := range []Geometry{far, missing, near} {
		require.NoError(t, q.AddToQueue(g, Opaque))
	}

	rm := &recorder{}
	require.NotPanics(t, func() {
		require.NoError(t, q.Render(Opaque, rm, forward, true))
	})
	assert.Equal(t, []string{"near", "far"}, rm.names())
}

func TestRenderWithoutClearKeepsContent(t *testing.T) {
	q := NewRenderQueue()
	require.NoError(t, q.AddToQueue(newGeom("b", 1, mgl32.Vec3{0, 0, 4}), Opaque))
	require.NoError(t, q.AddToQueue(newGeom("a", 1, mgl32.Vec3{0, 0, 2}), Opaque))

	first, second := &recorder{}, &recorder{}
	require.NoError(t, q.Render(Opaque, first, forward, false))
	require.NoError(t, q.Render(Opaque, second, forward, false))

	assert.Equal(t, []string{"a", "b"}, first.names())
	assert.Equal(t, first.names(), second.names())
	empty, _ := q.IsQueueEmpty(Opaque)
	assert.False(t, empty)
}

func TestRenderTransparentBackToFront(t *testing.T) {
	q := NewRenderQueue()
	require.NoError(t, q.AddToQueue(newGeom("near", 0, mgl32.Vec3{0, 0, 1}), Transparent))
	require.NoError(t, q.AddToQueue(newGeom("far", 0, mgl32.Vec3{0, 0, 30}), Transparent))
	require.NoError(t, q.AddToQueue(newGeom("mid", 0, mgl32.Vec3{0, 0, 10}), Transparent))

	rm := &recorder{}
	require.NoError(t, q.Render(Transparent, rm, forward, true))
	assert.Equal(t, []string{"far", "mid", "near"}, rm.names())
}

func TestRenderSkyKeepsInsertionOrder(t *testing.T) {
	q := NewRenderQueue()
	for _, name := range []string{"dome", "sun", "clouds"} {
		require.NoError(t, q.AddToQueue(newGeom(name, 0, mgl32.Vec3{}), Sky))
	}

	rm := &recorder{}
	require.NoError(t, q.Render(Sky, rm, forward, true))
	assert.Equal(t, []string{"dome", "sun", "clouds"}, rm.names())
}

func TestSetGeometryComparatorDiscardsContent(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	q := NewRenderQueue(WithLogger(zap.New(core)))

	require.NoError(t, q.AddToQueue(newGeom("g", 0, mgl32.Vec3{}), Gui))
	require.NoError(t, q.SetGeometryComparator(Gui, &GuiComparator{Descending: true}))

	empty, err := q.IsQueueEmpty(Gui)
	require.NoError(t, err)
	assert.True(t, empty)

	cmp, err := q.GeometryComparator(Gui)
	require.NoError(t, err)
	assert.True(t, cmp.(*GuiComparator).Descending)
	assert.Equal(t, 1, logs.Len())

	// replacing on an empty bucket is silent
	require.NoError(t, q.SetGeometryComparator(Gui, NullComparator{}))
	assert.Equal(t, 1, logs.Len())
}

func TestClearEmptiesEverything(t *testing.T) {
	q := NewRenderQueue(WithListSize(4))
	for _, b := range Buckets {
		for i := 0; i < 6; i++ {
			require.NoError(t, q.AddToQueue(newGeom("g", i, mgl32.Vec3{}), b))
		}
	}
	require.NoError(t, q.AddToShadowQueue(newGeom("s", 0, mgl32.Vec3{}), ShadowCastAndReceive))

	q.Clear()

	for _, b := range Buckets {
		empty, err := q.IsQueueEmpty(b)
		require.NoError(t, err)
		assert.True(t, empty, b.String())
		list, _ := q.List(b)
		for i := range list.geometries {
			assert.Nil(t, list.geometries[i])
		}
	}
	for _, mode := range []ShadowMode{ShadowCast, ShadowReceive} {
		list, err := q.ShadowQueueContent(mode)
		require.NoError(t, err)
		assert.Equal(t, 0, list.Size())
	}
}

func TestParseBucketAndShadowMode(t *testing.T) {
	b, err := ParseBucket("translucent")
	require.NoError(t, err)
	assert.Equal(t, Translucent, b)

	_, err = ParseBucket("floor")
	assert.ErrorIs(t, err, ErrUnsupportedBucket)

	m, err := ParseShadowMode("castandreceive")
	require.NoError(t, err)
	assert.Equal(t, ShadowCastAndReceive, m)

	_, err = ParseShadowMode("sometimes")
	assert.ErrorIs(t, err, ErrUnsupportedShadowMode)

	assert.Equal(t, "Bucket(9)", Bucket(9).String())
	assert.Equal(t, "Receive", ShadowReceive.String())
}
