package queue

import (
	"fmt"
	"strings"
)

// Bucket selects the draw-order policy a geometry is rendered with
type Bucket int

const (
	// Opaque geometries are grouped by material then drawn front to back
	Opaque Bucket = iota
	// Transparent geometries are drawn back to front after the opaque and sky buckets
	Transparent
	// Sky geometries are drawn at the far plane, order is irrelevant
	Sky
	// Translucent geometries are drawn after post processing, back to front
	Translucent
	// Gui geometries are drawn last in screen space ordered by their Z
	Gui
	// Inherit takes the bucket of the parent. Never stored in a queue.
	Inherit
)

var bucketNames = [...]string{"Opaque", "Transparent", "Sky", "Translucent", "Gui", "Inherit"}

// Buckets lists the concrete buckets in the order a viewport renders them
var Buckets = []Bucket{Opaque, Sky, Transparent, Translucent, Gui}

func (b Bucket) String() string {
	if b < 0 || int(b) >= len(bucketNames) {
		return fmt.Sprintf("Bucket(%d)", int(b))
	}
	return bucketNames[b]
}

// ParseBucket resolves a bucket by name, ignoring case
func ParseBucket(name string) (Bucket, error) {
	for i, n := range bucketNames {
		if strings.EqualFold(n, name) {
			return Bucket(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedBucket, name)
}

// ShadowMode controls whether a geometry takes part in shadow map passes
type ShadowMode int

const (
	ShadowOff ShadowMode = iota
	ShadowCast
	ShadowReceive
	ShadowCastAndReceive
	// ShadowInherit takes the mode of the parent
	ShadowInherit
)

var shadowModeNames = [...]string{"Off", "Cast", "Receive", "CastAndReceive", "Inherit"}

func (m ShadowMode) String() string {
	if m < 0 || int(m) >= len(shadowModeNames) {
		return fmt.Sprintf("ShadowMode(%d)", int(m))
	}
	return shadowModeNames[m]
}

// ParseShadowMode resolves a shadow mode by name, ignoring case
func ParseShadowMode(name string) (ShadowMode, error) {
	for i, n := range shadowModeNames {
		if strings.EqualFold(n, name) {
			return ShadowMode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedShadowMode, name)
}
