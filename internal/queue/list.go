package queue

// DefaultSize is the initial capacity of a GeometryList
const DefaultSize = 32

// GeometryList is a growable list of geometries sorted with a
// GeometryComparator. It keeps a scratch buffer of the same capacity for
// merge sorting so a frame's sort does not allocate.
type GeometryList struct {
	geometries []Geometry
	scratch    []Geometry
	size       int
	comparator GeometryComparator
}

// NewGeometryList creates a list with DefaultSize capacity. A nil comparator
// keeps insertion order.
func NewGeometryList(comparator GeometryComparator) *GeometryList {
	return NewGeometryListSize(comparator, DefaultSize)
}

func NewGeometryListSize(comparator GeometryComparator, capacity int) *GeometryList {
	if capacity <= 0 {
		capacity = DefaultSize
	}
	if comparator == nil {
		comparator = NullComparator{}
	}
	return &GeometryList{
		geometries: make([]Geometry, capacity),
		scratch:    make([]Geometry, capacity),
		comparator: comparator,
	}
}

func (l *GeometryList) SetCamera(cam Camera) {
	l.comparator.SetCamera(cam)
}

func (l *GeometryList) Comparator() GeometryComparator {
	return l.comparator
}

func (l *GeometryList) Size() int {
	return l.size
}

func (l *GeometryList) Capacity() int {
	return len(l.geometries)
}

// Set replaces the geometry at index, 0 <= index < Size()
func (l *GeometryList) Set(index int, g Geometry) {
	l.geometries[index] = g
}

// Add appends g, doubling the storage when full
func (l *GeometryList) Add(g Geometry) {
	if l.size == len(l.geometries) {
		grown := make([]Geometry, len(l.geometries)*2)
		copy(grown, l.geometries[:l.size])
		l.geometries = grown
		l.scratch = make([]Geometry, len(grown))
	}
	l.geometries[l.size] = g
	l.size++
}

// Get returns the geometry at index, 0 <= index < Size()
func (l *GeometryList) Get(index int) Geometry {
	return l.geometries[index]
}

// Clear drops every reference so the scene graph can reclaim them
func (l *GeometryList) Clear() {
	clear(l.geometries[:l.size])
	l.size = 0
}

// Sort orders the list with its comparator. The sort is a stable bottom-up
// merge sort: geometries comparing equal keep their insertion order, which
// keeps equal-depth objects from swapping between frames.
func (l *GeometryList) Sort() {
	n := l.size
	if n <= 1 {
		return
	}

	src, dst := l.geometries[:n], l.scratch[:n]
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			l.merge(src, dst, lo, mid, hi)
		}
		src, dst = dst, src
	}

	// src holds the result after the last swap
	if &src[0] != &l.geometries[0] {
		copy(l.geometries[:n], src)
	}
	clear(l.scratch[:n])
}

// merge merges the sorted runs src[lo:mid] and src[mid:hi] into dst[lo:hi],
// taking from the left run on ties.
func (l *GeometryList) merge(src, dst []Geometry, lo, mid, hi int) {
	i, j := lo, mid
	for k := lo; k < hi; k++ {
		if i < mid && (j >= hi || l.comparator.Compare(src[i], src[j]) <= 0) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
	}
}
