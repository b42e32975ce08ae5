// Package scene holds the node hierarchy the render queue is filled from.
package scene

import (
	"GopherQueue/internal/queue"
	"GopherQueue/internal/renderer"
)

// Node groups geometries and child nodes. Bucket and shadow mode default to
// Inherit and resolve through the parents.
type Node struct {
	Name        string
	Active      bool
	QueueBucket queue.Bucket
	ShadowMode  queue.ShadowMode

	parent     *Node
	children   []*Node
	geometries []*renderer.Geometry
}

func NewNode(name string) *Node {
	return &Node{
		Name:        name,
		Active:      true,
		QueueBucket: queue.Inherit,
		ShadowMode:  queue.ShadowInherit,
	}
}

// AttachChild moves child under n, detaching it from its previous parent
func (n *Node) AttachChild(child *Node) {
	if child.parent != nil {
		child.parent.DetachChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

func (n *Node) DetachChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Attach adds a geometry to the node
func (n *Node) Attach(g *renderer.Geometry) {
	n.geometries = append(n.geometries, g)
}

func (n *Node) Detach(g *renderer.Geometry) {
	for i, o := range n.geometries {
		if o == g {
			n.geometries = append(n.geometries[:i], n.geometries[i+1:]...)
			return
		}
	}
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) Geometries() []*renderer.Geometry {
	return n.geometries
}

// ResolveBucket walks up until a concrete bucket is found. A root that
// inherits renders as Opaque.
func (n *Node) ResolveBucket() queue.Bucket {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.QueueBucket != queue.Inherit {
			return cur.QueueBucket
		}
	}
	return queue.Opaque
}

// ResolveShadowMode walks up until a concrete mode is found. A root that
// inherits casts no shadows.
func (n *Node) ResolveShadowMode() queue.ShadowMode {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.ShadowMode != queue.ShadowInherit {
			return cur.ShadowMode
		}
	}
	return queue.ShadowOff
}
