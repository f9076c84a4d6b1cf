package scene

import (
	"github.com/matt-g-everett/rtanim/anim"
)

// A Node is one retained element of the scene. Its animatable properties
// exist twice: a staging copy the control thread writes and a committed
// copy the render thread reads. The two meet only at the tree's sync point.
type Node struct {
	name string

	stagingProperties anim.Properties
	properties        anim.Properties
	dirty             anim.DirtyMask

	stagingAnimators []anim.Animator
	animators        []anim.Animator
	animatorsChanged bool

	children []*Node
}

// NewNode creates a detached node with identity properties.
func NewNode(name string) *Node {
	n := new(Node)
	n.name = name
	n.stagingProperties = anim.DefaultProperties()
	n.properties = anim.DefaultProperties()
	return n
}

// Name returns the node's name.
func (n *Node) Name() string {
	return n.name
}

// AddChild attaches a child node. Control side.
func (n *Node) AddChild(child *Node) {
	n.children = append(n.children, child)
}

// StagingProperties is the control-side property copy.
func (n *Node) StagingProperties() *anim.Properties {
	return &n.stagingProperties
}

// RenderProperties is the committed property copy.
func (n *Node) RenderProperties() *anim.Properties {
	return &n.properties
}

// AnimatorProperties is the committed copy as written by animators.
func (n *Node) AnimatorProperties() *anim.Properties {
	return &n.properties
}

// IsPropertyDirty reports whether a staging value covered by mask has a
// pending edit.
func (n *Node) IsPropertyDirty(mask anim.DirtyMask) bool {
	return n.dirty&mask != 0
}

// SetProperty writes a staging value and marks it dirty. The render side
// sees it after the next sync.
func (n *Node) SetProperty(property anim.Property, value float64) {
	n.stagingProperties.Set(property, value)
	n.dirty |= anim.DirtyBit(property)
}

// AddAnimator attaches an animator on the control side. The animator joins
// the render-side list at the next sync.
func (n *Node) AddAnimator(a anim.Animator) {
	a.OnAttach(n)
	n.dirty |= a.DirtyMask()
	n.stagingAnimators = append(n.stagingAnimators, a)
	n.animatorsChanged = true
}

// ClearAnimators detaches every animator. Running animators are abandoned,
// not rewound.
func (n *Node) ClearAnimators() {
	n.stagingAnimators = n.stagingAnimators[:0]
	n.animatorsChanged = true
}

// pushStaging commits staged property values and animator list changes,
// then runs each animator's own commit step. Called under the tree's sync
// barrier.
func (n *Node) pushStaging(info *anim.TreeInfo) {
	if n.dirty != 0 {
		n.properties = n.stagingProperties
		n.dirty = 0
	}

	// Finished animators fall out of both lists here.
	pruned := false
	for _, a := range n.stagingAnimators {
		if a.PlayState() == anim.Finished {
			pruned = true
			break
		}
	}
	if pruned {
		kept := n.stagingAnimators[:0]
		for _, a := range n.stagingAnimators {
			if a.PlayState() != anim.Finished {
				kept = append(kept, a)
			}
		}
		n.stagingAnimators = kept
		n.animatorsChanged = true
	}
	if n.animatorsChanged {
		n.animators = append(n.animators[:0:0], n.stagingAnimators...)
		n.animatorsChanged = false
	}

	for _, a := range n.animators {
		a.PushStaging(n, info)
	}
	for _, c := range n.children {
		c.pushStaging(info)
	}
}

// animate evaluates every committed animator once for this frame, dropping
// the ones that finish. Render side only.
func (n *Node) animate(info *anim.TreeInfo) {
	if len(n.animators) > 0 {
		remaining := n.animators[:0]
		for _, a := range n.animators {
			if !a.Animate(n, info) {
				remaining = append(remaining, a)
			}
		}
		n.animators = remaining
	}
	for _, c := range n.children {
		c.animate(info)
	}
}

// visit walks the node and its descendants depth first.
func (n *Node) visit(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.visit(fn)
	}
}
