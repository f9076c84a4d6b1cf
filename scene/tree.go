package scene

import (
	"sync"

	"github.com/matt-g-everett/rtanim/anim"
)

// A Tree owns the root node and the synchronization barrier between the
// control thread and the render thread. Control-side mutation and the sync
// point are serialized by the barrier; animators themselves never lock.
type Tree struct {
	mu   sync.Mutex
	root *Node
}

// NewTree creates a tree with an empty root node.
func NewTree() *Tree {
	return &Tree{root: NewNode("root")}
}

// Stage runs a control-side mutation under the sync barrier. All staging
// writes (properties, animators, children) go through here.
func (t *Tree) Stage(mutate func(root *Node)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	mutate(t.root)
}

// Sync is the commit point. Staged state becomes visible to the render
// side; newly started animators activate against info's frame time. Called
// once per frame from the render loop, before Animate.
func (t *Tree) Sync(info *anim.TreeInfo) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.root.pushStaging(info)
}

// Animate evaluates every animator in the tree once for this frame. Render
// side only; committed state is not shared with the control thread between
// syncs, so no lock is taken.
func (t *Tree) Animate(info *anim.TreeInfo) {
	t.root.animate(info)
}

// Visit walks the committed tree depth first. Render side only.
func (t *Tree) Visit(fn func(*Node)) {
	t.root.visit(fn)
}
