package host

import (
	"image"
	"sync"
)

// Node is an element of the scene graph. Nodes are identified by name within
// their parent; destroying a node destroys its subtree and runs destroy
// callbacks in registration order.
type Node struct {
	name string

	mu        sync.Mutex
	parent    *Node
	children  []*Node
	visible   bool
	destroyed bool
	onDestroy []func()
	content   Drawable
}

// Drawable is node content that can paint itself into a window-sized frame.
type Drawable interface {
	Draw(dst Painter, window image.Point)
}

// Painter is the drawing surface a Scene renders into.
type Painter interface {
	DrawImageScaled(img image.Image, x, y, width, height int)
}

// NewNode creates a detached, visible node.
func NewNode(name string) *Node {
	return &Node{name: name, visible: true}
}

// Name returns the node name.
func (n *Node) Name() string {
	return n.name
}

// SetContent binds what the node draws.
func (n *Node) SetContent(d Drawable) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.content = d
}

// AddChild appends child, detaching it from any previous parent.
func (n *Node) AddChild(child *Node) {
	if old := child.Parent(); old != nil {
		old.removeChild(child)
	}
	n.mu.Lock()
	n.children = append(n.children, child)
	n.mu.Unlock()

	child.mu.Lock()
	child.parent = n
	child.mu.Unlock()
}

// AddChildBehind inserts child before its siblings so it is drawn first.
func (n *Node) AddChildBehind(child *Node) {
	if old := child.Parent(); old != nil {
		old.removeChild(child)
	}
	n.mu.Lock()
	n.children = append([]*Node{child}, n.children...)
	n.mu.Unlock()

	child.mu.Lock()
	child.parent = n
	child.mu.Unlock()
}

// Parent returns the parent node, or nil.
func (n *Node) Parent() *Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.parent
}

// Children returns a snapshot of the child list.
func (n *Node) Children() []*Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]*Node(nil), n.children...)
}

// Child returns the first direct child named name.
func (n *Node) Child(name string) (*Node, bool) {
	for _, c := range n.Children() {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// SetVisible shows or hides the node and its subtree.
func (n *Node) SetVisible(v bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.visible = v
}

// Visible reports whether the node is shown.
func (n *Node) Visible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.visible
}

// OnDestroy registers fn to run when the node is destroyed. If it already
// was, fn runs immediately.
func (n *Node) OnDestroy(fn func()) {
	n.mu.Lock()
	if n.destroyed {
		n.mu.Unlock()
		fn()
		return
	}
	n.onDestroy = append(n.onDestroy, fn)
	n.mu.Unlock()
}

// Destroyed reports whether Destroy has run.
func (n *Node) Destroyed() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.destroyed
}

// Destroy removes the node from its parent and tears down its subtree,
// children first.
func (n *Node) Destroy() {
	n.mu.Lock()
	if n.destroyed {
		n.mu.Unlock()
		return
	}
	n.destroyed = true
	children := n.children
	n.children = nil
	parent := n.parent
	n.parent = nil
	callbacks := n.onDestroy
	n.onDestroy = nil
	n.content = nil
	n.mu.Unlock()

	for _, c := range children {
		c.Destroy()
	}
	if parent != nil {
		parent.removeChild(n)
	}
	for _, fn := range callbacks {
		fn()
	}
}

func (n *Node) removeChild(child *Node) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// draw paints the node and its visible children depth-first.
func (n *Node) draw(dst Painter, window image.Point) {
	n.mu.Lock()
	if !n.visible || n.destroyed {
		n.mu.Unlock()
		return
	}
	content := n.content
	children := append([]*Node(nil), n.children...)
	n.mu.Unlock()

	if content != nil {
		content.Draw(dst, window)
	}
	for _, c := range children {
		c.draw(dst, window)
	}
}

// Scene is a window-sized root node.
type Scene struct {
	root   *Node
	window image.Point
}

// NewScene creates an empty scene for a window of the given size.
func NewScene(width, height int) *Scene {
	return &Scene{root: NewNode("root"), window: image.Pt(width, height)}
}

// Root returns the root node.
func (s *Scene) Root() *Node {
	return s.root
}

// WindowSize returns the window size in pixels.
func (s *Scene) WindowSize() image.Point {
	return s.window
}

// Render paints every visible node into dst.
func (s *Scene) Render(dst Painter) {
	s.root.draw(dst, s.window)
}
