package game

// Quadtree tuning.
const (
	QuadCapacity = 8
	QuadMaxDepth = 6
)

// RectF is an axis-aligned rectangle in canvas-pixel space.
type RectF struct {
	X, Y float64
	W, H float64
}

// Collides reports whether a and b overlap on both axes. Touching edges do not
// count.
func Collides(a, b RectF) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

func (r RectF) Intersects(o RectF) bool { return Collides(r, o) }

func (r RectF) Contains(o RectF) bool {
	return o.X >= r.X && o.X+o.W <= r.X+r.W && o.Y >= r.Y && o.Y+o.H <= r.Y+r.H
}

// HasPoint reports whether (x, y) lies inside r, edges included.
func (r RectF) HasPoint(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Center returns the rectangle's midpoint.
func (r RectF) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

type quadItem struct {
	idx    int
	bounds RectF
}

// QuadNode is a simple quadtree over pool indices. Items straddling a split
// stay in the parent.
type QuadNode struct {
	bounds RectF
	depth  int
	items  []quadItem
	child  [4]*QuadNode
}

func NewQuadNode(bounds RectF, depth int) *QuadNode {
	return &QuadNode{
		bounds: bounds,
		depth:  depth,
		items:  make([]quadItem, 0, QuadCapacity),
	}
}

func (n *QuadNode) Insert(idx int, bounds RectF) {
	if n.child[0] != nil {
		if c := n.childThatContains(bounds); c != nil {
			c.Insert(idx, bounds)
			return
		}
	}

	n.items = append(n.items, quadItem{idx: idx, bounds: bounds})

	if len(n.items) > QuadCapacity && n.depth < QuadMaxDepth {
		n.subdivide()
		kept := n.items[:0]
		for _, it := range n.items {
			if c := n.childThatContains(it.bounds); c != nil {
				c.Insert(it.idx, it.bounds)
			} else {
				kept = append(kept, it)
			}
		}
		n.items = kept
	}
}

// Query appends the index of every item overlapping r. Order is unspecified.
func (n *QuadNode) Query(r RectF, out *[]int) {
	if !n.bounds.Intersects(r) {
		return
	}
	for _, it := range n.items {
		if it.bounds.Intersects(r) {
			*out = append(*out, it.idx)
		}
	}
	if n.child[0] == nil {
		return
	}
	for i := 0; i < 4; i++ {
		n.child[i].Query(r, out)
	}
}

func (n *QuadNode) subdivide() {
	if n.child[0] != nil {
		return
	}
	hw := n.bounds.W * 0.5
	hh := n.bounds.H * 0.5
	x, y := n.bounds.X, n.bounds.Y
	n.child[0] = NewQuadNode(RectF{X: x, Y: y, W: hw, H: hh}, n.depth+1)
	n.child[1] = NewQuadNode(RectF{X: x + hw, Y: y, W: hw, H: hh}, n.depth+1)
	n.child[2] = NewQuadNode(RectF{X: x, Y: y + hh, W: hw, H: hh}, n.depth+1)
	n.child[3] = NewQuadNode(RectF{X: x + hw, Y: y + hh, W: hw, H: hh}, n.depth+1)
}

func (n *QuadNode) childThatContains(b RectF) *QuadNode {
	for i := 0; i < 4; i++ {
		c := n.child[i]
		if c != nil && c.bounds.Contains(b) {
			return c
		}
	}
	return nil
}
