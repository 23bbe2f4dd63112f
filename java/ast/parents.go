package ast

// Parents is a read-only index from each node to its parent. It is built
// once from a root and never used to modify the tree. The parent of an
// attached comment is the node it is attached to.
type Parents struct {
	parent   map[Node]Node
	children map[Node][]Node
}

// NewParents indexes the tree rooted at root.
func NewParents(root Node) *Parents {
	p := &Parents{
		parent:   make(map[Node]Node),
		children: make(map[Node][]Node),
	}
	p.index(root)
	return p
}

func (p *Parents) index(n Node) {
	if c := n.base().Comment; c != nil {
		p.parent[c] = n
	}
	kids := Children(n)
	p.children[n] = kids
	for _, k := range kids {
		p.parent[k] = n
		p.index(k)
	}
}

// Parent returns the parent of n, or nil for the root and for nodes that
// are not part of the indexed tree.
func (p *Parents) Parent(n Node) Node {
	return p.parent[n]
}

// Children returns the indexed children of n.
func (p *Parents) Children(n Node) []Node {
	return p.children[n]
}

// Contains reports whether n was part of the indexed tree.
func (p *Parents) Contains(n Node) bool {
	_, ok := p.children[n]
	return ok
}

// Prev returns the sibling before n in its parent's children.
func (p *Parents) Prev(n Node) Node {
	siblings := p.children[p.parent[n]]
	for i, s := range siblings {
		if s == n {
			if i == 0 {
				return nil
			}
			return siblings[i-1]
		}
	}
	return nil
}

// Next returns the sibling after n in its parent's children.
func (p *Parents) Next(n Node) Node {
	siblings := p.children[p.parent[n]]
	for i, s := range siblings {
		if s == n {
			if i == len(siblings)-1 {
				return nil
			}
			return siblings[i+1]
		}
	}
	return nil
}

// Ancestor returns the nearest proper ancestor of n for which match
// reports true.
func (p *Parents) Ancestor(n Node, match func(Node) bool) Node {
	for a := p.parent[n]; a != nil; a = p.parent[a] {
		if match(a) {
			return a
		}
	}
	return nil
}
