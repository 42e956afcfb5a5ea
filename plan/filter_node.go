package plan

import "fmt"

// FilterNode filters rows from its child based on a predicate.
type FilterNode struct {
	Child     Node
	Predicate Expr
}

func NewFilterNode(child Node, predicate Expr) *FilterNode {
	return &FilterNode{
		Child:     child,
		Predicate: predicate,
	}
}

func (n *FilterNode) Children() []Node {
	return []Node{n.Child}
}

func (n *FilterNode) String() string {
	return fmt.Sprintf("Filter: %s", n.Predicate.String())
}
