package plan

import "fmt"

// LimitNode limits the number of output rows.
type LimitNode struct {
	Child Node
	Limit int
}

func NewLimitNode(child Node, limit int) *LimitNode {
	return &LimitNode{
		Child: child,
		Limit: limit,
	}
}

func (n *LimitNode) Children() []Node {
	return []Node{n.Child}
}

func (n *LimitNode) String() string {
	return fmt.Sprintf("Limit: %d", n.Limit)
}
