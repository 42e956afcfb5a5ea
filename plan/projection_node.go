package plan

import (
	"fmt"
	"strings"
)

// ProjectionNode projects specific columns or expressions from its child.
type ProjectionNode struct {
	Child       Node
	Expressions []Expr
}

func NewProjectionNode(child Node, exprs []Expr) *ProjectionNode {
	return &ProjectionNode{
		Child:       child,
		Expressions: exprs,
	}
}

func (n *ProjectionNode) Children() []Node {
	return []Node{n.Child}
}

func (n *ProjectionNode) String() string {
	return fmt.Sprintf("Projection: %s", strings.Join(ExprTexts(n.Expressions), ", "))
}
