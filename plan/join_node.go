package plan

import "fmt"

type JoinType int

const (
	InnerJoin JoinType = iota
	LeftJoin
	RightJoin
	FullJoin
	LeftSemiJoin
	LeftAntiJoin
)

func (t JoinType) String() string {
	switch t {
	case InnerJoin:
		return "Inner"
	case LeftJoin:
		return "Left"
	case RightJoin:
		return "Right"
	case FullJoin:
		return "Full"
	case LeftSemiJoin:
		return "LeftSemi"
	case LeftAntiJoin:
		return "LeftAnti"
	}
	return "???"
}

// JoinNode represents a join between two children. The left child is the
// first input and the right child the second; the order carries data-flow
// meaning and is preserved everywhere the plan is rendered.
type JoinNode struct {
	Left      Node
	Right     Node
	Type      JoinType
	Condition Expr
}

func NewJoinNode(left, right Node, joinType JoinType, condition Expr) *JoinNode {
	return &JoinNode{
		Left:      left,
		Right:     right,
		Type:      joinType,
		Condition: condition,
	}
}

// ConditionText returns the join condition in canonical text form, or the
// empty string for an unconditioned join (e.g. a cross join).
func (n *JoinNode) ConditionText() string {
	if n.Condition == nil {
		return ""
	}
	return n.Condition.String()
}

func (n *JoinNode) Children() []Node {
	return []Node{n.Left, n.Right}
}

func (n *JoinNode) String() string {
	return fmt.Sprintf("%s Join: %s", n.Type.String(), n.ConditionText())
}
