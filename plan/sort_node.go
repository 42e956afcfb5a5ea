package plan

import (
	"fmt"
	"strings"
)

type SortDirection int

const (
	SortOrderAscending SortDirection = iota
	SortOrderDescending
)

func (d SortDirection) String() string {
	if d == SortOrderDescending {
		return "DESC"
	}
	return "ASC"
}

type OrderByClause struct {
	Expr      Expr
	Direction SortDirection
}

// SortNode sorts the input rows.
type SortNode struct {
	Child   Node
	OrderBy []OrderByClause
}

func NewSortNode(child Node, orderBy []OrderByClause) *SortNode {
	return &SortNode{
		Child:   child,
		OrderBy: orderBy,
	}
}

func (n *SortNode) Children() []Node {
	return []Node{n.Child}
}

func (n *SortNode) String() string {
	keys := make([]string, len(n.OrderBy))
	for i, c := range n.OrderBy {
		keys[i] = fmt.Sprintf("%s %s", c.Expr.String(), c.Direction.String())
	}
	return fmt.Sprintf("Sort: %s", strings.Join(keys, ", "))
}
