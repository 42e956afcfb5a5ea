package plan

import (
	"fmt"
	"strings"
)

type AggregatorType int

const (
	AggCount AggregatorType = iota
	AggSum
	AggMin
	AggMax
)

func (a AggregatorType) String() string {
	switch a {
	case AggCount:
		return "COUNT"
	case AggSum:
		return "SUM"
	case AggMin:
		return "MIN"
	case AggMax:
		return "MAX"
	}
	return "???"
}

type AggregateClause struct {
	Type AggregatorType
	Expr Expr
}

func (c AggregateClause) String() string {
	return fmt.Sprintf("%s(%s)", c.Type.String(), c.Expr.String())
}

// AggregateNode represents a group-by and aggregation operation.
type AggregateNode struct {
	Child      Node
	GroupBy    []Expr
	Aggregates []AggregateClause
}

func NewAggregateNode(child Node, groupBy []Expr, aggregates []AggregateClause) *AggregateNode {
	return &AggregateNode{
		Child:      child,
		GroupBy:    groupBy,
		Aggregates: aggregates,
	}
}

func (n *AggregateNode) Children() []Node {
	return []Node{n.Child}
}

func (n *AggregateNode) String() string {
	aggs := make([]string, len(n.Aggregates))
	for i, c := range n.Aggregates {
		aggs[i] = c.String()
	}
	return fmt.Sprintf("Aggregate: groupBy=[%s], aggr=[%s]",
		strings.Join(ExprTexts(n.GroupBy), ", "), strings.Join(aggs, ", "))
}
