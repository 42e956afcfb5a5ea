package plan

import "fmt"

// Expr represents a node in an expression tree.
// Expressions are stateless and immutable plan nodes; plans only need their
// canonical text form, so expressions carry no evaluation machinery.
type Expr interface {
	// String returns the canonical text form of the expression.
	String() string
}

// ExprTexts renders each expression to its canonical text form, preserving
// order.
func ExprTexts(exprs []Expr) []string {
	out := make([]string, len(exprs))
	for i, e := range exprs {
		out[i] = e.String()
	}
	return out
}

// ColumnExpr references a column of an input relation by name.
// The name may be qualified, e.g. "a.id".
type ColumnExpr struct {
	name string
}

func NewColumnExpr(name string) *ColumnExpr {
	return &ColumnExpr{name: name}
}

func (e *ColumnExpr) String() string {
	return e.name
}

// ConstantExpr is a literal value.
type ConstantExpr struct {
	text     string
	isString bool
}

func NewIntConstant(v int64) *ConstantExpr {
	return &ConstantExpr{text: fmt.Sprintf("%d", v)}
}

func NewStringConstant(s string) *ConstantExpr {
	return &ConstantExpr{text: s, isString: true}
}

func (e *ConstantExpr) String() string {
	if e.isString {
		return fmt.Sprintf("'%s'", e.text)
	}
	return e.text
}

type ComparisonType int

const (
	Equal ComparisonType = iota
	NotEqual
	GreaterThan
	LessThan
	GreaterThanOrEqual
	LessThanOrEqual
)

func (c ComparisonType) String() string {
	switch c {
	case Equal:
		return "="
	case NotEqual:
		return "!="
	case GreaterThan:
		return ">"
	case LessThan:
		return "<"
	case GreaterThanOrEqual:
		return ">="
	case LessThanOrEqual:
		return "<="
	}
	return "???"
}

type ComparisonExpr struct {
	left     Expr
	right    Expr
	compType ComparisonType
}

func NewComparisonExpr(left Expr, right Expr, compType ComparisonType) *ComparisonExpr {
	return &ComparisonExpr{
		left:     left,
		right:    right,
		compType: compType,
	}
}

func (e *ComparisonExpr) String() string {
	return fmt.Sprintf("%s %s %s", e.left.String(), e.compType.String(), e.right.String())
}

type BinaryLogicType int

const (
	And BinaryLogicType = iota
	Or
)

func (l BinaryLogicType) String() string {
	switch l {
	case And:
		return "AND"
	case Or:
		return "OR"
	}
	return "???"
}

type BinaryLogicExpr struct {
	left      Expr
	right     Expr
	logicType BinaryLogicType
}

func NewBinaryLogicExpr(left Expr, right Expr, logicType BinaryLogicType) *BinaryLogicExpr {
	return &BinaryLogicExpr{
		left:      left,
		right:     right,
		logicType: logicType,
	}
}

func (e *BinaryLogicExpr) String() string {
	return fmt.Sprintf("%s %s %s", e.left.String(), e.logicType.String(), e.right.String())
}
