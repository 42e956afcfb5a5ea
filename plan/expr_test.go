package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExprText checks canonical text rendering for every expression variant.
func TestExprText(t *testing.T) {
	age := NewColumnExpr("age")
	aID := NewColumnExpr("a.id")
	bID := NewColumnExpr("b.id")

	tests := []struct {
		name     string
		expr     Expr
		expected string
	}{
		{"column", age, "age"},
		{"qualified column", aID, "a.id"},
		{"int constant", NewIntConstant(30), "30"},
		{"negative int constant", NewIntConstant(-7), "-7"},
		{"string constant", NewStringConstant("alice"), "'alice'"},
		{"equal", NewComparisonExpr(aID, bID, Equal), "a.id = b.id"},
		{"not equal", NewComparisonExpr(aID, bID, NotEqual), "a.id != b.id"},
		{"greater than", NewComparisonExpr(age, NewIntConstant(30), GreaterThan), "age > 30"},
		{"less or equal", NewComparisonExpr(age, NewIntConstant(30), LessThanOrEqual), "age <= 30"},
		{"and", NewBinaryLogicExpr(
			NewComparisonExpr(age, NewIntConstant(30), GreaterThan),
			NewComparisonExpr(aID, bID, Equal),
			And,
		), "age > 30 AND a.id = b.id"},
		{"or", NewBinaryLogicExpr(
			NewComparisonExpr(age, NewIntConstant(18), LessThan),
			NewComparisonExpr(age, NewIntConstant(65), GreaterThanOrEqual),
			Or,
		), "age < 18 OR age >= 65"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.expr.String())
		})
	}
}

func TestExprTexts(t *testing.T) {
	texts := ExprTexts([]Expr{NewColumnExpr("id"), NewColumnExpr("name")})
	assert.Equal(t, []string{"id", "name"}, texts)

	assert.Empty(t, ExprTexts(nil))
}
