package diagram

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"

	"mit.edu/dsg/qpml/common"
	"mit.edu/dsg/qpml/plan"
)

// Operator tags for the plan variants the builder classifies directly.
// Any other variant is tagged with its concrete type name.
const (
	OperatorScan       = "scan"
	OperatorJoin       = "join"
	OperatorProjection = "projection"
	OperatorFilter     = "filter"
)

// FormatterFunc computes the title and operator tag for a plan node.
// Formatters are consulted for variants outside the built-in dispatch set.
type FormatterFunc func(n plan.Node) (title, operator string)

// Builder converts plan trees into diagram trees. With no custom formatters
// registered it behaves as a pure function: the four built-in variants get
// their fixed tags and everything else falls back to its type name, so
// sharing one Builder across goroutines needs no coordination.
type Builder struct {
	formatters *xsync.MapOf[string, FormatterFunc]
}

func NewBuilder() *Builder {
	return &Builder{formatters: xsync.NewMapOf[string, FormatterFunc]()}
}

// RegisterFormatter installs a formatter for the plan node type named
// typeName (the concrete type's unqualified name, e.g. "SortNode"). Safe to
// call concurrently with Build. Built-in variants are classified before
// formatters are consulted and cannot be overridden.
func (b *Builder) RegisterFormatter(typeName string, f FormatterFunc) {
	b.formatters.Store(typeName, f)
}

// Build converts the plan rooted at n into an isomorphic diagram tree:
// same shape, same child count and order at every level. Children are fully
// resolved before the parent node is assembled.
func (b *Builder) Build(n plan.Node) (Node, error) {
	common.Assert(n != nil, "Build called with nil plan node")

	children := n.Children()
	inputs := make([]Node, 0, len(children))
	for _, c := range children {
		in, err := b.Build(c)
		if err != nil {
			return Node{}, err
		}
		inputs = append(inputs, in)
	}

	title, operator, err := b.classify(n)
	if err != nil {
		return Node{}, err
	}
	return Node{Title: title, Operator: operator, Inputs: inputs}, nil
}

func (b *Builder) classify(n plan.Node) (title, operator string, err error) {
	switch p := n.(type) {
	case *plan.ScanNode:
		fs, ok := p.Table.(plan.FileSource)
		if !ok {
			return "", "", common.QPMLError{
				Code:      common.UnexpectedSourceError,
				ErrString: fmt.Sprintf("table %q is not file-backed", p.Table.Name()),
			}
		}
		return filepath.Base(fs.RootPaths()[0]), OperatorScan, nil
	case *plan.JoinNode:
		return fmt.Sprintf("%s Join: %s", p.Type.String(), p.ConditionText()), OperatorJoin, nil
	case *plan.ProjectionNode:
		return "Projection: " + strings.Join(plan.ExprTexts(p.Expressions), ", "), OperatorProjection, nil
	case *plan.FilterNode:
		return "Filter: " + p.Predicate.String(), OperatorFilter, nil
	}

	typeName := nodeTypeName(n)
	if f, ok := b.formatters.Load(typeName); ok {
		title, operator = f(n)
		return title, operator, nil
	}
	return n.String(), typeName, nil
}

// nodeTypeName returns the concrete type name of a plan node, without
// package qualifier or pointer marker. Anonymous types have no name, so the
// full type description stands in to keep the tag non-empty.
func nodeTypeName(n plan.Node) string {
	t := reflect.TypeOf(n)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
