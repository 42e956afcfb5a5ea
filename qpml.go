package qpml

import (
	"io"

	"mit.edu/dsg/qpml/datasource"
	"mit.edu/dsg/qpml/diagram"
	"mit.edu/dsg/qpml/plan"
)

// Context bundles a table-source registry with a diagram builder. It covers
// the common flow end to end: register file-backed tables, build a plan
// against them, render the plan's diagram document.
type Context struct {
	Registry *datasource.Registry
	Builder  *diagram.Builder
}

func NewContext() *Context {
	return &Context{
		Registry: datasource.NewRegistry(),
		Builder:  diagram.NewBuilder(),
	}
}

// RegisterFile registers a single-file table, deriving the table name from
// the file stem ("orders" for "/data/orders.csv").
func (c *Context) RegisterFile(path string) (*datasource.FileTable, error) {
	return c.Registry.RegisterFile(path)
}

// Register adds a table source under its own name.
func (c *Context) Register(source plan.TableSource) error {
	return c.Registry.Register(source)
}

// Scan builds a scan node over a registered table.
func (c *Context) Scan(table string) (*plan.ScanNode, error) {
	return c.Registry.Scan(table)
}

// Render returns the YAML diagram document for the given plan.
func (c *Context) Render(n plan.Node) (string, error) {
	return c.Builder.Render(n)
}

// Encode writes the YAML diagram document for the given plan to w.
func (c *Context) Encode(w io.Writer, n plan.Node) error {
	return c.Builder.Encode(w, n)
}
