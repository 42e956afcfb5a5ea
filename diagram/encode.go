package diagram

import (
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"mit.edu/dsg/qpml/plan"
)

// encodeIndent matches the two-space block style of diagram documents.
const encodeIndent = 2

// BuildDocument wraps the diagram for n in a Document envelope.
func (b *Builder) BuildDocument(n plan.Node) (Document, error) {
	root, err := b.Build(n)
	if err != nil {
		return Document{}, err
	}
	return Document{Diagram: root}, nil
}

// Encode writes the diagram document for n to w as block-style YAML.
// Encoder failures are returned unmodified.
func (b *Builder) Encode(w io.Writer, n plan.Node) error {
	doc, err := b.BuildDocument(n)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(encodeIndent)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// Render returns the diagram document for n as a string.
func (b *Builder) Render(n plan.Node) (string, error) {
	var sb strings.Builder
	if err := b.Encode(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// defaultBuilder serves the package-level entry points. It never has custom
// formatters registered.
var defaultBuilder = NewBuilder()

// Build converts a plan tree into an isomorphic diagram tree.
func Build(n plan.Node) (Node, error) {
	return defaultBuilder.Build(n)
}

// Encode writes the YAML diagram document for n to w.
func Encode(w io.Writer, n plan.Node) error {
	return defaultBuilder.Encode(w, n)
}

// Render returns the YAML diagram document for n.
func Render(n plan.Node) (string, error) {
	return defaultBuilder.Render(n)
}
