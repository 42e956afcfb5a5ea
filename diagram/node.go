package diagram

// Node is one operator in a plan diagram: a human-readable title, a short
// operator-category tag, and the ordered child diagrams feeding into it.
// Input order mirrors the plan's child order (left join input first).
// Declaration order is the serialized field order.
type Node struct {
	Title    string `yaml:"title"`
	Operator string `yaml:"operator"`
	Inputs   []Node `yaml:"inputs"`
}

// Document wraps a diagram root under a single named top-level key.
type Document struct {
	Diagram Node `yaml:"diagram"`
}
