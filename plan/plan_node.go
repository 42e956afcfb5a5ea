package plan

// Node represents the static structure of a query plan.
// It is immutable and contains the plan tree structure.
type Node interface {
	// Children returns the child plan nodes in data-flow order.
	Children() []Node

	// String returns a single-line description of the plan node.
	String() string
}

// TableSource identifies the data a scan reads from. Concrete
// implementations are supplied by whatever registered the table.
type TableSource interface {
	// Name returns the name the source was registered under.
	Name() string
}

// FileSource is a TableSource backed by files on a filesystem.
type FileSource interface {
	TableSource

	// RootPaths returns the root files or directories of the source in
	// registration order. Never empty.
	RootPaths() []string
}
