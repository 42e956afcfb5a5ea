package datasource

import (
	"path/filepath"
	"strings"

	"mit.edu/dsg/qpml/common"
	"mit.edu/dsg/qpml/plan"
)

var (
	_ plan.FileSource  = (*FileTable)(nil)
	_ plan.TableSource = (*MemTable)(nil)
)

// FileTable is a table source backed by files or directories on a
// filesystem, e.g. one Parquet or CSV file per table.
type FileTable struct {
	name      string
	rootPaths []string
}

func NewFileTable(name string, rootPaths ...string) *FileTable {
	common.Assert(len(rootPaths) > 0, "file table %q needs at least one root path", name)
	return &FileTable{name: name, rootPaths: rootPaths}
}

func (t *FileTable) Name() string {
	return t.name
}

// RootPaths returns the root paths in registration order.
func (t *FileTable) RootPaths() []string {
	return t.rootPaths
}

// MemTable is an in-memory table source. It has no filesystem location, so
// scans over it cannot be classified as file-backed.
type MemTable struct {
	name string
}

func NewMemTable(name string) *MemTable {
	return &MemTable{name: name}
}

func (t *MemTable) Name() string {
	return t.name
}

// TableNameFromPath derives a table name from a file path by stripping the
// directory and extension: "/data/orders.csv" -> "orders".
func TableNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
