package datasource

import (
	"fmt"
	"sync"

	"github.com/tidwall/btree"

	"mit.edu/dsg/qpml/common"
	"mit.edu/dsg/qpml/plan"
)

type registryEntry struct {
	name   string
	source plan.TableSource
}

// Registry maps table names to their sources.
// It is a wrapper around github.com/tidwall/btree, specialized for table
// sources and ordered by name so that listings are deterministic. Writes are
// serialized through a mutex so duplicate detection stays atomic; reads go
// straight to the tree, which is itself safe for concurrent use.
type Registry struct {
	mu   sync.Mutex // serializes Register's check-then-set
	tree *btree.BTreeG[registryEntry]
}

func NewRegistry() *Registry {
	less := func(a, b registryEntry) bool {
		return a.name < b.name
	}
	return &Registry{tree: btree.NewBTreeG(less)}
}

// Register adds a source under its own name. Exactly one of any set of
// concurrent registrations for the same name succeeds.
func (r *Registry) Register(source plan.TableSource) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := registryEntry{name: source.Name(), source: source}
	if _, ok := r.tree.Get(entry); ok {
		return common.QPMLError{
			Code:      common.DuplicateObjectError,
			ErrString: fmt.Sprintf("table %q already registered", entry.name),
		}
	}
	r.tree.Set(entry)
	return nil
}

// RegisterFile registers a FileTable for a single file path, deriving the
// table name from the file stem.
func (r *Registry) RegisterFile(path string) (*FileTable, error) {
	table := NewFileTable(TableNameFromPath(path), path)
	if err := r.Register(table); err != nil {
		return nil, err
	}
	return table, nil
}

// Lookup returns the source registered under name.
func (r *Registry) Lookup(name string) (plan.TableSource, error) {
	entry, ok := r.tree.Get(registryEntry{name: name})
	if !ok {
		return nil, common.QPMLError{
			Code:      common.NoSuchObjectError,
			ErrString: fmt.Sprintf("no table %q", name),
		}
	}
	return entry.source, nil
}

// Tables returns the registered sources in name order.
func (r *Registry) Tables() []plan.TableSource {
	out := make([]plan.TableSource, 0, r.tree.Len())
	r.tree.Scan(func(e registryEntry) bool {
		out = append(out, e.source)
		return true
	})
	return out
}

// Scan builds a scan node over the named table.
func (r *Registry) Scan(name string) (*plan.ScanNode, error) {
	source, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return plan.NewScanNode(source), nil
}
