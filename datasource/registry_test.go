package datasource

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"mit.edu/dsg/qpml/common"
)

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry()

	orders := NewFileTable("orders", "/data/orders.csv")
	assert.NoError(t, r.Register(orders))

	got, err := r.Lookup("orders")
	assert.NoError(t, err)
	assert.Same(t, orders, got)
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	assert.NoError(t, r.Register(NewFileTable("orders", "/data/orders.csv")))

	err := r.Register(NewMemTable("orders"))
	assert.Error(t, err)

	var qerr common.QPMLError
	assert.True(t, errors.As(err, &qerr))
	assert.Equal(t, common.DuplicateObjectError, qerr.Code)
}

// TestRegisterConcurrentDuplicates races several goroutines registering the
// same name: exactly one must win, the rest must get DuplicateObjectError.
func TestRegisterConcurrentDuplicates(t *testing.T) {
	const goroutines = 8

	for iter := 0; iter < 200; iter++ {
		r := NewRegistry()

		var wg sync.WaitGroup
		var successes, duplicates atomic.Int32
		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := r.Register(NewMemTable("orders"))
				if err == nil {
					successes.Add(1)
					return
				}
				var qerr common.QPMLError
				if errors.As(err, &qerr) && qerr.Code == common.DuplicateObjectError {
					duplicates.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), successes.Load())
		assert.Equal(t, int32(goroutines-1), duplicates.Load())
	}
}

func TestLookupMissing(t *testing.T) {
	r := NewRegistry()

	_, err := r.Lookup("nope")
	var qerr common.QPMLError
	assert.True(t, errors.As(err, &qerr))
	assert.Equal(t, common.NoSuchObjectError, qerr.Code)
}

// TestTablesOrdered verifies listings come back in name order regardless of
// registration order.
func TestTablesOrdered(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"supplier", "customer", "orders", "lineitem"} {
		assert.NoError(t, r.Register(NewMemTable(name)))
	}

	var names []string
	for _, s := range r.Tables() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"customer", "lineitem", "orders", "supplier"}, names)
}

func TestRegisterFile(t *testing.T) {
	r := NewRegistry()

	table, err := r.RegisterFile("/data/tpch/orders.parquet")
	assert.NoError(t, err)
	assert.Equal(t, "orders", table.Name())
	assert.Equal(t, []string{"/data/tpch/orders.parquet"}, table.RootPaths())

	got, err := r.Lookup("orders")
	assert.NoError(t, err)
	assert.Same(t, table, got)
}

func TestScan(t *testing.T) {
	r := NewRegistry()
	_, err := r.RegisterFile("/data/orders.csv")
	assert.NoError(t, err)

	scan, err := r.Scan("orders")
	assert.NoError(t, err)
	assert.Equal(t, "Scan: orders", scan.String())
	assert.Empty(t, scan.Children())

	_, err = r.Scan("missing")
	assert.Error(t, err)
}

// Constructing a file table without a root path is a programming error and
// trips the precondition assert.
func TestNewFileTableRequiresRootPath(t *testing.T) {
	assert.Panics(t, func() {
		NewFileTable("orders")
	})
}

func TestTableNameFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/data/orders.csv", "orders"},
		{"/data/tpch/lineitem.parquet", "lineitem"},
		{"region", "region"},
		{"./nation.tbl", "nation"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, TableNameFromPath(tt.path))
		})
	}
}
