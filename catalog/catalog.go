// Package catalog is an in-memory table registry: the ambient analogue of
// a real system's persistence layer, giving a SeqScan something concrete
// to scan without reaching into on-disk storage (out of scope). Grounded
// in original_source's executor::context::{Context, SimpleMemoryContext}.
package catalog

import (
	"github.com/pkg/errors"

	"github.com/voltsql/voltsql/schema"
)

// Catalog looks up a DataSource by name.
type Catalog interface {
	FindTable(name string) (schema.DataSource, error)
}

// SimpleMemoryCatalog is an in-memory table-name -> DataSource registry.
type SimpleMemoryCatalog struct {
	tables map[string]schema.DataSource
}

// NewSimpleMemoryCatalog returns an empty catalog.
func NewSimpleMemoryCatalog() *SimpleMemoryCatalog {
	return &SimpleMemoryCatalog{tables: make(map[string]schema.DataSource)}
}

// Register adds (or replaces) the DataSource under its own name.
func (c *SimpleMemoryCatalog) Register(ds schema.DataSource) {
	c.tables[ds.Name()] = ds
}

// FindTable returns the named DataSource, or a wrapped "unknown table"
// error if it is not registered.
func (c *SimpleMemoryCatalog) FindTable(name string) (schema.DataSource, error) {
	ds, ok := c.tables[name]
	if !ok {
		return nil, errors.Wrapf(errUnknownTable, "lookup %q", name)
	}
	return ds, nil
}

var errUnknownTable = errors.New("unknown table")
