// Package schema defines the typed column/schema/row model and the
// DataSource abstraction a physical operator reads from.
package schema

import (
	"fmt"
	"strings"

	"github.com/voltsql/voltsql/types"
)

// Column describes one field of a Schema.
type Column struct {
	Name     string
	DataType types.DataType
	Nullable bool
}

func (c Column) String() string { return c.Name }

// Schema is an ordered, named list of columns; column names are unique
// within a schema.
type Schema struct {
	Name    string
	Columns []Column
}

func (s *Schema) String() string { return s.Name }

// ContainsColumnName reports whether name matches a column in s.
func (s *Schema) ContainsColumnName(name string) bool {
	for _, c := range s.Columns {
		if c.Name == name {
			return true
		}
	}
	return false
}

func (s *Schema) Debug() string {
	parts := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		parts[i] = fmt.Sprintf("%s %s", c.Name, c.DataType)
	}
	return fmt.Sprintf("%s(%s)", s.Name, strings.Join(parts, ", "))
}

// Row is a read-only record of OwnValues positionally aligned with a
// Schema. Accessors panic if the stored tag doesn't match the requested
// type: callers are expected to consult the schema first (spec §4.4/§7 —
// a type mismatch here is a contract violation, not a recoverable error).
type Row interface {
	IsNull(i int) bool
	GetInt32(i int) int32
	GetFloat64(i int) float64
	GetVarchar(i int) types.Varchar
	GetString(i int) string
	Get(i int) types.OwnValue
}

// ToString renders row using schema for quoting/NULL decisions, matching
// the teacher's "bracketed, comma-joined" convention.
func ToString(row Row, schema *Schema) string {
	parts := make([]string, len(schema.Columns))
	for i, col := range schema.Columns {
		if row.IsNull(i) {
			parts[i] = "NULL"
			continue
		}
		if _, ok := col.DataType.IsVarchar(); ok {
			parts[i] = fmt.Sprintf("%q", row.GetVarchar(i).String())
			continue
		}
		switch col.DataType {
		case types.Int32Type:
			parts[i] = fmt.Sprintf("%d", row.GetInt32(i))
		case types.Float64Type:
			parts[i] = fmt.Sprintf("%v", row.GetFloat64(i))
		case types.StringType:
			parts[i] = fmt.Sprintf("%q", row.GetString(i))
		default:
			parts[i] = "?"
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// SimpleMemoryRow is an in-memory Row backed by a fixed slice of
// OwnValues.
type SimpleMemoryRow struct {
	Values []types.OwnValue
}

func NewSimpleMemoryRow(values []types.OwnValue) *SimpleMemoryRow {
	return &SimpleMemoryRow{Values: values}
}

func (r *SimpleMemoryRow) IsNull(i int) bool { return r.Values[i].IsNull() }

func (r *SimpleMemoryRow) GetInt32(i int) int32 {
	v := r.Values[i]
	if v.Kind() != types.OwnInt32 {
		panic("type mismatch")
	}
	return v.Int32()
}

func (r *SimpleMemoryRow) GetFloat64(i int) float64 {
	v := r.Values[i]
	if v.Kind() != types.OwnFloat64 {
		panic("type mismatch")
	}
	return v.Float64()
}

func (r *SimpleMemoryRow) GetVarchar(i int) types.Varchar {
	v := r.Values[i]
	if v.Kind() != types.OwnString {
		panic("type mismatch")
	}
	return types.NewVarchar(v.Str(), uint16(len(v.Str())))
}

func (r *SimpleMemoryRow) GetString(i int) string {
	v := r.Values[i]
	if v.Kind() != types.OwnString {
		panic("type mismatch")
	}
	return v.Str()
}

func (r *SimpleMemoryRow) Get(i int) types.OwnValue { return r.Values[i] }

func (r *SimpleMemoryRow) ToString(schema *Schema) string { return ToString(r, schema) }

// DataSource abstracts a table: a schema plus readable rows, in insertion
// order.
type DataSource interface {
	Name() string
	Schema() *Schema
	Read() RowIterator
}

// RowIterator yields rows one at a time; Next returns (nil, false) once
// exhausted.
type RowIterator interface {
	Next() (Row, bool)
}

// SimpleMemoryDataSource is an in-memory, append-only DataSource.
type SimpleMemoryDataSource struct {
	schema *Schema
	rows   []*SimpleMemoryRow
}

func NewSimpleMemoryDataSource(s *Schema) *SimpleMemoryDataSource {
	return &SimpleMemoryDataSource{schema: s}
}

func (d *SimpleMemoryDataSource) Name() string   { return d.schema.Name }
func (d *SimpleMemoryDataSource) Schema() *Schema { return d.schema }

// PushRow appends a row, validating the invariants from spec §3: arity
// must match the schema, and each non-null value's tag must match its
// column's DataType (Null only permitted on a nullable column).
func (d *SimpleMemoryDataSource) PushRow(values []types.OwnValue) error {
	if len(values) != len(d.schema.Columns) {
		return fmt.Errorf("row arity %d does not match schema arity %d", len(values), len(d.schema.Columns))
	}
	for i, v := range values {
		col := d.schema.Columns[i]
		if v.IsNull() {
			if !col.Nullable {
				return fmt.Errorf("column %q is not nullable", col.Name)
			}
			continue
		}
		if !valueMatchesType(v, col.DataType) {
			return fmt.Errorf("value for column %q does not match type %s", col.Name, col.DataType)
		}
	}
	d.rows = append(d.rows, NewSimpleMemoryRow(values))
	return nil
}

func valueMatchesType(v types.OwnValue, dt types.DataType) bool {
	switch v.Kind() {
	case types.OwnInt32:
		return dt.Equal(types.Int32Type)
	case types.OwnFloat64:
		return dt.Equal(types.Float64Type)
	case types.OwnString:
		if dt.Equal(types.StringType) {
			return true
		}
		_, isVarchar := dt.IsVarchar()
		return isVarchar
	default:
		return false
	}
}

func (d *SimpleMemoryDataSource) Read() RowIterator {
	return &sliceRowIterator{rows: d.rows}
}

type sliceRowIterator struct {
	rows []*SimpleMemoryRow
	pos  int
}

func (it *sliceRowIterator) Next() (Row, bool) {
	if it.pos >= len(it.rows) {
		return nil, false
	}
	r := it.rows[it.pos]
	it.pos++
	return r, true
}
