// Package physical implements the Volcano (open/next/close) iterator
// contract and the SeqScan operator, per spec §4.5.
package physical

import (
	"errors"

	"github.com/voltsql/voltsql/schema"
	"github.com/voltsql/voltsql/types"
)

// ErrNotImplemented is returned by Operator implementations that do not
// support batch mode.
var ErrNotImplemented = errors.New("not implemented")

// Operator is the Volcano operator contract: Created -> Opened ->
// (Producing)* -> Closed. next() must not be assumed to be driven to
// exhaustion; close() must be safe to call after any prior open(),
// including after partial consumption or early termination.
type Operator interface {
	Children() []Operator
	Schema() *schema.Schema
	String() string
	Open() error
	Next() (schema.Row, error) // (nil, nil) signals exhaustion
	Batch() (schema.RowIterator, error)
	Close() error
}

type state int

const (
	stateCreated state = iota
	stateOpened
	stateClosed
)

// SeqScan reads every row of a DataSource and projects it down to the
// given column indices.
type SeqScan struct {
	source     schema.DataSource
	projection []int
	outSchema  *schema.Schema
	st         state
	iter       schema.RowIterator
}

// NewSeqScan constructs a SeqScan over source, projecting the given
// column indices (each must be < source's schema arity; projection must
// be non-empty).
func NewSeqScan(source schema.DataSource, projection []int) (*SeqScan, error) {
	if len(projection) == 0 {
		return nil, errors.New("projection must be non-empty")
	}
	srcSchema := source.Schema()
	cols := make([]schema.Column, len(projection))
	for i, idx := range projection {
		if idx < 0 || idx >= len(srcSchema.Columns) {
			return nil, errors.New("projection index out of range")
		}
		cols[i] = srcSchema.Columns[idx]
	}
	out := &schema.Schema{Name: srcSchema.Name, Columns: cols}
	return &SeqScan{source: source, projection: projection, outSchema: out}, nil
}

func (s *SeqScan) Children() []Operator   { return nil }
func (s *SeqScan) Schema() *schema.Schema { return s.outSchema }
func (s *SeqScan) String() string         { return s.outSchema.String() }

func (s *SeqScan) Open() error {
	if s.st != stateCreated {
		panic("SeqScan.Open called more than once")
	}
	s.iter = s.source.Read()
	s.st = stateOpened
	return nil
}

// Next fetches the next source row and clones the projected columns into
// a fresh row. Returns (nil, nil) once the source is exhausted.
func (s *SeqScan) Next() (schema.Row, error) {
	if s.st != stateOpened {
		panic("SeqScan.Next called before Open or after Close")
	}
	row, ok := s.iter.Next()
	if !ok {
		return nil, nil
	}
	values := make([]types.OwnValue, len(s.projection))
	for i, idx := range s.projection {
		values[i] = row.Get(idx)
	}
	return schema.NewSimpleMemoryRow(values), nil
}

func (s *SeqScan) Batch() (schema.RowIterator, error) {
	return nil, ErrNotImplemented
}

// Close releases the iterator. Idempotent: safe to call multiple times
// and after early termination.
func (s *SeqScan) Close() error {
	s.iter = nil
	s.st = stateClosed
	return nil
}
