// Package types defines the runtime value model shared by the schema/row
// and physical-operator packages: DataType, OwnValue, and the Int32/
// Float64/Varchar wrappers.
package types

import "fmt"

// DataType enumerates the supported column types.
type DataType struct {
	kind         dataTypeKind
	varcharLimit uint16 // meaningful only when kind == varcharKind
}

type dataTypeKind int

const (
	kindInt32 dataTypeKind = iota
	kindFloat64
	kindVarchar
	kindString
)

// Int32Type, Float64Type, and StringType are the fixed-shape DataTypes.
// VarcharType(n) constructs the parameterized Varchar(n) type.
var (
	Int32Type   = DataType{kind: kindInt32}
	Float64Type = DataType{kind: kindFloat64}
	StringType  = DataType{kind: kindString}
)

// VarcharType returns the Varchar(n) data type, n being the maximum
// length of the borrowed view.
func VarcharType(n uint16) DataType {
	return DataType{kind: kindVarchar, varcharLimit: n}
}

// IsVarchar reports whether d is a Varchar(n) type, returning n.
func (d DataType) IsVarchar() (uint16, bool) {
	if d.kind == kindVarchar {
		return d.varcharLimit, true
	}
	return 0, false
}

func (d DataType) String() string {
	switch d.kind {
	case kindInt32:
		return "Int32"
	case kindFloat64:
		return "Float64"
	case kindVarchar:
		return fmt.Sprintf("Varchar(%d)", d.varcharLimit)
	case kindString:
		return "String"
	default:
		return "?"
	}
}

func (d DataType) Equal(other DataType) bool {
	return d.kind == other.kind && d.varcharLimit == other.varcharLimit
}

// Int32 wraps a 32-bit integer value.
type Int32 struct{ Value int32 }

func NewInt32(v int32) Int32 { return Int32{Value: v} }

func (i Int32) ToFloat64() Float64 { return Float64{Value: float64(i.Value)} }
func (i Int32) Add(o Int32) Int32  { return Int32{Value: i.Value + o.Value} }
func (i Int32) String() string     { return fmt.Sprintf("%d", i.Value) }

// Float64 wraps a 64-bit float value.
type Float64 struct{ Value float64 }

func NewFloat64(v float64) Float64 { return Float64{Value: v} }

func (f Float64) ToInt32() Int32    { return Int32{Value: int32(f.Value)} }
func (f Float64) Add(o Float64) Float64 { return Float64{Value: f.Value + o.Value} }
func (f Float64) String() string    { return fmt.Sprintf("%v", f.Value) }

// Varchar is a borrowed, zero-copy string view. Limit records the declared
// maximum length in bytes. Unlike the original implementation's
// raw-pointer view, Go's string sharing already gives zero-copy borrowing
// without unsafe pointer arithmetic: Varchar simply aliases the bytes of
// the string held by the row that produced it.
type Varchar struct {
	data  string
	Limit uint16
}

// NewVarchar constructs a Varchar view over s with the given limit. s is
// not copied, and it is neither truncated nor checked against limit.
func NewVarchar(s string, limit uint16) Varchar {
	return Varchar{data: s, Limit: limit}
}

func (v Varchar) String() string { return v.data }

// OwnValueKind tags the variant held by an OwnValue.
type OwnValueKind int

const (
	OwnNull OwnValueKind = iota
	OwnInt32
	OwnFloat64
	OwnString
)

// OwnValue is the tagged union of runtime values a Row cell can hold.
// Varchar never appears in an OwnValue: OwnValue always owns its data
// (see SPEC_FULL.md/original_source's split between owned String and
// borrowed Varchar).
type OwnValue struct {
	kind OwnValueKind
	i    int32
	f    float64
	s    string
}

var Null = OwnValue{kind: OwnNull}

func OwnValueOfInt32(v int32) OwnValue     { return OwnValue{kind: OwnInt32, i: v} }
func OwnValueOfFloat64(v float64) OwnValue { return OwnValue{kind: OwnFloat64, f: v} }
func OwnValueOfString(v string) OwnValue   { return OwnValue{kind: OwnString, s: v} }

func (v OwnValue) Kind() OwnValueKind { return v.kind }
func (v OwnValue) IsNull() bool       { return v.kind == OwnNull }

// Int32 returns the stored int32; callers must have checked Kind first.
func (v OwnValue) Int32() int32 { return v.i }

// Float64 returns the stored float64; callers must have checked Kind first.
func (v OwnValue) Float64() float64 { return v.f }

// Str returns the stored string; callers must have checked Kind first.
func (v OwnValue) Str() string { return v.s }

func (v OwnValue) String() string {
	switch v.kind {
	case OwnNull:
		return "NULL"
	case OwnInt32:
		return fmt.Sprintf("%d", v.i)
	case OwnFloat64:
		return fmt.Sprintf("%v", v.f)
	case OwnString:
		return fmt.Sprintf("%q", v.s)
	default:
		return "?"
	}
}
