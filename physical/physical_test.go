package physical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltsql/voltsql/schema"
	"github.com/voltsql/voltsql/types"
)

// newStudentSource is the stu(name Varchar(32), age Int32) fixture from
// original_source's scan.rs test_scan, three rows, both columns nullable.
func newStudentSource(t *testing.T) schema.DataSource {
	t.Helper()
	s := &schema.Schema{
		Name: "stu",
		Columns: []schema.Column{
			{Name: "name", DataType: types.VarcharType(32), Nullable: true},
			{Name: "age", DataType: types.Int32Type, Nullable: true},
		},
	}
	ds := schema.NewSimpleMemoryDataSource(s)
	require.NoError(t, ds.PushRow([]types.OwnValue{types.OwnValueOfString("张三"), types.OwnValueOfInt32(18)}))
	require.NoError(t, ds.PushRow([]types.OwnValue{types.Null, types.OwnValueOfInt32(20)}))
	require.NoError(t, ds.PushRow([]types.OwnValue{types.OwnValueOfString("王五"), types.Null}))
	return ds
}

// TestSeqScanProjectsAgeColumn is spec §8 scenario 11: projecting index 1
// (age) over the stu fixture yields (18), (20), (NULL).
func TestSeqScanProjectsAgeColumn(t *testing.T) {
	source := newStudentSource(t)
	scan, err := NewSeqScan(source, []int{1})
	require.NoError(t, err)

	require.NoError(t, scan.Open())
	defer scan.Close()

	var got []schema.Row
	for {
		row, err := scan.Next()
		require.NoError(t, err)
		if row == nil {
			break
		}
		got = append(got, row)
	}
	require.Len(t, got, 3)

	assert.False(t, got[0].IsNull(0))
	assert.Equal(t, int32(18), got[0].GetInt32(0))
	assert.False(t, got[1].IsNull(0))
	assert.Equal(t, int32(20), got[1].GetInt32(0))
	assert.True(t, got[2].IsNull(0))
}

func TestSeqScanOutputSchemaIsProjected(t *testing.T) {
	source := newStudentSource(t)
	scan, err := NewSeqScan(source, []int{1})
	require.NoError(t, err)
	require.Len(t, scan.Schema().Columns, 1)
	assert.Equal(t, "age", scan.Schema().Columns[0].Name)
}

func TestSeqScanRejectsEmptyProjection(t *testing.T) {
	source := newStudentSource(t)
	_, err := NewSeqScan(source, nil)
	assert.Error(t, err)
}

func TestSeqScanRejectsOutOfRangeProjection(t *testing.T) {
	source := newStudentSource(t)
	_, err := NewSeqScan(source, []int{5})
	assert.Error(t, err)
}

func TestSeqScanOpenTwicePanics(t *testing.T) {
	source := newStudentSource(t)
	scan, err := NewSeqScan(source, []int{0})
	require.NoError(t, err)
	require.NoError(t, scan.Open())
	assert.Panics(t, func() { scan.Open() })
}

func TestSeqScanNextBeforeOpenPanics(t *testing.T) {
	source := newStudentSource(t)
	scan, err := NewSeqScan(source, []int{0})
	require.NoError(t, err)
	assert.Panics(t, func() { scan.Next() })
}

func TestSeqScanCloseIsIdempotent(t *testing.T) {
	source := newStudentSource(t)
	scan, err := NewSeqScan(source, []int{0})
	require.NoError(t, err)
	require.NoError(t, scan.Open())
	require.NoError(t, scan.Close())
	require.NoError(t, scan.Close())
}

func TestSeqScanBatchNotImplemented(t *testing.T) {
	source := newStudentSource(t)
	scan, err := NewSeqScan(source, []int{0})
	require.NoError(t, err)
	_, err = scan.Batch()
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestSeqScanNoChildren(t *testing.T) {
	source := newStudentSource(t)
	scan, err := NewSeqScan(source, []int{0})
	require.NoError(t, err)
	assert.Nil(t, scan.Children())
}
