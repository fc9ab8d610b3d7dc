package godbf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRecord struct {
	Name    string    `dbf:"NAME"`
	Amount  float64   `dbf:"AMOUNT"`
	Cents   int       `dbf:"AMOUNT"`
	Date    time.Time `dbf:"DATE"`
	Ignored string
	Missing string `dbf:"MISSING"`
}

func TestTable_GetRecord(t *testing.T) {
	table := sampleTable(t)

	var r sampleRecord
	require.NoError(t, table.GetRecord(0, &r))

	assert.Equal(t, "ALICE", r.Name)
	assert.InDelta(t, 10.0, r.Amount, 1e-9)
	assert.Equal(t, 10, r.Cents)
	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), r.Date)
	assert.Empty(t, r.Ignored)
	assert.Empty(t, r.Missing)
}

func TestTable_GetRecordBlankKeepsValue(t *testing.T) {
	table := sampleTable(t)
	keep := time.Date(2000, time.May, 5, 0, 0, 0, 0, time.UTC)

	r := sampleRecord{Date: keep}
	require.NoError(t, table.GetRecord(1, &r))

	assert.Equal(t, "CAROL", r.Name)
	assert.Equal(t, keep, r.Date)
}

func TestTable_GetRecordErrors(t *testing.T) {
	table := sampleTable(t)
	var r sampleRecord

	assert.Error(t, table.GetRecord(2, &r))
	assert.Error(t, table.GetRecord(-1, &r))
	assert.Error(t, table.GetRecord(0, r))
	assert.Error(t, table.GetRecord(0, (*sampleRecord)(nil)))

	var n int
	assert.Error(t, table.GetRecord(0, &n))

	var bad struct {
		Name []byte `dbf:"NAME"`
	}
	assert.Error(t, table.GetRecord(0, &bad))
}

func TestTable_GetRecords(t *testing.T) {
	table := sampleTable(t)

	var rs []sampleRecord
	require.NoError(t, table.GetRecords(0, table.RecordCount(), &rs))

	require.Len(t, rs, 2)
	assert.Equal(t, "ALICE", rs[0].Name)
	assert.Equal(t, "CAROL", rs[1].Name)
	assert.InDelta(t, -3.25, rs[1].Amount, 1e-9)

	assert.Error(t, table.GetRecords(0, 3, &rs))
	assert.Error(t, table.GetRecords(0, 1, rs))

	var ints []int
	assert.Error(t, table.GetRecords(0, 1, &ints))
}
