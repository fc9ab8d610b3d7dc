package godbf

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type testColumn struct {
	name     string
	typ      byte
	width    int
	decimals int
}

type testRow struct {
	deleted bool
	values  []string
}

// buildDBF emits a dBase III image: header, descriptors, 0x0D terminator, one padding
// byte, the rows and a trailing EOF marker. Values are justified by column type.
func buildDBF(version byte, columns []testColumn, rows []testRow) []byte {
	var buf bytes.Buffer
	recordLen := 1
	for _, c := range columns {
		recordLen += c.width
	}
	header := DBFHeader{
		Version:         version,
		LastUpdateYear:  124,
		LastUpdateMonth: 3,
		LastUpdateDay:   15,
		NumRecords:      uint32(len(rows)),
		HeaderLength:    uint16(headerSize + descriptorSize*len(columns) + 2),
		RecordLength:    uint16(recordLen),
	}
	_ = binary.Write(&buf, binary.LittleEndian, header)
	for _, c := range columns {
		var d FieldDescriptor
		copy(d.Name[:], c.name)
		d.Type = c.typ
		d.Length = byte(c.width)
		d.Decimal = byte(c.decimals)
		_ = binary.Write(&buf, binary.LittleEndian, d)
	}
	buf.WriteByte(TERMINATOR)
	buf.WriteByte(NUL)
	for _, r := range rows {
		if r.deleted {
			buf.WriteByte(DELETED)
		} else {
			buf.WriteByte(SPACE)
		}
		for i, c := range columns {
			v := r.values[i]
			if len(v) > c.width {
				v = v[:c.width]
			}
			pad := strings.Repeat(" ", c.width-len(v))
			if FieldType(c.typ).RightAligned() {
				buf.WriteString(pad + v)
			} else {
				buf.WriteString(v + pad)
			}
		}
	}
	buf.WriteByte(EOF)
	return buf.Bytes()
}

var sampleColumns = []testColumn{
	{name: "NAME", typ: 'C', width: 10},
	{name: "AMOUNT", typ: 'N', width: 8, decimals: 2},
	{name: "DATE", typ: 'N', width: 8},
}

var sampleRows = []testRow{
	{values: []string{"ALICE", "10.00", "20230101"}},
	{deleted: true, values: []string{"BOB", "99.99", "20230202"}},
	{values: []string{"CAROL", "-3.25", ""}},
}

func sampleDBF() []byte {
	return buildDBF(byte(DBase3), sampleColumns, sampleRows)
}

func sampleTable(t *testing.T) *Table {
	t.Helper()
	table, err := FromBytes(sampleDBF(), "")
	require.NoError(t, err)
	return table
}

func writeSample(t *testing.T, data []byte) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), "sample.dbf")
	require.NoError(t, os.WriteFile(fileName, data, 0644))
	return fileName
}
