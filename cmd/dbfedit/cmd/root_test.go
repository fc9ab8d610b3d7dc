package cmd

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	godbf "github.com/Ulysses-Xu/go-dbase"
	"github.com/Ulysses-Xu/go-dbase/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeOrders writes NAME C/10, AMOUNT N/8.2 and DATE N/8 with two active rows and
// one deleted row.
func writeOrders(t *testing.T, dir string) string {
	t.Helper()
	var buf bytes.Buffer
	header := godbf.DBFHeader{
		Version:         0x03,
		LastUpdateYear:  124,
		LastUpdateMonth: 3,
		LastUpdateDay:   15,
		NumRecords:      3,
		HeaderLength:    32 + 32*3 + 2,
		RecordLength:    27,
	}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, header))
	for _, c := range []struct {
		name     string
		typ      byte
		width    byte
		decimals byte
	}{{"NAME", 'C', 10, 0}, {"AMOUNT", 'N', 8, 2}, {"DATE", 'N', 8, 0}} {
		var d godbf.FieldDescriptor
		copy(d.Name[:], c.name)
		d.Type = c.typ
		d.Length = c.width
		d.Decimal = c.decimals
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, d))
	}
	buf.Write([]byte{0x0D, 0x00})
	buf.WriteString(" ALICE        10.0020230101")
	buf.WriteString("*BOB          99.9920230202")
	buf.WriteString(" CAROL        -3.25        ")
	buf.WriteByte(0x1A)

	fileName := filepath.Join(dir, "orders.dbf")
	require.NoError(t, os.WriteFile(fileName, buf.Bytes(), 0644))
	return fileName
}

func run(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func quiet() *config.Config {
	return &config.Config{LogLevel: "error"}
}

func selectText(t *testing.T, fileName, field string, row int) string {
	t.Helper()
	table, err := godbf.Load(fileName)
	require.NoError(t, err)
	f, err := table.Select(field)
	require.NoError(t, err)
	return f.GetText(row)
}

func TestInfoCmd(t *testing.T) {
	fileName := writeOrders(t, t.TempDir())

	out, err := run(t, quiet(), "info", fileName)
	require.NoError(t, err)

	assert.Contains(t, out, "dBase III")
	assert.Contains(t, out, "2024-03-15")
	assert.Contains(t, out, "AMOUNT")
	assert.Contains(t, out, "Decimals")
}

func TestDumpCmd(t *testing.T) {
	fileName := writeOrders(t, t.TempDir())

	out, err := run(t, quiet(), "dump", fileName)
	require.NoError(t, err)
	assert.Contains(t, out, "ALICE")
	assert.Contains(t, out, "CAROL")
	assert.NotContains(t, out, "BOB")

	out, err = run(t, quiet(), "dump", "--limit", "1", fileName)
	require.NoError(t, err)
	assert.Contains(t, out, "ALICE")
	assert.NotContains(t, out, "CAROL")
	assert.Contains(t, out, "1 of 2 records shown")
}

func TestReplaceColumnsCmd(t *testing.T) {
	dir := t.TempDir()
	fileName := writeOrders(t, dir)
	output := filepath.Join(dir, "out.dbf")

	out, err := run(t, quiet(), "replace-columns", fileName, "AMOUNT", "NAME", "-o", output)
	require.NoError(t, err)
	assert.Contains(t, out, "2 records written")

	assert.Equal(t, "     10.00", selectText(t, output, "NAME", 0))
	assert.Equal(t, "ALICE     ", selectText(t, fileName, "NAME", 0))
}

func TestAddPercentCmd(t *testing.T) {
	fileName := writeOrders(t, t.TempDir())

	_, err := run(t, quiet(), "add-percent", fileName, "AMOUNT", "50")
	require.NoError(t, err)
	assert.Equal(t, "   15.00", selectText(t, fileName, "AMOUNT", 0))

	_, err = run(t, quiet(), "add-percent", fileName, "AMOUNT", "lots")
	assert.Error(t, err)
}

func TestInsertTextCmd(t *testing.T) {
	fileName := writeOrders(t, t.TempDir())

	_, err := run(t, quiet(), "insert-text", fileName, "NAME", "8", "XYZ")
	require.NoError(t, err)
	assert.Equal(t, "ALICE   XY", selectText(t, fileName, "NAME", 0))
	assert.Equal(t, "CAROL   XY", selectText(t, fileName, "NAME", 1))
}

func TestSetDateCmd(t *testing.T) {
	fileName := writeOrders(t, t.TempDir())

	_, err := run(t, quiet(), "set-date", fileName, "15", "3", "2024")
	require.NoError(t, err)
	assert.Equal(t, "20240315", selectText(t, fileName, "DATE", 1))

	_, err = run(t, quiet(), "set-date", fileName, "x", "3", "2024")
	assert.Error(t, err)
}

func TestEditCmd_Backup(t *testing.T) {
	fileName := writeOrders(t, t.TempDir())
	before, err := os.ReadFile(fileName)
	require.NoError(t, err)

	cfg := quiet()
	cfg.Backup = true
	_, err = run(t, cfg, "set-date", fileName, "1", "1", "2000")
	require.NoError(t, err)

	saved, err := os.ReadFile(fileName + ".bak")
	require.NoError(t, err)
	assert.Equal(t, before, saved)
	assert.Equal(t, "20000101", selectText(t, fileName, "DATE", 0))
}

func TestEditCmd_UnknownField(t *testing.T) {
	fileName := writeOrders(t, t.TempDir())
	before, err := os.ReadFile(fileName)
	require.NoError(t, err)

	_, err = run(t, quiet(), "add-percent", fileName, "PRICE", "5")
	assert.ErrorIs(t, err, godbf.ErrFieldNotFound)

	after, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestApplyCmd(t *testing.T) {
	dir := t.TempDir()
	writeOrders(t, dir)
	jobPath := filepath.Join(dir, "job.yaml")
	require.NoError(t, os.WriteFile(jobPath, []byte(`
input: orders.dbf
output: result.dbf
steps:
  - op: set-text
    field: NAME
    text: abcabc
  - op: replace-text
    field: NAME
    old: abc
    replacement: xy
`), 0644))

	out, err := run(t, quiet(), "apply", jobPath)
	require.NoError(t, err)
	assert.Contains(t, out, "2 steps applied")
	assert.Equal(t, "xyxy      ", selectText(t, filepath.Join(dir, "result.dbf"), "NAME", 1))
}

func TestRootCmd_LogLevelFlag(t *testing.T) {
	fileName := writeOrders(t, t.TempDir())

	out, err := run(t, quiet(), "--log-level", "debug", "set-date", fileName, "1", "1", "2000")
	require.NoError(t, err)
	assert.Contains(t, out, "loaded table")
	assert.Contains(t, out, "saved table")
}

func TestRootCmd_UnsupportedFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "bad.dbf")
	require.NoError(t, os.WriteFile(fileName, []byte{0x05, 0, 0, 0}, 0644))

	_, err := run(t, quiet(), "info", fileName)
	assert.ErrorIs(t, err, godbf.ErrUnsupportedFormat)
}
