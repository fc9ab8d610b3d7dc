// Package godbf parses and edits dBase III (.dbf) tables in memory. A Table holds the
// whole file image; Fields read and write typed column values directly in that image,
// and Save writes it back byte for byte.
package godbf

import (
	"fmt"
	"os"

	"github.com/axgle/mahonia"
)

// Table owns the complete image of a loaded .dbf file and edits it in place.
// It is not safe for concurrent use.
type Table struct {
	fileName string
	fileMd5  string
	buf      []byte
	version  Version
	header   DBFHeader
	encoder  mahonia.Encoder
	decoder  mahonia.Decoder

	layouts []FieldLayout
	fields  map[string]*Field
	records []int
	deleted []int
}

// Load reads fileName and parses it without any code page conversion.
func Load(fileName string) (*Table, error) {
	return LoadWithEncoding(fileName, "")
}

// LoadWithEncoding reads fileName and parses it. Text read through GetString and
// written through SetString is converted from and to encoding, e.g. "gbk".
func LoadWithEncoding(fileName string, encoding string) (*Table, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	fileMd5 := md5String(data)
	table, err := FromBytes(data, encoding)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", fileName, err)
	}
	table.fileName = fileName
	table.fileMd5 = fileMd5
	return table, nil
}

// FromBytes parses a file image held in memory. The table takes ownership of data.
func FromBytes(data []byte, encoding string) (*Table, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrUnsupportedFormat)
	}
	version := Version(data[0])
	if !version.supported() {
		return nil, fmt.Errorf("%w: version byte 0x%02X", ErrUnsupportedFormat, data[0])
	}
	table := &Table{
		buf:     data,
		version: version,
	}
	if encoding != "" {
		table.encoder = mahonia.NewEncoder(encoding)
		table.decoder = mahonia.NewDecoder(encoding)
		if table.encoder == nil || table.decoder == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, encoding)
		}
	}
	err := table.initMetaData()
	if err != nil {
		return nil, err
	}
	return table, nil
}

func (t *Table) initMetaData() error {
	header, layouts, rowStart, err := parseLayout(t.buf, t.decoder)
	if err != nil {
		return err
	}
	records, deleted, err := scanRows(t.buf, rowStart, recordLength(layouts))
	if err != nil {
		return err
	}
	t.header = header
	t.layouts = layouts
	t.records = records
	t.deleted = deleted
	t.fields = make(map[string]*Field, len(layouts))
	for _, layout := range layouts {
		t.fields[layout.Name] = newField(t, layout)
	}
	return nil
}

// Select returns the accessor for the column called name. Names are case sensitive.
func (t *Table) Select(name string) (*Field, error) {
	if t.buf == nil {
		return nil, ErrClosed
	}
	field, ok := t.fields[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}
	return field, nil
}

// FieldType returns the type of the column called name.
func (t *Table) FieldType(name string) (FieldType, error) {
	field, err := t.Select(name)
	if err != nil {
		return 0, err
	}
	return field.Type(), nil
}

// Fields returns the column names in descriptor order.
func (t *Table) Fields() []string {
	names := make([]string, len(t.layouts))
	for i, layout := range t.layouts {
		names[i] = layout.Name
	}
	return names
}

// Layouts returns the column layouts in descriptor order.
func (t *Table) Layouts() []FieldLayout {
	return append([]FieldLayout(nil), t.layouts...)
}

// RecordCount returns the number of active records. Deleted records are not counted.
func (t *Table) RecordCount() int {
	return len(t.records)
}

// DeletedCount returns the number of records marked as deleted.
func (t *Table) DeletedCount() int {
	return len(t.deleted)
}

// NumRecords returns the record count stored in the header.
func (t *Table) NumRecords() uint32 {
	return t.header.NumRecords
}

func (t *Table) Header() DBFHeader {
	return t.header
}

func (t *Table) Version() Version {
	return t.version
}

func (t *Table) HasMemo() bool {
	return t.version.HasMemo()
}

// FileName is the path the table was loaded from, empty for FromBytes tables.
func (t *Table) FileName() string {
	return t.fileName
}

// Bytes returns the table's buffer. It aliases the data being edited.
func (t *Table) Bytes() []byte {
	return t.buf
}

// Close releases the buffer. Fields selected from the table must not be used afterwards.
func (t *Table) Close() {
	t.buf = nil
	t.fields = nil
	t.records = nil
	t.deleted = nil
}
