package godbf

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Field reads and writes one column of a Table directly inside the table's buffer.
//
// Row arguments index the active records, 0 <= row < Table.RecordCount(). An out of
// range row panics like a slice index would. No method writes outside the field's
// fixed width. A Field must not be used after its Table is closed.
type Field struct {
	table  *Table
	layout FieldLayout
	factor float64
}

func newField(table *Table, layout FieldLayout) *Field {
	return &Field{
		table:  table,
		layout: layout,
		factor: math.Pow(10, float64(layout.Decimals)),
	}
}

func (f *Field) Name() string        { return f.layout.Name }
func (f *Field) Type() FieldType     { return f.layout.Type }
func (f *Field) Width() int          { return f.layout.Width }
func (f *Field) Decimals() int       { return f.layout.Decimals }
func (f *Field) Offset() int         { return f.layout.Offset }
func (f *Field) Layout() FieldLayout { return f.layout }

func (f *Field) data(row int) []byte {
	// +1 skips the deletion marker
	start := f.table.records[row] + 1 + f.layout.Offset
	end := start + f.layout.Width
	return f.table.buf[start:end:end]
}

// Raw returns the field's bytes for row. The slice aliases the table buffer.
func (f *Field) Raw(row int) []byte {
	return f.data(row)
}

// Clear fills the field with spaces.
func (f *Field) Clear(row int) {
	fill(f.data(row))
}

// CopyLeft copies src's value at srcRow into this field, left-justified.
func (f *Field) CopyLeft(row int, src *Field, srcRow int) {
	writeLeft(f.data(row), src.data(srcRow))
}

// CopyRight copies src's value at srcRow into this field, right-justified.
// Use it for numbers and dates.
func (f *Field) CopyRight(row int, src *Field, srcRow int) {
	writeRight(f.data(row), src.data(srcRow))
}

// Copy picks CopyRight or CopyLeft depending on the type of src.
func (f *Field) Copy(row int, src *Field, srcRow int) {
	if src.Type().RightAligned() {
		f.CopyRight(row, src, srcRow)
		return
	}
	f.CopyLeft(row, src, srcRow)
}

// CopyBytes clears the field and copies b into it from the left, truncated to the width.
func (f *Field) CopyBytes(row int, b []byte) {
	writeLeft(f.data(row), b)
}

// CopyBytesRight clears the field and copies b into it right-justified.
func (f *Field) CopyBytesRight(row int, b []byte) {
	writeRight(f.data(row), b)
}

// Insert overwrites the field starting at offset without clearing it first.
// Whatever does not fit in the remaining width is dropped.
func (f *Field) Insert(row int, offset int, b []byte) {
	if offset < 0 || offset >= f.layout.Width {
		return
	}
	copy(f.data(row)[offset:], b)
}

// GetText returns the field as text, including its padding.
func (f *Field) GetText(row int) string {
	return string(f.data(row))
}

// SetText stores text left-justified, padded with spaces and truncated to the width.
func (f *Field) SetText(row int, text string) {
	dst := f.data(row)
	n := copy(dst, text)
	fill(dst[n:])
}

// SetChar overwrites the first byte of the field.
func (f *Field) SetChar(row int, c byte) {
	if f.layout.Width == 0 {
		return
	}
	f.data(row)[0] = c
}

// ReplaceText replaces every non-overlapping occurrence of old with replacement, scanning
// left to right. The result is padded or truncated back to the width; overflow is lost.
func (f *Field) ReplaceText(row int, old, replacement string) {
	if old == "" {
		return
	}
	f.SetText(row, strings.ReplaceAll(f.GetText(row), old, replacement))
}

// GetString returns the field decoded with the table's encoding, trailing spaces removed.
func (f *Field) GetString(row int) string {
	s := string(bytes.TrimRight(f.data(row), " "))
	if f.table.decoder != nil {
		s = f.table.decoder.ConvertString(s)
	}
	return s
}

// SetString encodes s with the table's encoding and stores it like SetText.
func (f *Field) SetString(row int, s string) {
	if f.table.encoder != nil {
		s = f.table.encoder.ConvertString(s)
	}
	f.SetText(row, s)
}

// GetFloat parses the field as a decimal number. Blank or unparsable fields read as 0.
func (f *Field) GetFloat(row int) float64 {
	s := numberPrefix(f.data(row))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// SetFloat rounds v to the field's decimal count and stores it right-justified with
// two fractional digits.
func (f *Field) SetFloat(row int, v float64) {
	v = math.Round(v*f.factor) / f.factor
	writeRight(f.data(row), []byte(strconv.FormatFloat(v, 'f', 2, 64)))
}

// GetInt parses leading spaces, an optional minus sign and decimal digits, stopping at
// the first other byte. Overflow is not checked.
func (f *Field) GetInt(row int) int {
	b := f.data(row)
	i := 0
	for i < len(b) && b[i] == SPACE {
		i++
	}
	negative := false
	if i < len(b) && b[i] == '-' {
		negative = true
		i++
	}
	x := 0
	for ; i < len(b) && b[i] >= '0' && b[i] <= '9'; i++ {
		x = x*10 + int(b[i]-'0')
	}
	if negative {
		return -x
	}
	return x
}

// SetInt stores v as decimal text, right-justified.
func (f *Field) SetInt(row int, v int) {
	writeRight(f.data(row), []byte(strconv.Itoa(v)))
}

// GetBool reads a logical column: T, t, Y and y are true.
func (f *Field) GetBool(row int) bool {
	b := f.data(row)
	for _, c := range b {
		if c == SPACE {
			continue
		}
		return c == 'T' || c == 't' || c == 'Y' || c == 'y'
	}
	return false
}

// SetDate stores day, month and year as the integer YYYYMMDD.
func (f *Field) SetDate(row int, day, month, year int) {
	f.SetInt(row, day+month*100+year*10000)
}

// SetTime stores the calendar date of t like SetDate.
func (f *Field) SetTime(row int, t time.Time) {
	year, month, day := t.Date()
	f.SetDate(row, day, int(month), year)
}

// GetDate reads a YYYYMMDD value. A blank field returns the zero time.
func (f *Field) GetDate(row int) (time.Time, error) {
	v := f.GetInt(row)
	if v == 0 {
		return time.Time{}, nil
	}
	year, month, day := v/10000, v/100%100, v%100
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("field %s: invalid date %d", f.layout.Name, v)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

func fill(b []byte) {
	for i := range b {
		b[i] = SPACE
	}
}

// writeLeft copies at most len(dst) bytes of src to the start of dst and pads the rest.
func writeLeft(dst, src []byte) {
	n := copy(dst, src)
	fill(dst[n:])
}

// writeRight copies the first min(len(dst), len(src)) bytes of src to the end of dst
// and pads the front.
func writeRight(dst, src []byte) {
	n := min(len(dst), len(src))
	copy(dst[len(dst)-n:], src[:n])
	fill(dst[:len(dst)-n])
}

// numberPrefix skips leading spaces and returns the longest prefix that reads as a
// decimal number: sign, digits, fraction and exponent.
func numberPrefix(b []byte) string {
	i := 0
	for i < len(b) && b[i] == SPACE {
		i++
	}
	start := i
	if i < len(b) && (b[i] == '-' || b[i] == '+') {
		i++
	}
	digits := 0
	for ; i < len(b) && isDigit(b[i]); i++ {
		digits++
	}
	if i < len(b) && b[i] == '.' {
		i++
		for ; i < len(b) && isDigit(b[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return ""
	}
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		j := i + 1
		if j < len(b) && (b[j] == '-' || b[j] == '+') {
			j++
		}
		if j < len(b) && isDigit(b[j]) {
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			i = j
		}
	}
	return string(b[start:i])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
