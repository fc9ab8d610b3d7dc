package godbf

import (
	"errors"
	"fmt"
	"reflect"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// GetRecord fills the struct pointed to by v from active record row. Struct fields are
// matched to columns by their `dbf:"NAME"` tag; untagged fields and columns without a
// matching field are skipped. Blank columns leave the struct field untouched.
func (t *Table) GetRecord(row int, v interface{}) error {
	if row < 0 || row >= t.RecordCount() {
		return errors.New("index out of range")
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("GetRecord requires a non-nil pointer to a struct")
	}
	rv = rv.Elem()

	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("GetRecord requires a pointer to a struct, not a %s", rv.Kind())
	}

	return t.getRecord(row, rv)
}

// GetRecords fills the slice pointed to by v with active records [start, end).
func (t *Table) GetRecords(start, end int, v interface{}) error {
	if start < 0 || end > t.RecordCount() || start > end {
		return errors.New("index out of range")
	}

	rt := reflect.TypeOf(v)
	if rt.Kind() != reflect.Ptr {
		return fmt.Errorf("GetRecords requires a pointer to a slice, not a %s", rt.Kind())
	}

	if rt.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("GetRecords requires a pointer to a slice, not a %s", rt.Elem().Kind())
	}

	if rt.Elem().Elem().Kind() != reflect.Struct {
		return fmt.Errorf("GetRecords requires a pointer to a slice of struct, not a %s", rt.Elem().Elem().Kind())
	}

	rv := reflect.ValueOf(v).Elem()
	if rv.Len() < end-start {
		rv.Set(reflect.MakeSlice(rv.Type(), end-start, end-start))
	}
	for i := start; i < end; i++ {
		if err := t.getRecord(i, rv.Index(i-start)); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) getRecord(row int, rv reflect.Value) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		column := rt.Field(i).Tag.Get("dbf")
		if column == "" {
			continue
		}
		field, ok := t.fields[column]
		if !ok {
			continue
		}
		if isBlank(field.data(row)) {
			continue
		}
		fieldValue := rv.Field(i)
		switch fieldValue.Kind() {
		case reflect.String:
			fieldValue.SetString(field.GetString(row))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			fieldValue.SetInt(int64(field.GetInt(row)))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			fieldValue.SetUint(uint64(field.GetInt(row)))
		case reflect.Float32, reflect.Float64:
			fieldValue.SetFloat(field.GetFloat(row))
		case reflect.Bool:
			fieldValue.SetBool(field.GetBool(row))
		case reflect.Struct:
			if fieldValue.Type() != timeType {
				return fmt.Errorf("column %s: unsupported struct type %s", column, fieldValue.Type())
			}
			date, err := field.GetDate(row)
			if err != nil {
				return err
			}
			fieldValue.Set(reflect.ValueOf(date))
		default:
			return fmt.Errorf("column %s: unsupported kind %s", column, fieldValue.Kind())
		}
	}
	return nil
}

func isBlank(b []byte) bool {
	for _, c := range b {
		if c != SPACE {
			return false
		}
	}
	return true
}
