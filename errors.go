package godbf

import "errors"

var (
	ErrUnsupportedFormat   = errors.New("unsupported dbf format")
	ErrMalformedLayout     = errors.New("malformed dbf layout")
	ErrCorruptRecordMarker = errors.New("corrupt record marker")
	ErrFieldNotFound       = errors.New("field not found")
	ErrIO                  = errors.New("dbf io failure")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	ErrClosed              = errors.New("table is closed")
)
