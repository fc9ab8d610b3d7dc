package godbf

import "bytes"

const (
	headerSize     = 32
	descriptorSize = 32

	SPACE      = 0x20
	DELETED    = 0x2A
	TERMINATOR = 0x0D
	EOF        = 0x1A
	NUL        = 0x00
)

// Version is the leading byte of a .dbf file. Only the variants below are loaded.
type Version byte

const (
	DBase3     Version = 0x03
	DBase3Memo Version = 0x83
	DBase4Memo Version = 0x8B
)

func (v Version) supported() bool {
	switch v {
	case DBase3, DBase3Memo, DBase4Memo:
		return true
	}
	return false
}

// HasMemo reports whether the version flags an accompanying memo file.
func (v Version) HasMemo() bool {
	return v == DBase3Memo || v == DBase4Memo
}

func (v Version) String() string {
	switch v {
	case DBase3:
		return "dBase III"
	case DBase3Memo:
		return "dBase III with memo"
	case DBase4Memo:
		return "dBase IV with memo"
	}
	return "unknown"
}

// DBFHeader represents the fixed 32 byte header of a dBase III file.
type DBFHeader struct {
	Version         byte
	LastUpdateYear  byte
	LastUpdateMonth byte
	LastUpdateDay   byte
	NumRecords      uint32
	HeaderLength    uint16
	RecordLength    uint16
	Reserved        [20]byte
}

// FieldDescriptor represents one 32 byte entry of the field descriptor table.
type FieldDescriptor struct {
	Name        [11]byte
	Type        byte
	DataAddress uint32
	Length      byte
	Decimal     byte
	Reserved    [14]byte
}

func (d *FieldDescriptor) name() string {
	index := bytes.IndexByte(d.Name[:], NUL)
	if index == -1 {
		index = len(d.Name)
	}
	return string(d.Name[:index])
}

// FieldType is the one byte type tag of a field descriptor.
type FieldType byte

const (
	Character FieldType = 'C'
	Numeric   FieldType = 'N'
	Float     FieldType = 'F'
	Date      FieldType = 'D'
	Logical   FieldType = 'L'
	Memo      FieldType = 'M'
)

// RightAligned reports whether values of this type are right-justified, which
// decides between CopyRight and CopyLeft when copying columns.
func (t FieldType) RightAligned() bool {
	return t == Numeric || t == Float || t == Date
}

// FieldLayout is the position of a field inside a record, derived from the descriptor table.
// Offset is relative to the first byte after the deletion marker.
type FieldLayout struct {
	Name     string
	Type     FieldType
	Offset   int
	Width    int
	Decimals int
}
