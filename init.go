package godbf

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/axgle/mahonia"
)

// parseLayout decodes the header at offset 0 and the descriptor table that follows it.
// It returns the header, the field layouts in descriptor order and the offset of the
// first record marker.
func parseLayout(buf []byte, decoder mahonia.Decoder) (DBFHeader, []FieldLayout, int, error) {
	var header DBFHeader
	if len(buf) < headerSize {
		return header, nil, 0, fmt.Errorf("%w: file is %d bytes, header needs %d", ErrMalformedLayout, len(buf), headerSize)
	}
	err := binary.Read(bytes.NewReader(buf[:headerSize]), binary.LittleEndian, &header)
	if err != nil {
		return header, nil, 0, fmt.Errorf("%w: %v", ErrMalformedLayout, err)
	}

	var layouts []FieldLayout
	pos := headerSize
	rowSize := 0
	for {
		if pos >= len(buf) {
			return header, nil, 0, fmt.Errorf("%w: descriptor terminator not found", ErrMalformedLayout)
		}
		if buf[pos] == TERMINATOR {
			break
		}
		if pos+descriptorSize > len(buf) {
			return header, nil, 0, fmt.Errorf("%w: truncated field descriptor at offset %d", ErrMalformedLayout, pos)
		}
		var descriptor FieldDescriptor
		err = binary.Read(bytes.NewReader(buf[pos:pos+descriptorSize]), binary.LittleEndian, &descriptor)
		if err != nil {
			return header, nil, 0, fmt.Errorf("%w: %v", ErrMalformedLayout, err)
		}
		name := descriptor.name()
		if decoder != nil {
			name = decoder.ConvertString(name)
		}
		layouts = append(layouts, FieldLayout{
			Name:     name,
			Type:     FieldType(descriptor.Type),
			Offset:   rowSize,
			Width:    int(descriptor.Length),
			Decimals: int(descriptor.Decimal),
		})
		rowSize += int(descriptor.Length)
		pos += descriptorSize
	}

	// skip the terminator and any padding up to the first row marker
	pos++
	for pos < len(buf) && buf[pos] != SPACE && buf[pos] != DELETED {
		pos++
	}
	return header, layouts, pos, nil
}

// recordLength is the stride between two rows: every field plus the deletion marker.
func recordLength(layouts []FieldLayout) int {
	n := 1
	for _, l := range layouts {
		n += l.Width
	}
	return n
}
