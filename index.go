package godbf

import "fmt"

// scanRows walks the buffer in recordLength strides starting at rowStart and sorts
// every row into active or deleted by its marker byte. Offsets point at the marker.
// An EOF byte where a row would start ends the scan.
func scanRows(buf []byte, rowStart, recordLength int) (active, deleted []int, err error) {
	if recordLength <= 0 {
		return nil, nil, fmt.Errorf("%w: record length %d", ErrMalformedLayout, recordLength)
	}
	for pos := rowStart; pos < len(buf); pos += recordLength {
		marker := buf[pos]
		if marker == EOF {
			break
		}
		if pos+recordLength > len(buf) {
			return nil, nil, fmt.Errorf("%w: truncated record at offset %d", ErrMalformedLayout, pos)
		}
		switch marker {
		case SPACE:
			active = append(active, pos)
		case DELETED:
			deleted = append(deleted, pos)
		default:
			return nil, nil, fmt.Errorf("%w: byte 0x%02X at offset %d", ErrCorruptRecordMarker, marker, pos)
		}
	}
	return active, deleted, nil
}
