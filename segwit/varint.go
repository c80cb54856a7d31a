// Copyright (c) 2026 The Monetarium developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package segwit

import (
	"encoding/binary"
	"fmt"
)

// ReadVarInt decodes the canonical bitcoin variable-length integer that
// starts at the given offset of buf and returns the decoded value along
// with the number of bytes the encoding occupies.
//
// The encoding is self-describing: a discriminant byte below 0xfd is the
// value itself with a width of one, while discriminants 0xfd, 0xfe, and
// 0xff announce a little-endian payload of 2, 4, or 8 additional bytes for
// total widths of 3, 5, and 9, respectively.
//
// The returned error will have kind ErrOutOfBounds when the offset, or the
// payload the discriminant calls for, extends past the end of buf.
func ReadVarInt(buf []byte, offset int) (uint64, int, error) {
	if offset < 0 || offset >= len(buf) {
		str := fmt.Sprintf("varint discriminant at offset %d exceeds "+
			"buffer length %d", offset, len(buf))
		return 0, 0, txError(ErrOutOfBounds, str)
	}

	discriminant := buf[offset]
	var width int
	switch discriminant {
	case 0xfd:
		width = 3
	case 0xfe:
		width = 5
	case 0xff:
		width = 9
	default:
		return uint64(discriminant), 1, nil
	}

	if width > len(buf)-offset {
		str := fmt.Sprintf("varint at offset %d requires %d bytes which "+
			"exceeds buffer length %d", offset, width, len(buf))
		return 0, 0, txError(ErrOutOfBounds, str)
	}

	payload := buf[offset+1 : offset+width]
	switch width {
	case 3:
		return uint64(binary.LittleEndian.Uint16(payload)), width, nil
	case 5:
		return uint64(binary.LittleEndian.Uint32(payload)), width, nil
	default:
		return binary.LittleEndian.Uint64(payload), width, nil
	}
}
