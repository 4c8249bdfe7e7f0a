// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.


package encoding

import (
	"errors"
	"strconv"
	"strings"
)

var ErrNotDecimal = errors.New("Invalid decimal string")
var ErrNotBinary = errors.New("Invalid binary string")

// Reports whether s is a non-empty run of the digits 0-9
func IsDecimal(s string) bool {
	if len(s) == 0 {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// Decodes an unsigned base-10 string that must fit in the given bit width.
// Values that do not fit return strconv.ErrRange.
func DecodeUint(s string, bits int) (uint16, error) {
	if !IsDecimal(s) {
		return 0, ErrNotDecimal
	}

	result, err := strconv.ParseUint(s, 10, bits)

	if err != nil {
		return 0, strconv.ErrRange
	}

	return uint16(result), nil
}

// Renders the low bits of value as a zero-padded big-endian binary string
func EncodeBinary(value uint16, bits int) string {
	var builder strings.Builder
	builder.Grow(bits)

	for i := bits - 1; i >= 0; i-- {
		if (value>>uint(i))&0x1 == 1 {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}

	return builder.String()
}

// Decodes a binary string of at most 16 '0'/'1' characters
func DecodeBinary(s string) (uint16, error) {
	if len(s) == 0 || len(s) > 16 {
		return 0, ErrNotBinary
	}

	var result uint16

	for i := 0; i < len(s); i++ {
		result <<= 1

		switch s[i] {
		case '0':
		case '1':
			result |= 0x1
		default:
			return 0, ErrNotBinary
		}
	}

	return result, nil
}
