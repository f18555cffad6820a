// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// IsValidHex reports whether value is an even-length string of hex digits
// (either case). When expectedBytes is positive the value must also decode
// to exactly that many bytes.
func IsValidHex(value string, expectedBytes int) bool {
	if len(value)%2 != 0 {
		return false
	}
	if expectedBytes > 0 && len(value) != expectedBytes*2 {
		return false
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
