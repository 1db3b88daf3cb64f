// SPDX-License-Identifier: GPL-3.0-only

package phone

import "strings"

// Sanitize drops every character that is not an ASCII digit, including a leading '+'.
func Sanitize(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}
