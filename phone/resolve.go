// SPDX-License-Identifier: GPL-3.0-only

package phone

import "strings"

// CountryMetadata is one numbering plan entry.
type CountryMetadata struct {
	ID                string
	DialingCodePrefix string
	Types             map[Tag]PatternPair
}

// Table is an ordered list of numbering plans.
type Table []CountryMetadata

// Resolve returns every entry whose dialing code prefixes digits, in table
// order. Overlapping prefixes ("1" and "1242") are all returned.
func Resolve(digits string, table Table) []CountryMetadata {
	var candidates []CountryMetadata
	for _, entry := range table {
		if len(entry.Types) == 0 {
			continue
		}
		if strings.HasPrefix(digits, entry.DialingCodePrefix) {
			candidates = append(candidates, entry)
		}
	}
	return candidates
}
