// SPDX-License-Identifier: GPL-3.0-only

package numplan

import "numclass-server/phone"

type PatternDesc struct {
	NationalNumberPattern string `json:"national_number_pattern"`
	PossibleNumberPattern string `json:"possible_number_pattern"`
}

type Entry struct {
	ID          string                 `json:"id"`
	CountryCode string                 `json:"country_code"`
	Types       map[string]PatternDesc `json:"types"`
}

type RawData struct {
	Countries []Entry `json:"countries"`
}

type LookupIndex struct {
	Table    phone.Table
	ByID     map[string][]phone.CountryMetadata
	ByPrefix map[string][]phone.CountryMetadata
}

// Mismatch is an entry whose country code disagrees with the calling code
// libphonenumber knows for the same region.
type Mismatch struct {
	ID       string
	Declared string
	Known    int
}
