// SPDX-License-Identifier: GPL-3.0-only

package numplan

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"numclass-server/phone"

	"github.com/nyaruka/phonenumbers"
)

func LoadJSON(filePath string) ([]Entry, error) {
	var raw RawData

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filePath, err)
	}

	return raw.Countries, nil
}

// Merge replaces base entries that share an id with an overwrite entry, in
// place, and appends overwrite entries with new ids.
func Merge(base, overwrite []Entry) []Entry {
	merged := make([]Entry, len(base))
	copy(merged, base)

	positions := make(map[string]int, len(merged))
	for i, e := range merged {
		if _, ok := positions[e.ID]; !ok {
			positions[e.ID] = i
		}
	}

	for _, e := range overwrite {
		if i, ok := positions[e.ID]; ok {
			merged[i] = e
			continue
		}
		positions[e.ID] = len(merged)
		merged = append(merged, e)
	}
	return merged
}

// Compile turns raw entries into a classification table, compiling every
// pattern once. Ids are upper-cased.
func Compile(entries []Entry) (phone.Table, error) {
	table := make(phone.Table, 0, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("entry with country code %q has no id", e.CountryCode)
		}
		if e.CountryCode == "" || phone.Sanitize(e.CountryCode) != e.CountryCode {
			return nil, fmt.Errorf("%s: country code %q must be digits only", e.ID, e.CountryCode)
		}

		names := make([]string, 0, len(e.Types))
		for name := range e.Types {
			names = append(names, name)
		}
		sort.Strings(names)

		types := make(map[phone.Tag]phone.PatternPair, len(e.Types))
		seen := make(map[phone.Tag]string, len(e.Types))
		for _, name := range names {
			tag, err := phone.ParseTag(name)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", e.ID, err)
			}
			if prev, ok := seen[tag]; ok {
				return nil, fmt.Errorf("%s %s: defined twice, as %q and %q", e.ID, tag, prev, name)
			}
			seen[tag] = name

			desc := e.Types[name]
			// an empty description leaves the type undefined
			if desc.NationalNumberPattern == "" && desc.PossibleNumberPattern == "" {
				continue
			}
			pair, err := phone.CompilePatternPair(desc.NationalNumberPattern, desc.PossibleNumberPattern)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", e.ID, tag, err)
			}
			types[tag] = pair
		}

		table = append(table, phone.CountryMetadata{
			ID:                strings.ToUpper(e.ID),
			DialingCodePrefix: e.CountryCode,
			Types:             types,
		})
	}
	return table, nil
}

func BuildIndex(table phone.Table) *LookupIndex {
	idx := &LookupIndex{
		Table:    table,
		ByID:     make(map[string][]phone.CountryMetadata),
		ByPrefix: make(map[string][]phone.CountryMetadata),
	}

	for _, c := range table {
		id := strings.ToUpper(c.ID)
		idx.ByID[id] = append(idx.ByID[id], c)
		idx.ByPrefix[c.DialingCodePrefix] = append(idx.ByPrefix[c.DialingCodePrefix], c)
	}

	return idx
}

func (idx *LookupIndex) LookupByID(id string) []phone.CountryMetadata {
	return idx.ByID[strings.ToUpper(id)]
}

func (idx *LookupIndex) LookupByPrefix(prefix string) []phone.CountryMetadata {
	return idx.ByPrefix[prefix]
}

// Prefixes returns the distinct dialing codes, sorted.
func (idx *LookupIndex) Prefixes() []string {
	prefixes := make([]string, 0, len(idx.ByPrefix))
	for p := range idx.ByPrefix {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	return prefixes
}

// Lint compares each entry against the calling codes bundled with
// libphonenumber. Ids that are not known regions are skipped.
func Lint(entries []Entry) []Mismatch {
	var mismatches []Mismatch
	for _, e := range entries {
		known := phonenumbers.GetCountryCodeForRegion(strings.ToUpper(e.ID))
		if known == 0 {
			continue
		}
		if strconv.Itoa(known) != e.CountryCode {
			mismatches = append(mismatches, Mismatch{ID: e.ID, Declared: e.CountryCode, Known: known})
		}
	}
	return mismatches
}
