// SPDX-License-Identifier: GPL-3.0-only

// Package phone classifies raw phone number strings against numbering plan
// metadata. A number is valid for a type when it fully matches that type's
// strict pattern, and possible when it fully matches the looser length
// pattern. Validity is purely syntactic.
package phone

// CountryResult is the classification of one candidate country.
type CountryResult struct {
	ID             string `json:"country"`
	NationalNumber string `json:"national_number"`
	Valid          []Tag  `json:"valid_types"`
	Possible       []Tag  `json:"possible_types"`
}

// Phone is the immutable result of classifying one input string.
type Phone struct {
	sanitized      string
	nationalNumber string
	results        []CountryResult
}

// New sanitizes raw and classifies it against every candidate in table.
func New(raw string, table Table) *Phone {
	p := &Phone{sanitized: Sanitize(raw)}
	if p.sanitized == "" {
		return p
	}

	for _, country := range Resolve(p.sanitized, table) {
		national := p.sanitized[len(country.DialingCodePrefix):]
		valid, possible := Classify(national, country.Types)
		p.put(CountryResult{
			ID:             country.ID,
			NationalNumber: national,
			Valid:          valid,
			Possible:       possible,
		})
		p.nationalNumber = national
	}
	return p
}

// put keeps the first position of a repeated country id and replaces its result.
func (p *Phone) put(r CountryResult) {
	for i := range p.results {
		if p.results[i].ID == r.ID {
			p.results[i] = r
			return
		}
	}
	p.results = append(p.results, r)
}

func (p *Phone) Sanitized() string {
	return p.sanitized
}

// NationalNumber returns the national number of the last evaluated candidate.
//
// Deprecated: with several candidates this depends on table order; use
// NationalNumberFor.
func (p *Phone) NationalNumber() string {
	return p.nationalNumber
}

// NationalNumberFor returns the national number computed for country id.
func (p *Phone) NationalNumberFor(id string) (string, bool) {
	for _, r := range p.results {
		if r.ID == id {
			return r.NationalNumber, true
		}
	}
	return "", false
}

// Results returns a copy of the per-country results in table order.
func (p *Phone) Results() []CountryResult {
	out := make([]CountryResult, len(p.results))
	copy(out, p.results)
	return out
}

// Types returns the distinct valid types across all countries, first seen first.
func (p *Phone) Types() []Tag {
	return p.union(func(r CountryResult) []Tag { return r.Valid })
}

// PossibleTypes is Types for the possible lists.
func (p *Phone) PossibleTypes() []Tag {
	return p.union(func(r CountryResult) []Tag { return r.Possible })
}

func (p *Phone) union(pick func(CountryResult) []Tag) []Tag {
	seen := make(map[Tag]bool)
	tags := []Tag{}
	for _, r := range p.results {
		for _, t := range pick(r) {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}

func (p *Phone) Type() (Tag, bool) {
	types := p.Types()
	if len(types) == 0 {
		return 0, false
	}
	return types[0], true
}

func (p *Phone) Countries() []string {
	ids := make([]string, 0, len(p.results))
	for _, r := range p.results {
		ids = append(ids, r.ID)
	}
	return ids
}

func (p *Phone) Country() (string, bool) {
	if len(p.results) == 0 {
		return "", false
	}
	return p.results[0].ID, true
}

func (p *Phone) Valid() bool {
	for _, r := range p.results {
		if len(r.Valid) > 0 {
			return true
		}
	}
	return false
}

func (p *Phone) Invalid() bool {
	return !p.Valid()
}

func (p *Phone) Possible() bool {
	for _, r := range p.results {
		if len(r.Possible) > 0 {
			return true
		}
	}
	return false
}

func (p *Phone) Impossible() bool {
	return !p.Possible()
}

// ValidForCountry is true when id was a candidate with at least one valid type.
func (p *Phone) ValidForCountry(id string) bool {
	for _, r := range p.results {
		if r.ID == id && len(r.Valid) > 0 {
			return true
		}
	}
	return false
}

// InvalidForCountry does not distinguish an absent country from one without
// valid types.
func (p *Phone) InvalidForCountry(id string) bool {
	return !p.ValidForCountry(id)
}
