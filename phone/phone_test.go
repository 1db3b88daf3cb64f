// SPDX-License-Identifier: GPL-3.0-only

package phone

import (
	"encoding/json"
	"reflect"
	"testing"
)

func usTable() Table {
	return Table{{
		ID:                "US",
		DialingCodePrefix: "1",
		Types: map[Tag]PatternPair{
			General: MustPatternPair(`\d{10}`, `\d{10}`),
			Mobile:  MustPatternPair(`5551234567`, `\d{10}`),
		},
	}}
}

func TestNewClassifiesMobileNumber(t *testing.T) {
	p := New("15551234567", usTable())

	if country, ok := p.Country(); !ok || country != "US" {
		t.Errorf("Country() = %q, %v, want US", country, ok)
	}
	if p.NationalNumber() != "5551234567" {
		t.Errorf("NationalNumber() = %q, want 5551234567", p.NationalNumber())
	}
	if !p.Valid() || p.Invalid() {
		t.Error("expected number to be valid")
	}
	if typ, ok := p.Type(); !ok || typ != Mobile {
		t.Errorf("Type() = %v, %v, want MOBILE", typ, ok)
	}
	if !p.ValidForCountry("US") || p.InvalidForCountry("US") {
		t.Error("expected number to be valid for US")
	}
	if p.ValidForCountry("CA") || !p.InvalidForCountry("CA") {
		t.Error("expected number to be invalid for an absent country")
	}
}

func TestNewWithoutDigits(t *testing.T) {
	for _, raw := range []string{"", "not a number", "+-() "} {
		p := New(raw, usTable())
		if p.Valid() || p.Possible() {
			t.Errorf("%q: expected neither valid nor possible", raw)
		}
		if !p.Invalid() || !p.Impossible() {
			t.Errorf("%q: expected invalid and impossible", raw)
		}
		if len(p.Countries()) != 0 {
			t.Errorf("%q: Countries() = %v, want empty", raw, p.Countries())
		}
		if _, ok := p.Country(); ok {
			t.Errorf("%q: Country() should report none", raw)
		}
		if _, ok := p.Type(); ok {
			t.Errorf("%q: Type() should report none", raw)
		}
	}
}

func TestNewShortInput(t *testing.T) {
	gb := Table{{
		ID:                "GB",
		DialingCodePrefix: "44",
		Types:             map[Tag]PatternPair{General: MustPatternPair(`\d{10}`, `\d{10}`)},
	}}

	p := New("+1 (555) not-a-number", gb)
	if p.Sanitized() != "1555" {
		t.Errorf("Sanitized() = %q, want 1555", p.Sanitized())
	}
	if len(p.Countries()) != 0 || !p.Invalid() {
		t.Errorf("expected no countries and invalid, got %v", p.Countries())
	}

	// a matching prefix still makes the country a candidate, just without types
	p = New("+1 (555) not-a-number", usTable())
	if !reflect.DeepEqual(p.Countries(), []string{"US"}) {
		t.Errorf("Countries() = %v, want [US]", p.Countries())
	}
	if !p.Invalid() || !p.InvalidForCountry("US") {
		t.Error("expected number to be invalid")
	}
}

func TestNewSharedPrefixUnionsTypes(t *testing.T) {
	general := MustPatternPair(`\d{10}`, `\d{10}`)
	mobile := MustPatternPair(`7\d{9}`, `\d{10}`)
	table := Table{
		{ID: "GB", DialingCodePrefix: "44", Types: map[Tag]PatternPair{General: general, Mobile: mobile}},
		{ID: "GG", DialingCodePrefix: "44", Types: map[Tag]PatternPair{
			General: general,
			Pager:   MustPatternPair(`7\d{9}`, `\d{10}`),
			Mobile:  mobile,
		}},
	}

	p := New("+44 7700 900123", table)
	if !reflect.DeepEqual(p.Countries(), []string{"GB", "GG"}) {
		t.Errorf("Countries() = %v, want [GB GG]", p.Countries())
	}
	if !reflect.DeepEqual(p.Types(), []Tag{Mobile, Pager}) {
		t.Errorf("Types() = %v, want [MOBILE PAGER]", p.Types())
	}
	if !p.ValidForCountry("GB") || !p.ValidForCountry("GG") {
		t.Error("expected number to be valid for both countries")
	}
}

func TestNewFixedOrMobile(t *testing.T) {
	pair := MustPatternPair(`[2-9]\d{9}`, `\d{10}`)
	table := Table{{
		ID:                "US",
		DialingCodePrefix: "1",
		Types: map[Tag]PatternPair{
			General:   MustPatternPair(`[2-9]\d{9}`, `\d{10}`),
			FixedLine: pair,
			Mobile:    MustPatternPair(`[2-9]\d{9}`, `\d{10}`),
		},
	}}

	p := New("+1 650 253 0000", table)
	if typ, _ := p.Type(); typ != FixedOrMobile {
		t.Errorf("Type() = %v, want FIXED_OR_MOBILE", typ)
	}
	if !reflect.DeepEqual(p.PossibleTypes(), []Tag{FixedOrMobile}) {
		t.Errorf("PossibleTypes() = %v, want [FIXED_OR_MOBILE]", p.PossibleTypes())
	}
}

func TestNationalNumberPerCountry(t *testing.T) {
	general := MustPatternPair(`\d+`, `\d+`)
	table := Table{
		{ID: "US", DialingCodePrefix: "1", Types: map[Tag]PatternPair{General: general}},
		{ID: "BS", DialingCodePrefix: "1242", Types: map[Tag]PatternPair{General: general}},
	}

	p := New("12425551234", table)
	if p.NationalNumber() != "5551234" {
		t.Errorf("NationalNumber() = %q, want the last candidate's 5551234", p.NationalNumber())
	}
	if n, ok := p.NationalNumberFor("US"); !ok || n != "2425551234" {
		t.Errorf("NationalNumberFor(US) = %q, %v", n, ok)
	}
	if _, ok := p.NationalNumberFor("GB"); ok {
		t.Error("NationalNumberFor(GB) should report none")
	}
}

func TestDuplicateCountryKeepsFirstPosition(t *testing.T) {
	table := Table{
		{ID: "XK", DialingCodePrefix: "38", Types: map[Tag]PatternPair{General: MustPatternPair(`\d+`, `\d+`)}},
		{ID: "RS", DialingCodePrefix: "381", Types: map[Tag]PatternPair{General: MustPatternPair(`\d+`, `\d+`)}},
		{ID: "XK", DialingCodePrefix: "383", Types: map[Tag]PatternPair{
			General: MustPatternPair(`\d{8}`, `\d{8}`),
			Mobile:  MustPatternPair(`4\d{7}`, `\d{8}`),
		}},
	}

	p := New("38344123456", table)
	if !reflect.DeepEqual(p.Countries(), []string{"XK"}) {
		t.Errorf("Countries() = %v, want [XK]", p.Countries())
	}
	if typ, ok := p.Type(); !ok || typ != Mobile {
		t.Errorf("Type() = %v, %v, want the later entry's MOBILE", typ, ok)
	}
}

func TestTagText(t *testing.T) {
	for _, tag := range Tags() {
		b, err := tag.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", tag, err)
		}
		var back Tag
		if err := back.UnmarshalText(b); err != nil || back != tag {
			t.Errorf("UnmarshalText(%s) = %v, %v", b, back, err)
		}
	}

	for key, want := range map[string]Tag{"generalDesc": General, "fixedLine": FixedLine, "tollFree": TollFree, "voip": VoIP} {
		if got, err := ParseTag(key); err != nil || got != want {
			t.Errorf("ParseTag(%q) = %v, %v, want %v", key, got, err, want)
		}
	}
	if _, err := ParseTag("FIXED_OR_MOBILE"); err == nil {
		t.Error("FIXED_OR_MOBILE must not be accepted from metadata")
	}
	if _, err := ParseTag("satellite"); err == nil {
		t.Error("expected error for unknown tag")
	}
}

func TestCountryResultJSON(t *testing.T) {
	p := New("15551234567", usTable())
	b, err := json.Marshal(p.Results())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `[{"country":"US","national_number":"5551234567","valid_types":["MOBILE"],"possible_types":["MOBILE"]}]`
	if string(b) != want {
		t.Errorf("got %s, want %s", b, want)
	}
}
