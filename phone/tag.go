// SPDX-License-Identifier: GPL-3.0-only

package phone

import (
	"fmt"
	"strings"
)

// Tag identifies a number type of a numbering plan.
type Tag int

const (
	General Tag = iota
	PremiumRate
	TollFree
	SharedCost
	VoIP
	PersonalNumber
	Pager
	UAN
	Voicemail
	FixedLine
	Mobile
	// FixedOrMobile is only ever produced by Classify, never read from metadata.
	FixedOrMobile
)

var tagNames = [...]string{
	General:        "GENERAL",
	PremiumRate:    "PREMIUM_RATE",
	TollFree:       "TOLL_FREE",
	SharedCost:     "SHARED_COST",
	VoIP:           "VOIP",
	PersonalNumber: "PERSONAL_NUMBER",
	Pager:          "PAGER",
	UAN:            "UAN",
	Voicemail:      "VOICEMAIL",
	FixedLine:      "FIXED_LINE",
	Mobile:         "MOBILE",
	FixedOrMobile:  "FIXED_OR_MOBILE",
}

// metadata keys as they appear in libphonenumber-derived data
var metadataKeys = map[string]Tag{
	"generaldesc":    General,
	"premiumrate":    PremiumRate,
	"tollfree":       TollFree,
	"sharedcost":     SharedCost,
	"voip":           VoIP,
	"personalnumber": PersonalNumber,
	"pager":          Pager,
	"uan":            UAN,
	"voicemail":      Voicemail,
	"fixedline":      FixedLine,
	"mobile":         Mobile,
}

// Tags returns every tag in declaration order.
func Tags() []Tag {
	tags := make([]Tag, 0, len(tagNames))
	for t := range tagNames {
		tags = append(tags, Tag(t))
	}
	return tags
}

func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return fmt.Sprintf("Tag(%d)", int(t))
	}
	return tagNames[t]
}

// ParseTag accepts either the upper snake case name (FIXED_LINE) or the
// camel case metadata key (fixedLine). FIXED_OR_MOBILE is rejected since it
// never appears in source data.
func ParseTag(s string) (Tag, error) {
	for t, name := range tagNames {
		if Tag(t) != FixedOrMobile && strings.EqualFold(s, name) {
			return Tag(t), nil
		}
	}
	if t, ok := metadataKeys[strings.ToLower(s)]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("unknown number type %q", s)
}

func (t Tag) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(tagNames) {
		return nil, fmt.Errorf("invalid tag %d", int(t))
	}
	return []byte(tagNames[t]), nil
}

func (t *Tag) UnmarshalText(b []byte) error {
	s := string(b)
	if s == tagNames[FixedOrMobile] {
		*t = FixedOrMobile
		return nil
	}
	parsed, err := ParseTag(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
