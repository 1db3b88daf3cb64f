// SPDX-License-Identifier: GPL-3.0-only

package phone

import (
	"fmt"
	"regexp"
)

// PatternPair holds the strict and the length-based pattern of one number type.
// Both are anchored at compile time.
type PatternPair struct {
	National *regexp.Regexp
	Possible *regexp.Regexp
}

// CompilePatternPair anchors and compiles both patterns.
func CompilePatternPair(national, possible string) (PatternPair, error) {
	n, err := regexp.Compile(anchor(national))
	if err != nil {
		return PatternPair{}, fmt.Errorf("national number pattern: %w", err)
	}
	p, err := regexp.Compile(anchor(possible))
	if err != nil {
		return PatternPair{}, fmt.Errorf("possible number pattern: %w", err)
	}
	return PatternPair{National: n, Possible: p}, nil
}

// MustPatternPair is CompilePatternPair for static data and tests.
func MustPatternPair(national, possible string) PatternPair {
	pp, err := CompilePatternPair(national, possible)
	if err != nil {
		panic(err)
	}
	return pp
}

func anchor(pattern string) string {
	return "^(?:" + pattern + ")$"
}

// Equal compares both patterns by source text.
func (pp PatternPair) Equal(other PatternPair) bool {
	return source(pp.National) == source(other.National) &&
		source(pp.Possible) == source(other.Possible)
}

func source(re *regexp.Regexp) string {
	if re == nil {
		return ""
	}
	return re.String()
}

// IsPossible reports whether the possible pattern spans the whole number.
func (pp PatternPair) IsPossible(number string) bool {
	return fullMatch(pp.Possible, number)
}

// IsValid reports whether both patterns span the whole number.
func (pp PatternPair) IsValid(number string) bool {
	return fullMatch(pp.National, number) && fullMatch(pp.Possible, number)
}

func fullMatch(re *regexp.Regexp, s string) bool {
	if re == nil {
		return false
	}
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}
