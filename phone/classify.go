// SPDX-License-Identifier: GPL-3.0-only

package phone

// Classify tests a national number against every defined type of one plan.
// The fixed-line/mobile decision is taken separately for the valid and the
// possible list, so valid may hold MOBILE while possible holds FIXED_OR_MOBILE.
func Classify(national string, types map[Tag]PatternPair) (valid, possible []Tag) {
	valid, possible = []Tag{}, []Tag{}

	general, ok := types[General]
	if !ok || !general.IsValid(national) {
		return valid, possible
	}

	for _, tag := range Tags() {
		if excludedFromScan(tag) {
			continue
		}
		pair, ok := types[tag]
		if !ok {
			continue
		}
		if pair.IsValid(national) {
			valid = append(valid, tag)
		}
		if pair.IsPossible(national) {
			possible = append(possible, tag)
		}
	}

	fixed, hasFixed := types[FixedLine]
	mobile, hasMobile := types[Mobile]
	same := hasFixed && hasMobile && fixed.Equal(mobile)

	switch {
	case hasFixed && fixed.IsValid(national):
		valid = append(valid, fixedTag(same))
	case hasMobile && mobile.IsValid(national):
		valid = append(valid, Mobile)
	}

	switch {
	case hasFixed && fixed.IsPossible(national):
		possible = append(possible, fixedTag(same))
	case hasMobile && mobile.IsPossible(national):
		possible = append(possible, Mobile)
	}

	return valid, possible
}

func excludedFromScan(tag Tag) bool {
	switch tag {
	case General, FixedLine, Mobile, FixedOrMobile:
		return true
	}
	return false
}

func fixedTag(sameAsMobile bool) Tag {
	if sameAsMobile {
		return FixedOrMobile
	}
	return FixedLine
}
