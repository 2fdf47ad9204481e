package engine

import (
	"regexp"
	"time"

	"formval/internal/field"
)

// nricPattern matches the fixed NRIC/FIN layout: a series prefix,
// seven digits and a checksum letter.
var nricPattern = regexp.MustCompile(`^[STFGM]\d{7}[A-Z]$`)

var nricWeights = [7]int{2, 7, 6, 5, 4, 3, 2}

// Checksum letter tables per prefix series, indexed by the weighted
// digit sum modulo 11.
var (
	stChecksum = [11]byte{'J', 'Z', 'I', 'H', 'G', 'F', 'E', 'D', 'C', 'B', 'A'}
	fgChecksum = [11]byte{'X', 'W', 'U', 'T', 'R', 'Q', 'P', 'N', 'M', 'L', 'K'}
	mChecksum  = [11]byte{'K', 'L', 'J', 'N', 'P', 'Q', 'R', 'T', 'U', 'W', 'X'}
)

// validateNric checks the national ID checksum: the weighted digit sum,
// offset by the series (T/G add 4, M adds 3), selects the expected
// checksum letter from the prefix's table.
func validateNric(f *field.Field, resp *field.Response, _ time.Time) *FieldError {
	if done, err := checkEmptyAnswer(f, resp.Answer); done {
		return err
	}
	if !isNricValid(resp.Answer) {
		return invalidAnswer()
	}
	return nil
}

func isNricValid(id string) bool {
	if !nricPattern.MatchString(id) {
		return false
	}
	sum := 0
	for i := 0; i < 7; i++ {
		sum += int(id[i+1]-'0') * nricWeights[i]
	}
	switch id[0] {
	case 'T', 'G':
		sum += 4
	case 'M':
		sum += 3
	}
	r := sum % 11

	var want byte
	switch id[0] {
	case 'S', 'T':
		want = stChecksum[r]
	case 'F', 'G':
		want = fgChecksum[r]
	case 'M':
		want = mChecksum[10-r]
	}
	return id[8] == want
}
