package traits

import (
	"strings"

	"github.com/gnames/gntraits/pkg/record"
)

// SelectPreferred picks one record out of a species' candidate set.
// The first candidate flagged as a type strain wins; without type strains
// the first candidate in input order is used. An empty candidate set
// reports false, and the species contributes nothing downstream.
func SelectPreferred(candidates []record.Record) (record.Record, bool) {
	if len(candidates) == 0 {
		return nil, false
	}
	for _, c := range candidates {
		if isTypeStrain(c) {
			return c, true
		}
	}
	return candidates[0], true
}

// isTypeStrain matches the type strain field case-insensitively against
// "yes". Any other value, including an absent field, is not a type strain.
func isTypeStrain(rec record.Record) bool {
	v, ok := record.Navigate(rec, secTaxonomy, "type strain")
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}
