// Package traits turns heterogeneous BacDive strain records into flat
// long-format trait rows. All functions are pure: they navigate a record,
// normalize the shape of the addressed section, filter its entries, and
// format the result. Records are never modified.
package traits

import (
	"strconv"
	"strings"

	"github.com/gnames/gntraits/pkg/record"
)

// NotReported marks a single-valued trait with no recorded occurrences.
// Unlike the list-valued traits, it is emitted as a row downstream.
const NotReported = "not reported"

// Section names follow the BacDive record layout.
const (
	secTaxonomy   = "Name and taxonomic classification"
	secMorphology = "Morphology"
	secPhysiology = "Physiology and metabolism"
)

// MorphologyTrait extracts one named field from the cell morphology block.
// Unique non-empty values are joined by "; " in input order; NotReported
// is returned when the block is missing or holds no value for the field.
func MorphologyTrait(rec record.Record, field string) string {
	sub, _ := record.Navigate(rec, secMorphology, "cell morphology")
	var vals []string
	for _, e := range record.Entries(sub, field) {
		v, ok := fieldString(e, field)
		if !ok {
			continue
		}
		vals = append(vals, v)
	}
	return joinOrNotReported(vals)
}

// OxygenTolerance extracts the oxygen tolerance values of a record,
// lower-cased, with the same join-or-NotReported rule as MorphologyTrait.
func OxygenTolerance(rec record.Record) string {
	sub, _ := record.Navigate(rec, secPhysiology, "oxygen tolerance")
	var vals []string
	for _, e := range record.Entries(sub, "oxygen tolerance") {
		v, ok := fieldString(e, "oxygen tolerance")
		if !ok {
			continue
		}
		vals = append(vals, strings.ToLower(v))
	}
	return joinOrNotReported(vals)
}

// PositiveMetabolites collects the names of metabolites the strain tested
// positive for. No matches yield an empty collection, not NotReported:
// downstream an empty collection means zero rows.
func PositiveMetabolites(rec record.Record) []string {
	sub, _ := record.Navigate(rec, secPhysiology, "metabolite utilization")
	var vals []string
	for _, e := range record.Entries(sub, "metabolite") {
		act, ok := fieldString(e, "utilization activity")
		if !ok || act != "+" {
			continue
		}
		name, ok := fieldString(e, "metabolite")
		if !ok {
			continue
		}
		vals = append(vals, name)
	}
	return unique(vals)
}

// PositiveEnzymes collects the names of enzymes with recorded "+" activity.
// Like PositiveMetabolites, no matches yield an empty collection.
func PositiveEnzymes(rec record.Record) []string {
	sub, _ := record.Navigate(rec, secPhysiology, "enzymes")
	var vals []string
	for _, e := range record.Entries(sub, "value") {
		act, ok := fieldString(e, "activity")
		if !ok || act != "+" {
			continue
		}
		name, ok := fieldString(e, "value")
		if !ok {
			continue
		}
		vals = append(vals, name)
	}
	return unique(vals)
}

// fieldString returns the trimmed scalar value of a field. Missing fields,
// empty strings, and nested values all report false.
func fieldString(entry map[string]any, field string) (string, bool) {
	raw, ok := entry[field]
	if !ok {
		return "", false
	}
	var s string
	switch v := raw.(type) {
	case string:
		s = v
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(v)
	default:
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

func joinOrNotReported(vals []string) string {
	vals = unique(vals)
	if len(vals) == 0 {
		return NotReported
	}
	return strings.Join(vals, "; ")
}

// unique deduplicates values preserving first-seen order.
func unique(vals []string) []string {
	seen := make(map[string]struct{}, len(vals))
	res := make([]string, 0, len(vals))
	for _, v := range vals {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}
