package traits_test

import (
	"testing"

	"github.com/gnames/gntraits/pkg/record"
	"github.com/gnames/gntraits/pkg/traits"
	"github.com/stretchr/testify/assert"
)

func morphRecord(block any) record.Record {
	return record.Record{
		"Morphology": map[string]any{"cell morphology": block},
	}
}

func physRecord(section string, block any) record.Record {
	return record.Record{
		"Physiology and metabolism": map[string]any{section: block},
	}
}

func TestMorphologyTrait(t *testing.T) {
	tests := []struct {
		name  string
		rec   record.Record
		field string
		want  string
	}{
		{
			name:  "missing section",
			rec:   record.Record{},
			field: "cell shape",
			want:  traits.NotReported,
		},
		{
			name:  "single entry",
			rec:   morphRecord(map[string]any{"cell shape": "rod"}),
			field: "cell shape",
			want:  "rod",
		},
		{
			name: "sequence of entries",
			rec: morphRecord([]any{
				map[string]any{"cell shape": "rod"},
				map[string]any{"cell shape": "coccus"},
			}),
			field: "cell shape",
			want:  "rod; coccus",
		},
		{
			name: "duplicates collapse, input order kept",
			rec: morphRecord([]any{
				map[string]any{"cell shape": "coccus"},
				map[string]any{"cell shape": "rod"},
				map[string]any{"cell shape": "coccus"},
			}),
			field: "cell shape",
			want:  "coccus; rod",
		},
		{
			name: "empty and whitespace values skipped",
			rec: morphRecord([]any{
				map[string]any{"cell shape": "  "},
				map[string]any{"cell shape": " rod "},
			}),
			field: "cell shape",
			want:  "rod",
		},
		{
			name:  "field missing from entry",
			rec:   morphRecord(map[string]any{"gram stain": "negative"}),
			field: "cell shape",
			want:  traits.NotReported,
		},
		{
			name:  "malformed block",
			rec:   morphRecord([]any{"rod", "coccus"}),
			field: "cell shape",
			want:  traits.NotReported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := traits.MorphologyTrait(tt.rec, tt.field)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOxygenTolerance(t *testing.T) {
	tests := []struct {
		name string
		rec  record.Record
		want string
	}{
		{
			name: "missing section",
			rec:  record.Record{},
			want: traits.NotReported,
		},
		{
			name: "values are lower-cased",
			rec: physRecord("oxygen tolerance",
				map[string]any{"oxygen tolerance": "Aerobe"}),
			want: "aerobe",
		},
		{
			name: "sequence with duplicates after lower-casing",
			rec: physRecord("oxygen tolerance", []any{
				map[string]any{"oxygen tolerance": "Aerobe"},
				map[string]any{"oxygen tolerance": "microaerophile"},
				map[string]any{"oxygen tolerance": "aerobe"},
			}),
			want: "aerobe; microaerophile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, traits.OxygenTolerance(tt.rec))
		})
	}
}

func TestPositiveMetabolites(t *testing.T) {
	rec := physRecord("metabolite utilization", []any{
		map[string]any{"metabolite": "glucose", "utilization activity": "+"},
		map[string]any{"metabolite": "lactose", "utilization activity": "-"},
		map[string]any{"metabolite": " maltose ", "utilization activity": "+"},
		map[string]any{"utilization activity": "+"},
		map[string]any{"metabolite": "glucose", "utilization activity": "+"},
	})

	got := traits.PositiveMetabolites(rec)
	assert.Equal(t, []string{"glucose", "maltose"}, got)
}

// No matches yield an empty collection, not the NotReported sentinel.
func TestPositiveMetabolitesEmpty(t *testing.T) {
	assert.Empty(t, traits.PositiveMetabolites(record.Record{}))

	rec := physRecord("metabolite utilization", []any{
		map[string]any{"metabolite": "glucose", "utilization activity": "-"},
	})
	assert.Empty(t, traits.PositiveMetabolites(rec))
}

func TestPositiveEnzymes(t *testing.T) {
	rec := physRecord("enzymes", []any{
		map[string]any{"value": "catalase", "activity": "+"},
		map[string]any{"value": "urease", "activity": "-"},
		map[string]any{"value": "oxidase", "activity": "+"},
		map[string]any{"activity": "+"},
	})

	got := traits.PositiveEnzymes(rec)
	assert.Equal(t, []string{"catalase", "oxidase"}, got)
}

func TestPositiveEnzymesSingleEntry(t *testing.T) {
	rec := physRecord("enzymes",
		map[string]any{"value": "catalase", "activity": "+"})

	assert.Equal(t, []string{"catalase"}, traits.PositiveEnzymes(rec))
}

func TestPositiveEnzymesEmpty(t *testing.T) {
	assert.Empty(t, traits.PositiveEnzymes(record.Record{}))
}
