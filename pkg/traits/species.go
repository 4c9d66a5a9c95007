package traits

import "github.com/gnames/gntraits/pkg/record"

// SpeciesRows reduces one species' candidate set to its long-format rows.
// The preferred record is selected, every extractor runs over it, and the
// extracted values are flattened into rows. The second return reports
// whether gram stain had a recorded value; the caller folds it into
// coverage statistics.
//
// An empty candidate set produces no rows at all: the species is absent
// from the output, including any NotReported rows.
func SpeciesRows(species string, candidates []record.Record) ([]Row, bool) {
	rec, ok := SelectPreferred(candidates)
	if !ok {
		return nil, false
	}

	gram := MorphologyTrait(rec, "gram stain")

	var rows []Row
	rows = append(rows, PresenceRows(species, SetMetabolite, PositiveMetabolites(rec))...)
	rows = append(rows, PresenceRows(species, SetEnzyme, PositiveEnzymes(rec))...)
	rows = append(rows,
		ScalarRow(species, SetOxygen, OxygenTolerance(rec)),
		ScalarRow(species, SetGramStain, gram),
		ScalarRow(species, SetCellShape, MorphologyTrait(rec, "cell shape")),
		ScalarRow(species, SetMotility, MorphologyTrait(rec, "motility")),
	)
	return rows, gram != NotReported
}
