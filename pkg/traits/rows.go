package traits

// Trait category tags used in the set_type column.
const (
	SetGramStain  = "gram_stain"
	SetCellShape  = "cell_shape"
	SetMotility   = "motility"
	SetOxygen     = "oxygen_tolerance"
	SetMetabolite = "metabolite"
	SetEnzyme     = "enzyme"
)

// Row is one long-format observation: one (species, trait-category,
// trait-instance) triple. Rows are immutable once built.
type Row struct {
	Species string
	SetType string
	SetID   string
	Value   string
}

// Headers is the column order of the long-format table.
func Headers() []string {
	return []string{"species", "set_type", "set_id", "value"}
}

// Values returns the row fields in Headers order.
func (r Row) Values() []string {
	return []string{r.Species, r.SetType, r.SetID, r.Value}
}

// PresenceRows builds one "+" row per distinct value of a list-valued
// trait. The value itself becomes the set_id. Zero input values produce
// zero rows -- no placeholder.
func PresenceRows(species, setType string, values []string) []Row {
	values = unique(values)
	var rows []Row
	for _, v := range values {
		rows = append(rows, Row{
			Species: species,
			SetType: setType,
			SetID:   v,
			Value:   "+",
		})
	}
	return rows
}

// ScalarRow builds the single row of a single-valued trait. The category
// tag doubles as the set_id, and the NotReported sentinel is emitted like
// any other value.
func ScalarRow(species, setType, value string) Row {
	return Row{
		Species: species,
		SetType: setType,
		SetID:   setType,
		Value:   value,
	}
}
