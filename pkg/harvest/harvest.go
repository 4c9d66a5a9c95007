// Package harvest defines the contracts between the harvest orchestration
// and its collaborators: the species-name source and the remote trait
// querier. Implementations with I/O live under internal/.
package harvest

import (
	"context"

	"github.com/gnames/gntraits/pkg/record"
	"github.com/gnames/gntraits/pkg/traits"
)

// NameSource produces the ordered, cleaned list of species names to
// harvest traits for.
type NameSource interface {
	// Names reads and cleans the species list. Errors here abort the
	// whole run; without names there is nothing to do.
	Names(ctx context.Context) ([]string, error)
}

// TraitQuerier returns the candidate records a remote database holds for
// one species. A query error is local to its species: the harvester logs
// it and treats the species as having zero candidates.
type TraitQuerier interface {
	// Login authenticates the client. It must be called once before
	// Query.
	Login(ctx context.Context) error

	// Query returns the candidate set for a species, in the source's
	// order. A species unknown to the source yields an empty set and no
	// error.
	Query(ctx context.Context, species string) ([]record.Record, error)

	// Close releases client resources such as the response cache.
	Close() error
}

// Harvester runs the whole extraction: names in, long-format table out.
type Harvester interface {
	// Harvest processes every species sequentially and accumulates the
	// result table. Per-species failures are skipped; only setup
	// failures return an error.
	Harvest(ctx context.Context) (*traits.Table, *Summary, error)
}
