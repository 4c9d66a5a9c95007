// Package ioharvest orchestrates a harvest run: it streams the species
// list through the BacDive querier and folds every species' extracted
// traits into one long-format table. Species are processed one at a time
// in input order; a failed query skips its species and never aborts the
// run.
package ioharvest

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gntraits/pkg/config"
	"github.com/gnames/gntraits/pkg/harvest"
	"github.com/gnames/gntraits/pkg/traits"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type harvester struct {
	cfg     *config.Config
	names   harvest.NameSource
	querier harvest.TraitQuerier
}

// New creates a Harvester wiring a name source to a trait querier.
func New(
	cfg *config.Config,
	names harvest.NameSource,
	querier harvest.TraitQuerier,
) harvest.Harvester {
	return &harvester{cfg: cfg, names: names, querier: querier}
}

// speciesResult is the outcome of processing one species.
type speciesResult struct {
	species      string
	rows         []traits.Row
	gramReported bool
}

func (h *harvester) Harvest(
	ctx context.Context,
) (*traits.Table, *harvest.Summary, error) {
	start := time.Now()
	summary := &harvest.Summary{RunID: uuid.NewString()}

	names, err := h.names.Names(ctx)
	if err != nil {
		return nil, nil, err
	}
	if h.cfg.Limit > 0 && len(names) > h.cfg.Limit {
		names = names[:h.cfg.Limit]
	}
	summary.TotalSpecies = len(names)

	if err := h.querier.Login(ctx); err != nil {
		return nil, nil, err
	}

	slog.Info("Starting harvest",
		"run_id", summary.RunID, "species", len(names))

	table := &traits.Table{}
	if err := h.runPipeline(ctx, names, table, summary); err != nil {
		return nil, nil, err
	}
	summary.Rows = table.Len()

	duration := time.Since(start)
	slog.Info("Completed harvest",
		"run_id", summary.RunID,
		"species", summary.TotalSpecies,
		"withRecords", summary.WithRecords,
		"rows", summary.Rows,
		"gramCoverage", summary.GramCoverage(),
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info(
		"Harvested <em>%s</em> trait rows for %d of %d species in %s",
		humanize.Comma(int64(summary.Rows)),
		summary.WithRecords,
		summary.TotalSpecies,
		gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info(
		"Gram stain reported for <em>%s</em> of species",
		summary.GramCoverage(),
	)
	return table, summary, nil
}

// runPipeline moves species through three stages: a streamer feeding
// names, one worker querying and extracting (a single worker honors both
// input order and API pacing), and a collector folding rows into the
// table.
func (h *harvester) runPipeline(
	ctx context.Context,
	names []string,
	table *traits.Table,
	summary *harvest.Summary,
) error {
	chIn := make(chan string)
	chOut := make(chan speciesResult)

	g, gCtx := errgroup.WithContext(ctx)

	// Stage 1: stream species names.
	g.Go(func() error {
		defer close(chIn)
		for _, name := range names {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			case chIn <- name:
			}
		}
		return nil
	})

	// Stage 2: query and extract.
	g.Go(func() error {
		defer close(chOut)
		for name := range chIn {
			recs, err := h.querier.Query(gCtx, name)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return err
				}
				// A failed query means zero candidates for this
				// species; the run continues.
				slog.Warn("Query failed, skipping species",
					"species", name, "error", err)
				recs = nil
			}
			rows, gram := traits.SpeciesRows(name, recs)
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			case chOut <- speciesResult{
				species:      name,
				rows:         rows,
				gramReported: gram,
			}:
			}
		}
		return nil
	})

	// Stage 3: collect rows and statistics.
	g.Go(func() error {
		bar := newProgressBar(
			len(names), "Harvesting traits: ", h.cfg.ShowProgress,
		)
		defer bar.Finish()

		for res := range chOut {
			table.Append(res.rows...)
			if len(res.rows) > 0 {
				summary.WithRecords++
			}
			if res.gramReported {
				summary.GramReported++
			}
			bar.Increment()
		}
		return nil
	})

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return PipelineError(err)
	}
	return err
}
