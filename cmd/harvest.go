/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/gnames/gn"
	"github.com/gnames/gntraits/internal/iobacdive"
	"github.com/gnames/gntraits/internal/ioexport"
	"github.com/gnames/gntraits/internal/ioharvest"
	"github.com/gnames/gntraits/internal/ionames"
	"github.com/gnames/gntraits/pkg/config"
	"github.com/spf13/cobra"
)

// getHarvestCmd returns the harvest command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getHarvestCmd() *cobra.Command {
	var (
		inputFile  string
		outputFile string
		sqliteFile string
		limit      int
		noCache    bool
		noProgress bool
	)

	harvestCmd := &cobra.Command{
		Use:   "harvest",
		Short: "Collect phenotypic traits for species of an abundance profile",
		Long: `Read species names from a relative-abundance profile, query
BacDive for each species and write the collected traits as a
long-format table.

The input is a MetaPhlAn-style merged abundance table: tab-separated,
'#'-prefixed comment lines, one column with pipe-delimited taxonomic
lineages. Species are taken from the 's__' segment of each lineage.

Examples:
  # Harvest traits for all species of a profile
  gntraits harvest -i merged_abundance.tsv

  # Write CSV to a custom location and also produce a SQLite database
  gntraits harvest -i profile.tsv -o traits.csv --sqlite traits.db

  # Process only the first 10 species (useful for a dry run)
  gntraits harvest -i profile.tsv -l 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runHarvest(
				cmd, inputFile, outputFile,
				sqliteFile, limit, noCache, noProgress,
			)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	harvestCmd.Flags().StringVarP(
		&inputFile, "input", "i", "",
		"relative-abundance profile to take species from (required)",
	)
	harvestCmd.MarkFlagRequired("input")
	harvestCmd.Flags().StringVarP(
		&outputFile, "output", "o", "",
		"CSV output path (default gntraits.csv)",
	)
	harvestCmd.Flags().StringVar(
		&sqliteFile, "sqlite", "",
		"additionally write results into a SQLite database",
	)
	harvestCmd.Flags().IntVarP(
		&limit, "limit", "l", 0,
		"process only the first N species (0 = all)",
	)
	harvestCmd.Flags().BoolVar(
		&noCache, "no-cache", false,
		"do not use the local BacDive response cache",
	)
	harvestCmd.Flags().BoolVar(
		&noProgress, "no-progress", false,
		"disable the progress bar",
	)

	return harvestCmd
}

func runHarvest(
	cmd *cobra.Command,
	inputFile string,
	outputFile string,
	sqliteFile string,
	limit int,
	noCache bool,
	noProgress bool,
) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt,
	)
	defer stop()

	var opts []config.Option
	opts = append(opts, config.OptInputAbundanceFile(inputFile))
	if cmd.Flags().Changed("output") {
		opts = append(opts, config.OptOutputCSVFile(outputFile))
	}
	if cmd.Flags().Changed("sqlite") {
		opts = append(opts, config.OptOutputSQLiteFile(sqliteFile))
	}
	if cmd.Flags().Changed("limit") {
		opts = append(opts, config.OptLimit(limit))
	}
	if noCache {
		opts = append(opts, config.OptBacDiveUseCache(false))
	}
	if noProgress {
		opts = append(opts, config.OptShowProgress(false))
	}
	cfg.Update(opts)

	names := ionames.New(cfg)
	querier, err := iobacdive.New(cfg)
	if err != nil {
		return err
	}
	defer querier.Close()

	harvester := ioharvest.New(cfg, names, querier)
	table, summary, err := harvester.Harvest(ctx)
	if err != nil {
		return err
	}

	if err = ioexport.WriteCSV(cfg.Output.CSVFile, table); err != nil {
		return err
	}
	gn.Info("Saved <em>%d</em> rows to <em>%s</em>",
		table.Len(), cfg.Output.CSVFile)

	if cfg.Output.SQLiteFile != "" {
		err = ioexport.WriteSQLite(ctx, cfg.Output.SQLiteFile, table)
		if err != nil {
			return err
		}
		gn.Info("Saved results to <em>%s</em>", cfg.Output.SQLiteFile)
	}

	gn.Info("Gram stain reported for <em>%s</em> of species",
		summary.GramCoverage())

	return nil
}
