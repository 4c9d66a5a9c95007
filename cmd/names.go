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
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gntraits/internal/ionames"
	"github.com/gnames/gntraits/pkg/config"
	"github.com/spf13/cobra"
)

// getNamesCmd returns the names command.
func getNamesCmd() *cobra.Command {
	var inputFile string

	namesCmd := &cobra.Command{
		Use:   "names",
		Short: "Preview species names extracted from an abundance profile",
		Long: `Show the cleaned species list that a harvest would query,
without touching BacDive.

Useful to check how many names survive lineage parsing and
placeholder filtering before spending time on API calls.

Example:
  gntraits names -i merged_abundance.tsv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runNames(inputFile)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	namesCmd.Flags().StringVarP(
		&inputFile, "input", "i", "",
		"relative-abundance profile to take species from (required)",
	)
	namesCmd.MarkFlagRequired("input")

	return namesCmd
}

func runNames(inputFile string) error {
	cfg.Update([]config.Option{
		config.OptInputAbundanceFile(inputFile),
	})

	src := ionames.New(cfg)
	names, err := src.Names(context.Background())
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Println(name)
	}
	gn.Info("Found <em>%d</em> species names", len(names))

	return nil
}
