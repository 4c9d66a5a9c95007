// Package ionames acquires the species list for a harvest from a
// MetaPhlAn-style relative-abundance table. It extracts species-level
// clade names from pipe-delimited lineages, filters placeholder labels,
// and verifies the remaining names with gnparser under the bacterial
// nomenclatural code.
package ionames

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gntraits/pkg/config"
	"github.com/gnames/gntraits/pkg/harvest"
)

// Abundance tables can carry hundreds of sample columns per line.
const maxLineSize = 4 * 1024 * 1024

type namesrc struct {
	cfg    *config.Config
	parser gnparser.GNparser
}

// New creates a NameSource reading the abundance table configured in cfg.
func New(cfg *config.Config) harvest.NameSource {
	pCfg := gnparser.NewConfig(gnparser.OptCode(nomcode.Bacterial))
	return &namesrc{
		cfg:    cfg,
		parser: gnparser.New(pCfg),
	}
}

func (n *namesrc) Names(ctx context.Context) ([]string, error) {
	path := n.cfg.Input.AbundanceFile
	f, err := os.Open(path)
	if err != nil {
		return nil, NamesFileError(path, err)
	}
	defer f.Close()

	names, err := n.readNames(ctx, f)
	if err != nil {
		return nil, err
	}
	slog.Info("Acquired species names",
		"file", path, "species", len(names))
	return names, nil
}

// readNames scans the table line by line. The first non-comment line is
// the header and locates the lineage column; every following line
// contributes at most one species name.
func (n *namesrc) readNames(
	ctx context.Context,
	r io.Reader,
) ([]string, error) {
	path := n.cfg.Input.AbundanceFile
	column := n.cfg.Input.LineageColumn

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	colIdx := -1
	seen := make(map[string]struct{})
	var names []string

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")

		if colIdx < 0 {
			for i, h := range fields {
				if strings.TrimSpace(h) == column {
					colIdx = i
					break
				}
			}
			if colIdx < 0 {
				return nil, NamesColumnError(path, column)
			}
			continue
		}

		if colIdx >= len(fields) {
			continue
		}
		name, ok := speciesFromLineage(fields[colIdx])
		if !ok || isPlaceholder(name) {
			continue
		}
		canonical, ok := n.clean(name)
		if !ok {
			slog.Debug("Dropping unparseable name", "name", name)
			continue
		}
		if _, ok := seen[canonical]; ok {
			continue
		}
		seen[canonical] = struct{}{}
		names = append(names, canonical)
	}

	if err := scanner.Err(); err != nil {
		return nil, NamesFileError(path, err)
	}
	if len(names) == 0 {
		return nil, NamesEmptyError(path)
	}
	return names, nil
}

// clean verifies a name with gnparser and returns its simple canonical
// form. Only clean binomials are kept: no surrogates, no hybrids, no
// genus-only or trinomial labels.
func (n *namesrc) clean(name string) (string, bool) {
	p := n.parser.ParseName(name)
	if !p.Parsed || p.Surrogate != nil || p.Hybrid != nil {
		return "", false
	}
	if p.Cardinality != 2 {
		return "", false
	}
	return p.Canonical.Simple, true
}

// speciesFromLineage returns the species name encoded in a pipe-delimited
// taxonomic lineage, e.g. "k__Bacteria|...|s__Escherichia_coli". Lineages
// ending below or above species level report false.
func speciesFromLineage(lineage string) (string, bool) {
	segs := strings.Split(lineage, "|")
	last := strings.TrimSpace(segs[len(segs)-1])
	if !strings.HasPrefix(last, "s__") {
		return "", false
	}
	name := strings.TrimPrefix(last, "s__")
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	return name, true
}

// isPlaceholder reports profiler labels that are not real binomials:
// unclassified buckets, uncultured organisms, "Genus sp" style names, and
// MetaPhlAn genome-bin identifiers (CAG/SGB/GGB).
func isPlaceholder(name string) bool {
	lower := strings.ToLower(name)
	for _, part := range []string{"unclassified", "uncultured", "unknown"} {
		if strings.Contains(lower, part) {
			return true
		}
	}
	for _, tok := range strings.Fields(lower) {
		switch tok {
		case "sp", "sp.", "bacterium", "archaeon":
			return true
		}
		if strings.HasPrefix(tok, "cag-") ||
			strings.HasPrefix(tok, "sgb") ||
			strings.HasPrefix(tok, "ggb") {
			return true
		}
	}
	return false
}
