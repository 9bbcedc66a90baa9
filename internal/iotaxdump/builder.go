// Package iotaxdump implements taxa.Builder on top of the NCBI
// new_taxdump files and a directory of MIBiG entries.
// This is an impure I/O package that reads files from disk.
package iotaxdump

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/mibigtaxa/pkg/config"
	"github.com/gnames/mibigtaxa/pkg/taxa"
)

type builder struct {
	cfg *config.Config
}

// New creates a Builder. Settings used are JobsNumber and
// Build.WithProgress.
func New(cfg *config.Config) taxa.Builder {
	return &builder{cfg: cfg}
}

// Build reads taxonomy lineages and merged IDs. If dataDir contains MIBiG
// entries, the result is limited to the taxonomy IDs they reference.
func (b *builder) Build(
	ctx context.Context,
	taxdump, mergedDump, dataDir string,
) (*taxa.Data, error) {
	startTime := time.Now()
	taxdump = resolvePath(taxdump, lineageFile)
	mergedDump = resolvePath(mergedDump, mergedFile)
	slog.Info("Building taxon cache",
		"taxdump", taxdump, "merged_dump", mergedDump, "data_dir", dataDir)

	wanted, err := b.collectIDs(ctx, dataDir)
	if err != nil {
		return nil, err
	}

	merged, err := b.readMerged(mergedDump)
	if err != nil {
		return nil, err
	}

	keep := keepIDs(wanted, merged)

	mappings, err := b.readLineages(taxdump, keep)
	if err != nil {
		return nil, err
	}

	res := &taxa.Data{
		Mappings:      mappings,
		DeprecatedIDs: deprecatedIDs(wanted, merged, mappings),
	}

	if wanted != nil {
		reportMissing(wanted, res)
	}

	slog.Info("Taxon cache built",
		"entries", humanize.Comma(int64(len(res.Mappings))),
		"deprecated_ids", humanize.Comma(int64(len(res.DeprecatedIDs))),
		"duration", gnfmt.TimeString(time.Since(startTime).Seconds()),
	)
	return res, nil
}

// keepIDs returns the wanted IDs together with the current IDs of wanted
// merged ones. Nil means keep everything.
func keepIDs(
	wanted map[int64]struct{},
	merged map[int64]int64,
) map[int64]struct{} {
	if wanted == nil {
		return nil
	}
	res := make(map[int64]struct{}, len(wanted))
	for id := range wanted {
		if cur, ok := merged[id]; ok {
			res[cur] = struct{}{}
			continue
		}
		res[id] = struct{}{}
	}
	return res
}

// deprecatedIDs selects merged IDs that point to a loaded entry and are
// not loaded themselves.
func deprecatedIDs(
	wanted map[int64]struct{},
	merged map[int64]int64,
	mappings map[int64]taxa.Entry,
) map[int64]int64 {
	res := make(map[int64]int64)
	var dropped int
	for old, cur := range merged {
		if wanted != nil {
			if _, ok := wanted[old]; !ok {
				continue
			}
		}
		if _, ok := mappings[old]; ok {
			dropped++
			slog.Warn("Merged ID is still a current ID, ignoring merge",
				"tax_id", old, "current_id", cur)
			continue
		}
		if _, ok := mappings[cur]; !ok {
			dropped++
			slog.Debug("Merged ID points to missing taxon",
				"tax_id", old, "current_id", cur)
			continue
		}
		res[old] = cur
	}
	if dropped > 0 {
		slog.Warn("Some merged IDs were dropped", "count", dropped)
	}
	return res
}

func reportMissing(wanted map[int64]struct{}, d *taxa.Data) {
	var missing []int64
	for id := range wanted {
		if _, ok := d.Mappings[id]; ok {
			continue
		}
		if _, ok := d.DeprecatedIDs[id]; ok {
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) > 0 {
		slog.Warn("Taxonomy IDs from MIBiG entries not found in taxonomy",
			"count", len(missing), "tax_ids", missing)
	}
}
