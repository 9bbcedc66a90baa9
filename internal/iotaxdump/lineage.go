package iotaxdump

import (
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gnames/mibigtaxa/pkg/taxa"
)

// lineageFields is the number of fields in rankedlineage.dmp: tax_id,
// tax_name and eight ranks from species to superkingdom.
const lineageFields = 10

// parseLineage converts fields of rankedlineage.dmp into an Entry.
func parseLineage(n int, fields []string) (taxa.Entry, error) {
	if len(fields) < lineageFields {
		return taxa.Entry{}, lineError(n,
			"expected %d fields, got %d", lineageFields, len(fields))
	}
	id, err := parseID(fields[0])
	if err != nil {
		return taxa.Entry{}, lineError(n, "bad tax_id %q", fields[0])
	}
	if fields[1] == "" {
		return taxa.Entry{}, lineError(n, "empty tax_name for %d", id)
	}
	return taxa.NewEntry(id, fields[1], fields[2:lineageFields]...), nil
}

// readLineages loads entries from rankedlineage.dmp. When keep is not
// nil, only entries with IDs in keep are returned.
func (b *builder) readLineages(
	path string,
	keep map[int64]struct{},
) (map[int64]taxa.Entry, error) {
	res := make(map[int64]taxa.Entry)
	err := b.readDump(path, "lineage ", func(n int, fields []string) error {
		e, err := parseLineage(n, fields)
		if err != nil {
			return err
		}
		if keep != nil {
			if _, ok := keep[e.TaxID]; !ok {
				return nil
			}
		}
		res[e.TaxID] = e
		return nil
	})
	if err != nil {
		return nil, TaxdumpError(path, err)
	}

	slog.Info("Lineages loaded",
		"path", path, "count", humanize.Comma(int64(len(res))))
	return res, nil
}
