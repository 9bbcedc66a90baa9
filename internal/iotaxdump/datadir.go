package iotaxdump

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/gnames/gnfmt"
	"golang.org/x/sync/errgroup"
)

// taxID accepts a JSON number or a string that holds a number.
type taxID int64

func (t *taxID) UnmarshalJSON(bs []byte) error {
	s := strings.Trim(string(bs), `"`)
	if s == "" || s == "null" {
		*t = 0
		return nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("bad taxonomy ID %s", string(bs))
	}
	*t = taxID(i)
	return nil
}

// mibigEntry keeps only the taxonomy part of a MIBiG entry. Versions 1-3
// keep it in cluster.ncbi_tax_id, version 4 in taxonomy.ncbiTaxId.
type mibigEntry struct {
	Cluster *struct {
		NcbiTaxID taxID `json:"ncbi_tax_id"`
	} `json:"cluster"`
	Taxonomy *struct {
		NcbiTaxID taxID `json:"ncbiTaxId"`
	} `json:"taxonomy"`
}

func (m mibigEntry) taxID() int64 {
	if m.Taxonomy != nil && m.Taxonomy.NcbiTaxID != 0 {
		return int64(m.Taxonomy.NcbiTaxID)
	}
	if m.Cluster != nil {
		return int64(m.Cluster.NcbiTaxID)
	}
	return 0
}

// jsonFiles finds all JSON files under dir.
func jsonFiles(dir string) ([]string, error) {
	var res []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".json") {
			res = append(res, path)
		}
		return nil
	})
	return res, err
}

// collectIDs returns taxonomy IDs referenced by MIBiG entries in dir.
// It returns nil when dir is empty or holds no JSON files.
func (b *builder) collectIDs(
	ctx context.Context,
	dir string,
) (map[int64]struct{}, error) {
	if dir == "" {
		return nil, nil
	}
	files, err := jsonFiles(dir)
	if err != nil {
		return nil, DataDirError(dir, err)
	}
	if len(files) == 0 {
		slog.Warn("No MIBiG entries found, keeping the whole taxonomy",
			"dir", dir)
		return nil, nil
	}

	chIn := make(chan string)
	res := make(map[int64]struct{})
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(chIn)
		for _, f := range files {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case chIn <- f:
			}
		}
		return nil
	})

	for range max(b.cfg.JobsNumber, 1) {
		g.Go(func() error {
			enc := gnfmt.GNjson{}
			for path := range chIn {
				id, err := readEntryID(enc, path)
				if err != nil {
					return err
				}
				if id <= 0 {
					slog.Warn("MIBiG entry has no taxonomy ID", "file", path)
					continue
				}
				mu.Lock()
				res[id] = struct{}{}
				mu.Unlock()
			}
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, DataDirError(dir, err)
	}

	slog.Info("MIBiG entries scanned",
		"dir", dir, "files", len(files), "tax_ids", len(res))
	return res, nil
}

func readEntryID(enc gnfmt.GNjson, path string) (int64, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var m mibigEntry
	if err = enc.Decode(bs, &m); err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return m.taxID(), nil
}
