package taxa

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gnames/mibigtaxa/pkg/errcode"
)

// Data is the content of a taxon cache.
type Data struct {
	// Mappings connects a current taxonomy ID to its entry.
	Mappings map[int64]Entry

	// DeprecatedIDs connects a merged (retired) taxonomy ID to the ID that
	// replaced it. The target is always a key of Mappings.
	DeprecatedIDs map[int64]int64
}

// NewData returns empty Data.
func NewData() *Data {
	return &Data{
		Mappings:      make(map[int64]Entry),
		DeprecatedIDs: make(map[int64]int64),
	}
}

// Validate checks that every entry has a name and all ranks, that no
// deprecated ID is live and that every deprecated ID points to a live one.
func (d *Data) Validate() error {
	for old, cur := range d.DeprecatedIDs {
		if _, ok := d.Mappings[old]; ok {
			return fmt.Errorf("deprecated ID %d is also a current ID", old)
		}
		if _, ok := d.Mappings[cur]; !ok {
			return fmt.Errorf(
				"deprecated ID %d points to unknown ID %d", old, cur,
			)
		}
	}
	for id, e := range d.Mappings {
		if id != e.TaxID {
			return fmt.Errorf("key %d holds entry with ID %d", id, e.TaxID)
		}
		if e.Name == "" {
			return fmt.Errorf("entry %d has no name", id)
		}
		for _, r := range Ranks {
			if e.Rank(r) == "" {
				return fmt.Errorf("entry %d has empty %s, want %q", id, r, Unknown)
			}
		}
	}
	return nil
}

// Builder creates cache content from an NCBI taxonomy dump, a merged IDs
// dump and an auxiliary data directory.
type Builder interface {
	// Build returns Data that passes Validate, or an error describing
	// what went wrong.
	Build(
		ctx context.Context,
		taxdump, mergedDump, dataDir string,
	) (*Data, error)
}

// Cache resolves taxonomy IDs to entries. It is read-only once populated
// by InitialiseFromPaths or LoadPath. The zero value is an empty cache.
type Cache struct {
	data Data
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{data: *NewData()}
}

// Open creates a Cache and loads its content from a cache file.
func Open(path string) (*Cache, error) {
	res := New()
	if _, err := res.LoadPath(path); err != nil {
		return nil, err
	}
	return res, nil
}

// InitialiseFromPaths populates the cache with the output of the builder.
// On error the cache must not be used.
func (c *Cache) InitialiseFromPaths(
	ctx context.Context,
	b Builder,
	taxdump, mergedDump, dataDir string,
) error {
	data, err := b.Build(ctx, taxdump, mergedDump, dataDir)
	if err != nil {
		if _, ok := errorCode(err); ok {
			return err
		}
		return BuildError(err)
	}
	if data == nil {
		return BuildError(fmt.Errorf("builder returned no data"))
	}
	if err = data.Validate(); err != nil {
		return InconsistentDataError(errcode.BuildInconsistentError, err)
	}
	c.data = *data
	slog.Info("Taxon cache initialised",
		"entries", humanize.Comma(int64(c.Len())),
		"deprecated_ids", humanize.Comma(int64(c.DeprecatedLen())),
	)
	return nil
}

// Len returns the number of current taxonomy IDs.
func (c *Cache) Len() int {
	return len(c.data.Mappings)
}

// DeprecatedLen returns the number of deprecated taxonomy IDs.
func (c *Cache) DeprecatedLen() int {
	return len(c.data.DeprecatedIDs)
}

// resolve finds an entry for taxID. Deprecated IDs are followed only
// when allowDeprecated is true.
func (c *Cache) resolve(taxID int64, allowDeprecated bool) (Entry, error) {
	if e, ok := c.data.Mappings[taxID]; ok {
		return e, nil
	}
	if !allowDeprecated {
		return Entry{}, NotFoundError(taxID)
	}
	if cur, ok := c.data.DeprecatedIDs[taxID]; ok {
		if e, ok := c.data.Mappings[cur]; ok {
			slog.Debug("Resolved deprecated taxonomy ID",
				"tax_id", taxID, "current_id", cur)
			return e, nil
		}
	}
	return Entry{}, NotFoundError(taxID)
}

// Get returns a copy of the entry for taxID.
func (c *Cache) Get(taxID int64, allowDeprecated bool) (Entry, error) {
	return c.resolve(taxID, allowDeprecated)
}

// NameByID returns the scientific name for taxID.
func (c *Cache) NameByID(taxID int64, allowDeprecated bool) (string, error) {
	e, err := c.resolve(taxID, allowDeprecated)
	if err != nil {
		return "", err
	}
	return e.Name, nil
}

// AntismashTaxon returns the antiSMASH bucket for taxID. Classification
// errors are returned unchanged.
func (c *Cache) AntismashTaxon(
	taxID int64,
	allowDeprecated bool,
) (Bucket, error) {
	e, err := c.resolve(taxID, allowDeprecated)
	if err != nil {
		return "", err
	}
	return Classify(e)
}
