package taxa

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/gnfmt"
	"github.com/gnames/mibigtaxa/pkg/errcode"
)

const (
	cacheFormat  = "mibigtaxa-cache"
	cacheVersion = 1
)

// cacheFile is the gob payload of a saved cache.
type cacheFile struct {
	Format        string
	Version       int
	Mappings      map[int64]Entry
	DeprecatedIDs map[int64]int64
}

// SavePath writes the cache to path, overwriting an existing file.
// It returns the number of entries written.
func (c *Cache) SavePath(path string) (int, error) {
	cf := cacheFile{
		Format:        cacheFormat,
		Version:       cacheVersion,
		Mappings:      c.data.Mappings,
		DeprecatedIDs: c.data.DeprecatedIDs,
	}

	enc := gnfmt.GNgob{}
	bs, err := enc.Encode(cf)
	if err != nil {
		return 0, CacheEncodeError(err)
	}

	if err = os.WriteFile(path, bs, 0644); err != nil {
		return 0, CacheWriteError(path, err)
	}

	slog.Info("Taxon cache saved",
		"path", path, "entries", c.Len(), "bytes", len(bs))
	return c.Len(), nil
}

// LoadPath replaces the cache content with the content of a file created
// by SavePath. It returns the number of entries loaded. When loading
// fails the previous content stays in place.
func (c *Cache) LoadPath(path string) (int, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return 0, CacheReadError(path, err)
	}

	var cf cacheFile
	enc := gnfmt.GNgob{}
	if err = enc.Decode(bs, &cf); err != nil {
		return 0, CacheDecodeError(path, err)
	}

	if cf.Format != cacheFormat {
		err = fmt.Errorf("unknown format %q", cf.Format)
		return 0, CacheDecodeError(path, err)
	}
	if cf.Version != cacheVersion {
		err = fmt.Errorf("unsupported version %d", cf.Version)
		return 0, CacheDecodeError(path, err)
	}

	data := &Data{
		Mappings:      cf.Mappings,
		DeprecatedIDs: cf.DeprecatedIDs,
	}
	// gob leaves empty maps as nil
	if data.Mappings == nil {
		data.Mappings = make(map[int64]Entry)
	}
	if data.DeprecatedIDs == nil {
		data.DeprecatedIDs = make(map[int64]int64)
	}
	if err = data.Validate(); err != nil {
		return 0, InconsistentDataError(errcode.CacheDecodeError, err)
	}

	c.data = *data
	slog.Info("Taxon cache loaded", "path", path, "entries", c.Len())
	return c.Len(), nil
}
