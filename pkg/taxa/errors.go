package taxa

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/mibigtaxa/pkg/errcode"
)

// NotFoundError is returned when a taxonomy ID cannot be resolved.
func NotFoundError(taxID int64) error {
	msg := "Taxonomy ID <em>%d</em> not found"
	vars := []any{taxID}

	return &gn.Error{
		Code: errcode.TaxonNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("ID %d not found", taxID),
	}
}

// InvalidAntismashTaxonError is returned when a lineage value is not
// covered by the antiSMASH rules.
func InvalidAntismashTaxonError(taxon string) error {
	msg := "Can't map taxon <em>%s</em> to an antiSMASH taxon"
	vars := []any{taxon}

	return &gn.Error{
		Code: errcode.InvalidAntismashTaxonError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("Can't map taxon %s to an antiSMASH taxon", taxon),
	}
}

// BuildError wraps a failure of a Builder.
func BuildError(err error) error {
	msg := `Cannot build taxon cache

<em>How to fix:</em>
  1. Check that taxonomy and merged ID dumps exist and are readable
  2. Re-download the NCBI new_taxdump archive if files are damaged`

	return &gn.Error{
		Code: errcode.BuildError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot build taxon cache: %w", err),
	}
}

// InconsistentDataError is returned when cache content breaks the
// invariants between live and deprecated IDs.
func InconsistentDataError(code gn.ErrorCode, err error) error {
	msg := "Taxon cache data is inconsistent: <em>%s</em>"
	vars := []any{err.Error()}

	return &gn.Error{
		Code: code,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("inconsistent taxon cache data: %w", err),
	}
}

// CacheReadError is returned when a cache file cannot be read.
func CacheReadError(path string, err error) error {
	msg := "Cannot read taxon cache <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.CacheReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read cache %s: %w", path, err),
	}
}

// CacheWriteError is returned when a cache file cannot be written.
func CacheWriteError(path string, err error) error {
	msg := "Cannot write taxon cache <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.CacheWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write cache %s: %w", path, err),
	}
}

// CacheEncodeError is returned when cache content cannot be serialized.
func CacheEncodeError(err error) error {
	msg := "Cannot serialize taxon cache"

	return &gn.Error{
		Code: errcode.CacheEncodeError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot encode cache: %w", err),
	}
}

// CacheDecodeError is returned when a cache file is corrupt or has an
// unsupported format.
func CacheDecodeError(path string, err error) error {
	msg := `Taxon cache <em>%s</em> is corrupt or has unsupported format

<em>How to fix:</em>
  1. Rebuild the cache: <em>mibigtaxa build</em>`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.CacheDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot decode cache %s: %w", path, err),
	}
}

func errorCode(err error) (gn.ErrorCode, bool) {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return gnErr.Code, true
	}
	return errcode.UnknownError, false
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	code, ok := errorCode(err)
	return ok && code == errcode.TaxonNotFoundError
}

// IsInvalidAntismashTaxon reports whether err is an
// InvalidAntismashTaxonError.
func IsInvalidAntismashTaxon(err error) bool {
	code, ok := errorCode(err)
	return ok && code == errcode.InvalidAntismashTaxonError
}

// IsValidationError reports whether err was caused by caller input or
// data quality rather than by the environment (I/O, corrupt files).
func IsValidationError(err error) bool {
	return IsNotFound(err) || IsInvalidAntismashTaxon(err)
}
