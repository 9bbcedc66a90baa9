package iotaxdump

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/mibigtaxa/pkg/errcode"
)

// TaxdumpError is returned when rankedlineage.dmp cannot be read or parsed.
func TaxdumpError(path string, err error) error {
	msg := `Cannot read taxonomy dump

<em>File path:</em> %s

<em>Possible causes:</em>
  - File does not exist or is not readable
  - File is not rankedlineage.dmp from NCBI new_taxdump
  - File is truncated

<em>How to fix:</em>
  1. Download new_taxdump.tar.gz from NCBI and unpack it
  2. Point --taxdump to rankedlineage.dmp or to its directory`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.BuildTaxdumpError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read taxonomy dump %s: %w", path, err),
	}
}

// MergedDumpError is returned when merged.dmp cannot be read or parsed.
func MergedDumpError(path string, err error) error {
	msg := `Cannot read merged IDs dump

<em>File path:</em> %s

<em>How to fix:</em>
  1. Point --merged to merged.dmp from NCBI new_taxdump or to its directory`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.BuildMergedDumpError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read merged IDs dump %s: %w", path, err),
	}
}

// DataDirError is returned when MIBiG entries cannot be read.
func DataDirError(path string, err error) error {
	msg := "Cannot read MIBiG entries from <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.BuildDataDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read MIBiG entries %s: %w", path, err),
	}
}

// lineError points to a malformed line of a dump file.
func lineError(line int, format string, args ...any) error {
	return fmt.Errorf("line %d: %s", line, fmt.Sprintf(format, args...))
}
