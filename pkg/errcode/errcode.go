package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Command line errors
	MissingInputError
	BadTaxIDError

	// Build errors
	BuildError
	BuildTaxdumpError
	BuildMergedDumpError
	BuildDataDirError
	BuildInconsistentError

	// Cache persistence errors
	CacheReadError
	CacheWriteError
	CacheEncodeError
	CacheDecodeError

	// Query errors
	TaxonNotFoundError
	InvalidAntismashTaxonError
)
