// Package errcode enumerates the error codes used across gntraits.
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

	// Species names acquisition errors
	NamesFileError
	NamesColumnError
	NamesEmptyError

	// BacDive client errors
	BacDiveCredentialsError
	BacDiveAuthError
	BacDiveSearchError
	BacDiveFetchError
	BacDiveDecodeError
	BacDiveCacheError

	// Harvest errors
	HarvestPipelineError

	// Export errors
	ExportCSVError
	ExportSQLiteError
)
