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
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Input format errors
	NamesFormatError
	ArrivalFormatError
	ArrivalLineError
	DateFormatError
	WeightParseError

	// Domain errors
	UnsupportedSpeciesError

	// Report errors
	EncodeReportError
	SQLiteExportError
)
