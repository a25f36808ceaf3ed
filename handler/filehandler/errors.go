package filehandler

import "errors"

var (
	// ErrNoFilename is returned by NewFileHandler when FileConfig.Filename is empty.
	ErrNoFilename = errors.New("filehandler: filename is required")
	// ErrClosed is returned when writing to a closed handler.
	ErrClosed = errors.New("filehandler: handler is closed")
)
