package leadimport

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFile rejects files without the expected tabular extension
	ErrUnsupportedFile = errors.New("unsupported file format, please upload a .csv file")

	// ErrFileTooLarge rejects files over the upload size ceiling
	ErrFileTooLarge = errors.New("file is too large, the limit is 10 MB")

	// ErrEmptyFile rejects parse results with no data rows
	ErrEmptyFile = errors.New("file contains no data rows")

	// ErrNoEmailColumn blocks uploads when no column is mapped to email
	ErrNoEmailColumn = errors.New("at least one column must be mapped to email before uploading")

	// ErrSessionNotFound is returned for unknown or already-reset sessions
	ErrSessionNotFound = errors.New("import session not found")

	// ErrUnknownColumn is returned when a mapping edit names a column
	// that is not in the parsed file
	ErrUnknownColumn = errors.New("unknown source column")

	// ErrInvalidTargetField is returned when a mapping edit uses a value
	// outside the canonical field set
	ErrInvalidTargetField = errors.New("invalid target field")
)

// TooManyRowsError reports a batch over the row ceiling
type TooManyRowsError struct {
	Count int
	Limit int
}

func (e *TooManyRowsError) Error() string {
	return fmt.Sprintf("file has %d rows, the limit is %d", e.Count, e.Limit)
}

// InvalidTransitionError reports a session event applied in the wrong state
type InvalidTransitionError struct {
	State SessionState
	Event SessionEvent
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("event %s is not allowed in state %s", e.Event, e.State)
}

// UploadError carries the failure reported by the ingestion service.
// Message is the server-provided text when present, shown to the user verbatim.
type UploadError struct {
	Message    string
	StatusCode int
}

func (e *UploadError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "lead upload failed, please try again"
}
