package catalog

import "errors"

var (
	// ErrEmptyFile indicates the CSV input has no header row.
	ErrEmptyFile = errors.New("empty csv input")

	// ErrMissingColumn indicates a required column is absent from the header.
	ErrMissingColumn = errors.New("missing required column")

	// ErrMalformed indicates the CSV input could not be parsed.
	ErrMalformed = errors.New("malformed csv")
)
