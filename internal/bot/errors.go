package bot

import "errors"

// Validation errors. Neither results in a lookup request.
var (
	// ErrMissingQuery is returned when search is called without an argument.
	ErrMissingQuery = errors.New("search query is empty")

	// ErrNoNumber is returned when the argument holds no 10-digit number.
	ErrNoNumber = errors.New("no 10-digit number found in query")
)
