package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess          = 0 // Analysis completed
	ExitValidationFailed = 1 // One or more data files failed validation
	ExitError            = 2 // Configuration or runtime error
)

// ValidationFailureError indicates that validation ran successfully,
// but one or more data files did not conform to the schema.
type ValidationFailureError struct {
	Message string
}

func (e *ValidationFailureError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var validationErr *ValidationFailureError
		if errors.As(err, &validationErr) {
			os.Exit(ExitValidationFailed)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
