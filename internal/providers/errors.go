package providers

import (
	"errors"
	"fmt"
)

// SourceError captures a failure to read or parse one of the tabular inputs.
type SourceError struct {
	Source string // logical source name, e.g. "stats" or "coefficients"
	Path   string
	Err    error
}

func (e *SourceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s source unavailable (%s): %v", e.Source, e.Path, e.Err)
	}
	return fmt.Sprintf("%s source unavailable: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// AsSourceError attempts to unwrap an error into a SourceError.
func AsSourceError(err error) (*SourceError, bool) {
	var srcErr *SourceError
	if errors.As(err, &srcErr) {
		return srcErr, true
	}
	return nil, false
}
