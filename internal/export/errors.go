package export

import "fmt"

// WriteError represents a failure to write one exported file.
type WriteError struct {
	Path    string
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Path)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// BrokenLinkError lists local links in exported pages that point at files
// the export did not produce.
type BrokenLinkError struct {
	Links []string
}

func (e *BrokenLinkError) Error() string {
	return fmt.Sprintf("%d broken link(s): %v", len(e.Links), e.Links)
}
