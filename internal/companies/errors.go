package companies

import "fmt"

// CatalogError represents a company catalog that could not be loaded or validated
type CatalogError struct {
	Source  string
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog error (%s): %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog error (%s): %s", e.Source, e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}
