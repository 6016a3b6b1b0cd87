package floss

import "fmt"

// CatalogLoadError reports malformed or empty reference data.
//
// Line is the 1-based line of the CSV source that failed, or 0 when the
// failure is not tied to a single row (empty table, missing header columns).
type CatalogLoadError struct {
	Line int
	Err  error
}

func (e *CatalogLoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("floss catalog: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("floss catalog: %v", e.Err)
}

func (e *CatalogLoadError) Unwrap() error { return e.Err }

// UnknownFlossError is returned when looking up an identifier that is not in
// the catalog.
type UnknownFlossError struct {
	ID string
}

func (e *UnknownFlossError) Error() string {
	return fmt.Sprintf("unknown floss %q", e.ID)
}
