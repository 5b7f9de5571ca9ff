// Package ledgererror defines the error taxonomy of the ledger core.
package ledgererror

import "fmt"

// ValidationError represents a rejected operation: the input was invalid and
// no state was changed. It is never fatal.
type ValidationError struct {
	Op     string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: invalid %s: %s", e.Op, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// StorageError represents an I/O failure while persisting the document.
// It is fatal for the operation that triggered it; the in-memory document is
// not rolled back, so the caller must not report success.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: storage failure for %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
