package ledgererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := &ValidationError{Op: "add transaction", Field: "amount", Reason: "must be greater than zero"}
	assert.Equal(t, "add transaction: invalid amount: must be greater than zero", err.Error())

	err = &ValidationError{Op: "rollover", Reason: "something"}
	assert.Equal(t, "rollover: something", err.Error())
}

func TestStorageErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &StorageError{Op: "save", Path: "finance_data.json", Err: cause}

	assert.Contains(t, err.Error(), "finance_data.json")
	assert.Contains(t, err.Error(), "disk full")
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), cause)
}
