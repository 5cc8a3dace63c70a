package content

import (
	"errors"
	"fmt"

	"github.com/nikmish/folio/docstore"
)

// ErrNotFound is returned when an operation targets a missing document id.
// It aliases the store's sentinel so errors.Is works across both layers.
var ErrNotFound = docstore.ErrNotFound

// ErrMultipleInstance is returned when a second document of a singleton kind
// would be inserted. Under correct use this never happens.
var ErrMultipleInstance = errors.New("content: singleton kind already has an instance")

// ErrInactiveParent is returned when an item cannot be activated because its
// category is inactive. Handlers surface it as a warning and continue.
var ErrInactiveParent = errors.New("content: category is inactive")

// ValidationError reports a missing or malformed required field. No state is
// mutated when one is returned.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("content: %s is required", e.Field)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
