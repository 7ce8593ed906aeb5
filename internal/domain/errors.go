package domain

import (
	"errors"
	"fmt"
)

// ErrExtractionUnavailable signals that the entity-extraction capability
// could not initialize. Fatal to company-level views; the raw item view must
// still be served.
var ErrExtractionUnavailable = errors.New("entity extraction unavailable")

// MalformedRecordError reports a raw record missing required fields. It is
// surfaced at normalization, before any scoring happens.
type MalformedRecordError struct {
	Source string
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record from %q: %s %s", e.Source, e.Field, e.Reason)
}
