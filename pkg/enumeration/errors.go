package enumeration

import "errors"

// ErrFatalEnumerationError is returned by callers that attempt to
// resume enumeration for an entity whose retry budget was already
// exhausted. Per spec.md §4.5, a fatal error is terminal: the entity
// is never advertised.
var ErrFatalEnumerationError = errors.New("enumeration: fatal error, entity will not be advertised")
