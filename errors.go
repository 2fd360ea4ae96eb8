package multiversion

import "errors"

// ErrMalformedSpec indicates a target specification string that violates the
// grammar: an empty architecture part, an unterminated bracket list, an empty
// bracket element, an unknown architecture name, or an empty feature segment.
// Surfaced when the specification is parsed, never during dispatch.
var ErrMalformedSpec = errors.New("multiversion: malformed target specification")

// ErrMissingDefault indicates a dispatch table built without a default
// implementation. Every table needs a terminal fallback; Build fails rather
// than constructing a table that could match nothing.
var ErrMissingDefault = errors.New("multiversion: dispatch table has no default implementation")
