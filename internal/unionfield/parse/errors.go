package parse

import "errors"

// Every diagnostic produced by parsing and validation wraps exactly one of
// these sentinels, so callers and tests can classify failures with errors.Is.
var (
	// ErrSyntax reports malformed directive text.
	ErrSyntax = errors.New("syntax error")

	// ErrIllegalRename reports an "as" clause on a directive that expands to
	// more than one accessor, where the rename target would be ambiguous.
	ErrIllegalRename = errors.New("illegal rename")

	// ErrUnsupportedShape reports a union or variant that does not have the
	// required shape: an interface with at least one method, implemented by
	// struct variants embedding exactly one payload struct.
	ErrUnsupportedShape = errors.New("unsupported variant shape")

	// ErrMissingField reports a directive field absent from some variant's
	// payload.
	ErrMissingField = errors.New("missing field")

	// ErrTypeMismatch reports a payload field whose type disagrees across
	// variants or cannot be coerced to the directive's declared type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrDuplicateName reports two accessors resolving to the same function
	// name, or an accessor colliding with an existing declaration.
	ErrDuplicateName = errors.New("duplicate accessor name")
)
