// Package perrors defines the error taxonomy shared by the RRB-tree and
// CHAMP-trie engines (spec §7). Both engines and the pcol façade report
// failures through this package so that callers can use errors.Is against
// a single set of sentinel kinds regardless of which engine raised them.
package perrors

import "fmt"

// Kind identifies one of the abstract failure categories in spec §7.
type Kind int

const (
	// IndexOutOfRange is raised by List indexed access, update, removeAt,
	// insert, and sublist with an out-of-bounds argument.
	IndexOutOfRange Kind = iota
	// EmptyCollection is raised by first/last/single on an empty
	// collection and by Map's reduce on an empty map. Removing the only
	// element of a one-element list is not an error: it yields an empty
	// list.
	EmptyCollection
	// TooManyElements is raised by single/singleWhere with more than one
	// match.
	TooManyElements
	// Internal marks an invariant violation detected by an assertion; it
	// is always a bug, never a user-triggerable condition.
	Internal
)

func (k Kind) String() string {
	switch k {
	case IndexOutOfRange:
		return "index out of range"
	case EmptyCollection:
		return "empty collection"
	case TooManyElements:
		return "too many elements"
	case Internal:
		return "internal invariant violation"
	default:
		return "unknown error"
	}
}

// Error is the concrete error type returned by core operations. It wraps
// a Kind plus a human-readable message; core operations never retry,
// recover locally, or log — every failure is reported to the caller
// (spec §7).
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is reports whether target is a *Error with the same Kind, supporting
// errors.Is(err, perrors.New(SomeKind, "")).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind
}

// New constructs an *Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Internalf constructs an Internal error; reserved for assertion
// failures that indicate a bug in the engine itself.
func Internalf(format string, args ...any) *Error {
	return New(Internal, format, args...)
}
