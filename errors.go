package pcol

import "github.com/arborlib/pcol/internal/perrors"

// Kind identifies one of the abstract failure categories every List/Map
// operation reports through (spec §7). Re-exported from internal/perrors
// so callers never need to import an internal package to use errors.Is.
type Kind = perrors.Kind

const (
	// IndexOutOfRange is returned by indexed access, update, removeAt,
	// insertAt, and sublist with an out-of-bounds argument.
	IndexOutOfRange = perrors.IndexOutOfRange
	// EmptyCollection is returned by first/last/single on an empty List
	// or Map, by Map's Reduce on an empty Map, and by SingleWhere when no
	// element matches. List's Reduce returns its init value instead.
	EmptyCollection = perrors.EmptyCollection
	// TooManyElements is returned by single/singleWhere with more than
	// one match.
	TooManyElements = perrors.TooManyElements
	// Internal marks an invariant violation detected by an assertion; it
	// is always a bug, never a condition callers can trigger.
	Internal = perrors.Internal
)

// Error is the concrete error type every pcol operation returns on
// failure. Use errors.As to recover it and inspect its Kind.
type Error = perrors.Error
