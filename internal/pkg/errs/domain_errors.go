package errs

import "errors"

// Category markers for domain errors. Domain packages mark their sentinels
// with one of these so the handler layer can map a whole family to one status.
var (
	// Malformed quantities, rates or intervals
	ErrInput = errors.New("invalid input")

	// Slot overlaps, heterogeneous lots, incompatible tank assignment
	ErrConflict = errors.New("conflict")

	// Physical tank capacity would be exceeded
	ErrCapacity = errors.New("capacity exceeded")

	// Referenced line, tank, lot, booking or mapping does not exist
	ErrNotFound = errors.New("not found")

	// Actor is not allowed to perform the operation
	ErrForbidden = errors.New("forbidden")
)

// categories is ordered by precedence for errors marked more than once.
var categories = []error{ErrInput, ErrNotFound, ErrForbidden, ErrConflict, ErrCapacity}
