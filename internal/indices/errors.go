package indices

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is().
var (
	// ErrInvalidUnit indicates an unrecognized concentration unit.
	ErrInvalidUnit = constError("invalid concentration unit")

	// ErrNotFinite indicates an Inf or NaN concentration input.
	ErrNotFinite = constError("concentration is not a finite number")
)
