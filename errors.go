package relay

import "fmt"

// ArgumentError is returned when a pagination argument has an invalid shape,
// i.e. a negative First or Last. It is detected before any cursor is decoded
// and before the fetch callback runs.
type ArgumentError struct {
	// Name is the offending argument, "first" or "last".
	Name string

	// Value is the rejected value.
	Value int
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("pagination argument %s must be non-negative, got %d", e.Name, e.Value)
}

// InvalidCursorError is returned when an After or Before token cannot be
// decoded. It is detected after argument validation and before the fetch
// callback runs.
type InvalidCursorError struct {
	// Name is the offending argument, "after" or "before".
	Name string

	// Token is the cursor string that failed to decode.
	Token string

	// Err is the underlying decode error from the codec.
	Err error
}

func (e *InvalidCursorError) Error() string {
	return fmt.Sprintf("invalid %s cursor %q: %v", e.Name, e.Token, e.Err)
}

func (e *InvalidCursorError) Unwrap() error {
	return e.Err
}

// FetchError wraps a failure reported by the fetch callback. The inner error
// is opaque to the pagination core and passed through unchanged; no retry is
// attempted and no partial connection is returned.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("pagination fetch failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
