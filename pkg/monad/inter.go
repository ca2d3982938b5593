package monad

// ResultProvider is implemented by anything exposing a success value.
type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() Error
	// IsOk returns true if the operation was successful
	IsOk() bool
	// IsErr returns true if the operation failed
	IsErr() bool
}

var _ WithError[int] = Result[int]{}
