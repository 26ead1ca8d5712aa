package outcome

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful payload
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that carry either a payload or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if the computation failed
	Err() error
	// IsOk returns true if the computation succeeded
	IsOk() bool
}
