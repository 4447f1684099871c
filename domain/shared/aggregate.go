package shared

// Entity Object identified by its id rather than by its attributes
type Entity interface {
	ID() string
}

// AggregateRoot Entity that owns and validates a consistency boundary.
// Aggregates are persisted as one unit through their repository.
type AggregateRoot interface {
	Entity

	// Validate re-checks every invariant of the aggregate
	Validate() error
}

// ValueObject Immutable object compared by value
// Go cannot enforce immutability; value objects keep their fields unexported
// and expose no mutators.
type ValueObject[T any] interface {
	Equals(other T) bool
}
