package errors

// Codes shared by all packages. Code 1 is reserved for internal errors.
var (
	// ErrUnauthorized is returned when the caller is not allowed to perform
	// the requested operation.
	ErrUnauthorized = Register(2, "unauthorized")

	// ErrNotFound is returned when requested data does not exist.
	ErrNotFound = Register(3, "not found")

	// ErrMsg is returned for a message that cannot be decoded or handled.
	ErrMsg = Register(4, "invalid message")

	// ErrDuplicate is returned when a unique value is already present.
	ErrDuplicate = Register(6, "duplicate")

	// ErrHuman is returned when the code reaches a path that proper wiring
	// of the components never reaches.
	ErrHuman = Register(7, "coding error")

	// ErrImmutable is returned on an attempt to change a write once value.
	ErrImmutable = Register(8, "cannot be modified")

	// ErrEmpty is returned when a required value is missing.
	ErrEmpty = Register(9, "value is empty")

	// ErrState is returned when stored data is inconsistent.
	ErrState = Register(10, "invalid state")

	// ErrInsufficientAmount is returned when an account cannot cover a
	// transfer.
	ErrInsufficientAmount = Register(12, "insufficient amount")

	// ErrAmount is returned for a negative or otherwise unusable amount.
	ErrAmount = Register(13, "invalid amount")

	// ErrInput is returned for malformed user input.
	ErrInput = Register(14, "invalid input")

	// ErrSchema is returned when persisted data was written using an
	// unsupported schema version or is missing its metadata.
	ErrSchema = Register(15, "invalid schema")

	// ErrOverflow is returned when a computation result does not fit the
	// type.
	ErrOverflow = Register(16, "an operation cannot be completed due to value overflow")

	// ErrCurrency is returned whenever a coin of an unexpected
	// denomination is used.
	ErrCurrency = Register(17, "invalid currency")

	// ErrDatabase is returned when the underlying storage fails.
	ErrDatabase = Register(18, "database")

	// ErrPanic wraps a recovered panic. Its message is never shown to a
	// client outside of the debug mode.
	ErrPanic = Register(111222, "panic")
)
