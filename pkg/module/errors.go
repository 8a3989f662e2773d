package module

import "errors"

var (
	// ErrInvalidPrefix indicates a malformed mount prefix.
	ErrInvalidPrefix = errors.New("invalid module prefix")

	// ErrDuplicatePrefix indicates a prefix that is already mounted on the router.
	ErrDuplicatePrefix = errors.New("module prefix already mounted")

	// ErrNilHandler indicates a module constructed without a handler.
	ErrNilHandler = errors.New("module handler required")

	// ErrNilModule indicates a nil module passed to Mount.
	ErrNilModule = errors.New("module required")

	// ErrNotFound indicates that no mounted module matches a request path.
	ErrNotFound = errors.New("no module matches path")
)
