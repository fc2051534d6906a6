package structure

import "errors"

var (
	// ErrNilCapability signals that a nil witness was passed where a capability
	// is required.
	ErrNilCapability = errors.New("structure: capability is nil")
	// ErrDuplicateRegistration signals that a (type, tag) pair has already been
	// registered.
	ErrDuplicateRegistration = errors.New("structure: duplicate registration")
	// ErrNotRegistered signals a lookup for a (type, tag) pair without registration.
	ErrNotRegistered = errors.New("structure: not registered")
)
