package entitymodel

import "errors"

// Errors surfaced by tree accessors, per spec.md §7.
var (
	// ErrNotSupported is returned when an AEM accessor is invoked on an
	// entity that does not advertise AEM support.
	ErrNotSupported = errors.New("entitymodel: AEM not supported by this entity")

	// ErrInvalidConfigurationIndex is returned when the requested
	// configuration is not present in the tree.
	ErrInvalidConfigurationIndex = errors.New("entitymodel: invalid configuration index")

	// ErrInvalidDescriptorIndex is returned when a descriptor with the
	// requested (type, index) is not present.
	ErrInvalidDescriptorIndex = errors.New("entitymodel: invalid descriptor index")
)
