package entitymodel

// EntityCapability bits relevant to this core, a small subset of the
// wire's full IEEE 1722.1 EntityCapabilities bitset (clause 6.2.1.10).
// Bit values are opaque to this module: the AECP codec that decodes the
// wire descriptor is out of scope (spec.md §1), so only the bits this
// core actually branches on are named here.
const (
	// EntityCapabilityAemSupported marks an entity as advertising the
	// AVDECC Entity Model. The AEM accessors of pkg/controlledentity
	// (GetEntityTree, GetConfigurationTree, ...) fail with
	// ErrNotSupported when this bit is absent, per spec.md §4.2.
	EntityCapabilityAemSupported uint32 = 1 << 0

	// EntityCapabilityAemIdentifyControlIndexValid marks the
	// identify-control index field of the entity record as meaningful
	// (SPEC_FULL.md §4.9).
	EntityCapabilityAemIdentifyControlIndexValid uint32 = 1 << 1

	// EntityCapabilityVendorUniqueSupported, combined with
	// EntityCapabilityAemSupported, is this core's simplified stand-in
	// for the wire's Milan vendor-unique-protocol advertisement that
	// gates StepGetMilanInfo (spec.md §4.5).
	EntityCapabilityVendorUniqueSupported uint32 = 1 << 2
)

// HasAemSupport reports whether capabilities advertises AEM support.
func HasAemSupport(capabilities uint32) bool {
	return capabilities&EntityCapabilityAemSupported != 0
}
