package controlledentity

import "github.com/klokik/avdecc/pkg/entitymodel"

// IdentifyControlIndex returns the entity's identify control index and
// whether one is set. Validity of this index is gated on the wire by
// EntityCapabilityAemIdentifyControlIndexValid; this core just stores
// whatever the orchestrator supplied (SPEC_FULL.md §4.9).
func (e *ControlledEntity) IdentifyControlIndex() (entitymodel.ControlIndex, bool) {
	return e.identifyControlIndex, e.hasIdentifyControlIndex
}

// SetIdentifyControlIndex records which CONTROL descriptor implements
// entity identification (the identify LED / physical indicator a
// controller can toggle), matching
// ControlledEntityImpl::setIdentifyControlIndex.
func (e *ControlledEntity) SetIdentifyControlIndex(idx entitymodel.ControlIndex) {
	e.identifyControlIndex = idx
	e.hasIdentifyControlIndex = true
}

// IsIdentifying reports whether the entity is currently identifying
// itself, derived from the identify control's current value being
// non-zero in the entity's current configuration, matching
// ControlledEntityImpl::isIdentifying(). Returns false if no identify
// control index is set or the control isn't present yet.
func (e *ControlledEntity) IsIdentifying() bool {
	if !e.hasIdentifyControlIndex {
		return false
	}
	ct, err := e.GetConfigurationTree(e.dynamic.CurrentConfiguration)
	if err != nil {
		return false
	}
	control, err := ct.Control(e.identifyControlIndex)
	if err != nil {
		return false
	}
	for _, b := range control.Dynamic.Values.Values {
		if b != 0 {
			return true
		}
	}
	return false
}
