package controlledentity

import "github.com/klokik/avdecc/pkg/entitymodel"

// IsStreamInputRunning reports a listener stream's current running
// state, derived from the StreamInfo dynamic flag captured during
// StepGetDynamicInfo (SPEC_FULL.md §4.9, present in the original's
// isStreamInputRunning but absent from spec.md's explicit operation
// list).
func (e *ControlledEntity) IsStreamInputRunning(ci entitymodel.ConfigurationIndex, idx entitymodel.StreamIndex) (bool, error) {
	ct, err := e.GetConfigurationTree(ci)
	if err != nil {
		return false, err
	}
	node, err := ct.StreamInput(idx)
	if err != nil {
		return false, err
	}
	return node.Dynamic.IsStreamRunning, nil
}

// IsStreamOutputRunning mirrors IsStreamInputRunning for the talker
// direction.
func (e *ControlledEntity) IsStreamOutputRunning(ci entitymodel.ConfigurationIndex, idx entitymodel.StreamIndex) (bool, error) {
	ct, err := e.GetConfigurationTree(ci)
	if err != nil {
		return false, err
	}
	node, err := ct.StreamOutput(idx)
	if err != nil {
		return false, err
	}
	return node.Dynamic.IsStreamRunning, nil
}

// SetAvbInterfaceLinkStatus updates interface idx's link status in
// configuration ci and returns the previous value, so the
// orchestrator can detect an Up→Down transition worth a notification
// (SPEC_FULL.md §4.9). Returns entitymodel.LinkStatusUnknown and
// ErrInvalidDescriptorIndex if the interface is not present.
func (e *ControlledEntity) SetAvbInterfaceLinkStatus(ci entitymodel.ConfigurationIndex, idx entitymodel.AvbInterfaceIndex, status entitymodel.InterfaceLinkStatus) (entitymodel.InterfaceLinkStatus, error) {
	ct, err := e.GetConfigurationTree(ci)
	if err != nil {
		return entitymodel.LinkStatusUnknown, err
	}
	if _, err := ct.AvbInterface(idx); err != nil {
		return entitymodel.LinkStatusUnknown, err
	}
	return ct.SetAvbInterfaceLinkStatus(idx, status), nil
}

// AvbInterfaceLinkStatus returns interface idx's current link status
// in configuration ci.
func (e *ControlledEntity) AvbInterfaceLinkStatus(ci entitymodel.ConfigurationIndex, idx entitymodel.AvbInterfaceIndex) (entitymodel.InterfaceLinkStatus, error) {
	ct, err := e.GetConfigurationTree(ci)
	if err != nil {
		return entitymodel.LinkStatusUnknown, err
	}
	node, err := ct.AvbInterface(idx)
	if err != nil {
		return entitymodel.LinkStatusUnknown, err
	}
	return node.Dynamic.LinkStatus, nil
}
