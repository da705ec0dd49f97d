// Package protocol defines the narrow interface seam between this
// core and the AECP/ACMP/Milan wire protocol layer, per spec.md §6.
// This package has no implementation: wire framing, sockets, and ADP
// discovery are explicit Non-goals of this module. It exists only so
// controlledentity.ControlledEntity has a documented boundary and an
// external orchestrator can depend on an interface instead of the
// concrete type.
package protocol

import (
	"time"

	"github.com/klokik/avdecc/pkg/entitymodel"
)

// QueryIssuer describes the queries an orchestrator issues against an
// entity while driving enumeration (spec.md §4.5). It is a
// description-only interface: no method here performs network I/O: a
// concrete implementation outside this module's scope turns these
// calls into AECP/ACMP command frames.
type QueryIssuer interface {
	// IssueGetMilanInfo requests the entity's Milan vendor-unique info.
	IssueGetMilanInfo(eid entitymodel.EID) error

	// IssueRegisterUnsolicitedNotification subscribes to unsolicited
	// AEM notifications.
	IssueRegisterUnsolicitedNotification(eid entitymodel.EID) error

	// IssueReadDescriptor requests one descriptor during the static
	// model walk.
	IssueReadDescriptor(eid entitymodel.EID, ci entitymodel.ConfigurationIndex, descriptorType entitymodel.DescriptorType, descriptorIndex entitymodel.DescriptorIndex) error

	// IssueGetName requests a resolved object name during a targeted
	// dynamic-info query.
	IssueGetName(eid entitymodel.EID, ci entitymodel.ConfigurationIndex, descriptorType entitymodel.DescriptorType, descriptorIndex entitymodel.DescriptorIndex, nameIndex uint16) error
}

// ResponseSink groups the entity-level setters an orchestrator calls
// upon receiving a decoded AEM/ACMP/Milan response, so callers can
// depend on an interface rather than the concrete ControlledEntity.
// The concrete setters live in pkg/controlledentity and
// pkg/entitymodel; this interface names only the subset relevant to
// driving enumeration forward.
type ResponseSink interface {
	// OnAecpResponseReceived updates the rolling AECP response-time
	// average for the given round-trip time.
	OnAecpResponseReceived(eid entitymodel.EID, responseTime time.Duration)

	// OnAecpTimeout records a timed-out AECP command.
	OnAecpTimeout(eid entitymodel.EID)

	// OnAecpUnexpectedResponse records a response matching no
	// outstanding expectation.
	OnAecpUnexpectedResponse(eid entitymodel.EID)

	// OnUnsolicitedNotification records receipt of an unsolicited AEM
	// notification.
	OnUnsolicitedNotification(eid entitymodel.EID)
}
