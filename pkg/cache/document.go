// Package cache implements the versioned JSON document a
// ControlledEntity serializes to and reloads from, per spec.md §4.7.
package cache

import (
	"github.com/klokik/avdecc/pkg/entitymodel"
	"github.com/klokik/avdecc/pkg/ownership"
)

// currentDumpVersion is the version this package writes. Bumped
// whenever the Document shape changes in a way that breaks readers of
// an older version.
const currentDumpVersion = 1

// Document is the top-level, lossless JSON record of one entity, per
// spec.md §4.7: the ADP-level entity record, its model identifier,
// compatibility flags, optional Milan info, ownership state, AVB
// interface link status, statistics, the full entity tree, and the
// virtual flag a reloaded entity always carries.
type Document struct {
	DumpVersion int `json:"dump_version"`

	Entity             EntityRecord            `json:"entity"`
	EntityModelID      uint64                  `json:"entity_model_id"`
	CompatibilityFlags []string                `json:"compatibility_flags"`
	MilanInfo          *entitymodel.MilanInfo  `json:"milan_info,omitempty"`
	State              StateRecord             `json:"state"`
	AvbInterfaceLink   map[string]string       `json:"avb_interface_link_status"`
	Statistics         StatisticsRecord        `json:"statistics"`
	EntityTree         *entitymodel.EntityTree `json:"entity_tree"`
	IsVirtual          bool                    `json:"is_virtual"`
}

// EntityRecord mirrors the ADP ENTITY_AVAILABLE fields this core
// retains, per entitymodel.EntityStaticModel. ADP itself is out of
// scope; this is just the static record a live ADP stack would have
// handed the entity at discovery time.
type EntityRecord struct {
	EntityID               entitymodel.EID `json:"entity_id"`
	EntityCapabilities     uint32          `json:"entity_capabilities"`
	TalkerStreamSources    uint16          `json:"talker_stream_sources"`
	TalkerCapabilities     uint16          `json:"talker_capabilities"`
	ListenerStreamSinks    uint16          `json:"listener_stream_sinks"`
	ListenerCapabilities   uint16          `json:"listener_capabilities"`
	ControllerCapabilities uint32          `json:"controller_capabilities"`
	ConfigurationsCount    uint16          `json:"configurations_count"`
	FirmwareVersion        string          `json:"firmware_version"`
	SerialNumber           string          `json:"serial_number"`
}

// StateRecord is the acquire/lock snapshot, per ownership.Tracker.
type StateRecord struct {
	AcquireState        string          `json:"acquire_state"`
	OwningControllerID  entitymodel.EID `json:"owning_controller_id"`
	LockState           string          `json:"lock_state"`
	LockingControllerID entitymodel.EID `json:"locking_controller_id"`
}

// NewStateRecord captures a Tracker's current state.
func NewStateRecord(t *ownership.Tracker) StateRecord {
	return StateRecord{
		AcquireState:        t.AcquireState().String(),
		OwningControllerID:  t.OwningControllerID(),
		LockState:           t.LockState().String(),
		LockingControllerID: t.LockingControllerID(),
	}
}

// StatisticsRecord is the lossless counter snapshot, per spec.md §4.6.
type StatisticsRecord struct {
	AecpRetryCounter              uint64 `json:"aecp_retry_counter"`
	AecpTimeoutCounter            uint64 `json:"aecp_timeout_counter"`
	AecpUnexpectedResponseCounter uint64 `json:"aecp_unexpected_response_counter"`
	AemAecpUnsolicitedCounter     uint64 `json:"aem_aecp_unsolicited_counter"`
	AecpResponseAverageTimeMs     int64  `json:"aecp_response_average_time_ms"`
	EnumerationTimeMs             int64  `json:"enumeration_time_ms"`
}
