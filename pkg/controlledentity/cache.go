package controlledentity

import (
	"fmt"
	"time"

	"github.com/klokik/avdecc/pkg/cache"
	"github.com/klokik/avdecc/pkg/entitymodel"
	"github.com/klokik/avdecc/pkg/ownership"
)

// ToDocument snapshots this entity into a cache.Document, per spec.md
// §4.7. Callers should gate this behind IsEntityModelValidForCaching:
// ToDocument itself does not refuse an incomplete tree, since a
// diagnostic dump of a partially enumerated entity is still useful.
func (e *ControlledEntity) ToDocument() *cache.Document {
	linkStatus := make(map[string]string)
	e.tree.Configurations.ForEach(func(ci entitymodel.ConfigurationIndex, ct *entitymodel.ConfigurationTree) {
		ct.AvbInterfaces.ForEach(func(idx entitymodel.AvbInterfaceIndex, n *entitymodel.AvbInterfaceNode) {
			linkStatus[avbInterfaceLinkKey(ci, idx)] = n.Dynamic.LinkStatus.String()
		})
	})

	stat := e.static
	var milanInfo *entitymodel.MilanInfo
	if info, ok := e.MilanInfo(); ok {
		milanInfo = &info
	}

	return &cache.Document{
		Entity: cache.EntityRecord{
			EntityID:               e.eid,
			EntityCapabilities:     stat.EntityCapabilities,
			TalkerStreamSources:    stat.TalkerStreamSources,
			TalkerCapabilities:     stat.TalkerCapabilities,
			ListenerStreamSinks:    stat.ListenerStreamSinks,
			ListenerCapabilities:   stat.ListenerCapabilities,
			ControllerCapabilities: stat.ControllerCapabilities,
			ConfigurationsCount:    stat.ConfigurationsCount,
			FirmwareVersion:        stat.FirmwareVersion,
			SerialNumber:           stat.SerialNumber,
		},
		EntityModelID:      stat.EntityModelID,
		CompatibilityFlags: e.compat.Names(),
		MilanInfo:          milanInfo,
		State:              cache.NewStateRecord(e.own),
		AvbInterfaceLink:   linkStatus,
		Statistics: cache.StatisticsRecord{
			AecpRetryCounter:              e.stats.AecpRetryCounter(),
			AecpTimeoutCounter:            e.stats.AecpTimeoutCounter(),
			AecpUnexpectedResponseCounter: e.stats.AecpUnexpectedResponseCounter(),
			AemAecpUnsolicitedCounter:     e.stats.AemAecpUnsolicitedCounter(),
			AecpResponseAverageTimeMs:     e.stats.AecpResponseAverageTime().Milliseconds(),
			EnumerationTimeMs:             e.stats.EnumerationTime().Milliseconds(),
		},
		EntityTree: e.tree,
		IsVirtual:  false,
	}
}

// FromCache reconstructs a ControlledEntity from a previously dumped
// document, matching spec.md §4.7's virtual-entity reload path. The
// returned entity is always marked IsVirtual, and its enumeration
// tracker starts as for a live entity, with StepGetStaticModel
// pending (useCachedStaticModel=false) — the caller still
// needs to call SetCachedEntityTree against the live EntityModelID once
// ADP discovery hands one back, to decide whether StepGetStaticModel
// can actually be skipped (spec.md §4.2).
func FromCache(doc *cache.Document, cfg Config) *ControlledEntity {
	static := entitymodel.EntityStaticModel{
		EntityModelID:          doc.EntityModelID,
		EntityCapabilities:     doc.Entity.EntityCapabilities,
		TalkerStreamSources:    doc.Entity.TalkerStreamSources,
		TalkerCapabilities:     doc.Entity.TalkerCapabilities,
		ListenerStreamSinks:    doc.Entity.ListenerStreamSinks,
		ListenerCapabilities:   doc.Entity.ListenerCapabilities,
		ControllerCapabilities: doc.Entity.ControllerCapabilities,
		ConfigurationsCount:    doc.Entity.ConfigurationsCount,
		FirmwareVersion:        doc.Entity.FirmwareVersion,
		SerialNumber:           doc.Entity.SerialNumber,
	}

	e := New(doc.Entity.EntityID, static, cfg)
	e.SetVirtual(true)
	e.compat = ParseCompatibilityFlags(doc.CompatibilityFlags)

	if doc.MilanInfo != nil {
		e.SetMilanInfo(*doc.MilanInfo)
	}

	e.own.SetAcquireState(ownership.ParseAcquireState(doc.State.AcquireState))
	e.own.SetOwningController(doc.State.OwningControllerID)
	e.own.SetLockState(ownership.ParseLockState(doc.State.LockState))
	e.own.SetLockingController(doc.State.LockingControllerID)

	e.stats.SetAecpRetryCounter(doc.Statistics.AecpRetryCounter)
	e.stats.SetAecpTimeoutCounter(doc.Statistics.AecpTimeoutCounter)
	e.stats.SetAecpUnexpectedResponseCounter(doc.Statistics.AecpUnexpectedResponseCounter)
	e.stats.SetAemAecpUnsolicitedCounter(doc.Statistics.AemAecpUnsolicitedCounter)
	e.stats.SetAecpResponseAverageTime(time.Duration(doc.Statistics.AecpResponseAverageTimeMs) * time.Millisecond)
	e.stats.SetEnumerationTime(time.Duration(doc.Statistics.EnumerationTimeMs) * time.Millisecond)

	if doc.EntityTree != nil {
		e.tree = doc.EntityTree
		e.tree.Configurations.ForEach(func(ci entitymodel.ConfigurationIndex, ct *entitymodel.ConfigurationTree) {
			ct.AvbInterfaces.ForEach(func(idx entitymodel.AvbInterfaceIndex, n *entitymodel.AvbInterfaceNode) {
				if s, ok := doc.AvbInterfaceLink[avbInterfaceLinkKey(ci, idx)]; ok {
					n.Dynamic.LinkStatus = parseInterfaceLinkStatus(s)
				}
			})
		})
	}

	return e
}

func avbInterfaceLinkKey(ci entitymodel.ConfigurationIndex, idx entitymodel.AvbInterfaceIndex) string {
	return fmt.Sprintf("%d:%d", ci, idx)
}

func parseInterfaceLinkStatus(s string) entitymodel.InterfaceLinkStatus {
	switch s {
	case entitymodel.LinkStatusUp.String():
		return entitymodel.LinkStatusUp
	case entitymodel.LinkStatusDown.String():
		return entitymodel.LinkStatusDown
	default:
		return entitymodel.LinkStatusUnknown
	}
}
