// Package controlledentity is the ControlledEntity core this module
// exists to provide: the per-device in-memory model and enumeration
// state machine a controller maintains for every discovered AVDECC
// entity, per spec.md §1–§2. It aggregates pkg/lock, pkg/entitymodel,
// pkg/ownership, pkg/enumeration, pkg/stats, and pkg/cache behind the
// accessor/setter surface spec.md §6 describes, the way
// backkem-matter/pkg/matter/node.go's Node composes its own
// sub-managers (fabric.Table, session.Manager, exchange.Manager, ...)
// behind one top-level type instead of re-implementing their logic.
//
// This package performs no I/O. Per spec.md §5 the only blocking
// primitive anywhere in this core is the SharedLock shared across a
// controller's whole entity set; ControlledEntity carries no lock of
// its own beyond a reference to that shared handle, and every mutating
// method assumes the caller already holds it.
package controlledentity

import (
	"github.com/klokik/avdecc/pkg/entitymodel"
	"github.com/klokik/avdecc/pkg/enumeration"
	"github.com/klokik/avdecc/pkg/lock"
	"github.com/klokik/avdecc/pkg/ownership"
	"github.com/klokik/avdecc/pkg/stats"
	"github.com/pion/logging"
)

// Config configures a new ControlledEntity.
type Config struct {
	// Shared is the lock shared by every entity of one controller. If
	// nil, a fresh standalone SharedLock is allocated — useful for unit
	// tests that only ever drive a single entity.
	Shared *lock.SharedLock

	// RetryPolicy bounds the enumeration tracker's retry behavior.
	// Defaults to enumeration.DefaultRetryPolicy.
	RetryPolicy enumeration.RetryPolicy

	// LoggerFactory builds this entity's logger, following the
	// pion/logging idiom backkem-matter/pkg/matter/node.go establishes.
	// Defaults to logging.NewDefaultLoggerFactory() when nil.
	LoggerFactory logging.LoggerFactory

	// Ownership configures the acquire/lock state machine's
	// notification callbacks (spec.md §4.4).
	Ownership ownership.Config
}

// ControlledEntity is the per-entity aggregate spec.md §2 describes:
// the immutable entity record, the AEM tree, ownership state, the
// enumeration tracker, and statistics, all reachable behind one type.
//
// Every field here is mutated only by the orchestrator, which is
// assumed to hold Shared for the duration of the call (spec.md §3
// Lifecycle, §5 Concurrency). ControlledEntity does not acquire the
// lock itself: see Lock/Unlock/Guard below for the escape hatch a
// caller uses around a batch of calls.
type ControlledEntity struct {
	eid entitymodel.EID
	log logging.LeveledLogger

	shared *lock.SharedLock

	static  entitymodel.EntityStaticModel
	dynamic entitymodel.EntityDynamicModel

	isVirtual     bool
	compat        CompatibilityFlags
	advertised    bool
	wasAdvertised bool
	unsolicited   bool

	identifyControlIndex    entitymodel.ControlIndex
	hasIdentifyControlIndex bool

	milanInfo *entitymodel.MilanInfo

	tree  *entitymodel.EntityTree
	own   *ownership.Tracker
	enum  *enumeration.Tracker
	stats *stats.Statistics
}

// New creates a ControlledEntity freshly discovered via ADP, per
// spec.md §3 Lifecycle: "An Entity is created upon discovery ... with
// its base Entity record; its tree is empty." AEM support is read off
// static.EntityCapabilities by the caller before deciding whether to
// enumerate at all; New itself does not gate on it.
func New(eid entitymodel.EID, static entitymodel.EntityStaticModel, cfg Config) *ControlledEntity {
	shared := cfg.Shared
	if shared == nil {
		shared = lock.New()
	}
	loggerFactory := cfg.LoggerFactory
	if loggerFactory == nil {
		loggerFactory = logging.NewDefaultLoggerFactory()
	}
	policy := cfg.RetryPolicy
	if policy == (enumeration.RetryPolicy{}) {
		policy = enumeration.DefaultRetryPolicy
	}

	tree := entitymodel.NewEntityTree()
	tree.Static = static

	return &ControlledEntity{
		eid:    eid,
		log:    loggerFactory.NewLogger("controlledentity"),
		shared: shared,
		static: static,
		tree:   tree,
		own:    ownership.NewTracker(cfg.Ownership),
		enum:   enumeration.NewTracker(policy, false),
		stats:  stats.New(),
	}
}

// EID returns the entity's 64-bit unique identifier. Implements
// lock.Entity so a ControlledEntity can be registered directly in a
// lock.Registry.
func (e *ControlledEntity) EID() uint64 { return uint64(e.eid) }

// Shared returns the lock shared across every entity of this
// controller. Exposed for the orchestrator to Lock/Unlock/Guard
// around a batch of calls spanning several entities, matching
// Node.SessionManager()'s "exposed for advanced use" convention.
func (e *ControlledEntity) Shared() *lock.SharedLock { return e.shared }

// Lock acquires the shared lock for token. See pkg/lock.SharedLock.
func (e *ControlledEntity) Lock(token lock.Token) { e.shared.Lock(token) }

// Unlock releases one level of the shared lock held by token.
func (e *ControlledEntity) Unlock(token lock.Token) { e.shared.Unlock(token) }

// Guard acquires the shared lock for token and returns a release
// function, for `defer entity.Guard(token)()`-style call sites.
func (e *ControlledEntity) Guard(token lock.Token) func() { return e.shared.Guard(token) }

// StaticModel returns the entity's immutable ADP/EntityDescriptor
// record.
func (e *ControlledEntity) StaticModel() entitymodel.EntityStaticModel { return e.static }

// EntityCapabilities returns the entity's advertised capability bits.
func (e *ControlledEntity) EntityCapabilities() uint32 { return e.static.EntityCapabilities }

// IsVirtual reports whether this entity was reconstructed from a
// cached document rather than discovered live (spec.md §3).
func (e *ControlledEntity) IsVirtual() bool { return e.isVirtual }

// CompatibilityFlags returns the entity's compatibility classification
// (spec.md §3, SPEC_FULL.md §4.9).
func (e *ControlledEntity) CompatibilityFlags() CompatibilityFlags { return e.compat }

// SetCompatibilityFlags replaces the compatibility classification,
// e.g. when a Milan-profile violation is observed and Misbehaving
// should be latched in.
func (e *ControlledEntity) SetCompatibilityFlags(flags CompatibilityFlags) { e.compat = flags }

// Advertised reports whether enumeration has fully completed and this
// entity is visible to observers (spec.md §2, P1).
func (e *ControlledEntity) Advertised() bool { return e.advertised }

// WasAdvertised reports whether this entity has ever completed
// enumeration, even if it is not currently advertised — used by the
// orchestrator to suppress a duplicate "entity online" notification
// when a recoverable error causes re-enumeration (SPEC_FULL.md §4.9).
func (e *ControlledEntity) WasAdvertised() bool { return e.wasAdvertised }

// SetAdvertised sets the live advertised flag directly. Normally
// callers don't need this: OnEntityFullyLoaded sets it once
// enumeration completes. It exists for the orchestrator to retract
// advertisement (e.g. on a departure grace period) without destroying
// the entity outright.
func (e *ControlledEntity) SetAdvertised(advertised bool) {
	e.advertised = advertised
	if advertised {
		e.wasAdvertised = true
	}
}

// IsUnsolicitedNotificationsSubscribed reports whether
// REGISTER_UNSOLICITED_NOTIFICATION has completed for this entity.
func (e *ControlledEntity) IsUnsolicitedNotificationsSubscribed() bool { return e.unsolicited }

// SetUnsolicitedNotificationsSubscribed records that
// REGISTER_UNSOLICITED_NOTIFICATION has completed.
func (e *ControlledEntity) SetUnsolicitedNotificationsSubscribed(subscribed bool) {
	e.unsolicited = subscribed
}

// GotFatalEnumerationError reports whether enumeration aborted after
// exhausting its retry budget (spec.md §4.5, §7). A fatal entity is
// never advertised.
func (e *ControlledEntity) GotFatalEnumerationError() bool { return e.enum.GotFatalEnumerationError() }

// Ownership returns the acquire/lock state machine tracker (spec.md
// §4.4). Exposed directly rather than re-wrapped, matching
// Node.SessionManager()'s composition style.
func (e *ControlledEntity) Ownership() *ownership.Tracker { return e.own }

// Enumeration returns the enumeration step/retry tracker (spec.md
// §4.5).
func (e *ControlledEntity) Enumeration() *enumeration.Tracker { return e.enum }

// Statistics returns the AECP/enumeration counters (spec.md §4.6).
func (e *ControlledEntity) Statistics() *stats.Statistics { return e.stats }

// IsAcquired reports whether the local controller owns this entity.
func (e *ControlledEntity) IsAcquired() bool { return e.own.IsAcquired() }

// IsAcquiredByOther reports whether another controller owns this entity.
func (e *ControlledEntity) IsAcquiredByOther() bool { return e.own.IsAcquiredByOther() }

// IsLocked reports whether the local controller holds the entity's lock.
func (e *ControlledEntity) IsLocked() bool { return e.own.IsLocked() }

// IsLockedByOther reports whether another controller holds the
// entity's lock.
func (e *ControlledEntity) IsLockedByOther() bool { return e.own.IsLockedByOther() }

// DynamicModel returns the entity's top-level mutable state (entity
// name, group name, active configuration).
func (e *ControlledEntity) DynamicModel() entitymodel.EntityDynamicModel { return e.dynamic }

// EntityName returns the entity's current resolved name.
func (e *ControlledEntity) EntityName() entitymodel.AvdeccFixedString { return e.dynamic.EntityName }

// SetEntityName updates the entity's resolved name, e.g. after a
// GetName response or an AEM unsolicited notification.
func (e *ControlledEntity) SetEntityName(name entitymodel.AvdeccFixedString) { e.dynamic.EntityName = name }

// GroupName returns the entity's current resolved group name.
func (e *ControlledEntity) GroupName() entitymodel.AvdeccFixedString { return e.dynamic.GroupName }

// SetGroupName updates the entity's resolved group name.
func (e *ControlledEntity) SetGroupName(name entitymodel.AvdeccFixedString) { e.dynamic.GroupName = name }

// CurrentConfiguration returns the index of the entity's currently
// active configuration.
func (e *ControlledEntity) CurrentConfiguration() entitymodel.ConfigurationIndex {
	return e.dynamic.CurrentConfiguration
}

// SetCurrentConfiguration records which configuration is active,
// following a SET_CONFIGURATION command or its unsolicited
// notification counterpart.
func (e *ControlledEntity) SetCurrentConfiguration(ci entitymodel.ConfigurationIndex) {
	e.dynamic.CurrentConfiguration = ci
}

// SetVirtual marks the entity as reconstructed from a cached document
// rather than discovered live, per spec.md §3. Used by FromCache.
func (e *ControlledEntity) SetVirtual(virtual bool) { e.isVirtual = virtual }

// MilanInfo returns the entity's GET_MILAN_INFO response, and whether
// one has ever been received. Milan support is optional (spec.md §3):
// an entity that never declares the Milan vendor-unique protocol, or
// whose response is still outstanding, reports ok == false.
func (e *ControlledEntity) MilanInfo() (entitymodel.MilanInfo, bool) {
	if e.milanInfo == nil {
		return entitymodel.MilanInfo{}, false
	}
	return *e.milanInfo, true
}

// SetMilanInfo records a GET_MILAN_INFO response (spec.md §4.5 step 1).
func (e *ControlledEntity) SetMilanInfo(info entitymodel.MilanInfo) {
	e.milanInfo = &info
}
