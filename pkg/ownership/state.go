// Package ownership tracks the two independent acquire/lock state
// machines a ControlledEntity exposes to an orchestrator, per
// spec.md §4.4.
package ownership

// AcquireState describes the entity's ownership by a controller.
type AcquireState int

const (
	// AcquireStateUndefined indicates no acquire state has been observed yet.
	AcquireStateUndefined AcquireState = iota

	// AcquireStateNotAcquired means no controller currently owns the entity.
	AcquireStateNotAcquired

	// AcquireStateAcquireInProgress means an ACQUIRE_ENTITY command is outstanding.
	AcquireStateAcquireInProgress

	// AcquireStateAcquired means the local controller owns the entity.
	AcquireStateAcquired

	// AcquireStateAcquiredByOther means another controller owns the entity.
	AcquireStateAcquiredByOther

	// AcquireStateReleaseInProgress means a RELEASE_ENTITY command is outstanding.
	AcquireStateReleaseInProgress
)

// String returns a human-readable name for the acquire state.
func (s AcquireState) String() string {
	switch s {
	case AcquireStateNotAcquired:
		return "NotAcquired"
	case AcquireStateAcquireInProgress:
		return "AcquireInProgress"
	case AcquireStateAcquired:
		return "Acquired"
	case AcquireStateAcquiredByOther:
		return "AcquiredByOther"
	case AcquireStateReleaseInProgress:
		return "ReleaseInProgress"
	default:
		return "Undefined"
	}
}

// IsValid returns true if the state is a defined value.
func (s AcquireState) IsValid() bool {
	return s >= AcquireStateNotAcquired && s <= AcquireStateReleaseInProgress
}

// ParseAcquireState inverts String, returning AcquireStateUndefined for
// any name it doesn't recognize — used when reloading a cached state
// record.
func ParseAcquireState(name string) AcquireState {
	switch name {
	case "NotAcquired":
		return AcquireStateNotAcquired
	case "AcquireInProgress":
		return AcquireStateAcquireInProgress
	case "Acquired":
		return AcquireStateAcquired
	case "AcquiredByOther":
		return AcquireStateAcquiredByOther
	case "ReleaseInProgress":
		return AcquireStateReleaseInProgress
	default:
		return AcquireStateUndefined
	}
}

// LockState describes the entity's stream-format lock by a controller.
// It mirrors AcquireState exactly; the AVDECC protocol keeps acquire and
// lock as two independent state machines over the same entity.
type LockState int

const (
	// LockStateUndefined indicates no lock state has been observed yet.
	LockStateUndefined LockState = iota

	// LockStateNotLocked means no controller currently holds the lock.
	LockStateNotLocked

	// LockStateLockInProgress means a LOCK_ENTITY command is outstanding.
	LockStateLockInProgress

	// LockStateLocked means the local controller holds the lock.
	LockStateLocked

	// LockStateLockedByOther means another controller holds the lock.
	LockStateLockedByOther

	// LockStateUnlockInProgress means an UNLOCK_ENTITY command is outstanding.
	LockStateUnlockInProgress
)

// String returns a human-readable name for the lock state.
func (s LockState) String() string {
	switch s {
	case LockStateNotLocked:
		return "NotLocked"
	case LockStateLockInProgress:
		return "LockInProgress"
	case LockStateLocked:
		return "Locked"
	case LockStateLockedByOther:
		return "LockedByOther"
	case LockStateUnlockInProgress:
		return "UnlockInProgress"
	default:
		return "Undefined"
	}
}

// IsValid returns true if the state is a defined value.
func (s LockState) IsValid() bool {
	return s >= LockStateNotLocked && s <= LockStateUnlockInProgress
}

// ParseLockState inverts String, returning LockStateUndefined for any
// name it doesn't recognize.
func ParseLockState(name string) LockState {
	switch name {
	case "NotLocked":
		return LockStateNotLocked
	case "LockInProgress":
		return LockStateLockInProgress
	case "Locked":
		return LockStateLocked
	case "LockedByOther":
		return LockStateLockedByOther
	case "UnlockInProgress":
		return LockStateUnlockInProgress
	default:
		return LockStateUndefined
	}
}
