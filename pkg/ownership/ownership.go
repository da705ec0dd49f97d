package ownership

import (
	"sync"

	"github.com/klokik/avdecc/pkg/entitymodel"
)

// Config configures a Tracker's notification callbacks.
type Config struct {
	// OnAcquireStateChanged is called whenever the acquire state transitions.
	OnAcquireStateChanged func(state AcquireState, owningControllerID entitymodel.EID)

	// OnLockStateChanged is called whenever the lock state transitions.
	OnLockStateChanged func(state LockState, lockingControllerID entitymodel.EID)
}

// Tracker holds the two acquire/lock state machines for one
// ControlledEntity. Transitions are externally driven by the
// orchestrator via SetAcquireState/SetOwningController and their lock
// equivalents; Tracker never initiates a transition on its own.
//
// Grounded on backkem-matter/pkg/commissioning/device.go's
// CommissioningWindow: setState under the lock, notify via an optional
// callback, with every accessor taking the same lock for reads.
type Tracker struct {
	config Config
	mu     sync.RWMutex

	acquireState        AcquireState
	owningControllerID  entitymodel.EID
	lockState           LockState
	lockingControllerID entitymodel.EID
}

// NewTracker returns a Tracker in the Undefined/Undefined state.
func NewTracker(config Config) *Tracker {
	return &Tracker{
		config:       config,
		acquireState: AcquireStateUndefined,
		lockState:    LockStateUndefined,
	}
}

// AcquireState returns the current acquire state.
func (t *Tracker) AcquireState() AcquireState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.acquireState
}

// OwningControllerID returns the controller ID that owns the entity.
// Only meaningful when AcquireState is Acquired or AcquiredByOther.
func (t *Tracker) OwningControllerID() entitymodel.EID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.owningControllerID
}

// SetAcquireState sets the acquire state and notifies
// OnAcquireStateChanged, if configured.
func (t *Tracker) SetAcquireState(state AcquireState) {
	t.mu.Lock()
	t.acquireState = state
	owner := t.owningControllerID
	t.mu.Unlock()

	if t.config.OnAcquireStateChanged != nil {
		t.config.OnAcquireStateChanged(state, owner)
	}
}

// SetOwningController records which controller owns the entity,
// without changing the acquire state itself.
func (t *Tracker) SetOwningController(id entitymodel.EID) {
	t.mu.Lock()
	t.owningControllerID = id
	t.mu.Unlock()
}

// IsAcquired reports whether the local controller owns the entity.
func (t *Tracker) IsAcquired() bool {
	return t.AcquireState() == AcquireStateAcquired
}

// IsAcquiredByOther reports whether another controller owns the entity.
func (t *Tracker) IsAcquiredByOther() bool {
	return t.AcquireState() == AcquireStateAcquiredByOther
}

// IsAcquireCommandInProgress reports whether an ACQUIRE_ENTITY or
// RELEASE_ENTITY command is outstanding.
func (t *Tracker) IsAcquireCommandInProgress() bool {
	switch t.AcquireState() {
	case AcquireStateAcquireInProgress, AcquireStateReleaseInProgress:
		return true
	default:
		return false
	}
}

// LockState returns the current lock state.
func (t *Tracker) LockState() LockState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lockState
}

// LockingControllerID returns the controller ID that holds the lock.
// Only meaningful when LockState is Locked or LockedByOther.
func (t *Tracker) LockingControllerID() entitymodel.EID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lockingControllerID
}

// SetLockState sets the lock state and notifies OnLockStateChanged, if
// configured.
func (t *Tracker) SetLockState(state LockState) {
	t.mu.Lock()
	t.lockState = state
	locker := t.lockingControllerID
	t.mu.Unlock()

	if t.config.OnLockStateChanged != nil {
		t.config.OnLockStateChanged(state, locker)
	}
}

// SetLockingController records which controller holds the lock,
// without changing the lock state itself.
func (t *Tracker) SetLockingController(id entitymodel.EID) {
	t.mu.Lock()
	t.lockingControllerID = id
	t.mu.Unlock()
}

// IsLocked reports whether the local controller holds the lock.
func (t *Tracker) IsLocked() bool {
	return t.LockState() == LockStateLocked
}

// IsLockedByOther reports whether another controller holds the lock.
func (t *Tracker) IsLockedByOther() bool {
	return t.LockState() == LockStateLockedByOther
}

// IsLockCommandInProgress reports whether a LOCK_ENTITY or
// UNLOCK_ENTITY command is outstanding.
func (t *Tracker) IsLockCommandInProgress() bool {
	switch t.LockState() {
	case LockStateLockInProgress, LockStateUnlockInProgress:
		return true
	default:
		return false
	}
}
