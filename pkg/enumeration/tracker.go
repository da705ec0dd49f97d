package enumeration

import (
	"time"

	"github.com/klokik/avdecc/pkg/entitymodel"
)

// Tracker drives one entity's enumeration: the active step bitset, a
// per-configuration expected-response registry for each of the four
// query kinds, their retry timers, and the fatal-error latch.
//
// Per spec.md §5, the orchestrator holds the entity's shared lock for
// the duration of every call into Tracker; it carries no lock of its
// own, matching entitymodel's deliberate departure from
// datamodel.BasicEndpoint's internal locking.
type Tracker struct {
	steps StepSet

	fatal bool

	registerUnsolRetry retryTimer
	milanRetry         retryTimer
	descriptorRetry    retryTimer
	dynInfoRetry       retryTimer
	descDynRetry       retryTimer

	expectedRegisterUnsol bool

	milan      map[entitymodel.ConfigurationIndex]map[MilanInfoKey]struct{}
	descriptor map[entitymodel.ConfigurationIndex]map[DescriptorKey]struct{}
	dynInfo    map[entitymodel.ConfigurationIndex]map[DynamicInfoKey]struct{}
	descDyn    map[entitymodel.ConfigurationIndex]map[DescriptorDynamicInfoKey]struct{}
}

// NewTracker returns a Tracker with every step pending except
// StepGetStaticModel, which is added only if useCachedStaticModel is
// false — spec.md §4.5: the static walk "is skipped iff a complete
// cached tree was accepted", and StepGetDescriptorDynamicInfo ("only
// used when the cached static tree was reused") is added only in the
// opposite case.
func NewTracker(policy RetryPolicy, useCachedStaticModel bool) *Tracker {
	t := &Tracker{
		registerUnsolRetry: retryTimer{policy: policy},
		milanRetry:         retryTimer{policy: policy},
		descriptorRetry:    retryTimer{policy: policy},
		dynInfoRetry:       retryTimer{policy: policy},
		descDynRetry:       retryTimer{policy: policy},
		milan:              make(map[entitymodel.ConfigurationIndex]map[MilanInfoKey]struct{}),
		descriptor:         make(map[entitymodel.ConfigurationIndex]map[DescriptorKey]struct{}),
		dynInfo:            make(map[entitymodel.ConfigurationIndex]map[DynamicInfoKey]struct{}),
		descDyn:            make(map[entitymodel.ConfigurationIndex]map[DescriptorDynamicInfoKey]struct{}),
	}
	t.steps = StepGetMilanInfo | StepRegisterUnsol | StepGetDynamicInfo
	if useCachedStaticModel {
		t.steps.Add(StepGetDescriptorDynamicInfo)
	} else {
		t.steps.Add(StepGetStaticModel)
	}
	return t
}

// Steps returns the current step bitset.
func (t *Tracker) Steps() StepSet {
	return t.steps
}

// AddEnumerationStep adds step to the bitset.
func (t *Tracker) AddEnumerationStep(step StepSet) {
	t.steps.Add(step)
}

// ClearEnumerationStep removes step from the bitset.
func (t *Tracker) ClearEnumerationStep(step StepSet) {
	t.steps.Clear(step)
}

// SetEnumerationSteps replaces the bitset outright.
func (t *Tracker) SetEnumerationSteps(steps StepSet) {
	t.steps = steps
}

// IsFullyLoaded reports whether every step has been cleared.
func (t *Tracker) IsFullyLoaded() bool {
	return t.steps.IsEmpty()
}

// GotFatalEnumerationError reports whether a per-step retry budget was
// ever exhausted for this entity.
func (t *Tracker) GotFatalEnumerationError() bool {
	return t.fatal
}

// SetGotFatalEnumerationError latches the fatal-error flag. Idempotent
// and terminal: once set, it is never cleared.
func (t *Tracker) SetGotFatalEnumerationError() {
	t.fatal = true
}

// SetRegisterUnsolExpected marks a REGISTER_UNSOLICITED_NOTIFICATION
// response as outstanding. Unlike the four query kinds below,
// registration is an entity-wide command with no per-configuration or
// per-descriptor key, so this is a bare flag rather than a set.
func (t *Tracker) SetRegisterUnsolExpected() {
	t.expectedRegisterUnsol = true
}

// CheckAndClearRegisterUnsolExpected clears the outstanding
// expectation, if present, and reports whether it was present.
func (t *Tracker) CheckAndClearRegisterUnsolExpected() bool {
	if !t.expectedRegisterUnsol {
		return false
	}
	t.expectedRegisterUnsol = false
	return true
}

// GotRegisterUnsolExpected reports whether no REGISTER_UNSOLICITED_NOTIFICATION
// response is outstanding: true before SetRegisterUnsolExpected and
// again once the response has been cleared.
func (t *Tracker) GotRegisterUnsolExpected() bool {
	return !t.expectedRegisterUnsol
}

// GetRegisterUnsolRetryTimer decides whether to retry an outstanding
// REGISTER_UNSOLICITED_NOTIFICATION command; see RetryPolicy.
func (t *Tracker) GetRegisterUnsolRetryTimer() (bool, time.Duration) {
	return t.registerUnsolRetry.next()
}

// SetMilanInfoExpected marks a GET_MILAN_INFO response as outstanding
// for configuration ci.
func (t *Tracker) SetMilanInfoExpected(ci entitymodel.ConfigurationIndex) {
	t.ensureMilan(ci)[MilanInfoKey{}] = struct{}{}
}

// CheckAndClearMilanInfoExpected removes the outstanding expectation
// for ci, if present, and reports whether it was present.
func (t *Tracker) CheckAndClearMilanInfoExpected(ci entitymodel.ConfigurationIndex) bool {
	set := t.milan[ci]
	if _, ok := set[MilanInfoKey{}]; !ok {
		return false
	}
	delete(set, MilanInfoKey{})
	return true
}

// GotAllMilanInfoExpected reports whether ci has no outstanding
// GET_MILAN_INFO expectations.
func (t *Tracker) GotAllMilanInfoExpected(ci entitymodel.ConfigurationIndex) bool {
	return len(t.milan[ci]) == 0
}

// GetMilanInfoRetryTimer decides whether to retry outstanding
// GET_MILAN_INFO queries; see RetryPolicy.
func (t *Tracker) GetMilanInfoRetryTimer() (bool, time.Duration) {
	return t.milanRetry.next()
}

func (t *Tracker) ensureMilan(ci entitymodel.ConfigurationIndex) map[MilanInfoKey]struct{} {
	set, ok := t.milan[ci]
	if !ok {
		set = make(map[MilanInfoKey]struct{})
		t.milan[ci] = set
	}
	return set
}

// SetDescriptorExpected marks a descriptor read as outstanding.
func (t *Tracker) SetDescriptorExpected(ci entitymodel.ConfigurationIndex, key DescriptorKey) {
	t.ensureDescriptor(ci)[key] = struct{}{}
}

// CheckAndClearDescriptorExpected removes the outstanding expectation
// for key, if present, and reports whether it was present.
func (t *Tracker) CheckAndClearDescriptorExpected(ci entitymodel.ConfigurationIndex, key DescriptorKey) bool {
	set := t.descriptor[ci]
	if _, ok := set[key]; !ok {
		return false
	}
	delete(set, key)
	return true
}

// GotAllDescriptorsExpected reports whether ci has no outstanding
// descriptor expectations.
func (t *Tracker) GotAllDescriptorsExpected(ci entitymodel.ConfigurationIndex) bool {
	return len(t.descriptor[ci]) == 0
}

// GetDescriptorRetryTimer decides whether to retry outstanding
// descriptor reads; see RetryPolicy.
func (t *Tracker) GetDescriptorRetryTimer() (bool, time.Duration) {
	return t.descriptorRetry.next()
}

func (t *Tracker) ensureDescriptor(ci entitymodel.ConfigurationIndex) map[DescriptorKey]struct{} {
	set, ok := t.descriptor[ci]
	if !ok {
		set = make(map[DescriptorKey]struct{})
		t.descriptor[ci] = set
	}
	return set
}

// SetDynamicInfoExpected marks a StepGetDynamicInfo query as outstanding.
func (t *Tracker) SetDynamicInfoExpected(ci entitymodel.ConfigurationIndex, key DynamicInfoKey) {
	t.ensureDynInfo(ci)[key] = struct{}{}
}

// CheckAndClearDynamicInfoExpected removes the outstanding expectation
// for key, if present, and reports whether it was present.
func (t *Tracker) CheckAndClearDynamicInfoExpected(ci entitymodel.ConfigurationIndex, key DynamicInfoKey) bool {
	set := t.dynInfo[ci]
	if _, ok := set[key]; !ok {
		return false
	}
	delete(set, key)
	return true
}

// GotAllDynamicInfoExpected reports whether ci has no outstanding
// StepGetDynamicInfo expectations.
func (t *Tracker) GotAllDynamicInfoExpected(ci entitymodel.ConfigurationIndex) bool {
	return len(t.dynInfo[ci]) == 0
}

// GetDynamicInfoRetryTimer decides whether to retry outstanding
// StepGetDynamicInfo queries; see RetryPolicy.
func (t *Tracker) GetDynamicInfoRetryTimer() (bool, time.Duration) {
	return t.dynInfoRetry.next()
}

func (t *Tracker) ensureDynInfo(ci entitymodel.ConfigurationIndex) map[DynamicInfoKey]struct{} {
	set, ok := t.dynInfo[ci]
	if !ok {
		set = make(map[DynamicInfoKey]struct{})
		t.dynInfo[ci] = set
	}
	return set
}

// SetDescriptorDynamicInfoExpected marks a StepGetDescriptorDynamicInfo
// query as outstanding.
func (t *Tracker) SetDescriptorDynamicInfoExpected(ci entitymodel.ConfigurationIndex, key DescriptorDynamicInfoKey) {
	t.ensureDescDyn(ci)[key] = struct{}{}
}

// CheckAndClearDescriptorDynamicInfoExpected removes the outstanding
// expectation for key, if present, and reports whether it was present.
func (t *Tracker) CheckAndClearDescriptorDynamicInfoExpected(ci entitymodel.ConfigurationIndex, key DescriptorDynamicInfoKey) bool {
	set := t.descDyn[ci]
	if _, ok := set[key]; !ok {
		return false
	}
	delete(set, key)
	return true
}

// GotAllDescriptorDynamicInfoExpected reports whether ci has no
// outstanding StepGetDescriptorDynamicInfo expectations.
func (t *Tracker) GotAllDescriptorDynamicInfoExpected(ci entitymodel.ConfigurationIndex) bool {
	return len(t.descDyn[ci]) == 0
}

// GetDescriptorDynamicInfoRetryTimer decides whether to retry
// outstanding StepGetDescriptorDynamicInfo queries; see RetryPolicy.
func (t *Tracker) GetDescriptorDynamicInfoRetryTimer() (bool, time.Duration) {
	return t.descDynRetry.next()
}

func (t *Tracker) ensureDescDyn(ci entitymodel.ConfigurationIndex) map[DescriptorDynamicInfoKey]struct{} {
	set, ok := t.descDyn[ci]
	if !ok {
		set = make(map[DescriptorDynamicInfoKey]struct{})
		t.descDyn[ci] = set
	}
	return set
}
