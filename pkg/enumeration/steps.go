// Package enumeration drives the multi-stage discovery state machine a
// ControlledEntity runs once it is added to a controller, per
// spec.md §4.5. It owns the step bitset, the per-step expected-response
// registries, and the fixed-delay retry policy; it issues no queries and
// performs no I/O itself — the orchestrator, outside this module's
// scope, reads its decisions and drives the wire protocol.
package enumeration

// StepSet is a bitset of enumeration steps, manipulated atomically by
// the orchestrator while holding the entity's shared lock.
type StepSet uint8

const (
	// StepGetMilanInfo issues GET_MILAN_INFO, if the entity advertises
	// Milan vendor-unique support.
	StepGetMilanInfo StepSet = 1 << iota

	// StepRegisterUnsol issues REGISTER_UNSOLICITED_NOTIFICATION.
	StepRegisterUnsol

	// StepGetStaticModel walks every descriptor breadth-first from the
	// EntityDescriptor. Skipped if a complete cached tree was accepted.
	StepGetStaticModel

	// StepGetDescriptorDynamicInfo fetches per-descriptor dynamic values
	// the static walk doesn't populate. Only used when a cached static
	// tree was reused in place of StepGetStaticModel.
	StepGetDescriptorDynamicInfo

	// StepGetDynamicInfo fetches acquire/lock state, stream state, audio
	// maps, connections, counters, and related live values.
	StepGetDynamicInfo
)

// allSteps is every step a freshly added entity starts with, save for
// the static/cached split which the caller resolves before enumeration
// begins (spec.md §4.5: GetStaticModel is skipped "iff a complete
// cached tree was accepted").
const allSteps = StepGetMilanInfo | StepRegisterUnsol | StepGetStaticModel | StepGetDescriptorDynamicInfo | StepGetDynamicInfo

// String returns the set of step names present in s, separated by "|".
func (s StepSet) String() string {
	if s == 0 {
		return "none"
	}
	var out string
	for _, p := range []struct {
		step StepSet
		name string
	}{
		{StepGetMilanInfo, "GetMilanInfo"},
		{StepRegisterUnsol, "RegisterUnsol"},
		{StepGetStaticModel, "GetStaticModel"},
		{StepGetDescriptorDynamicInfo, "GetDescriptorDynamicInfo"},
		{StepGetDynamicInfo, "GetDynamicInfo"},
	} {
		if s.Has(p.step) {
			if out != "" {
				out += "|"
			}
			out += p.name
		}
	}
	return out
}

// Has reports whether step is present in s.
func (s StepSet) Has(step StepSet) bool {
	return s&step != 0
}

// IsEmpty reports whether s has no steps set.
func (s StepSet) IsEmpty() bool {
	return s == 0
}

// Add sets step in s.
func (s *StepSet) Add(step StepSet) {
	*s |= step
}

// Clear removes step from s.
func (s *StepSet) Clear(step StepSet) {
	*s &^= step
}
