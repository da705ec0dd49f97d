package controlledentity

import "github.com/klokik/avdecc/pkg/entitymodel"

// OnEntityFullyLoaded finalizes enumeration once the tracker reports
// every step complete: it rebuilds the redundancy classification of
// every configuration discovered (spec.md §4.6's RebuildRedundancy,
// deferred until the full model is known so secondary-stream
// detection sees every AUDIO_MAP / stream association) and flips
// Advertised/WasAdvertised, per spec.md §4.5's P1 invariant that an
// entity is advertised only once its model is complete.
//
// The caller is expected to invoke this once per successful
// enumeration pass, after processing the response that made
// e.Enumeration().IsFullyLoaded() become true; calling it again before
// the tracker resets is harmless but a no-op beyond re-setting
// Advertised.
func (e *ControlledEntity) OnEntityFullyLoaded() {
	e.rebuildAllRedundancy()
	e.SetAdvertised(true)
}

func (e *ControlledEntity) rebuildAllRedundancy() {
	if e.tree == nil {
		return
	}
	e.tree.Configurations.ForEach(func(_ entitymodel.ConfigurationIndex, ct *entitymodel.ConfigurationTree) {
		ct.RebuildRedundancy()
	})
}
