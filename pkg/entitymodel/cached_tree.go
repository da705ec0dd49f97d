package entitymodel

// IsCompleteFor reports completeness the way setCachedEntityTree needs
// it: every configuration complete when forAllConfigurations is set,
// otherwise only the tree's currently selected configuration.
func (t *EntityTree) IsCompleteFor(forAllConfigurations bool) bool {
	if t.Configurations.Len() == 0 {
		return false
	}
	if forAllConfigurations {
		return t.IsComplete()
	}
	ct, err := t.ConfigurationTree(t.Dynamic.CurrentConfiguration)
	if err != nil {
		return false
	}
	return ct.IsComplete()
}

// AcceptCachedTree implements setCachedEntityTree's acceptance rule
// (spec.md §4.2, scenario 2/3): a cached tree is accepted, replacing
// the receiver's contents, iff its EntityModelID matches the live
// entity's and it is complete per IsCompleteFor. Returns whether the
// cache was accepted.
func (t *EntityTree) AcceptCachedTree(cached *EntityTree, liveEntityModelID uint64, forAllConfigurations bool) bool {
	if cached.Static.EntityModelID != liveEntityModelID {
		return false
	}
	if !cached.IsCompleteFor(forAllConfigurations) {
		return false
	}
	*t = *cached
	return true
}
