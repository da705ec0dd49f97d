package entitymodel

// EntityDynamicModel holds the entity's mutable top-level state: its
// resolved name/group name and which configuration is active.
type EntityDynamicModel struct {
	EntityName           AvdeccFixedString
	GroupName            AvdeccFixedString
	CurrentConfiguration ConfigurationIndex
}

// EntityTree is the root of one entity's AEM model: its own
// static/dynamic record plus one ConfigurationTree per configuration
// index, per spec.md §3.
type EntityTree struct {
	Static  EntityStaticModel
	Dynamic EntityDynamicModel

	Configurations *orderedMap[ConfigurationIndex, *ConfigurationTree]
}

// NewEntityTree returns an empty entity tree.
func NewEntityTree() *EntityTree {
	return &EntityTree{
		Configurations: newOrderedMap[ConfigurationIndex, *ConfigurationTree](),
	}
}

// ConfigurationTree returns the configuration tree at ci, or
// ErrInvalidConfigurationIndex if ci is not present.
func (t *EntityTree) ConfigurationTree(ci ConfigurationIndex) (*ConfigurationTree, error) {
	ct, ok := t.Configurations.Get(ci)
	if !ok {
		return nil, ErrInvalidConfigurationIndex
	}
	return ct, nil
}

// EnsureConfigurationTree returns the configuration tree at ci,
// creating an empty one if it does not yet exist. Used by descriptor
// setters, which must be able to populate a configuration before its
// ConfigurationDescriptor itself has arrived (breadth-first walk may
// enqueue children before the parent's siblings are all set).
func (t *EntityTree) EnsureConfigurationTree(ci ConfigurationIndex) *ConfigurationTree {
	if ct, ok := t.Configurations.Get(ci); ok {
		return ct
	}
	ct := NewConfigurationTree()
	t.Configurations.Set(ci, ct)
	return ct
}

// HasConfigurationTree reports whether ci is present, without error.
func (t *EntityTree) HasConfigurationTree(ci ConfigurationIndex) bool {
	_, ok := t.Configurations.Get(ci)
	return ok
}

// HasAnyConfigurationTree reports whether the entity tree holds at
// least one configuration.
func (t *EntityTree) HasAnyConfigurationTree() bool {
	return t.Configurations.Len() > 0
}

// IsComplete reports whether every configuration in the tree is
// complete (spec.md P2) and the tree holds exactly
// Static.ConfigurationsCount configurations.
func (t *EntityTree) IsComplete() bool {
	if t.Configurations.Len() != int(t.Static.ConfigurationsCount) {
		return false
	}
	complete := true
	t.Configurations.ForEach(func(_ ConfigurationIndex, ct *ConfigurationTree) {
		if !ct.IsComplete() {
			complete = false
		}
	})
	return complete
}
