package controlledentity

import (
	"github.com/klokik/avdecc/pkg/entitymodel"
	"github.com/klokik/avdecc/pkg/enumeration"
)

// GetEntityTree returns the entity's AEM tree, or
// entitymodel.ErrNotSupported if the entity does not advertise AEM,
// per spec.md §4.2.
func (e *ControlledEntity) GetEntityTree() (*entitymodel.EntityTree, error) {
	if !entitymodel.HasAemSupport(e.static.EntityCapabilities) {
		return nil, entitymodel.ErrNotSupported
	}
	return e.tree, nil
}

// GetConfigurationTree returns the configuration tree at ci, or
// entitymodel.ErrNotSupported / ErrInvalidConfigurationIndex per the
// same contract as GetEntityTree plus EntityTree.ConfigurationTree.
func (e *ControlledEntity) GetConfigurationTree(ci entitymodel.ConfigurationIndex) (*entitymodel.ConfigurationTree, error) {
	tree, err := e.GetEntityTree()
	if err != nil {
		return nil, err
	}
	return tree.ConfigurationTree(ci)
}

// HasTreeModel reports whether this entity's tree has at least the
// shape GetEntityTree would require, without throwing.
func (e *ControlledEntity) HasTreeModel() bool {
	return entitymodel.HasAemSupport(e.static.EntityCapabilities)
}

// HasConfigurationTree reports whether ci is present, without error.
func (e *ControlledEntity) HasConfigurationTree(ci entitymodel.ConfigurationIndex) bool {
	if !e.HasTreeModel() {
		return false
	}
	return e.tree.HasConfigurationTree(ci)
}

// HasAnyConfigurationTree reports whether the entity tree holds at
// least one configuration.
func (e *ControlledEntity) HasAnyConfigurationTree() bool {
	if !e.HasTreeModel() {
		return false
	}
	return e.tree.HasAnyConfigurationTree()
}

// SetEntityTree replaces the whole tree atomically, used when loading
// a complete tree from cache or applying a freshly walked static
// model (spec.md §4.2).
func (e *ControlledEntity) SetEntityTree(tree *entitymodel.EntityTree) {
	e.tree = tree
}

// SetCachedEntityTree accepts cached as the entity's tree iff it is
// complete and its EntityModelID matches this entity's live static
// model, per spec.md §4.2 setCachedEntityTree. On acceptance, it also
// advances the enumeration tracker: StepGetStaticModel is cleared and
// StepGetDescriptorDynamicInfo is added, matching spec.md §4.5's "skip
// GetStaticModel iff a complete cached tree was accepted" rule. The
// caller must invoke this before enumeration begins — acceptance after
// the static walk has already started produces a tracker in an
// inconsistent step set.
func (e *ControlledEntity) SetCachedEntityTree(cached *entitymodel.EntityTree, forAllConfigurations bool) bool {
	accepted := e.tree.AcceptCachedTree(cached, e.static.EntityModelID, forAllConfigurations)
	if !accepted {
		if e.log != nil {
			e.log.Debugf("cached entity tree for %#x rejected: model id mismatch or incomplete", e.eid)
		}
		return false
	}
	e.enum.ClearEnumerationStep(enumeration.StepGetStaticModel)
	e.enum.AddEnumerationStep(enumeration.StepGetDescriptorDynamicInfo)
	if e.log != nil {
		e.log.Infof("accepted cached entity tree for %#x", e.eid)
	}
	return true
}

// IsEntityModelValidForCaching reports whether this entity's tree is
// complete in every configuration and the entity is not itself
// virtual, per spec.md §4.2's isEntityModelValidForCaching — a virtual
// entity's tree came from a cache file, not a live walk, so writing it
// back out would just echo what was already on disk.
func (e *ControlledEntity) IsEntityModelValidForCaching() bool {
	if e.isVirtual {
		return false
	}
	if !e.HasTreeModel() {
		return false
	}
	return e.tree.IsComplete()
}
