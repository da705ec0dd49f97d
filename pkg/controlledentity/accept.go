package controlledentity

import "github.com/klokik/avdecc/pkg/entitymodel"

// Accept walks this entity's tree with v, per spec.md §4.8, failing
// with entitymodel.ErrNotSupported if the entity does not advertise
// AEM — the same gate GetEntityTree applies.
func (e *ControlledEntity) Accept(v entitymodel.Visitor, visitAllConfigurations bool) error {
	tree, err := e.GetEntityTree()
	if err != nil {
		return err
	}
	tree.Accept(v, visitAllConfigurations)
	return nil
}
