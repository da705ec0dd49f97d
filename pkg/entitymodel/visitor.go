package entitymodel

// Visitor receives a deterministic traversal of an entity's model tree,
// per spec.md §4.8. Every method is called with ascending descriptor
// index within its kind; Visit order across kinds matches Accept's
// fixed sequence. Implementations that only care about a few kinds can
// embed NoopVisitor and override the rest.
type Visitor interface {
	VisitEntity(tree *EntityTree)
	VisitConfiguration(ci ConfigurationIndex, ct *ConfigurationTree)
	VisitAudioUnit(ci ConfigurationIndex, idx AudioUnitIndex, node *AudioUnitNode)
	VisitStreamInput(ci ConfigurationIndex, idx StreamIndex, node *StreamInputNode)
	VisitStreamOutput(ci ConfigurationIndex, idx StreamIndex, node *StreamOutputNode)
	VisitAvbInterface(ci ConfigurationIndex, idx AvbInterfaceIndex, node *AvbInterfaceNode)
	VisitClockSource(ci ConfigurationIndex, idx ClockSourceIndex, node *ClockSourceNode)
	VisitMemoryObject(ci ConfigurationIndex, idx MemoryObjectIndex, node *MemoryObjectNode)
	VisitLocale(ci ConfigurationIndex, idx LocaleIndex, node *LocaleNode)
	VisitStreamPortInput(ci ConfigurationIndex, idx StreamPortIndex, node *StreamPortNode)
	VisitStreamPortOutput(ci ConfigurationIndex, idx StreamPortIndex, node *StreamPortNode)
	VisitAudioCluster(ci ConfigurationIndex, idx ClusterIndex, node *AudioClusterNode)
	VisitAudioMap(ci ConfigurationIndex, idx MapIndex, node *AudioMapNode)
	VisitControl(ci ConfigurationIndex, idx ControlIndex, node *ControlNode)
	VisitClockDomain(ci ConfigurationIndex, idx ClockDomainIndex, node *ClockDomainNode)
	VisitRedundantStreamInput(ci ConfigurationIndex, vi VirtualIndex, node *RedundantStreamNode)
	VisitRedundantStreamOutput(ci ConfigurationIndex, vi VirtualIndex, node *RedundantStreamNode)
}

// NoopVisitor implements Visitor with no-op methods, for embedding by
// visitors that only care about a subset of descriptor kinds.
type NoopVisitor struct{}

func (NoopVisitor) VisitEntity(*EntityTree)                                              {}
func (NoopVisitor) VisitConfiguration(ConfigurationIndex, *ConfigurationTree)             {}
func (NoopVisitor) VisitAudioUnit(ConfigurationIndex, AudioUnitIndex, *AudioUnitNode)     {}
func (NoopVisitor) VisitStreamInput(ConfigurationIndex, StreamIndex, *StreamInputNode)    {}
func (NoopVisitor) VisitStreamOutput(ConfigurationIndex, StreamIndex, *StreamOutputNode)  {}
func (NoopVisitor) VisitAvbInterface(ConfigurationIndex, AvbInterfaceIndex, *AvbInterfaceNode) {
}
func (NoopVisitor) VisitClockSource(ConfigurationIndex, ClockSourceIndex, *ClockSourceNode) {}
func (NoopVisitor) VisitMemoryObject(ConfigurationIndex, MemoryObjectIndex, *MemoryObjectNode) {
}
func (NoopVisitor) VisitLocale(ConfigurationIndex, LocaleIndex, *LocaleNode) {}
func (NoopVisitor) VisitStreamPortInput(ConfigurationIndex, StreamPortIndex, *StreamPortNode) {
}
func (NoopVisitor) VisitStreamPortOutput(ConfigurationIndex, StreamPortIndex, *StreamPortNode) {
}
func (NoopVisitor) VisitAudioCluster(ConfigurationIndex, ClusterIndex, *AudioClusterNode) {}
func (NoopVisitor) VisitAudioMap(ConfigurationIndex, MapIndex, *AudioMapNode)             {}
func (NoopVisitor) VisitControl(ConfigurationIndex, ControlIndex, *ControlNode)           {}
func (NoopVisitor) VisitClockDomain(ConfigurationIndex, ClockDomainIndex, *ClockDomainNode) {
}
func (NoopVisitor) VisitRedundantStreamInput(ConfigurationIndex, VirtualIndex, *RedundantStreamNode) {
}
func (NoopVisitor) VisitRedundantStreamOutput(ConfigurationIndex, VirtualIndex, *RedundantStreamNode) {
}

// Accept walks the tree in the fixed order spec.md §4.8 mandates:
// Entity, then for the current configuration (or every configuration
// when visitAllConfigurations is true) each descriptor kind in turn.
// STRINGS descriptors are deliberately not visited; they are exposed
// only via GetLocalizedString.
func (t *EntityTree) Accept(v Visitor, visitAllConfigurations bool) {
	v.VisitEntity(t)

	if visitAllConfigurations {
		t.Configurations.ForEach(func(ci ConfigurationIndex, ct *ConfigurationTree) {
			acceptConfiguration(v, ci, ct)
		})
		return
	}

	ci := t.Dynamic.CurrentConfiguration
	if ct, ok := t.Configurations.Get(ci); ok {
		acceptConfiguration(v, ci, ct)
	}
}

func acceptConfiguration(v Visitor, ci ConfigurationIndex, ct *ConfigurationTree) {
	v.VisitConfiguration(ci, ct)

	ct.AudioUnits.ForEach(func(idx AudioUnitIndex, n *AudioUnitNode) { v.VisitAudioUnit(ci, idx, n) })
	ct.StreamInputs.ForEach(func(idx StreamIndex, n *StreamInputNode) { v.VisitStreamInput(ci, idx, n) })
	ct.StreamOutputs.ForEach(func(idx StreamIndex, n *StreamOutputNode) { v.VisitStreamOutput(ci, idx, n) })
	ct.AvbInterfaces.ForEach(func(idx AvbInterfaceIndex, n *AvbInterfaceNode) { v.VisitAvbInterface(ci, idx, n) })
	ct.ClockSources.ForEach(func(idx ClockSourceIndex, n *ClockSourceNode) { v.VisitClockSource(ci, idx, n) })
	ct.MemoryObjects.ForEach(func(idx MemoryObjectIndex, n *MemoryObjectNode) { v.VisitMemoryObject(ci, idx, n) })
	ct.Locales.ForEach(func(idx LocaleIndex, n *LocaleNode) { v.VisitLocale(ci, idx, n) })
	ct.StreamPortInputs.ForEach(func(idx StreamPortIndex, n *StreamPortNode) { v.VisitStreamPortInput(ci, idx, n) })
	ct.StreamPortOutputs.ForEach(func(idx StreamPortIndex, n *StreamPortNode) { v.VisitStreamPortOutput(ci, idx, n) })
	ct.AudioClusters.ForEach(func(idx ClusterIndex, n *AudioClusterNode) { v.VisitAudioCluster(ci, idx, n) })
	ct.AudioMaps.ForEach(func(idx MapIndex, n *AudioMapNode) { v.VisitAudioMap(ci, idx, n) })
	ct.Controls.ForEach(func(idx ControlIndex, n *ControlNode) { v.VisitControl(ci, idx, n) })
	ct.ClockDomains.ForEach(func(idx ClockDomainIndex, n *ClockDomainNode) { v.VisitClockDomain(ci, idx, n) })
	ct.RedundantStreamInputs.ForEach(func(vi VirtualIndex, n *RedundantStreamNode) { v.VisitRedundantStreamInput(ci, vi, n) })
	ct.RedundantStreamOutputs.ForEach(func(vi VirtualIndex, n *RedundantStreamNode) { v.VisitRedundantStreamOutput(ci, vi, n) })
}
