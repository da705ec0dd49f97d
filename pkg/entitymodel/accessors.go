package entitymodel

// Const node getters. Each returns ErrInvalidDescriptorIndex if the
// requested index is not present in this configuration, matching the
// source's getNodeStaticModel/getNodeDynamicModel contract (spec.md
// §4.2). Callers that need NotSupported/InvalidConfigurationIndex
// semantics go through EntityTree.ConfigurationTree first.

func (c *ConfigurationTree) AudioUnit(idx AudioUnitIndex) (*AudioUnitNode, error) {
	return getNode(c.AudioUnits, idx)
}

func (c *ConfigurationTree) StreamInput(idx StreamIndex) (*StreamInputNode, error) {
	return getNode(c.StreamInputs, idx)
}

func (c *ConfigurationTree) StreamOutput(idx StreamIndex) (*StreamOutputNode, error) {
	return getNode(c.StreamOutputs, idx)
}

func (c *ConfigurationTree) AvbInterface(idx AvbInterfaceIndex) (*AvbInterfaceNode, error) {
	return getNode(c.AvbInterfaces, idx)
}

func (c *ConfigurationTree) ClockSource(idx ClockSourceIndex) (*ClockSourceNode, error) {
	return getNode(c.ClockSources, idx)
}

func (c *ConfigurationTree) MemoryObject(idx MemoryObjectIndex) (*MemoryObjectNode, error) {
	return getNode(c.MemoryObjects, idx)
}

func (c *ConfigurationTree) Locale(idx LocaleIndex) (*LocaleNode, error) {
	return getNode(c.Locales, idx)
}

func (c *ConfigurationTree) StringsDescriptor(idx StringsIndex) (*StringsNode, error) {
	return getNode(c.Strings, idx)
}

func (c *ConfigurationTree) StreamPortInput(idx StreamPortIndex) (*StreamPortNode, error) {
	return getNode(c.StreamPortInputs, idx)
}

func (c *ConfigurationTree) StreamPortOutput(idx StreamPortIndex) (*StreamPortNode, error) {
	return getNode(c.StreamPortOutputs, idx)
}

func (c *ConfigurationTree) AudioCluster(idx ClusterIndex) (*AudioClusterNode, error) {
	return getNode(c.AudioClusters, idx)
}

func (c *ConfigurationTree) AudioMap(idx MapIndex) (*AudioMapNode, error) {
	return getNode(c.AudioMaps, idx)
}

func (c *ConfigurationTree) Control(idx ControlIndex) (*ControlNode, error) {
	return getNode(c.Controls, idx)
}

func (c *ConfigurationTree) ClockDomain(idx ClockDomainIndex) (*ClockDomainNode, error) {
	return getNode(c.ClockDomains, idx)
}

func (c *ConfigurationTree) RedundantStreamInput(vi VirtualIndex) (*RedundantStreamNode, error) {
	return getNode(c.RedundantStreamInputs, vi)
}

func (c *ConfigurationTree) RedundantStreamOutput(vi VirtualIndex) (*RedundantStreamNode, error) {
	return getNode(c.RedundantStreamOutputs, vi)
}

// FindLocale searches the configuration's locales for one whose
// LocaleID matches locale exactly, falling back to nothing — the
// language-subtag fallback AVDECC controllers commonly apply (e.g.
// "en-US" -> "en") is an orchestrator policy choice, not this core's
// concern.
func (c *ConfigurationTree) FindLocale(locale string) (*LocaleNode, bool) {
	var found *LocaleNode
	c.Locales.ForEach(func(_ LocaleIndex, n *LocaleNode) {
		if found == nil && n.Static.LocaleID == locale {
			found = n
		}
	})
	return found, found != nil
}
