package entitymodel

// Descriptor setters. Static fields always overwrite; the dynamic
// model is carried over unchanged on an update so that values a later
// targeted query already refined (names, current format, counters,
// connection state) are never clobbered by a repeated descriptor walk
// (spec.md §4.2.1). On first insert the dynamic model starts zero-valued;
// callers populate descriptor-carried initial dynamic fields (e.g. a
// stream's advertised current_format) via the explicit setters below in
// the same step, matching how the orchestrator applies a
// STREAM_INPUT/STREAM_OUTPUT descriptor's current_format field.

func (c *ConfigurationTree) SetAudioUnitDescriptor(idx AudioUnitIndex, static AudioUnitStaticModel) *AudioUnitNode {
	var dyn AudioUnitDynamicModel
	if existing, ok := c.AudioUnits.Get(idx); ok {
		dyn = existing.Dynamic
	}
	node := &AudioUnitNode{Header: NodeHeader{DescriptorAudioUnit, idx}, Static: static, Dynamic: dyn}
	c.AudioUnits.Set(idx, node)
	return node
}

func (c *ConfigurationTree) SetStreamInputDescriptor(idx StreamIndex, static StreamStaticModel) *StreamInputNode {
	var dyn StreamDynamicModel
	if existing, ok := c.StreamInputs.Get(idx); ok {
		dyn = existing.Dynamic
	}
	node := &StreamInputNode{Header: NodeHeader{DescriptorStreamInput, idx}, Static: static, Dynamic: dyn}
	c.StreamInputs.Set(idx, node)
	return node
}

func (c *ConfigurationTree) SetStreamOutputDescriptor(idx StreamIndex, static StreamStaticModel) *StreamOutputNode {
	var dyn StreamDynamicModel
	if existing, ok := c.StreamOutputs.Get(idx); ok {
		dyn = existing.Dynamic
	}
	node := &StreamOutputNode{Header: NodeHeader{DescriptorStreamOutput, idx}, Static: static, Dynamic: dyn}
	c.StreamOutputs.Set(idx, node)
	return node
}

func (c *ConfigurationTree) SetAvbInterfaceDescriptor(idx AvbInterfaceIndex, static AvbInterfaceStaticModel) *AvbInterfaceNode {
	var dyn AvbInterfaceDynamicModel
	if existing, ok := c.AvbInterfaces.Get(idx); ok {
		dyn = existing.Dynamic
	}
	node := &AvbInterfaceNode{Header: NodeHeader{DescriptorAvbInterface, idx}, Static: static, Dynamic: dyn}
	c.AvbInterfaces.Set(idx, node)
	return node
}

func (c *ConfigurationTree) SetClockSourceDescriptor(idx ClockSourceIndex, static ClockSourceStaticModel) *ClockSourceNode {
	var dyn ClockSourceDynamicModel
	if existing, ok := c.ClockSources.Get(idx); ok {
		dyn = existing.Dynamic
	}
	node := &ClockSourceNode{Header: NodeHeader{DescriptorClockSource, idx}, Static: static, Dynamic: dyn}
	c.ClockSources.Set(idx, node)
	return node
}

func (c *ConfigurationTree) SetMemoryObjectDescriptor(idx MemoryObjectIndex, static MemoryObjectStaticModel) *MemoryObjectNode {
	var dyn MemoryObjectDynamicModel
	if existing, ok := c.MemoryObjects.Get(idx); ok {
		dyn = existing.Dynamic
	}
	node := &MemoryObjectNode{Header: NodeHeader{DescriptorMemoryObject, idx}, Static: static, Dynamic: dyn}
	c.MemoryObjects.Set(idx, node)
	return node
}

func (c *ConfigurationTree) SetLocaleDescriptor(idx LocaleIndex, static LocaleStaticModel) *LocaleNode {
	node := &LocaleNode{Header: NodeHeader{DescriptorLocale, idx}, Static: static}
	c.Locales.Set(idx, node)
	return node
}

func (c *ConfigurationTree) SetStringsDescriptor(idx StringsIndex, static StringsStaticModel) *StringsNode {
	node := &StringsNode{Header: NodeHeader{DescriptorStrings, idx}, Static: static}
	c.Strings.Set(idx, node)
	return node
}

func (c *ConfigurationTree) SetStreamPortInputDescriptor(idx StreamPortIndex, static StreamPortStaticModel) *StreamPortNode {
	var dyn StreamPortDynamicModel
	if existing, ok := c.StreamPortInputs.Get(idx); ok {
		dyn = existing.Dynamic
	}
	node := &StreamPortNode{Header: NodeHeader{DescriptorStreamPortInput, idx}, Static: static, Dynamic: dyn}
	c.StreamPortInputs.Set(idx, node)
	return node
}

func (c *ConfigurationTree) SetStreamPortOutputDescriptor(idx StreamPortIndex, static StreamPortStaticModel) *StreamPortNode {
	var dyn StreamPortDynamicModel
	if existing, ok := c.StreamPortOutputs.Get(idx); ok {
		dyn = existing.Dynamic
	}
	node := &StreamPortNode{Header: NodeHeader{DescriptorStreamPortOutput, idx}, Static: static, Dynamic: dyn}
	c.StreamPortOutputs.Set(idx, node)
	return node
}

func (c *ConfigurationTree) SetAudioClusterDescriptor(idx ClusterIndex, static AudioClusterStaticModel) *AudioClusterNode {
	var dyn AudioClusterDynamicModel
	if existing, ok := c.AudioClusters.Get(idx); ok {
		dyn = existing.Dynamic
	}
	node := &AudioClusterNode{Header: NodeHeader{DescriptorAudioCluster, idx}, Static: static, Dynamic: dyn}
	c.AudioClusters.Set(idx, node)
	return node
}

func (c *ConfigurationTree) SetAudioMapDescriptor(idx MapIndex, static AudioMapStaticModel) *AudioMapNode {
	node := &AudioMapNode{Header: NodeHeader{DescriptorAudioMap, idx}, Static: static}
	c.AudioMaps.Set(idx, node)
	return node
}

func (c *ConfigurationTree) SetControlDescriptor(idx ControlIndex, static ControlStaticModel) *ControlNode {
	var dyn ControlDynamicModel
	if existing, ok := c.Controls.Get(idx); ok {
		dyn = existing.Dynamic
	}
	node := &ControlNode{Header: NodeHeader{DescriptorControl, idx}, Static: static, Dynamic: dyn}
	c.Controls.Set(idx, node)
	return node
}

func (c *ConfigurationTree) SetClockDomainDescriptor(idx ClockDomainIndex, static ClockDomainStaticModel) *ClockDomainNode {
	var dyn ClockDomainDynamicModel
	if existing, ok := c.ClockDomains.Get(idx); ok {
		dyn = existing.Dynamic
	}
	node := &ClockDomainNode{Header: NodeHeader{DescriptorClockDomain, idx}, Static: static, Dynamic: dyn}
	c.ClockDomains.Set(idx, node)
	return node
}

// Targeted-query dynamic setters below. These populate fields the
// descriptor setters above deliberately leave untouched on update.

func (c *ConfigurationTree) SetAudioUnitName(idx AudioUnitIndex, name AvdeccFixedString) {
	if n, ok := c.AudioUnits.Get(idx); ok {
		n.Dynamic.ObjectName = name
	}
}

func (c *ConfigurationTree) SetStreamInputName(idx StreamIndex, name AvdeccFixedString) {
	if n, ok := c.StreamInputs.Get(idx); ok {
		n.Dynamic.ObjectName = name
	}
}

func (c *ConfigurationTree) SetStreamOutputName(idx StreamIndex, name AvdeccFixedString) {
	if n, ok := c.StreamOutputs.Get(idx); ok {
		n.Dynamic.ObjectName = name
	}
}

func (c *ConfigurationTree) SetStreamInputFormat(idx StreamIndex, format StreamFormat) {
	if n, ok := c.StreamInputs.Get(idx); ok {
		n.Dynamic.CurrentFormat = format
	}
}

func (c *ConfigurationTree) SetStreamOutputFormat(idx StreamIndex, format StreamFormat) {
	if n, ok := c.StreamOutputs.Get(idx); ok {
		n.Dynamic.CurrentFormat = format
	}
}

func (c *ConfigurationTree) SetStreamInputRunning(idx StreamIndex, running bool) {
	if n, ok := c.StreamInputs.Get(idx); ok {
		n.Dynamic.IsStreamRunning = running
	}
}

func (c *ConfigurationTree) SetStreamOutputRunning(idx StreamIndex, running bool) {
	if n, ok := c.StreamOutputs.Get(idx); ok {
		n.Dynamic.IsStreamRunning = running
	}
}

func (c *ConfigurationTree) SetAvbInterfaceName(idx AvbInterfaceIndex, name AvdeccFixedString) {
	if n, ok := c.AvbInterfaces.Get(idx); ok {
		n.Dynamic.ObjectName = name
	}
}

// SetAvbInterfaceInfo replaces the interface's dynamic AVB info and
// returns the previous value, matching setAvbInterfaceInfo's
// return-previous contract.
func (c *ConfigurationTree) SetAvbInterfaceInfo(idx AvbInterfaceIndex, info AvbInterfaceInfo) AvbInterfaceInfo {
	n, ok := c.AvbInterfaces.Get(idx)
	if !ok {
		return AvbInterfaceInfo{}
	}
	previous := n.Dynamic.Info
	n.Dynamic.Info = info
	return previous
}

// SetAsPath replaces the interface's gPTP AS-Path and returns the
// previous value, matching setAsPath's return-previous contract.
func (c *ConfigurationTree) SetAsPath(idx AvbInterfaceIndex, path AsPath) AsPath {
	n, ok := c.AvbInterfaces.Get(idx)
	if !ok {
		return AsPath{}
	}
	previous := n.Dynamic.AsPath
	n.Dynamic.AsPath = path
	return previous
}

// SetAvbInterfaceLinkStatus replaces the interface's link status and
// returns the previous value, matching
// ControlledEntityImpl::setAvbInterfaceLinkStatus's return-previous
// contract (spec.md §3, SPEC_FULL.md §4.9) — the orchestrator uses the
// previous value to detect an Up→Down transition worth notifying.
func (c *ConfigurationTree) SetAvbInterfaceLinkStatus(idx AvbInterfaceIndex, status InterfaceLinkStatus) InterfaceLinkStatus {
	n, ok := c.AvbInterfaces.Get(idx)
	if !ok {
		return LinkStatusUnknown
	}
	previous := n.Dynamic.LinkStatus
	n.Dynamic.LinkStatus = status
	return previous
}

func (c *ConfigurationTree) SetClockSourceName(idx ClockSourceIndex, name AvdeccFixedString) {
	if n, ok := c.ClockSources.Get(idx); ok {
		n.Dynamic.ObjectName = name
	}
}

func (c *ConfigurationTree) SetMemoryObjectName(idx MemoryObjectIndex, name AvdeccFixedString) {
	if n, ok := c.MemoryObjects.Get(idx); ok {
		n.Dynamic.ObjectName = name
	}
}

func (c *ConfigurationTree) SetMemoryObjectLength(idx MemoryObjectIndex, length uint64) {
	if n, ok := c.MemoryObjects.Get(idx); ok {
		n.Dynamic.Length = length
	}
}

func (c *ConfigurationTree) SetAudioClusterName(idx ClusterIndex, name AvdeccFixedString) {
	if n, ok := c.AudioClusters.Get(idx); ok {
		n.Dynamic.ObjectName = name
	}
}

func (c *ConfigurationTree) SetControlName(idx ControlIndex, name AvdeccFixedString) {
	if n, ok := c.Controls.Get(idx); ok {
		n.Dynamic.ObjectName = name
	}
}

func (c *ConfigurationTree) SetControlValues(idx ControlIndex, values ControlValues) {
	if n, ok := c.Controls.Get(idx); ok {
		n.Dynamic.Values = values
	}
}

func (c *ConfigurationTree) SetClockDomainName(idx ClockDomainIndex, name AvdeccFixedString) {
	if n, ok := c.ClockDomains.Get(idx); ok {
		n.Dynamic.ObjectName = name
	}
}

func (c *ConfigurationTree) SetClockSource(idx ClockDomainIndex, sourceIndex ClockSourceIndex) {
	if n, ok := c.ClockDomains.Get(idx); ok {
		n.Dynamic.ClockSourceIndex = sourceIndex
	}
}

// SetSelectedLocaleStringsIndexesRange records the active locale's
// STRINGS range, per spec.md §4.2.2.
func (c *ConfigurationTree) SetSelectedLocaleStringsIndexesRange(base, count StringsIndex) {
	c.SelectedLocaleBase = base
	c.SelectedLocaleCount = count
}

// Stream connection / audio mapping setters.

// SetStreamInputConnectionInformation replaces a listener stream's
// talker binding and returns the previous value, matching
// setStreamInputConnectionInformation's return-previous contract.
func (c *ConfigurationTree) SetStreamInputConnectionInformation(idx StreamIndex, info StreamInputConnectionInfo) StreamInputConnectionInfo {
	n, ok := c.StreamInputs.Get(idx)
	if !ok {
		return StreamInputConnectionInfo{}
	}
	previous := n.Dynamic.ConnectionInfo
	n.Dynamic.ConnectionInfo = info
	return previous
}

// ClearStreamOutputConnections empties a talker stream's listener set.
func (c *ConfigurationTree) ClearStreamOutputConnections(idx StreamIndex) {
	if n, ok := c.StreamOutputs.Get(idx); ok {
		n.Dynamic.Connections.Clear()
	}
}

// AddStreamOutputConnection adds listener to a talker stream's
// connection set. Returns true if the set actually changed.
func (c *ConfigurationTree) AddStreamOutputConnection(idx StreamIndex, listener StreamIdentification) bool {
	n, ok := c.StreamOutputs.Get(idx)
	if !ok {
		return false
	}
	return n.Dynamic.Connections.Add(listener)
}

// RemoveStreamOutputConnection removes listener from a talker stream's
// connection set. Returns true if the set actually changed.
func (c *ConfigurationTree) RemoveStreamOutputConnection(idx StreamIndex, listener StreamIdentification) bool {
	n, ok := c.StreamOutputs.Get(idx)
	if !ok {
		return false
	}
	return n.Dynamic.Connections.Remove(listener)
}

func (c *ConfigurationTree) ClearStreamPortInputAudioMappings(idx StreamPortIndex) {
	if n, ok := c.StreamPortInputs.Get(idx); ok {
		n.Dynamic.DynamicMappings = nil
	}
}

func (c *ConfigurationTree) AddStreamPortInputAudioMappings(idx StreamPortIndex, mappings AudioMappings) {
	if n, ok := c.StreamPortInputs.Get(idx); ok {
		n.Dynamic.DynamicMappings = append(n.Dynamic.DynamicMappings, mappings...)
	}
}

func (c *ConfigurationTree) RemoveStreamPortInputAudioMappings(idx StreamPortIndex, mappings AudioMappings) {
	removeMappings(c.StreamPortInputs, idx, mappings)
}

func (c *ConfigurationTree) ClearStreamPortOutputAudioMappings(idx StreamPortIndex) {
	if n, ok := c.StreamPortOutputs.Get(idx); ok {
		n.Dynamic.DynamicMappings = nil
	}
}

func (c *ConfigurationTree) AddStreamPortOutputAudioMappings(idx StreamPortIndex, mappings AudioMappings) {
	if n, ok := c.StreamPortOutputs.Get(idx); ok {
		n.Dynamic.DynamicMappings = append(n.Dynamic.DynamicMappings, mappings...)
	}
}

func (c *ConfigurationTree) RemoveStreamPortOutputAudioMappings(idx StreamPortIndex, mappings AudioMappings) {
	removeMappings(c.StreamPortOutputs, idx, mappings)
}

func removeMappings(om *orderedMap[StreamPortIndex, *StreamPortNode], idx StreamPortIndex, toRemove AudioMappings) {
	n, ok := om.Get(idx)
	if !ok {
		return
	}
	kept := n.Dynamic.DynamicMappings[:0]
	for _, m := range n.Dynamic.DynamicMappings {
		remove := false
		for _, r := range toRemove {
			if m == r {
				remove = true
				break
			}
		}
		if !remove {
			kept = append(kept, m)
		}
	}
	n.Dynamic.DynamicMappings = kept
}

// GetStreamPortInputNonRedundantAudioMappings returns the input port's
// mappings with any entry referencing a redundant-secondary stream
// removed, per spec.md §4.3.
func (c *ConfigurationTree) GetStreamPortInputNonRedundantAudioMappings(idx StreamPortIndex) AudioMappings {
	n, ok := c.StreamPortInputs.Get(idx)
	if !ok {
		return nil
	}
	result := make(AudioMappings, 0, len(n.Dynamic.DynamicMappings))
	for _, m := range n.Dynamic.DynamicMappings {
		if _, secondary := c.Redundancy.SecondaryIn[m.StreamIndex]; secondary {
			continue
		}
		result = append(result, m)
	}
	return result
}

// GetStreamPortOutputNonRedundantAudioMappings mirrors
// GetStreamPortInputNonRedundantAudioMappings for the output direction.
func (c *ConfigurationTree) GetStreamPortOutputNonRedundantAudioMappings(idx StreamPortIndex) AudioMappings {
	n, ok := c.StreamPortOutputs.Get(idx)
	if !ok {
		return nil
	}
	result := make(AudioMappings, 0, len(n.Dynamic.DynamicMappings))
	for _, m := range n.Dynamic.DynamicMappings {
		if _, secondary := c.Redundancy.SecondaryOut[m.StreamIndex]; secondary {
			continue
		}
		result = append(result, m)
	}
	return result
}
