package entitymodel

// ConfigurationDynamicModel holds a configuration's mutable state: the
// resolved name (GET_NAME), populated independently of the descriptor.
type ConfigurationDynamicModel struct {
	ObjectName AvdeccFixedString
}

// ConfigurationTree holds every descriptor kind for one configuration
// of an entity, per spec.md §3. Each map is keyed by DescriptorIndex
// within that (configuration, kind) space.
type ConfigurationTree struct {
	Static  ConfigurationStaticModel
	Dynamic ConfigurationDynamicModel

	AudioUnits        *orderedMap[AudioUnitIndex, *AudioUnitNode]
	StreamInputs      *orderedMap[StreamIndex, *StreamInputNode]
	StreamOutputs     *orderedMap[StreamIndex, *StreamOutputNode]
	AvbInterfaces     *orderedMap[AvbInterfaceIndex, *AvbInterfaceNode]
	ClockSources      *orderedMap[ClockSourceIndex, *ClockSourceNode]
	MemoryObjects     *orderedMap[MemoryObjectIndex, *MemoryObjectNode]
	Locales           *orderedMap[LocaleIndex, *LocaleNode]
	Strings           *orderedMap[StringsIndex, *StringsNode]
	StreamPortInputs  *orderedMap[StreamPortIndex, *StreamPortNode]
	StreamPortOutputs *orderedMap[StreamPortIndex, *StreamPortNode]
	AudioClusters     *orderedMap[ClusterIndex, *AudioClusterNode]
	AudioMaps         *orderedMap[MapIndex, *AudioMapNode]
	Controls          *orderedMap[ControlIndex, *ControlNode]
	ClockDomains      *orderedMap[ClockDomainIndex, *ClockDomainNode]

	// Redundancy holds the classification rebuilt by RebuildRedundancy
	// whenever the tree completes or changes. See redundancy.go.
	Redundancy             RedundancyIndex
	RedundantStreamInputs  *orderedMap[VirtualIndex, *RedundantStreamNode]
	RedundantStreamOutputs *orderedMap[VirtualIndex, *RedundantStreamNode]

	// SelectedLocaleBase/Count records the active locale's STRINGS
	// range, set by SetSelectedLocaleStringsIndexesRange (spec.md
	// §4.2.2).
	SelectedLocaleBase  StringsIndex
	SelectedLocaleCount StringsIndex
}

// NewConfigurationTree returns an empty configuration tree ready to
// accept descriptor setters.
func NewConfigurationTree() *ConfigurationTree {
	return &ConfigurationTree{
		Static: ConfigurationStaticModel{
			DescriptorCounts: make(map[DescriptorType]uint16),
		},
		AudioUnits:             newOrderedMap[AudioUnitIndex, *AudioUnitNode](),
		StreamInputs:           newOrderedMap[StreamIndex, *StreamInputNode](),
		StreamOutputs:          newOrderedMap[StreamIndex, *StreamOutputNode](),
		AvbInterfaces:          newOrderedMap[AvbInterfaceIndex, *AvbInterfaceNode](),
		ClockSources:           newOrderedMap[ClockSourceIndex, *ClockSourceNode](),
		MemoryObjects:          newOrderedMap[MemoryObjectIndex, *MemoryObjectNode](),
		Locales:                newOrderedMap[LocaleIndex, *LocaleNode](),
		Strings:                newOrderedMap[StringsIndex, *StringsNode](),
		StreamPortInputs:       newOrderedMap[StreamPortIndex, *StreamPortNode](),
		StreamPortOutputs:      newOrderedMap[StreamPortIndex, *StreamPortNode](),
		AudioClusters:          newOrderedMap[ClusterIndex, *AudioClusterNode](),
		AudioMaps:              newOrderedMap[MapIndex, *AudioMapNode](),
		Controls:               newOrderedMap[ControlIndex, *ControlNode](),
		ClockDomains:           newOrderedMap[ClockDomainIndex, *ClockDomainNode](),
		RedundantStreamInputs:  newOrderedMap[VirtualIndex, *RedundantStreamNode](),
		RedundantStreamOutputs: newOrderedMap[VirtualIndex, *RedundantStreamNode](),
	}
}

// IsComplete reports whether this tree holds exactly as many entries of
// each kind as Static.DescriptorCounts promises (spec.md P2), used by
// isEntityModelValidForCaching/setCachedEntityTree's completeness
// check.
func (c *ConfigurationTree) IsComplete() bool {
	want := c.Static.DescriptorCounts
	got := map[DescriptorType]int{
		DescriptorAudioUnit:        c.AudioUnits.Len(),
		DescriptorStreamInput:      c.StreamInputs.Len(),
		DescriptorStreamOutput:     c.StreamOutputs.Len(),
		DescriptorAvbInterface:     c.AvbInterfaces.Len(),
		DescriptorClockSource:      c.ClockSources.Len(),
		DescriptorMemoryObject:     c.MemoryObjects.Len(),
		DescriptorLocale:           c.Locales.Len(),
		DescriptorStrings:          c.Strings.Len(),
		DescriptorStreamPortInput:  c.StreamPortInputs.Len(),
		DescriptorStreamPortOutput: c.StreamPortOutputs.Len(),
		DescriptorAudioCluster:     c.AudioClusters.Len(),
		DescriptorAudioMap:         c.AudioMaps.Len(),
		DescriptorControl:          c.Controls.Len(),
		DescriptorClockDomain:      c.ClockDomains.Len(),
	}
	for kind, count := range want {
		if got[kind] != int(count) {
			return false
		}
	}
	return true
}
