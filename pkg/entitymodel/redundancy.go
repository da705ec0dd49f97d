package entitymodel

import "sort"

// RedundancyIndex is the cached classification of which stream indices
// participate in a redundant pair, and on which side, per spec.md §4.3.
// Non-redundant streams appear in none of the four sets.
type RedundancyIndex struct {
	PrimaryIn    map[StreamIndex]struct{}
	PrimaryOut   map[StreamIndex]struct{}
	SecondaryIn  map[StreamIndex]struct{}
	SecondaryOut map[StreamIndex]struct{}
}

func newRedundancyIndex() RedundancyIndex {
	return RedundancyIndex{
		PrimaryIn:    make(map[StreamIndex]struct{}),
		PrimaryOut:   make(map[StreamIndex]struct{}),
		SecondaryIn:  make(map[StreamIndex]struct{}),
		SecondaryOut: make(map[StreamIndex]struct{}),
	}
}

// RebuildRedundancy classifies every stream input/output in the tree
// according to its static model's RedundantStreams association and
// synthesizes one RedundantStreamNode per pair, replacing any
// previously cached classification. Called whenever the tree
// (re)becomes complete, per spec.md §4.3; the member bound to the
// lowest AVB_INTERFACE index is primary — AVB_INTERFACE 0 carries the
// primary stream and AVB_INTERFACE 1 the secondary, not the other way
// around, and stream descriptor index order plays no part in it.
func (c *ConfigurationTree) RebuildRedundancy() {
	c.Redundancy = newRedundancyIndex()
	c.RedundantStreamInputs = newOrderedMap[VirtualIndex, *RedundantStreamNode]()
	c.RedundantStreamOutputs = newOrderedMap[VirtualIndex, *RedundantStreamNode]()

	classify(c.StreamInputs, DescriptorStreamInput, c.Redundancy.PrimaryIn, c.Redundancy.SecondaryIn, c.RedundantStreamInputs)
	classify(c.StreamOutputs, DescriptorStreamOutput, c.Redundancy.PrimaryOut, c.Redundancy.SecondaryOut, c.RedundantStreamOutputs)
}

func classify(
	streams *orderedMap[StreamIndex, *Node[StreamStaticModel, StreamDynamicModel]],
	kind DescriptorType,
	primary, secondary map[StreamIndex]struct{},
	virtual *orderedMap[VirtualIndex, *RedundantStreamNode],
) {
	seen := make(map[StreamIndex]bool)
	var nextVirtual VirtualIndex

	for _, idx := range streams.Keys() {
		if seen[idx] {
			continue
		}
		node, _ := streams.Get(idx)
		if len(node.Static.RedundantStreams) == 0 {
			continue
		}

		members := append([]StreamIndex{idx}, node.Static.RedundantStreams...)
		for _, m := range members {
			seen[m] = true
		}
		sort.Slice(members, func(i, j int) bool {
			return byAvbInterfaceIndex(streams, members[i]) < byAvbInterfaceIndex(streams, members[j])
		})

		primaryIdx := members[0]
		primary[primaryIdx] = struct{}{}
		for _, m := range members[1:] {
			secondary[m] = struct{}{}
		}

		if len(members) >= 2 {
			vi := nextVirtual
			nextVirtual++
			virtual.Set(vi, &RedundantStreamNode{
				Header:         VirtualHeader{DescriptorType: kind, VirtualIndex: vi},
				PrimaryIndex:   primaryIdx,
				SecondaryIndex: members[1],
			})
		}
	}
}

func byAvbInterfaceIndex(streams *orderedMap[StreamIndex, *Node[StreamStaticModel, StreamDynamicModel]], idx StreamIndex) AvbInterfaceIndex {
	node, _ := streams.Get(idx)
	if node == nil {
		return 0
	}
	return node.Static.AvbInterfaceIndex
}

// IsRedundantPrimaryStreamInput reports whether streamIndex is the
// primary member of a redundant input pair.
func (c *ConfigurationTree) IsRedundantPrimaryStreamInput(idx StreamIndex) bool {
	_, ok := c.Redundancy.PrimaryIn[idx]
	return ok
}

// IsRedundantSecondaryStreamInput reports whether streamIndex is a
// secondary member of a redundant input pair.
func (c *ConfigurationTree) IsRedundantSecondaryStreamInput(idx StreamIndex) bool {
	_, ok := c.Redundancy.SecondaryIn[idx]
	return ok
}

// IsRedundantPrimaryStreamOutput reports whether streamIndex is the
// primary member of a redundant output pair.
func (c *ConfigurationTree) IsRedundantPrimaryStreamOutput(idx StreamIndex) bool {
	_, ok := c.Redundancy.PrimaryOut[idx]
	return ok
}

// IsRedundantSecondaryStreamOutput reports whether streamIndex is a
// secondary member of a redundant output pair.
func (c *ConfigurationTree) IsRedundantSecondaryStreamOutput(idx StreamIndex) bool {
	_, ok := c.Redundancy.SecondaryOut[idx]
	return ok
}
