package entitymodel

import "testing"

func TestRedundancy_ClassifiesPrimaryAndSecondary(t *testing.T) {
	ct := NewConfigurationTree()
	ct.SetStreamInputDescriptor(0, StreamStaticModel{RedundantStreams: []StreamIndex{1}, AvbInterfaceIndex: 0})
	ct.SetStreamInputDescriptor(1, StreamStaticModel{RedundantStreams: []StreamIndex{0}, AvbInterfaceIndex: 1})
	ct.SetStreamInputDescriptor(2, StreamStaticModel{}) // non-redundant

	ct.RebuildRedundancy()

	if !ct.IsRedundantPrimaryStreamInput(0) {
		t.Error("IsRedundantPrimaryStreamInput(0) = false, want true")
	}
	if !ct.IsRedundantSecondaryStreamInput(1) {
		t.Error("IsRedundantSecondaryStreamInput(1) = false, want true")
	}
	if ct.IsRedundantPrimaryStreamInput(2) {
		t.Error("IsRedundantPrimaryStreamInput(2) = true for a non-redundant stream")
	}
	if ct.IsRedundantSecondaryStreamInput(2) {
		t.Error("IsRedundantSecondaryStreamInput(2) = true for a non-redundant stream")
	}

	node, err := ct.RedundantStreamInput(0)
	if err != nil {
		t.Fatalf("RedundantStreamInput(0) error = %v", err)
	}
	if node.PrimaryIndex != 0 || node.SecondaryIndex != 1 {
		t.Errorf("RedundantStreamNode = %+v, want Primary=0 Secondary=1", node)
	}
}

func TestRedundancy_PrimaryFollowsAvbInterfaceIndexNotDescriptorIndex(t *testing.T) {
	ct := NewConfigurationTree()
	// Stream 0 sits on AVB_INTERFACE 1 and stream 1 on AVB_INTERFACE 0:
	// the lower descriptor index is the secondary member here.
	ct.SetStreamInputDescriptor(0, StreamStaticModel{RedundantStreams: []StreamIndex{1}, AvbInterfaceIndex: 1})
	ct.SetStreamInputDescriptor(1, StreamStaticModel{RedundantStreams: []StreamIndex{0}, AvbInterfaceIndex: 0})

	ct.RebuildRedundancy()

	if !ct.IsRedundantPrimaryStreamInput(1) {
		t.Error("IsRedundantPrimaryStreamInput(1) = false, want true: stream 1 is on AVB_INTERFACE 0")
	}
	if !ct.IsRedundantSecondaryStreamInput(0) {
		t.Error("IsRedundantSecondaryStreamInput(0) = false, want true: stream 0 is on AVB_INTERFACE 1")
	}

	node, err := ct.RedundantStreamInput(0)
	if err != nil {
		t.Fatalf("RedundantStreamInput(0) error = %v", err)
	}
	if node.PrimaryIndex != 1 || node.SecondaryIndex != 0 {
		t.Errorf("RedundantStreamNode = %+v, want Primary=1 Secondary=0", node)
	}
}

func TestRedundancy_NonRedundantAudioMappingsExcludeSecondary(t *testing.T) {
	ct := NewConfigurationTree()
	ct.SetStreamInputDescriptor(0, StreamStaticModel{RedundantStreams: []StreamIndex{1}, AvbInterfaceIndex: 0})
	ct.SetStreamInputDescriptor(1, StreamStaticModel{RedundantStreams: []StreamIndex{0}, AvbInterfaceIndex: 1})
	ct.RebuildRedundancy()

	ct.SetStreamPortInputDescriptor(0, StreamPortStaticModel{})
	ct.AddStreamPortInputAudioMappings(0, AudioMappings{
		{StreamIndex: 0, StreamChannel: 0},
		{StreamIndex: 1, StreamChannel: 0},
	})

	got := ct.GetStreamPortInputNonRedundantAudioMappings(0)
	if len(got) != 1 || got[0].StreamIndex != 0 {
		t.Errorf("GetStreamPortInputNonRedundantAudioMappings() = %+v, want only stream 0's mapping", got)
	}
}
