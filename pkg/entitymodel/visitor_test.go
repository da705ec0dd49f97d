package entitymodel

import "testing"

type recordingVisitor struct {
	NoopVisitor
	order []string
}

func (v *recordingVisitor) VisitEntity(*EntityTree) { v.order = append(v.order, "entity") }
func (v *recordingVisitor) VisitConfiguration(ConfigurationIndex, *ConfigurationTree) {
	v.order = append(v.order, "configuration")
}
func (v *recordingVisitor) VisitAudioUnit(ConfigurationIndex, AudioUnitIndex, *AudioUnitNode) {
	v.order = append(v.order, "audiounit")
}
func (v *recordingVisitor) VisitStreamInput(ConfigurationIndex, StreamIndex, *StreamInputNode) {
	v.order = append(v.order, "streaminput")
}
func (v *recordingVisitor) VisitStreamOutput(ConfigurationIndex, StreamIndex, *StreamOutputNode) {
	v.order = append(v.order, "streamoutput")
}

func TestEntityTree_AcceptOrdersByKindThenIndex(t *testing.T) {
	tr := NewEntityTree()
	ct := tr.EnsureConfigurationTree(0)
	tr.Dynamic.CurrentConfiguration = 0

	ct.SetStreamInputDescriptor(1, StreamStaticModel{})
	ct.SetStreamInputDescriptor(0, StreamStaticModel{})
	ct.SetStreamOutputDescriptor(0, StreamStaticModel{})
	ct.SetAudioUnitDescriptor(0, AudioUnitStaticModel{})

	v := &recordingVisitor{}
	tr.Accept(v, false)

	want := []string{"entity", "configuration", "audiounit", "streaminput", "streaminput", "streamoutput"}
	if len(v.order) != len(want) {
		t.Fatalf("visit order = %v, want %v", v.order, want)
	}
	for i := range want {
		if v.order[i] != want[i] {
			t.Errorf("visit[%d] = %q, want %q", i, v.order[i], want[i])
		}
	}
}

func TestConfigurationTree_StreamInputsVisitedInAscendingIndex(t *testing.T) {
	ct := NewConfigurationTree()
	ct.SetStreamInputDescriptor(3, StreamStaticModel{})
	ct.SetStreamInputDescriptor(1, StreamStaticModel{})
	ct.SetStreamInputDescriptor(2, StreamStaticModel{})

	var seen []StreamIndex
	ct.StreamInputs.ForEach(func(idx StreamIndex, _ *StreamInputNode) {
		seen = append(seen, idx)
	})
	want := []StreamIndex{1, 2, 3}
	for i, idx := range want {
		if seen[i] != idx {
			t.Errorf("seen[%d] = %d, want %d", i, seen[i], idx)
		}
	}
}
