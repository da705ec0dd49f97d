package cache

import (
	"encoding/json"
	"testing"

	"github.com/klokik/avdecc/pkg/entitymodel"
	"github.com/klokik/avdecc/pkg/ownership"
)

func sampleDocument() *Document {
	tr := entitymodel.NewEntityTree()
	tr.Static.EntityModelID = 0xDEADBEEF
	tr.Static.ConfigurationsCount = 1
	ct := tr.EnsureConfigurationTree(0)
	ct.Static.DescriptorCounts[entitymodel.DescriptorStreamInput] = 1
	ct.SetStreamInputDescriptor(0, entitymodel.StreamStaticModel{ObjectName: "Input 0"})

	owner := ownership.NewTracker(ownership.Config{})
	owner.SetAcquireState(ownership.AcquireStateAcquired)

	return &Document{
		Entity:             EntityRecord{EntityID: 0xDEADBEEF},
		EntityModelID:      0xDEADBEEF,
		CompatibilityFlags: []string{"IEEE1722.1"},
		State:              NewStateRecord(owner),
		AvbInterfaceLink:   map[string]string{"0": "Up"},
		Statistics:         StatisticsRecord{AecpRetryCounter: 3},
		EntityTree:         tr,
		IsVirtual:          false,
	}
}

func TestDumpLoad_RoundTrip(t *testing.T) {
	doc := sampleDocument()

	data, err := Dump(doc)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	got, err := Load(data)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !got.IsVirtual {
		t.Error("Load() result IsVirtual = false, want true (P4)")
	}
	if got.EntityModelID != doc.EntityModelID {
		t.Errorf("EntityModelID = %#x, want %#x", got.EntityModelID, doc.EntityModelID)
	}
	if got.Statistics.AecpRetryCounter != 3 {
		t.Errorf("Statistics.AecpRetryCounter = %d, want 3", got.Statistics.AecpRetryCounter)
	}
	if got.State.AcquireState != "Acquired" {
		t.Errorf("State.AcquireState = %q, want %q", got.State.AcquireState, "Acquired")
	}

	gotCt, err := got.EntityTree.ConfigurationTree(0)
	if err != nil {
		t.Fatalf("ConfigurationTree(0) error = %v", err)
	}
	node, err := gotCt.StreamInput(0)
	if err != nil {
		t.Fatalf("StreamInput(0) error = %v", err)
	}
	if node.Static.ObjectName != "Input 0" {
		t.Errorf("ObjectName = %q, want %q", node.Static.ObjectName, "Input 0")
	}
}

func TestLoad_RejectsUnsupportedDumpVersion(t *testing.T) {
	data, err := json.Marshal(map[string]any{"dump_version": 99})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if _, err := Load(data); err != ErrUnsupportedDumpVersion {
		t.Errorf("Load() error = %v, want ErrUnsupportedDumpVersion", err)
	}
}

func TestDump_StampsCurrentDumpVersion(t *testing.T) {
	doc := sampleDocument()
	doc.DumpVersion = 0

	data, err := Dump(doc)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	var probe struct {
		DumpVersion int `json:"dump_version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if probe.DumpVersion != currentDumpVersion {
		t.Errorf("dump_version = %d, want %d", probe.DumpVersion, currentDumpVersion)
	}
}
