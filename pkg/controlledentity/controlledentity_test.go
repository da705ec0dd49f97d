package controlledentity

import (
	"testing"
	"time"

	"github.com/klokik/avdecc/pkg/cache"
	"github.com/klokik/avdecc/pkg/entitymodel"
	"github.com/klokik/avdecc/pkg/enumeration"
)

func newTestEntity(t *testing.T) *ControlledEntity {
	t.Helper()
	static := entitymodel.EntityStaticModel{
		EntityModelID:       0x001B92FFFE000001,
		EntityCapabilities:  entitymodel.EntityCapabilityAemSupported,
		ConfigurationsCount: 1,
	}
	return New(0x0011223344556677, static, Config{})
}

func withOneStreamInput(e *ControlledEntity) {
	ct := e.tree.EnsureConfigurationTree(0)
	ct.Static.DescriptorCounts = map[entitymodel.DescriptorType]uint16{
		entitymodel.DescriptorStreamInput: 1,
	}
	ct.SetStreamInputDescriptor(0, entitymodel.StreamStaticModel{ObjectName: "stream-in-0"})
}

func TestGetEntityTreeRequiresAemSupport(t *testing.T) {
	e := newTestEntity(t)
	e.static.EntityCapabilities = 0
	if _, err := e.GetEntityTree(); err != entitymodel.ErrNotSupported {
		t.Fatalf("GetEntityTree: want ErrNotSupported, got %v", err)
	}
}

func TestIdentifyControlIndexDefaultsToNotIdentifying(t *testing.T) {
	e := newTestEntity(t)
	if e.IsIdentifying() {
		t.Fatalf("fresh entity should not report identifying")
	}

	ct := e.tree.EnsureConfigurationTree(0)
	ct.SetControlDescriptor(3, entitymodel.ControlStaticModel{ObjectName: "identify"})
	e.SetIdentifyControlIndex(3)
	if e.IsIdentifying() {
		t.Fatalf("zero control value should not be identifying")
	}

	ct.SetControlValues(3, entitymodel.ControlValues{Values: []byte{1}})
	if !e.IsIdentifying() {
		t.Fatalf("nonzero control value should report identifying")
	}
}

func TestStreamRunningState(t *testing.T) {
	e := newTestEntity(t)
	withOneStreamInput(e)
	ct := e.tree.EnsureConfigurationTree(0)

	running, err := e.IsStreamInputRunning(0, 0)
	if err != nil {
		t.Fatalf("IsStreamInputRunning: %v", err)
	}
	if running {
		t.Fatalf("stream should start not running")
	}

	ct.SetStreamInputRunning(0, true)
	running, err = e.IsStreamInputRunning(0, 0)
	if err != nil {
		t.Fatalf("IsStreamInputRunning: %v", err)
	}
	if !running {
		t.Fatalf("stream should report running after SetStreamInputRunning(true)")
	}
}

func TestSetAvbInterfaceLinkStatusReturnsPrevious(t *testing.T) {
	e := newTestEntity(t)
	ct := e.tree.EnsureConfigurationTree(0)
	ct.SetAvbInterfaceDescriptor(0, entitymodel.AvbInterfaceStaticModel{ObjectName: "eth0"})

	prev, err := e.SetAvbInterfaceLinkStatus(0, 0, entitymodel.LinkStatusUp)
	if err != nil {
		t.Fatalf("SetAvbInterfaceLinkStatus: %v", err)
	}
	if prev != entitymodel.LinkStatusUnknown {
		t.Fatalf("first transition should report previous Unknown, got %v", prev)
	}

	prev, err = e.SetAvbInterfaceLinkStatus(0, 0, entitymodel.LinkStatusDown)
	if err != nil {
		t.Fatalf("SetAvbInterfaceLinkStatus: %v", err)
	}
	if prev != entitymodel.LinkStatusUp {
		t.Fatalf("second transition should report previous Up, got %v", prev)
	}
}

func TestOnEntityFullyLoadedAdvertises(t *testing.T) {
	e := newTestEntity(t)
	withOneStreamInput(e)

	if e.Advertised() || e.WasAdvertised() {
		t.Fatalf("fresh entity must not be advertised")
	}

	e.OnEntityFullyLoaded()

	if !e.Advertised() {
		t.Fatalf("Advertised() should be true after OnEntityFullyLoaded")
	}
	if !e.WasAdvertised() {
		t.Fatalf("WasAdvertised() should latch true after OnEntityFullyLoaded")
	}

	e.SetAdvertised(false)
	if e.Advertised() {
		t.Fatalf("SetAdvertised(false) should retract advertisement")
	}
	if !e.WasAdvertised() {
		t.Fatalf("WasAdvertised() must remain true once latched")
	}
}

func TestResponseSinkWiring(t *testing.T) {
	e := newTestEntity(t)

	e.OnAecpResponseReceived(e.eid, 10*time.Millisecond)
	if got := e.Statistics().AecpResponseAverageTime(); got != 10*time.Millisecond {
		t.Fatalf("average response time = %v, want 10ms", got)
	}

	e.OnAecpTimeout(e.eid)
	if e.Statistics().AecpTimeoutCounter() != 1 {
		t.Fatalf("AecpTimeoutCounter should be 1")
	}

	e.OnAecpUnexpectedResponse(e.eid)
	if e.Statistics().AecpUnexpectedResponseCounter() != 1 {
		t.Fatalf("AecpUnexpectedResponseCounter should be 1")
	}

	e.OnUnsolicitedNotification(e.eid)
	if e.Statistics().AemAecpUnsolicitedCounter() != 1 {
		t.Fatalf("AemAecpUnsolicitedCounter should be 1")
	}
}

func TestCachedEntityTreeAcceptanceSkipsStaticModelStep(t *testing.T) {
	e := newTestEntity(t)
	if !e.Enumeration().Steps().Has(enumeration.StepGetStaticModel) {
		t.Fatalf("fresh tracker should include StepGetStaticModel")
	}

	cached := entitymodel.NewEntityTree()
	cached.Static.EntityModelID = e.static.EntityModelID
	cached.Static.ConfigurationsCount = 1
	ct := cached.EnsureConfigurationTree(0)
	ct.Static.DescriptorCounts = map[entitymodel.DescriptorType]uint16{}

	if !e.SetCachedEntityTree(cached, false) {
		t.Fatalf("expected cached tree with matching EntityModelID to be accepted")
	}
	if e.Enumeration().Steps().Has(enumeration.StepGetStaticModel) {
		t.Fatalf("StepGetStaticModel should be cleared once a cached tree is accepted")
	}
	if !e.Enumeration().Steps().Has(enumeration.StepGetDescriptorDynamicInfo) {
		t.Fatalf("StepGetDescriptorDynamicInfo should be added once a cached tree is accepted")
	}
}

func TestCachedEntityTreeRejectsMismatchedModelID(t *testing.T) {
	e := newTestEntity(t)
	cached := entitymodel.NewEntityTree()
	cached.Static.EntityModelID = e.static.EntityModelID + 1
	if e.SetCachedEntityTree(cached, false) {
		t.Fatalf("cached tree with mismatched EntityModelID must be rejected")
	}
	if !e.Enumeration().Steps().Has(enumeration.StepGetStaticModel) {
		t.Fatalf("rejected cache must leave StepGetStaticModel intact")
	}
}

func TestToDocumentFromCacheRoundTrip(t *testing.T) {
	e := newTestEntity(t)
	withOneStreamInput(e)
	ct := e.tree.EnsureConfigurationTree(0)
	ct.SetAvbInterfaceDescriptor(0, entitymodel.AvbInterfaceStaticModel{ObjectName: "eth0"})
	if _, err := e.SetAvbInterfaceLinkStatus(0, 0, entitymodel.LinkStatusUp); err != nil {
		t.Fatalf("SetAvbInterfaceLinkStatus: %v", err)
	}
	e.SetCompatibilityFlags(CompatibilityIEEE1722_1.Set(CompatibilityMilan))
	e.SetMilanInfo(entitymodel.MilanInfo{ProtocolVersion: 1, FeaturesFlags: 2, CertificationVersion: 3})
	e.OnAecpResponseReceived(e.eid, 5*time.Millisecond)
	e.OnAecpTimeout(e.eid)

	doc := e.ToDocument()
	data, err := cache.Dump(doc)
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}

	loaded, err := cache.Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.IsVirtual {
		t.Fatalf("Load must mark the document virtual")
	}

	reloaded := FromCache(loaded, Config{})
	if !reloaded.IsVirtual() {
		t.Fatalf("FromCache must produce a virtual entity")
	}
	if reloaded.EID() != e.EID() {
		t.Fatalf("EID mismatch after round trip: got %#x, want %#x", reloaded.EID(), e.EID())
	}
	if reloaded.CompatibilityFlags() != e.CompatibilityFlags() {
		t.Fatalf("compatibility flags mismatch: got %v, want %v", reloaded.CompatibilityFlags(), e.CompatibilityFlags())
	}
	if reloaded.Statistics().AecpTimeoutCounter() != 1 {
		t.Fatalf("AecpTimeoutCounter should round-trip as 1")
	}
	reloadedCt, err := reloaded.GetConfigurationTree(0)
	if err != nil {
		t.Fatalf("GetConfigurationTree: %v", err)
	}
	node, err := reloadedCt.AvbInterface(0)
	if err != nil {
		t.Fatalf("AvbInterface: %v", err)
	}
	if node.Dynamic.LinkStatus != entitymodel.LinkStatusUp {
		t.Fatalf("AVB interface link status should round-trip as Up, got %v", node.Dynamic.LinkStatus)
	}

	milan, ok := reloaded.MilanInfo()
	if !ok {
		t.Fatalf("MilanInfo should round-trip as present")
	}
	if milan != (entitymodel.MilanInfo{ProtocolVersion: 1, FeaturesFlags: 2, CertificationVersion: 3}) {
		t.Fatalf("MilanInfo mismatch after round trip: got %+v", milan)
	}
}

func TestMilanInfoAbsentByDefault(t *testing.T) {
	e := newTestEntity(t)
	if _, ok := e.MilanInfo(); ok {
		t.Fatalf("fresh entity must not report a MilanInfo")
	}

	doc := e.ToDocument()
	if doc.MilanInfo != nil {
		t.Fatalf("ToDocument must omit MilanInfo when none was received")
	}
}

func TestSetSharesOneLockAcrossEntities(t *testing.T) {
	set := NewSet()

	a := New(1, entitymodel.EntityStaticModel{}, Config{Shared: set.Shared()})
	b := New(2, entitymodel.EntityStaticModel{}, Config{Shared: set.Shared()})

	if err := set.Add(a); err != nil {
		t.Fatalf("Add(a): %v", err)
	}
	if err := set.Add(b); err != nil {
		t.Fatalf("Add(b): %v", err)
	}
	if err := set.Add(a); err == nil {
		t.Fatalf("Add(a) a second time should fail")
	}

	if set.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", set.Count())
	}

	got, err := set.Get(2)
	if err != nil {
		t.Fatalf("Get(2): %v", err)
	}
	if got.EID() != 2 {
		t.Fatalf("Get(2).EID() = %d, want 2", got.EID())
	}

	seen := 0
	set.ForEach(func(*ControlledEntity) { seen++ })
	if seen != 2 {
		t.Fatalf("ForEach visited %d entities, want 2", seen)
	}

	if a.Shared() != b.Shared() {
		t.Fatalf("entities added to the same Set must share one SharedLock")
	}

	set.Remove(1)
	if set.Count() != 1 {
		t.Fatalf("Count() after Remove(1) = %d, want 1", set.Count())
	}
	if _, err := set.Get(1); err == nil {
		t.Fatalf("Get(1) should fail after Remove(1)")
	}
}

func TestIsEntityModelValidForCachingRejectsVirtual(t *testing.T) {
	e := newTestEntity(t)
	withOneStreamInput(e)
	ct := e.tree.EnsureConfigurationTree(0)
	ct.Static.DescriptorCounts = map[entitymodel.DescriptorType]uint16{
		entitymodel.DescriptorStreamInput: 1,
	}

	if !e.IsEntityModelValidForCaching() {
		t.Fatalf("complete, non-virtual tree should be valid for caching")
	}

	e.SetVirtual(true)
	if e.IsEntityModelValidForCaching() {
		t.Fatalf("virtual entity must never be reported valid for caching")
	}
}
