package enumeration

import (
	"testing"

	"github.com/klokik/avdecc/pkg/entitymodel"
)

func TestTracker_FullyLoadedWhenStepsEmpty(t *testing.T) {
	tr := NewTracker(DefaultRetryPolicy, false)
	if tr.IsFullyLoaded() {
		t.Fatal("IsFullyLoaded() = true for a freshly created tracker")
	}

	for _, step := range []StepSet{StepGetMilanInfo, StepRegisterUnsol, StepGetStaticModel, StepGetDynamicInfo} {
		tr.ClearEnumerationStep(step)
	}

	if !tr.IsFullyLoaded() {
		t.Fatal("IsFullyLoaded() = false after clearing every step")
	}
}

func TestNewTracker_CachedStaticModelSwapsStep(t *testing.T) {
	live := NewTracker(DefaultRetryPolicy, false)
	if !live.Steps().Has(StepGetStaticModel) {
		t.Error("fresh tracker without cached model should have StepGetStaticModel")
	}
	if live.Steps().Has(StepGetDescriptorDynamicInfo) {
		t.Error("fresh tracker without cached model should not have StepGetDescriptorDynamicInfo")
	}

	cached := NewTracker(DefaultRetryPolicy, true)
	if cached.Steps().Has(StepGetStaticModel) {
		t.Error("cached-model tracker should not have StepGetStaticModel")
	}
	if !cached.Steps().Has(StepGetDescriptorDynamicInfo) {
		t.Error("cached-model tracker should have StepGetDescriptorDynamicInfo")
	}
}

// TestTracker_ExpectedSetIdempotence covers P6.
func TestTracker_ExpectedSetIdempotence(t *testing.T) {
	tr := NewTracker(DefaultRetryPolicy, false)
	key := DescriptorKey{DescriptorType: entitymodel.DescriptorStreamInput, DescriptorIndex: 0}

	tr.SetDescriptorExpected(0, key)
	tr.SetDescriptorExpected(0, key)

	if !tr.CheckAndClearDescriptorExpected(0, key) {
		t.Fatal("first CheckAndClearDescriptorExpected() = false, want true")
	}
	if tr.CheckAndClearDescriptorExpected(0, key) {
		t.Fatal("second CheckAndClearDescriptorExpected() = true, want false")
	}
}

// TestTracker_RetryTimerExhaustion covers P7 and scenario 4.
func TestTracker_RetryTimerExhaustion(t *testing.T) {
	tr := NewTracker(DefaultRetryPolicy, false)
	key := DescriptorKey{DescriptorType: entitymodel.DescriptorStreamInput, DescriptorIndex: 0}
	tr.SetDescriptorExpected(0, key)

	shouldRetry, delay := tr.GetDescriptorRetryTimer()
	if !shouldRetry || delay != DefaultRetryPolicy.Delay {
		t.Fatalf("1st retry = (%v, %v), want (true, %v)", shouldRetry, delay, DefaultRetryPolicy.Delay)
	}
	shouldRetry, delay = tr.GetDescriptorRetryTimer()
	if !shouldRetry || delay != DefaultRetryPolicy.Delay {
		t.Fatalf("2nd retry = (%v, %v), want (true, %v)", shouldRetry, delay, DefaultRetryPolicy.Delay)
	}
	shouldRetry, delay = tr.GetDescriptorRetryTimer()
	if shouldRetry || delay != 0 {
		t.Fatalf("3rd retry = (%v, %v), want (false, 0)", shouldRetry, delay)
	}

	tr.SetGotFatalEnumerationError()
	if !tr.GotFatalEnumerationError() {
		t.Fatal("GotFatalEnumerationError() = false after SetGotFatalEnumerationError()")
	}
	if !tr.GotFatalEnumerationError() {
		t.Fatal("fatal flag should remain latched")
	}
}

// TestTracker_UnexpectedResponse covers scenario 5: a response for a
// key nobody registered should report false so the caller can count it
// as unexpected (counting itself is pkg/stats's job, not Tracker's).
func TestTracker_UnexpectedResponse(t *testing.T) {
	tr := NewTracker(DefaultRetryPolicy, false)
	key := DynamicInfoKey{Type: DynamicInfoInputStreamInfo, DescriptorIndex: 7}

	if tr.CheckAndClearDynamicInfoExpected(0, key) {
		t.Fatal("CheckAndClearDynamicInfoExpected() = true for a never-registered key")
	}
}

func TestTracker_GotAllExpectedAcrossAllFourKinds(t *testing.T) {
	tr := NewTracker(DefaultRetryPolicy, false)

	tr.SetMilanInfoExpected(0)
	tr.SetDescriptorExpected(0, DescriptorKey{DescriptorType: entitymodel.DescriptorStreamInput, DescriptorIndex: 0})
	tr.SetDynamicInfoExpected(0, DynamicInfoKey{Type: DynamicInfoAcquiredState})
	tr.SetDescriptorDynamicInfoExpected(0, DescriptorDynamicInfoKey{Type: DescriptorDynamicInfoInputStreamName, DescriptorIndex: 0})

	if tr.GotAllMilanInfoExpected(0) || tr.GotAllDescriptorsExpected(0) || tr.GotAllDynamicInfoExpected(0) || tr.GotAllDescriptorDynamicInfoExpected(0) {
		t.Fatal("GotAll*Expected() = true before any response arrived")
	}

	tr.CheckAndClearMilanInfoExpected(0)
	tr.CheckAndClearDescriptorExpected(0, DescriptorKey{DescriptorType: entitymodel.DescriptorStreamInput, DescriptorIndex: 0})
	tr.CheckAndClearDynamicInfoExpected(0, DynamicInfoKey{Type: DynamicInfoAcquiredState})
	tr.CheckAndClearDescriptorDynamicInfoExpected(0, DescriptorDynamicInfoKey{Type: DescriptorDynamicInfoInputStreamName, DescriptorIndex: 0})

	if !tr.GotAllMilanInfoExpected(0) || !tr.GotAllDescriptorsExpected(0) || !tr.GotAllDynamicInfoExpected(0) || !tr.GotAllDescriptorDynamicInfoExpected(0) {
		t.Fatal("GotAll*Expected() = false after every response cleared")
	}
}

func TestTracker_RegisterUnsolExpectedIdempotence(t *testing.T) {
	tr := NewTracker(DefaultRetryPolicy, false)

	if !tr.GotRegisterUnsolExpected() {
		t.Fatal("GotRegisterUnsolExpected() = false before SetRegisterUnsolExpected()")
	}

	tr.SetRegisterUnsolExpected()
	if tr.GotRegisterUnsolExpected() {
		t.Fatal("GotRegisterUnsolExpected() = true while still outstanding")
	}

	if !tr.CheckAndClearRegisterUnsolExpected() {
		t.Fatal("first CheckAndClearRegisterUnsolExpected() = false, want true")
	}
	if tr.CheckAndClearRegisterUnsolExpected() {
		t.Fatal("second CheckAndClearRegisterUnsolExpected() = true, want false")
	}
	if !tr.GotRegisterUnsolExpected() {
		t.Fatal("GotRegisterUnsolExpected() = false after the response cleared")
	}
}

func TestTracker_RegisterUnsolRetryExhaustion(t *testing.T) {
	tr := NewTracker(DefaultRetryPolicy, false)
	tr.SetRegisterUnsolExpected()

	shouldRetry, delay := tr.GetRegisterUnsolRetryTimer()
	if !shouldRetry || delay != DefaultRetryPolicy.Delay {
		t.Fatalf("1st retry = (%v, %v), want (true, %v)", shouldRetry, delay, DefaultRetryPolicy.Delay)
	}
	shouldRetry, delay = tr.GetRegisterUnsolRetryTimer()
	if !shouldRetry || delay != DefaultRetryPolicy.Delay {
		t.Fatalf("2nd retry = (%v, %v), want (true, %v)", shouldRetry, delay, DefaultRetryPolicy.Delay)
	}
	shouldRetry, delay = tr.GetRegisterUnsolRetryTimer()
	if shouldRetry || delay != 0 {
		t.Fatalf("3rd retry = (%v, %v), want (false, 0)", shouldRetry, delay)
	}
}

func TestStepSet_AddClearHas(t *testing.T) {
	var s StepSet
	if !s.IsEmpty() {
		t.Fatal("zero StepSet is not empty")
	}
	s.Add(StepGetMilanInfo)
	s.Add(StepGetDynamicInfo)
	if !s.Has(StepGetMilanInfo) || !s.Has(StepGetDynamicInfo) {
		t.Fatal("Has() false for steps just added")
	}
	if s.Has(StepGetStaticModel) {
		t.Fatal("Has() true for a step never added")
	}
	s.Clear(StepGetMilanInfo)
	if s.Has(StepGetMilanInfo) {
		t.Fatal("Has() true after Clear()")
	}
	if s.IsEmpty() {
		t.Fatal("IsEmpty() true while StepGetDynamicInfo remains")
	}
}
