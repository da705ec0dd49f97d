package stats

import (
	"testing"
	"time"
)

func TestStatistics_CountersStartAtZero(t *testing.T) {
	s := New()
	if s.AecpRetryCounter() != 0 || s.AecpTimeoutCounter() != 0 || s.AecpUnexpectedResponseCounter() != 0 || s.AemAecpUnsolicitedCounter() != 0 {
		t.Fatal("fresh Statistics has a non-zero counter")
	}
}

func TestStatistics_IncrementCounters(t *testing.T) {
	s := New()
	if got := s.IncrementAecpRetryCounter(); got != 1 {
		t.Errorf("IncrementAecpRetryCounter() = %d, want 1", got)
	}
	if got := s.IncrementAecpRetryCounter(); got != 2 {
		t.Errorf("IncrementAecpRetryCounter() = %d, want 2", got)
	}
	if s.AecpRetryCounter() != 2 {
		t.Errorf("AecpRetryCounter() = %d, want 2", s.AecpRetryCounter())
	}

	s.IncrementAecpTimeoutCounter()
	s.IncrementAecpUnexpectedResponseCounter()
	s.IncrementAemAecpUnsolicitedCounter()
	if s.AecpTimeoutCounter() != 1 || s.AecpUnexpectedResponseCounter() != 1 || s.AemAecpUnsolicitedCounter() != 1 {
		t.Fatal("one-shot counters did not increment to 1")
	}
}

func TestStatistics_SetCounterRestoresExplicitValue(t *testing.T) {
	s := New()
	s.SetAecpRetryCounter(42)
	if s.AecpRetryCounter() != 42 {
		t.Errorf("AecpRetryCounter() = %d, want 42", s.AecpRetryCounter())
	}
}

func TestStatistics_ResponseTimeRollingAverage(t *testing.T) {
	s := New()
	if got := s.UpdateAecpResponseTimeAverage(100 * time.Millisecond); got != 100*time.Millisecond {
		t.Errorf("first update average = %v, want 100ms", got)
	}
	got := s.UpdateAecpResponseTimeAverage(300 * time.Millisecond)
	if got != 200*time.Millisecond {
		t.Errorf("second update average = %v, want 200ms", got)
	}
	if s.AecpResponseAverageTime() != got {
		t.Errorf("AecpResponseAverageTime() = %v, want %v", s.AecpResponseAverageTime(), got)
	}
}

func TestStatistics_EnumerationTime(t *testing.T) {
	s := New()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.SetStartEnumerationTime(start)
	s.SetEndEnumerationTime(start.Add(250 * time.Millisecond))
	if s.EnumerationTime() != 250*time.Millisecond {
		t.Errorf("EnumerationTime() = %v, want 250ms", s.EnumerationTime())
	}
}
