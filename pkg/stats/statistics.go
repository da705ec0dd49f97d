// Package stats tracks the monotonic AECP counters and rolling
// response-time average a ControlledEntity accumulates over its
// lifetime, per spec.md §4.6.
package stats

import (
	"sync/atomic"
	"time"
)

// Statistics holds one entity's AECP/enumeration counters. Every
// counter is an atomic.Uint64, the same primitive
// backkem-matter/pkg/datamodel/cluster.go's ClusterBase uses for its
// data version: these fields are read from outside the shared lock
// (e.g. by a Prometheus scrape or a status print) concurrently with
// writes made while the lock is held, so they need their own
// synchronization independent of the caller's locking discipline.
type Statistics struct {
	aecpRetryCounter              atomic.Uint64
	aecpTimeoutCounter            atomic.Uint64
	aecpUnexpectedResponseCounter atomic.Uint64
	aemAecpUnsolicitedCounter     atomic.Uint64

	aecpResponsesCount    atomic.Uint64
	aecpResponseTimeSumNs atomic.Uint64

	enumerationStartTime time.Time
	enumerationTime      time.Duration
}

// New returns a Statistics with every counter at zero.
func New() *Statistics {
	return &Statistics{}
}

// AecpRetryCounter returns the number of AECP command retries issued.
func (s *Statistics) AecpRetryCounter() uint64 { return s.aecpRetryCounter.Load() }

// IncrementAecpRetryCounter increments and returns the new value.
func (s *Statistics) IncrementAecpRetryCounter() uint64 { return s.aecpRetryCounter.Add(1) }

// SetAecpRetryCounter sets the counter to an explicit value, e.g. when
// restoring statistics from a cached document.
func (s *Statistics) SetAecpRetryCounter(v uint64) { s.aecpRetryCounter.Store(v) }

// AecpTimeoutCounter returns the number of AECP commands that timed out.
func (s *Statistics) AecpTimeoutCounter() uint64 { return s.aecpTimeoutCounter.Load() }

// IncrementAecpTimeoutCounter increments and returns the new value.
func (s *Statistics) IncrementAecpTimeoutCounter() uint64 { return s.aecpTimeoutCounter.Add(1) }

// SetAecpTimeoutCounter sets the counter to an explicit value.
func (s *Statistics) SetAecpTimeoutCounter(v uint64) { s.aecpTimeoutCounter.Store(v) }

// AecpUnexpectedResponseCounter returns the number of AECP responses
// that did not match any outstanding expectation.
func (s *Statistics) AecpUnexpectedResponseCounter() uint64 {
	return s.aecpUnexpectedResponseCounter.Load()
}

// IncrementAecpUnexpectedResponseCounter increments and returns the new value.
func (s *Statistics) IncrementAecpUnexpectedResponseCounter() uint64 {
	return s.aecpUnexpectedResponseCounter.Add(1)
}

// SetAecpUnexpectedResponseCounter sets the counter to an explicit value.
func (s *Statistics) SetAecpUnexpectedResponseCounter(v uint64) {
	s.aecpUnexpectedResponseCounter.Store(v)
}

// AemAecpUnsolicitedCounter returns the number of unsolicited AEM
// notifications received.
func (s *Statistics) AemAecpUnsolicitedCounter() uint64 { return s.aemAecpUnsolicitedCounter.Load() }

// IncrementAemAecpUnsolicitedCounter increments and returns the new value.
func (s *Statistics) IncrementAemAecpUnsolicitedCounter() uint64 {
	return s.aemAecpUnsolicitedCounter.Add(1)
}

// SetAemAecpUnsolicitedCounter sets the counter to an explicit value.
func (s *Statistics) SetAemAecpUnsolicitedCounter(v uint64) {
	s.aemAecpUnsolicitedCounter.Store(v)
}

// UpdateAecpResponseTimeAverage folds responseTime into the rolling
// mean and returns the updated average.
func (s *Statistics) UpdateAecpResponseTimeAverage(responseTime time.Duration) time.Duration {
	count := s.aecpResponsesCount.Add(1)
	sum := s.aecpResponseTimeSumNs.Add(uint64(responseTime))
	return time.Duration(sum / count)
}

// AecpResponseAverageTime returns the current rolling mean response time.
func (s *Statistics) AecpResponseAverageTime() time.Duration {
	count := s.aecpResponsesCount.Load()
	if count == 0 {
		return 0
	}
	return time.Duration(s.aecpResponseTimeSumNs.Load() / count)
}

// SetAecpResponseAverageTime restores a previously computed average,
// e.g. when reloading statistics from a cached document. The average
// is treated as a single sample: the next UpdateAecpResponseTimeAverage
// call folds a live measurement in against it rather than replaying the
// original sample count, which the cache document does not retain.
func (s *Statistics) SetAecpResponseAverageTime(avg time.Duration) {
	s.aecpResponsesCount.Store(1)
	s.aecpResponseTimeSumNs.Store(uint64(avg))
}

// SetStartEnumerationTime records when enumeration began.
func (s *Statistics) SetStartEnumerationTime(t time.Time) {
	s.enumerationStartTime = t
}

// SetEndEnumerationTime records when enumeration ended and computes
// the elapsed enumeration time from the previously recorded start.
func (s *Statistics) SetEndEnumerationTime(t time.Time) {
	s.enumerationTime = t.Sub(s.enumerationStartTime)
}

// EnumerationTime returns the duration of the last completed enumeration.
func (s *Statistics) EnumerationTime() time.Duration {
	return s.enumerationTime
}

// SetEnumerationTime restores a previously recorded enumeration
// duration directly, used when reloading from a cached document where
// only the elapsed duration, not the start/end timestamps, was kept.
func (s *Statistics) SetEnumerationTime(d time.Duration) {
	s.enumerationTime = d
}
