package controlledentity

import (
	"time"

	"github.com/klokik/avdecc/pkg/entitymodel"
)

// OnAecpResponseReceived implements protocol.ResponseSink, folding a
// successful AECP round trip into the rolling response-time average
// (spec.md §5, protocol.ResponseSink).
func (e *ControlledEntity) OnAecpResponseReceived(eid entitymodel.EID, responseTime time.Duration) {
	e.stats.UpdateAecpResponseTimeAverage(responseTime)
}

// OnAecpTimeout implements protocol.ResponseSink, counting a command
// that got no response within the retry policy's window.
func (e *ControlledEntity) OnAecpTimeout(eid entitymodel.EID) {
	e.stats.IncrementAecpTimeoutCounter()
}

// OnAecpUnexpectedResponse implements protocol.ResponseSink, counting
// a response that didn't match any outstanding expectation tracked by
// the enumeration.Tracker (e.g. a stale retry's response arriving
// after the slot was already reused).
func (e *ControlledEntity) OnAecpUnexpectedResponse(eid entitymodel.EID) {
	e.stats.IncrementAecpUnexpectedResponseCounter()
}

// OnUnsolicitedNotification implements protocol.ResponseSink, counting
// an AEM unsolicited notification delivered outside the request/response
// cycle (spec.md §5).
func (e *ControlledEntity) OnUnsolicitedNotification(eid entitymodel.EID) {
	e.stats.IncrementAemAecpUnsolicitedCounter()
}
