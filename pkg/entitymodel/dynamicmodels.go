package entitymodel

// StreamIdentification names one stream by its owning entity and the
// stream's index within that entity, used to identify the far end of a
// connection.
type StreamIdentification struct {
	EntityID   EID
	StreamIndex StreamIndex
}

// StreamInputConnectionState is the state of a listener stream's
// binding to a talker.
type StreamInputConnectionState int

const (
	StreamInputNotConnected StreamInputConnectionState = iota
	StreamInputConnected
	StreamInputFastConnecting
)

func (s StreamInputConnectionState) String() string {
	switch s {
	case StreamInputNotConnected:
		return "NotConnected"
	case StreamInputConnected:
		return "Connected"
	case StreamInputFastConnecting:
		return "FastConnecting"
	default:
		return "Unknown"
	}
}

// StreamInputConnectionInfo is a listener stream's current talker
// binding.
type StreamInputConnectionInfo struct {
	Talker StreamIdentification
	State  StreamInputConnectionState
}

// StreamConnections is the set of listener streams currently subscribed
// to a talker stream. Order is insertion order, matching
// ModelAccessor's determinism requirement for anything observers see.
type StreamConnections struct {
	listeners []StreamIdentification
}

// Add inserts listener if not already present. Returns true if the set
// changed, matching addStreamOutputConnection's idempotent-add contract.
func (c *StreamConnections) Add(listener StreamIdentification) bool {
	for _, l := range c.listeners {
		if l == listener {
			return false
		}
	}
	c.listeners = append(c.listeners, listener)
	return true
}

// Remove deletes listener if present. Returns true if the set changed,
// matching delStreamOutputConnection's idempotent-remove contract.
func (c *StreamConnections) Remove(listener StreamIdentification) bool {
	for i, l := range c.listeners {
		if l == listener {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the connection set.
func (c *StreamConnections) Clear() {
	c.listeners = nil
}

// List returns the current listeners in insertion order.
func (c *StreamConnections) List() []StreamIdentification {
	return append([]StreamIdentification{}, c.listeners...)
}

// AudioMapping is one (stream_channel, cluster_offset, cluster_channel)
// binding carried by a GET_AUDIO_MAP response, tagged with the stream
// index it came from so redundant-secondary entries can be filtered out
// (spec.md §4.3).
type AudioMapping struct {
	StreamIndex    StreamIndex
	StreamChannel  uint16
	ClusterOffset  uint16
	ClusterChannel uint16
}

// AudioMappings is an ordered list of audio mappings for one stream
// port.
type AudioMappings []AudioMapping

// InterfaceLinkStatus is the up/down state of an AVB interface.
type InterfaceLinkStatus int

const (
	LinkStatusUnknown InterfaceLinkStatus = iota
	LinkStatusUp
	LinkStatusDown
)

func (s InterfaceLinkStatus) String() string {
	switch s {
	case LinkStatusUp:
		return "Up"
	case LinkStatusDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// AvbInterfaceInfo is the dynamic gPTP/AVB state of one AVB interface,
// populated by GET_AVB_INFO.
type AvbInterfaceInfo struct {
	PropagationDelay uint32
	Flags            uint16
	MsrpMappings     []byte
}

// AsPath is the gPTP AS-Path of one AVB interface, populated by
// GET_AS_PATH.
type AsPath struct {
	Sequence []EID
}

// MilanInfo is the Milan-profile vendor-unique information a Milan
// entity returns from GET_MILAN_INFO.
type MilanInfo struct {
	ProtocolVersion uint32
	FeaturesFlags   uint32
	CertificationVersion uint32
}

// ControlValues is the decoded current value blob of a CONTROL
// descriptor, populated by GET_CONTROL.
type ControlValues struct {
	Values []byte
}

// Counters are monotonic per-kind counters populated by GET_COUNTERS;
// kept as a plain map keyed by the wire counter-flag bit rather than a
// struct-per-flag, since the set of valid flags differs by descriptor
// kind and the wire only ever reports the flags it supports.
type Counters map[uint32]uint32

type (
	EntityCounters        = Counters
	AvbInterfaceCounters  = Counters
	ClockDomainCounters   = Counters
	StreamInputCounters   = Counters
	StreamOutputCounters  = Counters
)
