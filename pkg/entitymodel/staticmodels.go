package entitymodel

// Static models hold the shape and discovery-time defaults of a
// descriptor: fields the wire descriptor itself carries and that never
// change without a re-enumeration. Setters overwrite these
// unconditionally (spec.md §4.2.1).

// EntityStaticModel is the immutable part of the top-level Entity
// record: capabilities and counts advertised in the ADP/ENTITY_AVAILABLE
// record and the EntityDescriptor.
type EntityStaticModel struct {
	EntityModelID         uint64
	EntityCapabilities    uint32
	TalkerStreamSources   uint16
	TalkerCapabilities    uint16
	ListenerStreamSinks   uint16
	ListenerCapabilities  uint16
	ControllerCapabilities uint32
	ConfigurationsCount   uint16
	FirmwareVersion       string
	SerialNumber          string
}

// ConfigurationStaticModel is a configuration's descriptor counts: how
// many descriptors of each kind this configuration promises to contain.
// Populated from the wire ConfigurationDescriptor's descriptor_counts
// list; used by ConfigurationTree.IsComplete.
type ConfigurationStaticModel struct {
	DescriptorCounts map[DescriptorType]uint16
}

// AudioUnitStaticModel is the static shape of an AUDIO_UNIT descriptor.
type AudioUnitStaticModel struct {
	ObjectName         AvdeccFixedString
	ClockDomainIndex   ClockDomainIndex
	NumberOfStreamInputPorts  uint16
	NumberOfStreamOutputPorts uint16
	SamplingRates      []SamplingRate
}

// AudioUnitDynamicModel is the mutable state of an AUDIO_UNIT
// descriptor: its resolved object name.
type AudioUnitDynamicModel struct {
	ObjectName AvdeccFixedString
}

// StreamStaticModel is the static shape of a STREAM_INPUT or
// STREAM_OUTPUT descriptor. Both directions share this shape; the
// direction is implied by which map of the ConfigurationTree holds it.
type StreamStaticModel struct {
	ObjectName          AvdeccFixedString
	ClockDomainIndex    ClockDomainIndex
	StreamFlags         uint16
	Formats             []StreamFormat
	RedundantStreams     []StreamIndex // other members of this stream's redundant association, if any
	AvbInterfaceIndex    AvbInterfaceIndex // AVB_INTERFACE this stream is bound to; redundancy primary/secondary is decided by this, not descriptor index
}

// StreamDynamicModel is the mutable state of a stream: values only a
// targeted query populates, never the descriptor itself.
type StreamDynamicModel struct {
	ObjectName     AvdeccFixedString
	CurrentFormat  StreamFormat
	IsStreamRunning bool
	Connections    StreamConnections         // output-only: listeners subscribed to this talker stream
	ConnectionInfo StreamInputConnectionInfo // input-only: this listener's current talker binding
}

// AvbInterfaceStaticModel is the static shape of an AVB_INTERFACE
// descriptor.
type AvbInterfaceStaticModel struct {
	ObjectName  AvdeccFixedString
	MacAddress  [6]byte
	Flags       uint16
}

// AvbInterfaceDynamicModel is dynamic AVB interface state: link status,
// gPTP path info and counters, none of which the descriptor itself
// carries.
type AvbInterfaceDynamicModel struct {
	ObjectName AvdeccFixedString
	LinkStatus InterfaceLinkStatus
	Info       AvbInterfaceInfo
	AsPath     AsPath
	Counters   AvbInterfaceCounters
}

// ClockSourceStaticModel is the static shape of a CLOCK_SOURCE
// descriptor.
type ClockSourceStaticModel struct {
	ObjectName      AvdeccFixedString
	ClockSourceType uint16
	ClockSourceLocationType  DescriptorType
	ClockSourceLocationIndex DescriptorIndex
}

// ClockSourceDynamicModel holds the one clock-source dynamic field:
// its resolved name, when a GET_NAME targeted the source directly.
type ClockSourceDynamicModel struct {
	ObjectName AvdeccFixedString
}

// MemoryObjectStaticModel is the static shape of a MEMORY_OBJECT
// descriptor.
type MemoryObjectStaticModel struct {
	ObjectName AvdeccFixedString
	Type       uint16
	StartAddress uint64
	MaximumLength uint64
}

// MemoryObjectDynamicModel holds the fields only a targeted query
// populates: current length and the resolved object name.
type MemoryObjectDynamicModel struct {
	ObjectName AvdeccFixedString
	Length     uint64
}

// LocaleStaticModel is the static shape of a LOCALE descriptor: the
// locale identifier and the range of STRINGS descriptors it covers.
type LocaleStaticModel struct {
	LocaleID          string
	NumberOfStringsDescriptors uint16
	BaseStringsDescriptorIndex StringsIndex
}

// StringsStaticModel holds the up-to-7 localized strings a STRINGS
// descriptor carries.
type StringsStaticModel struct {
	Strings [7]AvdeccFixedString
}

// StreamPortStaticModel is the static shape of a STREAM_PORT_INPUT or
// STREAM_PORT_OUTPUT descriptor.
type StreamPortStaticModel struct {
	ClockDomainIndex    ClockDomainIndex
	Flags               uint16
	NumberOfClusters    uint16
	NumberOfMaps        uint16
	BaseCluster         ClusterIndex
}

// StreamPortDynamicModel holds the audio mappings currently applied to
// this stream port, populated by GET_AUDIO_MAP.
type StreamPortDynamicModel struct {
	DynamicMappings AudioMappings
}

// AudioClusterStaticModel is the static shape of an AUDIO_CLUSTER
// descriptor.
type AudioClusterStaticModel struct {
	ObjectName    AvdeccFixedString
	ClusterFormat uint8
	SignalType    DescriptorType
	SignalIndex   DescriptorIndex
	ChannelCount  uint16
}

// AudioClusterDynamicModel holds the resolved cluster name when a
// targeted GET_NAME was issued for it.
type AudioClusterDynamicModel struct {
	ObjectName AvdeccFixedString
}

// AudioMapStaticModel is the static shape of an AUDIO_MAP descriptor:
// the fixed mapping list it was discovered with.
type AudioMapStaticModel struct {
	Mappings AudioMappings
}

// ControlStaticModel is the static shape of a CONTROL descriptor.
type ControlStaticModel struct {
	ObjectName   AvdeccFixedString
	ControlType  uint64
	ControlValueType uint16
	DefaultValue []byte
}

// ControlDynamicModel holds the control's resolved name and its current
// value, both populated by targeted queries (GET_NAME, GET_CONTROL).
type ControlDynamicModel struct {
	ObjectName AvdeccFixedString
	Values     ControlValues
}

// ClockDomainStaticModel is the static shape of a CLOCK_DOMAIN
// descriptor.
type ClockDomainStaticModel struct {
	ObjectName       AvdeccFixedString
	ClockSources     []ClockSourceIndex
}

// ClockDomainDynamicModel holds fields only a targeted query
// populates: the resolved name, currently selected clock source, and
// counters.
type ClockDomainDynamicModel struct {
	ObjectName       AvdeccFixedString
	ClockSourceIndex ClockSourceIndex
	Counters         ClockDomainCounters
}
