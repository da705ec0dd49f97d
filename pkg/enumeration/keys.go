package enumeration

import "github.com/klokik/avdecc/pkg/entitymodel"

// MilanInfoKey identifies an expected GET_MILAN_INFO response. It
// carries no fields: an entity has exactly one Milan info record, so
// the key's only role is to let the Milan registry share the same
// set-based contract as the other three kinds.
type MilanInfoKey struct{}

// DescriptorKey identifies an expected descriptor read during
// StepGetStaticModel.
type DescriptorKey struct {
	DescriptorType  entitymodel.DescriptorType
	DescriptorIndex entitymodel.DescriptorIndex
}

// DynamicInfoType enumerates the kinds of live, per-descriptor values
// fetched during StepGetDynamicInfo.
type DynamicInfoType int

const (
	DynamicInfoAcquiredState DynamicInfoType = iota
	DynamicInfoLockedState
	DynamicInfoInputStreamAudioMappings
	DynamicInfoOutputStreamAudioMappings
	DynamicInfoInputStreamState
	DynamicInfoOutputStreamState
	DynamicInfoOutputStreamConnection
	DynamicInfoInputStreamInfo
	DynamicInfoOutputStreamInfo
	DynamicInfoGetAvbInfo
	DynamicInfoGetAsPath
	DynamicInfoGetEntityCounters
	DynamicInfoGetAvbInterfaceCounters
	DynamicInfoGetClockDomainCounters
	DynamicInfoGetStreamInputCounters
	DynamicInfoGetStreamOutputCounters
)

// String returns a human-readable name for the dynamic info type.
func (t DynamicInfoType) String() string {
	switch t {
	case DynamicInfoAcquiredState:
		return "AcquiredState"
	case DynamicInfoLockedState:
		return "LockedState"
	case DynamicInfoInputStreamAudioMappings:
		return "InputStreamAudioMappings"
	case DynamicInfoOutputStreamAudioMappings:
		return "OutputStreamAudioMappings"
	case DynamicInfoInputStreamState:
		return "InputStreamState"
	case DynamicInfoOutputStreamState:
		return "OutputStreamState"
	case DynamicInfoOutputStreamConnection:
		return "OutputStreamConnection"
	case DynamicInfoInputStreamInfo:
		return "InputStreamInfo"
	case DynamicInfoOutputStreamInfo:
		return "OutputStreamInfo"
	case DynamicInfoGetAvbInfo:
		return "GetAvbInfo"
	case DynamicInfoGetAsPath:
		return "GetAsPath"
	case DynamicInfoGetEntityCounters:
		return "GetEntityCounters"
	case DynamicInfoGetAvbInterfaceCounters:
		return "GetAvbInterfaceCounters"
	case DynamicInfoGetClockDomainCounters:
		return "GetClockDomainCounters"
	case DynamicInfoGetStreamInputCounters:
		return "GetStreamInputCounters"
	case DynamicInfoGetStreamOutputCounters:
		return "GetStreamOutputCounters"
	default:
		return "Unknown"
	}
}

// DynamicInfoKey identifies one expected StepGetDynamicInfo response.
// SubIndex distinguishes multiple outstanding queries of the same type
// against the same descriptor, e.g. per-connection OutputStreamConnection
// entries.
type DynamicInfoKey struct {
	Type            DynamicInfoType
	DescriptorIndex entitymodel.DescriptorIndex
	SubIndex        uint16
}

// DescriptorDynamicInfoType enumerates the kinds of per-descriptor
// dynamic values fetched during StepGetDescriptorDynamicInfo, used
// only when a cached static tree was reused.
type DescriptorDynamicInfoType int

const (
	DescriptorDynamicInfoConfigurationName DescriptorDynamicInfoType = iota
	DescriptorDynamicInfoAudioUnitName
	DescriptorDynamicInfoAudioUnitSamplingRate
	DescriptorDynamicInfoInputStreamName
	DescriptorDynamicInfoInputStreamFormat
	DescriptorDynamicInfoOutputStreamName
	DescriptorDynamicInfoOutputStreamFormat
	DescriptorDynamicInfoAvbInterfaceName
	DescriptorDynamicInfoClockSourceName
	DescriptorDynamicInfoMemoryObjectName
	DescriptorDynamicInfoMemoryObjectLength
	DescriptorDynamicInfoAudioClusterName
	DescriptorDynamicInfoControlName
	DescriptorDynamicInfoControlValues
	DescriptorDynamicInfoClockDomainName
	DescriptorDynamicInfoClockDomainSourceIndex
)

// String returns a human-readable name for the descriptor dynamic info type.
func (t DescriptorDynamicInfoType) String() string {
	switch t {
	case DescriptorDynamicInfoConfigurationName:
		return "ConfigurationName"
	case DescriptorDynamicInfoAudioUnitName:
		return "AudioUnitName"
	case DescriptorDynamicInfoAudioUnitSamplingRate:
		return "AudioUnitSamplingRate"
	case DescriptorDynamicInfoInputStreamName:
		return "InputStreamName"
	case DescriptorDynamicInfoInputStreamFormat:
		return "InputStreamFormat"
	case DescriptorDynamicInfoOutputStreamName:
		return "OutputStreamName"
	case DescriptorDynamicInfoOutputStreamFormat:
		return "OutputStreamFormat"
	case DescriptorDynamicInfoAvbInterfaceName:
		return "AvbInterfaceName"
	case DescriptorDynamicInfoClockSourceName:
		return "ClockSourceName"
	case DescriptorDynamicInfoMemoryObjectName:
		return "MemoryObjectName"
	case DescriptorDynamicInfoMemoryObjectLength:
		return "MemoryObjectLength"
	case DescriptorDynamicInfoAudioClusterName:
		return "AudioClusterName"
	case DescriptorDynamicInfoControlName:
		return "ControlName"
	case DescriptorDynamicInfoControlValues:
		return "ControlValues"
	case DescriptorDynamicInfoClockDomainName:
		return "ClockDomainName"
	case DescriptorDynamicInfoClockDomainSourceIndex:
		return "ClockDomainSourceIndex"
	default:
		return "Unknown"
	}
}

// DescriptorDynamicInfoKey identifies one expected
// StepGetDescriptorDynamicInfo response.
type DescriptorDynamicInfoKey struct {
	Type            DescriptorDynamicInfoType
	DescriptorIndex entitymodel.DescriptorIndex
}
