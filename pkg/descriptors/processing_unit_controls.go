package descriptors

type ProcessingUnitControlSelector int

const (
	ProcessingUnitControlSelectorUndefined           ProcessingUnitControlSelector = 0x00
	ProcessingUnitBacklightCompensationControl       ProcessingUnitControlSelector = 0x01
	ProcessingUnitBrightnessControl                  ProcessingUnitControlSelector = 0x02
	ProcessingUnitContrastControl                    ProcessingUnitControlSelector = 0x03
	ProcessingUnitGainControl                        ProcessingUnitControlSelector = 0x04
	ProcessingUnitPowerLineFrequencyControl          ProcessingUnitControlSelector = 0x05
	ProcessingUnitHueControl                         ProcessingUnitControlSelector = 0x06
	ProcessingUnitSaturationControl                  ProcessingUnitControlSelector = 0x07
	ProcessingUnitSharpnessControl                   ProcessingUnitControlSelector = 0x08
	ProcessingUnitGammaControl                       ProcessingUnitControlSelector = 0x09
	ProcessingUnitWhiteBalanceTemperatureControl     ProcessingUnitControlSelector = 0x0A
	ProcessingUnitWhiteBalanceTemperatureAutoControl ProcessingUnitControlSelector = 0x0B
	ProcessingUnitWhiteBalanceComponentControl       ProcessingUnitControlSelector = 0x0C
	ProcessingUnitWhiteBalanceComponentAutoControl   ProcessingUnitControlSelector = 0x0D
	ProcessingUnitDigitalMultiplierControl           ProcessingUnitControlSelector = 0x0E
	ProcessingUnitDigitalMultiplierLimitControl      ProcessingUnitControlSelector = 0x0F
	ProcessingUnitHueAutoControl                     ProcessingUnitControlSelector = 0x10
	ProcessingUnitAnalogVideoStandardControl         ProcessingUnitControlSelector = 0x11
	ProcessingUnitAnalogVideoLockStatusControl       ProcessingUnitControlSelector = 0x12
	ProcessingUnitContrastAutoControl                ProcessingUnitControlSelector = 0x13
)

// Indicates the position of the control on the processing unit's
// bmControls, see UVC spec 1.5, table 3-8. -1 for selectors without a bit.
func (s ProcessingUnitControlSelector) FeatureBit() int {
	switch s {
	case ProcessingUnitBrightnessControl:
		return 0
	case ProcessingUnitContrastControl:
		return 1
	case ProcessingUnitHueControl:
		return 2
	case ProcessingUnitSaturationControl:
		return 3
	case ProcessingUnitSharpnessControl:
		return 4
	case ProcessingUnitGammaControl:
		return 5
	case ProcessingUnitWhiteBalanceTemperatureControl:
		return 6
	case ProcessingUnitWhiteBalanceComponentControl:
		return 7
	case ProcessingUnitBacklightCompensationControl:
		return 8
	case ProcessingUnitGainControl:
		return 9
	case ProcessingUnitPowerLineFrequencyControl:
		return 10
	case ProcessingUnitHueAutoControl:
		return 11
	case ProcessingUnitWhiteBalanceTemperatureAutoControl:
		return 12
	case ProcessingUnitWhiteBalanceComponentAutoControl:
		return 13
	case ProcessingUnitDigitalMultiplierControl:
		return 14
	case ProcessingUnitDigitalMultiplierLimitControl:
		return 15
	case ProcessingUnitAnalogVideoStandardControl:
		return 16
	case ProcessingUnitAnalogVideoLockStatusControl:
		return 17
	case ProcessingUnitContrastAutoControl:
		return 18
	}
	return -1
}
