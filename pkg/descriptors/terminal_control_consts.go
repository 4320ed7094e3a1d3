package descriptors

type CameraTerminalControlSelector int

const (
	CameraTerminalControlSelectorUndefined                   CameraTerminalControlSelector = 0x00
	CameraTerminalControlSelectorScanningModeControl         CameraTerminalControlSelector = 0x01
	CameraTerminalControlSelectorAutoExposureModeControl     CameraTerminalControlSelector = 0x02
	CameraTerminalControlSelectorAutoExposurePriorityControl CameraTerminalControlSelector = 0x03
	CameraTerminalControlSelectorExposureTimeAbsoluteControl CameraTerminalControlSelector = 0x04
	CameraTerminalControlSelectorExposureTimeRelativeControl CameraTerminalControlSelector = 0x05
	CameraTerminalControlSelectorFocusAbsoluteControl        CameraTerminalControlSelector = 0x06
	CameraTerminalControlSelectorFocusRelativeControl        CameraTerminalControlSelector = 0x07
	CameraTerminalControlSelectorFocusAutoControl            CameraTerminalControlSelector = 0x08
	CameraTerminalControlSelectorIrisAbsoluteControl         CameraTerminalControlSelector = 0x09
	CameraTerminalControlSelectorIrisRelativeControl         CameraTerminalControlSelector = 0x0A
	CameraTerminalControlSelectorZoomAbsoluteControl         CameraTerminalControlSelector = 0x0B
	CameraTerminalControlSelectorZoomRelativeControl         CameraTerminalControlSelector = 0x0C
	CameraTerminalControlSelectorPanTiltAbsoluteControl      CameraTerminalControlSelector = 0x0D
	CameraTerminalControlSelectorPanTiltRelativeControl      CameraTerminalControlSelector = 0x0E
	CameraTerminalControlSelectorRollAbsoluteControl         CameraTerminalControlSelector = 0x0F
	CameraTerminalControlSelectorRollRelativeControl         CameraTerminalControlSelector = 0x10
	CameraTerminalControlSelectorPrivacyControl              CameraTerminalControlSelector = 0x11
	CameraTerminalControlSelectorFocusSimpleControl          CameraTerminalControlSelector = 0x12
	CameraTerminalControlSelectorWindowControl               CameraTerminalControlSelector = 0x13
	CameraTerminalControlSelectorRegionOfInterestControl     CameraTerminalControlSelector = 0x14
)

// FeatureBit returns the position of the control in the camera terminal's
// bmControls, as defined in UVC spec 1.5, table 3-6. It returns -1 for
// selectors without a bit.
func (s CameraTerminalControlSelector) FeatureBit() int {
	switch s {
	case CameraTerminalControlSelectorScanningModeControl:
		return 0
	case CameraTerminalControlSelectorAutoExposureModeControl:
		return 1
	case CameraTerminalControlSelectorAutoExposurePriorityControl:
		return 2
	case CameraTerminalControlSelectorExposureTimeAbsoluteControl:
		return 3
	case CameraTerminalControlSelectorExposureTimeRelativeControl:
		return 4
	case CameraTerminalControlSelectorFocusAbsoluteControl:
		return 5
	case CameraTerminalControlSelectorFocusRelativeControl:
		return 6
	case CameraTerminalControlSelectorIrisAbsoluteControl:
		return 7
	case CameraTerminalControlSelectorIrisRelativeControl:
		return 8
	case CameraTerminalControlSelectorZoomAbsoluteControl:
		return 9
	case CameraTerminalControlSelectorZoomRelativeControl:
		return 10
	case CameraTerminalControlSelectorPanTiltAbsoluteControl:
		return 11
	case CameraTerminalControlSelectorPanTiltRelativeControl:
		return 12
	case CameraTerminalControlSelectorRollAbsoluteControl:
		return 13
	case CameraTerminalControlSelectorRollRelativeControl:
		return 14
	case CameraTerminalControlSelectorFocusAutoControl:
		return 17
	case CameraTerminalControlSelectorPrivacyControl:
		return 18
	case CameraTerminalControlSelectorFocusSimpleControl:
		return 19
	case CameraTerminalControlSelectorWindowControl:
		return 20
	case CameraTerminalControlSelectorRegionOfInterestControl:
		return 21
	}
	return -1
}

type AutoExposureMode int

const (
	AutoExposureModeManual           AutoExposureMode = 1
	AutoExposureModeAuto             AutoExposureMode = 2
	AutoExposureModeShutterPriority  AutoExposureMode = 4
	AutoExposureModeAperturePriority AutoExposureMode = 8
)
