package uvc

import (
	"github.com/kevmo314/uvc-util/pkg/descriptors"
	"github.com/kevmo314/uvc-util/pkg/uvctype"
)

type controlDefinition struct {
	name     string
	typ      *uvctype.Type
	unit     Unit
	selector uint8
	// bit is the position in the unit's bmControls.
	bit int
}

func puControl(name, schema string, s descriptors.ProcessingUnitControlSelector) controlDefinition {
	return controlDefinition{
		name:     name,
		typ:      uvctype.MustParse(schema),
		unit:     UnitProcessing,
		selector: uint8(s),
		bit:      s.FeatureBit(),
	}
}

func ctControl(name, schema string, s descriptors.CameraTerminalControlSelector) controlDefinition {
	return controlDefinition{
		name:     name,
		typ:      uvctype.MustParse(schema),
		unit:     UnitCameraTerminal,
		selector: uint8(s),
		bit:      s.FeatureBit(),
	}
}

var controlDefinitions = []controlDefinition{
	puControl("brightness", "{S2}", descriptors.ProcessingUnitBrightnessControl),
	puControl("contrast", "{U2}", descriptors.ProcessingUnitContrastControl),
	puControl("hue", "{S2}", descriptors.ProcessingUnitHueControl),
	puControl("saturation", "{U2}", descriptors.ProcessingUnitSaturationControl),
	puControl("sharpness", "{U2}", descriptors.ProcessingUnitSharpnessControl),
	puControl("gamma", "{U2}", descriptors.ProcessingUnitGammaControl),
	puControl("white-balance-temp", "{U2}", descriptors.ProcessingUnitWhiteBalanceTemperatureControl),
	puControl("backlight-compensation", "{U2}", descriptors.ProcessingUnitBacklightCompensationControl),
	puControl("gain", "{U2}", descriptors.ProcessingUnitGainControl),
	puControl("power-line-frequency", "{U1}", descriptors.ProcessingUnitPowerLineFrequencyControl),
	puControl("auto-white-balance-temp", "{B}", descriptors.ProcessingUnitWhiteBalanceTemperatureAutoControl),

	ctControl("auto-exposure-mode", "{U1}", descriptors.CameraTerminalControlSelectorAutoExposureModeControl),
	ctControl("auto-exposure-priority", "{B}", descriptors.CameraTerminalControlSelectorAutoExposurePriorityControl),
	ctControl("exposure-time-abs", "{U4}", descriptors.CameraTerminalControlSelectorExposureTimeAbsoluteControl),
	ctControl("focus-abs", "{U2}", descriptors.CameraTerminalControlSelectorFocusAbsoluteControl),
	ctControl("focus-rel", "{S1 focus;U1 speed}", descriptors.CameraTerminalControlSelectorFocusRelativeControl),
	ctControl("iris-abs", "{U2}", descriptors.CameraTerminalControlSelectorIrisAbsoluteControl),
	ctControl("zoom-abs", "{U2}", descriptors.CameraTerminalControlSelectorZoomAbsoluteControl),
	ctControl("zoom-rel", "{S1 zoom;U1 digital-zoom;U1 speed}", descriptors.CameraTerminalControlSelectorZoomRelativeControl),
	ctControl("pan-tilt-abs", "{S4 pan;S4 tilt}", descriptors.CameraTerminalControlSelectorPanTiltAbsoluteControl),
	ctControl("pan-tilt-rel", "{S1 pan;U1 pan-speed;S1 tilt;U1 tilt-speed}", descriptors.CameraTerminalControlSelectorPanTiltRelativeControl),
	ctControl("auto-focus", "{B}", descriptors.CameraTerminalControlSelectorFocusAutoControl),
	ctControl("privacy", "{B}", descriptors.CameraTerminalControlSelectorPrivacyControl),
}
