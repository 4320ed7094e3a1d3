package uvc

import "time"

// Unit says which entity of the video control interface serves a control.
type Unit int

const (
	UnitProcessing Unit = iota
	UnitCameraTerminal
)

func (u Unit) String() string {
	switch u {
	case UnitProcessing:
		return "processing-unit"
	case UnitCameraTerminal:
		return "camera-terminal"
	}
	return "unknown"
}

const (
	// Used when the descriptors do not name the entity.
	defaultProcessingUnitID = 2
	defaultCameraTerminalID = 1

	DefaultTimeout = time.Second

	unknownDeviceName = "Unknown UVC Device"
)
