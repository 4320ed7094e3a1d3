package descriptors

import (
	"fmt"
	"io"
)

// VideoControl collects the class-specific descriptors of a video control
// interface.
type VideoControl struct {
	Header          *HeaderDescriptor
	InputTerminals  []*InputTerminalDescriptor
	CameraTerminals []*CameraTerminalDescriptor
	ProcessingUnits []*ProcessingUnitDescriptor
	ExtensionUnits  []*ExtensionUnitDescriptor
}

// ParseVideoControl walks the extra descriptor bytes that follow a video
// control interface descriptor.
func ParseVideoControl(extra []byte) (*VideoControl, error) {
	vc := &VideoControl{}
	for i := 0; i < len(extra); {
		n := int(extra[i])
		if n < 2 || i+n > len(extra) {
			return nil, fmt.Errorf("descriptor at offset %d: %w", i, io.ErrShortBuffer)
		}
		block := extra[i : i+n]
		i += n
		if ClassSpecificDescriptorType(block[1]) != ClassSpecificDescriptorTypeInterface {
			// ignore blocks that are not CS_INTERFACE 0x24
			continue
		}
		ci, err := UnmarshalControlInterface(block)
		if err != nil {
			return nil, fmt.Errorf("descriptor at offset %d: %w", i-n, err)
		}
		switch ci := ci.(type) {
		case *HeaderDescriptor:
			vc.Header = ci
		case *CameraTerminalDescriptor:
			vc.CameraTerminals = append(vc.CameraTerminals, ci)
		case *InputTerminalDescriptor:
			vc.InputTerminals = append(vc.InputTerminals, ci)
		case *ProcessingUnitDescriptor:
			vc.ProcessingUnits = append(vc.ProcessingUnits, ci)
		case *ExtensionUnitDescriptor:
			vc.ExtensionUnits = append(vc.ExtensionUnits, ci)
		}
	}
	if vc.Header == nil {
		return nil, ErrNoHeader
	}
	return vc, nil
}

func (vc *VideoControl) CameraTerminal() *CameraTerminalDescriptor {
	if len(vc.CameraTerminals) == 0 {
		return nil
	}
	return vc.CameraTerminals[0]
}

func (vc *VideoControl) ProcessingUnit() *ProcessingUnitDescriptor {
	if len(vc.ProcessingUnits) == 0 {
		return nil
	}
	return vc.ProcessingUnits[0]
}
