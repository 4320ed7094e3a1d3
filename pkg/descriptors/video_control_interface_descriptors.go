// This file implements the descriptors as defined in the UVC spec 1.5, section 3.7.
package descriptors

import (
	"encoding"
	"encoding/binary"
	"io"

	"github.com/google/uuid"
)

type ControlInterface interface {
	encoding.BinaryUnmarshaler
	isControlInterface()
}

// UnmarshalControlInterface decodes a single class-specific video control
// descriptor. Subtypes this package does not model return a nil descriptor
// and no error.
func UnmarshalControlInterface(buf []byte) (ControlInterface, error) {
	if len(buf) < 3 {
		return nil, io.ErrShortBuffer
	}
	var desc ControlInterface
	switch VideoControlInterfaceDescriptorSubtype(buf[2]) {
	case VideoControlInterfaceDescriptorSubtypeHeader:
		desc = &HeaderDescriptor{}
	case VideoControlInterfaceDescriptorSubtypeInputTerminal:
		if len(buf) >= 6 && InputTerminalType(binary.LittleEndian.Uint16(buf[4:6])) == InputTerminalTypeCamera {
			desc = &CameraTerminalDescriptor{}
		} else {
			desc = &InputTerminalDescriptor{}
		}
	case VideoControlInterfaceDescriptorSubtypeProcessingUnit:
		desc = &ProcessingUnitDescriptor{}
	case VideoControlInterfaceDescriptorSubtypeExtensionUnit:
		desc = &ExtensionUnitDescriptor{}
	default:
		return nil, nil
	}
	return desc, desc.UnmarshalBinary(buf)
}

type VideoControlInterfaceDescriptorSubtype byte

const (
	VideoControlInterfaceDescriptorSubtypeUndefined      VideoControlInterfaceDescriptorSubtype = 0x00
	VideoControlInterfaceDescriptorSubtypeHeader         VideoControlInterfaceDescriptorSubtype = 0x01
	VideoControlInterfaceDescriptorSubtypeInputTerminal  VideoControlInterfaceDescriptorSubtype = 0x02
	VideoControlInterfaceDescriptorSubtypeOutputTerminal VideoControlInterfaceDescriptorSubtype = 0x03
	VideoControlInterfaceDescriptorSubtypeSelectorUnit   VideoControlInterfaceDescriptorSubtype = 0x04
	VideoControlInterfaceDescriptorSubtypeProcessingUnit VideoControlInterfaceDescriptorSubtype = 0x05
	VideoControlInterfaceDescriptorSubtypeExtensionUnit  VideoControlInterfaceDescriptorSubtype = 0x06
	VideoControlInterfaceDescriptorSubtypeEncodingUnit   VideoControlInterfaceDescriptorSubtype = 0x07
)

type InputTerminalType uint16

const (
	InputTerminalTypeVendorSpecific      InputTerminalType = 0x0200
	InputTerminalTypeCamera              InputTerminalType = 0x0201
	InputTerminalTypeMediaTransportInput InputTerminalType = 0x0202
)

// checkHeader validates the length prefix, descriptor type and subtype shared
// by every class-specific video control descriptor.
func checkHeader(buf []byte, subtype VideoControlInterfaceDescriptorSubtype, minLength int) error {
	if len(buf) < 3 || len(buf) < int(buf[0]) || int(buf[0]) < minLength {
		return io.ErrShortBuffer
	}
	if ClassSpecificDescriptorType(buf[1]) != ClassSpecificDescriptorTypeInterface {
		return ErrInvalidDescriptor
	}
	if VideoControlInterfaceDescriptorSubtype(buf[2]) != subtype {
		return ErrInvalidDescriptor
	}
	return nil
}

// HeaderDescriptor as defined in UVC spec 1.5, 3.7.2.1
type HeaderDescriptor struct {
	UVC                            BinaryCodedDecimal
	TotalLength                    uint16
	ClockFrequency                 uint32
	VideoStreamingInterfaceIndexes []uint8
}

func (hd *HeaderDescriptor) UnmarshalBinary(buf []byte) error {
	if err := checkHeader(buf, VideoControlInterfaceDescriptorSubtypeHeader, 12); err != nil {
		return err
	}
	hd.UVC = BinaryCodedDecimal(binary.LittleEndian.Uint16(buf[3:5]))
	hd.TotalLength = binary.LittleEndian.Uint16(buf[5:7])
	hd.ClockFrequency = binary.LittleEndian.Uint32(buf[7:11])
	n := int(buf[11])
	if int(buf[0]) < 12+n {
		return io.ErrShortBuffer
	}
	hd.VideoStreamingInterfaceIndexes = append([]uint8(nil), buf[12:12+n]...)
	return nil
}

func (hd *HeaderDescriptor) isControlInterface() {}

// InputTerminalDescriptor as defined in UVC spec 1.5, 3.7.2.1
type InputTerminalDescriptor struct {
	TerminalID           uint8
	TerminalType         InputTerminalType
	AssociatedTerminalID uint8
	DescriptionIndex     uint8
}

func (itd *InputTerminalDescriptor) UnmarshalBinary(buf []byte) error {
	if err := checkHeader(buf, VideoControlInterfaceDescriptorSubtypeInputTerminal, 8); err != nil {
		return err
	}
	itd.TerminalID = buf[3]
	itd.TerminalType = InputTerminalType(binary.LittleEndian.Uint16(buf[4:6]))
	itd.AssociatedTerminalID = buf[6]
	itd.DescriptionIndex = buf[7]
	return nil
}

func (itd *InputTerminalDescriptor) isControlInterface() {}

// CameraTerminalDescriptor as defined in UVC spec 1.5, 3.7.2.3
type CameraTerminalDescriptor struct {
	InputTerminalDescriptor
	ObjectiveFocalLengthMin uint16
	ObjectiveFocalLengthMax uint16
	OcularFocalLength       uint16
	ControlsBitmask         []byte
}

func (ctd *CameraTerminalDescriptor) UnmarshalBinary(buf []byte) error {
	if err := ctd.InputTerminalDescriptor.UnmarshalBinary(buf); err != nil {
		return err
	}
	if ctd.TerminalType != InputTerminalTypeCamera {
		return ErrInvalidDescriptor
	}
	if int(buf[0]) < 15 {
		return io.ErrShortBuffer
	}
	ctd.ObjectiveFocalLengthMin = binary.LittleEndian.Uint16(buf[8:10])
	ctd.ObjectiveFocalLengthMax = binary.LittleEndian.Uint16(buf[10:12])
	ctd.OcularFocalLength = binary.LittleEndian.Uint16(buf[12:14])
	n := int(buf[14])
	if int(buf[0]) < 15+n {
		return io.ErrShortBuffer
	}
	ctd.ControlsBitmask = append([]byte(nil), buf[15:15+n]...)
	return nil
}

// SupportsControl reports whether bit of bmControls is set.
func (ctd *CameraTerminalDescriptor) SupportsControl(bit int) bool {
	return bitSet(ctd.ControlsBitmask, bit)
}

// ProcessingUnitDescriptor as defined in UVC spec 1.5, 3.7.2.5
type ProcessingUnitDescriptor struct {
	UnitID                uint8
	SourceID              uint8
	MaxMultiplier         uint16
	ControlsBitmask       []byte
	DescriptionIndex      uint8
	VideoStandardsBitmask uint8
}

func (pud *ProcessingUnitDescriptor) UnmarshalBinary(buf []byte) error {
	if err := checkHeader(buf, VideoControlInterfaceDescriptorSubtypeProcessingUnit, 9); err != nil {
		return err
	}
	pud.UnitID = buf[3]
	pud.SourceID = buf[4]
	pud.MaxMultiplier = binary.LittleEndian.Uint16(buf[5:7])
	n := int(buf[7])
	if int(buf[0]) < 9+n {
		return io.ErrShortBuffer
	}
	pud.ControlsBitmask = append([]byte(nil), buf[8:8+n]...)
	pud.DescriptionIndex = buf[8+n]
	if int(buf[0]) > 9+n {
		// bmVideoStandards only exists from UVC 1.1 on
		pud.VideoStandardsBitmask = buf[9+n]
	}
	return nil
}

func (pud *ProcessingUnitDescriptor) isControlInterface() {}

// SupportsControl reports whether bit of bmControls is set. Devices following
// older UVC versions report a shorter bitmask; bits past its end are unset.
func (pud *ProcessingUnitDescriptor) SupportsControl(bit int) bool {
	return bitSet(pud.ControlsBitmask, bit)
}

// ExtensionUnitDescriptor as defined in UVC spec 1.5, 3.7.2.7
type ExtensionUnitDescriptor struct {
	UnitID            uint8
	GUIDExtensionCode uuid.UUID
	NumControls       uint8
	SourceIDs         []uint8
	ControlsBitmask   []byte
	DescriptionIndex  uint8
}

func (eud *ExtensionUnitDescriptor) UnmarshalBinary(buf []byte) error {
	if err := checkHeader(buf, VideoControlInterfaceDescriptorSubtypeExtensionUnit, 24); err != nil {
		return err
	}
	eud.UnitID = buf[3]
	eud.GUIDExtensionCode = guidFromWire(buf[4:20])
	eud.NumControls = buf[20]
	p := int(buf[21])
	if int(buf[0]) < 24+p {
		return io.ErrShortBuffer
	}
	eud.SourceIDs = append([]uint8(nil), buf[22:22+p]...)
	n := int(buf[22+p])
	if int(buf[0]) < 24+p+n {
		return io.ErrShortBuffer
	}
	eud.ControlsBitmask = append([]byte(nil), buf[23+p:23+p+n]...)
	eud.DescriptionIndex = buf[23+p+n]
	return nil
}

func (eud *ExtensionUnitDescriptor) isControlInterface() {}

func bitSet(mask []byte, bit int) bool {
	if bit < 0 || bit/8 >= len(mask) {
		return false
	}
	return mask[bit/8]&(1<<(bit%8)) != 0
}
