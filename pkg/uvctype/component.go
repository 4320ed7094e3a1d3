package uvctype

import (
	"encoding/binary"
	"strings"
)

// ComponentType is the atomic wire type of a single field.
type ComponentType uint8

const (
	Invalid ComponentType = iota
	Boolean
	SInt8
	UInt8
	Bitmap8
	SInt16
	UInt16
	Bitmap16
	SInt32
	UInt32
	Bitmap32
	SInt64
	UInt64
	Bitmap64
)

type componentInfo struct {
	size        int
	code        string
	description string
	signed      bool
}

var componentTable = [...]componentInfo{
	Invalid:  {0, "invalid", "<invalid>", false},
	Boolean:  {1, "B", "boolean", false},
	SInt8:    {1, "S1", "signed 8-bit integer", true},
	UInt8:    {1, "U1", "unsigned 8-bit integer", false},
	Bitmap8:  {1, "M1", "unsigned 8-bit bitmap", false},
	SInt16:   {2, "S2", "signed 16-bit integer", true},
	UInt16:   {2, "U2", "unsigned 16-bit integer", false},
	Bitmap16: {2, "M2", "unsigned 16-bit bitmap", false},
	SInt32:   {4, "S4", "signed 32-bit integer", true},
	UInt32:   {4, "U4", "unsigned 32-bit integer", false},
	Bitmap32: {4, "M4", "unsigned 32-bit bitmap", false},
	SInt64:   {8, "S8", "signed 64-bit integer", true},
	UInt64:   {8, "U8", "unsigned 64-bit integer", false},
	Bitmap64: {8, "M8", "unsigned 64-bit bitmap", false},
}

func (c ComponentType) info() componentInfo {
	if int(c) >= len(componentTable) {
		return componentTable[Invalid]
	}
	return componentTable[c]
}

func (c ComponentType) Valid() bool {
	return c != Invalid && int(c) < len(componentTable)
}

// Size returns the width of the component in bytes, or 0 for Invalid.
func (c ComponentType) Size() int { return c.info().size }

// String returns the short type code used in type descriptions, e.g. "S2".
func (c ComponentType) String() string { return c.info().code }

// Description returns a human readable name such as "signed 16-bit integer".
func (c ComponentType) Description() string { return c.info().description }

func (c ComponentType) Signed() bool { return c.info().signed }

// ParseComponentType looks up a type code case-insensitively. It returns
// Invalid when the code is not known.
func ParseComponentType(code string) ComponentType {
	for c := Boolean; int(c) < len(componentTable); c++ {
		if strings.EqualFold(code, componentTable[c].code) {
			return c
		}
	}
	return Invalid
}

// load reads a component of len(b) bytes in the given byte order.
func load(order binary.ByteOrder, b []byte) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(order.Uint16(b))
	case 4:
		return uint64(order.Uint32(b))
	case 8:
		return order.Uint64(b)
	}
	return 0
}

// store writes the low len(b) bytes of v in the given byte order.
func store(order binary.ByteOrder, b []byte, v uint64) {
	switch len(b) {
	case 1:
		b[0] = uint8(v)
	case 2:
		order.PutUint16(b, uint16(v))
	case 4:
		order.PutUint32(b, uint32(v))
	case 8:
		order.PutUint64(b, v)
	}
}

// signExtend interprets the low Size() bytes of v as a two's complement number.
func (c ComponentType) signExtend(v uint64) int64 {
	shift := 64 - 8*uint(c.Size())
	return int64(v<<shift) >> shift
}
