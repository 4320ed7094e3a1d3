package descriptors

import "fmt"

// BinaryCodedDecimal is a release number such as bcdUVC, 0x0150 for 1.5.
type BinaryCodedDecimal uint16

func (bcd BinaryCodedDecimal) Major() uint8 { return uint8(bcd >> 8) }

func (bcd BinaryCodedDecimal) Minor() uint8 { return uint8(bcd) }

func (bcd BinaryCodedDecimal) String() string {
	return fmt.Sprintf("%x.%02x", bcd.Major(), bcd.Minor())
}
