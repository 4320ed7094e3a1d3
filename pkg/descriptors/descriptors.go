package descriptors

import "github.com/google/uuid"

// guidFromWire converts a GUID in the mixed-endian layout of UVC spec 1.5,
// section 2.9 to RFC 4122 byte order.
func guidFromWire(src []byte) uuid.UUID {
	var dst uuid.UUID
	dst[0] = src[3]
	dst[1] = src[2]
	dst[2] = src[1]
	dst[3] = src[0]
	dst[4] = src[5]
	dst[5] = src[4]
	dst[6] = src[7]
	dst[7] = src[6]
	copy(dst[8:], src[8:16])
	return dst
}
