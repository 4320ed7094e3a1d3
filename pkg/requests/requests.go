package requests

import "fmt"

type RequestType uint8

const (
	RequestTypeVideoInterfaceSetRequest RequestType = 0b00100001
	RequestTypeDataEndpointSetRequest   RequestType = 0b00100010
	RequestTypeVideoInterfaceGetRequest RequestType = 0b10100001
	RequestTypeDataEndpointGetRequest   RequestType = 0b10100010
)

type RequestCode uint8

const (
	RequestCodeUndefined RequestCode = 0x00
	RequestCodeSetCur    RequestCode = 0x01
	RequestCodeSetCurAll RequestCode = 0x11
	RequestCodeGetCur    RequestCode = 0x81
	RequestCodeGetMin    RequestCode = 0x82
	RequestCodeGetMax    RequestCode = 0x83
	RequestCodeGetRes    RequestCode = 0x84
	RequestCodeGetLen    RequestCode = 0x85
	RequestCodeGetInfo   RequestCode = 0x86
	RequestCodeGetDef    RequestCode = 0x87
	RequestCodeGetCurAll RequestCode = 0x91
	RequestCodeGetMinAll RequestCode = 0x92
	RequestCodeGetMaxAll RequestCode = 0x93
	RequestCodeGetResAll RequestCode = 0x94
	RequestCodeGetDefAll RequestCode = 0x97
)

var requestCodeNames = map[RequestCode]string{
	RequestCodeUndefined: "RC_UNDEFINED",
	RequestCodeSetCur:    "SET_CUR",
	RequestCodeSetCurAll: "SET_CUR_ALL",
	RequestCodeGetCur:    "GET_CUR",
	RequestCodeGetMin:    "GET_MIN",
	RequestCodeGetMax:    "GET_MAX",
	RequestCodeGetRes:    "GET_RES",
	RequestCodeGetLen:    "GET_LEN",
	RequestCodeGetInfo:   "GET_INFO",
	RequestCodeGetDef:    "GET_DEF",
	RequestCodeGetCurAll: "GET_CUR_ALL",
	RequestCodeGetMinAll: "GET_MIN_ALL",
	RequestCodeGetMaxAll: "GET_MAX_ALL",
	RequestCodeGetResAll: "GET_RES_ALL",
	RequestCodeGetDefAll: "GET_DEF_ALL",
}

func (c RequestCode) String() string {
	if name, ok := requestCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("RequestCode(%#02x)", uint8(c))
}

// IsGet reports whether the request reads from the device.
func (c RequestCode) IsGet() bool { return c&0x80 != 0 }

// RequestType returns the bmRequestType for addressing a unit or terminal of
// a video interface with this request.
func (c RequestCode) RequestType() RequestType {
	if c.IsGet() {
		return RequestTypeVideoInterfaceGetRequest
	}
	return RequestTypeVideoInterfaceSetRequest
}

// Info is the bitmap returned by GET_INFO, UVC spec 1.5, table 4-3.
type Info uint8

const (
	InfoSupportsGet    Info = 1 << 0
	InfoSupportsSet    Info = 1 << 1
	InfoDisabledByAuto Info = 1 << 2
	InfoAutoUpdate     Info = 1 << 3
	InfoAsync          Info = 1 << 4
)
