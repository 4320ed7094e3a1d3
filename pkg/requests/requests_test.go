package requests

import "testing"

func TestRequestCodeString(t *testing.T) {
	for code, want := range map[RequestCode]string{
		RequestCodeGetInfo: "GET_INFO",
		RequestCodeSetCur:  "SET_CUR",
		RequestCode(0x42):  "RequestCode(0x42)",
	} {
		if got := code.String(); got != want {
			t.Errorf("RequestCode(%#x).String() = %q, want %q", uint8(code), got, want)
		}
	}
}

func TestRequestCodeRequestType(t *testing.T) {
	if got := RequestCodeGetDef.RequestType(); got != RequestTypeVideoInterfaceGetRequest {
		t.Errorf("GET_DEF request type = %#x, want %#x", got, RequestTypeVideoInterfaceGetRequest)
	}
	if got := RequestCodeSetCur.RequestType(); got != RequestTypeVideoInterfaceSetRequest {
		t.Errorf("SET_CUR request type = %#x, want %#x", got, RequestTypeVideoInterfaceSetRequest)
	}
}
