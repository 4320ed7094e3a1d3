package uvc

import (
	"encoding/binary"
	"errors"
	"time"

	"github.com/kevmo314/uvc-util/pkg/requests"
)

var (
	errStall = errors.New("pipe stall")
	errIO    = errors.New("i/o error")
)

// fakeControl holds the payloads of one selector in wire order. A nil limit
// stalls the matching GET request.
type fakeControl struct {
	info                        requests.Info
	cur, min, max, res, def     []byte
	failSet, failGet, shortRead bool
}

type fakeCall struct {
	requestType, request uint8
	value, index         uint16
	length               int
	timeout              time.Duration
}

// fakeTransport answers the UVC class requests of a video control interface
// from an in-memory table keyed by unit ID and selector.
type fakeTransport struct {
	units  map[uint8]map[uint8]*fakeControl
	calls  []fakeCall
	closed bool
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{units: make(map[uint8]map[uint8]*fakeControl)}
}

func (f *fakeTransport) add(unitID, selector uint8, fc *fakeControl) *fakeControl {
	if f.units[unitID] == nil {
		f.units[unitID] = make(map[uint8]*fakeControl)
	}
	f.units[unitID][selector] = fc
	return fc
}

func (f *fakeTransport) ControlTransfer(requestType, request uint8, value, index uint16, data []byte, timeout time.Duration) (int, error) {
	f.calls = append(f.calls, fakeCall{requestType, request, value, index, len(data), timeout})
	if f.closed {
		return 0, errIO
	}
	fc, ok := f.units[uint8(index>>8)][uint8(value>>8)]
	if !ok {
		return 0, errStall
	}

	var src []byte
	switch requests.RequestCode(request) {
	case requests.RequestCodeGetInfo:
		src = []byte{byte(fc.info)}
	case requests.RequestCodeGetCur:
		if fc.failGet {
			return 0, errIO
		}
		src = fc.cur
	case requests.RequestCodeGetMin:
		src = fc.min
	case requests.RequestCodeGetMax:
		src = fc.max
	case requests.RequestCodeGetRes:
		src = fc.res
	case requests.RequestCodeGetDef:
		src = fc.def
	case requests.RequestCodeSetCur:
		if fc.failSet {
			return 0, errIO
		}
		fc.cur = append([]byte(nil), data...)
		return len(data), nil
	default:
		return 0, errStall
	}
	if src == nil {
		return 0, errStall
	}
	n := copy(data, src)
	if fc.shortRead && n > 0 {
		n--
	}
	return n, nil
}

func (f *fakeTransport) Close() error {
	f.closed = true
	return nil
}

func (f *fakeTransport) lastCall() fakeCall {
	return f.calls[len(f.calls)-1]
}

// claimingTransport also implements interfaceClaimer.
type claimingTransport struct {
	*fakeTransport
	claimed  []uint8
	released []uint8
	claimErr error
}

func (c *claimingTransport) ClaimInterface(iface uint8) error {
	if c.claimErr != nil {
		return c.claimErr
	}
	c.claimed = append(c.claimed, iface)
	return nil
}

func (c *claimingTransport) ReleaseInterface(iface uint8) error {
	c.released = append(c.released, iface)
	return nil
}

func s16(v int16) []byte { return binary.LittleEndian.AppendUint16(nil, uint16(v)) }

func u16(v uint16) []byte { return binary.LittleEndian.AppendUint16(nil, v) }

func s32(v int32) []byte { return binary.LittleEndian.AppendUint32(nil, uint32(v)) }

func pair32(a, b int32) []byte { return append(s32(a), s32(b)...) }
