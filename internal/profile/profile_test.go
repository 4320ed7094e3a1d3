package profile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uvc "github.com/kevmo314/uvc-util"
	"github.com/kevmo314/uvc-util/pkg/requests"
)

type key struct{ unit, selector uint8 }

type control struct {
	info requests.Info
	cur  []byte
}

// deviceTransport answers GET_INFO, GET_CUR and SET_CUR and stalls everything
// else.
type deviceTransport map[key]*control

func (d deviceTransport) ControlTransfer(_, request uint8, value, index uint16, data []byte, _ time.Duration) (int, error) {
	c, ok := d[key{uint8(index >> 8), uint8(value >> 8)}]
	if !ok {
		return 0, errors.New("stall")
	}
	switch requests.RequestCode(request) {
	case requests.RequestCodeGetInfo:
		data[0] = byte(c.info)
		return 1, nil
	case requests.RequestCodeGetCur:
		return copy(data, c.cur), nil
	case requests.RequestCodeSetCur:
		c.cur = append([]byte(nil), data...)
		return len(data), nil
	}
	return 0, errors.New("stall")
}

func (d deviceTransport) Close() error { return nil }

const (
	pu     = 2
	ct     = 1
	getSet = requests.InfoSupportsGet | requests.InfoSupportsSet
)

func le16(v int16) []byte { return binary.LittleEndian.AppendUint16(nil, uint16(v)) }

func le32x2(a, b int32) []byte {
	return binary.LittleEndian.AppendUint32(binary.LittleEndian.AppendUint32(nil, uint32(a)), uint32(b))
}

func newDevice() (*uvc.DeviceController, deviceTransport) {
	t := deviceTransport{
		{pu, 0x02}: {info: getSet, cur: le16(-5)},                    // brightness
		{pu, 0x0a}: {info: getSet, cur: le16(4600)},                  // white-balance-temp
		{pu, 0x0b}: {info: getSet, cur: []byte{1}},                   // auto-white-balance-temp
		{ct, 0x0d}: {info: getSet, cur: le32x2(100, -200)},           // pan-tilt-abs
		{ct, 0x11}: {info: requests.InfoSupportsGet, cur: []byte{0}}, // privacy
	}
	return uvc.NewDeviceController(t, uvc.DeviceInfo{Name: "Test Camera"}, nil, uvc.Options{}), t
}

func TestCapture(t *testing.T) {
	dc, _ := newDevice()
	p, err := Capture(dc)
	require.NoError(t, err)
	assert.Equal(t, &Profile{
		Device: "Test Camera",
		Controls: []Entry{
			{Name: "auto-white-balance-temp", Value: "true"},
			{Name: "brightness", Value: "-5"},
			{Name: "white-balance-temp", Value: "4600"},
			{Name: "pan-tilt-abs", Value: "{pan=100,tilt=-200}"},
		},
	}, p)
}

func TestWriteRead(t *testing.T) {
	dc, _ := newDevice()
	p, err := Capture(dc)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, p))
	assert.Contains(t, buf.String(), "device: Test Camera\n")
	assert.Contains(t, buf.String(), `value: "-5"`)

	got, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestApply(t *testing.T) {
	dc, dev := newDevice()
	p := &Profile{Controls: []Entry{
		{Name: "auto-white-balance-temp", Value: "no"},
		{Name: "White-Balance-Temp", Value: "5000"},
		{Name: "pan-tilt-abs", Value: "{tilt=0, pan=-3600}"},
	}}

	n, err := Apply(dc, p, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{0}, dev[key{pu, 0x0b}].cur)
	assert.Equal(t, le16(5000), dev[key{pu, 0x0a}].cur)
	assert.Equal(t, le32x2(-3600, 0), dev[key{ct, 0x0d}].cur)
}

func TestApplyStopsAtFirstFailure(t *testing.T) {
	dc, dev := newDevice()
	p := &Profile{Controls: []Entry{
		{Name: "brightness", Value: "7"},
		{Name: "zoom-abs", Value: "100"},
		{Name: "white-balance-temp", Value: "5000"},
	}}

	n, err := Apply(dc, p, 0)
	assert.ErrorIs(t, err, uvc.ErrControlNotAvailable)
	assert.Equal(t, 1, n)
	assert.Equal(t, le16(7), dev[key{pu, 0x02}].cur)
	assert.Equal(t, le16(4600), dev[key{pu, 0x0a}].cur)

	n, err = Apply(dc, &Profile{Controls: []Entry{{Name: "brightness", Value: "bright"}}}, 0)
	assert.Error(t, err)
	assert.Equal(t, 0, n)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("device: x\ncontrols:\n  - value: \"1\"\n"))
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = Read(strings.NewReader("controls: ["))
	assert.Error(t, err)
}
