package uvctype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValue(t *testing.T) {
	typ := MustParse("{S4 pan;S4 tilt}")
	v := NewValue(typ)
	assert.Same(t, typ, v.Type())
	assert.Equal(t, 8, v.Size())
	assert.Equal(t, make([]byte, 8), v.Bytes())
	assert.False(t, v.IsWireOrder())
	assert.Equal(t, "{pan=0,tilt=0}", v.String())

	_, err := ParseValue("{S4 pan")
	assert.ErrorIs(t, err, ErrMissingCloseBrace)
}

func TestValueFieldSlices(t *testing.T) {
	v, err := ParseValue("{S1 zoom;U1 digital-zoom;U1 speed}")
	require.NoError(t, err)

	speed := v.FieldNamed("SPEED")
	require.Len(t, speed, 1)
	speed[0] = 9
	assert.Equal(t, byte(9), v.Bytes()[2])
	assert.Equal(t, v.FieldAt(2), speed)

	assert.Nil(t, v.FieldAt(3))
	assert.Nil(t, v.FieldAt(-1))
	assert.Nil(t, v.FieldNamed("focus"))
}

func TestValueByteOrderState(t *testing.T) {
	v, err := ParseValue("{S2}")
	require.NoError(t, err)
	require.True(t, v.SetInt(0, -2))
	host := append([]byte(nil), v.Bytes()...)

	v.HostToWire()
	assert.True(t, v.IsWireOrder())
	assert.Equal(t, []byte{0xfe, 0xff}, v.Bytes())
	v.HostToWire()
	assert.Equal(t, []byte{0xfe, 0xff}, v.Bytes())

	v.WireToHost()
	v.WireToHost()
	assert.False(t, v.IsWireOrder())
	assert.Equal(t, host, v.Bytes())
}

func TestValueScanWithLimits(t *testing.T) {
	typ := MustParse("{S4 pan;S4 tilt}")
	lo, hi, def := NewValue(typ), NewValue(typ), NewValue(typ)
	require.NoError(t, lo.Scan("{-10,-20}", 0, ValueLimits{}))
	require.NoError(t, hi.Scan("{10,20}", 0, ValueLimits{}))
	require.NoError(t, def.Scan("{1,2}", 0, ValueLimits{}))
	limits := ValueLimits{Minimum: lo, Maximum: hi, Default: def}

	v := NewValue(typ)
	require.NoError(t, v.Scan("{pan=maximum, tilt=minimum}", 0, limits))
	assert.Equal(t, "{pan=10,tilt=-20}", v.String())
	require.NoError(t, v.Scan("default", 0, limits))
	assert.True(t, v.Equal(def))

	other := MustParse("{S2 pan;S2 tilt}")
	err := v.Scan("default", ShowWarnings, ValueLimits{Default: NewValue(other)})
	assert.ErrorIs(t, err, ErrNoLimit)
}

func TestValueCopyFrom(t *testing.T) {
	a, _ := ParseValue("{S2 a;U1 b}")
	b, _ := ParseValue("{S2 x;U1 y}")
	c, _ := ParseValue("{U2 a;U1 b}")

	require.NoError(t, b.Scan("{x=-7,y=3}", 0, ValueLimits{}))
	b.HostToWire()
	require.NoError(t, a.CopyFrom(b))
	assert.True(t, a.IsWireOrder())
	assert.Equal(t, b.Bytes(), a.Bytes())
	assert.True(t, a.Equal(b))

	assert.ErrorIs(t, c.CopyFrom(b), ErrTypeMismatch)
	assert.ErrorIs(t, a.CopyFrom(nil), ErrTypeMismatch)
	assert.False(t, c.Equal(a))
	assert.False(t, a.Equal(nil))
}

func TestValueEqual(t *testing.T) {
	a, _ := ParseValue("{S4 pan;S4 tilt}")
	b, _ := ParseValue("{S4 x;S4 y}")
	assert.True(t, a.Equal(b))
	a.Bytes()[3] = 1
	assert.False(t, a.Equal(b))
}

func TestValueClone(t *testing.T) {
	v, _ := ParseValue("{U2}")
	v.SetUint(0, 300)
	c := v.Clone()
	assert.True(t, c.Equal(v))
	c.SetUint(0, 1)
	assert.Equal(t, "300", v.String())
	assert.Equal(t, "1", c.String())
}

func TestValueIntAccessors(t *testing.T) {
	v, _ := ParseValue("{S1 pan;U1 pan-speed;S4 tilt}")
	require.True(t, v.SetInt(0, -3))
	require.True(t, v.SetUint(1, 0x1ff))
	require.True(t, v.SetInt(2, -70000))
	assert.False(t, v.SetInt(3, 1))

	pan, ok := v.Int(0)
	assert.True(t, ok)
	assert.Equal(t, int64(-3), pan)
	speed, _ := v.Uint(1)
	assert.Equal(t, uint64(0xff), speed)
	tilt, _ := v.Int(2)
	assert.Equal(t, int64(-70000), tilt)
	_, ok = v.Uint(9)
	assert.False(t, ok)

	assert.Equal(t, "{pan=-3,pan-speed=255,tilt=-70000}", v.String())
}
