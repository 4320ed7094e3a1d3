package uvctype

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log/slog"
)

// Value is a payload buffer laid out by a Type. The buffer starts zeroed and
// in host byte order; HostToWire and WireToHost track which order it holds.
// A Value is not safe for concurrent use.
type Value struct {
	typ  *Type
	buf  []byte
	wire bool
}

func NewValue(t *Type) *Value {
	return &Value{typ: t, buf: make([]byte, t.Size())}
}

// ParseValue parses a type description and returns a zeroed Value of it.
func ParseValue(desc string) (*Value, error) {
	t, err := Parse(desc)
	if err != nil {
		return nil, err
	}
	return NewValue(t), nil
}

func (v *Value) Type() *Type { return v.typ }

func (v *Value) Size() int { return len(v.buf) }

// Bytes returns the live buffer. Writes through it change the value.
func (v *Value) Bytes() []byte { return v.buf }

// FieldAt returns the bytes of field i, aliasing the buffer, or nil when i is
// out of range.
func (v *Value) FieldAt(i int) []byte {
	if i < 0 || i >= v.typ.NumFields() {
		return nil
	}
	return v.typ.span(v.buf, i)
}

// FieldNamed returns the bytes of the named field, or nil.
func (v *Value) FieldNamed(name string) []byte {
	return v.FieldAt(v.typ.IndexOf(name))
}

// IsWireOrder reports whether the buffer currently holds wire byte order.
func (v *Value) IsWireOrder() bool { return v.wire }

func (v *Value) HostToWire() {
	if v.wire {
		return
	}
	// the buffer length always matches the type
	_ = v.typ.HostToWire(v.buf)
	v.wire = true
}

func (v *Value) WireToHost() {
	if !v.wire {
		return
	}
	_ = v.typ.WireToHost(v.buf)
	v.wire = false
}

// ValueLimits are the Value counterparts of Limits. Any of them may be nil.
type ValueLimits struct {
	Minimum  *Value
	Maximum  *Value
	StepSize *Value
	Default  *Value
}

func (l ValueLimits) bytesFor(t *Type, flags ScanFlags) Limits {
	pick := func(name string, lv *Value) []byte {
		if lv == nil {
			return nil
		}
		if !lv.typ.Equal(t) {
			flags.warn("uvctype: ignoring limit of a different type", "limit", name, "type", lv.typ.String(), "want", t.String())
			return nil
		}
		return lv.buf
	}
	return Limits{
		Minimum:  pick("minimum", l.Minimum),
		Maximum:  pick("maximum", l.Maximum),
		StepSize: pick("step-size", l.StepSize),
		Default:  pick("default", l.Default),
	}
}

// Scan parses text into the buffer using the Type's syntax. The buffer is
// expected to be in host order, as are the limits.
func (v *Value) Scan(text string, flags ScanFlags, limits ValueLimits) error {
	if v.wire {
		flags.warn("uvctype: scanning into a value in wire order", "type", v.typ.String())
	}
	return v.typ.Scan(text, v.buf, flags, limits.bytesFor(v.typ, flags))
}

// String formats the buffer, which is expected to be in host order.
func (v *Value) String() string { return v.typ.Format(v.buf) }

// CopyFrom copies the bytes and byte order of src. Both values must have equal
// types.
func (v *Value) CopyFrom(src *Value) error {
	if src == nil {
		return fmt.Errorf("%w: no source value", ErrTypeMismatch)
	}
	if !v.typ.Equal(src.typ) {
		return fmt.Errorf("%w: %s and %s", ErrTypeMismatch, v.typ, src.typ)
	}
	copy(v.buf, src.buf)
	v.wire = src.wire
	return nil
}

// Equal reports whether both values have equal types and identical bytes.
func (v *Value) Equal(other *Value) bool {
	if other == nil {
		return false
	}
	return v.typ.Equal(other.typ) && bytes.Equal(v.buf, other.buf)
}

func (v *Value) Clone() *Value {
	c := &Value{typ: v.typ, buf: make([]byte, len(v.buf)), wire: v.wire}
	copy(c.buf, v.buf)
	return c
}

// Uint returns field i in host order, zero extended.
func (v *Value) Uint(i int) (uint64, bool) {
	b := v.FieldAt(i)
	if b == nil {
		return 0, false
	}
	return load(binary.NativeEndian, b), true
}

// Int returns field i in host order, sign extended for signed types.
func (v *Value) Int(i int) (int64, bool) {
	u, ok := v.Uint(i)
	if !ok {
		return 0, false
	}
	if ct := v.typ.FieldType(i); ct.Signed() {
		return ct.signExtend(u), true
	}
	return int64(u), true
}

// SetUint stores x into field i in host order, truncated to the field width.
func (v *Value) SetUint(i int, x uint64) bool {
	b := v.FieldAt(i)
	if b == nil {
		return false
	}
	store(binary.NativeEndian, b, x)
	return true
}

func (v *Value) SetInt(i int, x int64) bool { return v.SetUint(i, uint64(x)) }

// LogValue lets a Value be passed directly as a slog attribute.
func (v *Value) LogValue() slog.Value {
	return slog.StringValue(v.String())
}
