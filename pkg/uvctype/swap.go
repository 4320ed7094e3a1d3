package uvctype

import (
	"encoding/binary"
	"fmt"
)

// HostToWire converts buf from host byte order to the little-endian order used
// on the wire. It is a no-op when NeedsByteSwap is false.
func (t *Type) HostToWire(buf []byte) error {
	if err := t.checkSize(buf); err != nil {
		return err
	}
	if t.needsByteSwap {
		t.reorder(buf, binary.NativeEndian, binary.LittleEndian)
	}
	return nil
}

// WireToHost converts buf from wire byte order to host byte order. It is a
// no-op when NeedsByteSwap is false.
func (t *Type) WireToHost(buf []byte) error {
	if err := t.checkSize(buf); err != nil {
		return err
	}
	if t.needsByteSwap {
		t.reorder(buf, binary.LittleEndian, binary.NativeEndian)
	}
	return nil
}

// reorder rewrites every multi-byte field of buf from one byte order to the
// other. Single byte fields are left alone.
func (t *Type) reorder(buf []byte, from, to binary.ByteOrder) {
	for i, f := range t.fields {
		if f.Type.Size() == 1 {
			continue
		}
		b := t.span(buf, i)
		store(to, b, load(from, b))
	}
}

func (t *Type) checkSize(buf []byte) error {
	if len(buf) != t.Size() {
		return fmt.Errorf("%w: have %d bytes, want %d", ErrBufferSize, len(buf), t.Size())
	}
	return nil
}
