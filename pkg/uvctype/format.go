package uvctype

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// Format renders a host order buffer as text that Scan accepts. A single-field
// type prints the bare value; otherwise the fields are printed as
// "{name=value,name=value}".
func (t *Type) Format(buf []byte) string {
	if len(buf) != t.Size() {
		return "<invalid>"
	}
	if len(t.fields) == 1 {
		return t.formatField(buf, 0)
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, f := range t.fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(f.Name)
		sb.WriteByte('=')
		sb.WriteString(t.formatField(buf, i))
	}
	sb.WriteByte('}')
	return sb.String()
}

func (t *Type) formatField(buf []byte, i int) string {
	ct := t.fields[i].Type
	v := load(binary.NativeEndian, t.span(buf, i))
	switch {
	case ct == Boolean:
		return strconv.FormatBool(v != 0)
	case ct.Signed():
		return strconv.FormatInt(ct.signExtend(v), 10)
	default:
		return strconv.FormatUint(v, 10)
	}
}
