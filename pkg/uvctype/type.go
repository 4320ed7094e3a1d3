// Package uvctype implements the typed payloads carried by UVC control
// requests. A Type is parsed from a short description such as
// "{S4 pan; S4 tilt}" and knows the packed layout of the payload: the field
// names, component types, byte offsets and total size. Types convert payload
// buffers between host and wire (little-endian) byte order, scan them from
// text and format them back to text. A Value pairs a Type with a buffer.
package uvctype

import (
	"fmt"
	"strings"

	"golang.org/x/sys/cpu"
)

// InvalidIndex is returned by lookups that do not match any field.
const InvalidIndex = -1

// The name given to the field of a single-field type that was declared
// without one.
const defaultFieldName = "value"

type Field struct {
	Name string
	Type ComponentType
}

// Type describes the packed layout of a control payload. It is immutable once
// built and may be shared by any number of Values.
type Type struct {
	fields        []Field
	offsets       []int // offsets[len(fields)] is the total size
	needsByteSwap bool
}

// New builds a Type from parallel lists of field names and component types.
func New(names []string, types []ComponentType) (*Type, error) {
	if len(names) != len(types) {
		return nil, fmt.Errorf("%w: %d names, %d types", ErrFieldCount, len(names), len(types))
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrFieldCount, ErrNoFields)
	}
	fields := make([]Field, len(names))
	for i := range names {
		if names[i] == "" || !types[i].Valid() {
			return nil, fmt.Errorf("%w: field %d (%q, %s)", ErrInvalidField, i, names[i], types[i])
		}
		fields[i] = Field{Name: strings.ToLower(names[i]), Type: types[i]}
	}
	return newType(fields)
}

func newType(fields []Field) (*Type, error) {
	t := &Type{fields: fields, offsets: make([]int, len(fields)+1)}
	wide := false
	for i, f := range fields {
		for _, prev := range fields[:i] {
			if prev.Name == f.Name {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateName, f.Name)
			}
		}
		t.offsets[i+1] = t.offsets[i] + f.Type.Size()
		if f.Type.Size() > 1 {
			wide = true
		}
	}
	t.needsByteSwap = wide && cpu.IsBigEndian
	return t, nil
}

// Parse builds a Type from its text description. The description is a brace
// enclosed list of fields separated by whitespace or semicolons. Each field
// is a type code (B, S1, U1, M1, S2, ... M8) followed by a name made of
// letters, digits and dashes. A type with a single field may omit the name,
// in which case the field is called "value". Names are stored lower-cased
// and must be unique.
func Parse(desc string) (*Type, error) {
	c := &cursor{s: desc}
	c.skipSpace()
	if c.peek() != '{' {
		return nil, parseError(ErrMissingOpenBrace, c)
	}
	c.pos++

	var fields []Field
	unnamed := false
	for {
		c.skip(isFieldSeparator)
		if c.eof() {
			return nil, parseError(ErrMissingCloseBrace, c)
		}
		if c.peek() == '}' {
			break
		}
		if unnamed {
			// an unnamed field is only allowed when it is the only one
			return nil, parseError(ErrMissingName, c)
		}
		ct := parseTypeCode(c)
		if ct == Invalid {
			return nil, parseError(ErrUnknownType, c)
		}
		c.skipSpace()
		name := c.take(isNameByte)
		if name == "" {
			if !c.eof() && c.peek() != ';' && c.peek() != '}' {
				return nil, parseError(ErrSyntax, c)
			}
			if len(fields) > 0 {
				return nil, parseError(ErrMissingName, c)
			}
			unnamed = true
			name = defaultFieldName
		}
		fields = append(fields, Field{Name: strings.ToLower(name), Type: ct})
	}
	if len(fields) == 0 {
		return nil, parseError(ErrNoFields, c)
	}
	t, err := newType(fields)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", desc, err)
	}
	return t, nil
}

// MustParse is like Parse but panics on error. It is meant for static tables.
func MustParse(desc string) *Type {
	t, err := Parse(desc)
	if err != nil {
		panic(err)
	}
	return t
}

func parseError(err error, c *cursor) error {
	return fmt.Errorf("parse %q: %w at offset %d", c.s, err, c.pos)
}

func parseTypeCode(c *cursor) ComponentType {
	switch lower(c.peek()) {
	case 'b':
		c.pos++
		return Boolean
	case 's', 'u', 'm':
		if c.pos+2 > len(c.s) {
			return Invalid
		}
		ct := ParseComponentType(c.s[c.pos : c.pos+2])
		if ct != Invalid {
			c.pos += 2
		}
		return ct
	}
	return Invalid
}

func (t *Type) NumFields() int { return len(t.fields) }

// Size returns the size of the packed payload in bytes.
func (t *Type) Size() int { return t.offsets[len(t.fields)] }

// NeedsByteSwap reports whether host and wire order differ for this layout.
func (t *Type) NeedsByteSwap() bool { return t.needsByteSwap }

func (t *Type) Field(i int) (Field, bool) {
	if i < 0 || i >= len(t.fields) {
		return Field{}, false
	}
	return t.fields[i], true
}

// FieldName returns the name of field i, or "" when i is out of range.
func (t *Type) FieldName(i int) string {
	f, _ := t.Field(i)
	return f.Name
}

// FieldType returns the component type of field i, or Invalid when i is out
// of range.
func (t *Type) FieldType(i int) ComponentType {
	f, _ := t.Field(i)
	return f.Type
}

// IndexOf returns the index of the named field, or InvalidIndex.
func (t *Type) IndexOf(name string) int {
	for i, f := range t.fields {
		if strings.EqualFold(f.Name, name) {
			return i
		}
	}
	return InvalidIndex
}

// Offset returns the byte offset of field i, or InvalidIndex.
func (t *Type) Offset(i int) int {
	if i < 0 || i >= len(t.fields) {
		return InvalidIndex
	}
	return t.offsets[i]
}

func (t *Type) OffsetOf(name string) int {
	return t.Offset(t.IndexOf(name))
}

// span returns the bytes of field i within buf.
func (t *Type) span(buf []byte, i int) []byte {
	return buf[t.offsets[i]:t.offsets[i+1]]
}

// Equal reports whether both types have the same component types in the same
// order. Field names do not take part in the comparison.
func (t *Type) Equal(other *Type) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil || len(t.fields) != len(other.fields) {
		return false
	}
	for i := range t.fields {
		if t.fields[i].Type != other.fields[i].Type {
			return false
		}
	}
	return true
}

// String returns the canonical description, which Parse accepts.
func (t *Type) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, f := range t.fields {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(f.Type.String())
		sb.WriteByte(' ')
		sb.WriteString(f.Name)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Summary describes the layout in words, e.g.
// "(signed 32-bit integer pan; signed 32-bit integer tilt)".
func (t *Type) Summary() string {
	if len(t.fields) == 1 {
		return "single value, " + t.fields[0].Type.Description()
	}
	parts := make([]string, len(t.fields))
	for i, f := range t.fields {
		parts[i] = f.Type.Description() + " " + f.Name
	}
	return "(" + strings.Join(parts, "; ") + ")"
}
