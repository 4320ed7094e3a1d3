package uvctype

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// ScanFlags select the diagnostics logged while scanning. They never change
// whether a scan succeeds.
type ScanFlags uint32

const (
	ShowWarnings ScanFlags = 1 << iota
	ShowInfo
)

func (f ScanFlags) warn(msg string, args ...any) {
	if f&ShowWarnings != 0 {
		slog.Warn(msg, args...)
	}
}

func (f ScanFlags) info(msg string, args ...any) {
	if f&ShowInfo != 0 {
		slog.Info(msg, args...)
	}
}

// Limits are the device supplied payloads that the keywords "minimum",
// "maximum" and "default" stand for. Each is either nil or a host order
// buffer laid out by the same Type.
type Limits struct {
	Minimum  []byte
	Maximum  []byte
	StepSize []byte
	Default  []byte
}

type keyword struct {
	word string
	pick func(Limits) []byte
}

var keywords = []keyword{
	{"default", func(l Limits) []byte { return l.Default }},
	{"minimum", func(l Limits) []byte { return l.Minimum }},
	{"maximum", func(l Limits) []byte { return l.Maximum }},
}

// matchKeyword compares the first seven characters of s against the keywords.
// Longer words sharing the prefix, such as "defaults", match as well.
func matchKeyword(s string) (keyword, bool) {
	for _, kw := range keywords {
		if hasPrefixFold(s, kw.word) {
			return kw, true
		}
	}
	return keyword{}, false
}

var booleanLiterals = []struct {
	text  string
	value byte
}{
	{"y", 1}, {"yes", 1}, {"true", 1}, {"t", 1}, {"1", 1},
	{"n", 0}, {"no", 0}, {"false", 0}, {"f", 0}, {"0", 0},
}

// matchBoolean returns the value of the longest boolean literal prefixing s and
// its length, or a zero length when none matches.
func matchBoolean(s string) (byte, int) {
	var value byte
	n := 0
	for _, l := range booleanLiterals {
		if len(l.text) > n && hasPrefixFold(s, l.text) {
			value, n = l.value, len(l.text)
		}
	}
	return value, n
}

// Scan parses text into buf, which must be Size() bytes long. The result is in
// host byte order.
//
// The whole value may be one of the keywords "default", "minimum" or
// "maximum", which copies the matching limit. A single-field type accepts a
// bare value. Otherwise the text is a brace enclosed list of values, either
// positional ("{10, -5}") or named ("{tilt=-5, pan=10}"). Every field must
// be given before the closing brace. Each value is a keyword, a boolean literal for boolean fields, or
// a decimal, 0x-prefixed hexadecimal or 0-prefixed octal integer which is
// truncated to the width of its field.
//
// Fields scanned before an error keep their new contents.
func (t *Type) Scan(text string, buf []byte, flags ScanFlags, limits Limits) error {
	if err := t.checkSize(buf); err != nil {
		return err
	}
	limits = t.usableLimits(limits, flags)
	err := t.scan(text, buf, flags, limits)
	if err != nil {
		flags.warn("uvctype: scan failed", "type", t.String(), "text", text, "error", err)
	}
	return err
}

func (t *Type) usableLimits(l Limits, flags ScanFlags) Limits {
	check := func(name string, b []byte) []byte {
		if b != nil && len(b) != t.Size() {
			flags.warn("uvctype: ignoring limit of the wrong size", "limit", name, "size", len(b), "want", t.Size())
			return nil
		}
		return b
	}
	return Limits{
		Minimum:  check("minimum", l.Minimum),
		Maximum:  check("maximum", l.Maximum),
		StepSize: check("step-size", l.StepSize),
		Default:  check("default", l.Default),
	}
}

func (t *Type) scan(text string, buf []byte, flags ScanFlags, limits Limits) error {
	c := &cursor{s: text}
	c.skipSpace()

	if kw, ok := matchKeyword(c.rest()); ok {
		src := kw.pick(limits)
		if src == nil {
			return scanError(fmt.Errorf("%w: %s", ErrNoLimit, kw.word), c)
		}
		copy(buf, src)
		flags.info("uvctype: scanned keyword", "keyword", kw.word, "type", t.String())
		return nil
	}

	if len(t.fields) == 1 && c.peek() != '{' {
		return t.scanField(c, buf, 0, flags, limits)
	}

	if c.peek() != '{' {
		return scanError(ErrMissingOpenBrace, c)
	}
	c.pos++
	named := strings.IndexByte(c.rest(), '=') >= 0

	assigned := make([]bool, len(t.fields))
	for slot := 0; slot < len(t.fields); slot++ {
		c.skipSpace()
		if c.eof() {
			return scanError(ErrMissingCloseBrace, c)
		}
		if c.peek() == '}' {
			break
		}
		i := slot
		if named {
			j := strings.IndexByte(c.rest(), '=')
			if j < 0 {
				return scanError(fmt.Errorf("%w: expected name=value", ErrSyntax), c)
			}
			name := strings.TrimRight(c.rest()[:j], " \t\n\r\f\v")
			if i = t.IndexOf(name); i == InvalidIndex {
				return scanError(fmt.Errorf("%w %q", ErrUnknownField, name), c)
			}
			c.pos += j + 1
		}
		if err := t.scanField(c, buf, i, flags, limits); err != nil {
			return err
		}
		assigned[i] = true
		c.skip(isValueSeparator)
	}
	c.skipSpace()
	if c.peek() != '}' {
		return scanError(ErrMissingCloseBrace, c)
	}

	for i, ok := range assigned {
		if !ok {
			return scanError(fmt.Errorf("%w: %q", ErrIncomplete, t.fields[i].Name), c)
		}
	}
	return nil
}

// scanField parses one component at the cursor into field i of buf.
func (t *Type) scanField(c *cursor, buf []byte, i int, flags ScanFlags, limits Limits) error {
	f := t.fields[i]
	dst := t.span(buf, i)
	c.skipSpace()

	if kw, ok := matchKeyword(c.rest()); ok {
		src := kw.pick(limits)
		if src == nil {
			return scanError(fmt.Errorf("%w: %s for field %q", ErrNoLimit, kw.word, f.Name), c)
		}
		copy(dst, t.span(src, i))
		c.pos += len(kw.word)
		flags.info("uvctype: scanned field keyword", "field", f.Name, "keyword", kw.word)
		return nil
	}

	if f.Type == Boolean {
		if v, n := matchBoolean(c.rest()); n > 0 {
			dst[0] = v
			c.pos += n
			return nil
		}
	}

	v, n, err := parseInteger(c.rest())
	if n == 0 {
		return scanError(fmt.Errorf("%w: expected a value for field %q", ErrSyntax, f.Name), c)
	}
	if err != nil {
		flags.warn("uvctype: integer out of range, saturated", "field", f.Name, "text", c.rest()[:n])
	}
	store(binary.NativeEndian, dst, v)
	c.pos += n
	return nil
}

// parseInteger parses the longest integer prefix of s. It accepts an optional
// sign followed by a 0x-prefixed hexadecimal, 0-prefixed octal or decimal
// number. The result carries the two's complement bits of the value, so
// callers truncate it to their width. Values below math.MinInt64 or above
// math.MaxUint64 saturate and are reported with strconv.ErrRange. A zero length means no number was found.
func parseInteger(s string) (uint64, int, error) {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	base := 10
	if i < len(s) && s[i] == '0' {
		if i+2 < len(s) && lower(s[i+1]) == 'x' && digitValue(s[i+2]) < 16 {
			base = 16
			i += 2
		} else {
			base = 8
		}
	}
	start := i
	for i < len(s) && digitValue(s[i]) < base {
		i++
	}
	if i == start {
		return 0, 0, nil
	}

	v, err := strconv.ParseUint(s[start:i], base, 64)
	switch {
	case neg && (errors.Is(err, strconv.ErrRange) || v > 1<<63):
		return 1 << 63, i, strconv.ErrRange
	case errors.Is(err, strconv.ErrRange):
		return math.MaxUint64, i, err
	case neg:
		v = -v
	}
	return v, i, nil
}

func digitValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return 99
}

func scanError(err error, c *cursor) error {
	return fmt.Errorf("scan %q: %w at offset %d", c.s, err, c.pos)
}
