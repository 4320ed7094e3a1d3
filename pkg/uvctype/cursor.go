package uvctype

// cursor walks a text span. Every accessor is bounds checked so the parsers
// never index past the end of the input.
type cursor struct {
	s   string
	pos int
}

func (c *cursor) eof() bool { return c.pos >= len(c.s) }

// peek returns the current byte, or 0 at end of input.
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.s[c.pos]
}

func (c *cursor) rest() string { return c.s[c.pos:] }

// skip advances past every byte matching fn and returns how many were skipped.
func (c *cursor) skip(fn func(byte) bool) int {
	start := c.pos
	for !c.eof() && fn(c.s[c.pos]) {
		c.pos++
	}
	return c.pos - start
}

// take is skip, returning the skipped text.
func (c *cursor) take(fn func(byte) bool) string {
	start := c.pos
	c.skip(fn)
	return c.s[start:c.pos]
}

func (c *cursor) skipSpace() { c.skip(isSpace) }

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isAlnum(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isNameByte(b byte) bool { return isAlnum(b) || b == '-' }

func isFieldSeparator(b byte) bool { return isSpace(b) || b == ';' }

func isValueSeparator(b byte) bool { return isSpace(b) || b == ',' }

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

// hasPrefixFold reports whether s starts with prefix, ignoring ASCII case.
func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if lower(s[i]) != lower(prefix[i]) {
			return false
		}
	}
	return true
}
