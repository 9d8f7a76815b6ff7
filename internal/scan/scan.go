// Package scan implements the lexical primitives shared by the OBJ and MTL
// tokenizers: a moving cursor over a line's bytes that parses signed
// integers, floats, and 2/3-component tuples without allocating.
package scan

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Cursor walks a byte slice left to right, consuming tokens as it goes.
type Cursor struct {
	b   []byte
	pos int
}

// New returns a cursor positioned at the start of b.
func New(b []byte) *Cursor { return &Cursor{b: b} }

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// SkipSpace advances past any run of spaces/tabs.
func (c *Cursor) SkipSpace() {
	for c.pos < len(c.b) && isSpace(c.b[c.pos]) {
		c.pos++
	}
}

// Done reports whether the cursor has consumed the whole buffer.
func (c *Cursor) Done() bool { return c.pos >= len(c.b) }

// Int parses an optionally-signed base-10 integer starting at the cursor,
// skipping leading whitespace. It returns ok=false without advancing the
// cursor if no digit is present.
func (c *Cursor) Int() (v int, ok bool) {
	c.SkipSpace()
	start := c.pos
	sign := 1
	i := c.pos
	if i < len(c.b) && (c.b[i] == '+' || c.b[i] == '-') {
		if c.b[i] == '-' {
			sign = -1
		}
		i++
	}
	digitsStart := i
	for i < len(c.b) && isDigit(c.b[i]) {
		v = v*10 + int(c.b[i]-'0')
		i++
	}
	if i == digitsStart {
		c.pos = start
		return 0, false
	}
	c.pos = i
	return v * sign, true
}

// Float parses an optionally-signed decimal float with an optional
// fractional part and exponent, locale-independent (always '.' as the
// decimal point).
func (c *Cursor) Float() (v float32, ok bool) {
	c.SkipSpace()
	start := c.pos
	i := c.pos
	n := len(c.b)
	sawDigits := false

	if i < n && (c.b[i] == '+' || c.b[i] == '-') {
		i++
	}
	for i < n && isDigit(c.b[i]) {
		i++
		sawDigits = true
	}
	if i < n && c.b[i] == '.' {
		i++
		for i < n && isDigit(c.b[i]) {
			i++
			sawDigits = true
		}
	}
	if !sawDigits {
		c.pos = start
		return 0, false
	}
	if i < n && (c.b[i] == 'e' || c.b[i] == 'E') {
		j := i + 1
		if j < n && (c.b[j] == '+' || c.b[j] == '-') {
			j++
		}
		expStart := j
		for j < n && isDigit(c.b[j]) {
			j++
		}
		if j > expStart {
			i = j
		}
	}

	f, parsed := parseFloatBytes(c.b[start:i])
	if !parsed {
		c.pos = start
		return 0, false
	}
	c.pos = i
	return f, true
}

// Vec2 parses two whitespace-separated floats.
func (c *Cursor) Vec2() (v mgl32.Vec2, ok bool) {
	x, ok1 := c.Float()
	y, ok2 := c.Float()
	if !ok1 || !ok2 {
		return mgl32.Vec2{}, false
	}
	return mgl32.Vec2{x, y}, true
}

// Vec3 parses three whitespace-separated floats.
func (c *Cursor) Vec3() (v mgl32.Vec3, ok bool) {
	x, ok1 := c.Float()
	y, ok2 := c.Float()
	z, ok3 := c.Float()
	if !ok1 || !ok2 || !ok3 {
		return mgl32.Vec3{}, false
	}
	return mgl32.Vec3{x, y, z}, true
}

// Vec3Optional parses up to three whitespace-separated floats into dst,
// in place. Missing trailing components leave dst's existing value
// unchanged, matching the MTL -o/-s/-t texture-option grammar.
func (c *Cursor) Vec3Optional(dst mgl32.Vec3) mgl32.Vec3 {
	if x, ok := c.Float(); ok {
		dst[0] = x
	} else {
		return dst
	}
	if y, ok := c.Float(); ok {
		dst[1] = y
	} else {
		return dst
	}
	if z, ok := c.Float(); ok {
		dst[2] = z
	}
	return dst
}

// StrRange consumes the remainder of the cursor's buffer, trimming
// trailing whitespace, and returns it as a string (the cursor is left at
// the end of its buffer).
func (c *Cursor) StrRange() string {
	c.SkipSpace()
	start := c.pos
	end := len(c.b)
	for end > start && isSpace(c.b[end-1]) {
		end--
	}
	c.pos = len(c.b)
	if end <= start {
		return ""
	}
	return string(c.b[start:end])
}

// Consume skips whitespace then advances past one byte equal to want,
// reporting whether it matched.
func (c *Cursor) Consume(want byte) bool {
	c.SkipSpace()
	if c.pos < len(c.b) && c.b[c.pos] == want {
		c.pos++
		return true
	}
	return false
}

// Mark returns the cursor's current position, for use with Reset.
func (c *Cursor) Mark() int { return c.pos }

// Reset rewinds the cursor to a position previously returned by Mark.
func (c *Cursor) Reset(mark int) { c.pos = mark }

// Peek returns the next non-space byte without advancing, and whether one
// exists.
func (c *Cursor) Peek() (byte, bool) {
	i := c.pos
	for i < len(c.b) && isSpace(c.b[i]) {
		i++
	}
	if i >= len(c.b) {
		return 0, false
	}
	return c.b[i], true
}

// Word consumes a single non-whitespace token and returns it.
func (c *Cursor) Word() (string, bool) {
	c.SkipSpace()
	start := c.pos
	for c.pos < len(c.b) && !isSpace(c.b[c.pos]) {
		c.pos++
	}
	if c.pos == start {
		return "", false
	}
	return string(c.b[start:c.pos]), true
}

// parseFloatBytes parses the locale-independent decimal float in b. It is a
// tiny hand-rolled accumulator kept separate from strconv.ParseFloat so the
// cursor never needs to allocate a string for the common single-token case.
func parseFloatBytes(b []byte) (float32, bool) {
	if len(b) == 0 {
		return 0, false
	}
	i := 0
	sign := float32(1)
	if b[i] == '+' || b[i] == '-' {
		if b[i] == '-' {
			sign = -1
		}
		i++
	}
	var mantissa float64
	for i < len(b) && isDigit(b[i]) {
		mantissa = mantissa*10 + float64(b[i]-'0')
		i++
	}
	if i < len(b) && b[i] == '.' {
		i++
		frac := 0.1
		for i < len(b) && isDigit(b[i]) {
			mantissa += float64(b[i]-'0') * frac
			frac /= 10
			i++
		}
	}
	exp := 0
	expSign := 1
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		i++
		if i < len(b) && (b[i] == '+' || b[i] == '-') {
			if b[i] == '-' {
				expSign = -1
			}
			i++
		}
		for i < len(b) && isDigit(b[i]) {
			exp = exp*10 + int(b[i]-'0')
			i++
		}
	}
	result := mantissa
	if exp != 0 {
		scale := pow10(exp)
		if expSign < 0 {
			result /= scale
		} else {
			result *= scale
		}
	}
	return sign * float32(result), true
}

func pow10(n int) float64 {
	r := 1.0
	base := 10.0
	for n > 0 {
		r *= base
		n--
	}
	return r
}
