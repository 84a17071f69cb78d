package avatar

import (
	"strconv"
	"strings"
)

// SeedLen is the number of digits in a seed.
const SeedLen = 8

// Digits holds the decoded seed values in SeedFields order.
type Digits [SeedLen]int

// Encode concatenates the eight seed fields in decimal. Range enforcement is
// the caller's job; a field outside 0-9 produces a longer string.
func Encode(a Attributes) string {
	var b strings.Builder
	b.Grow(SeedLen)
	for _, f := range SeedFields {
		b.WriteString(strconv.Itoa(getInt(a, f)))
	}
	return b.String()
}

// Decode maps any text onto eight digits: pad right with '0' to SeedLen
// characters, keep the first SeedLen characters, parse each position. A
// character that is not a decimal digit decodes to 0.
func Decode(text string) Digits {
	var d Digits
	for i, r := range normalizeSeed(text) {
		if r >= '0' && r <= '9' {
			d[i] = int(r - '0')
		}
	}
	return d
}

// SeedValid reports whether Decode uses every character of text as a digit,
// i.e. nothing was zeroed out for being non-numeric.
func SeedValid(text string) bool {
	for _, r := range normalizeSeed(text) {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Apply overwrites the seed fields of a with d.
func (d Digits) Apply(a Attributes) Attributes {
	for i, f := range SeedFields {
		setInt(&a, f, d[i])
	}
	return a
}

// normalizeSeed pads or truncates text to exactly SeedLen runes.
func normalizeSeed(text string) [SeedLen]rune {
	var out [SeedLen]rune
	runes := []rune(text)
	for i := range out {
		out[i] = '0'
		if i < len(runes) {
			out[i] = runes[i]
		}
	}
	return out
}
