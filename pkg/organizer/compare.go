package organizer

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/siyuan-infoblox/js-imports-group/pkg/config"
)

// Comparator orders module paths for one sort method.
// It holds a collator and is not safe for concurrent use.
type Comparator struct {
	method   config.SortMethod
	collator *collate.Collator
}

// NewComparator creates a comparator; an unknown method falls back to the default
func NewComparator(method config.SortMethod) *Comparator {
	m, ok := config.ParseSortMethod(string(method))
	if !ok {
		m = config.DefaultSortMethod
	}
	return &Comparator{
		method:   m,
		collator: collate.New(language.Und),
	}
}

// Method returns the effective sort method
func (c *Comparator) Method() config.SortMethod {
	return c.method
}

// Compare returns -1, 0 or +1. Every method falls back to alphabetical order on
// equal length, so only identical paths compare equal.
func (c *Comparator) Compare(a, b string) int {
	switch c.method {
	case config.Alphabetical:
		return c.alphabetical(a, b)
	case config.LengthAsc, config.LengthThenAlpha:
		if d := sign(utf16Len(a) - utf16Len(b)); d != 0 {
			return d
		}
		return c.alphabetical(a, b)
	default: // length-desc
		if d := sign(utf16Len(b) - utf16Len(a)); d != 0 {
			return d
		}
		return c.alphabetical(a, b)
	}
}

// alphabetical uses root-locale collation, then byte order so distinct strings never tie
func (c *Comparator) alphabetical(a, b string) int {
	if d := c.collator.CompareString(a, b); d != 0 {
		return d
	}
	return strings.Compare(a, b)
}

// Compare orders two module paths with a freshly built comparator
func Compare(a, b string, method config.SortMethod) int {
	return NewComparator(method).Compare(a, b)
}

// utf16Len counts UTF-16 code units, the unit editors measure string length in
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

func sign(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}
