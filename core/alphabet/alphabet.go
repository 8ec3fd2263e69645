// core/alphabet/alphabet.go
package alphabet

import (
	"fmt"
	"strings"
)

// Alphabet is an ordered set of single-byte bases. Order is significant:
// Pairs and every key layout derived from it follow declaration order.
type Alphabet struct {
	letters []byte
	mask    [256]bool
}

// New builds an Alphabet from settings-style entries. Every entry must be
// exactly one byte and entries must be unique.
func New(letters []string) (Alphabet, error) {
	a := Alphabet{letters: make([]byte, 0, len(letters))}
	for _, l := range letters {
		if len(l) != 1 {
			return Alphabet{}, fmt.Errorf("alphabet: entry %q is not a single character", l)
		}
		b := l[0]
		if a.mask[b] {
			return Alphabet{}, fmt.Errorf("alphabet: duplicate entry %q", l)
		}
		a.mask[b] = true
		a.letters = append(a.letters, b)
	}
	return a, nil
}

// MustNew is New for fixed alphabets; it panics on invalid entries.
func MustNew(letters ...string) Alphabet {
	a, err := New(letters)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the number of bases.
func (a Alphabet) Len() int { return len(a.letters) }

// Contains reports whether b is a valid base.
func (a Alphabet) Contains(b byte) bool { return a.mask[b] }

// Letters returns the bases in declaration order.
func (a Alphabet) Letters() []string {
	out := make([]string, len(a.letters))
	for i, b := range a.letters {
		out[i] = string(b)
	}
	return out
}

// Pairs returns the cross product of the alphabet with itself, row-major in
// declaration order: for {A,B} that is AA, AB, BA, BB.
func (a Alphabet) Pairs() []string {
	out := make([]string, 0, len(a.letters)*len(a.letters))
	for _, x := range a.letters {
		for _, y := range a.letters {
			out = append(out, string([]byte{x, y}))
		}
	}
	return out
}

func (a Alphabet) String() string { return strings.Join(a.Letters(), "") }
