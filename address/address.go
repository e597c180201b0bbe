// SPDX-License-Identifier: MIT

// Package address labels traversal results with the word of generator
// symbols that produced them (a "fractal address" in Indra's Pearls terms).
//
// Forward symbols print as a, b, c, …; inverse symbols as A, B, C, ….
// Composition is plain concatenation: adjacent inverse pairs are NOT
// cancelled. Traversal engines only ever inspect the last symbol, so global
// reduction is unnecessary; an Address is a label and is never used to
// recompute a transform.
package address

import (
	"fmt"
	"strings"
)

// alphabet is the number of generators that get a single-letter name.
const alphabet = 26

// Symbol is one letter of a word: generator Index applied forward or inverted.
type Symbol struct {
	Index   int
	Inverse bool
}

// Forward returns the forward symbol for generator i.
func Forward(i int) Symbol {
	return Symbol{Index: i}
}

// Backward returns the inverse symbol for generator i.
func Backward(i int) Symbol {
	return Symbol{Index: i, Inverse: true}
}

// Flip returns the symbol with its direction reversed.
func (s Symbol) Flip() Symbol {
	return Symbol{Index: s.Index, Inverse: !s.Inverse}
}

// IsInversePair reports whether a and b cancel (x followed by X or X by x).
func IsInversePair(a, b Symbol) bool {
	return a.Index == b.Index && a.Inverse != b.Inverse
}

// String returns a lower-case letter for forward symbols and an upper-case
// letter for inverse ones. Generators past z fall back to g27 / G27.
func (s Symbol) String() string {
	if s.Index >= 0 && s.Index < alphabet {
		base := 'a'
		if s.Inverse {
			base = 'A'
		}

		return string(base + rune(s.Index))
	}
	if s.Inverse {
		return fmt.Sprintf("G%d", s.Index+1)
	}

	return fmt.Sprintf("g%d", s.Index+1)
}

// Address is an immutable word of symbols. The zero value is the empty word.
type Address struct {
	symbols []Symbol
}

// New returns the word made of symbols, in order.
func New(symbols ...Symbol) Address {
	if len(symbols) == 0 {
		return Address{}
	}

	return Address{symbols: append([]Symbol(nil), symbols...)}
}

// Empty returns the empty word.
func Empty() Address {
	return Address{}
}

// Len returns the number of symbols.
func (w Address) Len() int {
	return len(w.symbols)
}

// Symbols returns a copy of the symbols.
func (w Address) Symbols() []Symbol {
	return append([]Symbol(nil), w.symbols...)
}

// Leftmost returns the first symbol; ok is false for the empty word.
func (w Address) Leftmost() (Symbol, bool) {
	if len(w.symbols) == 0 {
		return Symbol{}, false
	}

	return w.symbols[0], true
}

// Rightmost returns the last symbol; ok is false for the empty word.
func (w Address) Rightmost() (Symbol, bool) {
	if len(w.symbols) == 0 {
		return Symbol{}, false
	}

	return w.symbols[len(w.symbols)-1], true
}

// Append returns w followed by s.
func (w Address) Append(s Symbol) Address {
	out := make([]Symbol, len(w.symbols)+1)
	copy(out, w.symbols)
	out[len(w.symbols)] = s

	return Address{symbols: out}
}

// Compose returns the concatenation w ++ v. No cancellation is performed.
func (w Address) Compose(v Address) Address {
	if len(w.symbols)+len(v.symbols) == 0 {
		return Address{}
	}
	out := make([]Symbol, 0, len(w.symbols)+len(v.symbols))
	out = append(out, w.symbols...)
	out = append(out, v.symbols...)

	return Address{symbols: out}
}

// Identity implements algebra.Monoid.
func (Address) Identity() Address {
	return Address{}
}

// Inverse reverses the word and flips every symbol.
func (w Address) Inverse() Address {
	if len(w.symbols) == 0 {
		return Address{}
	}
	n := len(w.symbols)
	out := make([]Symbol, n)
	for i, s := range w.symbols {
		out[n-1-i] = s.Flip()
	}

	return Address{symbols: out}
}

// Equal reports symbol-by-symbol equality.
func (w Address) Equal(v Address) bool {
	if len(w.symbols) != len(v.symbols) {
		return false
	}
	for i := range w.symbols {
		if w.symbols[i] != v.symbols[i] {
			return false
		}
	}

	return true
}

// String concatenates the symbol names; the empty word prints as "".
func (w Address) String() string {
	var sb strings.Builder
	for _, s := range w.symbols {
		sb.WriteString(s.String())
	}

	return sb.String()
}
