package seq

import (
	"fmt"
	"strings"
)

// An Alphabet is a finite ordered set of unique symbols together with the
// bijective mapping onto the codes 0..Len()-1. A symbol's code is its
// position in the ordering.
//
// Alphabets are immutable once constructed and may be shared freely between
// any number of sequences and goroutines.
type Alphabet struct {
	symbols []string
	codes   map[string]uint64
}

// NewAlphabet creates an alphabet from an ordered list of symbols. An error
// is returned if the list contains a duplicate.
func NewAlphabet(symbols []string) (*Alphabet, error) {
	a := &Alphabet{
		symbols: append([]string(nil), symbols...),
		codes:   make(map[string]uint64, len(symbols)),
	}
	for i, sym := range a.symbols {
		if _, ok := a.codes[sym]; ok {
			return nil, fmt.Errorf("seq: duplicate symbol %q at position %d",
				sym, i)
		}
		a.codes[sym] = uint64(i)
	}
	return a, nil
}

// Letters creates an alphabet with one single-character symbol per byte of
// letters, in order. It panics on duplicate characters and exists for the
// package's predefined alphabets and for tests.
func Letters(letters string) *Alphabet {
	symbols := make([]string, len(letters))
	for i := 0; i < len(letters); i++ {
		symbols[i] = string(letters[i])
	}
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the number of symbols in the alphabet.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Symbols returns a copy of the alphabet's symbol ordering.
func (a *Alphabet) Symbols() []string {
	return append([]string(nil), a.symbols...)
}

// Encode returns the code of the given symbol.
func (a *Alphabet) Encode(symbol string) (uint64, error) {
	code, ok := a.codes[symbol]
	if !ok {
		return 0, EncodingError{Symbol: symbol}
	}
	return code, nil
}

// Decode returns the symbol with the given code.
func (a *Alphabet) Decode(code uint64) (string, error) {
	if code >= uint64(len(a.symbols)) {
		return "", DecodingError{Code: code, Size: len(a.symbols)}
	}
	return a.symbols[code], nil
}

// EncodeAll encodes a list of symbols into a code array at the alphabet's
// minimal width. The first unknown symbol aborts the encoding.
func (a *Alphabet) EncodeAll(symbols []string) (CodeArray, error) {
	codes := NewCodeArray(WidthFor(len(a.symbols)), len(symbols))
	for i, sym := range symbols {
		code, ok := a.codes[sym]
		if !ok {
			return CodeArray{}, EncodingError{Symbol: sym}
		}
		codes.Set(i, code)
	}
	return codes, nil
}

// DecodeAll decodes a full code array back into symbols.
func (a *Alphabet) DecodeAll(codes CodeArray) ([]string, error) {
	symbols := make([]string, codes.Len())
	for i := range symbols {
		sym, err := a.Decode(codes.At(i))
		if err != nil {
			return nil, err
		}
		symbols[i] = sym
	}
	return symbols, nil
}

// Extends reports whether other's symbol ordering is a prefix of a's, i.e.
// whether every code valid under other decodes to the same symbol under a.
// Every alphabet extends itself.
func (a *Alphabet) Extends(other *Alphabet) bool {
	if other.Len() > a.Len() {
		return false
	}
	for i, sym := range other.symbols {
		if a.symbols[i] != sym {
			return false
		}
	}
	return true
}

// Equal reports whether the two alphabets have identical symbol orderings.
func (a *Alphabet) Equal(other *Alphabet) bool {
	return a.Len() == other.Len() && a.Extends(other)
}

func (a *Alphabet) String() string {
	return "[" + strings.Join(a.symbols, " ") + "]"
}
