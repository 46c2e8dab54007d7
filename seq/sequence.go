package seq

import "fmt"

// A Sequence is an ordered, mutable succession of symbols over a fixed
// alphabet, stored as a code array at the alphabet's minimal width.
//
// The alphabet a sequence carries determines its kind: two sequences are
// comparable, and their concatenation meaningful, only in terms of their
// alphabets. The alphabet reference is shared, never copied; the code array
// is owned exclusively by the sequence.
type Sequence struct {
	alph *Alphabet
	code CodeArray
}

// New creates a sequence over the given alphabet by encoding symbols. An
// EncodingError is returned for the first symbol not in the alphabet.
func New(alph *Alphabet, symbols []string) (*Sequence, error) {
	codes, err := alph.EncodeAll(symbols)
	if err != nil {
		return nil, err
	}
	return &Sequence{alph: alph, code: codes}, nil
}

// NewFromString creates a sequence from one symbol per byte of s. It is
// shorthand for New for alphabets of single-letter symbols.
func NewFromString(alph *Alphabet, s string) (*Sequence, error) {
	symbols := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		symbols[i] = string(s[i])
	}
	return New(alph, symbols)
}

// NewFromCode creates a sequence that takes ownership of the given code
// array. The array is cast to the alphabet's minimal width but its values
// are not validated; call IsValid before decoding if the codes are
// untrusted.
func NewFromCode(alph *Alphabet, code CodeArray) *Sequence {
	return &Sequence{alph: alph, code: code.Cast(WidthFor(alph.Len()))}
}

// Alphabet returns the sequence's alphabet.
func (s *Sequence) Alphabet() *Alphabet {
	return s.alph
}

// Code returns the internal code array without copying. The returned array
// aliases the sequence: writing through it mutates the sequence.
func (s *Sequence) Code() CodeArray {
	return s.code
}

// SetCode replaces the code array, casting it to the alphabet's minimal
// width. Ownership of the array transfers to the sequence. Values are not
// checked against the alphabet; an out-of-range code surfaces only from
// IsValid or a decoding operation.
func (s *Sequence) SetCode(code CodeArray) {
	s.code = code.Cast(WidthFor(s.alph.Len()))
}

// Symbols decodes the full code array.
func (s *Sequence) Symbols() ([]string, error) {
	return s.alph.DecodeAll(s.code)
}

// SetSymbols re-encodes the given symbols and replaces the code array.
func (s *Sequence) SetSymbols(symbols []string) error {
	codes, err := s.alph.EncodeAll(symbols)
	if err != nil {
		return err
	}
	s.code = codes
	return nil
}

// Len returns the number of positions in the sequence.
func (s *Sequence) Len() int {
	return s.code.Len()
}

// At decodes the symbol at position i.
func (s *Sequence) At(i int) (string, error) {
	return s.alph.Decode(s.code.At(i))
}

// SetAt encodes a single symbol and stores it at position i.
func (s *Sequence) SetAt(i int, symbol string) error {
	code, err := s.alph.Encode(symbol)
	if err != nil {
		return err
	}
	s.code.Set(i, code)
	return nil
}

// Subsequence returns a new sequence of the same kind holding a copy of the
// codes in [start, end).
func (s *Sequence) Subsequence(start, end int) *Sequence {
	return s.CopyWithCode(s.code.Slice(start, end))
}

// Select returns a new sequence holding the codes at the given positions,
// in the given order.
func (s *Sequence) Select(indices []int) *Sequence {
	return s.CopyWithCode(s.code.Select(indices))
}

// SelectMask returns a new sequence holding the codes at positions where
// mask is true. The mask must cover the whole sequence.
func (s *Sequence) SelectMask(mask []bool) *Sequence {
	return s.CopyWithCode(s.code.SelectMask(mask))
}

// SetRange overwrites positions [start, end) with src's raw codes. No
// re-encoding and no validation happens: if src's alphabet is neither an
// extension nor a prefix of s's, the result may be invalid, detectable only
// via IsValid. This mirrors raw code assignment and is the caller's
// responsibility.
func (s *Sequence) SetRange(start, end int, src *Sequence) error {
	return s.SetRangeCodes(start, end, src.code)
}

// SetRangeCodes overwrites positions [start, end) with the given raw codes.
// The range must lie within the sequence and the number of codes must match
// its size; nothing is written otherwise.
func (s *Sequence) SetRangeCodes(start, end int, codes CodeArray) error {
	if start < 0 || start > end || end > s.Len() {
		return fmt.Errorf("seq: range [%d:%d] is out of bounds for a "+
			"sequence of length %d", start, end, s.Len())
	}
	if codes.Len() != end-start {
		return fmt.Errorf("seq: cannot assign %d codes to %d positions",
			codes.Len(), end-start)
	}
	s.code.SetFrom(start, codes)
	return nil
}

// SetRangeSymbols encodes the given symbols and overwrites positions
// [start, end) with them.
func (s *Sequence) SetRangeSymbols(start, end int, symbols []string) error {
	codes, err := s.alph.EncodeAll(symbols)
	if err != nil {
		return err
	}
	return s.SetRangeCodes(start, end, codes)
}

// Reverse returns a new sequence of the same kind with the code array in
// reverse order. The receiver is not modified.
func (s *Sequence) Reverse() *Sequence {
	return s.CopyWithCode(s.code.Reverse())
}

// IsValid reports whether every code lies in [0, alphabet size). Sequences
// whose codes were set through SetCode or SetRange may be invalid; decoding
// them fails, and alignment consumers indexing by code would read out of
// bounds.
func (s *Sequence) IsValid() bool {
	size := uint64(s.alph.Len())
	for i := 0; i < s.code.Len(); i++ {
		if s.code.At(i) >= size {
			return false
		}
	}
	return true
}

// A SymbolCount pairs an alphabet symbol with its number of occurrences in
// a sequence.
type SymbolCount struct {
	Symbol string
	Count  int
}

// SymbolFrequency counts the occurrences of every alphabet symbol in the
// sequence, including symbols that do not occur. The result is ordered by
// alphabet position. Out-of-range codes are not counted.
func (s *Sequence) SymbolFrequency() []SymbolCount {
	counts := make([]SymbolCount, s.alph.Len())
	for i, sym := range s.alph.symbols {
		counts[i].Symbol = sym
	}
	for i := 0; i < s.code.Len(); i++ {
		if c := s.code.At(i); c < uint64(len(counts)) {
			counts[c].Count++
		}
	}
	return counts
}

// Equal reports whether the two sequences have equal alphabets and
// element-wise equal code arrays. A sequence never equals a plain string or
// symbol list; equality is defined on the coded representation only.
func (s *Sequence) Equal(other *Sequence) bool {
	if other == nil {
		return false
	}
	return s.alph.Equal(other.alph) && s.code.Equal(other.code)
}

// String decodes the sequence into the concatenation of its symbols.
// It panics if the sequence holds an invalid code; callers that manipulate
// raw codes must confirm IsValid first.
func (s *Sequence) String() string {
	symbols, err := s.Symbols()
	if err != nil {
		panic(err)
	}
	str := ""
	for _, sym := range symbols {
		str += sym
	}
	return str
}

// Concat returns the concatenation of s and other. The operand whose
// alphabet extends the other's determines the kind and alphabet of the
// result; if neither alphabet extends the other, an
// IncompatibleAlphabetsError is returned. Both code arrays are kept as-is,
// which is sound because extension guarantees code equivalence up to the
// smaller alphabet's size.
func (s *Sequence) Concat(other *Sequence) (*Sequence, error) {
	var general *Sequence
	switch {
	case s.alph.Extends(other.alph):
		general = s
	case other.alph.Extends(s.alph):
		general = other
	default:
		return nil, IncompatibleAlphabetsError{A: s.alph, B: other.alph}
	}
	joined := NewCodeArray(WidthFor(general.alph.Len()), s.Len()+other.Len())
	joined.SetFrom(0, s.code)
	joined.SetFrom(s.Len(), other.code)
	return general.CopyWithCode(joined), nil
}

// Copy returns a new sequence of the same kind with a deep copy of the code
// array.
func (s *Sequence) Copy() *Sequence {
	return s.CopyWithCode(s.code.Clone())
}

// CopyWithCode returns a new sequence of the same kind that takes ownership
// of the given code array instead of copying the receiver's. Slicing,
// reversal and concatenation are built on this to avoid redundant copies.
func (s *Sequence) CopyWithCode(code CodeArray) *Sequence {
	return &Sequence{alph: s.alph, code: code.Cast(WidthFor(s.alph.Len()))}
}
