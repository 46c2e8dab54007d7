package seq

import "fmt"

// EncodingError is returned when a symbol is not part of the target
// alphabet.
type EncodingError struct {
	Symbol string
}

func (e EncodingError) Error() string {
	return fmt.Sprintf("seq: symbol %q is not in the alphabet", e.Symbol)
}

// DecodingError is returned when a code lies outside the valid range
// [0, alphabet size) of the alphabet used to decode it.
type DecodingError struct {
	Code uint64
	Size int
}

func (e DecodingError) Error() string {
	return fmt.Sprintf("seq: code %d is out of range for an alphabet of "+
		"size %d", e.Code, e.Size)
}

// IncompatibleAlphabetsError is returned by Concat when neither operand's
// alphabet extends the other's.
type IncompatibleAlphabetsError struct {
	A, B *Alphabet
}

func (e IncompatibleAlphabetsError) Error() string {
	return fmt.Sprintf("seq: alphabets %v and %v are not compatible",
		e.A, e.B)
}
