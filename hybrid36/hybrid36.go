/*
Package hybrid36 implements the hybrid-36 numbering scheme used by the PDB
format for fixed-width identifier fields that outgrow plain decimal, such as
atom serial numbers beyond 99999.

A hybrid-36 field of a given width counts in decimal as long as the number
fits. Larger numbers continue in base 36, first through a block whose most
significant digit is an upper case letter, then through an equally sized
lower case block. For width 5 this extends the range from 99999 to
87440031.
*/
package hybrid36

import (
	"fmt"
	"strconv"
	"strings"
)

// A RangeError reports a number that cannot be encoded in the requested
// field width.
type RangeError struct {
	Number int
	Width  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("hybrid36: number %d is not encodable in %d "+
		"characters", e.Number, e.Width)
}

// Max returns the largest number encodable in a field of the given width:
// the decimal range plus one upper case and one lower case base-36 block.
func Max(width int) int {
	return pow10(width) + 2*26*pow36(width-1) - 1
}

// Encode produces the fixed-width hybrid-36 representation of number.
// Numbers within the plain decimal range of the field are returned as
// zero-padded decimal. Negative numbers and numbers above Max(width) yield
// a RangeError.
func Encode(number, width int) (string, error) {
	if number < 0 {
		return "", &RangeError{Number: number, Width: width}
	}
	if number < pow10(width) {
		return fmt.Sprintf("%0*d", width, number), nil
	}
	// Offset into the letter blocks. Within a block, values are shifted so
	// that the first element reads as a letter followed by zeros, e.g.
	// "A000" for 10000 at width 4.
	rest := number - pow10(width)
	block := 26 * pow36(width-1)
	shift := 10 * pow36(width-1)
	if rest < block {
		return encodeBase36(rest+shift, width, 'A'), nil
	}
	rest -= block
	if rest < block {
		return encodeBase36(rest+shift, width, 'a'), nil
	}
	return "", &RangeError{Number: number, Width: width}
}

// Decode is the inverse of Encode. The field width is taken from the length
// of s including any leading spaces; the padded forms "   5" and "0005"
// both decode to 5 at width 4.
func Decode(s string) (int, error) {
	width := len(s)
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, fmt.Errorf("hybrid36: cannot decode empty field")
	}
	shift := 10 * pow36(width-1)
	switch c := t[0]; {
	case c >= 'A' && c <= 'Z':
		// Letter forms always occupy the full field: the letter blocks
		// start right beyond the field's decimal range, so a padded
		// letter field is malformed.
		if len(t) != width {
			return 0, fmt.Errorf("hybrid36: invalid field %q", s)
		}
		v, err := decodeBase36(t, 'A')
		if err != nil {
			return 0, err
		}
		return v - shift + pow10(width), nil
	case c >= 'a' && c <= 'z':
		if len(t) != width {
			return 0, fmt.Errorf("hybrid36: invalid field %q", s)
		}
		v, err := decodeBase36(t, 'a')
		if err != nil {
			return 0, err
		}
		return v - shift + pow10(width) + 26*pow36(width-1), nil
	default:
		v, err := strconv.Atoi(t)
		if err != nil {
			return 0, fmt.Errorf("hybrid36: invalid field %q", s)
		}
		return v, nil
	}
}

func encodeBase36(n, width int, letterBase byte) string {
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		d := n % 36
		if d < 10 {
			buf[i] = '0' + byte(d)
		} else {
			buf[i] = letterBase + byte(d-10)
		}
		n /= 36
	}
	return string(buf)
}

// decodeBase36 parses a base-36 string whose letter digits must all come
// from the case given by letterBase. Mixed-case fields are malformed.
func decodeBase36(s string, letterBase byte) (int, error) {
	n := 0
	for i := 0; i < len(s); i++ {
		var d int
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			d = int(c - '0')
		case c >= letterBase && c <= letterBase+25:
			d = int(c-letterBase) + 10
		default:
			return 0, fmt.Errorf("hybrid36: invalid digit %q in %q", c, s)
		}
		n = n*36 + d
	}
	return n, nil
}

func pow10(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

func pow36(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 36
	}
	return p
}
