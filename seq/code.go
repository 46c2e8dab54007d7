package seq

import "encoding/binary"

// Width is the storage width of a single symbol code, in bits.
type Width uint8

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// WidthFor returns the smallest width whose maximum representable value can
// hold every code of an alphabet with n symbols, i.e. all values in [0, n).
func WidthFor(n int) Width {
	switch {
	case n <= 1<<8:
		return Width8
	case n <= 1<<16:
		return Width16
	case int64(n) <= 1<<32:
		return Width32
	default:
		return Width64
	}
}

// stride is the number of bytes occupied by one code.
func (w Width) stride() int {
	return int(w) / 8
}

// max is the largest value representable in w bits.
func (w Width) max() uint64 {
	if w == Width64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(w) - 1
}

// A CodeArray is a fixed-width array of symbol codes. Codes are stored in a
// little-endian byte buffer with one element every Width/8 bytes.
//
// A CodeArray knows nothing about alphabets and never checks code values
// for membership; that is the concern of Sequence.IsValid. Writing a value
// wider than the element width silently truncates it to the low bits, the
// same behavior an unsigned integer cast has.
//
// CodeArray values share their underlying buffer when copied by assignment.
// Use Clone for an independent array.
type CodeArray struct {
	width Width
	data  []byte
}

// NewCodeArray returns a zeroed code array of n elements at width w.
func NewCodeArray(w Width, n int) CodeArray {
	return CodeArray{width: w, data: make([]byte, n*w.stride())}
}

// CodesOf builds a code array at width w holding the given values, each
// truncated to w bits.
func CodesOf(w Width, values ...uint64) CodeArray {
	c := NewCodeArray(w, len(values))
	for i, v := range values {
		c.Set(i, v)
	}
	return c
}

// Width returns the element width of the array.
func (c CodeArray) Width() Width {
	return c.width
}

// Len returns the number of codes in the array.
func (c CodeArray) Len() int {
	if len(c.data) == 0 {
		return 0
	}
	return len(c.data) / c.width.stride()
}

// At returns the code at position i.
func (c CodeArray) At(i int) uint64 {
	switch c.width {
	case Width8:
		return uint64(c.data[i])
	case Width16:
		return uint64(binary.LittleEndian.Uint16(c.data[i*2:]))
	case Width32:
		return uint64(binary.LittleEndian.Uint32(c.data[i*4:]))
	default:
		return binary.LittleEndian.Uint64(c.data[i*8:])
	}
}

// Set stores v at position i, truncated to the element width.
func (c CodeArray) Set(i int, v uint64) {
	switch c.width {
	case Width8:
		c.data[i] = byte(v)
	case Width16:
		binary.LittleEndian.PutUint16(c.data[i*2:], uint16(v))
	case Width32:
		binary.LittleEndian.PutUint32(c.data[i*4:], uint32(v))
	default:
		binary.LittleEndian.PutUint64(c.data[i*8:], v)
	}
}

// Values returns all codes as a uint64 slice.
func (c CodeArray) Values() []uint64 {
	vs := make([]uint64, c.Len())
	for i := range vs {
		vs[i] = c.At(i)
	}
	return vs
}

// Clone returns a deep copy of the array.
func (c CodeArray) Clone() CodeArray {
	data := make([]byte, len(c.data))
	copy(data, c.data)
	return CodeArray{width: c.width, data: data}
}

// Slice returns a new array holding copies of the codes in [start, end).
func (c CodeArray) Slice(start, end int) CodeArray {
	s := c.width.stride()
	data := make([]byte, (end-start)*s)
	copy(data, c.data[start*s:end*s])
	return CodeArray{width: c.width, data: data}
}

// Select returns a new array holding the codes at the given positions, in
// the given order.
func (c CodeArray) Select(indices []int) CodeArray {
	out := NewCodeArray(c.width, len(indices))
	for i, idx := range indices {
		out.Set(i, c.At(idx))
	}
	return out
}

// SelectMask returns a new array holding the codes at positions where mask
// is true. The mask must have exactly Len elements.
func (c CodeArray) SelectMask(mask []bool) CodeArray {
	if len(mask) != c.Len() {
		panic("seq: boolean mask length does not match code array length")
	}
	n := 0
	for _, m := range mask {
		if m {
			n++
		}
	}
	out := NewCodeArray(c.width, n)
	i := 0
	for idx, m := range mask {
		if m {
			out.Set(i, c.At(idx))
			i++
		}
	}
	return out
}

// Reverse returns a new array with the codes in reverse order.
func (c CodeArray) Reverse() CodeArray {
	n := c.Len()
	out := NewCodeArray(c.width, n)
	for i := 0; i < n; i++ {
		out.Set(i, c.At(n-1-i))
	}
	return out
}

// Cast returns the array re-encoded at width w. When w equals the current
// width the receiver is returned unchanged, sharing its buffer; otherwise
// every code is copied, truncated to w bits.
func (c CodeArray) Cast(w Width) CodeArray {
	if w == c.width {
		return c
	}
	out := NewCodeArray(w, c.Len())
	for i := 0; i < c.Len(); i++ {
		out.Set(i, c.At(i))
	}
	return out
}

// SetFrom writes all codes of src into the receiver starting at offset,
// truncating each code to the receiver's width. The receiver must have room
// for src at that offset.
func (c CodeArray) SetFrom(offset int, src CodeArray) {
	if c.width == src.width {
		s := c.width.stride()
		copy(c.data[offset*s:], src.data)
		return
	}
	for i := 0; i < src.Len(); i++ {
		c.Set(offset+i, src.At(i))
	}
}

// Equal reports whether the two arrays hold element-wise equal codes.
// Arrays of different widths compare by value.
func (c CodeArray) Equal(o CodeArray) bool {
	if c.Len() != o.Len() {
		return false
	}
	for i := 0; i < c.Len(); i++ {
		if c.At(i) != o.At(i) {
			return false
		}
	}
	return true
}
