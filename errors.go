package nthash32

import (
	"fmt"
	"math"
)

// KSizeOutOfRangeError is the error returned by New
// when the window size k is smaller than 1
// or larger than the sequence being hashed.
type KSizeOutOfRangeError struct {
	K int // the requested window size
	N int // the length of the sequence
}

func (e *KSizeOutOfRangeError) Error() string {
	return fmt.Sprintf("K size %d is out of range for the given sequence size %d", e.K, e.N)
}

// KSizeTooBigError is the error returned by New
// when the window size k cannot be represented in 32 bits.
// Window indexes and counts are 32-bit quantities in the ntHash scheme,
// so no window may be wider than that.
type KSizeTooBigError struct {
	K int // the requested window size
}

func (e *KSizeTooBigError) Error() string {
	return fmt.Sprintf("K size %d cannot exceed the size of a u32 %d", e.K, uint32(math.MaxUint32))
}

// InvalidSymbolError reports a byte outside the A, C, G, T, N alphabet.
//
// On the fast path (New and Iterator.Next)
// it is the value of the panic raised when such a byte is consulted.
// On the checked path (Checked and Hashes)
// it is returned as an ordinary error instead.
type InvalidSymbolError struct {
	Byte byte // the offending byte
	Pos  int  // its position in the sequence
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("Non-ACGTN nucleotide encountered! %c", e.Byte)
}
