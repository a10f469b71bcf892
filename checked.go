package nthash32

import (
	"iter"
	"math/bits"
)

// Checked hashes the k-wide windows of seq without panicking on bad input,
// for use when the sequence comes from an untrusted source
// (a file a user handed you, say, rather than bytes you validated yourself).
//
// It returns an iterator over (hash, position) pairs
// and a pointer to an error.
// The iterator lazily produces the same canonical hashes,
// in the same order,
// that Iterator.Next would.
// When it encounters a byte outside the A, C, G, T, N alphabet
// the iterator simply stops,
// because the rolling state cannot be carried past an unhashable byte;
// the windows already produced are unaffected.
// Callers should consume the iterator,
// then check the error:
//
//	hashes, errptr := nthash32.Checked(seq, k)
//	for h, pos := range hashes {
//		// ...
//	}
//	if err := *errptr; err != nil {
//		// ...
//	}
//
// A window-size problem (see New) is recorded in the error
// before Checked returns,
// with the iterator left empty.
// A bad byte is recorded as an *InvalidSymbolError
// at the moment the iterator reaches it.
//
// Like Iterator.All, the returned iterator is one-shot.
func Checked(seq []byte, k int) (iter.Seq2[uint32, int], *error) {
	errptr := new(error)

	if err := validateK(seq, k); err != nil {
		*errptr = err
		return func(func(uint32, int) bool) {}, errptr
	}

	f := func(yield func(uint32, int) bool) {
		var fwd, rc uint32
		for i := 0; i < k; i++ {
			s := fwdSeeds[seq[i]]
			if s == invalidSeed {
				*errptr = &InvalidSymbolError{Byte: seq[i], Pos: i}
				return
			}
			fwd ^= bits.RotateLeft32(s, k-1-i)
			rc ^= bits.RotateLeft32(rcSeeds[seq[k-1-i]], k-1-i)
		}
		if !yield(min(fwd, rc), 0) {
			return
		}

		for i := 1; i <= len(seq)-k; i++ {
			in := seq[i+k-1]
			s := fwdSeeds[in]
			if s == invalidSeed {
				*errptr = &InvalidSymbolError{Byte: in, Pos: i + k - 1}
				return
			}
			out := seq[i-1]
			fwd = bits.RotateLeft32(fwd, 1) ^ bits.RotateLeft32(fwdSeeds[out], k) ^ s
			rc = bits.RotateLeft32(rc, -1) ^ bits.RotateLeft32(rcSeeds[out], -1) ^ bits.RotateLeft32(rcSeeds[in], k-1)
			if !yield(min(fwd, rc), i) {
				return
			}
		}
	}
	return f, errptr
}

// Hashes is the eager form of Checked:
// it hashes every window of seq and returns the hashes as a slice.
// On any error the slice is nil.
func Hashes(seq []byte, k int) ([]uint32, error) {
	hashes, errptr := Checked(seq, k)
	if err := *errptr; err != nil {
		return nil, err
	}

	out := make([]uint32, 0, len(seq)-k+1)
	for h := range hashes {
		out = append(out, h)
	}
	if err := *errptr; err != nil {
		return nil, err
	}
	return out, nil
}
