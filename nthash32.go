// Package nthash32 implements a 32-bit form of ntHash,
// a rolling hash over the fixed-size windows of a DNA sequence.
package nthash32

import (
	"iter"
	"math"
	"math/bits"
)

// Iterator produces one 32-bit hash for each k-wide window of a DNA sequence,
// in order, at O(1) amortized cost per window.
//
// A sequence of length n contains n-k+1 overlapping windows ("k-mers"),
// and hashing each one from scratch costs O(k),
// which adds up fast when scanning a chromosome with k in the tens.
// ntHash instead derives each window's hash from its predecessor's:
// rotate the running hash one bit,
// remove the contribution of the byte that slid out of the window,
// and mix in the byte that slid in.
// Only the first window is hashed the slow way.
//
// Each hash is canonical,
// meaning it is the same for a window and for that window's reverse complement
// (the sequence a DNA strand's partner strand carries at the same spot).
// The Iterator maintains rolling hashes of both orientations
// and emits the smaller of the two,
// so callers get strand-neutral hashes without ever materializing
// the reverse-complement sequence.
//
// The alphabet is A, C, G, and T,
// plus N for an unknown or masked base.
// N hashes to zero: a window of all Ns has hash 0.
// Any other byte is a fatal input error,
// and Next (or New, if the byte falls in the first window)
// panics with an *InvalidSymbolError.
// Use Checked or Hashes when the input is not trusted to be clean.
//
// An Iterator is single-threaded state and must not be shared across goroutines,
// but any number of Iterators may run concurrently,
// including over the same sequence.
// The sequence is borrowed, not copied;
// the caller must not modify it while the Iterator is live.
type Iterator struct {
	seq []byte
	k   int

	fwd, rc uint32 // rolling hashes of the current window, both orientations

	pos int // index of the next window to emit
	n   int // total number of windows
}

// New produces an Iterator over the k-wide windows of seq.
//
// It returns a *KSizeTooBigError if k cannot be represented in 32 bits,
// and a *KSizeOutOfRangeError if k is smaller than 1 or larger than len(seq).
//
// New hashes the first window immediately,
// so it panics with an *InvalidSymbolError
// if any of the first k bytes is not one of A, C, G, T, N.
func New(seq []byte, k int) (*Iterator, error) {
	if err := validateK(seq, k); err != nil {
		return nil, err
	}

	it := &Iterator{
		seq: seq,
		k:   k,
		n:   len(seq) - k + 1,
	}
	for i := 0; i < k; i++ {
		it.fwd ^= bits.RotateLeft32(fwdSeed(seq, i), k-1-i)
	}
	for i := 0; i < k; i++ {
		it.rc ^= bits.RotateLeft32(rcSeed(seq, k-1-i), k-1-i)
	}
	return it, nil
}

func validateK(seq []byte, k int) error {
	if k > 0 && uint64(k) > math.MaxUint32 {
		return &KSizeTooBigError{K: k}
	}
	if k < 1 || k > len(seq) {
		return &KSizeOutOfRangeError{K: k, N: len(seq)}
	}
	return nil
}

// Next returns the canonical hash of the next window.
// The first call returns the hash of seq[0:k],
// the next of seq[1:k+1],
// and so on.
// After the final window the second result is false,
// and stays false on every later call.
//
// Next panics with an *InvalidSymbolError
// when the byte entering the window is not one of A, C, G, T, N.
func (it *Iterator) Next() (uint32, bool) {
	if it.pos >= it.n {
		return 0, false
	}
	if i := it.pos; i > 0 {
		out, in := i-1, i+it.k-1
		it.fwd = bits.RotateLeft32(it.fwd, 1) ^ bits.RotateLeft32(fwdSeed(it.seq, out), it.k) ^ fwdSeed(it.seq, in)
		it.rc = bits.RotateLeft32(it.rc, -1) ^ bits.RotateLeft32(rcSeed(it.seq, out), -1) ^ bits.RotateLeft32(rcSeed(it.seq, in), it.k-1)
	}
	it.pos++
	return min(it.fwd, it.rc), true
}

// Len is the total number of windows in the sequence,
// len(seq)-k+1.
// It is fixed at construction and does not decrease as windows are consumed.
func (it *Iterator) Len() int {
	return it.n
}

// All adapts the Iterator for use in a range statement.
// It is a one-shot view:
// ranging over it consumes the Iterator,
// and a second pass requires a new Iterator.
func (it *Iterator) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for h, ok := it.Next(); ok; h, ok = it.Next() {
			if !yield(h) {
				return
			}
		}
	}
}
