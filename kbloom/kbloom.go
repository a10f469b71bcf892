// Package kbloom implements a Bloom filter over the canonical k-mer hashes
// of DNA sequences.
package kbloom

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	"github.com/bobg/nthash32"
	"github.com/cespare/xxhash/v2"
)

// Filter is a Bloom filter recording which canonical k-mer hashes
// have been seen.
//
// Membership answers can be wrong in one direction only:
// a k-mer that was added is always reported present,
// while a k-mer that was not added is reported present
// with at most (roughly) the configured false-positive probability.
// In exchange the filter spends a handful of bits per k-mer,
// however long the sequences it indexed.
//
// The 32-bit canonical hash of each k-mer is widened to 64 bits
// and combined with a set of per-filter random seeds
// to choose the bit positions that represent it.
//
// A Filter is not safe for concurrent use while being written;
// concurrent readers are fine once loading is done.
type Filter struct {
	k       int
	numKeys int       // number of k-mers added
	bits    bitVector // a multiple of 64 bits
	nbits   uint64    // the number of bits in the vector
	seeds   []uint64  // hash seeds, one per probe
	hash    func(h uint32) uint64
}

// New constructs an empty filter over k-wide windows
// with capacity for the given number of k-mers.
// A nil opts value is ready for use and provides default values
// as described on Options.
// New panics if k < 1 or capacity < 1.
func New(k, capacity int, opts *Options) *Filter {
	if k < 1 || capacity < 1 {
		panic(fmt.Sprintf("filter dimensions k=%d capacity=%d out of range", k, capacity))
	}
	f := &Filter{k: k, hash: opts.hashFunc()}
	f.init(capacity, opts.falsePositiveRate())
	return f
}

// AddSequence adds the canonical hash of every k-wide window of seq
// to the filter.
//
// Hashing is done on the checked path,
// so a sequence shorter than k or containing a non-ACGTN byte
// is reported as an error,
// in which case the filter is left unchanged.
func (f *Filter) AddSequence(seq []byte) error {
	hashes, err := nthash32.Hashes(seq, f.k)
	if err != nil {
		return err
	}
	for _, h := range hashes {
		f.AddHash(h)
	}
	return nil
}

// AddHash adds a single precomputed canonical hash to the filter.
func (f *Filter) AddHash(h uint32) {
	wide := f.hash(h)
	for _, seed := range f.seeds {
		f.bits.Set((wide ^ seed) % f.nbits)
	}
	f.numKeys++
}

// Has reports whether the single k-mer's canonical hash is in the filter.
// False positives are possible for k-mers that were never added,
// but no false negatives.
//
// The k-mer must be exactly k bytes of A, C, G, T, N;
// anything else is an error.
func (f *Filter) Has(kmer []byte) (bool, error) {
	if len(kmer) != f.k {
		return false, fmt.Errorf("kmer is %d bytes, want %d", len(kmer), f.k)
	}
	hashes, err := nthash32.Hashes(kmer, f.k)
	if err != nil {
		return false, err
	}
	return f.HasHash(hashes[0]), nil
}

// HasHash is Has for a precomputed canonical hash.
func (f *Filter) HasHash(h uint32) bool {
	wide := f.hash(h)
	for _, seed := range f.seeds {
		if !f.bits.IsSet((wide ^ seed) % f.nbits) {
			return false
		}
	}
	return true
}

// Stats returns size and capacity statistics for the filter.
func (f *Filter) Stats() Stats {
	return Stats{
		NumKeys:    f.numKeys,
		FilterBits: int(f.nbits),
		NumHashes:  len(f.seeds),
	}
}

// init sizes the filter for n k-mers at false-positive rate p,
// using the standard optima:
// m = -n ln(p) / ln(2)^2 bits, and m ln(2) / n probes per key,
// both rounded up.
func (f *Filter) init(n int, p float64) {
	m := math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2))
	k := math.Ceil(m * math.Ln2 / float64(n))

	f.bits = newBitVector(int(m))
	f.nbits = 64 * uint64(len(f.bits))
	f.seeds = make([]uint64, int(k))
	for i := range f.seeds {
		f.seeds[i] = rand.Uint64()
	}
}

// Options provide optional settings for a Filter.
// A nil *Options is ready for use and provides default values as described.
type Options struct {
	// Widen a 32-bit canonical hash to the filter's 64-bit keyspace.
	// If nil, the hash is encoded little-endian and passed through xxhash.
	Hash func(h uint32) uint64

	// The maximum false positive rate to permit.
	// A value <= 0 defaults to 0.03.
	// Decreasing this value increases the memory required for the filter.
	FalsePositiveRate float64
}

func (o *Options) hashFunc() func(uint32) uint64 {
	if o == nil || o.Hash == nil {
		return widen
	}
	return o.Hash
}

func (o *Options) falsePositiveRate() float64 {
	if o == nil || o.FalsePositiveRate <= 0 {
		return 0.03
	}
	return o.FalsePositiveRate
}

func widen(h uint32) uint64 {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], h)
	return xxhash.Sum64(buf[:])
}

// Stats record size and capacity statistics for a Filter.
type Stats struct {
	NumKeys    int // the number of k-mers added to the filter
	FilterBits int // the number of bits allocated to the filter
	NumHashes  int // the number of hash seeds allocated
}

type bitVector []uint64

func newBitVector(size int) bitVector { return make(bitVector, (size+63)/64) }

func (b bitVector) IsSet(pos uint64) bool { return b[pos>>6]&(1<<(pos&0x3f)) != 0 }
func (b bitVector) Set(pos uint64)        { b[pos>>6] |= 1 << (pos & 0x3f) }
