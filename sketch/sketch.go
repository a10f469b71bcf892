// Package sketch summarizes DNA sequences as bottom-k MinHash sketches
// of their canonical k-mer hashes.
package sketch

import (
	"fmt"
	"slices"

	"github.com/bobg/nthash32"
)

// BottomK is a fixed-size summary of a set of DNA sequences.
// It retains the smallest distinct canonical k-mer hashes seen,
// up to a configured signature size.
//
// Because the smallest hashes of a set are a uniform sample of the whole set,
// two signatures can stand in for their full k-mer sets
// when estimating how similar the sets are (see Jaccard)
// or how large (see Cardinality).
// A few hundred slots is typically plenty,
// no matter how many megabases went in.
//
// The zero value is not usable; construct with New.
// A BottomK is not safe for concurrent use.
type BottomK struct {
	k    int
	size int
	sig  []uint32 // ascending, distinct, len <= size
}

// New produces an empty sketch over k-wide windows
// with room for size hashes in its signature.
// It panics if k or size is smaller than 1.
func New(k, size int) *BottomK {
	if k < 1 || size < 1 {
		panic(fmt.Sprintf("sketch dimensions k=%d size=%d out of range", k, size))
	}
	return &BottomK{k: k, size: size}
}

// K is the window width the sketch was constructed with.
func (b *BottomK) K() int { return b.k }

// Len is the number of hashes currently in the signature.
// It grows toward the size given to New and then stops.
func (b *BottomK) Len() int { return len(b.sig) }

// Add folds every canonical k-mer hash of seq into the sketch.
//
// Hashing is done on the checked path,
// so a sequence shorter than k or containing a non-ACGTN byte
// is reported as an error,
// in which case the sketch is left unchanged.
func (b *BottomK) Add(seq []byte) error {
	hashes, err := nthash32.Hashes(seq, b.k)
	if err != nil {
		return err
	}
	for _, h := range hashes {
		b.add(h)
	}
	return nil
}

// AddHash folds a single precomputed canonical hash into the sketch.
func (b *BottomK) AddHash(h uint32) {
	b.add(h)
}

func (b *BottomK) add(h uint32) {
	i, ok := slices.BinarySearch(b.sig, h)
	if ok || i >= b.size {
		return
	}
	b.sig = slices.Insert(b.sig, i, h)
	if len(b.sig) > b.size {
		b.sig = b.sig[:b.size]
	}
}

// Signature is a copy of the sketch's signature:
// the smallest distinct hashes added so far, in ascending order.
func (b *BottomK) Signature() []uint32 {
	return slices.Clone(b.sig)
}

// Jaccard estimates the Jaccard similarity
// (intersection over union, between 0 and 1)
// of the k-mer sets behind the two sketches.
//
// The estimate is the fraction of the union's smallest hashes
// that appear in both signatures.
// Two empty sketches count as identical.
//
// The sketches must agree on k and signature size.
func (b *BottomK) Jaccard(other *BottomK) (float64, error) {
	if b.k != other.k || b.size != other.size {
		return 0, fmt.Errorf("sketch mismatch: k %d vs %d, size %d vs %d", b.k, other.k, b.size, other.size)
	}
	if len(b.sig) == 0 && len(other.sig) == 0 {
		return 1, nil
	}

	union := make([]uint32, 0, len(b.sig)+len(other.sig))
	union = append(union, b.sig...)
	union = append(union, other.sig...)
	slices.Sort(union)
	union = slices.Compact(union)
	if len(union) > b.size {
		union = union[:b.size]
	}

	var matched int
	for _, h := range union {
		_, in1 := slices.BinarySearch(b.sig, h)
		_, in2 := slices.BinarySearch(other.sig, h)
		if in1 && in2 {
			matched++
		}
	}
	return float64(matched) / float64(len(union)), nil
}

// Cardinality estimates the number of distinct canonical k-mer hashes added.
// While the signature has room the count is exact;
// once it fills, the estimate follows from the value of the largest
// retained hash (the k-minimum-values estimator).
func (b *BottomK) Cardinality() float64 {
	if len(b.sig) < b.size {
		return float64(len(b.sig))
	}
	kth := float64(b.sig[len(b.sig)-1])
	return float64(b.size-1) * float64(1<<32) / (kth + 1)
}
