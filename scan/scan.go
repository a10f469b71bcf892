// Package scan computes canonical k-mer hashes for batches of DNA
// sequences concurrently.
package scan

import (
	"context"
	"runtime"

	"github.com/bobg/go-generics/v4/set"
	"github.com/creachadair/taskgroup"

	"github.com/bobg/nthash32"
)

// Hashes computes the canonical hash slice of every sequence in seqs,
// using one worker per CPU.
// The result has one entry per sequence, in the same order.
//
// The first error from any sequence cancels the remaining work
// and is returned,
// as is cancellation of ctx.
func Hashes(ctx context.Context, seqs [][]byte, k int) ([][]uint32, error) {
	ictx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := make([][]uint32, len(seqs))

	g, run := taskgroup.New(taskgroup.Trigger(cancel)).Limit(runtime.NumCPU())
	for i, seq := range seqs {
		run(func() error {
			if err := ictx.Err(); err != nil {
				return err
			}
			hashes, err := nthash32.Hashes(seq, k)
			if err != nil {
				return err
			}
			out[i] = hashes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Distinct counts the distinct canonical hash values
// over all k-wide windows of all sequences in seqs.
//
// Workers hash sequences concurrently
// and funnel their results through a channel
// to a single collector goroutine,
// which keeps insertions into the set serialized.
func Distinct(ctx context.Context, seqs [][]byte, k int) (int, error) {
	ictx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		hashes = make(chan uint32, 256)
		got    = set.New[uint32]()
	)
	coll := taskgroup.Go(taskgroup.NoError(func() {
		for h := range hashes {
			got.Add(h)
		}
	}))

	g, run := taskgroup.New(taskgroup.Trigger(cancel)).Limit(runtime.NumCPU())
	for _, seq := range seqs {
		run(func() error {
			if err := ictx.Err(); err != nil {
				return err
			}
			hs, err := nthash32.Hashes(seq, k)
			if err != nil {
				return err
			}
			for _, h := range hs {
				select {
				case hashes <- h:
				case <-ictx.Done():
					return ictx.Err()
				}
			}
			return nil
		})
	}

	err := g.Wait()
	close(hashes)
	coll.Wait()

	if err != nil {
		return 0, err
	}
	return got.Len(), nil
}
