package nthash32_test

// This file checks the implementation against ground-truth hash streams
// recomputed outside this package, straight from the ntHash definition.
// The cases live in testdata/vectors.json.

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/bobg/nthash32"
	"github.com/google/go-cmp/cmp"
)

// Data structures used in testdata/vectors.json.
type (
	TestInfo struct {
		Cases map[string]Case `json:"cases"`
	}

	Case struct {
		Seq    string   `json:"seq"`
		K      int      `json:"k"`
		Hashes []uint32 `json:"hashes"`
	}
)

func TestReference(t *testing.T) {
	info, err := loadTestData("testdata/vectors.json")
	if err != nil {
		t.Fatalf("Error loading test data: %v", err)
	}

	for name, c := range info.Cases {
		t.Run(name, func(t *testing.T) {
			got, err := nthash32.Hashes([]byte(c.Seq), c.K)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(c.Hashes, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}

			it, err := nthash32.New([]byte(c.Seq), c.K)
			if err != nil {
				t.Fatal(err)
			}
			var fast []uint32
			for h, ok := it.Next(); ok; h, ok = it.Next() {
				fast = append(fast, h)
			}
			if diff := cmp.Diff(c.Hashes, fast); diff != "" {
				t.Errorf("fast path mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func loadTestData(path string) (*TestInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Error reading %s: %w", path, err)
	}

	info := TestInfo{}
	err = json.Unmarshal(raw, &info)
	if err != nil {
		return nil, fmt.Errorf("Error decoding %s: %w", path, err)
	}

	return &info, nil
}
