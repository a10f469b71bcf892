package nthash32

// Minimizer is a window selected by Minimizers:
// the position of the window in the sequence,
// and its canonical hash.
type Minimizer struct {
	Pos  int
	Hash uint32
}

// Minimizers returns the windows of seq whose canonical hash falls in the
// lowest density fraction of the 32-bit hash space,
// in order of position.
//
// Because the hashes of unrelated windows are spread uniformly,
// this keeps roughly density * (len(seq)-k+1) windows,
// and two sequences sharing a stretch of DNA select the same windows
// within the shared stretch.
// That makes the selection a cheap, alignment-free fingerprint:
// a density of 0.01 represents a sequence by about 1% of its windows.
//
// A density of 0 or less selects nothing, 1 or more selects every window.
//
// Errors are those of Checked:
// window-size problems and non-ACGTN bytes are returned,
// never panicked.
func Minimizers(seq []byte, k int, density float64) ([]Minimizer, error) {
	hashes, errptr := Checked(seq, k)
	if err := *errptr; err != nil {
		return nil, err
	}

	var bound uint64
	switch {
	case density <= 0:
		bound = 0
	case density >= 1:
		bound = 1 << 32
	default:
		bound = uint64(density * (1 << 32))
	}

	var mins []Minimizer
	for h, pos := range hashes {
		if uint64(h) < bound {
			mins = append(mins, Minimizer{Pos: pos, Hash: h})
		}
	}
	if err := *errptr; err != nil {
		return nil, err
	}
	return mins, nil
}
