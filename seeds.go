package nthash32

// The 64-bit ntHash nucleotide seeds.
// The lookup tables hold their low 32 bits.
const (
	seedA = 0x3c8bfbb395c60474
	seedC = 0x3193c18562a02b4c
	seedG = 0x20323ed082572324
	seedT = 0x295549f54be24456
)

// invalidSeed marks bytes outside the ACGTN alphabet in the lookup tables.
// No nucleotide seed truncates to this value.
const invalidSeed = 1

var (
	fwdSeeds = seedTable(seedA, seedC, seedG, seedT)

	// The reverse-complement table swaps A with T and C with G,
	// so that hashing a window back-to-front through rcSeeds
	// produces the hash of its Watson-Crick complement.
	rcSeeds = seedTable(seedT, seedG, seedC, seedA)
)

func seedTable(a, c, g, t uint64) [256]uint32 {
	var tab [256]uint32
	for i := range tab {
		tab[i] = invalidSeed
	}
	tab['A'] = uint32(a)
	tab['C'] = uint32(c)
	tab['G'] = uint32(g)
	tab['T'] = uint32(t)
	tab['N'] = 0
	return tab
}

func fwdSeed(seq []byte, i int) uint32 {
	s := fwdSeeds[seq[i]]
	if s == invalidSeed {
		panic(&InvalidSymbolError{Byte: seq[i], Pos: i})
	}
	return s
}

func rcSeed(seq []byte, i int) uint32 {
	s := rcSeeds[seq[i]]
	if s == invalidSeed {
		panic(&InvalidSymbolError{Byte: seq[i], Pos: i})
	}
	return s
}
