/*
bitutil.go implements the bit-twiddling primitives move generation and the
attack oracle are built on: scanning/popping the least-significant set bit
and counting set bits.
*/

package chego

const (
	// Precalculated de Bruijn constant used to form indices into
	// bitScanLookup.
	bitscanMagic uint64 = 0x03F79D71B4CB0A89
)

// bitScanLookup maps the de Bruijn hash of an isolated bit to its index.
var bitScanLookup = [64]int{
	0, 1, 48, 2, 57, 49, 28, 3, 61, 58, 50, 42, 38, 29, 17, 4,
	62, 55, 59, 36, 53, 51, 43, 22, 45, 39, 33, 30, 24, 18, 12, 5,
	63, 47, 56, 27, 60, 41, 37, 16, 54, 35, 52, 21, 44, 32, 23, 11,
	46, 26, 40, 15, 34, 20, 31, 10, 25, 14, 19, 9, 13, 8, 7, 6,
}

/*
CountBits returns the number of bits set within the bitboard.
*/
func CountBits(bitboard uint64) (cnt int) {
	for ; bitboard > 0; cnt++ {
		bitboard &= bitboard - 1
	}
	return cnt
}

/*
bitScan returns the index of the LSB within the bitboard. bitboard & -bitboard
isolates the LSB, which is then run through the de Bruijn hashing scheme to
index the lookup.

NOTE: bitScan returns 0 for the empty bitboard; callers must not invoke it on
an empty bitboard.
*/
func bitScan(bitboard uint64) int {
	return bitScanLookup[(bitboard&-bitboard)*bitscanMagic>>58]
}

/*
popLSB removes the LSB from the bitboard and returns its index.
*/
func popLSB(bitboard *uint64) int {
	lsb := bitScan(*bitboard)
	*bitboard &= *bitboard - 1
	return lsb
}

