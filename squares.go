package chego

// Scalar square indices, rank-major (index = rank*8+file), named the way
// algebraic notation reads them.
const (
	SA1, SB1, SC1, SD1, SE1, SF1, SG1, SH1 = 0, 1, 2, 3, 4, 5, 6, 7
	SA2, SB2, SC2, SD2, SE2, SF2, SG2, SH2 = 8, 9, 10, 11, 12, 13, 14, 15
	SA3, SB3, SC3, SD3, SE3, SF3, SG3, SH3 = 16, 17, 18, 19, 20, 21, 22, 23
	SA4, SB4, SC4, SD4, SE4, SF4, SG4, SH4 = 24, 25, 26, 27, 28, 29, 30, 31
	SA5, SB5, SC5, SD5, SE5, SF5, SG5, SH5 = 32, 33, 34, 35, 36, 37, 38, 39
	SA6, SB6, SC6, SD6, SE6, SF6, SG6, SH6 = 40, 41, 42, 43, 44, 45, 46, 47
	SA7, SB7, SC7, SD7, SE7, SF7, SG7, SH7 = 48, 49, 50, 51, 52, 53, 54, 55
	SA8, SB8, SC8, SD8, SE8, SF8, SG8, SH8 = 56, 57, 58, 59, 60, 61, 62, 63
)

// pieceWeights gives the material value of each non-king Piece constant,
// used by calculateMaterial and move ordering's capture scoring.
var pieceWeights = [10]int{
	1, 1, // pawn
	3, 3, // knight
	3, 3, // bishop
	5, 5, // rook
	9, 9, // queen
}

// castlingLoss[sq] is the set of castling rights permanently revoked the
// moment any piece leaves or arrives at sq -- covers both the king/rook
// moving away and an enemy piece capturing a rook on its home square.
var castlingLoss = func() (tbl [64]CastlingRights) {
	tbl[SE1] = CastlingWhiteShort | CastlingWhiteLong
	tbl[SH1] = CastlingWhiteShort
	tbl[SA1] = CastlingWhiteLong
	tbl[SE8] = CastlingBlackShort | CastlingBlackLong
	tbl[SH8] = CastlingBlackShort
	tbl[SA8] = CastlingBlackLong
	return tbl
}()

// castlingEmptyPath[idx] is the set of squares that must be vacant for the
// castling move indexed by bitScan(side) (0=White O-O, 1=White O-O-O,
// 2=Black O-O, 3=Black O-O-O).
var castlingEmptyPath = [4]uint64{
	1<<SF1 | 1<<SG1,
	1<<SB1 | 1<<SC1 | 1<<SD1,
	1<<SF8 | 1<<SG8,
	1<<SB8 | 1<<SC8 | 1<<SD8,
}

// castlingKingPath[idx] is the set of squares the king occupies or transits
// through, including its origin -- none may be attacked for the castle to
// be legal.
var castlingKingPath = [4]uint64{
	1<<SE1 | 1<<SF1 | 1<<SG1,
	1<<SE1 | 1<<SD1 | 1<<SC1,
	1<<SE8 | 1<<SF8 | 1<<SG8,
	1<<SE8 | 1<<SD8 | 1<<SC8,
}
