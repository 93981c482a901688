// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package classical

import (
	"laptudirm.com/x/kopjevals/pkg/board/piece"
	"laptudirm.com/x/kopjevals/pkg/board/square"
	"laptudirm.com/x/kopjevals/pkg/eval"
)

// pstIndex returns the index of the given color/type/square combination
// in Terms.PieceSquare. Black's table entry is the mirror (rank-flipped)
// square of white's, so only white-perspective tables are written out
// below; Color and mirror() fold black onto the same data.
func pstIndex(c piece.Color, t piece.Type, s square.Square) int {
	if c == piece.Black {
		s = mirror(s)
	}
	return (int(t)-1)*2*64 + int(c)*64 + int(s)
}

// mirror flips a square across the board's horizontal midline, turning
// a white-relative square into the equivalent black-relative one.
func mirror(s square.Square) square.Square {
	return square.New(s.File(), square.Rank1-s.Rank())
}

// pawnMG/pawnEG etc. are the classic PeSTO-style piece-square values,
// given from White's perspective with A8 first and H1 last, matching
// this package's square numbering directly.
var (
	pawnMG = [64]eval.Eval{
		0, 0, 0, 0, 0, 0, 0, 0,
		98, 134, 61, 95, 68, 126, 34, -11,
		-6, 7, 26, 31, 65, 56, 25, -20,
		-14, 13, 6, 21, 23, 12, 17, -23,
		-27, -2, -5, 12, 17, 6, 10, -25,
		-26, -4, -4, -10, 3, 3, 33, -12,
		-35, -1, -20, -23, -15, 24, 38, -22,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	pawnEG = [64]eval.Eval{
		0, 0, 0, 0, 0, 0, 0, 0,
		178, 173, 158, 134, 147, 132, 165, 187,
		94, 100, 85, 67, 56, 53, 82, 84,
		32, 24, 13, 5, -2, 4, 17, 17,
		13, 9, -3, -7, -7, -8, 3, -1,
		4, 7, -6, 1, 0, -5, -1, -8,
		13, 8, 8, 10, 13, 0, 2, -7,
		0, 0, 0, 0, 0, 0, 0, 0,
	}

	knightMG = [64]eval.Eval{
		-167, -89, -34, -49, 61, -97, -15, -107,
		-73, -41, 72, 36, 23, 62, 7, -17,
		-47, 60, 37, 65, 84, 129, 73, 44,
		-9, 17, 19, 53, 37, 69, 18, 22,
		-13, 4, 16, 13, 28, 19, 21, -8,
		-23, -9, 12, 10, 19, 17, 25, -16,
		-29, -53, -12, -3, -1, 18, -14, -19,
		-105, -21, -58, -33, -17, -28, -19, -23,
	}
	knightEG = [64]eval.Eval{
		-58, -38, -13, -28, -31, -27, -63, -99,
		-25, -8, -25, -2, -9, -25, -24, -52,
		-24, -20, 10, 9, -1, -9, -19, -41,
		-17, 3, 22, 22, 22, 11, 8, -18,
		-18, -6, 16, 25, 16, 17, 4, -18,
		-23, -3, -1, 15, 10, -3, -20, -22,
		-42, -20, -10, -5, -2, -20, -23, -44,
		-29, -51, -23, -15, -22, -18, -50, -64,
	}

	bishopMG = [64]eval.Eval{
		-29, 4, -82, -37, -25, -42, 7, -8,
		-26, 16, -18, -13, 30, 59, 18, -47,
		-16, 37, 43, 40, 35, 50, 37, -2,
		-4, 5, 19, 50, 37, 37, 7, -2,
		-6, 13, 13, 26, 34, 12, 10, 4,
		0, 15, 15, 15, 14, 27, 18, 10,
		4, 15, 16, 0, 7, 21, 33, 1,
		-33, -3, -14, -21, -13, -12, -39, -21,
	}
	bishopEG = [64]eval.Eval{
		-14, -21, -11, -8, -7, -9, -17, -24,
		-8, -4, 7, -12, -3, -13, -4, -14,
		2, -8, 0, -1, -2, 6, 0, 4,
		-3, 9, 12, 9, 14, 10, 3, 2,
		-6, 3, 13, 19, 7, 10, -3, -9,
		-12, -3, 8, 10, 13, 3, -7, -15,
		-14, -18, -7, -1, 4, -9, -15, -27,
		-23, -9, -23, -5, -9, -16, -5, -17,
	}

	rookMG = [64]eval.Eval{
		32, 42, 32, 51, 63, 9, 31, 43,
		27, 32, 58, 62, 80, 67, 26, 44,
		-5, 19, 26, 36, 17, 45, 61, 16,
		-24, -11, 7, 26, 24, 35, -8, -20,
		-36, -26, -12, -1, 9, -7, 6, -23,
		-45, -25, -16, -17, 3, 0, -5, -33,
		-44, -16, -20, -9, -1, 11, -6, -71,
		-19, -13, 1, 17, 16, 7, -37, -26,
	}
	rookEG = [64]eval.Eval{
		13, 10, 18, 15, 12, 12, 8, 5,
		11, 13, 13, 11, -3, 3, 8, 3,
		7, 7, 7, 5, 4, -3, -5, -3,
		4, 3, 13, 1, 2, 1, -1, 2,
		3, 5, 8, 4, -5, -6, -8, -11,
		-4, 0, -5, -1, -7, -12, -8, -16,
		-6, -6, 0, 2, -9, -9, -11, -3,
		-9, 2, 3, -1, -5, -13, 4, -20,
	}

	queenMG = [64]eval.Eval{
		-28, 0, 29, 12, 59, 44, 43, 45,
		-24, -39, -5, 1, -16, 57, 28, 54,
		-13, -17, 7, 8, 29, 56, 47, 57,
		-27, -27, -16, -16, -1, 17, -2, 1,
		-9, -26, -9, -10, -2, -4, 3, -3,
		-14, 2, -11, -2, -5, 2, 14, 5,
		-35, -8, 11, 2, 8, 15, -3, 1,
		-1, -18, -9, 10, -15, -25, -31, -50,
	}
	queenEG = [64]eval.Eval{
		-9, 22, 22, 27, 27, 19, 10, 20,
		-17, 20, 32, 41, 58, 25, 30, 0,
		-20, 6, 9, 49, 47, 35, 19, 9,
		3, 22, 24, 45, 57, 40, 57, 36,
		-18, 28, 19, 47, 31, 34, 39, 23,
		-16, -27, 15, 6, 9, 17, 10, 5,
		-22, -23, -30, -16, -16, -23, -36, -32,
		-33, -28, -22, -43, -5, -32, -20, -41,
	}

	kingMG = [64]eval.Eval{
		-65, 23, 16, -15, -56, -34, 2, 13,
		29, -1, -20, -7, -8, -4, -38, -29,
		-9, 24, 2, -16, -20, 6, 22, -22,
		-17, -20, -12, -27, -30, -25, -14, -36,
		-49, -1, -27, -39, -46, -44, -33, -51,
		-14, -14, -22, -46, -44, -30, -15, -27,
		1, 7, -8, -64, -43, -16, 9, 8,
		-15, 36, 12, -54, 8, -28, 24, 14,
	}
	kingEG = [64]eval.Eval{
		-74, -35, -18, -18, -11, 15, 4, -17,
		-12, 17, 14, 17, 17, 38, 23, 11,
		10, 17, 23, 15, 20, 45, 44, 13,
		-8, 22, 24, 27, 26, 33, 26, 3,
		-18, -4, 21, 24, 27, 23, 9, -11,
		-19, -3, 11, 21, 23, 16, 7, -9,
		-27, -11, 4, 13, 14, 4, -5, -17,
		-53, -34, -21, -11, -28, -14, -24, -43,
	}
)

// initPieceSquareTables populates t.PieceSquare from the per-piece mg/eg
// tables above, purely positional bonuses added on top of a position's
// own incrementally maintained material score.
func initPieceSquareTables(t *Terms) {
	tables := [...]struct {
		kind   piece.Type
		mg, eg *[64]eval.Eval
	}{
		{piece.Pawn, &pawnMG, &pawnEG},
		{piece.Knight, &knightMG, &knightEG},
		{piece.Bishop, &bishopMG, &bishopEG},
		{piece.Rook, &rookMG, &rookEG},
		{piece.Queen, &queenMG, &queenEG},
		{piece.King, &kingMG, &kingEG},
	}

	for _, table := range tables {
		for s := square.A8; s <= square.H1; s++ {
			mg, eg := table.mg[s], table.eg[s]

			t.PieceSquare[pstIndex(piece.White, table.kind, s)] = eval.S(mg, eg)
			t.PieceSquare[pstIndex(piece.Black, table.kind, mirror(s))] = eval.S(-mg, -eg)
		}
	}
}

// initMobilityTables populates a monotonically increasing mobility
// bonus curve per piece type: each additional safely reachable square
// adds a fixed step, equal in both phases for knights and bishops and
// one centipawn larger in the end game for rooks and queens.
func initMobilityTables(t *Terms) {
	fill := func(dst []eval.Score, mgStep, egStep eval.Eval) {
		for i := range dst {
			dst[i] = eval.S(eval.Eval(i)*mgStep, eval.Eval(i)*egStep)
		}
	}

	fill(t.MobilityKnight[:], 4, 4)
	fill(t.MobilityBishop[:], 5, 5)
	fill(t.MobilityRook[:], 3, 4)
	fill(t.MobilityQueen[:], 2, 3)
}

// initFeatureTables populates the remaining scalar and small matrix
// terms with reasonable hand-tuned defaults in the same spirit as the
// piece-square and mobility tables above: plausible, monotone where the
// feature calls for it, never authoritative.
func initFeatureTables(t *Terms) {
	t.SideToMove = eval.S(10, 10)

	t.PawnStructure = eval.S(0, 0)
	t.PawnPassedAndDoubled = eval.S(-5, -10)
	t.PawnPassedAndBlocked = eval.S(-10, -15)
	t.PawnPassedCoveredPromo = eval.S(5, 15)
	t.PawnPassedHelper = eval.S(5, 10)
	t.PawnPassedAndDefended = eval.S(5, 12)
	t.PawnPassedSquareRule = eval.S(0, 40)
	t.PawnPassedKingSpan = eval.S(0, 20)
	t.PawnIsolated = eval.S(-10, -15)
	t.PawnDoubled = eval.S(-8, -15)
	t.PawnDoubledAndIsolated = eval.S(-15, -25)
	t.PawnBackward = eval.S(-8, -5)
	t.PawnOpen = eval.S(-5, 0)
	t.PawnBlocked = eval.S(-3, 2)

	t.KnightOutpost = eval.S(20, 10)
	t.KnightDistanceEnemyKing = eval.S(-2, -4)

	t.RookOpenFile = eval.S(25, 10)
	t.RookHalfOpenFile = eval.S(12, 5)
	t.RookKingLine = eval.S(8, 2)

	t.BishopDoubled = eval.S(25, 40)
	t.BishopFianchetto = eval.S(15, 5)
	t.BishopPieceSameSquareE = eval.S(-3, -3)

	t.QueenDistanceEnemyKing = eval.S(-1, -3)

	t.KingCloseOpponent = eval.S(-10, 0)
	t.KingPawnShield = eval.S(10, 0)
	t.CastlingRights = eval.S(10, 0)

	t.MinorBehindPawn = eval.S(8, 2)

	t.SafeQueenCheck = eval.S(40, 30)
	t.SafeRookCheck = eval.S(50, 40)
	t.SafeBishopCheck = eval.S(15, 15)
	t.SafeKnightCheck = eval.S(30, 25)

	t.PawnAttackMinor = eval.S(-40, -30)
	t.PawnAttackRook = eval.S(-50, -35)
	t.PawnAttackQueen = eval.S(-50, -45)
	t.MinorAttackRook = eval.S(-30, -20)
	t.MinorAttackQueen = eval.S(-35, -25)
	t.RookAttackQueen = eval.S(-30, -20)

	for i := range t.PasserRank {
		t.PasserRank[i] = eval.S(eval.Eval(i*i)/2, eval.Eval(i*i))
	}

	for i := range t.PinnedEval {
		t.PinnedEval[i] = eval.S(-10, -20)
	}

	for i := range t.BishopPawnSameColor[0] {
		t.BishopPawnSameColor[0][i] = eval.S(eval.Eval(-i)*2, eval.Eval(-i)*3)
		t.BishopPawnSameColor[1][i] = eval.S(eval.Eval(-i), eval.Eval(-i)*2)
	}

	t.HangingEval[piece.Pawn] = eval.S(-15, -20)
	t.HangingEval[piece.Knight] = eval.S(-40, -35)
	t.HangingEval[piece.Bishop] = eval.S(-40, -35)
	t.HangingEval[piece.Rook] = eval.S(-55, -50)
	t.HangingEval[piece.Queen] = eval.S(-90, -85)
}
