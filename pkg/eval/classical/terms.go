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

// Package classical implements a hand-crafted, PeSTO-style tapered
// evaluation of chess positions: piece-square tables, mobility curves,
// king safety, passed/isolated/backward pawn structure, pins, hanging
// pieces, and a handful of scalar feature terms, all accumulated as
// PackedScore and blended by game phase.
package classical

import "laptudirm.com/x/kopjevals/pkg/eval"

// mobility slot counts per knight, bishop, rook and queen: one slot per
// possible count of reachable squares, from 0 up to the piece's maximum.
const (
	KnightMobilityN = 9
	BishopMobilityN = 14
	RookMobilityN   = 15
	QueenMobilityN  = 28
)

// PieceSquareN is the number of piece-square table entries: 6 piece
// types (pawn through king), one table per color, times 64 squares.
const PieceSquareN = 2 * 6 * 64

// Terms is the process-wide, read-only-after-init table of evaluation
// parameters. It is held by reference by an Evaluator, and mutated only
// by an offline tuner between runs, never concurrently with evaluation.
type Terms struct {
	PieceSquare [PieceSquareN]eval.Score

	MobilityKnight [KnightMobilityN]eval.Score
	MobilityBishop [BishopMobilityN]eval.Score
	MobilityRook   [RookMobilityN]eval.Score
	MobilityQueen  [QueenMobilityN]eval.Score

	KingSafetyTable [100]eval.Score
	PasserRank      [8]eval.Score

	// PinnedEval is indexed pinnedType*3 + pinnerType, pinnerType in
	// {bishop:0, rook:1, queen:2}, pinnedType in {pawn..queen, 0..4}.
	PinnedEval [15]eval.Score

	// BishopPawnSameColor is indexed [0] for own pawns, [1] for enemy
	// pawns, each holding a count-indexed (0..8) score.
	BishopPawnSameColor [2][9]eval.Score

	// HangingEval is indexed by piece.Type, pawn through queen; slot 0
	// (piece.NoType) is unused.
	HangingEval [6]eval.Score

	// scalar features; their scalarNames entries match the spec's
	// recognized parameter list verbatim so a parameter dump can print
	// them unchanged.
	SideToMove              eval.Score
	PawnStructure             eval.Score
	PawnPassedAndDoubled      eval.Score
	PawnPassedAndBlocked      eval.Score
	PawnPassedCoveredPromo    eval.Score
	PawnPassedHelper          eval.Score
	PawnPassedAndDefended     eval.Score
	PawnPassedSquareRule      eval.Score
	PawnPassedKingSpan        eval.Score
	PawnIsolated              eval.Score
	PawnDoubled               eval.Score
	PawnDoubledAndIsolated    eval.Score
	PawnBackward              eval.Score
	PawnOpen                  eval.Score
	PawnBlocked               eval.Score
	KnightOutpost             eval.Score
	KnightDistanceEnemyKing   eval.Score
	RookOpenFile              eval.Score
	RookHalfOpenFile          eval.Score
	RookKingLine              eval.Score
	BishopDoubled             eval.Score
	BishopFianchetto          eval.Score
	BishopPieceSameSquareE    eval.Score
	QueenDistanceEnemyKing    eval.Score
	KingCloseOpponent         eval.Score
	KingPawnShield            eval.Score
	CastlingRights            eval.Score
	MinorBehindPawn           eval.Score
	SafeQueenCheck            eval.Score
	SafeRookCheck             eval.Score
	SafeBishopCheck           eval.Score
	SafeKnightCheck           eval.Score
	PawnAttackMinor           eval.Score
	PawnAttackRook            eval.Score
	PawnAttackQueen           eval.Score
	MinorAttackRook           eval.Score
	MinorAttackQueen          eval.Score
	RookAttackQueen           eval.Score

	// LazyEvalAlphaBound/LazyEvalBetaBound are the lazy cutoff margins:
	// the alpha margin is subtracted from alpha and the beta margin added
	// to beta before comparing against blended material.
	// Defaults are asymmetric (803, 392); see spec Design Notes.
	LazyEvalAlphaBound eval.Eval
	LazyEvalBetaBound  eval.Eval
}

// scalarNames lists the 38 recognized scalar feature parameter names,
// in FetchScalar's index order, preserved verbatim
// for compatibility with tuning output and parameter dumps.
var scalarNames = [...]string{
	"SIDE_TO_MOVE",
	"PAWN_STRUCTURE",
	"PAWN_PASSED_AND_DOUBLED",
	"PAWN_PASSED_AND_BLOCKED",
	"PAWN_PASSED_COVERED_PROMO",
	"PAWN_PASSED_HELPER",
	"PAWN_PASSED_AND_DEFENDED",
	"PAWN_PASSED_SQUARE_RULE",
	"PAWN_PASSED_KING_SPAN",
	"PAWN_ISOLATED",
	"PAWN_DOUBLED",
	"PAWN_DOUBLED_AND_ISOLATED",
	"PAWN_BACKWARD",
	"PAWN_OPEN",
	"PAWN_BLOCKED",
	"KNIGHT_OUTPOST",
	"KNIGHT_DISTANCE_ENEMY_KING",
	"ROOK_OPEN_FILE",
	"ROOK_HALF_OPEN_FILE",
	"ROOK_KING_LINE",
	"BISHOP_DOUBLED",
	"BISHOP_FIANCHETTO",
	"BISHOP_PIECE_SAME_SQUARE_E",
	"QUEEN_DISTANCE_ENEMY_KING",
	"KING_CLOSE_OPPONENT",
	"KING_PAWN_SHIELD",
	"CASTLING_RIGHTS",
	"MINOR_BEHIND_PAWN",
	"SAFE_QUEEN_CHECK",
	"SAFE_ROOK_CHECK",
	"SAFE_BISHOP_CHECK",
	"SAFE_KNIGHT_CHECK",
	"PAWN_ATTACK_MINOR",
	"PAWN_ATTACK_ROOK",
	"PAWN_ATTACK_QUEEN",
	"MINOR_ATTACK_ROOK",
	"MINOR_ATTACK_QUEEN",
	"ROOK_ATTACK_QUEEN",
}

// scalars returns pointers to the 38 named scalar terms, in the same
// order as scalarNames, so both can be walked together by ScalarNames
// and FetchScalar.
func (t *Terms) scalars() [38]*eval.Score {
	return [38]*eval.Score{
		&t.SideToMove,
		&t.PawnStructure,
		&t.PawnPassedAndDoubled,
		&t.PawnPassedAndBlocked,
		&t.PawnPassedCoveredPromo,
		&t.PawnPassedHelper,
		&t.PawnPassedAndDefended,
		&t.PawnPassedSquareRule,
		&t.PawnPassedKingSpan,
		&t.PawnIsolated,
		&t.PawnDoubled,
		&t.PawnDoubledAndIsolated,
		&t.PawnBackward,
		&t.PawnOpen,
		&t.PawnBlocked,
		&t.KnightOutpost,
		&t.KnightDistanceEnemyKing,
		&t.RookOpenFile,
		&t.RookHalfOpenFile,
		&t.RookKingLine,
		&t.BishopDoubled,
		&t.BishopFianchetto,
		&t.BishopPieceSameSquareE,
		&t.QueenDistanceEnemyKing,
		&t.KingCloseOpponent,
		&t.KingPawnShield,
		&t.CastlingRights,
		&t.MinorBehindPawn,
		&t.SafeQueenCheck,
		&t.SafeRookCheck,
		&t.SafeBishopCheck,
		&t.SafeKnightCheck,
		&t.PawnAttackMinor,
		&t.PawnAttackRook,
		&t.PawnAttackQueen,
		&t.MinorAttackRook,
		&t.MinorAttackQueen,
		&t.RookAttackQueen,
	}
}

// FetchScalar returns a pointer to the i'th named scalar term, for use
// by a tuner doing point-access mutation of a coefficient's estimate.
// ScalarNames()[i] names the same term.
func (t *Terms) FetchScalar(i int) *eval.Score {
	s := t.scalars()
	return s[i]
}

// ScalarNames returns the recognized scalar feature parameter names, in
// FetchScalar's index order.
func ScalarNames() []string {
	return scalarNames[:]
}

// NewDefaultTerms returns a Terms table populated with the engine's
// default parameter values: standard PeSTO piece-square tables, a
// monotonically increasing mobility curve per piece type, and the
// lazy-eval margins from the spec's design notes.
func NewDefaultTerms() *Terms {
	t := &Terms{
		LazyEvalAlphaBound: 803,
		LazyEvalBetaBound:  392,
	}

	initPieceSquareTables(t)
	initMobilityTables(t)
	initFeatureTables(t)

	return t
}
