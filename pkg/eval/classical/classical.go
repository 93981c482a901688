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
	"laptudirm.com/x/kopjevals/internal/util"
	"laptudirm.com/x/kopjevals/pkg/board/bitboard"
	"laptudirm.com/x/kopjevals/pkg/board/move/attacks"
	"laptudirm.com/x/kopjevals/pkg/board/piece"
	"laptudirm.com/x/kopjevals/pkg/board/square"
	"laptudirm.com/x/kopjevals/pkg/castling"
	"laptudirm.com/x/kopjevals/pkg/eval"
	"laptudirm.com/x/kopjevals/pkg/position"
)

// Evaluator owns a reference to the process-wide parameter tables and a
// scratch context, and exposes the evaluate/phase/mating-material
// contract the search relies on. It is not thread-safe; each search
// worker should hold its own.
type Evaluator struct {
	Terms *Terms
	ctx   context
}

// NewEvaluator returns an Evaluator over the given parameter tables. A
// nil terms panics, matching the teacher's programmer-error idiom.
func NewEvaluator(terms *Terms) *Evaluator {
	if terms == nil {
		panic("classical.NewEvaluator: nil terms")
	}
	return &Evaluator{Terms: terms}
}

// Phase returns the game phase computed by the most recent Evaluate
// call, in [0, 1].
func (e *Evaluator) Phase() float64 {
	return e.ctx.phase
}

// MatingMaterial reports whether the given color has enough material to
// deliver checkmate: a queen, a rook, a pawn, or two minors one of
// which is a bishop.
func MatingMaterial(p position.Position, c piece.Color) bool {
	if p.QueensBB(c) != 0 || p.RooksBB(c) != 0 || p.PawnsBB(c) != 0 {
		return true
	}

	knights := p.KnightsBB(c).Count()
	bishops := p.BishopsBB(c).Count()
	if bishops > 0 && knights+bishops >= 2 {
		return true
	}

	return false
}

// Evaluate is the evaluator's public contract: a centipawn score from
// the side-to-move's perspective. alpha/beta bound a lazy-evaluation
// cutoff and may be eval.-Inf/+Inf for standalone calls.
func (e *Evaluator) Evaluate(p position.Position, alpha, beta eval.Eval) eval.Eval {
	if p == nil {
		panic("classical.Evaluate: nil position")
	}

	e.ctx.reset()
	terms := e.Terms

	phase := phaseOf(p)
	e.ctx.phase = phase

	material := p.Material()
	lazy := blend(material, phase)
	stm := p.SideToMove()
	if stm == piece.Black {
		lazy = -lazy
	}

	if lazy < alpha-terms.LazyEvalAlphaBound || lazy > beta+terms.LazyEvalBetaBound {
		return lazy
	}

	e.ctx.build(p)

	total := material
	total += e.evaluatePieceSquares(p)
	total += e.evaluatePawns(p)
	total += e.evaluatePieces(p, piece.Knight)
	total += e.evaluatePieces(p, piece.Bishop)
	total += e.evaluatePieces(p, piece.Rook)
	total += e.evaluatePieces(p, piece.Queen)
	total += e.evaluateRookFiles(p)
	total += e.evaluateKings(p)
	total += e.evaluateBishopPair(p)
	total += e.evaluateHanging(p)
	total += e.evaluatePinned(p)
	total += e.evaluatePassers(p)
	total += e.evaluateKingSafety()

	if p.CastlingRights()&castling.White != 0 {
		total += terms.CastlingRights
	}
	if p.CastlingRights()&castling.Black != 0 {
		total -= terms.CastlingRights
	}

	if stm == piece.White {
		total += terms.SideToMove
	} else {
		total -= terms.SideToMove
	}

	score := blend(total, phase)

	damped := score
	if score > 0 && !MatingMaterial(p, piece.White) {
		damped = score / 10
	} else if score < 0 && !MatingMaterial(p, piece.Black) {
		damped = score / 10
	}

	if stm == piece.Black {
		damped = -damped
	}

	return damped
}

// evaluatePieceSquares sums every occupied square's piece-square table
// entry, the positional half of the evaluator that material and
// mobility don't cover on their own.
func (e *Evaluator) evaluatePieceSquares(p position.Position) eval.Score {
	terms := e.Terms
	var total eval.Score

	for _, t := range [...]piece.Type{piece.Pawn, piece.Knight, piece.Bishop, piece.Rook, piece.Queen, piece.King} {
		for _, col := range [...]piece.Color{piece.White, piece.Black} {
			for bb := p.PieceBB(col, t); bb != 0; {
				s := bb.Pop()
				total += terms.PieceSquare[pstIndex(col, t, s)]
			}
		}
	}

	return total
}

// evaluatePawns accumulates doubled, isolated, blocked, backward, and
// open pawn features, plus pawn attacks on enemy minors/rooks/queens.
func (e *Evaluator) evaluatePawns(p position.Position) eval.Score {
	terms := e.Terms
	var total eval.Score

	for _, col := range [...]piece.Color{piece.White, piece.Black} {
		enemy := col.Other()
		pawns := p.PawnsBB(col)
		enemyPawns := p.PawnsBB(enemy)

		sign := eval.Score(1)
		if col == piece.Black {
			sign = -1
		}

		for bb := pawns; bb != 0; {
			s := bb.Pop()

			// PawnStructure is a flat per-pawn baseline a tuner can use
			// to shift the overall weight of this feature group; zero
			// by default.
			total += sign * terms.PawnStructure

			file := bitboard.Files[s.File()]
			ahead := bitboard.ForwardFileMask[col][s]

			if pawns&file&^bitboard.Squares[s] != 0 {
				total += sign * terms.PawnDoubled
				if bitboard.AdjacentFiles[s.File()]&pawns == 0 {
					total += sign * terms.PawnDoubledAndIsolated
				}
			} else if bitboard.AdjacentFiles[s.File()]&pawns == 0 {
				total += sign * terms.PawnIsolated
			}

			if ahead&enemyPawns == 0 {
				total += sign * terms.PawnOpen
			}

			if p.Occupied()&bitboard.Squares[s].Up(col) != 0 {
				total += sign * terms.PawnBlocked
			}

			// backward: no own pawn on an adjacent file at this rank
			// or behind, and the stop square is covered by an enemy
			// pawn.
			behindAdjacent := bitboard.AdjacentFiles[s.File()] &^ bitboard.ForwardRanksMask[col][s.Rank()]
			if behindAdjacent&pawns == 0 {
				stop := bitboard.Squares[s].Up(col)
				if stop&e.ctx.enemyPawnAttacks(enemy) != 0 {
					total += sign * terms.PawnBackward
				}
			}
		}

		minorTargets := p.KnightsBB(enemy) | p.BishopsBB(enemy)
		if (e.ctx.pawnEastAttacks[col]|e.ctx.pawnWestAttacks[col])&minorTargets != 0 {
			total += sign * terms.PawnAttackMinor
		}
		if (e.ctx.pawnEastAttacks[col]|e.ctx.pawnWestAttacks[col])&p.RooksBB(enemy) != 0 {
			total += sign * terms.PawnAttackRook
		}
		if (e.ctx.pawnEastAttacks[col]|e.ctx.pawnWestAttacks[col])&p.QueensBB(enemy) != 0 {
			total += sign * terms.PawnAttackQueen
		}
	}

	return total
}

// evaluatePieces walks every piece of type t for both colors, folding
// in its attack set, mobility bonus, and per-piece-type features.
func (e *Evaluator) evaluatePieces(p position.Position, t piece.Type) eval.Score {
	terms := e.Terms
	var total eval.Score

	for _, col := range [...]piece.Color{piece.White, piece.Black} {
		enemy := col.Other()
		sign := eval.Score(1)
		if col == piece.Black {
			sign = -1
		}

		enemyKing := e.ctx.kingSq[enemy]
		occ := p.Occupied()

		for bb := p.PieceBB(col, t); bb != 0; {
			s := bb.Pop()

			var atk bitboard.Board
			switch t {
			case piece.Knight:
				atk = attacks.Knight[s]
			case piece.Bishop:
				transparent := (occ &^ p.QueensBB(col)) | bitboard.Squares[s]
				atk = attacks.Bishop(s, transparent)
			case piece.Rook:
				transparent := (occ &^ (p.RooksBB(col) | p.QueensBB(col))) | bitboard.Squares[s]
				atk = attacks.Rook(s, transparent)
			case piece.Queen:
				atk = attacks.Queen(s, occ)
			}

			e.ctx.attacks[col][t] |= atk
			e.ctx.allAttacks[col] |= atk

			mobility := atk & e.ctx.mobilitySquares(p, col)
			total += sign * mobilityScore(terms, t, mobility.Count())

			if atk&e.ctx.kingZone[enemy] != 0 {
				weight := 2
				if t == piece.Rook {
					weight = 3
				} else if t == piece.Queen {
					weight = 4
				}
				e.ctx.addKingPressure(col, weight, (atk & e.ctx.kingZone[enemy]).Count())
			}

			switch t {
			case piece.Knight:
				total += sign * e.evaluateKnight(p, col, s)
			case piece.Bishop:
				total += sign * e.evaluateBishop(p, col, s)
			case piece.Queen:
				total += sign * terms.QueenDistanceEnemyKing * eval.Score(manhattan(s, enemyKing))
			}

			total += sign * e.evaluateSafeChecks(p, col, t, s, atk, enemyKing)

			if t == piece.Rook && atk&p.QueensBB(enemy) != 0 {
				total += sign * terms.RookAttackQueen
			}
			if (t == piece.Knight || t == piece.Bishop) && atk&p.RooksBB(enemy) != 0 {
				total += sign * terms.MinorAttackRook
			}
			if (t == piece.Knight || t == piece.Bishop) && atk&p.QueensBB(enemy) != 0 {
				total += sign * terms.MinorAttackQueen
			}
			if (t == piece.Knight || t == piece.Bishop) && bitboard.Squares[s].Down(col)&p.PawnsBB(col) != 0 {
				total += sign * terms.MinorBehindPawn
			}
		}
	}

	return total
}

// mobilityScore looks up the mobility bonus for t's n'th mobility slot,
// clamping n to the table's bounds.
func mobilityScore(terms *Terms, t piece.Type, n int) eval.Score {
	switch t {
	case piece.Knight:
		return terms.MobilityKnight[util.Min(n, KnightMobilityN-1)]
	case piece.Bishop:
		return terms.MobilityBishop[util.Min(n, BishopMobilityN-1)]
	case piece.Rook:
		return terms.MobilityRook[util.Min(n, RookMobilityN-1)]
	case piece.Queen:
		return terms.MobilityQueen[util.Min(n, QueenMobilityN-1)]
	default:
		return 0
	}
}

// evaluateKnight adds the knight outpost and king-distance features.
func (e *Evaluator) evaluateKnight(p position.Position, col piece.Color, s square.Square) eval.Score {
	terms := e.Terms
	var total eval.Score

	if isOutpost(p, &e.ctx, col, s) {
		total += terms.KnightOutpost
	}

	total += terms.KnightDistanceEnemyKing * eval.Score(manhattan(s, e.ctx.kingSq[col.Other()]))

	return total
}

// evaluateBishop adds the bishop-pawn-same-color, fianchetto, and
// bishop-shares-own-king's-square-color features.
func (e *Evaluator) evaluateBishop(p position.Position, col piece.Color, s square.Square) eval.Score {
	terms := e.Terms
	var total eval.Score

	light := squareIsLight(s)

	ownSame := countSameColor(p.PawnsBB(col), light)
	enemySame := countSameColor(p.PawnsBB(col.Other()), light)
	total += terms.BishopPawnSameColor[0][ownSame]
	total += terms.BishopPawnSameColor[1][enemySame]

	if isFianchetto(p, col, s) {
		total += terms.BishopFianchetto
	}

	if squareIsLight(e.ctx.kingSq[col]) == light {
		total += terms.BishopPieceSameSquareE
	}

	return total
}

// isOutpost reports whether s holds a piece of color col that is
// defended by one of its own pawns and can never be attacked by an
// enemy pawn.
func isOutpost(p position.Position, c *context, col piece.Color, s square.Square) bool {
	if c.attacks[col][piece.Pawn]&bitboard.Squares[s] == 0 {
		return false
	}

	noAttackers := bitboard.AdjacentFiles[s.File()] & bitboard.ForwardRanksMask[col][s.Rank()]
	return noAttackers&p.PawnsBB(col.Other()) == 0
}

// squareIsLight reports whether s is a light square.
func squareIsLight(s square.Square) bool {
	return (int(s.File())+int(s.Rank()))%2 == 0
}

// countSameColor counts the pawns in bb standing on squares of the
// given color, clamped to the 0..8 range BishopPawnSameColor indexes.
func countSameColor(bb bitboard.Board, light bool) int {
	count := 0
	for tmp := bb; tmp != 0; {
		s := tmp.Pop()
		if squareIsLight(s) == light {
			count++
		}
	}
	if count > 8 {
		count = 8
	}
	return count
}

// fianchettoFrame names the bishop square and the pawn square that
// together make up a fianchetto pattern.
type fianchettoFrame struct {
	bishop, pawn square.Square
}

// fianchettoFrames reproduces the spec's noted bug faithfully: black's
// queenside frame checks B2 (a white-side square) instead of B7.
var fianchettoFrames = [piece.ColorN][2]fianchettoFrame{
	piece.White: {{square.G2, square.G3}, {square.B2, square.B3}},
	piece.Black: {{square.G7, square.G6}, {square.B2, square.B3}},
}

func isFianchetto(p position.Position, col piece.Color, s square.Square) bool {
	for _, frame := range fianchettoFrames[col] {
		if frame.bishop == s && p.PawnsBB(col)&bitboard.Squares[frame.pawn] != 0 {
			return true
		}
	}
	return false
}

// evaluateSafeChecks adds the safe-check bonus for a piece of type t
// attacking a square from which it would check the enemy king, where
// that square is not covered by an enemy pawn.
func (e *Evaluator) evaluateSafeChecks(p position.Position, col piece.Color, t piece.Type, s square.Square, atk bitboard.Board, enemyKing square.Square) eval.Score {
	terms := e.Terms

	var checkSquares bitboard.Board
	switch t {
	case piece.Knight:
		checkSquares = attacks.Knight[enemyKing]
	case piece.Bishop:
		checkSquares = attacks.Bishop(enemyKing, p.Occupied())
	case piece.Rook:
		checkSquares = attacks.Rook(enemyKing, p.Occupied())
	case piece.Queen:
		checkSquares = attacks.Queen(enemyKing, p.Occupied())
	default:
		return 0
	}

	safe := checkSquares &^ e.ctx.enemyPawnAttacks(col.Other())
	n := (atk & safe).Count()
	if n == 0 {
		return 0
	}

	switch t {
	case piece.Knight:
		return terms.SafeKnightCheck * eval.Score(n)
	case piece.Bishop:
		return terms.SafeBishopCheck * eval.Score(n)
	case piece.Rook:
		return terms.SafeRookCheck * eval.Score(n)
	case piece.Queen:
		return terms.SafeQueenCheck * eval.Score(n)
	}

	return 0
}

// evaluateRookFiles adds the open/half-open file and king-line rook
// features.
func (e *Evaluator) evaluateRookFiles(p position.Position) eval.Score {
	terms := e.Terms
	var total eval.Score

	for _, col := range [...]piece.Color{piece.White, piece.Black} {
		enemy := col.Other()
		sign := eval.Score(1)
		if col == piece.Black {
			sign = -1
		}

		for bb := p.RooksBB(col); bb != 0; {
			s := bb.Pop()
			file := bitboard.Files[s.File()]

			ownOpen := p.PawnsBB(col)&file == 0
			enemyOpen := p.PawnsBB(enemy)&file == 0

			switch {
			case ownOpen && enemyOpen:
				total += sign * terms.RookOpenFile
			case ownOpen:
				total += sign * terms.RookHalfOpenFile
			}

			if attacks.Rook(s, p.Occupied())&bitboard.Squares[e.ctx.kingSq[enemy]] != 0 {
				total += sign * terms.RookKingLine
			}
		}
	}

	return total
}

// evaluateKings adds the king pawn-shield and close-opponent features.
func (e *Evaluator) evaluateKings(p position.Position) eval.Score {
	terms := e.Terms
	var total eval.Score

	for _, col := range [...]piece.Color{piece.White, piece.Black} {
		enemy := col.Other()
		sign := eval.Score(1)
		if col == piece.Black {
			sign = -1
		}

		adjacent := attacks.King[e.ctx.kingSq[col]]
		total += sign * terms.KingPawnShield * eval.Score((adjacent&p.PawnsBB(col)).Count())
		total += sign * terms.KingCloseOpponent * eval.Score((adjacent&p.ColorBB(enemy)).Count())
	}

	return total
}

// evaluateBishopPair adds the doubled-bishop bonus.
func (e *Evaluator) evaluateBishopPair(p position.Position) eval.Score {
	terms := e.Terms
	var total eval.Score

	if p.BishopsBB(piece.White).Count() == 2 {
		total += terms.BishopDoubled
	}
	if p.BishopsBB(piece.Black).Count() == 2 {
		total -= terms.BishopDoubled
	}

	return total
}

// evaluateHanging implements the net hanging-piece formula from §4.3.
func (e *Evaluator) evaluateHanging(p position.Position) eval.Score {
	terms := e.Terms
	var total eval.Score

	for _, t := range [...]piece.Type{piece.Pawn, piece.Knight, piece.Bishop, piece.Rook, piece.Queen} {
		white := (p.PieceBB(piece.White, t) &^ e.ctx.allAttacks[piece.Black]).Count()
		black := (p.PieceBB(piece.Black, t) &^ e.ctx.allAttacks[piece.White]).Count()
		total += terms.HangingEval[t] * eval.Score(white-black)
	}

	return total
}

// evaluatePinned implements the pin detection and scoring from §4.3.
func (e *Evaluator) evaluatePinned(p position.Position) eval.Score {
	terms := e.Terms
	var total eval.Score

	for _, col := range [...]piece.Color{piece.White, piece.Black} {
		enemy := col.Other()
		king := e.ctx.kingSq[col]
		sign := eval.Score(1)
		if col == piece.Black {
			sign = -1
		}

		type pinner struct {
			bb   bitboard.Board
			kind int // 0 bishop, 1 rook, 2 queen
			line func(square.Square, square.Square) bool
		}

		rookLine := func(a, b square.Square) bool { return a.File() == b.File() || a.Rank() == b.Rank() }
		bishopLine := func(a, b square.Square) bool {
			df := int(a.File()) - int(b.File())
			dr := int(a.Rank()) - int(b.Rank())
			if df < 0 {
				df = -df
			}
			if dr < 0 {
				dr = -dr
			}
			return df == dr && df != 0
		}

		pinners := [...]pinner{
			{p.RooksBB(enemy), 1, rookLine},
			{p.QueensBB(enemy), 2, rookLine},
			{p.BishopsBB(enemy), 0, bishopLine},
			{p.QueensBB(enemy), 2, bishopLine},
		}

		for _, pin := range pinners {
			for bb := pin.bb; bb != 0; {
				s := bb.Pop()
				if !pin.line(king, s) {
					continue
				}

				between := bitboard.Between[king][s]
				if between == 0 {
					continue
				}

				blockers := between & p.Occupied()
				if blockers.Count() != 1 || blockers&p.ColorBB(col) == 0 {
					continue
				}

				pinnedSq := blockers.FirstOne()
				pinnedType := p.PieceAt(pinnedSq).Type()
				idx := (int(pinnedType)-1)*3 + pin.kind
				total -= sign * terms.PinnedEval[idx]
			}
		}
	}

	return total
}

// evaluatePassers implements the passed-pawn detection and feature
// scoring from §4.3.
func (e *Evaluator) evaluatePassers(p position.Position) eval.Score {
	terms := e.Terms
	var total eval.Score

	for _, col := range [...]piece.Color{piece.White, piece.Black} {
		enemy := col.Other()
		sign := eval.Score(1)
		if col == piece.Black {
			sign = -1
		}

		for bb := p.PawnsBB(col); bb != 0; {
			s := bb.Pop()
			if bitboard.PassedPawnMask[col][s]&p.PawnsBB(enemy) != 0 {
				continue
			}

			rank := passerRank(col, s)
			total += sign * terms.PasserRank[rank]

			stop := bitboard.Squares[s].Up(col)
			if stop&p.PawnsBB(col) != 0 {
				total += sign * terms.PawnPassedAndDoubled
			}
			if stop&p.ColorBB(enemy) != 0 {
				total += sign * terms.PawnPassedAndBlocked
			}

			if bitboard.Squares[s]&e.ctx.attacks[col][piece.Pawn] != 0 {
				total += sign * terms.PawnPassedAndDefended
			}

			helperSpan := bitboard.AdjacentFiles[s.File()] & bitboard.ForwardRanksMask[enemy][s.Rank()]
			if helperSpan&p.PawnsBB(col) != 0 {
				total += sign * terms.PawnPassedHelper
			}

			promo := square.New(s.File(), promotionRank(col))
			promoIsLight := squareIsLight(promo)

			ownBishopsOnPromoColor := countSameColor(p.BishopsBB(col), promoIsLight)
			enemyBishopsOnPromoColor := countSameColor(p.BishopsBB(enemy), promoIsLight)
			coveredWeight := ownBishopsOnPromoColor + p.QueensBB(col).Count() -
				enemyBishopsOnPromoColor - p.QueensBB(enemy).Count()
			total += sign * terms.PawnPassedCoveredPromo * eval.Score(coveredWeight)

			toMoveAdjust := 0
			if p.SideToMove() != col {
				toMoveAdjust = 1
			}
			if 7-rank+toMoveAdjust < manhattan(promo, e.ctx.kingSq[enemy]) {
				total += sign * terms.PawnPassedSquareRule
			}

			front := bitboard.ForwardFileMask[col][s]
			if front&^e.ctx.kingZone[col] == 0 {
				total += sign * terms.PawnPassedKingSpan
			}
		}
	}

	return total
}

// passerRank returns the pawn's rank from its own color's perspective,
// 0 at its own first rank (1 at its starting rank) up to 7 at the
// promotion square.
func passerRank(col piece.Color, s square.Square) int {
	if col == piece.White {
		return int(square.Rank1 - s.Rank())
	}
	return int(s.Rank())
}

func promotionRank(col piece.Color) square.Rank {
	if col == piece.White {
		return square.Rank8
	}
	return square.Rank1
}

// evaluateKingSafety folds the accumulated per-color king pressure
// values into the king-safety feature.
func (e *Evaluator) evaluateKingSafety() eval.Score {
	terms := e.Terms

	whiteOnBlack := nonLinearSafety(e.ctx.attackValue[piece.White], e.ctx.attackPieceCount[piece.White])
	blackOnWhite := nonLinearSafety(e.ctx.attackValue[piece.Black], e.ctx.attackPieceCount[piece.Black])

	return terms.KingSafetyTable[whiteOnBlack] - terms.KingSafetyTable[blackOnWhite]
}

// manhattan returns the Manhattan distance between two squares.
func manhattan(a, b square.Square) int {
	df := int(a.File()) - int(b.File())
	dr := int(a.Rank()) - int(b.Rank())
	return util.Abs(df) + util.Abs(dr)
}
