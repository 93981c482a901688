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
	"laptudirm.com/x/kopjevals/pkg/board/bitboard"
	"laptudirm.com/x/kopjevals/pkg/board/piece"
	"laptudirm.com/x/kopjevals/pkg/board/square"
	"laptudirm.com/x/kopjevals/pkg/position"
)

// context is the per-call scratch state built at the top of every
// Evaluate: attack bitboards by color and piece type, pawn attack
// spans, king zones and squares, and attacker counts. It is reset,
// never reallocated, across calls via an Evaluator's owned instance.
type context struct {
	attacks    [piece.ColorN][piece.TypeN]bitboard.Board
	allAttacks [piece.ColorN]bitboard.Board

	pawnEastAttacks [piece.ColorN]bitboard.Board
	pawnWestAttacks [piece.ColorN]bitboard.Board

	kingZone [piece.ColorN]bitboard.Board
	kingSq   [piece.ColorN]square.Square

	attackPieceCount [piece.ColorN]int
	attackValue      [piece.ColorN]int

	phase float64
}

// reset clears every field of the context, equivalent to a fresh
// zero-valued context but without reallocating it.
func (c *context) reset() {
	*c = context{}
}

// build fills in the attack-independent part of the context: king
// squares, king zones, and pawn attack spans. The
// per-piece-type attack unions are filled in by the main evaluation
// loop as it walks each piece type, since they double as the mobility
// and king-safety inputs for that same loop.
func (c *context) build(p position.Position) {
	for _, col := range [...]piece.Color{piece.White, piece.Black} {
		pawns := p.PawnsBB(col)

		east := pawns.Up(col).East()
		west := pawns.Up(col).West()

		c.pawnEastAttacks[col] = east
		c.pawnWestAttacks[col] = west
		c.attacks[col][piece.Pawn] = east | west
		c.allAttacks[col] |= east | west

		kingBB := p.KingBB(col)
		king := kingBB.FirstOne()
		c.kingSq[col] = king
		c.kingZone[col] = bitboard.KingAreas[col][king]
	}
}

// enemyPawnAttacks returns the squares attacked by color c's pawns.
func (c *context) enemyPawnAttacks(col piece.Color) bitboard.Board {
	return c.attacks[col][piece.Pawn]
}

// mobilitySquares returns the squares a piece of color col is free to
// be credited mobility for: not occupied by its own side, and not
// attacked by the enemy's pawns.
func (c *context) mobilitySquares(p position.Position, col piece.Color) bitboard.Board {
	return ^p.ColorBB(col) &^ c.enemyPawnAttacks(col.Other())
}

// addKingPressure records that a piece of color col with the given
// weight attacked count squares inside the enemy king zone.
func (c *context) addKingPressure(col piece.Color, weight, count int) {
	if count == 0 {
		return
	}

	c.attackPieceCount[col]++
	c.attackValue[col] += weight * count
}

// nonLinearSafety maps a raw, linearly accumulated king danger value
// into the range indexed by Terms.KingSafetyTable, damping the
// contribution of a lone attacker (which rarely translates into a real
// attack) while letting coordinated pressure scale up quickly.
func nonLinearSafety(value, attackers int) int {
	if attackers < 2 {
		value /= 2
	}

	if value < 0 {
		return 0
	}
	if value > 99 {
		return 99
	}

	return value
}
