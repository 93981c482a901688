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

package attacks

import (
	"laptudirm.com/x/kopjevals/pkg/board/bitboard"
	"laptudirm.com/x/kopjevals/pkg/board/piece"
	"laptudirm.com/x/kopjevals/pkg/board/square"
)

// Knight holds the precalculated attack bitboards of a knight standing
// on every square of the board.
var Knight [square.N]bitboard.Board

// King holds the precalculated attack bitboards of a king standing on
// every square of the board, not including castling.
var King [square.N]bitboard.Board

// Pawn holds the precalculated diagonal capture bitboards of a pawn of
// the given color standing on every square of the board.
var Pawn [piece.ColorN][square.N]bitboard.Board

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func init() {
	for s := square.A8; s <= square.H1; s++ {
		Knight[s] = leap(s, knightDeltas[:])
		King[s] = leap(s, kingDeltas[:])

		Pawn[piece.White][s] = leap(s, [][2]int{{-1, -1}, {1, -1}})
		Pawn[piece.Black][s] = leap(s, [][2]int{{-1, 1}, {1, 1}})
	}
}

// leap returns the bitboard of every square reachable from s by adding
// one of the given (file, rank) deltas, discarding deltas that fall off
// the board.
func leap(s square.Square, deltas [][2]int) bitboard.Board {
	var bb bitboard.Board

	file, rank := int(s.File()), int(s.Rank())
	for _, d := range deltas {
		f, r := file+d[0], rank+d[1]
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}

		bb.Set(square.New(square.File(f), square.Rank(r)))
	}

	return bb
}
