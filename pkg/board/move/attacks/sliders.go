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
	"laptudirm.com/x/kopjevals/pkg/board/move/attacks/magic"
	"laptudirm.com/x/kopjevals/pkg/board/square"
)

// edges is the set of board edge squares, which are trimmed from a
// slider's relevant blocker mask: occupancy of the square past the
// last reachable one never changes the attack set, so it need not
// take part in the magic index.
const edges = bitboard.Rank1 | bitboard.Rank8 | bitboard.FileA | bitboard.FileH

// bishopTable and rookTable are the magic hash tables used to probe
// sliding piece attack sets in constant time.
var (
	bishopTable *magic.Table
	rookTable   *magic.Table
)

func init() {
	bishopTable = magic.NewTable(1<<9, bishopMoves)
	rookTable = magic.NewTable(1<<12, rookMoves)
}

// bishopMoves is the magic.MoveFunc for a bishop: the union of the
// hyperbola quintessence attack sets along the square's diagonal and
// anti-diagonal.
func bishopMoves(s square.Square, occ bitboard.Board, masking bool) bitboard.Board {
	diagonal := bitboard.Hyperbola(s, occ, bitboard.Diagonals[s.Diagonal()])
	antiDiagonal := bitboard.Hyperbola(s, occ, bitboard.AntiDiagonals[s.AntiDiagonal()])

	attacks := diagonal | antiDiagonal
	if masking {
		return attacks &^ edges
	}

	return attacks
}

// rookMoves is the magic.MoveFunc for a rook: the union of the
// hyperbola quintessence attack sets along the square's file and rank.
func rookMoves(s square.Square, occ bitboard.Board, masking bool) bitboard.Board {
	file := bitboard.Hyperbola(s, occ, bitboard.Files[s.File()])
	rank := bitboard.Hyperbola(s, occ, bitboard.Ranks[s.Rank()])

	attacks := file | rank
	if !masking {
		return attacks
	}

	// a file/rank slider's own edge square is still relevant if the
	// rook itself stands on that edge, so only trim the far edges.
	if s.File() != square.FileA {
		attacks &^= bitboard.FileA
	}
	if s.File() != square.FileH {
		attacks &^= bitboard.FileH
	}
	if s.Rank() != square.Rank1 {
		attacks &^= bitboard.Rank1
	}
	if s.Rank() != square.Rank8 {
		attacks &^= bitboard.Rank8
	}

	return attacks
}
