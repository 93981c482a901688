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

package attacks_test

import (
	"testing"

	"laptudirm.com/x/kopjevals/pkg/board/bitboard"
	"laptudirm.com/x/kopjevals/pkg/board/move/attacks"
	"laptudirm.com/x/kopjevals/pkg/board/piece"
	"laptudirm.com/x/kopjevals/pkg/board/square"
)

func TestKnightAttacksFromCenter(t *testing.T) {
	got := attacks.Knight[square.E4]
	if got.Count() != 8 {
		t.Errorf("Knight[E4].Count() = %d, want 8", got.Count())
	}
}

func TestKnightAttacksFromCorner(t *testing.T) {
	got := attacks.Knight[square.A1]
	if got.Count() != 2 {
		t.Errorf("Knight[A1].Count() = %d, want 2", got.Count())
	}
}

func TestKingAttacksFromCenter(t *testing.T) {
	got := attacks.King[square.E4]
	if got.Count() != 8 {
		t.Errorf("King[E4].Count() = %d, want 8", got.Count())
	}
}

func TestPawnAttacksDiagonalOnly(t *testing.T) {
	got := attacks.Pawn[piece.White][square.E4]
	if !got.IsSet(square.D5) || !got.IsSet(square.F5) {
		t.Error("White Pawn[E4] should attack D5 and F5")
	}
	if got.Count() != 2 {
		t.Errorf("Pawn[White][E4].Count() = %d, want 2", got.Count())
	}
}

func TestRookAttacksOnEmptyBoard(t *testing.T) {
	got := attacks.Rook(square.E4, bitboard.Empty)
	// a rook on an otherwise empty board sees every square on its rank
	// and file except its own: 7 + 7 = 14 squares.
	if got.Count() != 14 {
		t.Errorf("Rook(E4, empty).Count() = %d, want 14", got.Count())
	}
	if got.IsSet(square.E4) {
		t.Error("Rook attacks should not include its own square")
	}
}

func TestRookAttacksStopAtBlocker(t *testing.T) {
	var blockers bitboard.Board
	blockers.Set(square.E6)

	got := attacks.Rook(square.E4, blockers)
	if !got.IsSet(square.E6) {
		t.Error("Rook(E4) with a blocker on E6 should still attack E6 (capture)")
	}
	if got.IsSet(square.E7) || got.IsSet(square.E8) {
		t.Error("Rook(E4) should not see past a blocker on E6")
	}
}

func TestBishopAttacksOnEmptyBoard(t *testing.T) {
	got := attacks.Bishop(square.E4, bitboard.Empty)
	if got.Count() != 13 {
		t.Errorf("Bishop(E4, empty).Count() = %d, want 13", got.Count())
	}
}

func TestQueenIsUnionOfRookAndBishop(t *testing.T) {
	rook := attacks.Rook(square.D4, bitboard.Empty)
	bishop := attacks.Bishop(square.D4, bitboard.Empty)
	queen := attacks.Queen(square.D4, bitboard.Empty)

	if queen != rook|bishop {
		t.Error("Queen attacks should equal the union of Rook and Bishop attacks")
	}
}

func TestOfDispatchesByPieceType(t *testing.T) {
	if attacks.Of(piece.WhiteKnight, square.E4, bitboard.Empty) != attacks.Knight[square.E4] {
		t.Error("Of(knight) should match the Knight table")
	}
	if attacks.Of(piece.WhiteRook, square.E4, bitboard.Empty) != attacks.Rook(square.E4, bitboard.Empty) {
		t.Error("Of(rook) should match Rook()")
	}
}

func TestOfUnknownTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Of(NoType) should panic")
		}
	}()
	attacks.Of(piece.NoPiece, square.E4, bitboard.Empty)
}
