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

package position

import (
	"laptudirm.com/x/kopjevals/pkg/board/bitboard"
	"laptudirm.com/x/kopjevals/pkg/board/piece"
	"laptudirm.com/x/kopjevals/pkg/board/square"
	"laptudirm.com/x/kopjevals/pkg/castling"
	"laptudirm.com/x/kopjevals/pkg/eval"
)

// materialValue gives the simple, PST-independent material score used
// to maintain Position.Material incrementally. It is deliberately
// separate from the evaluator's own (tunable) piece-square tables: the
// spec treats material as something the search already tracks, not
// something the evaluator recomputes.
var materialValue = [piece.TypeN]eval.Score{
	piece.Pawn:   eval.S(100, 100),
	piece.Knight: eval.S(320, 320),
	piece.Bishop: eval.S(330, 330),
	piece.Rook:   eval.S(500, 500),
	piece.Queen:  eval.S(900, 900),
}

// Board is a bitboard-backed implementation of Position, constructed
// from a FEN string. It keeps a mailbox array alongside the bitboards
// for O(1) per-square piece lookup, the same redundant representation
// the evaluator's teacher lineage uses.
type Board struct {
	colorBBs [piece.ColorN]bitboard.Board
	pieceBBs [piece.TypeN]bitboard.Board
	mailbox  [square.N]piece.Piece

	sideToMove     piece.Color
	castlingRights castling.Rights
	enPassant      square.Square

	material eval.Score
}

var _ Position = (*Board)(nil)

// PieceBB implements Position.
func (b *Board) PieceBB(c piece.Color, t piece.Type) bitboard.Board {
	return b.colorBBs[c] & b.pieceBBs[t]
}

// ColorBB implements Position.
func (b *Board) ColorBB(c piece.Color) bitboard.Board {
	return b.colorBBs[c]
}

// Occupied implements Position.
func (b *Board) Occupied() bitboard.Board {
	return b.colorBBs[piece.White] | b.colorBBs[piece.Black]
}

// PieceAt implements Position.
func (b *Board) PieceAt(s square.Square) piece.Piece {
	return b.mailbox[s]
}

// SideToMove implements Position.
func (b *Board) SideToMove() piece.Color {
	return b.sideToMove
}

// CastlingRights implements Position.
func (b *Board) CastlingRights() castling.Rights {
	return b.castlingRights
}

// Material implements Position.
func (b *Board) Material() eval.Score {
	return b.material
}

// PawnsBB implements Position.
func (b *Board) PawnsBB(c piece.Color) bitboard.Board { return b.PieceBB(c, piece.Pawn) }

// KnightsBB implements Position.
func (b *Board) KnightsBB(c piece.Color) bitboard.Board { return b.PieceBB(c, piece.Knight) }

// BishopsBB implements Position.
func (b *Board) BishopsBB(c piece.Color) bitboard.Board { return b.PieceBB(c, piece.Bishop) }

// RooksBB implements Position.
func (b *Board) RooksBB(c piece.Color) bitboard.Board { return b.PieceBB(c, piece.Rook) }

// QueensBB implements Position.
func (b *Board) QueensBB(c piece.Color) bitboard.Board { return b.PieceBB(c, piece.Queen) }

// KingBB implements Position.
func (b *Board) KingBB(c piece.Color) bitboard.Board { return b.PieceBB(c, piece.King) }

// FillSquare places p on square s, updating bitboards, the mailbox, and
// the incremental material score.
func (b *Board) FillSquare(s square.Square, p piece.Piece) {
	b.mailbox[s] = p
	b.colorBBs[p.Color()].Set(s)
	b.pieceBBs[p.Type()].Set(s)

	if p.Type() != piece.King {
		if p.Color() == piece.White {
			b.material += materialValue[p.Type()]
		} else {
			b.material -= materialValue[p.Type()]
		}
	}
}

// ClearSquare removes whatever piece occupies square s.
func (b *Board) ClearSquare(s square.Square) {
	p := b.mailbox[s]
	if p == piece.NoPiece {
		return
	}

	b.mailbox[s] = piece.NoPiece
	b.colorBBs[p.Color()].Unset(s)
	b.pieceBBs[p.Type()].Unset(s)

	if p.Type() != piece.King {
		if p.Color() == piece.White {
			b.material -= materialValue[p.Type()]
		} else {
			b.material += materialValue[p.Type()]
		}
	}
}

// EnPassant returns the current en passant target square, or
// square.None if none is set.
func (b *Board) EnPassant() square.Square {
	return b.enPassant
}
