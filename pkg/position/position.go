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

// Package position declares the Position interface consumed by the
// static evaluator, abstracting away move generation and board
// representation internals that are out of the evaluator's scope.
package position

import (
	"laptudirm.com/x/kopjevals/pkg/board/bitboard"
	"laptudirm.com/x/kopjevals/pkg/board/piece"
	"laptudirm.com/x/kopjevals/pkg/board/square"
	"laptudirm.com/x/kopjevals/pkg/castling"
	"laptudirm.com/x/kopjevals/pkg/eval"
)

// Position is the read-only view of a chess position that the static
// evaluator requires. It exposes per-color and per-piece-type
// bitboards, a per-square piece lookup, occupancy, side to move,
// castling rights, and the incrementally maintained material score.
//
// Position implementations are not required to be mutable; the
// evaluator never calls any method that would change one.
type Position interface {
	// PieceBB returns the bitboard of the given color's pieces of the
	// given type. t must not be piece.NoType.
	PieceBB(c piece.Color, t piece.Type) bitboard.Board

	// ColorBB returns the bitboard of all of the given color's pieces.
	ColorBB(c piece.Color) bitboard.Board

	// Occupied returns the bitboard of every occupied square.
	Occupied() bitboard.Board

	// PieceAt returns the piece occupying the given square, or
	// piece.NoPiece if it is empty.
	PieceAt(s square.Square) piece.Piece

	// SideToMove returns the color whose turn it is to move.
	SideToMove() piece.Color

	// CastlingRights returns the position's castling right flags.
	CastlingRights() castling.Rights

	// Material returns the position's incrementally maintained
	// material balance as a packed middle-/end-game score, positive
	// favoring White. It is not recomputed by the evaluator.
	Material() eval.Score

	// convenience per-piece-type accessors, mirroring the shape the
	// evaluator's hot loops index by most often.
	PawnsBB(c piece.Color) bitboard.Board
	KnightsBB(c piece.Color) bitboard.Board
	BishopsBB(c piece.Color) bitboard.Board
	RooksBB(c piece.Color) bitboard.Board
	QueensBB(c piece.Color) bitboard.Board
	KingBB(c piece.Color) bitboard.Board
}
