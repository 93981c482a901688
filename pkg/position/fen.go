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
	"strings"

	"laptudirm.com/x/kopjevals/pkg/board/piece"
	"laptudirm.com/x/kopjevals/pkg/board/square"
	"laptudirm.com/x/kopjevals/pkg/castling"
)

// StartFEN is the FEN of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewFromFEN parses a FEN string into a *Board.
// https://www.chessprogramming.org/Forsyth-Edwards_Notation
func NewFromFEN(fen string) *Board {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		panic("position.NewFromFEN: malformed fen " + fen)
	}

	var b Board

	ranks := strings.Split(fields[0], "/")
	for rankID, rankData := range ranks {
		file := square.FileA
		for _, id := range rankData {
			if id >= '1' && id <= '8' {
				file += square.File(id - '0')
				continue
			}

			s := square.New(file, square.Rank(rankID))
			b.FillSquare(s, piece.NewFromString(string(id)))
			file++
		}
	}

	b.sideToMove = piece.NewColorFromString(fields[1])
	b.castlingRights = castling.NewRights(fields[2])
	b.enPassant = square.NewFromString(fields[3])

	return &b
}

// FEN returns the FEN string of the board's position fields: the piece
// placement, side to move, castling rights, and en passant target. The
// half-move and full-move counters are search bookkeeping outside this
// package's scope and are not reproduced here.
func (b *Board) FEN() string {
	var sb strings.Builder

	for rank := square.Rank8; rank <= square.Rank1; rank++ {
		empty := 0
		for file := square.FileA; file <= square.FileH; file++ {
			p := b.mailbox[square.New(file, rank)]
			if p == piece.NoPiece {
				empty++
				continue
			}

			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}

		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}

		if rank != square.Rank1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.sideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(b.castlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(b.enPassant.String())

	return sb.String()
}
