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
	"laptudirm.com/x/kopjevals/pkg/eval"
	"laptudirm.com/x/kopjevals/pkg/position"
)

// MaxPhase is the starting phase weight, reached with a full complement
// of non-pawn pieces still on the board.
const MaxPhase = 24

// phaseWeight gives each non-pawn piece type's contribution to the
// phase countdown.
var phaseWeight = [piece.TypeN]int{
	piece.Knight: 1,
	piece.Bishop: 1,
	piece.Rook:   2,
	piece.Queen:  4,
}

// phaseOf computes the position's game phase: 0 at full material
// (opening/middle game), 1 with no non-pawn pieces left (pure
// king-and-pawn endgame).
func phaseOf(p position.Position) float64 {
	raw := MaxPhase

	for _, t := range [...]piece.Type{piece.Knight, piece.Bishop, piece.Rook, piece.Queen} {
		count := p.PieceBB(piece.White, t).Count() + p.PieceBB(piece.Black, t).Count()
		raw -= phaseWeight[t] * count
	}

	if raw < 0 {
		raw = 0
	}
	if raw > MaxPhase {
		raw = MaxPhase
	}

	return float64(raw) / MaxPhase
}

// blend linearly interpolates a packed score between its middle-game
// half (at phase 0) and end-game half (at phase 1).
func blend(s eval.Score, phase float64) eval.Eval {
	mg, eg := float64(s.MG()), float64(s.EG())
	return eval.Eval(mg*(1-phase) + eg*phase)
}
