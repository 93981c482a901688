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

// Package fenload loads chess positions from FEN strings for the
// command-line tools and tests. It validates the FEN with
// github.com/notnil/chess before handing it to this module's own
// position parser, so a malformed or illegal FEN is rejected with a
// descriptive error rather than an undefined evaluator result.
package fenload

import (
	"fmt"

	"github.com/notnil/chess"
	"github.com/notnil/chess/opening"

	"laptudirm.com/x/kopjevals/pkg/position"
)

// FromFEN validates fen with notnil/chess and parses it into a
// *position.Board. It returns an error if fen is not a well-formed,
// legal chess position.
func FromFEN(fen string) (*position.Board, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("fenload: %w", err)
	}

	game := chess.NewGame(opt)
	if game.Position() == nil {
		return nil, fmt.Errorf("fenload: fen produced no position: %q", fen)
	}

	return position.NewFromFEN(fen), nil
}

// Mirror returns the color-flipped FEN of fen, used by the evaluator's
// symmetry property tests: swap piece case, flip ranks, and swap the
// side to move.
func Mirror(fen string) (string, error) {
	if _, err := chess.FEN(fen); err != nil {
		return "", fmt.Errorf("fenload: %w", err)
	}

	return mirrorFEN(fen), nil
}

// ECOName returns the ECO opening classification for the given FEN, if
// the position matches a known book line, using the opening book that
// ships alongside notnil/chess.
func ECOName(fen string) string {
	opt, err := chess.FEN(fen)
	if err != nil {
		return ""
	}

	game := chess.NewGame(opt)
	book := opening.NewBookECO()
	if o := book.Find(game.Moves()); o != nil {
		return o.Title()
	}

	return ""
}
