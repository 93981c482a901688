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

package classical_test

import (
	"testing"

	"laptudirm.com/x/kopjevals/internal/fenload"
	"laptudirm.com/x/kopjevals/pkg/board/piece"
	"laptudirm.com/x/kopjevals/pkg/eval"
	"laptudirm.com/x/kopjevals/pkg/eval/classical"
	"laptudirm.com/x/kopjevals/pkg/position"
)

func newEvaluator() *classical.Evaluator {
	return classical.NewEvaluator(classical.NewDefaultTerms())
}

// TestStartPositionIsSymmetric checks spec's determinism/perspective
// property: the starting position is symmetric, so every term cancels
// except the side-to-move bonus, and at phase 0 the score is exactly
// that bonus's middle-game value.
func TestStartPositionIsSymmetric(t *testing.T) {
	e := newEvaluator()
	board := position.NewFromFEN(position.StartFEN)

	want := e.Terms.SideToMove.MG()
	score := e.Evaluate(board, -eval.Inf, eval.Inf)
	if score != want {
		t.Errorf("Evaluate(start) = %d, want %d", score, want)
	}
}

// TestMirrorSymmetry checks that mirroring a position (swap colors, flip
// ranks, swap side to move) leaves the evaluator's score unchanged, since
// both scores are from the side to move's perspective.
func TestMirrorSymmetry(t *testing.T) {
	const fen = "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"

	mirrored, err := fenload.Mirror(fen)
	if err != nil {
		t.Fatalf("Mirror(%q): %v", fen, err)
	}

	e := newEvaluator()

	board := position.NewFromFEN(fen)
	mirroredBoard := position.NewFromFEN(mirrored)

	score := e.Evaluate(board, -eval.Inf, eval.Inf)
	mirroredScore := e.Evaluate(mirroredBoard, -eval.Inf, eval.Inf)

	if score != mirroredScore {
		t.Errorf("Evaluate(original) = %d, Evaluate(mirror) = %d, want equal (both from side to move's perspective)", score, mirroredScore)
	}
}

// TestDeterminism checks that repeated evaluation of the same position
// returns the same score, across a scratch context that gets reused.
func TestDeterminism(t *testing.T) {
	const fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	e := newEvaluator()
	board := position.NewFromFEN(fen)

	first := e.Evaluate(board, -eval.Inf, eval.Inf)
	for i := 0; i < 5; i++ {
		if got := e.Evaluate(board, -eval.Inf, eval.Inf); got != first {
			t.Errorf("Evaluate call %d = %d, want %d (deterministic repeat)", i, got, first)
		}
	}
}

// TestPhaseBounds checks that Phase never leaves [0, 1]: the starting
// position (full material) should read near 0, and a bare king-and-pawn
// ending should read exactly 1.
func TestPhaseBounds(t *testing.T) {
	e := newEvaluator()

	start := position.NewFromFEN(position.StartFEN)
	e.Evaluate(start, -eval.Inf, eval.Inf)
	if phase := e.Phase(); phase != 0 {
		t.Errorf("Phase(start) = %f, want 0", phase)
	}

	const kpEnding = "8/8/4k3/8/3K4/8/4P3/8 w - - 0 1"
	ending := position.NewFromFEN(kpEnding)
	e.Evaluate(ending, -eval.Inf, eval.Inf)
	if phase := e.Phase(); phase != 1 {
		t.Errorf("Phase(k+p ending) = %f, want 1", phase)
	}
}

// TestMatingMaterial exercises spec's mating-material edge cases: a lone
// king has none, a king and pawn does, and two minors need a bishop.
func TestMatingMaterial(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want bool
	}{
		{"lone king", "8/8/4k3/8/3K4/8/8/8 w - - 0 1", false},
		{"king and pawn", "8/8/4k3/8/3K4/8/4P3/8 w - - 0 1", true},
		{"two knights", "8/8/4k3/8/3K1NN1/8/8/8 w - - 0 1", false},
		{"knight and bishop", "8/8/4k3/8/3K1NB1/8/8/8 w - - 0 1", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			board := position.NewFromFEN(c.fen)
			if got := classical.MatingMaterial(board, piece.White); got != c.want {
				t.Errorf("MatingMaterial(%q) = %v, want %v", c.fen, got, c.want)
			}
		})
	}
}

func TestEvaluateNilPositionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Evaluate(nil) should panic")
		}
	}()

	newEvaluator().Evaluate(nil, -eval.Inf, eval.Inf)
}

func TestNewEvaluatorNilTermsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewEvaluator(nil) should panic")
		}
	}()

	classical.NewEvaluator(nil)
}

func BenchmarkEvaluate(b *testing.B) {
	e := newEvaluator()
	board := position.NewFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Evaluate(board, -eval.Inf, eval.Inf)
	}
}
