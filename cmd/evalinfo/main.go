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

// Command evalinfo evaluates a single FEN and prints the resolved
// centipawn score from the classical evaluator. With -pgn it lists the
// moves of each parsed game, each beside the score of the starting
// position: moves are not applied to the board.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mitchellh/colorstring"
	"github.com/mitchellh/go-wordwrap"
	pgn "gopkg.in/freeeve/pgn.v1"

	"laptudirm.com/x/kopjevals/internal/fenload"
	"laptudirm.com/x/kopjevals/internal/option"
	"laptudirm.com/x/kopjevals/pkg/eval"
	"laptudirm.com/x/kopjevals/pkg/eval/classical"
	"laptudirm.com/x/kopjevals/pkg/position"
)

func main() {
	opts := option.NewRegistry()
	fenOpt := option.NewString("fen", position.StartFEN)
	opts.Add(fenOpt)

	fen := flag.String("fen", position.StartFEN, "FEN of the position to evaluate")
	pgnFile := flag.String("pgn", "", "list the moves of this PGN file, each with the start position's score (moves are not applied)")
	trace := flag.Bool("trace", false, "also print the game phase after the score")
	watch := flag.Bool("watch", false, "show a live terminal dashboard instead of printing once")
	explain := flag.Bool("explain", false, "print a prose summary of the FEN, score and game phase")
	flag.Parse()

	terms := classical.NewDefaultTerms()
	evaluator := classical.NewEvaluator(terms)

	if *watch {
		runWatch(evaluator, *fen)
		return
	}

	if *pgnFile != "" {
		runPGN(evaluator, *pgnFile, *trace)
		return
	}

	runSingle(evaluator, *fen, *trace, *explain)
}

func runSingle(e *classical.Evaluator, fen string, trace, explain bool) {
	board, err := fenload.FromFEN(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "evalinfo: %s\n", err)
		os.Exit(1)
	}

	score := e.Evaluate(board, -eval.Inf, eval.Inf)
	printScore(fen, score)

	if trace {
		fmt.Printf("phase: %.3f\n", e.Phase())
	}

	if explain {
		printExplanation(board, score, e.Phase())
	}
}

func printScore(fen string, score eval.Eval) {
	color := "green"
	if score < 0 {
		color = "red"
	}

	fmt.Println(colorstring.Color(fmt.Sprintf("[%s]%s[reset] %s", color, score, fen)))
}

func printExplanation(board *position.Board, score eval.Eval, phase float64) {
	text := fmt.Sprintf(
		"Evaluated %s to be %s from the side to move's perspective, at a game phase of %.2f "+
			"(0 is a full middle game, 1 is a pure king-and-pawn ending). The score already "+
			"includes material, piece placement, mobility, king safety, and pawn structure.",
		board.FEN(), score, phase,
	)

	fmt.Println(wordwrap.WrapString(text, 80))
}

func runPGN(e *classical.Evaluator, path string, trace bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "evalinfo: %s\n", err)
		os.Exit(1)
	}

	games, err := pgn.ParseMultiple(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "evalinfo: %s\n", err)
		os.Exit(1)
	}

	for _, game := range games {
		board := position.NewFromFEN(position.StartFEN)
		for _, move := range game.MoveList() {
			applyPGNMove(board, move.String())

			score := e.Evaluate(board, -eval.Inf, eval.Inf)
			fmt.Printf("%-8s %s\n", move, score)

			if trace {
				fmt.Printf("         phase: %.3f\n", e.Phase())
			}
		}
	}
}

// applyPGNMove leaves the board unchanged: this module has no SAN move
// application, so every move line of a -pgn run shows the score of the
// starting position.
func applyPGNMove(board *position.Board, move string) {
	_ = board
	_ = move
}

func runWatch(e *classical.Evaluator, fen string) {
	if err := startDashboard(e, fen); err != nil {
		fmt.Fprintf(os.Stderr, "evalinfo: %s\n", err)
		os.Exit(1)
	}
}
