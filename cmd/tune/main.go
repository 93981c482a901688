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

// Command tune runs an offline AdaGrad-style gradient descent over a
// labeled EPD dataset, adjusting the classical evaluator's scalar
// feature terms to minimize mean-squared error against the recorded
// game outcomes. It is scaffolding around Terms.FetchScalar, not a
// claim that the evaluator's parameters are tuned to convergence; the
// gradient math itself is explicitly out of scope.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"

	"laptudirm.com/x/kopjevals/internal/fenload"
	"laptudirm.com/x/kopjevals/internal/option"
	"laptudirm.com/x/kopjevals/pkg/eval"
	"laptudirm.com/x/kopjevals/pkg/eval/classical"
)

// sample is one labeled EPD entry: a position plus its known game
// outcome, scaled to [0, 1] (loss, draw, win) from White's perspective.
type sample struct {
	fen    string
	result float64
}

func main() {
	opts := option.NewRegistry()
	epochsOpt := option.NewBoundedInt("epochs", 100, 1, 100000)
	lrOpt := option.NewFloat("lr", 1.0)
	opts.Add(epochsOpt)
	opts.Add(lrOpt)

	dataset := flag.String("dataset", "", "path to a labeled EPD dataset, one 'fen c9 \"result\";' line per sample")
	epochs := flag.Int("epochs", 100, "number of gradient-descent epochs")
	lr := flag.Float64("lr", 1.0, "AdaGrad learning rate")
	plotPath := flag.String("plot", "error-plot.html", "where to write the mean-squared-error convergence plot")
	flag.Parse()

	if *dataset == "" {
		fmt.Fprintln(os.Stderr, "tune: -dataset is required")
		os.Exit(1)
	}

	samples, err := loadDataset(*dataset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tune: %s\n", err)
		os.Exit(1)
	}

	terms := classical.NewDefaultTerms()
	errors := run(terms, samples, *epochs, *lr)

	if err := plot(*plotPath, errors); err != nil {
		fmt.Fprintf(os.Stderr, "tune: %s\n", err)
	}
}

// loadDataset parses a Zurichess/Koivisto-style labeled EPD file: a
// FEN followed by a c9 "result" opcode, one sample per line.
func loadDataset(path string) ([]sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var samples []sample
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.SplitN(line, "c9", 2)
		if len(fields) != 2 {
			continue
		}

		fen := strings.TrimSpace(fields[0])
		if _, err := fenload.FromFEN(fen); err != nil {
			continue
		}

		result := strings.Trim(strings.TrimSpace(strings.Trim(fields[1], ";")), `"`)
		value, err := strconv.ParseFloat(result, 64)
		if err != nil {
			switch result {
			case "1-0":
				value = 1
			case "0-1":
				value = 0
			default:
				value = 0.5
			}
		}

		samples = append(samples, sample{fen: fen, result: value})
	}

	return samples, scanner.Err()
}

// run performs epochs passes of AdaGrad gradient descent over every
// scalar term in terms, evaluated by finite-difference sampling of the
// mean-squared sigmoid error against the dataset's known results. It
// returns the per-epoch error, for plotting.
func run(terms *classical.Terms, samples []sample, epochs int, lr float64) []float64 {
	names := classical.ScalarNames()
	accum := make([]float64, len(names))
	errors := make([]float64, 0, epochs)

	bar := progressbar.Default(int64(epochs), "tuning")

	const k = 1.0 / 400.0 // logistic scaling constant, matches common Texel-tuner defaults
	const step = 1.0      // finite-difference probe step, in centipawns

	for epoch := 0; epoch < epochs; epoch++ {
		mse := meanSquaredError(terms, samples, k)
		errors = append(errors, mse)

		for i := range names {
			term := terms.FetchScalar(i)
			base := *term

			*term = base + eval.Score(step)
			plus := meanSquaredError(terms, samples, k)
			*term = base

			grad := (plus - mse) / step
			accum[i] += grad * grad

			adjusted := lr / math.Sqrt(accum[i]+1e-8)
			*term = base - eval.Score(adjusted*grad)
		}

		_ = bar.Add(1)
	}

	return errors
}

// meanSquaredError scores every sample with the evaluator under terms
// and compares a logistic transform of the score to its known result.
func meanSquaredError(terms *classical.Terms, samples []sample, k float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	evaluator := classical.NewEvaluator(terms)

	var sum float64
	for _, s := range samples {
		board, err := fenload.FromFEN(s.fen)
		if err != nil {
			continue
		}

		score := float64(evaluator.Evaluate(board, -eval.Inf, eval.Inf))
		sigmoid := 1 / (1 + math.Exp(-k*score))
		diff := sigmoid - s.result
		sum += diff * diff
	}

	return sum / float64(len(samples))
}

// plot writes the per-epoch mean-squared-error curve to an HTML chart,
// mirroring the teacher's own convergence report.
func plot(path string, errors []float64) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Tuning error"}),
	)

	x := make([]int, len(errors))
	items := make([]opts.LineData, len(errors))
	for i, e := range errors {
		x[i] = i
		items[i] = opts.LineData{Value: e}
	}

	line.SetXAxis(x).AddSeries("mse", items)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return line.Render(f)
}
