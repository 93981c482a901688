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

package main

import (
	"fmt"
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/mattn/go-runewidth"

	"laptudirm.com/x/kopjevals/internal/fenload"
	"laptudirm.com/x/kopjevals/pkg/eval"
	"laptudirm.com/x/kopjevals/pkg/eval/classical"
)

// startDashboard renders a live terminal dashboard of fen, the
// evaluator's score and a game-phase gauge, refreshing on a timer until
// the user quits. It exists to give the TUI dependencies pulled in by the
// retrieval pack a concrete, if modest, home. It shows no per-term
// breakdown.
func startDashboard(e *classical.Evaluator, fen string) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("dashboard: failed to init termui: %w", err)
	}
	defer ui.Close()

	board, err := fenload.FromFEN(fen)
	if err != nil {
		return err
	}

	header := widgets.NewParagraph()
	header.Title = "evalinfo -watch"
	header.SetRect(0, 0, runewidth.StringWidth(fen)+4, 3)

	scoreBox := widgets.NewParagraph()
	scoreBox.Title = "Score"
	scoreBox.SetRect(0, 3, 40, 6)

	phaseGauge := widgets.NewGauge()
	phaseGauge.Title = "Phase"
	phaseGauge.SetRect(0, 6, 40, 9)

	render := func() {
		score := e.Evaluate(board, -eval.Inf, eval.Inf)
		scoreBox.Text = score.String()
		phaseGauge.Percent = int(e.Phase() * 100)
		header.Text = board.FEN()

		ui.Render(header, scoreBox, phaseGauge)
	}

	render()

	uiEvents := ui.PollEvents()
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case ev := <-uiEvents:
			switch ev.ID {
			case "q", "<C-c>":
				return nil
			}
		case <-ticker.C:
			render()
		}
	}
}
