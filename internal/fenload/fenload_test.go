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

package fenload_test

import (
	"strings"
	"testing"

	"laptudirm.com/x/kopjevals/internal/fenload"
	"laptudirm.com/x/kopjevals/pkg/position"
)

func TestFromFENStartPosition(t *testing.T) {
	board, err := fenload.FromFEN(position.StartFEN)
	if err != nil {
		t.Fatalf("FromFEN(start): %v", err)
	}
	// FEN() drops the move counters, so compare the first four fields.
	want := strings.Join(strings.Fields(position.StartFEN)[:4], " ")
	if got := board.FEN(); got != want {
		t.Errorf("FEN() = %q, want %q", got, want)
	}
}

func TestFromFENRejectsMalformed(t *testing.T) {
	if _, err := fenload.FromFEN("not a fen"); err == nil {
		t.Error("FromFEN(garbage) should return an error")
	}
}

func TestMirrorRoundTrip(t *testing.T) {
	mirrored, err := fenload.Mirror(position.StartFEN)
	if err != nil {
		t.Fatalf("Mirror(start): %v", err)
	}

	// the start position is colour-symmetric, so mirroring it twice
	// should return to the original side to move and board layout.
	twice, err := fenload.Mirror(mirrored)
	if err != nil {
		t.Fatalf("Mirror(mirror(start)): %v", err)
	}

	board := position.NewFromFEN(twice)
	start := position.NewFromFEN(position.StartFEN)
	if board.FEN() != start.FEN() {
		t.Errorf("Mirror(Mirror(start)) = %q, want %q", board.FEN(), start.FEN())
	}
}
