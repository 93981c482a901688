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

package bitboard_test

import (
	"testing"

	"laptudirm.com/x/kopjevals/pkg/board/bitboard"
	"laptudirm.com/x/kopjevals/pkg/board/piece"
	"laptudirm.com/x/kopjevals/pkg/board/square"
)

func TestBetweenAligned(t *testing.T) {
	cases := []struct {
		a, b square.Square
		want []square.Square
	}{
		{square.A1, square.A4, []square.Square{square.A2, square.A3}},
		{square.A1, square.H8, []square.Square{square.B2, square.C3, square.D4, square.E5, square.F6, square.G7}},
		{square.A1, square.B1, nil},
	}

	for _, c := range cases {
		got := bitboard.Between[c.a][c.b]
		var want bitboard.Board
		for _, s := range c.want {
			want.Set(s)
		}

		if got != want {
			t.Errorf("Between[%s][%s] = %s, want %s", c.a, c.b, got, want)
		}
	}
}

func TestBetweenUnaligned(t *testing.T) {
	if got := bitboard.Between[square.A1][square.B3]; got != bitboard.Empty {
		t.Errorf("Between[A1][B3] = %s, want empty (not aligned)", got)
	}
}

func TestPassedPawnMaskCoversThreeFiles(t *testing.T) {
	mask := bitboard.PassedPawnMask[piece.White][square.E4]

	// White advances from E4 towards the eighth rank, so the mask
	// should cover D/E/F on every rank strictly ahead of the fourth.
	for _, s := range []square.Square{square.D5, square.E5, square.F5, square.D8, square.E8, square.F8} {
		if !mask.IsSet(s) {
			t.Errorf("PassedPawnMask[White][E4] should include %s", s)
		}
	}

	if mask.IsSet(square.E3) {
		t.Error("PassedPawnMask[White][E4] should not include squares behind White")
	}
	if mask.IsSet(square.E4) {
		t.Error("PassedPawnMask[White][E4] should not include the square itself")
	}
}

func TestForwardFileMaskIsOneFile(t *testing.T) {
	mask := bitboard.ForwardFileMask[piece.White][square.E4]

	if !mask.IsSet(square.E8) || !mask.IsSet(square.E5) {
		t.Error("ForwardFileMask[White][E4] should include squares ahead on the E file")
	}
	if mask.IsSet(square.D5) || mask.IsSet(square.F5) {
		t.Error("ForwardFileMask[White][E4] should not include adjacent files")
	}
	if mask.IsSet(square.E3) {
		t.Error("ForwardFileMask[White][E4] should not include squares behind White")
	}
}

func TestAdjacentFilesExcludesSelf(t *testing.T) {
	mask := bitboard.AdjacentFiles[square.FileD]

	if mask&bitboard.Files[square.FileD] != 0 {
		t.Error("AdjacentFiles[D] should not include the D file itself")
	}
	if mask&bitboard.Files[square.FileC] == 0 || mask&bitboard.Files[square.FileE] == 0 {
		t.Error("AdjacentFiles[D] should include the C and E files")
	}
}
