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

package fenload

import "strings"

// mirrorFEN color-flips a FEN: the board is reversed rank by rank with
// piece case swapped, side to move swaps, castling rights swap case
// (written back in KQkq order), and the en passant square is
// rank-flipped.
func mirrorFEN(fen string) string {
	fields := strings.Fields(fen)

	ranks := strings.Split(fields[0], "/")
	flipped := make([]string, len(ranks))
	for i, rank := range ranks {
		flipped[len(ranks)-1-i] = swapCase(rank)
	}
	board := strings.Join(flipped, "/")

	side := "b"
	if fields[1] == "b" {
		side = "w"
	}

	castling := swapCase(fields[2])
	if castling != "-" {
		var ordered strings.Builder
		for _, r := range "KQkq" {
			if strings.ContainsRune(castling, r) {
				ordered.WriteRune(r)
			}
		}
		castling = ordered.String()
	}

	ep := fields[3]
	if ep != "-" {
		ep = string(ep[0]) + flipRank(ep[1])
	}

	return board + " " + side + " " + castling + " " + ep + " 0 1"
}

func swapCase(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			sb.WriteRune(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r - 'A' + 'a')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func flipRank(r byte) string {
	return string('1' + ('8' - r))
}
