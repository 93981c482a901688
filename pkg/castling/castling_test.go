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

package castling_test

import (
	"testing"

	"laptudirm.com/x/kopjevals/pkg/castling"
)

func TestNewRightsRoundTrip(t *testing.T) {
	cases := []string{"-", "KQkq", "Kq", "kq", "Q"}

	for _, c := range cases {
		got := castling.NewRights(c).String()
		if got != c {
			t.Errorf("NewRights(%q).String() = %q, want %q", c, got, c)
		}
	}
}

func TestRightsGroups(t *testing.T) {
	rights := castling.NewRights("KQkq")

	if rights&castling.White != castling.White {
		t.Error("KQkq should include every White right")
	}
	if rights&castling.Black != castling.Black {
		t.Error("KQkq should include every Black right")
	}
	if rights != castling.All {
		t.Error("KQkq should equal All")
	}
}
