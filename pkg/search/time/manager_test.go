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

package time_test

import (
	"testing"

	searchtime "laptudirm.com/x/kopjevals/pkg/search/time"
)

func TestNewManagerStartsRunning(t *testing.T) {
	m := searchtime.NewManager()
	if m.State() != searchtime.Running {
		t.Errorf("State() = %v, want Running", m.State())
	}
	if !m.IsTimeLeft(nil) {
		t.Error("IsTimeLeft(nil) should be true immediately after construction")
	}
}

func TestStopSearchIsImmediatelyObserved(t *testing.T) {
	m := searchtime.NewManager()
	m.StopSearch()

	if m.IsTimeLeft(nil) {
		t.Error("IsTimeLeft should be false after StopSearch")
	}
	if m.RootTimeLeft(0) {
		t.Error("RootTimeLeft should be false after StopSearch")
	}
	if m.State() != searchtime.Stopped {
		t.Errorf("State() = %v, want Stopped", m.State())
	}
}

func TestSetDepthLimitNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetDepthLimit(-1) should panic")
		}
	}()
	searchtime.NewManager().SetDepthLimit(-1)
}

func TestSetNodeLimitNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetNodeLimit(-1) should panic")
		}
	}()
	searchtime.NewManager().SetNodeLimit(-1)
}

func TestSetMoveTimeLimitNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetMoveTimeLimit(-1) should panic")
		}
	}()
	searchtime.NewManager().SetMoveTimeLimit(-1)
}

func TestSetMatchTimeLimitNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetMatchTimeLimit with a negative input should panic")
		}
	}()
	searchtime.NewManager().SetMatchTimeLimit(-1, 0, 40)
}

func TestDepthAndNodeLimitReached(t *testing.T) {
	m := searchtime.NewManager()
	m.SetDepthLimit(10)
	m.SetNodeLimit(1000)

	if m.DepthLimitReached(9) {
		t.Error("DepthLimitReached(9) should be false below the cap")
	}
	if !m.DepthLimitReached(10) {
		t.Error("DepthLimitReached(10) should be true at the cap")
	}

	if m.NodeLimitReached(999) {
		t.Error("NodeLimitReached(999) should be false below the cap")
	}
	if !m.NodeLimitReached(1000) {
		t.Error("NodeLimitReached(1000) should be true at the cap")
	}
}

// TestUpdateWarmUp checks spec's depth-6 warm-up window from the outside:
// after Updates at depths 1 through 5 only, RootTimeLeft still reports
// time left on a fresh clock.
func TestUpdateWarmUp(t *testing.T) {
	m := searchtime.NewManager()
	m.SetMatchTimeLimit(60000, 0, 40)

	for depth := 1; depth < 6; depth++ {
		m.Update(depth, 10, "e2e4")
	}

	if !m.RootTimeLeft(0) {
		t.Error("RootTimeLeft should still be true during the warm-up window")
	}
}

// TestUpdateStableAndUnstableKeepRootTime feeds one manager a best move
// that alternates every depth and another a best move that never
// changes, through depth 12, and checks that both still report root time
// left on a fresh clock.
func TestUpdateStableAndUnstableKeepRootTime(t *testing.T) {
	unstable := searchtime.NewManager()
	unstable.SetMatchTimeLimit(60000, 0, 40)
	for depth := 1; depth <= 12; depth++ {
		move := "e2e4"
		if depth%2 == 0 {
			move = "d2d4"
		}
		unstable.Update(depth, 20, move)
	}

	stable := searchtime.NewManager()
	stable.SetMatchTimeLimit(60000, 0, 40)
	for depth := 1; depth <= 12; depth++ {
		stable.Update(depth, 20, "e2e4")
	}

	// Both managers should still consider their target reachable just
	// after construction (elapsed time is negligible). The internal
	// moveFactor (smaller for the stable search) is not visible here.
	if !stable.RootTimeLeft(0) || !unstable.RootTimeLeft(0) {
		t.Error("RootTimeLeft should be true immediately after Update with a fresh clock")
	}
}
