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

package util_test

import (
	"testing"

	"laptudirm.com/x/kopjevals/internal/util"
)

func TestMaxMin(t *testing.T) {
	if util.Max(3, 7) != 7 {
		t.Error("Max(3, 7) should be 7")
	}
	if util.Min(3, 7) != 3 {
		t.Error("Min(3, 7) should be 3")
	}
}

func TestAbs(t *testing.T) {
	if util.Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if util.Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
}

func TestLerp(t *testing.T) {
	if got := util.Lerp(0, 100, 0, 4); got != 0 {
		t.Errorf("Lerp(0, 100, 0, 4) = %d, want 0", got)
	}
	if got := util.Lerp(0, 100, 4, 4); got != 100 {
		t.Errorf("Lerp(0, 100, 4, 4) = %d, want 100", got)
	}
	if got := util.Lerp(0, 100, 2, 4); got != 50 {
		t.Errorf("Lerp(0, 100, 2, 4) = %d, want 50", got)
	}
}

func TestTernary(t *testing.T) {
	if util.Ternary(true, "a", "b") != "a" {
		t.Error("Ternary(true, a, b) should be a")
	}
	if util.Ternary(false, "a", "b") != "b" {
		t.Error("Ternary(false, a, b) should be b")
	}
}
