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

package eval_test

import (
	"testing"

	"laptudirm.com/x/kopjevals/pkg/eval"
)

func FuzzRecovery(f *testing.F) {
	f.Add(int32(1000), int32(-1000))
	f.Add(int32(2648), int32(7346))
	f.Add(int32(-3683), int32(-8374))

	f.Fuzz(func(t *testing.T, a, b int32) {
		mg, eg := eval.Eval(a), eval.Eval(b)
		s := eval.S(mg, eg)

		if s.MG() != mg || s.EG() != eg {
			t.Errorf("S(%d, %d) != S(%d, %d)", mg, eg, s.MG(), s.EG())
		}
	})
}

func FuzzAddition(f *testing.F) {
	f.Add(int32(1000), int32(-1000), int32(-1000), int32(1000))
	f.Add(int32(2648), int32(7346), int32(3683), int32(8374))
	f.Add(int32(-2648), int32(-7346), int32(-3683), int32(-8374))

	f.Fuzz(func(t *testing.T, a, b, c, d int32) {
		mg1, eg1, mg2, eg2 := eval.Eval(a), eval.Eval(b), eval.Eval(c), eval.Eval(d)

		s1 := eval.S(mg1, eg1)
		s2 := eval.S(mg2, eg2)

		if sum := s1 + s2; sum != eval.S(mg1+mg2, eg1+eg2) {
			t.Errorf("S(%d, %d) + S(%d, %d) -> S(%d, %d)", a, b, c, d, sum.MG(), sum.EG())
		}
	})
}

func FuzzMultiplication(f *testing.F) {
	f.Add(int32(1000), int32(-1000), int32(-1000))
	f.Add(int32(2648), int32(7346), int32(3683))
	f.Add(int32(-2648), int32(-7346), int32(-3683))

	f.Fuzz(func(t *testing.T, a, b, c int32) {
		mg1, eg1, coeff := eval.Eval(a), eval.Eval(b), eval.Eval(c)

		s := eval.S(mg1, eg1)
		actual := eval.S(mg1*coeff, eg1*coeff)

		if product := eval.Score(coeff) * s; product != actual {
			t.Errorf("%d x S(%d, %d) -> S(%d, %d)\nshould be S(%d, %d)",
				c, a, b, product.MG(), product.EG(), actual.MG(), actual.EG())
		}
	})
}

func TestMatedIn(t *testing.T) {
	cases := []struct {
		plys int
		want eval.Eval
	}{
		{0, -eval.Mate},
		{1, -eval.Mate + 1},
		{10, -eval.Mate + 10},
	}

	for _, c := range cases {
		if got := eval.MatedIn(c.plys); got != c.want {
			t.Errorf("MatedIn(%d) = %d, want %d", c.plys, got, c.want)
		}
	}
}

func TestEvalString(t *testing.T) {
	if got := eval.Eval(150).String(); got != "cp 150" {
		t.Errorf("Eval(150).String() = %q, want %q", got, "cp 150")
	}

	mate := eval.MatedIn(3)
	if got := (-mate).String(); got == "" {
		t.Errorf("(-MatedIn(3)).String() should not be empty")
	}
}
