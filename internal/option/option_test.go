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

package option_test

import (
	"testing"

	"laptudirm.com/x/kopjevals/internal/option"
)

func TestStringOption(t *testing.T) {
	opt := option.NewString("fen", "startpos")
	if opt.Default() != "startpos" {
		t.Errorf("Default() = %q, want %q", opt.Default(), "startpos")
	}

	if err := opt.Set("custom"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if opt.Value != "custom" {
		t.Errorf("Value = %q, want %q", opt.Value, "custom")
	}
}

func TestBoundedIntClamps(t *testing.T) {
	opt := option.NewBoundedInt("epochs", 100, 1, 10)

	if err := opt.Set("9999"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if opt.Value != 10 {
		t.Errorf("Value = %d, want clamped to 10", opt.Value)
	}

	if err := opt.Set("-5"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if opt.Value != 1 {
		t.Errorf("Value = %d, want clamped to 1", opt.Value)
	}
}

func TestIntRejectsNonNumeric(t *testing.T) {
	opt := option.NewInt("nodes", 0)
	if err := opt.Set("not-a-number"); err == nil {
		t.Error("Set(\"not-a-number\") should return an error")
	}
}

func TestRegistryLookup(t *testing.T) {
	r := option.NewRegistry()
	r.Add(option.NewString("fen", "startpos"))
	r.Add(option.NewFloat("lr", 1.0))

	if err := r.Set("fen", "custom"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := r.Set("missing", "x"); err == nil {
		t.Error("Set(\"missing\", ...) should return an error")
	}

	names := r.Names()
	if len(names) != 2 || names[0] != "fen" || names[1] != "lr" {
		t.Errorf("Names() = %v, want [fen lr] in registration order", names)
	}
}

func TestRegistryAddDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Add with a duplicate name should panic")
		}
	}()

	r := option.NewRegistry()
	r.Add(option.NewString("fen", "startpos"))
	r.Add(option.NewString("fen", "other"))
}
