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

// Package option implements a small typed-option registry, used by
// the command-line tools in cmd/ for named flags with a default and a
// setter, the same "named option with a default" shape the teacher's
// uci option package uses for engine configuration.
package option

import (
	"fmt"
	"strconv"
)

// Option is a named, settable configuration value.
type Option interface {
	Name() string
	Default() string
	Set(value string) error
}

// String is a string-valued Option.
type String struct {
	name  string
	def   string
	Value string
	onSet func(string)
}

// NewString returns a string Option with the given name and default.
func NewString(name, def string) *String {
	return &String{name: name, def: def, Value: def}
}

func (o *String) Name() string    { return o.name }
func (o *String) Default() string { return o.def }

// Set assigns value, running any registered callback.
func (o *String) Set(value string) error {
	o.Value = value
	if o.onSet != nil {
		o.onSet(value)
	}
	return nil
}

// OnSet registers a callback invoked whenever Set succeeds.
func (o *String) OnSet(fn func(string)) { o.onSet = fn }

// Int is an integer-valued Option with optional bounds.
type Int struct {
	name     string
	def      int
	Value    int
	min, max int
	bounded  bool
}

// NewInt returns an unbounded integer Option.
func NewInt(name string, def int) *Int {
	return &Int{name: name, def: def, Value: def}
}

// NewBoundedInt returns an integer Option clamped to [min, max].
func NewBoundedInt(name string, def, min, max int) *Int {
	return &Int{name: name, def: def, Value: def, min: min, max: max, bounded: true}
}

func (o *Int) Name() string    { return o.name }
func (o *Int) Default() string { return strconv.Itoa(o.def) }

// Set parses value as an integer and assigns it, clamping to the
// configured bounds if any.
func (o *Int) Set(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("option %s: %w", o.name, err)
	}

	if o.bounded {
		if n < o.min {
			n = o.min
		}
		if n > o.max {
			n = o.max
		}
	}

	o.Value = n
	return nil
}

// Float is a float64-valued Option.
type Float struct {
	name  string
	def   float64
	Value float64
}

// NewFloat returns a float64 Option.
func NewFloat(name string, def float64) *Float {
	return &Float{name: name, def: def, Value: def}
}

func (o *Float) Name() string    { return o.name }
func (o *Float) Default() string { return strconv.FormatFloat(o.def, 'g', -1, 64) }

// Set parses value as a float64 and assigns it.
func (o *Float) Set(value string) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("option %s: %w", o.name, err)
	}
	o.Value = f
	return nil
}

// Registry is an ordered collection of named Options, looked up by
// name for setoption-style configuration.
type Registry struct {
	order  []string
	byName map[string]Option
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Option)}
}

// Add registers opt, panicking if its name is already registered.
func (r *Registry) Add(opt Option) {
	if _, exists := r.byName[opt.Name()]; exists {
		panic("option.Registry.Add: duplicate option " + opt.Name())
	}
	r.order = append(r.order, opt.Name())
	r.byName[opt.Name()] = opt
}

// Set looks up the option named name and sets it to value.
func (r *Registry) Set(name, value string) error {
	opt, ok := r.byName[name]
	if !ok {
		return fmt.Errorf("option: unknown option %q", name)
	}
	return opt.Set(value)
}

// Names returns the registered option names in registration order.
func (r *Registry) Names() []string {
	return r.order
}
