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

// Package time implements the closed-loop search time controller: it
// holds deadline state and, after every iterative-deepening result,
// adapts two feedback factors (score stability and best-move
// stability) that grow or shrink how much of the allotted budget the
// root is willing to keep spending.
package time

import (
	"math"
	"sync/atomic"
	"time"
)

// State is one of the three states a Manager can be in.
type State uint8

// constants representing the states a Manager can be in.
const (
	Idle State = iota
	Running
	Stopped
)

// Move is the minimal move identity the Manager needs to tell whether
// the search's best move changed between iterations: opaque to this
// package, compared only with ==.
type Move any

// SearchData is the caller-owned handle IsTimeLeft may annotate with
// whether the match-time target has been reached, mirroring the
// teacher's side-effecting probe but confined to this single field.
type SearchData struct {
	TargetReached bool
}

// limit is an optional, enable-able bound.
type limit struct {
	enabled bool
	value   int64
}

func (l limit) exceeded(elapsed int64) bool {
	return l.enabled && elapsed > l.value
}

// Manager is the search time controller described by the spec: single
// writer for configuration (the search thread before launching a
// search), multi-reader for probes, with ForceStop as the one
// cross-thread write requiring atomic-publish semantics.
type Manager struct {
	state State

	startTime int64 // nowMillis() at construction

	depthLimit limit
	nodeLimit  limit

	moveTimeLimit  limit // upper_bound_ms
	matchTimeLimit limit // target_ms

	lastEval      int
	hasLastEval   bool
	prevMove      Move
	sameMoveDepth int

	evalFactor float64
	moveFactor float64

	forceStop atomic.Bool
}

// NewManager constructs a Manager in the Running state with its start
// time recorded as now.
func NewManager() *Manager {
	return &Manager{
		state:      Running,
		startTime:  nowMillis(),
		evalFactor: 1.0,
		moveFactor: 1.0,
	}
}

// processStart anchors nowMillis; time.Since reads the monotonic clock
// reading carried by a time.Time, so wall-clock changes do not affect it.
var processStart = time.Now()

func nowMillis() int64 {
	return time.Since(processStart).Milliseconds()
}

// SetDepthLimit enables a hard depth cap.
func (m *Manager) SetDepthLimit(depth int) {
	if depth < 0 {
		panic("time.SetDepthLimit: negative depth")
	}
	m.depthLimit = limit{true, int64(depth)}
}

// SetNodeLimit enables a hard node-count cap.
func (m *Manager) SetNodeLimit(nodes int64) {
	if nodes < 0 {
		panic("time.SetNodeLimit: negative node count")
	}
	m.nodeLimit = limit{true, nodes}
}

// SetMoveTimeLimit enables a flat per-move wall-clock cap.
func (m *Manager) SetMoveTimeLimit(ms int64) {
	if ms < 0 {
		panic("time.SetMoveTimeLimit: negative duration")
	}
	m.moveTimeLimit = limit{true, ms}
}

// SetMatchTimeLimit installs the upper-bound and target move-time
// limits computed from the remaining match clock, per spec §4.4.
func (m *Manager) SetMatchTimeLimit(remainingMs, incrementMs int64, movesToGo int) {
	if remainingMs < 0 || incrementMs < 0 || movesToGo < 0 {
		panic("time.SetMatchTimeLimit: negative input")
	}

	division := float64(movesToGo + 1)
	remaining := float64(remainingMs)
	increment := float64(incrementMs)

	upperBound := (remaining/division)*3 + math.Min(remaining*0.9+increment, increment*3) - 25
	target := remaining / 40

	max := remaining - increment
	if upperBound > max {
		upperBound = max
	}
	if target > max {
		target = max
	}
	if upperBound < 0 {
		upperBound = 0
	}
	if target < 0 {
		target = 0
	}

	m.moveTimeLimit = limit{true, int64(upperBound)}
	m.matchTimeLimit = limit{true, int64(target)}
}

// Update feeds back the result of one completed iterative-deepening
// iteration, adjusting evalFactor and moveFactor per spec §4.4.
func (m *Manager) Update(depth int, score int, best Move) {
	if depth < 6 {
		m.lastEval = score
		m.hasLastEval = true
		m.prevMove = best
		return
	}

	if m.hasLastEval && best == m.prevMove {
		m.sameMoveDepth++
	} else {
		m.sameMoveDepth = 0
	}

	m.moveFactor = math.Max(math.Pow(1.05, float64(9-m.sameMoveDepth)), 0.4)

	if m.hasLastEval {
		diff := math.Abs(float64(score-m.lastEval)) / 25
		if diff > 1 {
			diff = 1
		}
		m.evalFactor *= math.Pow(1.05, diff)
	}

	m.lastEval = score
	m.hasLastEval = true
	m.prevMove = best
}

// StopSearch requests that the search stop as soon as possible. Safe
// to call from any goroutine.
func (m *Manager) StopSearch() {
	m.forceStop.Store(true)
	m.state = Stopped
}

// ElapsedMs returns the monotonic wall-clock time elapsed since the
// Manager was constructed, in milliseconds.
func (m *Manager) ElapsedMs() int64 {
	return nowMillis() - m.startTime
}

// IsTimeLeft is the inner-loop gate, polled by search workers at leaf
// boundaries. It never returns true once ForceStop has been observed.
func (m *Manager) IsTimeLeft(data *SearchData) bool {
	if m.forceStop.Load() {
		return false
	}

	elapsed := m.ElapsedMs()

	if m.moveTimeLimit.exceeded(elapsed) {
		return false
	}

	if data != nil && m.matchTimeLimit.enabled {
		data.TargetReached = elapsed >= m.matchTimeLimit.value
	}

	return true
}

// RootTimeLeft is the outer-loop gate, polled only between completed
// iterations. scoreHint is accepted for interface symmetry with
// engines that bias the decision on the latest score; this
// implementation's formula does not use it directly, matching spec
// §4.4's literal contract.
func (m *Manager) RootTimeLeft(scoreHint int) bool {
	_ = scoreHint

	if m.forceStop.Load() {
		return false
	}

	elapsed := m.ElapsedMs()

	if m.moveTimeLimit.exceeded(elapsed) {
		return false
	}

	if m.matchTimeLimit.enabled {
		budget := float64(m.matchTimeLimit.value) * m.evalFactor * m.moveFactor * 0.8
		if budget < float64(elapsed) {
			return false
		}
	}

	return true
}

// DepthLimitReached reports whether depth has reached the configured
// depth cap, or false if no cap is set.
func (m *Manager) DepthLimitReached(depth int) bool {
	return m.depthLimit.enabled && int64(depth) >= m.depthLimit.value
}

// NodeLimitReached reports whether nodes has reached the configured
// node cap, or false if no cap is set.
func (m *Manager) NodeLimitReached(nodes int64) bool {
	return m.nodeLimit.enabled && nodes >= m.nodeLimit.value
}

// State returns the Manager's current state.
func (m *Manager) State() State {
	return m.state
}
