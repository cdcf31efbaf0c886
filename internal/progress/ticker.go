package progress

import (
	"math/rand"
	"sync"
)

// State of an analysis progress ticker.
type State string

const (
	StateIdle      State = "idle"
	StateAdvancing State = "advancing"
	StateComplete  State = "complete"
)

// stages are the labels shown while an analysis runs. The label shown is
// picked by the current percentage.
var stages = []string{
	"Uploading document...",
	"Extracting emission data...",
	"Categorizing by scope...",
	"Benchmarking against peers...",
	"Drafting recommendations...",
}

// Snapshot is a point-in-time view of the ticker.
type Snapshot struct {
	State   State   `json:"state"`
	Percent float64 `json:"percent"`
	Stage   string  `json:"stage"`
}

// Ticker simulates analysis progress while the real call is in flight.
// It advances by random increments, holds at 95 percent, and snaps to
// 100 on completion.
type Ticker struct {
	mu      sync.Mutex
	state   State
	percent float64
	rnd     func() float64
}

func NewTicker() *Ticker {
	return &Ticker{state: StateIdle, rnd: rand.Float64}
}

// Start resets the ticker and begins advancing.
func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = StateAdvancing
	t.percent = 0
}

// Advance moves the percentage forward by a random step, capped at 95
// until Complete is called. Advancing an idle or completed ticker does
// nothing.
func (t *Ticker) Advance() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateAdvancing {
		return
	}
	t.percent += 5 + t.rnd()*10
	if t.percent > 95 {
		t.percent = 95
	}
}

// Complete snaps the ticker to 100 percent.
func (t *Ticker) Complete() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = StateComplete
	t.percent = 100
}

// Reset returns the ticker to idle.
func (t *Ticker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = StateIdle
	t.percent = 0
}

// Snapshot returns the current state, percentage and stage label.
func (t *Ticker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	stage := ""
	if t.state != StateIdle {
		idx := int(t.percent / (100.0 / float64(len(stages))))
		if idx >= len(stages) {
			idx = len(stages) - 1
		}
		stage = stages[idx]
	}

	return Snapshot{State: t.state, Percent: t.percent, Stage: stage}
}
