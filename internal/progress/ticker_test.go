package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTickerStartsIdle(t *testing.T) {
	ticker := NewTicker()

	snap := ticker.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Zero(t, snap.Percent)
	assert.Empty(t, snap.Stage)
}

func TestAdvanceCapsAt95(t *testing.T) {
	ticker := NewTicker()
	ticker.rnd = func() float64 { return 1 } // max step each time
	ticker.Start()

	for i := 0; i < 20; i++ {
		ticker.Advance()
	}

	snap := ticker.Snapshot()
	assert.Equal(t, StateAdvancing, snap.State)
	assert.Equal(t, 95.0, snap.Percent)
	assert.Equal(t, "Drafting recommendations...", snap.Stage)
}

func TestAdvanceIgnoredWhenIdle(t *testing.T) {
	ticker := NewTicker()

	ticker.Advance()

	assert.Zero(t, ticker.Snapshot().Percent)
}

func TestCompleteSnapsTo100(t *testing.T) {
	ticker := NewTicker()
	ticker.Start()
	ticker.Advance()
	ticker.Complete()

	snap := ticker.Snapshot()
	assert.Equal(t, StateComplete, snap.State)
	assert.Equal(t, 100.0, snap.Percent)

	// Further advances are ignored once complete
	ticker.Advance()
	assert.Equal(t, 100.0, ticker.Snapshot().Percent)
}

func TestStageLabelTracksPercent(t *testing.T) {
	ticker := NewTicker()
	ticker.rnd = func() float64 { return 0 } // fixed 5 percent step
	ticker.Start()

	assert.Equal(t, "Uploading document...", ticker.Snapshot().Stage)

	for i := 0; i < 5; i++ { // 25 percent
		ticker.Advance()
	}
	assert.Equal(t, "Extracting emission data...", ticker.Snapshot().Stage)
}

func TestResetReturnsToIdle(t *testing.T) {
	ticker := NewTicker()
	ticker.Start()
	ticker.Advance()
	ticker.Reset()

	snap := ticker.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Zero(t, snap.Percent)
}
