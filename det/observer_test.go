package det_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/laplace/det"
)

func TestWithObserver_OrderFive(t *testing.T) {
	t.Parallel()

	var cols []int
	var lens []int
	var last []det.ExpansionStep
	obs := func(col int, partial []det.ExpansionStep) {
		cols = append(cols, col)
		lens = append(lens, len(partial))
		if len(partial) > 0 {
			partial[0].Contribution = 1e9 // must not leak into the result
		}
		last = partial
	}

	res, err := det.Compute(mustRows(t, fiveByFive), det.WithObserver(obs))
	require.NoError(t, err)

	// once per top-level column only; nested 4×4 expansions stay silent
	assert.Equal(t, []int{0, 1, 2, 3, 4}, cols)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, lens)
	require.Len(t, last, 5)
	assert.Equal(t, -16.0, res.Steps[0].Contribution)
	assert.Equal(t, 185.0, res.Value)
	for i := 1; i < 5; i++ {
		assert.Equal(t, res.Steps[i], last[i])
	}
}

func TestWithObserver_OrderThreeNotCalled(t *testing.T) {
	called := false
	_, err := det.Compute(identity(t, 3), det.WithObserver(func(int, []det.ExpansionStep) { called = true }))
	require.NoError(t, err)
	assert.False(t, called)
}

func TestWithPace(t *testing.T) {
	t.Parallel()

	var pauses []time.Duration
	var events []string
	sleeper := func(d time.Duration) {
		pauses = append(pauses, d)
		events = append(events, "pause")
	}
	obs := func(col int, _ []det.ExpansionStep) { events = append(events, "step") }

	_, err := det.Compute(identity(t, 5),
		det.WithPace(400*time.Millisecond),
		det.WithObserver(obs),
		det.WithSleeper(sleeper),
	)
	require.NoError(t, err)

	require.Len(t, pauses, 5)
	for _, d := range pauses {
		assert.Equal(t, 400*time.Millisecond, d)
	}
	// the pause follows the column's notification
	assert.Equal(t, []string{"step", "pause", "step", "pause", "step", "pause", "step", "pause", "step", "pause"}, events)
}

func TestWithPace_ZeroDoesNotSleep(t *testing.T) {
	slept := false
	_, err := det.Compute(identity(t, 5), det.WithSleeper(func(time.Duration) { slept = true }))
	require.NoError(t, err)
	assert.False(t, slept)
}

func TestWithPace_RealClock(t *testing.T) {
	start := time.Now()
	_, err := det.Compute(identity(t, 4), det.WithPace(time.Millisecond))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 4*time.Millisecond)
}

func TestWithPace_NegativePanics(t *testing.T) {
	require.Panics(t, func() { det.WithPace(-time.Second) })
}

func TestNilOptionsAreIgnored(t *testing.T) {
	res, err := det.Compute(identity(t, 4), nil, det.WithLogger(nil), det.WithObserver(nil))
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Value)
}
