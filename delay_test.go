package future

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetDelayFlags(t *testing.T) {
	t.Parallel()

	assert.Equal(t, delayAllFlags, getDelayFlags(nil))
	assert.Equal(t, delayAllFlags, getDelayFlags([]DelayCond{OnAll}))
	assert.Equal(t,
		delayFlags{onSuccess: true},
		getDelayFlags([]DelayCond{OnSuccess}),
	)
	assert.Equal(t,
		delayFlags{onError: true},
		getDelayFlags([]DelayCond{OnError}),
	)
	assert.Equal(t,
		delayAllFlags,
		getDelayFlags([]DelayCond{OnSuccess, OnError}),
	)
}

func TestDelayCond_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "OnAll", OnAll.String())
	assert.Equal(t, "OnSuccess", OnSuccess.String())
	assert.Equal(t, "OnError", OnError.String())
	assert.Equal(t, "<unknown condition>", DelayCond(99).String())
}

func TestDelay_HoldsTheOutcome(t *testing.T) {
	t.Parallel()

	const d = 20 * time.Millisecond

	start := time.Now()
	sp := &sinkProbe[int]{}
	Fulfilled(1).Delay(d).Done(sp.sink)

	assert.GreaterOrEqual(t, time.Since(start), d)
	assert.Equal(t, 1, sp.last.Value())
}

func TestDelay_ConditionSkips(t *testing.T) {
	t.Parallel()

	const d = 50 * time.Millisecond

	// a fulfilled outcome with an OnError-only delay passes through
	// without waiting.
	start := time.Now()
	sp := &sinkProbe[int]{}
	Fulfilled(1).Delay(d, OnError).Done(sp.sink)

	assert.Less(t, time.Since(start), d)
	assert.Equal(t, 1, sp.last.Value())
}
