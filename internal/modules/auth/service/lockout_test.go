package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateLockState(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	future := now.Add(time.Minute)
	past := now.Add(-time.Minute)

	assert.Equal(t, LockState{Attempts: 3}, EvaluateLockState(now, 3, nil))

	locked := EvaluateLockState(now, 5, &future)
	assert.True(t, locked.Locked)
	require.NotNil(t, locked.LockUntil)
	assert.Equal(t, future, *locked.LockUntil)

	// an expired lock is ignored along with its stale counter
	assert.Equal(t, LockState{}, EvaluateLockState(now, 5, &past))
}

func TestLockPolicy_FailLocksAtThreshold(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	p := LockPolicy{MaxAttempts: 5, Duration: 2 * time.Hour}

	state := LockState{}
	for i := 1; i < 5; i++ {
		state = p.Fail(now, state)
		assert.False(t, state.Locked)
		assert.Equal(t, i, state.Attempts)
	}

	state = p.Fail(now, state)
	assert.True(t, state.Locked)
	assert.Equal(t, 5, state.Attempts)
	require.NotNil(t, state.LockUntil)
	assert.Equal(t, now.Add(2*time.Hour), *state.LockUntil)

	// the lock is respected, not extended
	again := p.Fail(now.Add(time.Minute), state)
	assert.Equal(t, state, again)
}

func TestLockPolicy_FailAfterExpiryRestartsCount(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	p := LockPolicy{MaxAttempts: 5, Duration: 2 * time.Hour}
	expired := now.Add(-time.Second)

	state := p.Fail(now, EvaluateLockState(now, 5, &expired))
	assert.False(t, state.Locked)
	assert.Equal(t, 1, state.Attempts)
	assert.Nil(t, state.LockUntil)
}

func TestLockPolicy_Succeed(t *testing.T) {
	assert.Equal(t, LockState{}, LockPolicy{MaxAttempts: 5}.Succeed())
}
