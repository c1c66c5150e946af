package service

import "time"

// LockState is the lockout position of an account at one instant: either
// unlocked with a failure count, or locked until a time.
type LockState struct {
	Locked    bool
	Attempts  int
	LockUntil *time.Time
}

// LockPolicy holds the lockout threshold and duration.
type LockPolicy struct {
	MaxAttempts int
	Duration    time.Duration
}

// EvaluateLockState derives the state from the stored counters. A lock whose
// time has passed is treated as unlocked with a fresh count.
func EvaluateLockState(now time.Time, attempts int, lockUntil *time.Time) LockState {
	if lockUntil != nil {
		if lockUntil.After(now) {
			until := *lockUntil
			return LockState{Locked: true, Attempts: attempts, LockUntil: &until}
		}
		return LockState{}
	}
	if attempts < 0 {
		attempts = 0
	}
	return LockState{Attempts: attempts}
}

// Fail applies a failed verification. A locked state is returned unchanged.
func (p LockPolicy) Fail(now time.Time, state LockState) LockState {
	if state.Locked {
		return state
	}
	next := LockState{Attempts: state.Attempts + 1}
	if p.MaxAttempts > 0 && next.Attempts >= p.MaxAttempts {
		until := now.Add(p.Duration)
		next.Locked = true
		next.LockUntil = &until
	}
	return next
}

// Succeed applies a successful verification.
func (p LockPolicy) Succeed() LockState {
	return LockState{}
}
