package access

import (
	"strings"
	"time"
)

// Resolve maps a grant record and a point in time to an access state.
// A nil record means an unauthenticated caller. Resolve is pure: no I/O,
// no clock reads, safe to call from any number of refresh timers at once.
//
// An unconsumed trial that is still running is checked before the
// subscription, so a user holding both sees the trial until it runs out.
func Resolve(rec *Record, now time.Time) State {
	if rec == nil {
		return State{Kind: KindNoAccess}
	}

	if !rec.TrialConsumed && rec.TrialExpiresAt != nil && rec.TrialExpiresAt.After(now) {
		return grantedState(KindTrial, now, rec.TrialStartedAt, *rec.TrialExpiresAt, TrialDuration)
	}

	if rec.SubscriptionActive && rec.SubscriptionExpiresAt != nil && rec.SubscriptionExpiresAt.After(now) {
		return grantedState(KindActiveSubscription, now, rec.SubscriptionStartedAt, *rec.SubscriptionExpiresAt, fallbackBillingPeriod)
	}

	// A grant existed but its window is over.
	if isPast(rec.TrialExpiresAt, now) || isPast(rec.SubscriptionExpiresAt, now) {
		return State{
			Kind:               KindExpired,
			ProgressPercentage: 100,
			ExpiresAt:          latestPast(now, rec.TrialExpiresAt, rec.SubscriptionExpiresAt),
		}
	}

	return State{Kind: KindNoAccess}
}

// ResolveNow resolves against the wall clock. Pass an explicit time to
// Resolve instead when determinism matters (tests, countdown ticks).
func ResolveNow(rec *Record) State {
	return Resolve(rec, time.Now())
}

func grantedState(kind Kind, now time.Time, startedAt *time.Time, expiresAt time.Time, assumedWindow time.Duration) State {
	remaining := expiresAt.Sub(now)

	// Window start: the persisted grant start when we have one, otherwise
	// estimated backwards from the expiry. The estimate is deliberate — the
	// issuing system must persist the start if exact progress matters.
	start := expiresAt.Add(-assumedWindow)
	if startedAt != nil && startedAt.Before(expiresAt) {
		start = *startedAt
	}

	progress := 0.0
	if window := expiresAt.Sub(start); window > 0 {
		progress = float64(now.Sub(start)) / float64(window) * 100
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	exp := expiresAt
	return State{
		Kind:               kind,
		TimeRemaining:      remaining,
		ProgressPercentage: progress,
		IsExpiringSoon:     remaining <= ExpiringSoonWindow,
		ExpiresAt:          &exp,
	}
}

func isPast(t *time.Time, now time.Time) bool {
	return t != nil && !t.After(now)
}

// latestPast picks the most recent already-passed expiry for display.
func latestPast(now time.Time, stamps ...*time.Time) *time.Time {
	var latest *time.Time
	for _, t := range stamps {
		if !isPast(t, now) {
			continue
		}
		if latest == nil || t.After(*latest) {
			latest = t
		}
	}
	return latest
}

// Timestamp parses an RFC3339 timestamp coming from an external profile
// store. Malformed input degrades to absent rather than failing the resolve.
func Timestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}
