package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func ts(d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}

func TestResolveNilRecord(t *testing.T) {
	st := Resolve(nil, now)
	assert.Equal(t, KindNoAccess, st.Kind)
	assert.Zero(t, st.TimeRemaining)
	assert.False(t, st.IsExpiringSoon)
}

func TestResolveActiveTrial(t *testing.T) {
	rec := &Record{TrialExpiresAt: ts(48 * time.Hour)}

	st := Resolve(rec, now)
	require.Equal(t, KindTrial, st.Kind)
	assert.Equal(t, 48*time.Hour, st.TimeRemaining)
	assert.False(t, st.IsExpiringSoon)
	assert.Equal(t, *ts(48 * time.Hour), *st.ExpiresAt)

	// No persisted start: window estimated as expiry minus the 3-day trial,
	// so one day in means 1/3 elapsed.
	assert.InDelta(t, 100.0/3.0, st.ProgressPercentage, 0.01)
}

func TestResolveTrialWithPersistedStart(t *testing.T) {
	rec := &Record{
		TrialStartedAt: ts(-24 * time.Hour),
		TrialExpiresAt: ts(24 * time.Hour),
	}

	st := Resolve(rec, now)
	require.Equal(t, KindTrial, st.Kind)
	assert.InDelta(t, 50.0, st.ProgressPercentage, 0.01)
	assert.True(t, st.IsExpiringSoon, "24h left is within the banner window")
}

func TestResolveTrialBeatsActiveSubscription(t *testing.T) {
	// Precedence: an unconsumed running trial wins over a concurrently
	// active subscription; the subscription takes over once it's consumed.
	rec := &Record{
		TrialExpiresAt:        ts(48 * time.Hour),
		SubscriptionActive:    true,
		SubscriptionExpiresAt: ts(10 * 24 * time.Hour),
	}
	assert.Equal(t, KindTrial, Resolve(rec, now).Kind)

	rec.TrialConsumed = true
	assert.Equal(t, KindActiveSubscription, Resolve(rec, now).Kind)
}

func TestResolveActiveSubscription(t *testing.T) {
	rec := &Record{
		TrialConsumed:         true,
		SubscriptionActive:    true,
		SubscriptionExpiresAt: ts(10 * 24 * time.Hour),
	}

	st := Resolve(rec, now)
	require.Equal(t, KindActiveSubscription, st.Kind)
	assert.Equal(t, 10*24*time.Hour, st.TimeRemaining)
	assert.False(t, st.IsExpiringSoon)
	assert.True(t, st.GrantsAccess())

	// Persisted period start pins the progress exactly.
	rec.SubscriptionStartedAt = ts(-10 * 24 * time.Hour)
	st = Resolve(rec, now)
	assert.InDelta(t, 50.0, st.ProgressPercentage, 0.01)
}

func TestResolveExpiredTrial(t *testing.T) {
	rec := &Record{TrialExpiresAt: ts(-time.Hour)}

	st := Resolve(rec, now)
	assert.Equal(t, KindExpired, st.Kind)
	assert.Zero(t, st.TimeRemaining)
	assert.False(t, st.IsExpiringSoon)
	assert.False(t, st.GrantsAccess())
	assert.Equal(t, 100.0, st.ProgressPercentage)
}

func TestResolveExpiredTrialFallsThroughToSubscription(t *testing.T) {
	rec := &Record{
		TrialExpiresAt:        ts(-time.Hour),
		SubscriptionActive:    true,
		SubscriptionExpiresAt: ts(72 * time.Hour),
	}
	assert.Equal(t, KindActiveSubscription, Resolve(rec, now).Kind)
}

func TestResolveBothGrantsExpired(t *testing.T) {
	rec := &Record{
		TrialExpiresAt:        ts(-30 * 24 * time.Hour),
		TrialConsumed:         true,
		SubscriptionActive:    true,
		SubscriptionExpiresAt: ts(-time.Hour),
	}

	st := Resolve(rec, now)
	require.Equal(t, KindExpired, st.Kind)
	// Display expiry is the most recent of the two lapsed grants.
	assert.Equal(t, *ts(-time.Hour), *st.ExpiresAt)
}

func TestResolveInactiveSubscriptionFlagIgnoresFutureExpiry(t *testing.T) {
	// Flag off means no grant even with a future period end (e.g. unpaid).
	rec := &Record{SubscriptionExpiresAt: ts(72 * time.Hour)}
	assert.Equal(t, KindNoAccess, Resolve(rec, now).Kind)
}

func TestResolveConsumedTrialAloneIsNoAccess(t *testing.T) {
	// Consumed trial with a window still nominally open and no
	// subscription: nothing in the past, nothing granting, so no access.
	rec := &Record{TrialConsumed: true, TrialExpiresAt: ts(time.Hour)}
	assert.Equal(t, KindNoAccess, Resolve(rec, now).Kind)

	// With no timestamps at all, also no access rather than expired.
	assert.Equal(t, KindNoAccess, Resolve(&Record{TrialConsumed: true}, now).Kind)
}

func TestResolveExpiringSoonBoundary(t *testing.T) {
	rec := &Record{
		TrialConsumed:         true,
		SubscriptionActive:    true,
		SubscriptionExpiresAt: ts(ExpiringSoonWindow),
	}
	assert.True(t, Resolve(rec, now).IsExpiringSoon, "exactly 24h counts")

	rec.SubscriptionExpiresAt = ts(ExpiringSoonWindow + time.Second)
	assert.False(t, Resolve(rec, now).IsExpiringSoon)
}

func TestResolveMonotonicCountdown(t *testing.T) {
	rec := &Record{TrialExpiresAt: ts(2 * time.Hour)}

	prev := Resolve(rec, now).TimeRemaining
	for i := 1; i <= 8; i++ {
		st := Resolve(rec, now.Add(time.Duration(i)*15*time.Minute))
		if st.Kind == KindExpired {
			assert.Zero(t, st.TimeRemaining)
			break
		}
		assert.Less(t, st.TimeRemaining, prev)
		prev = st.TimeRemaining
	}

	// Past the boundary the kind flips and stays expired.
	assert.Equal(t, KindExpired, Resolve(rec, now.Add(2*time.Hour)).Kind)
	assert.Equal(t, KindExpired, Resolve(rec, now.Add(3*time.Hour)).Kind)
}

func TestResolveProgressClamped(t *testing.T) {
	// Start recorded after expiry (corrupt row) must not blow past bounds.
	rec := &Record{
		TrialStartedAt: ts(48 * time.Hour),
		TrialExpiresAt: ts(24 * time.Hour),
	}
	st := Resolve(rec, now)
	assert.GreaterOrEqual(t, st.ProgressPercentage, 0.0)
	assert.LessOrEqual(t, st.ProgressPercentage, 100.0)
}

func TestTimestamp(t *testing.T) {
	assert.Nil(t, Timestamp(""))
	assert.Nil(t, Timestamp("   "))
	assert.Nil(t, Timestamp("not-a-date"))
	assert.Nil(t, Timestamp("2025-13-45T99:00:00Z"))

	got := Timestamp("2025-06-15T12:00:00Z")
	require.NotNil(t, got)
	assert.True(t, got.Equal(now))

	// Surrounding whitespace is tolerated.
	assert.NotNil(t, Timestamp(" 2025-06-15T12:00:00+02:00 "))
}
