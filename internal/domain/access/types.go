package access

import "time"

// Kind classifies the grant that currently backs a user's access.
type Kind string

const (
	KindNoAccess           Kind = "none"
	KindTrial              Kind = "trial"
	KindActiveSubscription Kind = "active"
	KindExpired            Kind = "expired"
)

const (
	// TrialDuration is the length of the one-time trial grant.
	TrialDuration = 3 * 24 * time.Hour

	// ExpiringSoonWindow is how close to expiry a grant must be before the
	// UI starts showing the countdown banner.
	ExpiringSoonWindow = 24 * time.Hour

	// fallbackBillingPeriod stands in for the subscription window when the
	// billing store never gave us a period start.
	fallbackBillingPeriod = 30 * 24 * time.Hour
)

// Record is a read-only projection of the grant fields on a user row.
// The resolver never mutates it.
type Record struct {
	SubscriptionActive    bool
	SubscriptionExpiresAt *time.Time
	SubscriptionStartedAt *time.Time
	TrialExpiresAt        *time.Time
	TrialStartedAt        *time.Time
	TrialConsumed         bool
}

// State is the resolved, point-in-time answer to "does this user have
// access, and under what grant". It is recomputed on every read and never
// persisted.
type State struct {
	Kind               Kind
	TimeRemaining      time.Duration
	ProgressPercentage float64
	IsExpiringSoon     bool
	ExpiresAt          *time.Time
}

// GrantsAccess reports whether the state lets the user through a gate.
func (s State) GrantsAccess() bool {
	return s.Kind == KindTrial || s.Kind == KindActiveSubscription
}
