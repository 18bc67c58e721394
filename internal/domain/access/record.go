package access

import "bettools-app/internal/domain/users"

// RecordFor projects the grant fields off a user row. Everything else on
// the row is invisible to the resolver.
func RecordFor(u users.User) *Record {
	return &Record{
		SubscriptionActive:    u.SubscriptionIsActive(),
		SubscriptionExpiresAt: u.SubscriptionEnd,
		SubscriptionStartedAt: u.SubscriptionStart,
		TrialExpiresAt:        u.TrialEndAt,
		TrialStartedAt:        u.TrialStartAt,
		TrialConsumed:         u.TrialConsumed,
	}
}
