package users

import "time"

type MeResponse struct {
	User    UserDTO    `json:"user"`
	Billing BillingDTO `json:"billing"`
	Access  AccessDTO  `json:"access"`
}

/* ---------- USER ---------- */

type UserDTO struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Lastname   string `json:"lastname"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
	Locale     string `json:"locale"`
}

/* ---------- BILLING ---------- */

type BillingDTO struct {
	Plan         *PlanDTO         `json:"plan"`
	Subscription *SubscriptionDTO `json:"subscription"`
	Trial        *TrialDTO        `json:"trial"`
}

type PlanDTO struct {
	ID            uint    `json:"id"`
	Key           string  `json:"key"`
	Interval      string  `json:"interval"`
	PriceEUR      float64 `json:"price_eur"`
	StripePriceID string  `json:"stripe_price_id"`
}

type SubscriptionDTO struct {
	Status               string     `json:"status"`
	StartsAt             *time.Time `json:"starts_at"`
	CurrentPeriodEnd     *time.Time `json:"current_period_end"`
	StripeSubscriptionID *string    `json:"stripe_subscription_id"`
}

type TrialDTO struct {
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
	Consumed bool       `json:"consumed"`
}

/* ---------- ACCESS ---------- */

// AccessDTO is the resolver's state plus the presentation strings the
// frontend re-requests on its countdown tick.
type AccessDTO struct {
	State                string     `json:"state"` // none|trial|active|expired
	TimeRemainingSeconds int64      `json:"time_remaining_seconds"`
	Countdown            string     `json:"countdown"`
	ExpiresAt            *time.Time `json:"expires_at"`
	ExpiresAtDisplay     string     `json:"expires_at_display,omitempty"`
	ProgressPercentage   float64    `json:"progress_percentage"`
	IsExpiringSoon       bool       `json:"is_expiring_soon"`
	Capabilities         []string   `json:"capabilities"`
}
