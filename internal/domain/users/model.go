package users

import (
	"strings"
	"time"

	"bettools-app/internal/domain/plans"
)

type User struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	Lastname     string
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string
	IsVerified   bool
	Locale       string `gorm:"type:varchar(8);not null;default:'en'"`

	PlanID *uint
	Plan   *plans.Plan

	SubscriptionStart        *time.Time
	SubscriptionEnd          *time.Time
	SubscriptionId           *string    `gorm:"column:subscription_id;uniqueIndex:idx_users_subscription_id"`
	StripeCustomerID         *string    `gorm:"column:stripe_customer_id;uniqueIndex:idx_users_stripe_customer_id"`
	CurrentPeriodEnd         *time.Time `gorm:"column:current_period_end"`
	StripeSubscriptionStatus *string    `gorm:"column:stripe_subscription_status"`

	// Trial window. Start is persisted so the progress bar is exact;
	// trial_consumed flips once a paid subscription lands.
	TrialStartAt  *time.Time `gorm:"column:trial_start_at"`
	TrialEndAt    *time.Time `gorm:"column:trial_end_at"`
	TrialConsumed bool       `gorm:"column:trial_consumed;not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubscriptionIsActive mirrors Stripe's idea of a paying state.
func (u User) SubscriptionIsActive() bool {
	if u.StripeSubscriptionStatus == nil {
		return false
	}
	switch strings.TrimSpace(*u.StripeSubscriptionStatus) {
	case "active", "trialing":
		return true
	}
	return false
}
