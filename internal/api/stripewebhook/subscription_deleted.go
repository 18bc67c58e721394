package stripewebhooks

import (
	"time"

	"bettools-app/database"
	"bettools-app/internal/domain/users"

	"github.com/stripe/stripe-go/v75"
)

func handleSubscriptionDeleted(sub *stripe.Subscription) error {
	if sub.ID == "" {
		return nil
	}

	status := string(sub.Status)
	periodEnd := time.Unix(sub.CurrentPeriodEnd, 0)

	var user users.User
	userID := userIDFromMetadata(sub.Metadata)
	if userID != 0 {
		_ = database.DB.Where("id = ?", userID).First(&user).Error
	}
	if user.ID == 0 {
		_ = database.DB.Where("subscription_id = ?", sub.ID).First(&user).Error
	}
	if user.ID == 0 {
		return nil
	}

	// Access runs until the paid-through date; the resolver flips the user
	// to expired once subscription_end passes.
	updates := map[string]interface{}{
		"stripe_subscription_status": status,
		"subscription_end":           periodEnd,
		"current_period_end":         periodEnd,
	}

	return database.DB.Model(&users.User{}).
		Where("id = ?", user.ID).
		Updates(updates).Error
}
