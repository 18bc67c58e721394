package billing

import (
	"time"

	"bettools-app/internal/domain/plans"
	"bettools-app/internal/domain/users"
)

type Payment struct {
	ID                   uint `gorm:"primaryKey"`
	UserID               uint
	User                 users.User
	PlanID               *uint
	Plan                 *plans.Plan
	StripeInvoiceID      string `gorm:"uniqueIndex"`
	StripeSubscriptionID *string
	AmountEUR            float64
	Status               string
	ReceiptURL           *string
	CreatedAt            time.Time
}
