package stripewebhooks

import (
	"errors"

	"bettools-app/database"
	"bettools-app/internal/domain/billing"
	"bettools-app/internal/domain/users"

	"github.com/stripe/stripe-go/v75"
)

// handleInvoicePaid records a payment-history row per paid invoice. The
// invoice id is unique-indexed, so Stripe retries land on the conflict
// path and get acknowledged instead of duplicated.
func handleInvoicePaid(invoice *stripe.Invoice) error {
	if invoice.ID == "" {
		return errors.New("invoice missing id")
	}

	var user users.User
	if invoice.Customer != nil && invoice.Customer.ID != "" {
		if err := database.DB.Where("stripe_customer_id = ?", invoice.Customer.ID).First(&user).Error; err != nil {
			// unknown customer, nothing to attribute; acknowledge
			return nil
		}
	}
	if user.ID == 0 {
		return nil
	}

	var existing billing.Payment
	if err := database.DB.Where("stripe_invoice_id = ?", invoice.ID).First(&existing).Error; err == nil {
		return nil
	}

	var subID *string
	if invoice.Subscription != nil && invoice.Subscription.ID != "" {
		s := invoice.Subscription.ID
		subID = &s
	}

	var receipt *string
	if invoice.HostedInvoiceURL != "" {
		r := invoice.HostedInvoiceURL
		receipt = &r
	}

	payment := billing.Payment{
		UserID:               user.ID,
		PlanID:               user.PlanID,
		StripeInvoiceID:      invoice.ID,
		StripeSubscriptionID: subID,
		AmountEUR:            float64(invoice.AmountPaid) / 100.0,
		Status:               "paid",
		ReceiptURL:           receipt,
	}

	return database.DB.Create(&payment).Error
}
