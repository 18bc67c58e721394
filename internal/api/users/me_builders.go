package users

import (
	"bettools-app/internal/domain/access"
	"bettools-app/internal/domain/plans"
	"bettools-app/internal/domain/users"
	"bettools-app/internal/locale"
)

func BuildPlanDTO(p *plans.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:            p.ID,
		Key:           p.Name,
		Interval:      p.Interval,
		PriceEUR:      p.PriceEUR,
		StripePriceID: p.StripePriceID,
	}
}

func BuildSubscriptionDTO(u users.User) *SubscriptionDTO {
	if u.SubscriptionId == nil || *u.SubscriptionId == "" {
		return nil
	}
	status := "none"
	if u.StripeSubscriptionStatus != nil {
		status = *u.StripeSubscriptionStatus
	}
	return &SubscriptionDTO{
		Status:               status,
		StartsAt:             u.SubscriptionStart,
		CurrentPeriodEnd:     u.CurrentPeriodEnd,
		StripeSubscriptionID: u.SubscriptionId,
	}
}

func BuildTrialDTO(u users.User) *TrialDTO {
	if u.TrialStartAt == nil || u.TrialEndAt == nil {
		return nil
	}
	return &TrialDTO{
		StartsAt: u.TrialStartAt,
		EndsAt:   u.TrialEndAt,
		Consumed: u.TrialConsumed,
	}
}

// BuildAccessDTO flattens a resolved state into the /me payload, adding
// the localized presentation strings.
func BuildAccessDTO(state access.State, lang string, plan *plans.Plan) AccessDTO {
	remaining := state.TimeRemaining
	if remaining < 0 {
		remaining = 0
	}

	dto := AccessDTO{
		State:                string(state.Kind),
		TimeRemainingSeconds: int64(remaining.Seconds()),
		ProgressPercentage:   state.ProgressPercentage,
		IsExpiringSoon:       state.IsExpiringSoon,
		ExpiresAt:            state.ExpiresAt,
		Capabilities:         []string{},
	}

	if state.GrantsAccess() {
		dto.Countdown = locale.FormatCountdown(lang, remaining)
		switch state.Kind {
		case access.KindTrial:
			// Trials see everything the base paid tier sees.
			dto.Capabilities = plans.Capabilities(plans.TierVIP)
		case access.KindActiveSubscription:
			dto.Capabilities = plans.Capabilities(plans.PlanTier(plan))
		}
	}

	if state.ExpiresAt != nil {
		dto.ExpiresAtDisplay = locale.FormatExpiry(lang, *state.ExpiresAt)
	}

	return dto
}
