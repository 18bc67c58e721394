package plans

import "strings"

// Tier constants (single source of truth)
const (
	TierNone   = "none"
	TierVIP    = "vip"
	TierVIPPro = "vip_pro"
)

// PlanTier returns the effective tier for a plan.
// Priority:
// 1. Explicit Tier stored in DB
// 2. Fallback inference by price (legacy safety net)
func PlanTier(p *Plan) string {
	if p == nil {
		return TierNone
	}

	tier := strings.ToLower(strings.TrimSpace(p.Tier))
	switch tier {
	case TierVIP, TierVIPPro:
		return tier
	}

	return inferTierFromPrice(p.PriceEUR)
}

// inferTierFromPrice exists ONLY as a backward-compatibility fallback.
// Do not rely on this long-term.
func inferTierFromPrice(priceEUR float64) string {
	if priceEUR >= 50 {
		return TierVIPPro
	}
	return TierVIP
}

// Capabilities lists the member tools unlocked by a tier.
func Capabilities(tier string) []string {
	switch tier {
	case TierVIPPro:
		return []string{"arbitrage", "prompts", "vip_tips", "early_tips"}
	case TierVIP:
		return []string{"arbitrage", "prompts", "vip_tips"}
	default:
		return []string{}
	}
}
