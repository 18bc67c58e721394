package arb

import (
	"errors"
	"math"
)

var (
	ErrTooFewOutcomes = errors.New("arbitrage needs at least two outcomes")
	ErrBadOdds        = errors.New("every outcome needs decimal odds above 1.0")
	ErrBadStake       = errors.New("total stake must be positive")
)

// Outcome is one leg of a surebet: a bookmaker price for one result of the
// same event.
type Outcome struct {
	Label string  `json:"label"`
	Odds  float64 `json:"odds"`
}

// Stake is the bankroll share placed on one leg.
type Stake struct {
	Label  string  `json:"label"`
	Odds   float64 `json:"odds"`
	Amount float64 `json:"amount"`
	Payout float64 `json:"payout"`
}

// Result of evaluating a set of outcomes against a bankroll.
type Result struct {
	TotalImpliedProbability float64 `json:"total_implied_probability"`
	IsArbitrage             bool    `json:"is_arbitrage"`
	MarginPercentage        float64 `json:"margin_percentage"`
	TotalStake              float64 `json:"total_stake"`
	Payout                  float64 `json:"payout"`
	Profit                  float64 `json:"profit"`
	ProfitPercentage        float64 `json:"profit_percentage"`
	Stakes                  []Stake `json:"stakes"`
}

// Calculate splits totalStake across the outcomes so every leg pays the
// same amount, and reports whether the combined prices leave a profit.
// An arbitrage exists when the implied probabilities sum below 1.
func Calculate(totalStake float64, outcomes []Outcome) (Result, error) {
	if len(outcomes) < 2 {
		return Result{}, ErrTooFewOutcomes
	}
	if totalStake <= 0 {
		return Result{}, ErrBadStake
	}

	totalImplied := 0.0
	for _, o := range outcomes {
		if o.Odds <= 1.0 || math.IsNaN(o.Odds) || math.IsInf(o.Odds, 0) {
			return Result{}, ErrBadOdds
		}
		totalImplied += 1 / o.Odds
	}

	// Equal-payout split: stake_i proportional to the leg's implied
	// probability, so amount_i * odds_i is identical for every leg.
	payout := totalStake / totalImplied
	stakes := make([]Stake, 0, len(outcomes))
	for _, o := range outcomes {
		amount := totalStake * (1 / o.Odds) / totalImplied
		stakes = append(stakes, Stake{
			Label:  o.Label,
			Odds:   o.Odds,
			Amount: round2(amount),
			Payout: round2(amount * o.Odds),
		})
	}

	profit := payout - totalStake
	return Result{
		TotalImpliedProbability: totalImplied,
		IsArbitrage:             totalImplied < 1,
		MarginPercentage:        round2((totalImplied - 1) * 100),
		TotalStake:              totalStake,
		Payout:                  round2(payout),
		Profit:                  round2(profit),
		ProfitPercentage:        round2(profit / totalStake * 100),
		Stakes:                  stakes,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
