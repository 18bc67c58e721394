package arb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTwoWayArbitrage(t *testing.T) {
	// 2.10 / 2.10 on a two-way market: implied sum ~0.952, clear surebet.
	res, err := Calculate(100, []Outcome{
		{Label: "Player A", Odds: 2.10},
		{Label: "Player B", Odds: 2.10},
	})
	require.NoError(t, err)

	assert.True(t, res.IsArbitrage)
	assert.InDelta(t, 0.952, res.TotalImpliedProbability, 0.001)
	assert.InDelta(t, 50.0, res.Stakes[0].Amount, 0.01)
	assert.InDelta(t, 50.0, res.Stakes[1].Amount, 0.01)
	assert.InDelta(t, 105.0, res.Payout, 0.01)
	assert.InDelta(t, 5.0, res.Profit, 0.01)
	assert.InDelta(t, 5.0, res.ProfitPercentage, 0.01)

	// Equal payout on every leg is the whole point.
	assert.InDelta(t, res.Stakes[0].Payout, res.Stakes[1].Payout, 0.01)
}

func TestCalculateThreeWayNoArbitrage(t *testing.T) {
	// Typical 1X2 prices at a single book: margin above 100%.
	res, err := Calculate(100, []Outcome{
		{Label: "Home", Odds: 2.50},
		{Label: "Draw", Odds: 3.20},
		{Label: "Away", Odds: 2.90},
	})
	require.NoError(t, err)

	assert.False(t, res.IsArbitrage)
	assert.Greater(t, res.TotalImpliedProbability, 1.0)
	assert.Negative(t, res.Profit)
	assert.Positive(t, res.MarginPercentage)
}

func TestCalculateThreeWayArbitrage(t *testing.T) {
	// Best prices across three books: 1/3.0 + 1/3.6 + 1/3.9 ≈ 0.968.
	res, err := Calculate(1000, []Outcome{
		{Label: "Home", Odds: 3.00},
		{Label: "Draw", Odds: 3.60},
		{Label: "Away", Odds: 3.90},
	})
	require.NoError(t, err)
	require.True(t, res.IsArbitrage)

	// Stakes add back up to the bankroll (within rounding).
	sum := 0.0
	for _, s := range res.Stakes {
		sum += s.Amount
	}
	assert.InDelta(t, 1000, sum, 0.05)

	for _, s := range res.Stakes {
		assert.InDelta(t, res.Payout, s.Payout, 0.05)
	}
}

func TestCalculateValidation(t *testing.T) {
	_, err := Calculate(100, []Outcome{{Label: "only one", Odds: 2.0}})
	assert.ErrorIs(t, err, ErrTooFewOutcomes)

	_, err = Calculate(0, []Outcome{{Odds: 2.0}, {Odds: 2.0}})
	assert.ErrorIs(t, err, ErrBadStake)

	_, err = Calculate(-5, []Outcome{{Odds: 2.0}, {Odds: 2.0}})
	assert.ErrorIs(t, err, ErrBadStake)

	_, err = Calculate(100, []Outcome{{Odds: 2.0}, {Odds: 1.0}})
	assert.ErrorIs(t, err, ErrBadOdds)

	_, err = Calculate(100, []Outcome{{Odds: 2.0}, {Odds: -3.0}})
	assert.ErrorIs(t, err, ErrBadOdds)
}
