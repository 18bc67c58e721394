package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEnglish(t *testing.T) {
	got, err := Build(Request{
		Sport:    "football",
		League:   "Premier League",
		HomeTeam: "Arsenal",
		AwayTeam: "Chelsea",
		Market:   "over 2.5 goals",
		Odds:     1.92,
		Bankroll: 100,
		Notes:    "Chelsea missing two defenders.",
		Lang:     "en",
	})
	require.NoError(t, err)

	assert.Contains(t, got, "Arsenal")
	assert.Contains(t, got, "Chelsea")
	assert.Contains(t, got, "over 2.5 goals")
	assert.Contains(t, got, "1.92")
	assert.Contains(t, got, "bankroll of 100 units")
	assert.Contains(t, got, "Additional context: Chelsea missing two defenders.")
	assert.Equal(t, 6, len(strings.Split(got, "\n")))
}

func TestBuildHungarian(t *testing.T) {
	got, err := Build(Request{
		HomeTeam: "Fradi",
		AwayTeam: "Újpest",
		Market:   "hazai győzelem",
		Odds:     2.05,
		Lang:     "hu",
	})
	require.NoError(t, err)

	assert.Contains(t, got, "Fradi")
	assert.Contains(t, got, "elemző", "role line should be Hungarian")
	assert.NotContains(t, got, "betting analyst")
}

func TestBuildUnknownLangFallsBackToEnglish(t *testing.T) {
	got, err := Build(Request{
		HomeTeam: "A", AwayTeam: "B", Market: "ML", Odds: 2.0, Lang: "de",
	})
	require.NoError(t, err)
	assert.Contains(t, got, "betting analyst")
}

func TestBuildOptionalLinesOmitted(t *testing.T) {
	got, err := Build(Request{HomeTeam: "A", AwayTeam: "B", Market: "ML"})
	require.NoError(t, err)
	assert.NotContains(t, got, "bankroll")
	assert.NotContains(t, got, "Additional context")
}

func TestBuildValidation(t *testing.T) {
	_, err := Build(Request{AwayTeam: "B", Market: "ML"})
	assert.ErrorIs(t, err, ErrMissingTeams)

	_, err = Build(Request{HomeTeam: "A", AwayTeam: " ", Market: "ML"})
	assert.ErrorIs(t, err, ErrMissingTeams)

	_, err = Build(Request{HomeTeam: "A", AwayTeam: "B"})
	assert.ErrorIs(t, err, ErrMissingMarket)
}
