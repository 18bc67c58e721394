package prompts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"bettools-app/internal/locale"
)

var (
	ErrMissingTeams  = errors.New("both teams are required")
	ErrMissingMarket = errors.New("a betting market is required")
)

// Request carries the form fields the member fills in before asking the
// generator for an analysis prompt to paste into their AI tool of choice.
type Request struct {
	Sport    string  `json:"sport"`
	League   string  `json:"league"`
	HomeTeam string  `json:"home_team"`
	AwayTeam string  `json:"away_team"`
	Market   string  `json:"market"`
	Odds     float64 `json:"odds"`
	Bankroll float64 `json:"bankroll"`
	Notes    string  `json:"notes"`
	Lang     string  `json:"lang"`
}

var (
	msgRole      = &i18n.Message{ID: "prompt.role", Other: "You are a professional sports betting analyst."}
	msgMatch     = &i18n.Message{ID: "prompt.match", Other: "Analyze the upcoming {{.Sport}} match between {{.Home}} and {{.Away}} in {{.League}}."}
	msgMarket    = &i18n.Message{ID: "prompt.market", Other: "Focus on the {{.Market}} market at decimal odds of {{.Odds}}."}
	msgBankroll  = &i18n.Message{ID: "prompt.bankroll", Other: "Assume a bankroll of {{.Bankroll}} units and recommend a stake using flat staking."}
	msgStructure = &i18n.Message{ID: "prompt.structure", Other: "Structure the answer as: recent form, head-to-head, key absences, and a verdict with a confidence score from 1 to 10."}
	msgNotes     = &i18n.Message{ID: "prompt.notes", Other: "Additional context: {{.Notes}}"}
)

// Build assembles the analysis prompt in the requested language.
func Build(req Request) (string, error) {
	if strings.TrimSpace(req.HomeTeam) == "" || strings.TrimSpace(req.AwayTeam) == "" {
		return "", ErrMissingTeams
	}
	if strings.TrimSpace(req.Market) == "" {
		return "", ErrMissingMarket
	}

	sport := req.Sport
	if strings.TrimSpace(sport) == "" {
		sport = "football"
	}
	league := req.League
	if strings.TrimSpace(league) == "" {
		league = "-"
	}

	lines := []string{
		locale.Localize(req.Lang, msgRole, nil),
		locale.Localize(req.Lang, msgMatch, map[string]interface{}{
			"Sport":  sport,
			"Home":   req.HomeTeam,
			"Away":   req.AwayTeam,
			"League": league,
		}),
		locale.Localize(req.Lang, msgMarket, map[string]interface{}{
			"Market": req.Market,
			"Odds":   fmt.Sprintf("%.2f", req.Odds),
		}),
	}

	if req.Bankroll > 0 {
		lines = append(lines, locale.Localize(req.Lang, msgBankroll, map[string]interface{}{
			"Bankroll": fmt.Sprintf("%.0f", req.Bankroll),
		}))
	}

	lines = append(lines, locale.Localize(req.Lang, msgStructure, nil))

	if strings.TrimSpace(req.Notes) != "" {
		lines = append(lines, locale.Localize(req.Lang, msgNotes, map[string]interface{}{
			"Notes": req.Notes,
		}))
	}

	return strings.Join(lines, "\n"), nil
}
