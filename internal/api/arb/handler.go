package arb

import (
	"errors"
	"net/http"

	"bettools-app/internal/domain/arb"

	"github.com/gin-gonic/gin"
)

// POST /tools/arbitrage
func CalculateArbitrage(c *gin.Context) {
	var body struct {
		TotalStake float64       `json:"total_stake"`
		Outcomes   []arb.Outcome `json:"outcomes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := arb.Calculate(body.TotalStake, body.Outcomes)
	if err != nil {
		switch {
		case errors.Is(err, arb.ErrTooFewOutcomes),
			errors.Is(err, arb.ErrBadOdds),
			errors.Is(err, arb.ErrBadStake):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Calculation failed"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
