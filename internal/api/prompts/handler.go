package prompts

import (
	"errors"
	"net/http"

	"bettools-app/internal/domain/prompts"

	"github.com/gin-gonic/gin"
)

// POST /tools/prompt
func GeneratePrompt(c *gin.Context) {
	var req prompts.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	prompt, err := prompts.Build(req)
	if err != nil {
		if errors.Is(err, prompts.ErrMissingTeams) || errors.Is(err, prompts.ErrMissingMarket) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build prompt"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"prompt": prompt})
}
