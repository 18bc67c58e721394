package tips

import (
	"net/http"
	"time"

	"bettools-app/database"
	"bettools-app/internal/domain/tips"

	"github.com/gin-gonic/gin"
)

func buildTipDTO(t tips.Tip, includeAnalysis bool) TipDTO {
	dto := TipDTO{
		ID:          t.ID,
		Title:       t.Title,
		Sport:       t.Sport,
		League:      t.League,
		Market:      t.Market,
		Selection:   t.Selection,
		Odds:        t.Odds,
		StakeUnits:  t.StakeUnits,
		IsVip:       t.IsVip,
		KickoffAt:   t.KickoffAt,
		PublishedAt: t.PublishedAt,
		Result:      t.Result,
	}
	if includeAnalysis {
		dto.Analysis = t.Analysis
	}
	return dto
}

// ListFreeTips is public: published non-VIP picks, analysis withheld.
func ListFreeTips(c *gin.Context) {
	var rows []tips.Tip
	if err := database.DB.
		Where("is_vip = ? AND published_at IS NOT NULL", false).
		Order("published_at DESC").
		Limit(50).
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tips"})
		return
	}

	out := make([]TipDTO, 0, len(rows))
	for _, t := range rows {
		out = append(out, buildTipDTO(t, false))
	}
	c.JSON(http.StatusOK, out)
}

// ListVipTips sits behind the access guard: everything published,
// analysis included.
func ListVipTips(c *gin.Context) {
	var rows []tips.Tip
	if err := database.DB.
		Where("published_at IS NOT NULL").
		Order("published_at DESC").
		Limit(100).
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tips"})
		return
	}

	out := make([]TipDTO, 0, len(rows))
	for _, t := range rows {
		out = append(out, buildTipDTO(t, true))
	}
	c.JSON(http.StatusOK, out)
}

/* ---------- admin ---------- */

func CreateTip(c *gin.Context) {
	var input TipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tip := tips.Tip{
		Title:      input.Title,
		Sport:      input.Sport,
		League:     input.League,
		Market:     input.Market,
		Selection:  input.Selection,
		Odds:       input.Odds,
		StakeUnits: input.StakeUnits,
		Analysis:   input.Analysis,
		IsVip:      input.IsVip,
		KickoffAt:  input.KickoffAt,
		Result:     tips.ResultPending,
		AuthorID:   c.GetUint("user_id"),
	}

	if err := database.DB.Create(&tip).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tip"})
		return
	}

	c.JSON(http.StatusCreated, buildTipDTO(tip, true))
}

func UpdateTip(c *gin.Context) {
	var tip tips.Tip
	if err := database.DB.First(&tip, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tip not found"})
		return
	}

	var input TipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tip.Title = input.Title
	tip.Sport = input.Sport
	tip.League = input.League
	tip.Market = input.Market
	tip.Selection = input.Selection
	tip.Odds = input.Odds
	tip.StakeUnits = input.StakeUnits
	tip.Analysis = input.Analysis
	tip.IsVip = input.IsVip
	tip.KickoffAt = input.KickoffAt

	if err := database.DB.Save(&tip).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tip"})
		return
	}

	c.JSON(http.StatusOK, buildTipDTO(tip, true))
}

func DeleteTip(c *gin.Context) {
	if err := database.DB.Delete(&tips.Tip{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tip"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tip deleted"})
}

func PublishTip(c *gin.Context) {
	var tip tips.Tip
	if err := database.DB.First(&tip, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tip not found"})
		return
	}

	now := time.Now()
	tip.PublishedAt = &now
	if err := database.DB.Save(&tip).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish tip"})
		return
	}

	c.JSON(http.StatusOK, buildTipDTO(tip, true))
}

func UnpublishTip(c *gin.Context) {
	var tip tips.Tip
	if err := database.DB.First(&tip, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tip not found"})
		return
	}

	tip.PublishedAt = nil
	if err := database.DB.Save(&tip).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unpublish tip"})
		return
	}

	c.JSON(http.StatusOK, buildTipDTO(tip, true))
}

// SettleTip records the outcome after the event finished.
func SettleTip(c *gin.Context) {
	var body struct {
		Result string `json:"result" binding:"required,oneof=won lost void"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Result must be won, lost or void"})
		return
	}

	var tip tips.Tip
	if err := database.DB.First(&tip, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tip not found"})
		return
	}

	tip.Result = body.Result
	if err := database.DB.Save(&tip).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to settle tip"})
		return
	}

	c.JSON(http.StatusOK, buildTipDTO(tip, true))
}
