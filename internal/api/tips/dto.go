package tips

import "time"

type TipDTO struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Sport       string     `json:"sport"`
	League      string     `json:"league"`
	Market      string     `json:"market"`
	Selection   string     `json:"selection"`
	Odds        float64    `json:"odds"`
	StakeUnits  float64    `json:"stake_units"`
	Analysis    string     `json:"analysis,omitempty"`
	IsVip       bool       `json:"is_vip"`
	KickoffAt   *time.Time `json:"kickoff_at"`
	PublishedAt *time.Time `json:"published_at"`
	Result      string     `json:"result"`
}

type TipInput struct {
	Title      string     `json:"title" binding:"required"`
	Sport      string     `json:"sport" binding:"required"`
	League     string     `json:"league"`
	Market     string     `json:"market" binding:"required"`
	Selection  string     `json:"selection" binding:"required"`
	Odds       float64    `json:"odds" binding:"required,gt=1"`
	StakeUnits float64    `json:"stake_units"`
	Analysis   string     `json:"analysis"`
	IsVip      bool       `json:"is_vip"`
	KickoffAt  *time.Time `json:"kickoff_at"`
}
