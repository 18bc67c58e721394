package tips

import "time"

// Tip results. Pending until an admin settles the pick.
const (
	ResultPending = "pending"
	ResultWon     = "won"
	ResultLost    = "lost"
	ResultVoid    = "void"
)

type Tip struct {
	ID         uint   `gorm:"primaryKey"`
	Title      string `gorm:"not null"`
	Sport      string `gorm:"index"`
	League     string
	Market     string
	Selection  string
	Odds       float64
	StakeUnits float64
	Analysis   string `gorm:"type:text"`

	IsVip       bool       `gorm:"not null;default:false;index"`
	KickoffAt   *time.Time `gorm:"index"`
	PublishedAt *time.Time `gorm:"index"`
	Result      string     `gorm:"not null;default:'pending'"`

	AuthorID uint

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Published tips are the only ones any feed serves.
func (t Tip) Published() bool {
	return t.PublishedAt != nil
}
