package models

import (
	"fmt"
	"time"
)

type Review struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CafeID        uint      `gorm:"not null;index" json:"cafe_id" validate:"required"`
	Email         *string   `gorm:"type:varchar(254)" json:"email,omitempty" validate:"omitempty,email,max=254"`
	Text          string    `gorm:"type:text;not null" json:"text" validate:"required"`
	AgreeCount    uint      `gorm:"not null;default:0" json:"agree_count"`
	DisagreeCount uint      `gorm:"not null;default:0" json:"disagree_count"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime:false;index" json:"created_at"`
}

// Reviewer returns the reviewer's email, or "Anonymous" when none was given.
func (r Review) Reviewer() string {
	if r.Email == nil || *r.Email == "" {
		return "Anonymous"
	}
	return *r.Email
}

// Describe renders "Review by <reviewer> for <cafe name>".
func (r Review) Describe(cafeName string) string {
	return fmt.Sprintf("Review by %s for %s", r.Reviewer(), cafeName)
}

// String is Describe without the cafe loaded.
func (r Review) String() string {
	return r.Describe(fmt.Sprintf("cafe %d", r.CafeID))
}
