package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal is one diet-tracked meal. Date is epoch milliseconds and is the
// only stored form; summary ordering compares this column directly.
type Meal struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	User        *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	Date        int64     `gorm:"index;not null" json:"date"`
	IsOnDiet    bool      `gorm:"not null" json:"is_on_diet"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// OccurredAt returns the meal time in UTC.
func (m *Meal) OccurredAt() time.Time {
	return time.UnixMilli(m.Date).UTC()
}
