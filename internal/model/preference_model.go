package model

import (
	"time"
)

type UserPreference struct {
	Id                  uint      `gorm:"primaryKey;autoIncrement"`
	UserId              uint      `gorm:"uniqueIndex;not null"` // one preference row per user
	CuisineType         string    `gorm:"type:varchar(100)"`
	PriceRange          string    `gorm:"type:varchar(10)"`
	DiningStyle         string    `gorm:"type:varchar(100)"`
	DietaryRestrictions string    `gorm:"type:varchar(100)"`
	Atmosphere          string    `gorm:"type:varchar(100)"`
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}
