package entity

import (
	"time"
)

// Preference holds a user's five survey answers. A zero-value Preference
// (all fields empty) is valid and means "nothing saved yet".
type Preference struct {
	Id                  uint
	UserId              uint
	CuisineType         string
	PriceRange          string
	DiningStyle         string
	DietaryRestrictions string
	Atmosphere          string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (p *Preference) IsEmpty() bool {
	return p.CuisineType == "" && p.PriceRange == "" && p.DiningStyle == "" &&
		p.DietaryRestrictions == "" && p.Atmosphere == ""
}
