package dto

import (
	"time"
)

type PreferenceRequest struct {
	CuisineType         string `json:"cuisine_type"`
	PriceRange          string `json:"price_range"`
	DiningStyle         string `json:"dining_style"`
	DietaryRestrictions string `json:"dietary_restrictions"`
	Atmosphere          string `json:"atmosphere"`
}

type PreferenceResponse struct {
	Id                  uint      `json:"id"`
	UserId              uint      `json:"user_id"`
	CuisineType         string    `json:"cuisine_type"`
	PriceRange          string    `json:"price_range"`
	DiningStyle         string    `json:"dining_style"`
	DietaryRestrictions string    `json:"dietary_restrictions"`
	Atmosphere          string    `json:"atmosphere"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
