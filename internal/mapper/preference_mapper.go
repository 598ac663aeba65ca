package mapper

import (
	"kindalike-be/internal/entity"
	"kindalike-be/internal/model"
)

type PreferenceMapper struct{}

func NewPreferenceMapper() *PreferenceMapper {
	return &PreferenceMapper{}
}

func (m *PreferenceMapper) ToEntity(p *model.UserPreference) *entity.Preference {
	if p == nil {
		return nil
	}
	return &entity.Preference{
		Id:                  p.Id,
		UserId:              p.UserId,
		CuisineType:         p.CuisineType,
		PriceRange:          p.PriceRange,
		DiningStyle:         p.DiningStyle,
		DietaryRestrictions: p.DietaryRestrictions,
		Atmosphere:          p.Atmosphere,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func (m *PreferenceMapper) ToModel(p *entity.Preference) *model.UserPreference {
	if p == nil {
		return nil
	}
	return &model.UserPreference{
		Id:                  p.Id,
		UserId:              p.UserId,
		CuisineType:         p.CuisineType,
		PriceRange:          p.PriceRange,
		DiningStyle:         p.DiningStyle,
		DietaryRestrictions: p.DietaryRestrictions,
		Atmosphere:          p.Atmosphere,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}
