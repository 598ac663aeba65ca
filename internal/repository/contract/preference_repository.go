package contract

import (
	"context"

	"kindalike-be/internal/entity"
	"kindalike-be/internal/repository/specification"
)

type PreferenceRepository interface {
	Create(ctx context.Context, pref *entity.Preference) error
	Update(ctx context.Context, pref *entity.Preference) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Preference, error)
}
