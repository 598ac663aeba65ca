package implementation

import (
	"context"
	"errors"

	"kindalike-be/internal/entity"
	"kindalike-be/internal/mapper"
	"kindalike-be/internal/model"
	"kindalike-be/internal/repository/contract"
	"kindalike-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PreferenceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PreferenceMapper
}

func NewPreferenceRepository(db *gorm.DB) contract.PreferenceRepository {
	return &PreferenceRepositoryImpl{
		db:     db,
		mapper: mapper.NewPreferenceMapper(),
	}
}

func (r *PreferenceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PreferenceRepositoryImpl) Create(ctx context.Context, pref *entity.Preference) error {
	m := r.mapper.ToModel(pref)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*pref = *r.mapper.ToEntity(m)
	return nil
}

func (r *PreferenceRepositoryImpl) Update(ctx context.Context, pref *entity.Preference) error {
	m := r.mapper.ToModel(pref)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*pref = *r.mapper.ToEntity(m)
	return nil
}

func (r *PreferenceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Preference, error) {
	var m model.UserPreference
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
