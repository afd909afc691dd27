package repository

import (
	"context"
	"errors"

	"quickstore/internal/domain/model"
	repo "quickstore/internal/repository"

	"gorm.io/gorm"
)

type UnitGormRepository struct {
	db *gorm.DB
}

func NewUnitGormRepository(db *gorm.DB) *UnitGormRepository {
	return &UnitGormRepository{db: db}
}

func (r *UnitGormRepository) List(ctx context.Context, unitType *model.UnitType) ([]model.Unit, error) {
	q := r.db.WithContext(ctx)

	if unitType != nil {
		q = q.Where("type = ?", *unitType)
	}

	var items []model.Unit
	if err := q.Order("type, code").Find(&items).Error; err != nil {
		return []model.Unit{}, err
	}
	return items, nil
}

func (r *UnitGormRepository) FindByCode(ctx context.Context, code string) (model.Unit, error) {
	var u model.Unit
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Unit{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Unit{}, err
	}
	return u, nil
}

func (r *UnitGormRepository) FindBase(ctx context.Context, unitType model.UnitType) (model.Unit, error) {
	var u model.Unit
	err := r.db.WithContext(ctx).
		Where("type = ? AND is_base = ?", unitType, true).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Unit{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Unit{}, err
	}
	return u, nil
}
