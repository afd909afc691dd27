package repository

import (
	"context"
	"errors"

	"quickstore/internal/domain/model"
	repo "quickstore/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComboGormRepository struct {
	db *gorm.DB
}

func NewComboGormRepository(db *gorm.DB) *ComboGormRepository {
	return &ComboGormRepository{db: db}
}

func (r *ComboGormRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]model.Combo, error) {
	var items []model.Combo
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at asc").
		Find(&items).Error
	if err != nil {
		return []model.Combo{}, err
	}
	return items, nil
}

func (r *ComboGormRepository) FindByID(ctx context.Context, storeID uuid.UUID, id uuid.UUID) (model.Combo, error) {
	var c model.Combo
	err := r.db.WithContext(ctx).
		Where("id = ? AND store_id = ?", id, storeID).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Combo{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Combo{}, err
	}
	return c, nil
}

func (r *ComboGormRepository) Create(ctx context.Context, c model.Combo) (model.Combo, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Combo{}, err
	}
	return c, nil
}

func (r *ComboGormRepository) Update(ctx context.Context, c model.Combo) error {
	res := r.db.WithContext(ctx).Save(&c)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ComboGormRepository) Delete(ctx context.Context, storeID uuid.UUID, id uuid.UUID) error {
	//構成行から先に消す
	if err := r.db.WithContext(ctx).
		Where("combo_id = ?", id).
		Delete(&model.ComboItem{}).Error; err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Where("id = ? AND store_id = ?", id, storeID).
		Delete(&model.Combo{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type ComboItemGormRepository struct {
	db *gorm.DB
}

func NewComboItemGormRepository(db *gorm.DB) *ComboItemGormRepository {
	return &ComboItemGormRepository{db: db}
}

func (r *ComboItemGormRepository) CreateBulk(ctx context.Context, comboID uuid.UUID, items []model.ComboItem) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([]model.ComboItem, 0, len(items))
	for _, it := range items {
		if it.ID == uuid.Nil {
			it.ID = uuid.New()
		}
		it.ComboID = comboID
		rows = append(rows, it)
	}

	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *ComboItemGormRepository) ListByComboID(ctx context.Context, comboID uuid.UUID) ([]model.ComboItem, error) {
	var items []model.ComboItem
	err := r.db.WithContext(ctx).
		Where("combo_id = ?", comboID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.ComboItem{}, err
	}
	return items, nil
}

func (r *ComboItemGormRepository) DeleteByComboID(ctx context.Context, comboID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("combo_id = ?", comboID).
		Delete(&model.ComboItem{}).Error
}
