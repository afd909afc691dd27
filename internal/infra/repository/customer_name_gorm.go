package repository

import (
	"context"
	"time"

	"quickstore/internal/domain/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerNameGormRepository struct {
	db *gorm.DB
}

func NewCustomerNameGormRepository(db *gorm.DB) *CustomerNameGormRepository {
	return &CustomerNameGormRepository{db: db}
}

func (r *CustomerNameGormRepository) Upsert(ctx context.Context, storeID uuid.UUID, name string, usedAt time.Time) error {
	//既存ならlast_usedだけ更新
	res := r.db.WithContext(ctx).
		Model(&model.CustomerName{}).
		Where("store_id = ? AND name = ?", storeID, name).
		Update("last_used", usedAt)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	c := model.CustomerName{
		ID:       uuid.New(),
		StoreID:  storeID,
		Name:     name,
		LastUsed: usedAt,
	}
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		//uq_store_customerに負けたら同時挿入。更新側へ倒す。
		if isUniqueViolation(err) {
			return r.db.WithContext(ctx).
				Model(&model.CustomerName{}).
				Where("store_id = ? AND name = ?", storeID, name).
				Update("last_used", usedAt).Error
		}
		return err
	}
	return nil
}

func (r *CustomerNameGormRepository) ListByStore(ctx context.Context, storeID uuid.UUID, limit int) ([]model.CustomerName, error) {
	var items []model.CustomerName
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("last_used desc").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return []model.CustomerName{}, err
	}
	return items, nil
}
