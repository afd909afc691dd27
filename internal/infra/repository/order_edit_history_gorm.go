package repository

import (
	"context"

	"quickstore/internal/domain/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderEditHistoryGormRepository struct {
	db *gorm.DB
}

func NewOrderEditHistoryGormRepository(db *gorm.DB) *OrderEditHistoryGormRepository {
	return &OrderEditHistoryGormRepository{db: db}
}

func (r *OrderEditHistoryGormRepository) Create(ctx context.Context, h model.OrderEditHistory) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(&h).Error
}

func (r *OrderEditHistoryGormRepository) ListByOrderID(ctx context.Context, orderID uuid.UUID) ([]model.OrderEditHistory, error) {
	var items []model.OrderEditHistory
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("edited_at asc").
		Find(&items).Error
	if err != nil {
		return []model.OrderEditHistory{}, err
	}
	return items, nil
}

func (r *OrderEditHistoryGormRepository) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&model.OrderEditHistory{}).Error
}
