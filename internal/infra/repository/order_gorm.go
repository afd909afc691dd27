package repository

import (
	"context"
	"errors"
	"time"

	"quickstore/internal/domain/model"
	repo "quickstore/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) FindByID(ctx context.Context, storeID uuid.UUID, orderID uuid.UUID) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Where("id = ? AND store_id = ?", orderID, storeID).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) FindByIDs(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) ([]model.Order, error) {
	if len(ids) == 0 {
		return []model.Order{}, nil
	}

	var items []model.Order
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND id IN ?", storeID, ids).
		Find(&items).Error
	if err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

func (r *OrderGormRepository) ListByStore(ctx context.Context, storeID uuid.UUID, onDate *time.Time) ([]model.Order, error) {
	q := r.db.WithContext(ctx).Where("store_id = ?", storeID)

	//日付指定はその日の0時から翌日0時まで
	if onDate != nil {
		start := time.Date(onDate.Year(), onDate.Month(), onDate.Day(), 0, 0, 0, 0, onDate.Location())
		end := start.AddDate(0, 0, 1)
		q = q.Where("created_at >= ? AND created_at < ?", start, end)
	}

	var items []model.Order
	if err := q.Order("created_at desc").Find(&items).Error; err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) error {
	return r.db.WithContext(ctx).Create(&order).Error
}

func (r *OrderGormRepository) Update(ctx context.Context, order model.Order) error {
	//customer_nameのNULL化も書けるようSaveで全カラム更新
	res := r.db.WithContext(ctx).Save(&order)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 支払いフラグだけの単独更新。一括処理はこれを注文ごとに呼ぶ。
func (r *OrderGormRepository) UpdatePaymentStatus(ctx context.Context, storeID uuid.UUID, orderID uuid.UUID, isPaid bool) error {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ? AND store_id = ?", orderID, storeID).
		Update("is_paid", isPaid)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) Delete(ctx context.Context, orderID uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Order{}, "id = ?", orderID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
