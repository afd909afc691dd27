package repository

import (
	"context"
	"errors"

	"quickstore/internal/domain/model"
	repo "quickstore/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// 符号付きdeltaを在庫に加算する。
// 条件付きUPDATEなので、事前チェックの後に他のコミットが割り込んでいても
// ここで負になる適用は絶対に通らない。
func (r *InventoryGormRepository) ApplyDelta(ctx context.Context, productID uuid.UUID, delta decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ? AND inventory IS NOT NULL AND inventory + ? >= 0", productID, delta).
		Update("inventory", gorm.Expr("inventory + ?", delta))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	//当たらなかった理由を切り分ける
	var p model.Product
	err := r.db.WithContext(ctx).
		Select("id", "inventory").
		Where("id = ?", productID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.ErrNotFound
	}
	if err != nil {
		return err
	}

	//在庫管理の対象外はno-op
	if p.Inventory == nil {
		return nil
	}

	return repo.ErrInsufficientStock
}
