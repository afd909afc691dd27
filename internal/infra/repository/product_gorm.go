package repository

import (
	"context"
	"errors"

	"quickstore/internal/domain/model"
	repo "quickstore/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) ListByStore(ctx context.Context, storeID uuid.UUID, category *string) ([]model.Product, error) {
	q := r.db.WithContext(ctx).Where("store_id = ?", storeID)

	//カテゴリ絞り込み
	if category != nil {
		q = q.Where("category = ?", *category)
	}

	var items []model.Product
	if err := q.Order("created_at asc").Find(&items).Error; err != nil {
		return []model.Product{}, err
	}
	return items, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, storeID uuid.UUID, id uuid.UUID) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Where("id = ? AND store_id = ?", id, storeID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) FindByIDs(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	var items []model.Product
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND id IN ?", storeID, ids).
		Find(&items).Error
	if err != nil {
		return []model.Product{}, err
	}
	return items, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	//NULL設定（在庫や単位の解除）も書けるようSaveで全カラム更新
	res := r.db.WithContext(ctx).Save(&p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// カスケード規約はここで明示的に実行する:
// order_itemsは商品参照をNULLにして残し、combo_itemsは消す。
func (r *ProductGormRepository) Delete(ctx context.Context, storeID uuid.UUID, id uuid.UUID) error {
	var p model.Product
	err := r.db.WithContext(ctx).
		Where("id = ? AND store_id = ?", id, storeID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.ErrNotFound
	}
	if err != nil {
		return err
	}

	//過去の明細は履歴として残す
	if err := r.db.WithContext(ctx).
		Model(&model.OrderItem{}).
		Where("product_id = ?", id).
		Update("product_id", gorm.Expr("NULL")).Error; err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("product_id = ?", id).
		Delete(&model.ComboItem{}).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id).Error
}

// 手動在庫設定の履歴作成
func (r *ProductGormRepository) CreateAdjustment(ctx context.Context, adj model.InventoryAdjustment) error {
	if adj.ID == uuid.Nil {
		adj.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(&adj).Error
}
