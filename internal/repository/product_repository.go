package repository

import (
	"context"
	"errors"

	"quickstore/internal/domain/model"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
// 検索は必ず店舗スコープで行う。他店舗の商品は「存在しない扱い」。
type ProductRepository interface {
	ListByStore(ctx context.Context, storeID uuid.UUID, category *string) ([]model.Product, error)
	FindByID(ctx context.Context, storeID uuid.UUID, id uuid.UUID) (model.Product, error)

	//明細解決用の一括取得。見つかった分だけ返す。
	FindByIDs(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) ([]model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error

	//削除時のカスケード規約:
	//  order_items.product_id → SET NULL（明細は残す）
	//  combo_items            → DELETE
	Delete(ctx context.Context, storeID uuid.UUID, id uuid.UUID) error

	//手動在庫設定の履歴作成
	CreateAdjustment(ctx context.Context, adj model.InventoryAdjustment) error
}
