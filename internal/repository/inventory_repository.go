package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// 在庫が負になる操作
var ErrInsufficientStock = errors.New("insufficient stock")

// 在庫台帳。状態変更のプリミティブだけで、取引ログは持たない。
// 逆仕訳は呼び出し側が適用したdeltaを覚えて正負反転で行う。
type InventoryRepository interface {
	// 符号付き数量（基準単位換算済み）を在庫に加算する。
	// 在庫管理対象外（inventoryがNULL）の商品には何もしない。
	// 結果が負になるならErrInsufficientStockを返し、在庫は変えない。
	ApplyDelta(ctx context.Context, productID uuid.UUID, delta decimal.Decimal) error
}
