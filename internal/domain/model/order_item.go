package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// 注文明細。販売時点のスナップショットで、編集時の全置き換え以外では書き換えない。
type OrderItem struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`

	//商品が後から削除されたらNULLにする（明細は消さない）
	ProductID *uuid.UUID `gorm:"type:uuid;index" json:"product_id"`

	//販売時点の商品名コピー
	ProductName string `gorm:"type:varchar(100);not null" json:"product_name"`

	Quantity decimal.Decimal `gorm:"type:decimal(14,4);not null" json:"quantity"`

	//販売時点の単価コピー
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	//売った単位（指定があったときだけ）
	SaleUnit *string `gorm:"type:varchar(10)" json:"sale_unit"`

	//販売時点の商品の基準単位コピー
	BaseUnit *string `gorm:"type:varchar(10)" json:"base_unit"`

	//基準単位に換算した数量。在庫の増減はこの値で行う。
	BaseQuantity *decimal.Decimal `gorm:"type:decimal(14,4)" json:"base_quantity"`
}

// 在庫へ適用する数量。基準単位換算があればそれ、なければ販売数量。
func (it OrderItem) StockQuantity() decimal.Decimal {
	if it.BaseQuantity != nil {
		return *it.BaseQuantity
	}
	return it.Quantity
}
