package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StoreID uuid.UUID `gorm:"type:uuid;not null;index" json:"store_id"`
	Name    string    `gorm:"type:varchar(100);not null" json:"name"`

	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	Category *string `gorm:"type:varchar(50)" json:"category"`

	//NULLなら在庫管理の対象外
	Inventory *decimal.Decimal `gorm:"type:decimal(14,4)" json:"inventory"`

	//設定するなら単位マスタに存在するコード
	BaseUnit *string `gorm:"type:varchar(10)" json:"base_unit"`

	//基準単位あたりの売価
	PricePerUnit *decimal.Decimal `gorm:"type:decimal(10,2)" json:"price_per_unit"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// 在庫のtagged option。NULL数値のまま持ち回らない。
type Stock struct {
	tracked  bool
	quantity decimal.Decimal
}

func TrackedStock(q decimal.Decimal) Stock {
	return Stock{tracked: true, quantity: q}
}

func UntrackedStock() Stock {
	return Stock{}
}

func (s Stock) Tracked() bool {
	return s.tracked
}

// 管理対象のときだけ数量を返す
func (s Stock) Quantity() (decimal.Decimal, bool) {
	return s.quantity, s.tracked
}

// 商品の在庫状態をStockとして読む
func (p Product) Stock() Stock {
	if p.Inventory == nil {
		return UntrackedStock()
	}
	return TrackedStock(*p.Inventory)
}
