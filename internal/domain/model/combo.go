package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// セット商品
type Combo struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StoreID uuid.UUID `gorm:"type:uuid;not null;index" json:"store_id"`
	Name    string    `gorm:"type:varchar(100);not null" json:"name"`

	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// セットの構成。商品が削除されたらカスケードで消える。
type ComboItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ComboID   uuid.UUID `gorm:"type:uuid;not null;index" json:"combo_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
}
