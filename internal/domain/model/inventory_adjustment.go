package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// 手動で在庫を設定したときの履歴。
// 注文経由の増減はOrderItem側に残るのでここには書かない。
type InventoryAdjustment struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Delta     decimal.Decimal `gorm:"type:decimal(14,4);not null" json:"delta"`
	Reason    string          `gorm:"type:varchar(255);not null" json:"reason"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
