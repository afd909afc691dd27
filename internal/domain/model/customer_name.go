package model

import (
	"time"

	"github.com/google/uuid"
)

// 顧客名のオートコンプリート用。店舗×名前でユニーク。
type CustomerName struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StoreID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_store_customer" json:"store_id"`
	Name    string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_store_customer" json:"name"`

	LastUsed time.Time `gorm:"not null" json:"last_used"`
}
