package model

import (
	"time"

	"github.com/google/uuid"
)

// 営業日のセッション。日次エクスポート済みかどうかだけ持つ。
// 店舗×日付でユニーク。
type Session struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StoreID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_store_date" json:"store_id"`

	Date time.Time `gorm:"type:date;not null;index;uniqueIndex:uq_store_date" json:"date"`

	Exported bool `gorm:"not null;default:false" json:"exported"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
