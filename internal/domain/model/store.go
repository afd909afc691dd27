package model

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	MaxStores int       `gorm:"not null;default:1" json:"max_stores"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

type Store struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`

	//trueのとき在庫を管理する。falseの店舗では在庫チェックを一切しない。
	TrackInventory bool `gorm:"not null;default:false" json:"track_inventory"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
