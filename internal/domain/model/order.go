package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StoreID uuid.UUID `gorm:"type:uuid;not null;index" json:"store_id"`

	CustomerName *string `gorm:"type:varchar(100)" json:"customer_name"`

	//常に再計算した値。クライアントの申告値は使わない。
	Total decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`

	IsPaid   bool `gorm:"not null;default:false" json:"is_paid"`
	IsEdited bool `gorm:"not null;default:false" json:"is_edited"`

	CreatedAt time.Time `gorm:"not null;index;autoCreateTime" json:"created_at"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
}
