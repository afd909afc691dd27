package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// 編集前の注文の構造化コピー。スキーマはこの型が唯一の定義。
type OrderSnapshot struct {
	CustomerName *string             `json:"customer_name"`
	Total        decimal.Decimal     `json:"total"`
	Items        []OrderItemSnapshot `json:"items"`
}

type OrderItemSnapshot struct {
	ProductID    *uuid.UUID       `json:"product_id"`
	ProductName  string           `json:"product_name"`
	Quantity     decimal.Decimal  `json:"quantity"`
	Price        decimal.Decimal  `json:"price"`
	SaleUnit     *string          `json:"sale_unit,omitempty"`
	BaseUnit     *string          `json:"base_unit,omitempty"`
	BaseQuantity *decimal.Decimal `json:"base_quantity,omitempty"`
}

// SnapshotOf は現在の注文と明細からスナップショットを作る。
// 支払状態は履歴に含めない。
func SnapshotOf(order Order, items []OrderItem) OrderSnapshot {
	snap := OrderSnapshot{
		CustomerName: order.CustomerName,
		Total:        order.Total,
		Items:        make([]OrderItemSnapshot, 0, len(items)),
	}
	for _, it := range items {
		snap.Items = append(snap.Items, OrderItemSnapshot{
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Quantity:     it.Quantity,
			Price:        it.Price,
			SaleUnit:     it.SaleUnit,
			BaseUnit:     it.BaseUnit,
			BaseQuantity: it.BaseQuantity,
		})
	}
	return snap
}

// 注文の編集履歴。内容が変わる編集1回につき1行の追記専用。
// 注文削除のカスケード以外で消えることはない。
type OrderEditHistory struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`

	EditedAt time.Time `gorm:"not null;autoCreateTime" json:"edited_at"`
	EditedBy uuid.UUID `gorm:"type:uuid;not null" json:"edited_by"`

	//OrderSnapshotのJSON文字列で保存する
	PreviousState string `gorm:"type:text;not null" json:"-"`
}

// スナップショットをJSONにして履歴行を作る
func NewOrderEditHistory(orderID uuid.UUID, editedBy uuid.UUID, snap OrderSnapshot) (OrderEditHistory, error) {
	raw, err := json.Marshal(snap)
	if err != nil {
		return OrderEditHistory{}, err
	}
	return OrderEditHistory{
		ID:            uuid.New(),
		OrderID:       orderID,
		EditedBy:      editedBy,
		PreviousState: string(raw),
	}, nil
}

// 保存済みJSONをスナップショットに戻す
func (h OrderEditHistory) Snapshot() (OrderSnapshot, error) {
	var snap OrderSnapshot
	if err := json.Unmarshal([]byte(h.PreviousState), &snap); err != nil {
		return OrderSnapshot{}, err
	}
	return snap, nil
}
