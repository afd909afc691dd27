package repository

import (
	"context"

	"quickstore/internal/domain/model"

	"github.com/google/uuid"
)

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID uuid.UUID, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID uuid.UUID) ([]model.OrderItem, error)

	//編集時の全置き換えと注文削除で使う
	DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error
}
