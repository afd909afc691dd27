package repository

import (
	"context"

	"quickstore/internal/domain/model"

	"github.com/google/uuid"
)

// 編集履歴は追記専用。更新APIは持たない。
type OrderEditHistoryRepository interface {
	Create(ctx context.Context, h model.OrderEditHistory) error
	ListByOrderID(ctx context.Context, orderID uuid.UUID) ([]model.OrderEditHistory, error)

	//注文削除のカスケードでだけ使う
	DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error
}
