package repository

import (
	"context"
	"time"

	"quickstore/internal/domain/model"

	"github.com/google/uuid"
)

type OrderRepository interface {
	FindByID(ctx context.Context, storeID uuid.UUID, orderID uuid.UUID) (model.Order, error)

	//一括支払い更新の解決用。見つかった分だけ返す。
	FindByIDs(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) ([]model.Order, error)

	//onDate指定があればその日の注文だけ（作成日時の降順）
	ListByStore(ctx context.Context, storeID uuid.UUID, onDate *time.Time) ([]model.Order, error)

	Create(ctx context.Context, order model.Order) error
	Update(ctx context.Context, order model.Order) error

	//支払いフラグだけを単独で更新する（一括処理は注文ごとに独立コミット）
	UpdatePaymentStatus(ctx context.Context, storeID uuid.UUID, orderID uuid.UUID, isPaid bool) error

	Delete(ctx context.Context, orderID uuid.UUID) error
}
