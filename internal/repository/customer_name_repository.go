package repository

import (
	"context"
	"time"

	"quickstore/internal/domain/model"

	"github.com/google/uuid"
)

// オートコンプリート用の顧客名。注文作成・編集の副作用でupsertされる。
type CustomerNameRepository interface {
	//既存ならlast_usedだけ更新、なければ作成
	Upsert(ctx context.Context, storeID uuid.UUID, name string, usedAt time.Time) error

	//last_usedの降順
	ListByStore(ctx context.Context, storeID uuid.UUID, limit int) ([]model.CustomerName, error)
}
