package repository

import (
	"context"
	"errors"
	"time"

	"quickstore/internal/domain/model"

	"github.com/google/uuid"
)

// 一意制約との衝突（同時作成の負け側）
var ErrConflict = errors.New("conflict")

type SessionRepository interface {
	FindByDate(ctx context.Context, storeID uuid.UUID, date time.Time) (model.Session, error)
	Create(ctx context.Context, s model.Session) (model.Session, error)
	MarkExported(ctx context.Context, storeID uuid.UUID, sessionID uuid.UUID) (model.Session, error)
}
