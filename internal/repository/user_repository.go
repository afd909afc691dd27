package repository

import (
	"context"

	"quickstore/internal/domain/model"

	"github.com/google/uuid"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
