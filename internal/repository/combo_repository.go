package repository

import (
	"context"

	"quickstore/internal/domain/model"

	"github.com/google/uuid"
)

type ComboRepository interface {
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]model.Combo, error)
	FindByID(ctx context.Context, storeID uuid.UUID, id uuid.UUID) (model.Combo, error)
	Create(ctx context.Context, c model.Combo) (model.Combo, error)
	Update(ctx context.Context, c model.Combo) error
	Delete(ctx context.Context, storeID uuid.UUID, id uuid.UUID) error
}

type ComboItemRepository interface {
	CreateBulk(ctx context.Context, comboID uuid.UUID, items []model.ComboItem) error
	ListByComboID(ctx context.Context, comboID uuid.UUID) ([]model.ComboItem, error)
	DeleteByComboID(ctx context.Context, comboID uuid.UUID) error
}
