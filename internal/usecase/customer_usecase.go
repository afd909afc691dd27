package usecase

import (
	"context"
	"net/http"
	"time"

	"quickstore/internal/domain/model"
	repo "quickstore/internal/repository"
)

const customerNameListLimit = 100

type CustomerUsecase struct {
	customers repo.CustomerNameRepository
}

// DI
func NewCustomerUsecase(customers repo.CustomerNameRepository) *CustomerUsecase {
	return &CustomerUsecase{customers: customers}
}

// List は最近使った顧客名を新しい順に返す（オートコンプリート用）。
func (u *CustomerUsecase) List(ctx context.Context, store model.Store) ([]model.CustomerName, error) {
	items, err := u.customers.ListByStore(ctx, store.ID, customerNameListLimit)
	if err != nil {
		return []model.CustomerName{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *CustomerUsecase) Record(ctx context.Context, store model.Store, name string) error {
	normalized, err := normalizeCustomerName(&name)
	if err != nil {
		return err
	}
	if normalized == nil {
		return NewHTTPError(http.StatusBadRequest, "name must not be empty")
	}
	if err := u.customers.Upsert(ctx, store.ID, *normalized, time.Now()); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
