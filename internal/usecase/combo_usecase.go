package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"quickstore/internal/domain/model"
	repo "quickstore/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ComboUsecase struct {
	tx     repo.TransactionManager
	combos repo.ComboRepository
	items  repo.ComboItemRepository
}

// DI
func NewComboUsecase(
	tx repo.TransactionManager,
	combos repo.ComboRepository,
	items repo.ComboItemRepository,
) *ComboUsecase {
	return &ComboUsecase{tx: tx, combos: combos, items: items}
}

type ComboItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

type SaveComboInput struct {
	Name       string
	TotalPrice decimal.Decimal
	Items      []ComboItemInput
}

type ComboOutput struct {
	Combo model.Combo
	Items []model.ComboItem
}

func validateComboInput(in SaveComboInput) (string, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || len(name) > 100 {
		return "", NewHTTPError(http.StatusBadRequest, "invalid name")
	}
	if in.TotalPrice.IsNegative() {
		return "", NewHTTPError(http.StatusBadRequest, "total price must be non-negative")
	}
	if len(in.Items) == 0 {
		return "", NewHTTPError(http.StatusBadRequest, "combo must contain at least one item")
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return "", NewHTTPError(http.StatusBadRequest, "quantity must be positive")
		}
	}
	return name, nil
}

// 構成商品が全て自店舗に居ることを確認してから明細行を組む
func buildComboItems(ctx context.Context, r repo.TxRepos, store model.Store, comboID uuid.UUID, inputs []ComboItemInput) ([]model.ComboItem, error) {
	ids := make([]uuid.UUID, 0, len(inputs))
	for _, it := range inputs {
		ids = append(ids, it.ProductID)
	}
	found, err := r.Products().FindByIDs(ctx, store.ID, ids)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	known := make(map[uuid.UUID]bool, len(found))
	for _, p := range found {
		known[p.ID] = true
	}

	items := make([]model.ComboItem, 0, len(inputs))
	for _, in := range inputs {
		if !known[in.ProductID] {
			return nil, NewHTTPError(http.StatusBadRequest, "product not found: "+in.ProductID.String())
		}
		items = append(items, model.ComboItem{
			ID:        uuid.New(),
			ComboID:   comboID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
		})
	}
	return items, nil
}

func (u *ComboUsecase) Create(ctx context.Context, store model.Store, in SaveComboInput) (ComboOutput, error) {
	name, err := validateComboInput(in)
	if err != nil {
		return ComboOutput{}, err
	}

	var out ComboOutput

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		combo := model.Combo{
			ID:         uuid.New(),
			StoreID:    store.ID,
			Name:       name,
			TotalPrice: model.RoundCurrency(in.TotalPrice),
			CreatedAt:  time.Now(),
		}

		items, err := buildComboItems(ctx, r, store, combo.ID, in.Items)
		if err != nil {
			return err
		}

		if _, err := r.Combos().Create(ctx, combo); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.ComboItems().CreateBulk(ctx, combo.ID, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = ComboOutput{Combo: combo, Items: items}
		return nil
	})

	if err != nil {
		return ComboOutput{}, err
	}
	return out, nil
}

func (u *ComboUsecase) Get(ctx context.Context, store model.Store, comboID uuid.UUID) (ComboOutput, error) {
	combo, err := u.combos.FindByID(ctx, store.ID, comboID)
	if errors.Is(err, repo.ErrNotFound) {
		return ComboOutput{}, NewHTTPError(http.StatusNotFound, "combo not found")
	}
	if err != nil {
		return ComboOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.items.ListByComboID(ctx, combo.ID)
	if err != nil {
		return ComboOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ComboOutput{Combo: combo, Items: items}, nil
}

func (u *ComboUsecase) List(ctx context.Context, store model.Store) ([]ComboOutput, error) {
	combos, err := u.combos.ListByStore(ctx, store.ID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]ComboOutput, 0, len(combos))
	for _, c := range combos {
		items, err := u.items.ListByComboID(ctx, c.ID)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = append(out, ComboOutput{Combo: c, Items: items})
	}
	return out, nil
}

func (u *ComboUsecase) Update(ctx context.Context, store model.Store, comboID uuid.UUID, in SaveComboInput) (ComboOutput, error) {
	name, err := validateComboInput(in)
	if err != nil {
		return ComboOutput{}, err
	}

	var out ComboOutput

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		combo, err := r.Combos().FindByID(ctx, store.ID, comboID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "combo not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := buildComboItems(ctx, r, store, comboID, in.Items)
		if err != nil {
			return err
		}

		combo.Name = name
		combo.TotalPrice = model.RoundCurrency(in.TotalPrice)

		if err := r.Combos().Update(ctx, combo); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.ComboItems().DeleteByComboID(ctx, comboID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.ComboItems().CreateBulk(ctx, comboID, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = ComboOutput{Combo: combo, Items: items}
		return nil
	})

	if err != nil {
		return ComboOutput{}, err
	}
	return out, nil
}

func (u *ComboUsecase) Delete(ctx context.Context, store model.Store, comboID uuid.UUID) error {
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		_, err := r.Combos().FindByID(ctx, store.ID, comboID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "combo not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.ComboItems().DeleteByComboID(ctx, comboID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.Combos().Delete(ctx, store.ID, comboID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}
