package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"quickstore/internal/domain/model"
	repo "quickstore/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProductUsecase struct {
	tx       repo.TransactionManager
	products repo.ProductRepository
	units    repo.UnitRepository
}

// DI
func NewProductUsecase(
	tx repo.TransactionManager,
	products repo.ProductRepository,
	units repo.UnitRepository,
) *ProductUsecase {
	return &ProductUsecase{tx: tx, products: products, units: units}
}

type CreateProductInput struct {
	Name         string
	Price        decimal.Decimal
	Category     *string
	Inventory    *decimal.Decimal
	BaseUnit     *string
	PricePerUnit *decimal.Decimal
}

type UpdateProductInput struct {
	Name         *string
	Price        *decimal.Decimal
	Category     *string
	Inventory    *decimal.Decimal
	BaseUnit     *string
	PricePerUnit *decimal.Decimal
}

func (u *ProductUsecase) Create(ctx context.Context, store model.Store, in CreateProductInput) (model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || len(name) > 100 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid name")
	}
	if in.Price.IsNegative() {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be non-negative")
	}

	//base_unitは単位マスタに居るコードだけ許す
	if in.BaseUnit != nil {
		if _, err := u.units.FindByCode(ctx, *in.BaseUnit); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid base unit: "+*in.BaseUnit)
			}
			return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	p := model.Product{
		ID:       uuid.New(),
		StoreID:  store.ID,
		Name:     name,
		Price:    model.RoundCurrency(in.Price),
		Category: in.Category,
		BaseUnit: in.BaseUnit,
	}

	if in.PricePerUnit != nil {
		ppu := model.RoundCurrency(*in.PricePerUnit)
		p.PricePerUnit = &ppu
	}

	//在庫は店舗が在庫管理中のときだけ保存する
	if in.Inventory != nil && store.TrackInventory {
		if in.Inventory.IsNegative() {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "inventory must be non-negative")
		}
		inv := model.RoundQuantity(*in.Inventory)
		p.Inventory = &inv
	}

	created, err := u.products.Create(ctx, p)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *ProductUsecase) List(ctx context.Context, store model.Store, category *string) ([]model.Product, error) {
	items, err := u.products.ListByStore(ctx, store.ID, category)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *ProductUsecase) Get(ctx context.Context, store model.Store, productID uuid.UUID) (model.Product, error) {
	p, err := u.products.FindByID(ctx, store.ID, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) Update(ctx context.Context, store model.Store, actorUserID uuid.UUID, productID uuid.UUID, in UpdateProductInput) (model.Product, error) {
	var out model.Product

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByID(ctx, store.ID, productID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" || len(name) > 100 {
				return NewHTTPError(http.StatusBadRequest, "invalid name")
			}
			p.Name = name
		}
		if in.Price != nil {
			if in.Price.IsNegative() {
				return NewHTTPError(http.StatusBadRequest, "price must be non-negative")
			}
			p.Price = model.RoundCurrency(*in.Price)
		}
		if in.Category != nil {
			p.Category = in.Category
		}
		if in.BaseUnit != nil {
			if _, err := r.Units().FindByCode(ctx, *in.BaseUnit); err != nil {
				if errors.Is(err, repo.ErrNotFound) {
					return NewHTTPError(http.StatusBadRequest, "invalid base unit: "+*in.BaseUnit)
				}
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			p.BaseUnit = in.BaseUnit
		}
		if in.PricePerUnit != nil {
			ppu := model.RoundCurrency(*in.PricePerUnit)
			p.PricePerUnit = &ppu
		}

		//手動の在庫設定。管理していない店舗では拒否する。
		if in.Inventory != nil {
			if !store.TrackInventory {
				return NewHTTPError(http.StatusBadRequest, "inventory tracking is not enabled for this store")
			}
			if in.Inventory.IsNegative() {
				return NewHTTPError(http.StatusBadRequest, "inventory must be non-negative")
			}

			newInv := model.RoundQuantity(*in.Inventory)

			//調整履歴（何から何に変えたか）
			oldInv := decimal.Zero
			if q, tracked := p.Stock().Quantity(); tracked {
				oldInv = q
			}
			adj := model.InventoryAdjustment{
				ID:        uuid.New(),
				ProductID: p.ID,
				UserID:    actorUserID,
				Delta:     newInv.Sub(oldInv),
				Reason:    "manual stock set",
				CreatedAt: time.Now(),
			}
			if err := r.Products().CreateAdjustment(ctx, adj); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			p.Inventory = &newInv
		}

		if err := r.Products().Update(ctx, p); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = p
		return nil
	})

	if err != nil {
		return model.Product{}, err
	}
	return out, nil
}

// 削除。過去の注文明細は商品参照をNULLにして残す。
func (u *ProductUsecase) Delete(ctx context.Context, store model.Store, productID uuid.UUID) error {
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		err := r.Products().Delete(ctx, store.ID, productID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}
