package repository

import (
	"context"

	repo "quickstore/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders        repo.OrderRepository
	orderItems    repo.OrderItemRepository
	orderEdits    repo.OrderEditHistoryRepository
	products      repo.ProductRepository
	inventory     repo.InventoryRepository
	units         repo.UnitRepository
	customerNames repo.CustomerNameRepository
	combos        repo.ComboRepository
	comboItems    repo.ComboItemRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository                { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository        { return r.orderItems }
func (r *txReposGorm) OrderEdits() repo.OrderEditHistoryRepository { return r.orderEdits }
func (r *txReposGorm) Products() repo.ProductRepository            { return r.products }
func (r *txReposGorm) Inventory() repo.InventoryRepository         { return r.inventory }
func (r *txReposGorm) Units() repo.UnitRepository                  { return r.units }
func (r *txReposGorm) CustomerNames() repo.CustomerNameRepository  { return r.customerNames }
func (r *txReposGorm) Combos() repo.ComboRepository                { return r.combos }
func (r *txReposGorm) ComboItems() repo.ComboItemRepository        { return r.comboItems }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			orders:        NewOrderGormRepository(tx),
			orderItems:    NewOrderItemGormRepository(tx),
			orderEdits:    NewOrderEditHistoryGormRepository(tx),
			products:      NewProductGormRepository(tx),
			inventory:     NewInventoryGormRepository(tx),
			units:         NewUnitGormRepository(tx),
			customerNames: NewCustomerNameGormRepository(tx),
			combos:        NewComboGormRepository(tx),
			comboItems:    NewComboItemGormRepository(tx),
		}
		return fn(r)
	})
}
