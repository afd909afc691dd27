package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	OrderEdits() OrderEditHistoryRepository
	Products() ProductRepository
	Inventory() InventoryRepository
	Units() UnitRepository
	CustomerNames() CustomerNameRepository
	Combos() ComboRepository
	ComboItems() ComboItemRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// fnがerrorを返したら全部ロールバックされる。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
