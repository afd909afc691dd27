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

type OrderUsecase struct {
	tx     repo.TransactionManager
	orders repo.OrderRepository
}

// DI
func NewOrderUsecase(tx repo.TransactionManager, orders repo.OrderRepository) *OrderUsecase {
	return &OrderUsecase{tx: tx, orders: orders}
}

type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	Unit      *string
}

type CreateOrderInput struct {
	Items        []OrderItemInput
	CustomerName *string
	IsPaid       bool
}

type UpdateOrderInput struct {
	Items        []OrderItemInput // nilなら明細は変更なし
	CustomerName *string
	IsPaid       *bool
}

type BulkUpdatePaymentInput struct {
	OrderIDs []uuid.UUID
	IsPaid   bool
}

type BulkUpdateResult struct {
	OrderID uuid.UUID
	Success bool
	Error   *string
}

type BulkUpdatePaymentOutput struct {
	Total      int
	Successful int
	Failed     int
	Results    []BulkUpdateResult
}

// 顧客名を正規化する。空白を削り、空なら未指定扱い。
func normalizeCustomerName(name *string) (*string, error) {
	if name == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return nil, nil
	}
	if len(trimmed) > 100 {
		return nil, NewHTTPError(http.StatusBadRequest, "customer name too long")
	}
	return &trimmed, nil
}

func equalCustomerName(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// buildOrderItems は入力明細を検証して注文明細の行を組み立てる。
// 単位指定があれば商品の基準単位へ換算し、在庫引当量と小計を確定する。
func buildOrderItems(ctx context.Context, r repo.TxRepos, store model.Store, orderID uuid.UUID, inputs []OrderItemInput) ([]model.OrderItem, map[uuid.UUID]model.Product, decimal.Decimal, error) {
	if len(inputs) == 0 {
		return nil, nil, decimal.Zero, NewHTTPError(http.StatusBadRequest, "order must contain at least one item")
	}

	ids := make([]uuid.UUID, 0, len(inputs))
	seen := map[uuid.UUID]bool{}
	for _, in := range inputs {
		if !in.Quantity.IsPositive() {
			return nil, nil, decimal.Zero, NewHTTPError(http.StatusBadRequest, "quantity must be positive")
		}
		if !seen[in.ProductID] {
			seen[in.ProductID] = true
			ids = append(ids, in.ProductID)
		}
	}

	found, err := r.Products().FindByIDs(ctx, store.ID, ids)
	if err != nil {
		return nil, nil, decimal.Zero, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	products := make(map[uuid.UUID]model.Product, len(found))
	for _, p := range found {
		products[p.ID] = p
	}
	//他店舗や存在しない商品の参照は弾く
	for _, id := range ids {
		if _, ok := products[id]; !ok {
			return nil, nil, decimal.Zero, NewHTTPError(http.StatusBadRequest, "product not found: "+id.String())
		}
	}

	items := make([]model.OrderItem, 0, len(inputs))
	total := decimal.Zero

	for _, in := range inputs {
		p := products[in.ProductID]
		productID := p.ID

		item := model.OrderItem{
			ID:          uuid.New(),
			OrderID:     orderID,
			ProductID:   &productID,
			ProductName: p.Name,
			Quantity:    model.RoundQuantity(in.Quantity),
			//単価をそのまま写す。行小計は持たない。
			Price: p.Price,
		}

		//行の金額。丸めは合計で一度だけ。
		line := p.Price.Mul(in.Quantity)

		if in.Unit != nil {
			//単位売りは基準単位を持つ商品にしか許さない
			if p.BaseUnit == nil {
				return nil, nil, decimal.Zero, NewHTTPError(http.StatusBadRequest, "product has no base unit: "+p.Name)
			}
			baseQty, err := convertQuantity(ctx, r.Units(), in.Quantity, *in.Unit, *p.BaseUnit)
			if errors.Is(err, ErrUnknownUnit) {
				return nil, nil, decimal.Zero, NewHTTPError(http.StatusBadRequest, "unknown unit: "+*in.Unit)
			}
			if errors.Is(err, ErrIncompatibleUnits) {
				return nil, nil, decimal.Zero, NewHTTPError(http.StatusBadRequest, "cannot convert between different unit types")
			}
			if err != nil {
				return nil, nil, decimal.Zero, NewHTTPError(http.StatusInternalServerError, "db error")
			}

			saleUnit := *in.Unit
			baseUnit := *p.BaseUnit
			item.SaleUnit = &saleUnit
			item.BaseUnit = &baseUnit
			item.BaseQuantity = &baseQty

			//基準単位あたり単価があれば行金額はそちらで計算する
			if p.PricePerUnit != nil {
				line = p.PricePerUnit.Mul(baseQty)
				item.Price = *p.PricePerUnit
			}
		}

		total = total.Add(line)
		items = append(items, item)
	}

	return items, products, model.RoundCurrency(total), nil
}

// precheckStock は明細合算の必要量を在庫と突き合わせる。
// 同一商品の複数行は合算してから比較する。
func precheckStock(store model.Store, products map[uuid.UUID]model.Product, items []model.OrderItem) error {
	if !store.TrackInventory {
		return nil
	}

	need := map[uuid.UUID]decimal.Decimal{}
	for _, it := range items {
		if it.ProductID == nil {
			continue
		}
		need[*it.ProductID] = need[*it.ProductID].Add(it.StockQuantity())
	}

	//入力順に突き合わせて最初に不足した商品を報告する
	checked := map[uuid.UUID]bool{}
	for _, it := range items {
		if it.ProductID == nil {
			continue
		}
		id := *it.ProductID
		if checked[id] {
			continue
		}
		checked[id] = true

		p := products[id]
		stock, tracked := p.Stock().Quantity()
		if !tracked {
			continue
		}
		if stock.LessThan(need[id]) {
			return NewHTTPError(http.StatusBadRequest, "insufficient inventory for product: "+p.Name)
		}
	}
	return nil
}

// applyStockDeltas は在庫追跡中の商品へ増減を適用する。
// sign は -1（引当）か +1（戻し）。
func applyStockDeltas(ctx context.Context, r repo.TxRepos, store model.Store, products map[uuid.UUID]model.Product, items []model.OrderItem, sign int64) error {
	if !store.TrackInventory {
		return nil
	}
	mul := decimal.NewFromInt(sign)
	for _, it := range items {
		if it.ProductID == nil {
			//削除済み商品の明細は在庫に触らない
			continue
		}
		if p, ok := products[*it.ProductID]; ok && !p.Stock().Tracked() {
			continue
		}
		delta := it.StockQuantity().Mul(mul)
		if err := r.Inventory().ApplyDelta(ctx, *it.ProductID, delta); err != nil {
			if errors.Is(err, repo.ErrInsufficientStock) {
				name := it.ProductName
				return NewHTTPError(http.StatusBadRequest, "insufficient inventory for product: "+name)
			}
			if errors.Is(err, repo.ErrNotFound) {
				continue
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}
	return nil
}

// restoreStockDeltas は既存明細ぶんの在庫を戻す。
// 商品が消えた明細は無視する。
func restoreStockDeltas(ctx context.Context, r repo.TxRepos, store model.Store, items []model.OrderItem) error {
	if !store.TrackInventory {
		return nil
	}
	for _, it := range items {
		if it.ProductID == nil {
			continue
		}
		err := r.Inventory().ApplyDelta(ctx, *it.ProductID, it.StockQuantity())
		if errors.Is(err, repo.ErrNotFound) {
			continue
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}
	return nil
}

type OrderOutput struct {
	Order model.Order
	Items []model.OrderItem
}

func (u *OrderUsecase) Create(ctx context.Context, store model.Store, userID uuid.UUID, in CreateOrderInput) (OrderOutput, error) {
	customerName, err := normalizeCustomerName(in.CustomerName)
	if err != nil {
		return OrderOutput{}, err
	}

	var out OrderOutput

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orderID := uuid.New()

		items, products, total, err := buildOrderItems(ctx, r, store, orderID, in.Items)
		if err != nil {
			return err
		}
		if err := precheckStock(store, products, items); err != nil {
			return err
		}

		order := model.Order{
			ID:           orderID,
			StoreID:      store.ID,
			CustomerName: customerName,
			Total:        total,
			IsPaid:       in.IsPaid,
			CreatedAt:    time.Now(),
			CreatedBy:    userID,
		}
		if err := r.Orders().Create(ctx, order); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := applyStockDeltas(ctx, r, store, products, items, -1); err != nil {
			return err
		}

		if customerName != nil {
			if err := r.CustomerNames().Upsert(ctx, store.ID, *customerName, time.Now()); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		out = OrderOutput{Order: order, Items: items}
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) Get(ctx context.Context, store model.Store, orderID uuid.UUID) (OrderOutput, error) {
	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindByID(ctx, store.ID, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Order not found or access denied")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = OrderOutput{Order: order, Items: items}
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) List(ctx context.Context, store model.Store, onDate *time.Time) ([]OrderOutput, error) {
	var out []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByStore(ctx, store.ID, onDate)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			out = append(out, OrderOutput{Order: o, Items: items})
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *OrderUsecase) ListToday(ctx context.Context, store model.Store) ([]OrderOutput, error) {
	today := time.Now()
	return u.List(ctx, store, &today)
}

func (u *OrderUsecase) Update(ctx context.Context, store model.Store, userID uuid.UUID, orderID uuid.UUID, in UpdateOrderInput) (OrderOutput, error) {
	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindByID(ctx, store.ID, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Order not found or access denied")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		oldItems, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//編集前の姿を先に確保しておく(支払状態は含めない)
		snapshot := model.SnapshotOf(order, oldItems)

		contentEdited := false
		newItems := oldItems

		if in.CustomerName != nil {
			name, err := normalizeCustomerName(in.CustomerName)
			if err != nil {
				return err
			}
			//同じ名前の再送は編集として数えない
			if !equalCustomerName(order.CustomerName, name) {
				order.CustomerName = name
				contentEdited = true
			}

			if name != nil {
				if err := r.CustomerNames().Upsert(ctx, store.ID, *name, time.Now()); err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
			}
		}

		if in.Items != nil {
			//旧明細ぶんを戻してから新明細を組み直す
			if err := restoreStockDeltas(ctx, r, store, oldItems); err != nil {
				return err
			}

			items, products, total, err := buildOrderItems(ctx, r, store, orderID, in.Items)
			if err != nil {
				return err
			}
			if err := precheckStock(store, products, items); err != nil {
				return err
			}

			if err := r.OrderItems().DeleteByOrderID(ctx, orderID); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if err := applyStockDeltas(ctx, r, store, products, items, -1); err != nil {
				return err
			}

			order.Total = total
			newItems = items
			contentEdited = true
		}

		if in.IsPaid != nil {
			order.IsPaid = *in.IsPaid
		}

		//支払状態だけの変更は編集扱いにしない
		if contentEdited {
			order.IsEdited = true

			history, err := model.NewOrderEditHistory(orderID, userID, snapshot)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "failed to record edit history")
			}
			if err := r.OrderEdits().Create(ctx, history); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		if err := r.Orders().Update(ctx, order); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = OrderOutput{Order: order, Items: newItems}
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// Delete は注文を消して引当ぶんの在庫を戻す。
func (u *OrderUsecase) Delete(ctx context.Context, store model.Store, orderID uuid.UUID) error {
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		_, err := r.Orders().FindByID(ctx, store.ID, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Order not found or access denied")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := restoreStockDeltas(ctx, r, store, items); err != nil {
			return err
		}

		if err := r.OrderEdits().DeleteByOrderID(ctx, orderID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.OrderItems().DeleteByOrderID(ctx, orderID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.Orders().Delete(ctx, orderID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}

func (u *OrderUsecase) History(ctx context.Context, store model.Store, orderID uuid.UUID) ([]model.OrderEditHistory, error) {
	var out []model.OrderEditHistory

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		_, err := r.Orders().FindByID(ctx, store.ID, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Order not found or access denied")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		entries, err := r.OrderEdits().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = entries
		return nil
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

// BulkUpdatePayment は複数注文の支払状態を一括で切り替える。
// 注文ごとに独立してコミットし、一部の失敗で全体は止めない。
func (u *OrderUsecase) BulkUpdatePayment(ctx context.Context, store model.Store, in BulkUpdatePaymentInput) (BulkUpdatePaymentOutput, error) {
	if len(in.OrderIDs) == 0 {
		return BulkUpdatePaymentOutput{}, NewHTTPError(http.StatusBadRequest, "order_ids must not be empty")
	}
	if len(in.OrderIDs) > 100 {
		return BulkUpdatePaymentOutput{}, NewHTTPError(http.StatusBadRequest, "too many order ids (max 100)")
	}

	found, err := u.orders.FindByIDs(ctx, store.ID, in.OrderIDs)
	if err != nil {
		return BulkUpdatePaymentOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	resolved := make(map[uuid.UUID]bool, len(found))
	for _, o := range found {
		resolved[o.ID] = true
	}

	out := BulkUpdatePaymentOutput{
		Total:   len(in.OrderIDs),
		Results: make([]BulkUpdateResult, 0, len(in.OrderIDs)),
	}

	for _, id := range in.OrderIDs {
		if !resolved[id] {
			msg := "Order not found or access denied"
			out.Failed++
			out.Results = append(out.Results, BulkUpdateResult{OrderID: id, Success: false, Error: &msg})
			continue
		}
		if err := u.orders.UpdatePaymentStatus(ctx, store.ID, id, in.IsPaid); err != nil {
			msg := "failed to update payment status"
			if errors.Is(err, repo.ErrNotFound) {
				msg = "Order not found or access denied"
			}
			out.Failed++
			out.Results = append(out.Results, BulkUpdateResult{OrderID: id, Success: false, Error: &msg})
			continue
		}
		out.Successful++
		out.Results = append(out.Results, BulkUpdateResult{OrderID: id, Success: true})
	}

	return out, nil
}
