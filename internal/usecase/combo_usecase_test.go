package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"quickstore/internal/domain/model"
	"quickstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type comboFixture struct {
	mem   *memStore
	uc    *usecase.ComboUsecase
	store model.Store
}

func newComboFixture() *comboFixture {
	mem := newMemStore()
	tx := &memTxManager{s: mem}
	return &comboFixture{
		mem:   mem,
		uc:    usecase.NewComboUsecase(tx, &memCombos{s: mem}, &memComboItems{s: mem}),
		store: model.Store{ID: uuid.New(), Name: "Main"},
	}
}

func (f *comboFixture) addProduct(name string) model.Product {
	p := model.Product{ID: uuid.New(), StoreID: f.store.ID, Name: name, Price: dec("2.00")}
	f.mem.products[p.ID] = p
	return p
}

func TestComboUsecase_Create(t *testing.T) {
	f := newComboFixture()
	coffee := f.addProduct("Coffee")
	donut := f.addProduct("Donut")

	out, err := f.uc.Create(context.Background(), f.store, usecase.SaveComboInput{
		Name:       "Breakfast Set",
		TotalPrice: dec("4.505"),
		Items: []usecase.ComboItemInput{
			{ProductID: coffee.ID, Quantity: 1},
			{ProductID: donut.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.True(t, out.Combo.TotalPrice.Equal(dec("4.51")))
	assert.Len(t, out.Items, 2)
}

func TestComboUsecase_Create_CrossStoreProduct(t *testing.T) {
	f := newComboFixture()

	foreign := model.Product{ID: uuid.New(), StoreID: uuid.New(), Name: "Foreign", Price: dec("1.00")}
	f.mem.products[foreign.ID] = foreign

	_, err := f.uc.Create(context.Background(), f.store, usecase.SaveComboInput{
		Name:       "Set",
		TotalPrice: dec("1.00"),
		Items:      []usecase.ComboItemInput{{ProductID: foreign.ID, Quantity: 1}},
	})
	assertHTTPStatus(t, err, http.StatusBadRequest)
	assert.Empty(t, f.mem.combos)
}

func TestComboUsecase_Create_Validation(t *testing.T) {
	f := newComboFixture()
	coffee := f.addProduct("Coffee")
	ctx := context.Background()

	_, err := f.uc.Create(ctx, f.store, usecase.SaveComboInput{
		Name:       "",
		TotalPrice: dec("1.00"),
		Items:      []usecase.ComboItemInput{{ProductID: coffee.ID, Quantity: 1}},
	})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	_, err = f.uc.Create(ctx, f.store, usecase.SaveComboInput{
		Name:       "Set",
		TotalPrice: dec("1.00"),
	})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	_, err = f.uc.Create(ctx, f.store, usecase.SaveComboInput{
		Name:       "Set",
		TotalPrice: dec("1.00"),
		Items:      []usecase.ComboItemInput{{ProductID: coffee.ID, Quantity: 0}},
	})
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestComboUsecase_Update_ReplacesItems(t *testing.T) {
	f := newComboFixture()
	coffee := f.addProduct("Coffee")
	donut := f.addProduct("Donut")
	ctx := context.Background()

	created, err := f.uc.Create(ctx, f.store, usecase.SaveComboInput{
		Name:       "Set",
		TotalPrice: dec("4.00"),
		Items:      []usecase.ComboItemInput{{ProductID: coffee.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	out, err := f.uc.Update(ctx, f.store, created.Combo.ID, usecase.SaveComboInput{
		Name:       "Big Set",
		TotalPrice: dec("6.00"),
		Items: []usecase.ComboItemInput{
			{ProductID: coffee.ID, Quantity: 2},
			{ProductID: donut.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Big Set", out.Combo.Name)
	assert.Len(t, f.mem.comboRows[created.Combo.ID], 2)
}

func TestComboUsecase_Delete(t *testing.T) {
	f := newComboFixture()
	coffee := f.addProduct("Coffee")
	ctx := context.Background()

	created, err := f.uc.Create(ctx, f.store, usecase.SaveComboInput{
		Name:       "Set",
		TotalPrice: dec("4.00"),
		Items:      []usecase.ComboItemInput{{ProductID: coffee.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(ctx, f.store, created.Combo.ID))
	assert.Empty(t, f.mem.combos)
	assert.Empty(t, f.mem.comboRows[created.Combo.ID])

	err = f.uc.Delete(ctx, f.store, uuid.New())
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestComboUsecase_Delete_WrongStore(t *testing.T) {
	f := newComboFixture()
	coffee := f.addProduct("Coffee")
	ctx := context.Background()

	created, err := f.uc.Create(ctx, f.store, usecase.SaveComboInput{
		Name:       "Set",
		TotalPrice: dec("4.00"),
		Items:      []usecase.ComboItemInput{{ProductID: coffee.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	//他店舗からの削除は404で、セットも構成行も残る
	err = f.uc.Delete(ctx, model.Store{ID: uuid.New()}, created.Combo.ID)
	assertHTTPStatus(t, err, http.StatusNotFound)
	assert.Len(t, f.mem.combos, 1)
	assert.Len(t, f.mem.comboRows[created.Combo.ID], 1)
}

func TestComboUsecase_Get(t *testing.T) {
	f := newComboFixture()
	coffee := f.addProduct("Coffee")

	created, err := f.uc.Create(context.Background(), f.store, usecase.SaveComboInput{
		Name:       "Solo Coffee",
		TotalPrice: dec("2.00"),
		Items:      []usecase.ComboItemInput{{ProductID: coffee.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	out, err := f.uc.Get(context.Background(), f.store, created.Combo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Solo Coffee", out.Combo.Name)
	assert.Len(t, out.Items, 1)

	//他店舗からは見えない
	_, err = f.uc.Get(context.Background(), model.Store{ID: uuid.New()}, created.Combo.ID)
	assertHTTPStatus(t, err, http.StatusNotFound)
}
