package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"quickstore/internal/domain/model"
	"quickstore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUnitUsecase() (*usecase.UnitUsecase, *memStore) {
	mem := newMemStore()
	return usecase.NewUnitUsecase(&memUnits{s: mem}), mem
}

func TestUnitUsecase_Convert_KgToG(t *testing.T) {
	uc, _ := newUnitUsecase()

	out, err := uc.Convert(context.Background(), dec("1.5"), "kg", "g")
	require.NoError(t, err)
	assert.True(t, out.Converted.Equal(dec("1500")), "got %s", out.Converted)
}

func TestUnitUsecase_Convert_GToKg(t *testing.T) {
	uc, _ := newUnitUsecase()

	out, err := uc.Convert(context.Background(), dec("500"), "g", "kg")
	require.NoError(t, err)
	assert.True(t, out.Converted.Equal(dec("0.5")))
}

func TestUnitUsecase_Convert_DozenToUnit(t *testing.T) {
	uc, _ := newUnitUsecase()

	out, err := uc.Convert(context.Background(), dec("2"), "dozen", "unit")
	require.NoError(t, err)
	assert.True(t, out.Converted.Equal(dec("24")))
}

func TestUnitUsecase_Convert_OzToG(t *testing.T) {
	uc, _ := newUnitUsecase()

	//1 oz = 0.0283495 kg = 28.3495 g
	out, err := uc.Convert(context.Background(), dec("1"), "oz", "g")
	require.NoError(t, err)
	assert.True(t, out.Converted.Equal(dec("28.3495")), "got %s", out.Converted)
}

func TestUnitUsecase_Convert_RoundsHalfUpTo4Places(t *testing.T) {
	uc, _ := newUnitUsecase()

	//123.45678 g → 0.12345678 kg → 0.1235（half-up）
	out, err := uc.Convert(context.Background(), dec("123.45678"), "g", "kg")
	require.NoError(t, err)
	assert.True(t, out.Converted.Equal(dec("0.1235")), "got %s", out.Converted)
}

func TestUnitUsecase_Convert_SameCodeStillRounds(t *testing.T) {
	uc, _ := newUnitUsecase()

	//同一単位でも存在確認と丸めはかかる
	out, err := uc.Convert(context.Background(), dec("2.00005"), "kg", "kg")
	require.NoError(t, err)
	assert.True(t, out.Converted.Equal(dec("2.0001")), "got %s", out.Converted)
}

func TestUnitUsecase_Convert_RoundTripWithinTolerance(t *testing.T) {
	uc, _ := newUnitUsecase()
	ctx := context.Background()

	there, err := uc.Convert(ctx, dec("750"), "g", "kg")
	require.NoError(t, err)
	back, err := uc.Convert(ctx, there.Converted, "kg", "g")
	require.NoError(t, err)

	diff := back.Converted.Sub(dec("750")).Abs()
	assert.True(t, diff.LessThanOrEqual(dec("0.0001")), "diff=%s", diff)
}

func TestUnitUsecase_Convert_IncompatibleTypes(t *testing.T) {
	uc, _ := newUnitUsecase()

	_, err := uc.Convert(context.Background(), dec("1"), "kg", "L")
	require.Error(t, err)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestUnitUsecase_Convert_UnknownUnit(t *testing.T) {
	uc, _ := newUnitUsecase()

	_, err := uc.Convert(context.Background(), dec("1"), "kg", "stone")
	require.Error(t, err)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestUnitUsecase_Convert_SameCodeUnknownUnit(t *testing.T) {
	uc, _ := newUnitUsecase()

	//from==toでも未知の単位は404
	_, err := uc.Convert(context.Background(), dec("1"), "stone", "stone")
	require.Error(t, err)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestUnitUsecase_AreCompatible(t *testing.T) {
	uc, _ := newUnitUsecase()
	ctx := context.Background()

	ok, err := uc.AreCompatible(ctx, "kg", "oz")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.AreCompatible(ctx, "kg", "mL")
	require.NoError(t, err)
	assert.False(t, ok)

	//未知のコードはエラーではなくfalse
	ok, err = uc.AreCompatible(ctx, "kg", "stone")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = uc.AreCompatible(ctx, "stone", "stone")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnitUsecase_BaseUnitFor(t *testing.T) {
	uc, _ := newUnitUsecase()

	base, err := uc.BaseUnitFor(context.Background(), model.UnitTypeWeight)
	require.NoError(t, err)
	assert.Equal(t, "kg", base.Code)
	assert.True(t, base.BaseMultiplier.Equal(dec("1")))
}

func TestUnitUsecase_List_FilterByType(t *testing.T) {
	uc, _ := newUnitUsecase()

	vol := model.UnitTypeVolume
	out, err := uc.List(context.Background(), &vol)
	require.NoError(t, err)
	for _, u := range out {
		assert.Equal(t, model.UnitTypeVolume, u.Type)
	}
	assert.Len(t, out, 2)
}

func TestUnitUsecase_List_InvalidType(t *testing.T) {
	uc, _ := newUnitUsecase()

	bogus := model.UnitType("mass")
	_, err := uc.List(context.Background(), &bogus)
	require.Error(t, err)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Contains(t, he.Message, "weight, volume, count, length")
}
