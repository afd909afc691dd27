package usecase

import (
	"context"
	"errors"
	"net/http"

	"quickstore/internal/domain/model"
	repo "quickstore/internal/repository"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownUnit       = errors.New("unknown unit")
	ErrIncompatibleUnits = errors.New("incompatible units")
)

// convertQuantity は from 単位の数量を to 単位に換算する。
// 基準単位を経由して換算し、結果は数量スケールに丸める。
// from と to が同一コードでも存在確認と丸めは行う。
func convertQuantity(ctx context.Context, units repo.UnitRepository, qty decimal.Decimal, from, to string) (decimal.Decimal, error) {
	fu, err := units.FindByCode(ctx, from)
	if errors.Is(err, repo.ErrNotFound) {
		return decimal.Zero, ErrUnknownUnit
	}
	if err != nil {
		return decimal.Zero, err
	}
	tu, err := units.FindByCode(ctx, to)
	if errors.Is(err, repo.ErrNotFound) {
		return decimal.Zero, ErrUnknownUnit
	}
	if err != nil {
		return decimal.Zero, err
	}
	if fu.Type != tu.Type {
		return decimal.Zero, ErrIncompatibleUnits
	}
	if fu.Code == tu.Code {
		return model.RoundQuantity(qty), nil
	}

	//基準量 = qty * from倍率、結果 = 基準量 / to倍率
	base := qty.Mul(fu.BaseMultiplier)
	out := base.Div(tu.BaseMultiplier)
	return model.RoundQuantity(out), nil
}

type UnitUsecase struct {
	units repo.UnitRepository
}

// DI
func NewUnitUsecase(units repo.UnitRepository) *UnitUsecase {
	return &UnitUsecase{units: units}
}

func (u *UnitUsecase) List(ctx context.Context, unitType *model.UnitType) ([]model.Unit, error) {
	if unitType != nil && !unitType.Valid() {
		return []model.Unit{}, NewHTTPError(http.StatusBadRequest, "Invalid unit type. Must be one of: weight, volume, count, length")
	}
	items, err := u.units.List(ctx, unitType)
	if err != nil {
		return []model.Unit{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *UnitUsecase) Get(ctx context.Context, code string) (model.Unit, error) {
	unit, err := u.units.FindByCode(ctx, code)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Unit{}, NewHTTPError(http.StatusNotFound, "unit not found")
	}
	if err != nil {
		return model.Unit{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return unit, nil
}

type ConvertOutput struct {
	Quantity  decimal.Decimal
	FromUnit  string
	ToUnit    string
	Converted decimal.Decimal
}

func (u *UnitUsecase) Convert(ctx context.Context, qty decimal.Decimal, from, to string) (ConvertOutput, error) {
	out, err := convertQuantity(ctx, u.units, qty, from, to)
	if errors.Is(err, ErrUnknownUnit) {
		return ConvertOutput{}, NewHTTPError(http.StatusNotFound, "unit not found")
	}
	if errors.Is(err, ErrIncompatibleUnits) {
		return ConvertOutput{}, NewHTTPError(http.StatusBadRequest, "cannot convert between different unit types")
	}
	if err != nil {
		return ConvertOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ConvertOutput{
		Quantity:  qty,
		FromUnit:  from,
		ToUnit:    to,
		Converted: out,
	}, nil
}

// AreCompatible は同じ種別どうしか判定する。未知のコードはエラーではなくfalse。
func (u *UnitUsecase) AreCompatible(ctx context.Context, a, b string) (bool, error) {
	ua, err := u.units.FindByCode(ctx, a)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	ub, err := u.units.FindByCode(ctx, b)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ua.Type == ub.Type, nil
}

// BaseUnitFor は種別の基準単位を返す（kg/L/unit/m）。
func (u *UnitUsecase) BaseUnitFor(ctx context.Context, unitType model.UnitType) (model.Unit, error) {
	unit, err := u.units.FindBase(ctx, unitType)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Unit{}, NewHTTPError(http.StatusNotFound, "no base unit for type")
	}
	if err != nil {
		return model.Unit{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return unit, nil
}
