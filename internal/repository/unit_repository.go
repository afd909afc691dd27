package repository

import (
	"context"

	"quickstore/internal/domain/model"
)

// 単位マスタの読み取り。seed以降は書き込みしない。
type UnitRepository interface {
	List(ctx context.Context, unitType *model.UnitType) ([]model.Unit, error)
	FindByCode(ctx context.Context, code string) (model.Unit, error)

	//種類ごとに1つだけあるis_base=trueの単位
	FindBase(ctx context.Context, unitType model.UnitType) (model.Unit, error)
}
