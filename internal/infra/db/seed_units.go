package db

import (
	"quickstore/internal/domain/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type unitSeed struct {
	code       string
	name       string
	unitType   model.UnitType
	multiplier string
	isBase     bool
	symbol     string
}

// 固定の単位マスタ。種類ごとに基準単位（係数1）が1つ。
var unitSeeds = []unitSeed{
	// weight（基準: kg）
	{"kg", "Kilogram", model.UnitTypeWeight, "1.0", true, "kg"},
	{"g", "Gram", model.UnitTypeWeight, "0.001", false, "g"},
	{"mg", "Milligram", model.UnitTypeWeight, "0.000001", false, "mg"},
	{"lbs", "Pound", model.UnitTypeWeight, "0.453592", false, "lbs"},
	{"oz", "Ounce", model.UnitTypeWeight, "0.0283495", false, "oz"},
	// volume（基準: L）
	{"L", "Liter", model.UnitTypeVolume, "1.0", true, "L"},
	{"mL", "Milliliter", model.UnitTypeVolume, "0.001", false, "mL"},
	{"gal", "Gallon", model.UnitTypeVolume, "3.78541", false, "gal"},
	{"fl_oz", "Fluid Ounce", model.UnitTypeVolume, "0.0295735", false, "fl oz"},
	// count（基準: unit）
	{"unit", "Unit", model.UnitTypeCount, "1.0", true, "unit"},
	{"dozen", "Dozen", model.UnitTypeCount, "12.0", false, "dz"},
	{"pack", "Pack", model.UnitTypeCount, "1.0", false, "pack"},
	// length（基準: m）
	{"m", "Meter", model.UnitTypeLength, "1.0", true, "m"},
	{"cm", "Centimeter", model.UnitTypeLength, "0.01", false, "cm"},
	{"mm", "Millimeter", model.UnitTypeLength, "0.001", false, "mm"},
	{"ft", "Foot", model.UnitTypeLength, "0.3048", false, "ft"},
	{"in", "Inch", model.UnitTypeLength, "0.0254", false, "in"},
}

// SeedUnits は単位マスタを投入する。すでにあるコードは触らない。
func SeedUnits(gormDB *gorm.DB) error {
	for _, s := range unitSeeds {
		mult, err := decimal.NewFromString(s.multiplier)
		if err != nil {
			return err
		}

		u := model.Unit{
			Code:           s.code,
			Name:           s.name,
			Type:           s.unitType,
			BaseMultiplier: mult,
			IsBase:         s.isBase,
			Symbol:         s.symbol,
		}

		if err := gormDB.Where("code = ?", s.code).FirstOrCreate(&u).Error; err != nil {
			return err
		}
	}
	return nil
}
