package model

import "github.com/shopspring/decimal"

// 単位の種類。違う種類どうしは換算できない。
type UnitType string

const (
	UnitTypeWeight UnitType = "weight"
	UnitTypeVolume UnitType = "volume"
	UnitTypeCount  UnitType = "count"
	UnitTypeLength UnitType = "length"
)

func (t UnitType) Valid() bool {
	switch t {
	case UnitTypeWeight, UnitTypeVolume, UnitTypeCount, UnitTypeLength:
		return true
	}
	return false
}

// 換算用の単位マスタ。seedで投入して実行時は読み取り専用。
// 種類ごとに is_base=true の基準単位が1つだけあり、その係数は必ず1。
type Unit struct {
	//例: "kg", "L", "unit"
	Code string `gorm:"type:varchar(10);primaryKey" json:"code"`

	//例: "Kilogram", "Liter"
	Name string `gorm:"type:varchar(50);not null" json:"name"`

	//weight / volume / count / length
	Type UnitType `gorm:"type:varchar(10);not null;index" json:"type"`

	//基準単位への換算係数
	BaseMultiplier decimal.Decimal `gorm:"type:decimal(20,10);not null" json:"base_multiplier"`

	IsBase bool `gorm:"not null;default:false" json:"is_base"`

	//表示用: "kg", "fl oz", "dz"
	Symbol string `gorm:"type:varchar(10);not null" json:"symbol"`
}
