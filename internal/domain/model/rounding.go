package model

import "github.com/shopspring/decimal"

// 丸めの桁数はここに集約する。呼び出し側で勝手に丸めない。
const (
	//金額は小数2桁
	CurrencyScale = 2

	//数量・在庫は小数4桁
	QuantityScale = 4

	//単位の換算係数は小数10桁
	MultiplierScale = 10
)

// 金額を四捨五入（half-up）で2桁に丸める
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyScale)
}

// 数量を四捨五入（half-up）で4桁に丸める
func RoundQuantity(d decimal.Decimal) decimal.Decimal {
	return d.Round(QuantityScale)
}
