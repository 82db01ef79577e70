package number

import (
	"github.com/shopspring/decimal"
)

func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// DivFloor returns the exact floor quotient of a/b. QuoRem keeps the
// remainder so no precision is lost, unlike Div which rounds at
// DivisionPrecision.
func DivFloor(a, b decimal.Decimal) decimal.Decimal {
	q, _ := a.QuoRem(b, 0)
	return q
}

// Pow10 returns 10^n.
func Pow10(n int32) decimal.Decimal {
	return decimal.New(1, n)
}
