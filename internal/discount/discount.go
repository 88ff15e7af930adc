package discount

import "github.com/shopspring/decimal"

// Policy turns an order total into a discount amount. Implementations are
// pure; clamping against the total is the caller's job.
type Policy interface {
	Calculate(amount decimal.Decimal) decimal.Decimal
}

type Percentage struct {
	percentage decimal.Decimal
}

func NewPercentage(percentage float64) Percentage {
	return Percentage{percentage: decimal.NewFromFloat(percentage)}
}

func (p Percentage) Calculate(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(p.percentage).Div(decimal.NewFromInt(100))
}

type FixedAmount struct {
	amount decimal.Decimal
}

func NewFixedAmount(amount float64) FixedAmount {
	return FixedAmount{amount: decimal.NewFromFloat(amount)}
}

// Calculate returns the configured constant even when it exceeds the total.
func (f FixedAmount) Calculate(amount decimal.Decimal) decimal.Decimal {
	return f.amount
}
