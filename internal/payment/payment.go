package payment

import (
	"checkout-simulator/internal/discount"

	"github.com/shopspring/decimal"
)

// Details carries the credential fields a method needs, keyed by field name
// (card_number, expiry_date, cvv, email, wallet_address).
type Details map[string]string

// Method is the contract shared by every payment variant. Validate checks
// input shape and ledger membership without mutating anything; Process must
// re-check the balance itself before touching the ledger, so a direct call
// that skipped Validate still cannot overdraw an account. Failures are
// reported as a console message plus a false return.
type Method interface {
	Name() string
	Validate(details Details) bool
	CheckBalance(details Details, amount decimal.Decimal) bool
	Process(amount decimal.Decimal, details Details) bool
	Discount() discount.Policy
}
