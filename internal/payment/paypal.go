package payment

import (
	"fmt"
	"regexp"

	"checkout-simulator/internal/discount"

	"github.com/shopspring/decimal"
)

var emailRe = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// PayPal charges against a mock ledger of approved account emails.
type PayPal struct {
	approvedEmails map[string]decimal.Decimal
}

func NewPayPal() *PayPal {
	return &PayPal{
		approvedEmails: map[string]decimal.Decimal{
			"Rand@gmail.com": decimal.NewFromFloat(500.0),
			"Sama@gmail.com": decimal.NewFromFloat(1000.0),
		},
	}
}

func (p *PayPal) Name() string {
	return "PayPal"
}

func (p *PayPal) Validate(details Details) bool {
	email := details["email"]

	if !emailRe.MatchString(email) {
		fmt.Println("Invalid PayPal email")
		return false
	}

	if _, ok := p.approvedEmails[email]; !ok {
		fmt.Println("Email not approved for PayPal")
		return false
	}

	fmt.Println("PayPal details are valid.")
	return true
}

func (p *PayPal) CheckBalance(details Details, amount decimal.Decimal) bool {
	return p.approvedEmails[details["email"]].GreaterThanOrEqual(amount)
}

func (p *PayPal) Process(amount decimal.Decimal, details Details) bool {
	email := details["email"]

	if !p.CheckBalance(details, amount) {
		fmt.Printf("Not enough money for %s\n", email)
		return false
	}

	p.approvedEmails[email] = p.approvedEmails[email].Sub(amount)
	fmt.Printf("Processing PayPal payment of $%s...\n", amount.StringFixed(2))
	fmt.Printf("PayPal payment of $%s was successful.\n", amount.StringFixed(2))
	return true
}

func (p *PayPal) Discount() discount.Policy {
	return discount.NewPercentage(10) // 10% off for PayPal
}

func (p *PayPal) Balance(email string) (decimal.Decimal, bool) {
	balance, ok := p.approvedEmails[email]
	return balance, ok
}
