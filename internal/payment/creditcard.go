package payment

import (
	"fmt"
	"regexp"

	"checkout-simulator/internal/discount"

	"github.com/shopspring/decimal"
)

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	expiryDateRe = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvRe        = regexp.MustCompile(`^\d{3}$`)
)

// CreditCard charges against a mock ledger of approved card numbers. Each
// instance owns its ledger; balances reset when a new instance is built.
type CreditCard struct {
	approvedCards map[string]decimal.Decimal
}

func NewCreditCard() *CreditCard {
	return &CreditCard{
		approvedCards: map[string]decimal.Decimal{
			"1234567891234567": decimal.NewFromFloat(500.0), // mock balance
		},
	}
}

func (c *CreditCard) Name() string {
	return "Credit"
}

func (c *CreditCard) Validate(details Details) bool {
	cardNumber := details["card_number"]
	expiryDate := details["expiry_date"]
	cvv := details["cvv"]

	if !cardNumberRe.MatchString(cardNumber) {
		fmt.Println("Invalid Credit Card number")
		return false
	}
	if !expiryDateRe.MatchString(expiryDate) {
		fmt.Println("Invalid expiry date")
		return false
	}
	if !cvvRe.MatchString(cvv) {
		fmt.Println("Invalid CVV")
		return false
	}

	if _, ok := c.approvedCards[cardNumber]; !ok {
		fmt.Println("Card number not approved")
		return false
	}

	fmt.Println("Credit Card details are valid.")
	return true
}

func (c *CreditCard) CheckBalance(details Details, amount decimal.Decimal) bool {
	balance, ok := c.approvedCards[details["card_number"]]
	return ok && balance.GreaterThanOrEqual(amount)
}

func (c *CreditCard) Process(amount decimal.Decimal, details Details) bool {
	cardNumber := details["card_number"]

	if !c.CheckBalance(details, amount) {
		fmt.Printf("Not enough money for %s\n", cardNumber)
		return false
	}

	c.approvedCards[cardNumber] = c.approvedCards[cardNumber].Sub(amount)
	fmt.Printf("Processing Credit Card payment of $%s\n", amount.StringFixed(2))
	return true
}

func (c *CreditCard) Discount() discount.Policy {
	return discount.NewFixedAmount(30) // fixed $30 off
}

// Balance reports the remaining ledger balance for a card number.
func (c *CreditCard) Balance(cardNumber string) (decimal.Decimal, bool) {
	balance, ok := c.approvedCards[cardNumber]
	return balance, ok
}
