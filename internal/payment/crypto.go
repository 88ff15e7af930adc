package payment

import (
	"fmt"

	"checkout-simulator/internal/discount"

	"github.com/shopspring/decimal"
)

const walletAddressLen = 34

// Crypto charges against a mock ledger of known wallet addresses.
type Crypto struct {
	wallets map[string]decimal.Decimal
}

func NewCrypto() *Crypto {
	return &Crypto{
		wallets: map[string]decimal.Decimal{
			"1BoatSLRHtKNngkdXEeobR76b53LETtpyT": decimal.NewFromFloat(1000.0),
		},
	}
}

func (c *Crypto) Name() string {
	return "Cryptocurrency"
}

func (c *Crypto) Validate(details Details) bool {
	walletAddress := details["wallet_address"]

	if len(walletAddress) != walletAddressLen {
		fmt.Println("Invalid Cryptocurrency wallet address")
		return false
	}

	if _, ok := c.wallets[walletAddress]; !ok {
		fmt.Println("Wallet address not found")
		return false
	}

	fmt.Println("Cryptocurrency wallet details are valid.")
	return true
}

func (c *Crypto) CheckBalance(details Details, amount decimal.Decimal) bool {
	return c.wallets[details["wallet_address"]].GreaterThanOrEqual(amount)
}

func (c *Crypto) Process(amount decimal.Decimal, details Details) bool {
	walletAddress := details["wallet_address"]

	if !c.CheckBalance(details, amount) {
		fmt.Printf("Not enough money for %s\n", walletAddress)
		return false
	}

	c.wallets[walletAddress] = c.wallets[walletAddress].Sub(amount)
	fmt.Printf("Processing Cryptocurrency payment of $%s...\n", amount.StringFixed(2))
	fmt.Printf("Cryptocurrency payment of $%s was successful.\n", amount.StringFixed(2))
	return true
}

func (c *Crypto) Discount() discount.Policy {
	return discount.NewPercentage(20) // 20% off for Cryptocurrency
}

func (c *Crypto) Balance(walletAddress string) (decimal.Decimal, bool) {
	balance, ok := c.wallets[walletAddress]
	return balance, ok
}
