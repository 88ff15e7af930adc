package order

import (
	"testing"

	"checkout-simulator/internal/discount"
	"checkout-simulator/internal/payment"

	"github.com/shopspring/decimal"
)

func price(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func TestTotalPrice(t *testing.T) {
	ord := New()

	if !ord.TotalPrice().Equal(decimal.Zero) {
		t.Errorf("Expected empty order total 0, got %s", ord.TotalPrice())
	}

	ord.AddItem("book", 2, price(12.50))
	ord.AddItem("pen", 3, price(1.25))

	want := price(28.75)
	if !ord.TotalPrice().Equal(want) {
		t.Errorf("Expected total %s, got %s", want, ord.TotalPrice())
	}
}

func TestTotalPriceInsertionOrderIrrelevant(t *testing.T) {
	a := New()
	a.AddItem("book", 2, price(12.50))
	a.AddItem("pen", 3, price(1.25))

	b := New()
	b.AddItem("pen", 3, price(1.25))
	b.AddItem("book", 2, price(12.50))

	if !a.TotalPrice().Equal(b.TotalPrice()) {
		t.Errorf("Expected totals to match regardless of insertion order, got %s and %s",
			a.TotalPrice(), b.TotalPrice())
	}
}

func TestAddItemAcceptsZeroAndNegative(t *testing.T) {
	ord := New()
	ord.AddItem("refund", -1, price(10.00))
	ord.AddItem("freebie", 1, price(0))

	want := price(-10.00)
	if !ord.TotalPrice().Equal(want) {
		t.Errorf("Expected total %s, got %s", want, ord.TotalPrice())
	}
}

func TestApplyDiscountsWithoutPolicy(t *testing.T) {
	ord := New()
	ord.AddItem("book", 1, price(100.00))

	if !ord.ApplyDiscounts().Equal(decimal.Zero) {
		t.Errorf("Expected no discount without a policy, got %s", ord.ApplyDiscounts())
	}
}

func TestAmountDueClampsToZero(t *testing.T) {
	ord := New()
	ord.AddItem("sticker", 1, price(10.00))
	ord.SetDiscountPolicy(discount.NewFixedAmount(30))

	if !ord.AmountDue().Equal(decimal.Zero) {
		t.Errorf("Expected amount due clamped to 0, got %s", ord.AmountDue())
	}
	// The undiscounted total is untouched by the clamp.
	if !ord.TotalPrice().Equal(price(10.00)) {
		t.Errorf("Expected total to stay 10.00, got %s", ord.TotalPrice())
	}
}

func TestPayWithCreditCard(t *testing.T) {
	card := payment.NewCreditCard()

	ord := New()
	ord.AddItem("widget", 2, price(25.00))
	ord.SetPaymentMethod(card)
	ord.SetDiscountPolicy(card.Discount())

	ok := ord.Pay(payment.Details{
		"card_number": "1234567891234567",
		"expiry_date": "11/25",
		"cvv":         "123",
	})
	if !ok {
		t.Fatal("Expected payment to succeed")
	}

	if ord.Status != StatusPaid {
		t.Errorf("Expected status %q, got %q", StatusPaid, ord.Status)
	}

	// 50.00 total, $30 fixed discount, 20.00 charged.
	balance, _ := card.Balance("1234567891234567")
	if !balance.Equal(price(480.0)) {
		t.Errorf("Expected card balance 480, got %s", balance)
	}

	// TotalPrice stays undiscounted after payment.
	if !ord.TotalPrice().Equal(price(50.00)) {
		t.Errorf("Expected total to stay 50.00, got %s", ord.TotalPrice())
	}
}

func TestPayWithPayPal(t *testing.T) {
	pp := payment.NewPayPal()

	ord := New()
	ord.AddItem("course", 1, price(100.00))
	ord.SetPaymentMethod(pp)
	ord.SetDiscountPolicy(pp.Discount())

	if !ord.Pay(payment.Details{"email": "Rand@gmail.com"}) {
		t.Fatal("Expected payment to succeed")
	}

	// 100.00 total, 10% discount, 90.00 charged.
	balance, _ := pp.Balance("Rand@gmail.com")
	if !balance.Equal(price(410.0)) {
		t.Errorf("Expected PayPal balance 410, got %s", balance)
	}
}

func TestPayValidationFailure(t *testing.T) {
	card := payment.NewCreditCard()

	ord := New()
	ord.AddItem("widget", 2, price(25.00))
	ord.SetPaymentMethod(card)
	ord.SetDiscountPolicy(card.Discount())

	ok := ord.Pay(payment.Details{
		"card_number": "9999999999999999",
		"expiry_date": "11/25",
		"cvv":         "123",
	})
	if ok {
		t.Fatal("Expected payment to fail for unapproved card")
	}

	if ord.Status != StatusOpen {
		t.Errorf("Expected status %q, got %q", StatusOpen, ord.Status)
	}

	balance, _ := card.Balance("1234567891234567")
	if !balance.Equal(price(500.0)) {
		t.Errorf("Expected balance untouched at 500, got %s", balance)
	}
}

func TestPayInsufficientBalance(t *testing.T) {
	crypto := payment.NewCrypto()

	ord := New()
	ord.AddItem("rig", 1, price(2000.00))
	ord.SetPaymentMethod(crypto)
	ord.SetDiscountPolicy(crypto.Discount())

	// 2000.00 total, 20% discount, 1600.00 due against a 1000.0 balance.
	if ord.Pay(payment.Details{"wallet_address": "1BoatSLRHtKNngkdXEeobR76b53LETtpyT"}) {
		t.Fatal("Expected payment to fail on insufficient balance")
	}

	if ord.Status != StatusOpen {
		t.Errorf("Expected status %q, got %q", StatusOpen, ord.Status)
	}

	balance, _ := crypto.Balance("1BoatSLRHtKNngkdXEeobR76b53LETtpyT")
	if !balance.Equal(price(1000.0)) {
		t.Errorf("Expected wallet balance untouched at 1000, got %s", balance)
	}
}

func TestPayCashLeavesStatusOpen(t *testing.T) {
	ord := New()
	ord.AddItem("coffee", 1, price(3.50))

	// No payment method set: Pay succeeds immediately but the status is not
	// advanced to paid.
	if !ord.Pay(payment.Details{}) {
		t.Fatal("Expected cash payment to succeed")
	}
	if ord.Status != StatusOpen {
		t.Errorf("Expected status %q, got %q", StatusOpen, ord.Status)
	}
}

func TestPayTwiceChargesTwice(t *testing.T) {
	pp := payment.NewPayPal()

	ord := New()
	ord.AddItem("course", 1, price(100.00))
	ord.SetPaymentMethod(pp)
	ord.SetDiscountPolicy(pp.Discount())

	details := payment.Details{"email": "Rand@gmail.com"}

	if !ord.Pay(details) {
		t.Fatal("Expected first payment to succeed")
	}
	// There is no status guard in Pay: a second call charges the ledger
	// again.
	if !ord.Pay(details) {
		t.Fatal("Expected second payment to succeed")
	}

	balance, _ := pp.Balance("Rand@gmail.com")
	if !balance.Equal(price(320.0)) {
		t.Errorf("Expected balance 320 after two charges of 90, got %s", balance)
	}
}
