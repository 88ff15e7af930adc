package order

import (
	"checkout-simulator/internal/discount"
	"checkout-simulator/internal/payment"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusOpen Status = "open"
	StatusPaid Status = "paid"
)

// Item is one order line. Immutable once added; display order follows
// insertion order.
type Item struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
}

func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order collects line items and delegates payment to an optional method and
// discount policy. Status moves open -> paid exactly once, on a successful
// Pay with a method set.
type Order struct {
	Items          []Item
	Status         Status
	paymentMethod  payment.Method
	discountPolicy discount.Policy
}

func New() *Order {
	return &Order{Status: StatusOpen}
}

// AddItem accepts quantity and price as given; zero or negative values are
// not rejected here.
func (o *Order) AddItem(name string, quantity int, price decimal.Decimal) {
	o.Items = append(o.Items, Item{Name: name, Quantity: quantity, Price: price})
}

// TotalPrice is the undiscounted sum over current items, recomputed on
// demand.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (o *Order) SetPaymentMethod(method payment.Method) {
	o.paymentMethod = method
}

func (o *Order) SetDiscountPolicy(policy discount.Policy) {
	o.discountPolicy = policy
}

// ApplyDiscounts returns the policy's discount on the current total, or
// zero when no policy is set.
func (o *Order) ApplyDiscounts() decimal.Decimal {
	if o.discountPolicy == nil {
		return decimal.Zero
	}
	return o.discountPolicy.Calculate(o.TotalPrice())
}

// AmountDue is the amount a payment method would be asked to charge:
// total minus discount, clamped at zero.
func (o *Order) AmountDue() decimal.Decimal {
	due := o.TotalPrice().Sub(o.ApplyDiscounts())
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}

// Pay settles the order. With no payment method set (cash) it returns true
// immediately without validating, charging, or changing the status; the
// order stays open even though the caller treats it as paid. There is no
// guard against calling Pay again after a success, so a second call charges
// the ledger a second time.
func (o *Order) Pay(details payment.Details) bool {
	if o.paymentMethod == nil {
		return true
	}
	if !o.paymentMethod.Validate(details) {
		return false
	}
	if o.paymentMethod.Process(o.AmountDue(), details) {
		o.Status = StatusPaid
		return true
	}
	return false
}
