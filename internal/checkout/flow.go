package checkout

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"checkout-simulator/internal/order"
	"checkout-simulator/internal/payment"
	"checkout-simulator/internal/service"
	"checkout-simulator/internal/txlog"

	"github.com/shopspring/decimal"
)

// Flow drives one interactive checkout run: collect items, pick a payment
// method, collect credentials, pay, record the outcome. No business logic
// beyond wiring.
type Flow struct {
	in           *bufio.Scanner
	out          io.Writer
	eof          bool
	logger       txlog.Logger
	transactions service.TransactionService
}

func NewFlow(in io.Reader, out io.Writer, logger txlog.Logger, transactions service.TransactionService) *Flow {
	return &Flow{
		in:           bufio.NewScanner(in),
		out:          out,
		logger:       logger,
		transactions: transactions,
	}
}

func (f *Flow) Run(ctx context.Context) {
	fmt.Fprintln(f.out, "Welcome to the Payment System")

	ord := order.New()
	f.collectItems(ord)

	fmt.Fprintln(f.out, "Choose a payment method:")
	fmt.Fprintln(f.out, "1. Credit Card")
	fmt.Fprintln(f.out, "2. PayPal")
	fmt.Fprintln(f.out, "3. Cryptocurrency")
	fmt.Fprintln(f.out, "4. Cash")

	var method payment.Method
	switch f.prompt("Enter the number of your choice: ") {
	case "1":
		method = payment.NewCreditCard()
	case "2":
		method = payment.NewPayPal()
	case "3":
		method = payment.NewCrypto()
	case "4":
		method = nil // cash
	default:
		fmt.Fprintln(f.out, "Invalid choice.")
		return
	}

	if method == nil {
		f.payCash(ctx, ord)
		return
	}

	ord.SetPaymentMethod(method)
	if policy := method.Discount(); policy != nil {
		ord.SetDiscountPolicy(policy)
	}

	details := f.collectDetails(method)
	success := ord.Pay(details)
	f.record(ctx, method.Name(), ord.AmountDue(), success)

	if success {
		fmt.Fprintln(f.out, "Payment successful!")
	} else {
		fmt.Fprintln(f.out, "Payment failed.")
	}
}

func (f *Flow) collectItems(ord *order.Order) {
	for {
		name := f.prompt("Enter the item name (or 'done' to finish): ")
		if strings.EqualFold(name, "done") || f.eof {
			return
		}

		quantity := f.promptInt(fmt.Sprintf("Enter the quantity for %s: ", name))
		price := f.promptDecimal(fmt.Sprintf("Enter the price for %s: ", name))
		ord.AddItem(name, quantity, price)
	}
}

func (f *Flow) collectDetails(method payment.Method) payment.Details {
	switch method.(type) {
	case *payment.CreditCard:
		return payment.Details{
			"card_number": f.prompt("Enter your Credit Card number (16 digits): "),
			"expiry_date": f.prompt("Enter the expiry date (MM/YY): "),
			"cvv":         f.prompt("Enter the CVV (3 digits): "),
		}
	case *payment.PayPal:
		return payment.Details{
			"email": f.prompt("Enter your PayPal email: "),
		}
	case *payment.Crypto:
		return payment.Details{
			"wallet_address": f.prompt("Enter your Cryptocurrency wallet address: "),
		}
	}
	return payment.Details{}
}

// payCash settles without a payment method: Pay returns true immediately,
// nothing is validated or charged.
func (f *Flow) payCash(ctx context.Context, ord *order.Order) {
	f.prompt("Enter your name: ")
	f.prompt("Enter your address: ")
	fmt.Fprintln(f.out, "Cash payment does not include any discount.")

	success := ord.Pay(payment.Details{})
	f.record(ctx, "Cash", ord.AmountDue(), success)
	fmt.Fprintln(f.out, "Payment successful!")
}

func (f *Flow) record(ctx context.Context, method string, amount decimal.Decimal, success bool) {
	if err := f.logger.LogTransaction(method, amount, success); err != nil {
		log.Printf("failed to write transaction log: %v", err)
	}
	if f.transactions == nil {
		return
	}
	if err := f.transactions.Record(ctx, method, amount, success); err != nil {
		log.Printf("failed to record transaction: %v", err)
	}
}

func (f *Flow) prompt(label string) string {
	fmt.Fprint(f.out, label)
	if !f.in.Scan() {
		f.eof = true
		return ""
	}
	return strings.TrimSpace(f.in.Text())
}

func (f *Flow) promptInt(label string) int {
	for !f.eof {
		value, err := strconv.Atoi(f.prompt(label))
		if err != nil {
			fmt.Fprintln(f.out, "Please enter a whole number.")
			continue
		}
		return value
	}
	return 0
}

func (f *Flow) promptDecimal(label string) decimal.Decimal {
	for !f.eof {
		value, err := decimal.NewFromString(f.prompt(label))
		if err != nil {
			fmt.Fprintln(f.out, "Please enter a valid amount.")
			continue
		}
		return value
	}
	return decimal.Zero
}
