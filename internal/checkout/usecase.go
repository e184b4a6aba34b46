package checkout

import (
	"context"
	"errors"
	"strconv"
	"time"

	"shopdemo/internal/analytics"
	"shopdemo/internal/cart"
	"shopdemo/internal/util"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrShippingIncomplete = errors.New("shipping information is incomplete")
	ErrPaymentIncomplete  = errors.New("payment information is incomplete")
	ErrNoOrder            = errors.New("no order found")
)

// CheckoutUseCase drives the checkout flow: form validity signals, order
// finalization and the confirmation page's purchase replay.
type CheckoutUseCase struct {
	cart         *cart.Cart
	orders       OrderRepository
	emitter      *analytics.Emitter
	now          util.Timestamp
	shippingCost float64
}

type CheckoutOption func(*CheckoutUseCase)

// UseTimestamp overrides the clock used for order ids and dates.
func UseTimestamp(ts util.Timestamp) CheckoutOption {
	return func(u *CheckoutUseCase) {
		u.now = ts
	}
}

func NewCheckoutUseCase(c *cart.Cart, orders OrderRepository, emitter *analytics.Emitter, shippingCost float64, options ...CheckoutOption) *CheckoutUseCase {
	u := &CheckoutUseCase{
		cart:         c,
		orders:       orders,
		emitter:      emitter,
		now:          time.Now,
		shippingCost: shippingCost,
	}

	for _, opt := range options {
		opt(u)
	}

	return u
}

// Begin reports the checkout page being entered and returns the order
// summary lines. begin_checkout no-ops on an empty cart.
func (u *CheckoutUseCase) Begin() []cart.Line {
	u.emitter.BeginCheckout()
	return u.cart.Items()
}

// SubmitShipping validates the shipping step, emitting add_shipping_info
// once the form is complete.
func (u *CheckoutUseCase) SubmitShipping(form ShippingForm) bool {
	if !form.Valid() {
		return false
	}
	u.emitter.AddShippingInfo()
	return true
}

// SubmitPayment validates the payment step, emitting add_payment_info
// once the form is complete.
func (u *CheckoutUseCase) SubmitPayment(form PaymentForm) bool {
	if !form.Valid() {
		return false
	}
	u.emitter.AddPaymentInfo()
	return true
}

// Complete finalizes the order: validates both forms, stores the order,
// emits the shipping and payment events, and clears the cart. The
// purchase event itself fires from the confirmation page replay, after
// the redirect.
func (u *CheckoutUseCase) Complete(ctx context.Context, shipping ShippingForm, payment PaymentForm) (*Order, error) {
	if !shipping.Valid() {
		return nil, ErrShippingIncomplete
	}
	if !payment.Valid() {
		return nil, ErrPaymentIncomplete
	}

	items := u.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	now := u.now()
	order := &Order{
		ID:       "ORD" + strconv.FormatInt(now.UnixMilli(), 10),
		Items:    items,
		Total:    u.cart.Total(u.shippingCost),
		Date:     now,
		Shipping: shipping,
		Payment: PaymentInfo{
			Method: analytics.PaymentType,
			Last4:  maskedCardRef(payment.CardNumber),
		},
	}

	if err := u.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	u.emitter.AddShippingInfo()
	u.emitter.AddPaymentInfo()

	if err := u.cart.Clear(ctx); err != nil {
		return nil, err
	}

	return order, nil
}

// Confirmation loads the most recent order for the thank-you page and
// fires purchase with its explicit order data.
func (u *CheckoutUseCase) Confirmation(ctx context.Context) (*Order, error) {
	order, err := u.orders.Last(ctx)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNoOrder
	}

	u.emitter.Purchase(order.AnalyticsData())
	return order, nil
}

func maskedCardRef(cardNumber string) string {
	if len(cardNumber) < 4 {
		return "****"
	}
	return "****" + cardNumber[len(cardNumber)-4:]
}
