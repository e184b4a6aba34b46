package checkout

import (
	"strings"
	"time"

	"shopdemo/internal/analytics"
	"shopdemo/internal/cart"
)

// Order is a finalized purchase. The most recent order is kept so the
// confirmation page can replay it into the purchase emission.
type Order struct {
	ID       string       `json:"id"`
	Items    []cart.Line  `json:"items"`
	Total    float64      `json:"total"`
	Date     time.Time    `json:"date"`
	Shipping ShippingForm `json:"shipping"`
	Payment  PaymentInfo  `json:"payment"`
}

// AnalyticsData projects the order into the record the purchase emission
// consumes.
func (o *Order) AnalyticsData() *analytics.OrderData {
	items := make([]analytics.Source, 0, len(o.Items))
	for _, line := range o.Items {
		items = append(items, line.Source())
	}
	total := o.Total

	return &analytics.OrderData{
		ID:    o.ID,
		Items: items,
		Total: &total,
	}
}

// ShippingForm is the checkout shipping step. All fields are required.
type ShippingForm struct {
	FullName   string `json:"full_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Email      string `json:"email"`
}

func (f ShippingForm) Valid() bool {
	return allFilled(f.FullName, f.Address, f.City, f.PostalCode, f.Email)
}

// PaymentForm is the checkout payment step. All fields are required.
// Card details are validated for presence only and never stored.
type PaymentForm struct {
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	NameOnCard string `json:"name_on_card"`
}

func (f PaymentForm) Valid() bool {
	return allFilled(f.CardNumber, f.Expiry, f.CVV, f.NameOnCard)
}

// PaymentInfo is what the order keeps about the payment: the method and a
// masked reference, nothing sensitive.
type PaymentInfo struct {
	Method string `json:"method"`
	Last4  string `json:"last4"`
}

func allFilled(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}
