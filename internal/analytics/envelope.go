package analytics

import "encoding/json"

// Event names form the fixed vocabulary shared with the downstream
// consumer.
const (
	EventAddToCart           = "add_to_cart"
	EventRemoveFromCart      = "remove_from_cart"
	EventViewCart            = "view_cart"
	EventBeginCheckout       = "begin_checkout"
	EventAddShippingInfo     = "add_shipping_info"
	EventAddPaymentInfo      = "add_payment_info"
	EventPurchase            = "purchase"
	EventViewItem            = "view_item"
	EventViewItemList        = "view_item_list"
	EventSelectItem          = "select_item"
	EventSearch              = "search"
	EventSignUp              = "sign_up"
	EventException           = "exception"
	EventCartAbandonment     = "cart_abandonment"
	EventPageView            = "page_view"
	EventCategoryView        = "category_view"
	EventFilterApplied       = "filter_applied"
	EventSortApplied         = "sort_applied"
	EventRecommendationClick = "recommendation_click"
	EventCheckoutStep        = "checkout_step"
)

// Ecommerce is the nested payload of an ecommerce-bearing envelope.
// Pointer fields distinguish a legitimate zero (tax: 0 on purchase) from
// an absent field, so the serialized entry matches the consumer's schema
// exactly.
type Ecommerce struct {
	Currency      string   `json:"currency,omitempty"`
	TransactionID string   `json:"transaction_id,omitempty"`
	Value         *float64 `json:"value,omitempty"`
	Tax           *float64 `json:"tax,omitempty"`
	Shipping      *float64 `json:"shipping,omitempty"`
	ShippingTier  string   `json:"shipping_tier,omitempty"`
	PaymentType   string   `json:"payment_type,omitempty"`
	ItemListID    string   `json:"item_list_id,omitempty"`
	ItemListName  string   `json:"item_list_name,omitempty"`
	Items         []Item   `json:"items"`
}

// Envelope is one queue entry: an event name, an optional ecommerce
// payload, and optional top-level custom fields for non-ecommerce events.
// Entries are never mutated after they are pushed.
type Envelope struct {
	Event     string
	Ecommerce *Ecommerce
	Custom    map[string]any

	reset bool
}

// Reset returns the clearing marker entry. It serializes as
// {"ecommerce": null} and must immediately precede every ecommerce-bearing
// entry so the consumer does not merge stale nested data.
func Reset() Envelope {
	return Envelope{reset: true}
}

// IsReset reports whether the entry is the clearing marker.
func (e Envelope) IsReset() bool {
	return e.reset
}

// MarshalJSON flattens the envelope into the wire shape the consumer
// expects: custom fields at the top level next to the event name, and an
// explicit null ecommerce key on reset markers.
func (e Envelope) MarshalJSON() ([]byte, error) {
	entry := make(map[string]any, len(e.Custom)+2)
	for k, v := range e.Custom {
		entry[k] = v
	}
	if e.Event != "" {
		entry["event"] = e.Event
	}
	if e.reset {
		entry["ecommerce"] = nil
	} else if e.Ecommerce != nil {
		entry["ecommerce"] = e.Ecommerce
	}
	return json.Marshal(entry)
}

func value(v float64) *float64 {
	return &v
}
