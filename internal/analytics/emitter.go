package analytics

import (
	"strconv"
	"time"

	"shopdemo/internal/util"

	"go.uber.org/zap"
)

const (
	// Fixed values required by the consumer's schema.
	ShippingTier    = "Standard"
	PaymentType     = "credit_card"
	SignUpMethod    = "newsletter"
	DefaultShipping = 99

	transactionPrefix = "ORD"
)

// CartProvider exposes read-only access to the shopper's cart lines. The
// cart may be empty or momentarily stale; emitters degrade to a no-op
// rather than fail.
type CartProvider interface {
	Lines() []Source
}

// OrderData is the order record the checkout collaborator hands to the
// purchase emission. Fields may be partially absent: a missing id is
// generated and a missing total is computed from the item list.
type OrderData struct {
	ID    string   `json:"id"`
	Items []Source `json:"items"`
	Total *float64 `json:"total"`
}

// Emitter translates storefront state transitions into ordered queue
// entries. One method per tracked event; every ecommerce-bearing entry is
// preceded by a reset marker. No method returns an error: failed
// preconditions are logged and the emission is skipped, keeping the
// storefront usable even when analytics cannot emit.
type Emitter struct {
	cart         CartProvider
	sink         Sink
	log          *zap.Logger
	now          util.Timestamp
	shippingCost float64
}

type EmitterOption func(*Emitter)

// UseTimestamp overrides the clock used for generated transaction ids.
func UseTimestamp(ts util.Timestamp) EmitterOption {
	return func(e *Emitter) {
		e.now = ts
	}
}

// WithShippingCost overrides the flat shipping cost reported on purchase
// events.
func WithShippingCost(cost float64) EmitterOption {
	return func(e *Emitter) {
		e.shippingCost = cost
	}
}

func NewEmitter(cart CartProvider, sink Sink, log *zap.Logger, options ...EmitterOption) *Emitter {
	e := &Emitter{
		cart:         cart,
		sink:         sink,
		log:          log,
		now:          time.Now,
		shippingCost: DefaultShipping,
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

// AddToCart reports an item added to the cart.
func (e *Emitter) AddToCart(product *Source, quantity int) {
	if product == nil {
		e.reject(EventAddToCart)
		return
	}
	if quantity < 1 {
		quantity = 1
	}

	src := *product
	src.Quantity = quantity
	items := FormatItems(src)
	total := TotalValue(src)

	e.push(Envelope{
		Event: EventAddToCart,
		Ecommerce: &Ecommerce{
			Currency: Currency,
			Value:    value(total),
			Items:    items,
		},
	})
	e.log.Info("analytics event",
		zap.String("event", EventAddToCart),
		zap.String("product", items[0].ItemName),
		zap.Int("quantity", quantity),
		zap.Float64("value", total),
	)
}

// RemoveFromCart reports an item removed from the cart.
func (e *Emitter) RemoveFromCart(product *Source, quantity int) {
	if product == nil {
		e.reject(EventRemoveFromCart)
		return
	}
	if quantity < 1 {
		quantity = 1
	}

	src := *product
	src.Quantity = quantity
	items := FormatItems(src)
	total := TotalValue(src)

	e.push(Envelope{
		Event: EventRemoveFromCart,
		Ecommerce: &Ecommerce{
			Currency: Currency,
			Value:    value(total),
			Items:    items,
		},
	})
	e.log.Info("analytics event",
		zap.String("event", EventRemoveFromCart),
		zap.String("product", items[0].ItemName),
		zap.Int("quantity", quantity),
		zap.Float64("value", total),
	)
}

// ViewCart reports the cart page being shown. No-op on an empty cart.
func (e *Emitter) ViewCart() {
	e.emitFromCart(EventViewCart, nil)
}

// BeginCheckout reports the checkout page being entered. No-op on an
// empty cart.
func (e *Emitter) BeginCheckout() {
	e.emitFromCart(EventBeginCheckout, nil)
}

// AddShippingInfo reports the shipping form becoming valid or the
// checkout being submitted. No-op on an empty cart.
func (e *Emitter) AddShippingInfo() {
	e.emitFromCart(EventAddShippingInfo, func(ec *Ecommerce) {
		ec.ShippingTier = ShippingTier
	})
}

// AddPaymentInfo reports the payment form becoming valid or the checkout
// being submitted. No-op on an empty cart.
func (e *Emitter) AddPaymentInfo() {
	e.emitFromCart(EventAddPaymentInfo, func(ec *Ecommerce) {
		ec.PaymentType = PaymentType
	})
}

// Purchase reports a finalized order. With explicit order data the
// supplied id, items and total are used verbatim, generating an id or
// computing the total only when the record omits them. With nil order
// data the current cart is used instead; an empty cart skips the
// emission.
func (e *Emitter) Purchase(order *OrderData) {
	var (
		transactionID string
		total         float64
		items         []Item
	)

	if order != nil {
		transactionID = order.ID
		if transactionID == "" {
			transactionID = e.transactionID()
		}
		items = FormatItems(order.Items...)
		if order.Total != nil {
			total = *order.Total
		} else {
			total = TotalValue(order.Items...)
		}
	} else {
		lines := e.cart.Lines()
		if len(lines) == 0 {
			e.skip(EventPurchase)
			return
		}
		transactionID = e.transactionID()
		total = TotalValue(lines...)
		items = FormatItems(lines...)
	}

	e.push(Envelope{
		Event: EventPurchase,
		Ecommerce: &Ecommerce{
			Currency:      Currency,
			TransactionID: transactionID,
			Value:         value(total),
			Tax:           value(0),
			Shipping:      value(e.shippingCost),
			Items:         items,
		},
	})
	e.log.Info("analytics event",
		zap.String("event", EventPurchase),
		zap.String("transaction_id", transactionID),
		zap.Float64("value", total),
		zap.Int("items", len(items)),
	)
}

// ViewItem reports a product detail page view.
func (e *Emitter) ViewItem(product *Source) {
	if product == nil {
		e.reject(EventViewItem)
		return
	}

	src := *product
	src.Quantity = 1
	items := FormatItems(src)
	total := coercePrice(product.Price)

	e.push(Envelope{
		Event: EventViewItem,
		Ecommerce: &Ecommerce{
			Currency: Currency,
			Value:    value(total),
			Items:    items,
		},
	})
	e.log.Info("analytics event",
		zap.String("event", EventViewItem),
		zap.String("product", items[0].ItemName),
		zap.Float64("value", total),
	)
}

// ViewItemList reports a listing page render. Each item carries its
// position and the list identity.
func (e *Emitter) ViewItemList(products []Source, listName, listID string) {
	if listName == "" {
		listName = DefaultListName
	}
	if listID == "" {
		listID = DefaultListID
	}
	items := FormatList(products, listName, listID)

	e.push(Envelope{
		Event: EventViewItemList,
		Ecommerce: &Ecommerce{
			ItemListID:   listID,
			ItemListName: listName,
			Items:        items,
		},
	})
	e.log.Info("analytics event",
		zap.String("event", EventViewItemList),
		zap.String("list", listName),
		zap.Int("items", len(items)),
	)
}

// SelectItem reports a product clicked from a list.
func (e *Emitter) SelectItem(product *Source, listName, listID string) {
	if product == nil {
		e.reject(EventSelectItem)
		return
	}

	items := FormatList([]Source{*product}, listName, listID)

	e.push(Envelope{
		Event: EventSelectItem,
		Ecommerce: &Ecommerce{
			ItemListID:   items[0].ItemListID,
			ItemListName: items[0].ItemListName,
			Items:        items,
		},
	})
	e.log.Info("analytics event",
		zap.String("event", EventSelectItem),
		zap.String("product", items[0].ItemName),
		zap.String("list", items[0].ItemListName),
	)
}

// Search reports an executed product search.
func (e *Emitter) Search(term string, resultCount int) {
	e.push(Envelope{
		Event: EventSearch,
		Custom: map[string]any{
			"search_term":   term,
			"results_count": resultCount,
		},
	})
	e.log.Info("analytics event",
		zap.String("event", EventSearch),
		zap.String("term", term),
		zap.Int("results", resultCount),
	)
}

// SignUp reports a newsletter form submission.
func (e *Emitter) SignUp(email, location string) {
	e.push(Envelope{
		Event: EventSignUp,
		Custom: map[string]any{
			"method":          SignUpMethod,
			"user_email":      email,
			"signup_location": location,
		},
	})
	e.log.Info("analytics event",
		zap.String("event", EventSignUp),
		zap.String("location", location),
	)
}

// Exception reports an application error surfaced to the shopper.
func (e *Emitter) Exception(errorType, message, location string) {
	e.push(Envelope{
		Event: EventException,
		Custom: map[string]any{
			"error_type":     errorType,
			"error_message":  message,
			"error_location": location,
		},
	})
	e.log.Info("analytics event",
		zap.String("event", EventException),
		zap.String("type", errorType),
		zap.String("location", location),
	)
}

// CartAbandonment reports the shopper leaving with items in the cart.
// No-op on an empty cart, which also covers the timer firing after a
// completed checkout cleared the cart.
func (e *Emitter) CartAbandonment() {
	e.emitFromCart(EventCartAbandonment, nil)
}

// PageView reports an enhanced page view.
func (e *Emitter) PageView(title, location string) {
	userType := "visitor"
	if len(e.cart.Lines()) > 0 {
		userType = "engaged"
	}

	e.push(Envelope{
		Event: EventPageView,
		Custom: map[string]any{
			"page_title":    title,
			"page_location": location,
			"user_type":     userType,
		},
	})
	e.log.Info("analytics event",
		zap.String("event", EventPageView),
		zap.String("title", title),
	)
}

// CategoryView reports a category listing view.
func (e *Emitter) CategoryView(category string, productCount int) {
	e.push(Envelope{
		Event: EventCategoryView,
		Custom: map[string]any{
			"category_name": category,
			"product_count": productCount,
		},
	})
	e.log.Info("analytics event",
		zap.String("event", EventCategoryView),
		zap.String("category", category),
	)
}

// FilterApplied reports a listing filter being applied.
func (e *Emitter) FilterApplied(filterType, filterValue string) {
	e.push(Envelope{
		Event: EventFilterApplied,
		Custom: map[string]any{
			"filter_type":  filterType,
			"filter_value": filterValue,
		},
	})
	e.log.Info("analytics event",
		zap.String("event", EventFilterApplied),
		zap.String("type", filterType),
	)
}

// SortApplied reports a listing sort being applied.
func (e *Emitter) SortApplied(sortType string) {
	e.push(Envelope{
		Event: EventSortApplied,
		Custom: map[string]any{
			"sort_type": sortType,
		},
	})
	e.log.Info("analytics event",
		zap.String("event", EventSortApplied),
		zap.String("type", sortType),
	)
}

// RecommendationClick reports a recommended product being clicked.
func (e *Emitter) RecommendationClick(product *Source, recommendationType string) {
	if product == nil {
		e.reject(EventRecommendationClick)
		return
	}

	src := *product
	src.Quantity = 1
	items := FormatItems(src)

	e.push(Envelope{
		Event: EventRecommendationClick,
		Ecommerce: &Ecommerce{
			Currency: Currency,
			Value:    value(coercePrice(product.Price)),
			Items:    items,
		},
		Custom: map[string]any{
			"recommendation_type": recommendationType,
		},
	})
	e.log.Info("analytics event",
		zap.String("event", EventRecommendationClick),
		zap.String("product", items[0].ItemName),
		zap.String("type", recommendationType),
	)
}

// CheckoutStep reports progress through the checkout funnel. No-op on an
// empty cart.
func (e *Emitter) CheckoutStep(step int, stepName string) {
	lines := e.cart.Lines()
	if len(lines) == 0 {
		e.skip(EventCheckoutStep)
		return
	}
	total := TotalValue(lines...)

	e.push(Envelope{
		Event: EventCheckoutStep,
		Ecommerce: &Ecommerce{
			Currency: Currency,
			Value:    value(total),
			Items:    FormatItems(lines...),
		},
		Custom: map[string]any{
			"checkout_step":      step,
			"checkout_step_name": stepName,
		},
	})
	e.log.Info("analytics event",
		zap.String("event", EventCheckoutStep),
		zap.Int("step", step),
		zap.String("name", stepName),
	)
}

// emitFromCart builds the common cart-derived payload, skipping silently
// when the cart is empty at call time.
func (e *Emitter) emitFromCart(event string, decorate func(*Ecommerce)) {
	lines := e.cart.Lines()
	if len(lines) == 0 {
		e.skip(event)
		return
	}

	total := TotalValue(lines...)
	ec := &Ecommerce{
		Currency: Currency,
		Value:    value(total),
		Items:    FormatItems(lines...),
	}
	if decorate != nil {
		decorate(ec)
	}

	e.push(Envelope{Event: event, Ecommerce: ec})
	e.log.Info("analytics event",
		zap.String("event", event),
		zap.Int("items", len(lines)),
		zap.Float64("value", total),
	)
}

// push appends the entry, preceded by the reset marker when it carries an
// ecommerce payload. Both entries go through one Push call so no other
// emission can land between them.
func (e *Emitter) push(env Envelope) {
	if env.Ecommerce != nil {
		e.sink.Push(Reset(), env)
	} else {
		e.sink.Push(env)
	}
	eventsEmitted.WithLabelValues(env.Event).Inc()
}

// reject reports a failed precondition: the operation needed a product
// reference it did not get. Nothing is queued.
func (e *Emitter) reject(event string) {
	eventsSkipped.WithLabelValues(event, "missing_product").Inc()
	e.log.Error("analytics event dropped: missing product reference",
		zap.String("event", event),
	)
}

// skip records an empty-cart no-op. Not an error: an empty cart is a
// valid steady state.
func (e *Emitter) skip(event string) {
	eventsSkipped.WithLabelValues(event, "empty_cart").Inc()
	e.log.Debug("analytics event skipped: cart is empty",
		zap.String("event", event),
	)
}

func (e *Emitter) transactionID() string {
	return transactionPrefix + strconv.FormatInt(e.now().UnixMilli(), 10)
}
