package orderv1

import (
	"github.com/oklog/ulid/v2"
)

// Side represents the direction of an order.
type Side string

const (
	// SideBuy represents a buy (bid) order.
	SideBuy Side = "BUY"
	// SideSell represents a sell (ask) order.
	SideSell Side = "SELL"
)

// IsValid checks that the side is one of the two known values.
func (s Side) IsValid() bool {
	return s == SideBuy || s == SideSell
}

// Opposite returns the other side of the book.
func (s Side) Opposite() Side {
	if s == SideBuy {
		return SideSell
	}
	return SideBuy
}

// Order represents a single resting or incoming order.
// Prices are integer multiples of the quote asset's smallest increment,
// quantities are base asset amounts.
type Order struct {
	ID           string  `json:"id"`
	Side         Side    `json:"side"`
	Quantity     float64 `json:"quantity"`
	Price        int     `json:"price"`
	CurrencyPair string  `json:"currencyPair"`
}

// NewOrder creates a new order with a generated stable identifier.
func NewOrder(side Side, quantity float64, price int, currencyPair string) *Order {
	return &Order{
		ID:           NewOrderID(),
		Side:         side,
		Quantity:     quantity,
		Price:        price,
		CurrencyPair: currencyPair,
	}
}

// NewOrderID generates a lexicographically sortable order identifier.
func NewOrderID() string {
	return ulid.Make().String()
}

// Crosses reports whether the incoming order can legally execute against
// the given resting order: same pair, and buy price >= sell price.
func (o *Order) Crosses(resting *Order) bool {
	if o.CurrencyPair != resting.CurrencyPair {
		return false
	}
	if o.Side == SideBuy {
		return resting.Price <= o.Price
	}
	return resting.Price >= o.Price
}

// OrderBook is a two-sided view of resting liquidity. Asks are sorted
// ascending by price, bids descending; LastChange is an ISO-8601 timestamp
// of the most recent mutation.
type OrderBook struct {
	Asks       []*Order `json:"asks"`
	Bids       []*Order `json:"bids"`
	LastChange string   `json:"lastChange"`
}
