package tradev1

import (
	"time"

	orderv1 "github.com/milanbojovic/OrderOook/internal/domain/order/v1"
)

// Trade is an immutable execution record. Ids are unique and strictly
// increasing across the ledger; QuoteVolume is price times quantity.
type Trade struct {
	ID           int          `json:"id"`
	Price        int          `json:"price"`
	Quantity     float64      `json:"quantity"`
	CurrencyPair string       `json:"currencyPair"`
	TradedAt     string       `json:"tradedAt"`
	TakerSide    orderv1.Side `json:"takerSide"`
	QuoteVolume  float64      `json:"quoteVolume"`
}

// NewTrade creates a trade record for an execution, stamped with the
// current time.
func NewTrade(id int, execution orderv1.Execution) Trade {
	return Trade{
		ID:           id,
		Price:        execution.Price,
		Quantity:     execution.Quantity,
		CurrencyPair: execution.CurrencyPair,
		TradedAt:     time.Now().UTC().Format(time.RFC3339Nano),
		TakerSide:    execution.TakerSide,
		QuoteVolume:  float64(execution.Price) * execution.Quantity,
	}
}

// TradeHistory is an insertion-ordered slice of trades.
type TradeHistory struct {
	Trades []Trade `json:"trades"`
}
