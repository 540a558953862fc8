package tradev1

import (
	"context"

	orderv1 "github.com/milanbojovic/OrderOook/internal/domain/order/v1"
)

// Ledger is the append-only execution history.
//
// NextID and Append are the primitive pair; they are not atomic as a unit,
// so concurrent writers must go through Record, which allocates the id and
// appends under a single lock.
type Ledger interface {
	NextID() int
	Append(trade Trade)
	Record(execution orderv1.Execution) Trade
	FilterBy(currencyPair string, skip, limit int) TradeHistory
}

// Publisher emits recorded trades to downstream consumers.
type Publisher interface {
	PublishTrade(ctx context.Context, trade Trade) error
	Close() error
}
