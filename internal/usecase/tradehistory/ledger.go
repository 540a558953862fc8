package tradehistory

import (
	"sync"

	orderv1 "github.com/milanbojovic/OrderOook/internal/domain/order/v1"
	tradev1 "github.com/milanbojovic/OrderOook/internal/domain/trade/v1"
)

// Ledger is the append-only trade history across all instruments.
type Ledger struct {
	mu     sync.RWMutex
	trades []tradev1.Trade
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// NextID returns max(existing ids) + 1, or 0 for an empty ledger.
// Callers that may run concurrently must use Record instead; two NextID
// calls without an Append in between claim the same id.
func (l *Ledger) NextID() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.nextIDLocked()
}

func (l *Ledger) nextIDLocked() int {
	next := 0
	for _, t := range l.trades {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	return next
}

// Append adds a trade to the end of the ledger. Trades are never removed
// or reordered.
func (l *Ledger) Append(trade tradev1.Trade) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.trades = append(l.trades, trade)
}

// Record allocates the next id and appends the trade for the given
// execution as one atomic unit.
func (l *Ledger) Record(execution orderv1.Execution) tradev1.Trade {
	l.mu.Lock()
	defer l.mu.Unlock()

	trade := tradev1.NewTrade(l.nextIDLocked(), execution)
	l.trades = append(l.trades, trade)
	return trade
}

// FilterBy returns trades for the given pair in insertion order, skipping
// the first skip matches and taking up to limit of the remainder. A skip
// beyond the available count yields an empty result, not an error.
func (l *Ledger) FilterBy(currencyPair string, skip, limit int) tradev1.TradeHistory {
	l.mu.RLock()
	defer l.mu.RUnlock()

	trades := make([]tradev1.Trade, 0)
	matched := 0
	for _, t := range l.trades {
		if t.CurrencyPair != currencyPair {
			continue
		}
		matched++
		if matched <= skip {
			continue
		}
		if len(trades) >= limit {
			break
		}
		trades = append(trades, t)
	}

	return tradev1.TradeHistory{Trades: trades}
}
