package orderbook

import (
	"sort"
	"sync"
	"time"

	orderv1 "github.com/milanbojovic/OrderOook/internal/domain/order/v1"
)

// Store owns the resting orders for all instruments. A submission is one
// critical section: the match decision and the resulting mutation happen
// under the same lock, so two concurrent submissions can never both match
// the same resting order.
type Store struct {
	mu         sync.RWMutex
	asks       orderv1.Orders
	bids       orderv1.Orders
	byID       map[string]*orderv1.Order
	lastChange string

	policy  MatchPolicy
	epsilon float64
}

// NewStore creates an empty store with the given options.
func NewStore(opts ...Option) *Store {
	s := &Store{
		byID:   make(map[string]*orderv1.Order),
		policy: MatchPolicyFullFill,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit applies one incoming order: match against the opposite side,
// aggregate into a same-price resting line, or insert as new liquidity.
func (s *Store) Submit(order *orderv1.Order) orderv1.SubmitResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.policy == MatchPolicyPartialTaker {
		return s.submitPartialTaker(order)
	}
	return s.submitFullFill(order)
}

// submitFullFill implements the reference rule: the first resting order in
// sort order that crosses and carries at least the incoming quantity is
// filled; anything less rests. The incoming order itself is never inserted
// on a match.
func (s *Store) submitFullFill(order *orderv1.Order) orderv1.SubmitResult {
	for _, resting := range s.side(order.Side.Opposite()) {
		if order.Crosses(resting) && resting.Quantity >= order.Quantity {
			s.fill(resting, order.Quantity)
			s.touch()
			return orderv1.SubmitResult{
				Outcome: orderv1.OutcomeMatched,
				Executions: []orderv1.Execution{{
					Price:        order.Price,
					Quantity:     order.Quantity,
					CurrencyPair: order.CurrencyPair,
					TakerSide:    order.Side,
				}},
			}
		}
	}
	return s.rest(order)
}

// submitPartialTaker sweeps crossable resting orders best price first,
// executing each slice at the resting order's price, and rests whatever
// quantity the book could not deliver.
func (s *Store) submitPartialTaker(order *orderv1.Order) orderv1.SubmitResult {
	var executions []orderv1.Execution
	remaining := order.Quantity

	for remaining > 0 {
		resting := s.firstCrossing(order)
		if resting == nil {
			break
		}

		quantity := remaining
		if resting.Quantity < quantity {
			quantity = resting.Quantity
		}
		executions = append(executions, orderv1.Execution{
			Price:        resting.Price,
			Quantity:     quantity,
			CurrencyPair: order.CurrencyPair,
			TakerSide:    order.Side,
		})
		s.fill(resting, quantity)

		remaining -= quantity
		if s.epsilon > 0 && remaining <= s.epsilon {
			remaining = 0
		}
	}

	if len(executions) == 0 {
		return s.rest(order)
	}

	result := orderv1.SubmitResult{
		Outcome:    orderv1.OutcomeMatched,
		Executions: executions,
	}
	if remaining > 0 {
		// Remainder snapshots the rested tail; when rest aggregates it
		// into an existing line, the line keeps its own identity.
		tail := *order
		tail.Quantity = remaining
		s.rest(&tail)
		result.Remainder = &tail
	}
	s.touch()
	return result
}

// rest absorbs an order into its own side without execution: merged into a
// resting line at the identical price when one exists, inserted otherwise.
func (s *Store) rest(order *orderv1.Order) orderv1.SubmitResult {
	for _, resting := range s.side(order.Side) {
		if resting.CurrencyPair == order.CurrencyPair && resting.Price == order.Price {
			resting.Quantity += order.Quantity
			s.touch()
			return orderv1.SubmitResult{Outcome: orderv1.OutcomeAggregated}
		}
	}

	s.insert(order)
	s.touch()
	return orderv1.SubmitResult{Outcome: orderv1.OutcomeRested}
}

// fill reduces a resting order by the executed quantity, removing it when
// the remainder is zero. Price is unchanged, so no re-sort is needed.
func (s *Store) fill(resting *orderv1.Order, quantity float64) {
	remaining := resting.Quantity - quantity
	if remaining == 0 || (s.epsilon > 0 && remaining <= s.epsilon) {
		s.remove(resting)
		return
	}
	resting.Quantity = remaining
}

// firstCrossing returns the best-priced resting order the incoming order
// crosses, regardless of its size.
func (s *Store) firstCrossing(order *orderv1.Order) *orderv1.Order {
	for _, resting := range s.side(order.Side.Opposite()) {
		if order.Crosses(resting) {
			return resting
		}
	}
	return nil
}

func (s *Store) side(side orderv1.Side) orderv1.Orders {
	if side == orderv1.SideBuy {
		return s.bids
	}
	return s.asks
}

func (s *Store) insert(order *orderv1.Order) {
	if order.Side == orderv1.SideBuy {
		s.bids = append(s.bids, order)
		sort.Stable(orderv1.ByBestBid{Orders: s.bids})
	} else {
		s.asks = append(s.asks, order)
		sort.Stable(orderv1.ByBestAsk{Orders: s.asks})
	}
	s.byID[order.ID] = order
}

// remove deletes a resting order by its stable id.
func (s *Store) remove(order *orderv1.Order) {
	delete(s.byID, order.ID)

	if order.Side == orderv1.SideBuy {
		s.bids = removeByID(s.bids, order.ID)
	} else {
		s.asks = removeByID(s.asks, order.ID)
	}
}

func removeByID(orders orderv1.Orders, id string) orderv1.Orders {
	for i, o := range orders {
		if o.ID == id {
			return append(orders[:i], orders[i+1:]...)
		}
	}
	return orders
}

// FilterBy returns a copy of the book restricted to the given pair. The
// source collections are never mutated and relative order is preserved.
func (s *Store) FilterBy(currencyPair string) orderv1.OrderBook {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return orderv1.OrderBook{
		Asks:       filterOrders(s.asks, currencyPair),
		Bids:       filterOrders(s.bids, currencyPair),
		LastChange: s.lastChange,
	}
}

func filterOrders(orders orderv1.Orders, currencyPair string) []*orderv1.Order {
	filtered := make([]*orderv1.Order, 0)
	for _, o := range orders {
		if o.CurrencyPair == currencyPair {
			clone := *o
			filtered = append(filtered, &clone)
		}
	}
	return filtered
}

// Load replaces the book state with the given orders, typically the seed
// dataset at startup. Both sides are re-sorted.
func (s *Store) Load(asks, bids []*orderv1.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.asks = append(orderv1.Orders{}, asks...)
	s.bids = append(orderv1.Orders{}, bids...)
	sort.Stable(orderv1.ByBestAsk{Orders: s.asks})
	sort.Stable(orderv1.ByBestBid{Orders: s.bids})

	s.byID = make(map[string]*orderv1.Order, len(asks)+len(bids))
	for _, o := range s.asks {
		s.byID[o.ID] = o
	}
	for _, o := range s.bids {
		s.byID[o.ID] = o
	}
	s.touch()
}

func (s *Store) touch() {
	s.lastChange = time.Now().UTC().Format(time.RFC3339Nano)
}
