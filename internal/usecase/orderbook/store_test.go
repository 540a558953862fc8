package orderbook

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderv1 "github.com/milanbojovic/OrderOook/internal/domain/order/v1"
)

func ask(quantity float64, price int, pair string) *orderv1.Order {
	return orderv1.NewOrder(orderv1.SideSell, quantity, price, pair)
}

func bid(quantity float64, price int, pair string) *orderv1.Order {
	return orderv1.NewOrder(orderv1.SideBuy, quantity, price, pair)
}

func TestStore_FullMatchRemovesRestingOrder(t *testing.T) {
	s := NewStore()
	s.Load([]*orderv1.Order{ask(1.0, 100, "BTCZAR")}, nil)

	result := s.Submit(bid(1.0, 100, "BTCZAR"))

	require.Equal(t, orderv1.OutcomeMatched, result.Outcome)
	require.Len(t, result.Executions, 1)
	assert.Equal(t, 100, result.Executions[0].Price)
	assert.Equal(t, 1.0, result.Executions[0].Quantity)
	assert.Equal(t, orderv1.SideBuy, result.Executions[0].TakerSide)

	book := s.FilterBy("BTCZAR")
	assert.Empty(t, book.Asks)
	assert.Empty(t, book.Bids)
}

func TestStore_PartialFillReducesRestingOrder(t *testing.T) {
	s := NewStore()
	s.Load([]*orderv1.Order{ask(1.0, 100, "BTCZAR")}, nil)

	result := s.Submit(bid(0.4, 100, "BTCZAR"))

	require.Equal(t, orderv1.OutcomeMatched, result.Outcome)
	require.Len(t, result.Executions, 1)
	assert.Equal(t, 0.4, result.Executions[0].Quantity)

	book := s.FilterBy("BTCZAR")
	require.Len(t, book.Asks, 1)
	assert.Equal(t, 0.6, book.Asks[0].Quantity)
}

func TestStore_QuantityConservation(t *testing.T) {
	s := NewStore()
	s.Load([]*orderv1.Order{ask(1.0, 100, "BTCZAR")}, nil)

	result := s.Submit(bid(0.4, 100, "BTCZAR"))

	retained := s.FilterBy("BTCZAR").Asks[0].Quantity
	removed := result.Executions[0].Quantity
	assert.Equal(t, 1.0, retained+removed)
}

func TestStore_SamePriceSubmissionsAggregate(t *testing.T) {
	s := NewStore()

	first := s.Submit(ask(0.5, 100, "BTCZAR"))
	assert.Equal(t, orderv1.OutcomeRested, first.Outcome)

	second := s.Submit(ask(0.5, 100, "BTCZAR"))
	assert.Equal(t, orderv1.OutcomeAggregated, second.Outcome)

	book := s.FilterBy("BTCZAR")
	require.Len(t, book.Asks, 1)
	assert.Equal(t, 1.0, book.Asks[0].Quantity)
}

func TestStore_OversizedIncomingOrderRests(t *testing.T) {
	// The reference rule: a resting order can only match when it covers
	// the incoming quantity in full, so the oversized taker rests.
	s := NewStore()
	s.Load([]*orderv1.Order{ask(0.5, 100, "BTCZAR")}, nil)

	result := s.Submit(bid(1.0, 100, "BTCZAR"))

	assert.Equal(t, orderv1.OutcomeRested, result.Outcome)
	book := s.FilterBy("BTCZAR")
	require.Len(t, book.Asks, 1)
	require.Len(t, book.Bids, 1)
	assert.Equal(t, 1.0, book.Bids[0].Quantity)
}

func TestStore_MatchPicksBestPricedRestingOrder(t *testing.T) {
	s := NewStore()
	s.Load([]*orderv1.Order{
		ask(1.0, 102, "BTCZAR"),
		ask(1.0, 100, "BTCZAR"),
		ask(1.0, 101, "BTCZAR"),
	}, nil)

	result := s.Submit(bid(1.0, 105, "BTCZAR"))

	require.Equal(t, orderv1.OutcomeMatched, result.Outcome)
	// the best (lowest) ask is consumed
	book := s.FilterBy("BTCZAR")
	require.Len(t, book.Asks, 2)
	assert.Equal(t, 101, book.Asks[0].Price)
	assert.Equal(t, 102, book.Asks[1].Price)
}

func TestStore_NonCrossingPricesDoNotMatch(t *testing.T) {
	s := NewStore()
	s.Load([]*orderv1.Order{ask(1.0, 110, "BTCZAR")}, nil)

	result := s.Submit(bid(1.0, 100, "BTCZAR"))

	assert.Equal(t, orderv1.OutcomeRested, result.Outcome)
	book := s.FilterBy("BTCZAR")
	assert.Len(t, book.Asks, 1)
	assert.Len(t, book.Bids, 1)
}

func TestStore_InstrumentsAreIsolated(t *testing.T) {
	s := NewStore()
	s.Load([]*orderv1.Order{ask(1.0, 100, "BTCZAR")}, []*orderv1.Order{bid(1.0, 100, "ETHUSD")})

	// neither matches nor aggregates across pairs, even at identical price
	result := s.Submit(bid(1.0, 100, "SOLZAR"))

	assert.Equal(t, orderv1.OutcomeRested, result.Outcome)
	assert.Len(t, s.FilterBy("BTCZAR").Asks, 1)
	assert.Len(t, s.FilterBy("ETHUSD").Bids, 1)
	assert.Len(t, s.FilterBy("SOLZAR").Bids, 1)
}

func TestStore_SortInvariantAfterInserts(t *testing.T) {
	s := NewStore()

	s.Submit(ask(1.0, 105, "BTCZAR"))
	s.Submit(ask(1.0, 101, "BTCZAR"))
	s.Submit(ask(1.0, 103, "BTCZAR"))
	s.Submit(bid(1.0, 90, "BTCZAR"))
	s.Submit(bid(1.0, 95, "BTCZAR"))
	s.Submit(bid(1.0, 92, "BTCZAR"))

	book := s.FilterBy("BTCZAR")
	assert.True(t, sort.SliceIsSorted(book.Asks, func(i, j int) bool {
		return book.Asks[i].Price < book.Asks[j].Price
	}))
	assert.True(t, sort.SliceIsSorted(book.Bids, func(i, j int) bool {
		return book.Bids[i].Price > book.Bids[j].Price
	}))
}

func TestStore_FilterByDoesNotMutate(t *testing.T) {
	s := NewStore()
	s.Load([]*orderv1.Order{ask(1.0, 100, "BTCZAR"), ask(2.0, 101, "ETHUSD")}, nil)

	first := s.FilterBy("BTCZAR")
	require.Len(t, first.Asks, 1)

	// mutating the returned copy must not leak into the store
	first.Asks[0].Quantity = 99.0

	second := s.FilterBy("BTCZAR")
	require.Len(t, second.Asks, 1)
	assert.Equal(t, 1.0, second.Asks[0].Quantity)
	assert.Equal(t, first.LastChange, second.LastChange)
}

func TestStore_ResidueRemainsWithoutEpsilon(t *testing.T) {
	s := NewStore()
	// 0.1+0.2 leaves a resting quantity slightly above 0.3; the addition
	// must happen at runtime — as untyped constants it folds exactly to 0.3
	q1, q2 := 0.1, 0.2
	s.Load([]*orderv1.Order{ask(q1+q2, 100, "BTCZAR")}, nil)

	result := s.Submit(bid(0.3, 100, "BTCZAR"))

	require.Equal(t, orderv1.OutcomeMatched, result.Outcome)
	book := s.FilterBy("BTCZAR")
	require.Len(t, book.Asks, 1)
	assert.Greater(t, book.Asks[0].Quantity, 0.0)
	assert.Less(t, book.Asks[0].Quantity, 1e-15)
}

func TestStore_EpsilonRemovesResidue(t *testing.T) {
	s := NewStore(WithQuantityEpsilon(1e-9))
	s.Load([]*orderv1.Order{ask(0.1+0.2, 100, "BTCZAR")}, nil)

	result := s.Submit(bid(0.3, 100, "BTCZAR"))

	require.Equal(t, orderv1.OutcomeMatched, result.Outcome)
	assert.Empty(t, s.FilterBy("BTCZAR").Asks)
}

func TestStore_PartialTakerSweepsLevels(t *testing.T) {
	s := NewStore(WithMatchPolicy(MatchPolicyPartialTaker))
	s.Load([]*orderv1.Order{
		ask(0.5, 100, "BTCZAR"),
		ask(0.7, 101, "BTCZAR"),
	}, nil)

	result := s.Submit(bid(1.0, 101, "BTCZAR"))

	require.Equal(t, orderv1.OutcomeMatched, result.Outcome)
	require.Len(t, result.Executions, 2)
	// each slice executes at the resting order's price
	assert.Equal(t, 100, result.Executions[0].Price)
	assert.Equal(t, 0.5, result.Executions[0].Quantity)
	assert.Equal(t, 101, result.Executions[1].Price)
	assert.Equal(t, 0.5, result.Executions[1].Quantity)
	assert.Nil(t, result.Remainder)

	book := s.FilterBy("BTCZAR")
	require.Len(t, book.Asks, 1)
	assert.InDelta(t, 0.2, book.Asks[0].Quantity, 1e-12)
}

func TestStore_PartialTakerRestsRemainder(t *testing.T) {
	s := NewStore(WithMatchPolicy(MatchPolicyPartialTaker))
	s.Load([]*orderv1.Order{ask(0.5, 100, "BTCZAR")}, nil)

	result := s.Submit(bid(2.0, 100, "BTCZAR"))

	require.Equal(t, orderv1.OutcomeMatched, result.Outcome)
	require.Len(t, result.Executions, 1)
	assert.Equal(t, 0.5, result.Executions[0].Quantity)
	require.NotNil(t, result.Remainder)
	assert.Equal(t, 1.5, result.Remainder.Quantity)

	book := s.FilterBy("BTCZAR")
	assert.Empty(t, book.Asks)
	require.Len(t, book.Bids, 1)
	assert.Equal(t, 1.5, book.Bids[0].Quantity)
}

func TestStore_PartialTakerRemainderAggregates(t *testing.T) {
	s := NewStore(WithMatchPolicy(MatchPolicyPartialTaker))
	restingBid := bid(1.0, 100, "BTCZAR")
	s.Load([]*orderv1.Order{ask(0.5, 100, "BTCZAR")}, []*orderv1.Order{restingBid})

	result := s.Submit(bid(2.0, 100, "BTCZAR"))

	require.Equal(t, orderv1.OutcomeMatched, result.Outcome)
	require.NotNil(t, result.Remainder)
	assert.Equal(t, 1.5, result.Remainder.Quantity)

	// the tail merged into the resting line; the remainder is an economic
	// snapshot, not a book reference
	book := s.FilterBy("BTCZAR")
	require.Len(t, book.Bids, 1)
	assert.Equal(t, restingBid.ID, book.Bids[0].ID)
	assert.NotEqual(t, result.Remainder.ID, book.Bids[0].ID)
	assert.Equal(t, 2.5, book.Bids[0].Quantity)
}

func TestParseMatchPolicy(t *testing.T) {
	policy, err := ParseMatchPolicy("fullfill")
	require.NoError(t, err)
	assert.Equal(t, MatchPolicyFullFill, policy)

	policy, err = ParseMatchPolicy("partial-taker")
	require.NoError(t, err)
	assert.Equal(t, MatchPolicyPartialTaker, policy)

	_, err = ParseMatchPolicy("bogus")
	assert.Error(t, err)
}

func BenchmarkStore_Submit(b *testing.B) {
	s := NewStore()
	for i := 0; i < 1000; i++ {
		s.Submit(ask(1.0, 100+i, "BTCZAR"))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Submit(bid(1.0, 100+i%1000, "BTCZAR"))
	}
}
