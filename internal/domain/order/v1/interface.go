package orderv1

// Outcome classifies what the book store did with an incoming order.
type Outcome string

const (
	// OutcomeMatched means the order executed against resting liquidity.
	OutcomeMatched Outcome = "matched"
	// OutcomeAggregated means the order merged into a resting line at the same price.
	OutcomeAggregated Outcome = "aggregated"
	// OutcomeRested means the order was inserted as new resting liquidity.
	OutcomeRested Outcome = "rested"
)

// Execution is the economic snapshot of a single fill. It copies the
// numbers out of the orders involved so later mutations of the book never
// change what was executed.
type Execution struct {
	Price        int     `json:"price"`
	Quantity     float64 `json:"quantity"`
	CurrencyPair string  `json:"currencyPair"`
	TakerSide    Side    `json:"takerSide"`
}

// SubmitResult is the tagged outcome of a submission. Executions is
// non-empty only when Outcome is OutcomeMatched; Remainder is non-nil only
// when a partial-taker policy rested the unexecuted tail of the order.
// Remainder is an economic snapshot of that tail, not a reference into the
// book: when the tail aggregates into an existing resting line, the line
// keeps its own identity and the Remainder's ID is never resting.
type SubmitResult struct {
	Outcome    Outcome
	Executions []Execution
	Remainder  *Order
}

// Matched reports whether the submission produced at least one execution.
func (r SubmitResult) Matched() bool {
	return r.Outcome == OutcomeMatched
}

// Store holds the authoritative book state and applies one order at a time.
type Store interface {
	Submit(order *Order) SubmitResult
	FilterBy(currencyPair string) OrderBook
	Load(asks, bids []*Order)
}
