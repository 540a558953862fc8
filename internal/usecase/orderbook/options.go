package orderbook

import "fmt"

// MatchPolicy selects how an incoming order is matched against the book.
type MatchPolicy string

const (
	// MatchPolicyFullFill only matches a resting order that can satisfy the
	// incoming quantity in full. An incoming order larger than every
	// crossable resting order rests instead of executing.
	MatchPolicyFullFill MatchPolicy = "fullfill"
	// MatchPolicyPartialTaker sweeps crossable resting orders in price
	// order, consuming smaller ones whole, and rests any remainder.
	MatchPolicyPartialTaker MatchPolicy = "partial-taker"
)

// ParseMatchPolicy converts a configuration string into a MatchPolicy.
func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch MatchPolicy(s) {
	case MatchPolicyFullFill:
		return MatchPolicyFullFill, nil
	case MatchPolicyPartialTaker:
		return MatchPolicyPartialTaker, nil
	default:
		return "", fmt.Errorf("unknown match policy %q", s)
	}
}

// Option configures a Store.
type Option func(*Store)

// WithMatchPolicy sets the matching policy. Default is MatchPolicyFullFill.
func WithMatchPolicy(policy MatchPolicy) Option {
	return func(s *Store) {
		s.policy = policy
	}
}

// WithQuantityEpsilon sets the tolerance below which a resting remainder is
// treated as zero and the line removed. Default is 0: comparisons are
// exact, and repeated partial fills can leave a line at a near-zero
// floating-point quantity.
func WithQuantityEpsilon(epsilon float64) Option {
	return func(s *Store) {
		s.epsilon = epsilon
	}
}
