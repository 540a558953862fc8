package orderv1

// Orders is a slice of Order pointers, representing one side of the book.
type Orders []*Order

// ByBestAsk sorts Orders by the best ask price (lowest price first).
type ByBestAsk struct {
	Orders
}

func (a ByBestAsk) Len() int {
	return len(a.Orders)
}

func (a ByBestAsk) Less(i, j int) bool {
	return a.Orders[i].Price < a.Orders[j].Price
}

func (a ByBestAsk) Swap(i, j int) {
	a.Orders[i], a.Orders[j] = a.Orders[j], a.Orders[i]
}

// ByBestBid sorts Orders by the best bid price (highest price first).
type ByBestBid struct {
	Orders
}

func (a ByBestBid) Len() int {
	return len(a.Orders)
}

func (a ByBestBid) Less(i, j int) bool {
	return a.Orders[i].Price > a.Orders[j].Price
}

func (a ByBestBid) Swap(i, j int) {
	a.Orders[i], a.Orders[j] = a.Orders[j], a.Orders[i]
}
