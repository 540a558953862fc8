package bootstrap

import (
	orderv1 "github.com/milanbojovic/OrderOook/internal/domain/order/v1"
	tradev1 "github.com/milanbojovic/OrderOook/internal/domain/trade/v1"
)

// Currency pairs used by the seed dataset.
const (
	BTCEUR = "BTCEUR"
	BTCUSD = "BTCUSD"
	BTCZAR = "BTCZAR"
	ETHEUR = "ETHEUR"
	ETHUSD = "ETHUSD"
	ETHZAR = "ETHZAR"
)

// Seed populates the store and ledger with the example dataset so the
// service has a presentable book before the first order arrives.
func Seed(store orderv1.Store, ledger tradev1.Ledger) {
	store.Load(seedAsks(), seedBids())

	for _, trade := range seedTrades() {
		trade.ID = ledger.NextID()
		ledger.Append(trade)
	}
}

func seedAsks() []*orderv1.Order {
	return []*orderv1.Order{
		orderv1.NewOrder(orderv1.SideSell, 0.90038334, 1186331, BTCEUR),
		orderv1.NewOrder(orderv1.SideSell, 0.02350766, 1202530, BTCEUR),
		orderv1.NewOrder(orderv1.SideSell, 0.00100004, 1203000, BTCZAR),
		orderv1.NewOrder(orderv1.SideSell, 0.02352094, 1205649, BTCZAR),
		orderv1.NewOrder(orderv1.SideSell, 0.552, 1205653, BTCZAR),
		orderv1.NewOrder(orderv1.SideSell, 0.0008979, 1205748, ETHUSD),
		orderv1.NewOrder(orderv1.SideSell, 0.001, 1207000, BTCZAR),
	}
}

func seedBids() []*orderv1.Order {
	return []*orderv1.Order{
		orderv1.NewOrder(orderv1.SideBuy, 0.016, 1204994, BTCZAR),
		orderv1.NewOrder(orderv1.SideBuy, 0.002036, 1204993, BTCZAR),
		orderv1.NewOrder(orderv1.SideBuy, 0.18443981, 1204991, ETHUSD),
		orderv1.NewOrder(orderv1.SideBuy, 0.00008142, 1204811, BTCEUR),
		orderv1.NewOrder(orderv1.SideBuy, 0.02354031, 1204657, BTCEUR),
		orderv1.NewOrder(orderv1.SideBuy, 0.11498758, 1204532, BTCZAR),
		orderv1.NewOrder(orderv1.SideBuy, 0.05, 1164656, BTCZAR),
	}
}

func seedTrades() []tradev1.Trade {
	return []tradev1.Trade{
		{Price: 1199677, Quantity: 0.00213752, CurrencyPair: BTCEUR, TradedAt: "2024-07-11T08:50:12.453Z", TakerSide: orderv1.SideSell, QuoteVolume: 2564.33358104},
		{Price: 1200677, Quantity: 0.03225700, CurrencyPair: BTCUSD, TradedAt: "2024-08-10T09:22:15.363Z", TakerSide: orderv1.SideSell, QuoteVolume: 38730.237989},
		{Price: 1230650, Quantity: 0.00456120, CurrencyPair: ETHZAR, TradedAt: "2024-09-15T18:32:16.363Z", TakerSide: orderv1.SideSell, QuoteVolume: 5613.24078},
		{Price: 1358400, Quantity: 0.75689132, CurrencyPair: ETHEUR, TradedAt: "2024-10-17T14:22:18.433Z", TakerSide: orderv1.SideSell, QuoteVolume: 1028161.169088},
		{Price: 1005522, Quantity: 2.56879135, CurrencyPair: ETHUSD, TradedAt: "2024-11-19T03:52:17.413Z", TakerSide: orderv1.SideSell, QuoteVolume: 2582976.2158347},
		{Price: 1015459, Quantity: 0.56879135, CurrencyPair: BTCZAR, TradedAt: "2022-10-11T13:44:24.571Z", TakerSide: orderv1.SideSell, QuoteVolume: 570680.8748647},
		{Price: 5168975, Quantity: 0.56879135, CurrencyPair: BTCZAR, TradedAt: "2022-10-11T13:44:24.571Z", TakerSide: orderv1.SideSell, QuoteVolume: 570680.8748647},
		{Price: 2159877, Quantity: 0.56879135, CurrencyPair: BTCZAR, TradedAt: "2022-10-11T13:44:24.571Z", TakerSide: orderv1.SideSell, QuoteVolume: 570680.8748647},
		{Price: 1111115, Quantity: 0.56879135, CurrencyPair: BTCZAR, TradedAt: "2022-10-11T13:44:24.571Z", TakerSide: orderv1.SideSell, QuoteVolume: 570680.8748647},
		{Price: 2222222, Quantity: 0.56879135, CurrencyPair: BTCZAR, TradedAt: "2022-10-11T13:44:24.571Z", TakerSide: orderv1.SideSell, QuoteVolume: 570680.8748647},
		{Price: 4567895, Quantity: 0.56879135, CurrencyPair: BTCZAR, TradedAt: "2022-10-11T13:44:24.571Z", TakerSide: orderv1.SideBuy, QuoteVolume: 570680.8748647},
	}
}
