package engine

import (
	"context"
	"sync"

	"github.com/milanbojovic/OrderOook/pkg/logger"

	orderv1 "github.com/milanbojovic/OrderOook/internal/domain/order/v1"
	tradev1 "github.com/milanbojovic/OrderOook/internal/domain/trade/v1"
)

// Watcher is notified after every accepted submission mutates the book.
type Watcher interface {
	BookChanged(currencyPair string, book orderv1.OrderBook)
}

// Engine ties the book store, the trade ledger and the trade publisher
// together. A submission runs to completion before the next is considered:
// match decision, book mutation and trade recording form one synchronous
// state transition; only publishing to Kafka is asynchronous.
type Engine struct {
	store     orderv1.Store
	ledger    tradev1.Ledger
	publisher tradev1.Publisher // nil when publishing is disabled
	watcher   Watcher           // nil when nobody listens
	logger    *logger.Logger

	publishCh chan tradev1.Trade

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewEngine creates a new engine with default options.
func NewEngine(
	store orderv1.Store,
	ledger tradev1.Ledger,
	publisher tradev1.Publisher,
	watcher Watcher,
	log *logger.Logger,
) *Engine {
	return NewEngineWithOptions(store, ledger, publisher, watcher, log, DefaultEngineOptions())
}

// NewEngineWithOptions creates a new engine with custom options.
func NewEngineWithOptions(
	store orderv1.Store,
	ledger tradev1.Ledger,
	publisher tradev1.Publisher,
	watcher Watcher,
	log *logger.Logger,
	options *Options,
) *Engine {
	return &Engine{
		store:     store,
		ledger:    ledger,
		publisher: publisher,
		watcher:   watcher,
		logger:    log,
		publishCh: make(chan tradev1.Trade, options.PublishBuffer),
	}
}

// SubmitLimitOrder runs one order through the book and records a trade for
// every execution. The returned trades are already appended to the ledger.
func (e *Engine) SubmitLimitOrder(ctx context.Context, side orderv1.Side, quantity float64, price int, currencyPair string) (orderv1.SubmitResult, []tradev1.Trade) {
	order := orderv1.NewOrder(side, quantity, price, currencyPair)
	result := e.store.Submit(order)

	var trades []tradev1.Trade
	for _, execution := range result.Executions {
		trade := e.ledger.Record(execution)
		trades = append(trades, trade)
		e.enqueuePublish(ctx, trade)
	}

	e.logger.InfoContext(ctx, "order processed",
		logger.Field{Key: "orderID", Value: order.ID},
		logger.Field{Key: "currencyPair", Value: currencyPair},
		logger.Field{Key: "outcome", Value: string(result.Outcome)},
		logger.Field{Key: "executions", Value: len(result.Executions)},
	)

	if e.watcher != nil {
		e.watcher.BookChanged(currencyPair, e.store.FilterBy(currencyPair))
	}

	return result, trades
}

// OrderBook returns the book restricted to the given pair.
func (e *Engine) OrderBook(currencyPair string) orderv1.OrderBook {
	return e.store.FilterBy(currencyPair)
}

// TradeHistory returns the paginated trade history for the given pair.
func (e *Engine) TradeHistory(currencyPair string, skip, limit int) tradev1.TradeHistory {
	return e.ledger.FilterBy(currencyPair, skip, limit)
}

// Start launches the trade publishing routine.
func (e *Engine) Start(ctx context.Context) error {
	e.ctx, e.cancel = context.WithCancel(ctx)

	if e.publisher != nil {
		e.wg.Add(1)
		go e.runTradePublisher()
	}

	e.logger.Info("engine started",
		logger.Field{Key: "publishing", Value: e.publisher != nil},
	)
	return nil
}

// Stop gracefully shuts down the engine, draining queued trade events.
func (e *Engine) Stop(ctx context.Context) error {
	if e.cancel != nil {
		e.cancel()
	}

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		e.logger.Info("engine stopped gracefully")
		return nil
	case <-ctx.Done():
		e.logger.Warn("engine stop timeout exceeded")
		return ctx.Err()
	}
}

func (e *Engine) enqueuePublish(ctx context.Context, trade tradev1.Trade) {
	if e.publisher == nil {
		return
	}

	select {
	case e.publishCh <- trade:
	default:
		e.logger.WarnContext(ctx, "publish buffer full, dropping trade event",
			logger.Field{Key: "tradeID", Value: trade.ID},
		)
	}
}

func (e *Engine) runTradePublisher() {
	defer e.wg.Done()

	for {
		select {
		case trade := <-e.publishCh:
			if err := e.publisher.PublishTrade(e.ctx, trade); err != nil {
				e.logger.Error(err,
					logger.Field{Key: "action", Value: "publish_trade"},
					logger.Field{Key: "tradeID", Value: trade.ID},
				)
			}
		case <-e.ctx.Done():
			// drain what is already queued before exiting
			for {
				select {
				case trade := <-e.publishCh:
					if err := e.publisher.PublishTrade(context.Background(), trade); err != nil {
						e.logger.Error(err,
							logger.Field{Key: "action", Value: "publish_trade_drain"},
							logger.Field{Key: "tradeID", Value: trade.ID},
						)
					}
				default:
					return
				}
			}
		}
	}
}
