package tradepublisher

import (
	"context"
	"encoding/json"

	"github.com/milanbojovic/OrderOook/pkg/config"
	"github.com/milanbojovic/OrderOook/pkg/errors"
	"github.com/milanbojovic/OrderOook/pkg/logger"
	"github.com/segmentio/kafka-go"

	tradev1 "github.com/milanbojovic/OrderOook/internal/domain/trade/v1"
)

// Publisher writes recorded trades to a Kafka topic for downstream
// consumers (market data, reporting).
type Publisher struct {
	kafkaWriter *kafka.Writer
	logger      *logger.Logger
}

// NewPublisher creates a Kafka publisher for trade events.
func NewPublisher(cfg config.KafkaConfig, log *logger.Logger) *Publisher {
	kafkaWriter := kafka.NewWriter(kafka.WriterConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})

	return &Publisher{
		kafkaWriter: kafkaWriter,
		logger:      log,
	}
}

// PublishTrade publishes a single trade event, keyed by currency pair so
// per-instrument ordering is preserved across partitions.
func (p *Publisher) PublishTrade(ctx context.Context, trade tradev1.Trade) error {
	value, err := json.Marshal(trade)
	if err != nil {
		return errors.NewTracer("marshal trade event").Wrap(err)
	}

	msg := kafka.Message{
		Key:   []byte(trade.CurrencyPair),
		Value: value,
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, err,
			logger.Field{Key: "tradeID", Value: trade.ID},
			logger.Field{Key: "currencyPair", Value: trade.CurrencyPair},
		)
		return errors.NewTracer("failed to publish trade event").
			WithCode(errors.TradePublishError).Wrap(err)
	}
	return nil
}

// Close flushes and closes the underlying Kafka writer.
func (p *Publisher) Close() error {
	return p.kafkaWriter.Close()
}
