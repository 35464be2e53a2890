package metric_indexer

import (
	"VCS_API_Monitor/internal/monitor-service/model"
	"VCS_API_Monitor/pkg/infra"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type MetricConsumer interface {
	Start()
	Stop()
}

type metricConsumer struct {
	kafkaReader infra.KafkaReader
	indexer     MetricIndexer
	logger      *zap.Logger
}

func (m *metricConsumer) Start() {
	go func() {
		for {
			msg, err := m.kafkaReader.FetchMessage(context.Background())
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				err = fmt.Errorf("metricConsumer.Start: %w", err)
				m.logger.Log(zap.ErrorLevel, "failed to fetch message", zap.Error(err))
				continue
			}
			m.handle(msg)
		}
	}()
}

// handle commits poison messages so they do not block the partition. Indexing failures are left uncommitted.
func (m *metricConsumer) handle(msg kafka.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if msg.Value == nil {
		m.commit(ctx, msg)
		return
	}
	var event model.MetricEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		err = fmt.Errorf("metricConsumer.handle: %w", err)
		m.logger.Log(zap.ErrorLevel, "failed to unmarshal message", zap.Error(err))
		m.commit(ctx, msg)
		return
	}
	if err := m.indexer.Index(ctx, event); err != nil {
		err = fmt.Errorf("metricConsumer.handle: %w", err)
		m.logger.Log(zap.ErrorLevel, "failed to index metric", zap.Error(err), zap.String("monitor_id", event.MonitorID))
		return
	}
	m.commit(ctx, msg)
}

func (m *metricConsumer) commit(ctx context.Context, msg kafka.Message) {
	if err := m.kafkaReader.CommitMessages(ctx, msg); err != nil {
		err = fmt.Errorf("metricConsumer.commit: %w", err)
		m.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
	}
}

// Stop closes the reader, which makes the fetch loop return.
func (m *metricConsumer) Stop() {
	m.kafkaReader.Close()
}

func NewMetricConsumer(reader infra.KafkaReader, indexer MetricIndexer, logger *zap.Logger) MetricConsumer {
	return &metricConsumer{
		kafkaReader: reader,
		indexer:     indexer,
		logger:      logger,
	}
}
