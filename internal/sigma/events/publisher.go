// Package events publishes sigma lifecycle notifications to Kafka so
// downstream consumers (exposure pipelines, dashboards) can react to fresh
// computations without polling the store.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"sigmahub/pkg/domain"
	"sigmahub/pkg/requestcontext"
)

// Computed is the wire payload of a sigma.computed event.
type Computed struct {
	AiiType    string    `json:"aii_type"`
	Region     string    `json:"region"`
	Scenario   string    `json:"scenario"`
	Value      string    `json:"value"`
	ComputedAt time.Time `json:"computed_at"`
}

// KafkaPublisher emits sigma.computed events to a Kafka topic.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewKafkaPublisher connects to the brokers and ensures the topic exists.
func NewKafkaPublisher(ctx context.Context, brokers []string, topic string, logger *slog.Logger) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	admin := kadm.NewClient(client)
	resp, err := admin.CreateTopic(ctx, 1, 1, nil, topic)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("ensure topic %s: %w", topic, err)
	}
	if resp.Err != nil && !errors.Is(resp.Err, kerr.TopicAlreadyExists) {
		client.Close()
		return nil, fmt.Errorf("ensure topic %s: %w", topic, resp.Err)
	}

	return &KafkaPublisher{client: client, topic: topic, logger: logger}, nil
}

// SigmaComputed publishes a sigma.computed event keyed by the sigma's key
// triple, so per-triple ordering is preserved within a partition.
func (p *KafkaPublisher) SigmaComputed(ctx context.Context, sigma domain.Sigma) error {
	payload, err := json.Marshal(Computed{
		AiiType:    sigma.AiiType.String(),
		Region:     sigma.Region.String(),
		Scenario:   sigma.Scenario.String(),
		Value:      sigma.Value.String(),
		ComputedAt: requestcontext.Now(ctx).UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal sigma event: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(fmt.Sprintf("%s:%s:%s", sigma.AiiType, sigma.Region, sigma.Scenario)),
		Value: payload,
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce sigma event: %w", err)
	}
	return nil
}

// Close flushes pending records and releases the client.
func (p *KafkaPublisher) Close() {
	p.client.Close()
}

// NoopPublisher discards events. Used when no brokers are configured.
type NoopPublisher struct{}

// SigmaComputed does nothing.
func (NoopPublisher) SigmaComputed(context.Context, domain.Sigma) error {
	return nil
}
