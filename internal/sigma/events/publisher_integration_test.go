//go:build integration

package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"sigmahub/internal/sigma/events"
	"sigmahub/pkg/domain"
	"sigmahub/pkg/testutil/containers"
)

type KafkaPublisherSuite struct {
	suite.Suite
	broker    string
	publisher *events.KafkaPublisher
}

func TestKafkaPublisherSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaPublisherSuite))
}

func (s *KafkaPublisherSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.broker = mgr.GetRedpanda(s.T()).Broker

	var err error
	s.publisher, err = events.NewKafkaPublisher(context.Background(), []string{s.broker}, "sigma.computed", nil)
	s.Require().NoError(err)
}

func (s *KafkaPublisherSuite) TearDownSuite() {
	if s.publisher != nil {
		s.publisher.Close()
	}
}

func (s *KafkaPublisherSuite) TestSigmaComputedRoundTrip() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sigma, err := domain.NewSigma(domain.AiiTypePM25, "DE", "SSP2", decimal.RequireFromString("0.4938"))
	s.Require().NoError(err)
	s.Require().NoError(s.publisher.SigmaComputed(ctx, sigma))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.broker),
		kgo.ConsumeTopics("sigma.computed"),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	s.Require().NoError(fetches.Err())

	records := fetches.Records()
	s.Require().NotEmpty(records)

	var event events.Computed
	s.Require().NoError(json.Unmarshal(records[0].Value, &event))
	s.Equal("PM25", event.AiiType)
	s.Equal("DE", event.Region)
	s.Equal("SSP2", event.Scenario)
	s.Equal("0.4938", event.Value)
	s.Equal("PM25:DE:SSP2", string(records[0].Key))
}
