//go:build integration

package audit_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"

	"newsletter/internal/audit"
	"newsletter/internal/platform/config"
	"newsletter/pkg/testutil/containers"
)

const testTopic = "newsletter.audit.test"

type KafkaSinkSuite struct {
	suite.Suite
	brokers []string
	sink    *audit.KafkaSink
}

func TestKafkaSinkSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaSinkSuite))
}

func (s *KafkaSinkSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.brokers = mgr.GetRedpanda(s.T()).Brokers

	admin, err := kgo.NewClient(kgo.SeedBrokers(s.brokers...))
	s.Require().NoError(err)
	defer admin.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_, err = kadm.NewClient(admin).CreateTopic(ctx, 1, 1, nil, testTopic)
	s.Require().NoError(err)

	s.sink, err = audit.NewKafkaSink(config.KafkaSettings{
		Brokers: s.brokers,
		Topic:   testTopic,
	})
	s.Require().NoError(err)
}

func (s *KafkaSinkSuite) TearDownSuite() {
	if s.sink != nil {
		s.sink.Close()
	}
}

func (s *KafkaSinkSuite) TestPublishedEventIsConsumable() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	event := audit.Event{
		Timestamp: time.Now().UTC().Truncate(time.Millisecond),
		Action:    audit.ActionSubscriptionCreated,
		Email:     "ursula@example.com",
		RequestID: "req-123",
	}
	s.Require().NoError(s.sink.Publish(ctx, event))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.brokers...),
		kgo.ConsumeTopics(testTopic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	s.Require().NoError(fetches.Err())

	records := fetches.Records()
	s.Require().NotEmpty(records)

	var got audit.Event
	s.Require().NoError(json.Unmarshal(records[0].Value, &got))
	s.Equal(event.Action, got.Action)
	s.Equal(event.Email, got.Email)
	s.Equal(event.RequestID, got.RequestID)
	s.Equal(string(event.Action), string(records[0].Key))
}
