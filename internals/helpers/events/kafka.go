package events

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
	"github.com/bytedance/sonic"

	"devcamper_backend/internals/configs"
)

type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher returns a LogPublisher when no broker is configured.
func NewPublisher(cfg configs.Config) (Publisher, error) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Println("[INFO] KAFKA_BROKERS not set, events are logged only")
		return LogPublisher{}, nil
	}

	sc := sarama.NewConfig()
	sc.ClientID = "devcamper-api"
	sc.Producer.Return.Successes = true
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Retry.Max = 3
	sc.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(cfg.KafkaBrokers, sc)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	log.Printf("[INFO] Kafka producer ready (%v)", cfg.KafkaBrokers)
	return NewKafkaPublisher(producer, cfg.KafkaPasswordResetTopic), nil
}

func NewKafkaPublisher(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (p *KafkaPublisher) PublishPasswordReset(_ context.Context, evt PasswordResetRequested) error {
	data, err := sonic.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", p.topic, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(evt.UserID.String()),
		Value: sarama.ByteEncoder(data),
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send %s: %w", p.topic, err)
	}
	log.Printf("[INFO] published %s partition=%d offset=%d", p.topic, partition, offset)
	return nil
}

func (p *KafkaPublisher) Close() error { return p.producer.Close() }
