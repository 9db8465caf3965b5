package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"fastfeet/internal/entities"
	"fastfeet/internal/pkg/config"
	"fastfeet/pkg/logger"

	"github.com/IBM/sarama"
)

const producerMaxRetries = 3

type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

func NewSaramaProducerConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = producerMaxRetries
	// обязательно для SyncProducer
	cfg.Producer.Return.Successes = true

	return cfg, nil
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (*Producer, error) {
	saramaConfig, err := NewSaramaProducerConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	brokers := cfg.BrokerList()
	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.NotificationsTopic),
	)

	if err := pingKafka(ctx, kafkaLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	return NewProducerWithClient(kafkaLog, producer, cfg.NotificationsTopic), nil
}

func NewProducerWithClient(log logger.Logger, producer sarama.SyncProducer, topic string) *Producer {
	return &Producer{
		log:      log,
		producer: producer,
		topic:    topic,
	}
}

// Publish ключ сообщения это ключ задачи: задачи одного типа идут в одну партицию.
func (p *Producer) Publish(ctx context.Context, task entities.QueuedTask) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(NewTaskMessage(task))
	if err != nil {
		return fmt.Errorf("marshal task %s: %w", task.ID, err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(task.Key.String()),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte(HeaderTaskID), Value: []byte(task.ID)},
		},
	})
	if err != nil {
		return fmt.Errorf("send task %s: %w", task.ID, err)
	}

	p.log.Info("task published",
		logger.NewField("task", task.Key.String()),
		logger.NewField("task_id", task.ID),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	)
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
