package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBusinessHoursOpen  = 8
	defaultBusinessHoursClose = 18
	defaultPickupDailyLimit   = 5
	defaultBusinessTimezone   = "UTC"
	defaultOutboxRelayBatch   = 100
	defaultMailPort           = 587
)

type (
	Tasks struct {
		OutboxRelayInterval time.Duration
		OutboxRelayBatch    int
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host        string
		Port        string
		User        string
		Password    string
		DBName      string
		SSLMode     string
		AutoMigrate bool
	}

	BusinessRules struct {
		OpenHour         int
		CloseHour        int
		Timezone         string
		PickupDailyLimit int
	}

	Mail struct {
		Host     string
		Port     int
		User     string
		Password string
		From     string
		TLS      bool
	}

	Kafka struct {
		PortHealthcheck    string
		Brokers            string
		NotificationsTopic string
		ConsumerGroup      string
		Sarama             Sarama
		Handlers           KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		Notification Notification
	}

	Notification struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks         Tasks
		Server        HTTPServer
		Database      Database
		BusinessRules BusinessRules
		Mail          Mail
		Kafka         Kafka
	}
)

// BrokerList KAFKA_BROKERS перечисляются через запятую.
func (k *Kafka) BrokerList() []string {
	parts := strings.Split(k.Brokers, ",")
	brokers := make([]string, 0, len(parts))
	for _, part := range parts {
		if broker := strings.TrimSpace(part); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	relayInterval, err := osGetEnvDuration("BACKGROUND_OUTBOX_RELAY_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	relayBatch, err := osGetIntDefault("BACKGROUND_OUTBOX_RELAY_BATCH", defaultOutboxRelayBatch)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	notificationTimeout, err := osGetEnvDuration("KAFKA_HANDLER_NOTIFICATION_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	autoMigrate, err := osGetBool("POSTGRES_AUTO_MIGRATE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	openHour, err := osGetIntDefault("BUSINESS_HOURS_OPEN", defaultBusinessHoursOpen)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	closeHour, err := osGetIntDefault("BUSINESS_HOURS_CLOSE", defaultBusinessHoursClose)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pickupLimit, err := osGetIntDefault("PICKUP_DAILY_LIMIT", defaultPickupDailyLimit)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	mailPort, err := osGetIntDefault("MAIL_PORT", defaultMailPort)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	mailTLS, err := osGetBool("MAIL_TLS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	timezone := os.Getenv("BUSINESS_TIMEZONE")
	if timezone == "" {
		timezone = defaultBusinessTimezone
	}

	return &Config{
		Tasks: Tasks{
			OutboxRelayInterval: relayInterval,
			OutboxRelayBatch:    relayBatch,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:        os.Getenv("POSTGRES_HOST"),
			Port:        os.Getenv("POSTGRES_PORT"),
			User:        os.Getenv("POSTGRES_USER"),
			Password:    os.Getenv("POSTGRES_PASSWORD"),
			DBName:      os.Getenv("POSTGRES_DB"),
			SSLMode:     os.Getenv("POSTGRES_SSLMODE"),
			AutoMigrate: autoMigrate,
		},
		BusinessRules: BusinessRules{
			OpenHour:         openHour,
			CloseHour:        closeHour,
			Timezone:         timezone,
			PickupDailyLimit: pickupLimit,
		},
		Mail: Mail{
			Host:     os.Getenv("MAIL_HOST"),
			Port:     mailPort,
			User:     os.Getenv("MAIL_USER"),
			Password: os.Getenv("MAIL_PASSWORD"),
			From:     os.Getenv("MAIL_FROM"),
			TLS:      mailTLS,
		},
		Kafka: Kafka{
			Brokers:            os.Getenv("KAFKA_BROKERS"),
			NotificationsTopic: os.Getenv("KAFKA_NOTIFICATIONS_TOPIC"),
			ConsumerGroup:      os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck:    os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				Notification: Notification{
					ProcessTimeout: notificationTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.BusinessRules.OpenHour < 0 || cfg.BusinessRules.CloseHour > 23 ||
		cfg.BusinessRules.OpenHour >= cfg.BusinessRules.CloseHour {
		return fmt.Errorf("BUSINESS_HOURS_OPEN/BUSINESS_HOURS_CLOSE are invalid: %d-%d",
			cfg.BusinessRules.OpenHour, cfg.BusinessRules.CloseHour)
	}
	if cfg.BusinessRules.PickupDailyLimit <= 0 {
		return errors.New("PICKUP_DAILY_LIMIT must be positive")
	}
	if _, err := time.LoadLocation(cfg.BusinessRules.Timezone); err != nil {
		return fmt.Errorf("BUSINESS_TIMEZONE is invalid: %w", err)
	}

	if cfg.Tasks.OutboxRelayInterval == time.Duration(0) {
		return errors.New("BACKGROUND_OUTBOX_RELAY_INTERVAL is required")
	}
	if cfg.Tasks.OutboxRelayBatch <= 0 {
		return errors.New("BACKGROUND_OUTBOX_RELAY_BATCH must be positive")
	}

	if cfg.Mail.Host == "" {
		return errors.New("MAIL_HOST is required")
	}
	if cfg.Mail.From == "" {
		return errors.New("MAIL_FROM is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.NotificationsTopic == "" {
		return errors.New("KAFKA_NOTIFICATIONS_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.Notification.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_NOTIFICATION_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	return osGetIntDefault(s, 0)
}

func osGetIntDefault(s string, def int) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
