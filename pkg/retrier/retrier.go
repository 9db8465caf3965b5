package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type (
	ShouldRetryFunc func(error) bool
	NotifyFunc      func(err error, next time.Duration)
)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// nil - ретраятся все ошибки, иначе только те, где функция вернула true
	ShouldRetry ShouldRetryFunc

	// вызывается перед каждой повторной попыткой, может быть nil
	OnRetry NotifyFunc
}

// ConnectConfig параметры для установки соединений при старте сервиса
// (postgres, kafka): долго и с джиттером.
func ConnectConfig() Config {
	return Config{
		InitialInterval: time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
	}
}
