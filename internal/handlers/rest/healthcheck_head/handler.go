package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

const pingTimeout = time.Second

// Pinger проверка зависимости, без которой сервис не готов принимать трафик.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	isShuttingDown *atomic.Bool
	pinger         Pinger
}

func New(isShuttingDown *atomic.Bool, pinger Pinger) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		pinger:         pinger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
