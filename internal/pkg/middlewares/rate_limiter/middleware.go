package rate_limiter

import (
	"net/http"
	"strconv"

	"fastfeet/internal/generated/dto"
	"fastfeet/internal/handlers/rest/response"
	"fastfeet/internal/pkg/middlewares/route"
	"fastfeet/pkg/logger"
)

const msgRateLimited = "Muitas requisições, tente novamente mais tarde"

// Middleware один лимитер на весь сервер. limit уходит клиенту в X-RateLimit-Limit.
func Middleware(log handlerLogger, limit int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			handlerPath := route.Template(r)

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", handlerPath),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			HTTPRequestsRateLimited.WithLabelValues(r.Method, handlerPath).Inc()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("Retry-After", "1")
			response.JSON(w, log, http.StatusTooManyRequests, dto.Message{Message: msgRateLimited})
		})
	}
}
