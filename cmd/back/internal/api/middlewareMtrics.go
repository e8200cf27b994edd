package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"tweetchain/internal/account"
	"tweetchain/internal/metrics"
)

func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Создаем кастомный ResponseWriter для отслеживания статуса
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		path := sanitizePath(r.URL.Path)

		metrics.HttpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(rw.statusCode)).Inc()
		metrics.HttpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// sanitizePath заменяет адреса аккаунтов на {address}, чтобы не плодить метки
func sanitizePath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		if _, err := account.ParsePublicKey(s); err == nil {
			segments[i] = "{address}"
		}
	}
	return strings.Join(segments, "/")
}
