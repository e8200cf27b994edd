package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"tweetchain/internal/metrics"
)

func TestSanitizePath(t *testing.T) {
	addr := newKeypair(t).PublicKey().String()

	assert.Equal(t, "/v1/tweets/{address}", sanitizePath("/v1/tweets/"+addr))
	assert.Equal(t, "/v1/accounts/{address}/balance", sanitizePath("/v1/accounts/"+addr+"/balance"))
	assert.Equal(t, "/v1/tweets", sanitizePath("/v1/tweets"))
	assert.Equal(t, "/v1/tweets/not-a-key", sanitizePath("/v1/tweets/not-a-key"))
}

func TestMetricsMiddleware(t *testing.T) {
	h := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	counter := metrics.HttpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/teapot", "418")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teapot", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
