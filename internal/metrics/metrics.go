package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tweetchain"

var (
	// Метрики для gRPC
	GrpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "grpc_requests_total",
		Help:      "Total number of gRPC requests",
	}, []string{"method", "status"})

	GrpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "grpc_request_duration_seconds",
		Help:      "Duration of gRPC requests",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	// Метрики для HTTP (gRPC-gateway)
	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	HttpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})
)

var (
	// Метрики программы
	InstructionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "instructions_total",
		Help:      "Total number of executed tweet instructions",
	}, []string{"instruction", "result"})

	LamportsReclaimed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lamports_reclaimed_total",
		Help:      "Deposits refunded to authors on tweet deletion",
	})

	LamportsAirdropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lamports_airdropped_total",
		Help:      "Lamports credited by the faucet",
	})
)
