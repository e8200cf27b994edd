package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/validator"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	pb "tweetchain/api/tweet/v1"
	"tweetchain/cmd/back/internal/api"
	"tweetchain/cmd/back/internal/cache"
	"tweetchain/cmd/back/internal/ledger"
	"tweetchain/cmd/back/internal/producer"
	"tweetchain/cmd/back/internal/program"
	"tweetchain/cmd/back/internal/repo"
	"tweetchain/internal/logger"
	"tweetchain/internal/metrics"
	"tweetchain/internal/rabbitmq"
)

func main() {
	cfg, err := LoadConfig(configPath())
	if err != nil {
		log.Fatal(err)
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	}))
	slog.SetDefault(log)

	ctxParent := logger.NewContext(context.Background(), log)

	ctx, cancel := signal.NotifyContext(ctxParent, os.Interrupt, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGABRT, syscall.SIGTERM)
	defer cancel()

	programID, err := cfg.ProgramKey()
	if err != nil {
		log.Error("program id", "error", err)
		os.Exit(1)
	}

	store, closeStore, err := openLedger(ctx, cfg)
	if err != nil {
		log.Error("ledger", "driver", cfg.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	twitterGrpcServer := api.GrpcServer{
		Program:  program.New(programID, store, cfg.Rent),
		Ledger:   store,
		CacheTTL: cfg.CacheTTL,
		Faucet: api.Faucet{
			Enabled:     cfg.Faucet,
			MaxLamports: cfg.FaucetMaxLamports,
		},
	}

	if cfg.AddrCache != "" {
		redisClientTweets := cache.NewRedisClient(cfg.AddrCache, cfg.PasswordCache, cfg.DBCacheTweet)
		if err := redisClientTweets.Connect(ctx); err != nil {
			log.Error("RedisTweet - not connected", "error", err)
		} else {
			log.Warn("RedisTweet - connected")
		}
		defer redisClientTweets.Close()

		redisClientAuthorTweets := cache.NewRedisClient(cfg.AddrCache, cfg.PasswordCache, cfg.DBCacheAuthorTweets)
		if err := redisClientAuthorTweets.Connect(ctx); err != nil {
			log.Error("RedisAuthorTweets - not connected", "error", err)
		} else {
			log.Warn("RedisAuthorTweets - connected")
		}
		defer redisClientAuthorTweets.Close()

		twitterGrpcServer.CacheDBTweets = redisClientTweets
		twitterGrpcServer.CacheDBAuthorTweets = redisClientAuthorTweets
	}

	if cfg.HostRBMQ != "" {
		rabbit, err := rabbitmq.NewRabbitMQClient(cfg.HostRBMQ, cfg.PortRBMQ, cfg.UserNameRBMQ, cfg.PasswordRBMQ, cfg.VHostRBMQ)
		if err != nil {
			log.Error("rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbit.Close()
		twitterGrpcServer.Producer = producer.NewProducer(rabbit.Ch)
	}

	ln, err := net.Listen("tcp", cfg.HostGRPC)
	if err != nil {
		log.Error("grpc listen", "addr", cfg.HostGRPC, "error", err)
		os.Exit(1)
	}

	loggingOpts := []logging.Option{
		logging.WithLogOnEvents(
			logging.StartCall,
			logging.FinishCall,
		),
	}

	StartMetricsServer(ctx, cfg.HostMetrics)

	server := grpc.NewServer(
		grpc.Creds(insecure.NewCredentials()),
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(recoveryHandler)),
			loggerInterceptor(log),
			logging.UnaryServerInterceptor(interceptorLogger(log), loggingOpts...),
			MetricsInterceptor(),
			TimeoutInterceptor(cfg.TimeOut),
			api.AuthInterceptor(cfg.TokenMaxTTL),
			validator.UnaryServerInterceptor(),
		),
	)
	pb.RegisterTweetServiceServer(server, &twitterGrpcServer)

	log.Warn("GRPC server - started", "addr", cfg.HostGRPC)
	go func() {
		if err := server.Serve(ln); err != nil {
			log.Error("grpc serve", "error", err)
		}
	}()

	conn, err := grpc.NewClient(cfg.HostGRPC,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		log.Error("grpc client", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	// HTTP сервер (gateway) с middleware
	gw, err := api.NewGateway(ctx, pb.NewTweetServiceClient(conn))
	if err != nil {
		log.Error("gateway", "error", err)
		os.Exit(1)
	}

	gwServer := &http.Server{
		Addr:              cfg.Host,
		Handler:           api.MetricsMiddleware(gw),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		go forceShutdown(ctx)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := gwServer.Shutdown(shutdownCtx); err != nil {
			log.Error("gateway shutdown", "error", err)
		}
		server.GracefulStop()
	}()

	log.Warn("GRPC-GW server - started", "addr", cfg.Host)
	if err := gwServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("gateway serve", "error", err)
	}
}

// openLedger postgres (с миграциями) или хранилище в памяти
func openLedger(ctx context.Context, cfg Config) (ledger.Store, func(), error) {
	log := logger.FromContext(ctx)

	if cfg.Driver == DriverMemory {
		log.Warn("ledger in memory, state is lost on restart")
		return ledger.NewMemory(), func() {}, nil
	}

	migrator, err := migrate.New(cfg.MigrateDir, cfg.DSN)
	if err != nil {
		return nil, nil, err
	}
	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, nil, err
	}
	if srcErr, dbErr := migrator.Close(); srcErr != nil || dbErr != nil {
		log.Warn("migrator close", "source_error", srcErr, "db_error", dbErr)
	}

	rowSQLConn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, nil, err
	}
	if err := rowSQLConn.PingContext(ctx); err != nil {
		rowSQLConn.Close()
		return nil, nil, err
	}
	return repo.NewRepository(rowSQLConn), func() { rowSQLConn.Close() }, nil
}

func interceptorLogger(l *slog.Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

// loggerInterceptor кладет логгер в контекст запроса
func loggerInterceptor(l *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		return handler(logger.NewContext(ctx, l.With("method", info.FullMethod)), req)
	}
}

func recoveryHandler(ctx context.Context, p any) error {
	logger.FromContext(ctx).Error("panic recovered", "panic", p)
	return status.Error(codes.Internal, "internal error")
}

func MetricsInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()

		// Выполняем запрос
		resp, err := handler(ctx, req)

		duration := time.Since(start).Seconds()
		statusCode := status.Code(err).String()

		// Записываем метрики
		metrics.GrpcRequestsTotal.WithLabelValues(info.FullMethod, statusCode).Inc()
		metrics.GrpcRequestDuration.WithLabelValues(info.FullMethod).Observe(duration)

		return resp, err
	}
}

func TimeoutInterceptor(timeout time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if timeout <= 0 {
			return handler(ctx, req)
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return handler(ctx, req)
	}
}

func StartMetricsServer(ctx context.Context, addr string) {
	log := logger.FromContext(ctx)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		log.Info("starting metrics server", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error("metrics server", "error", err)
		}
	}()
}

func forceShutdown(ctx context.Context) {
	log := logger.FromContext(ctx)
	const shutdownDelay = 15 * time.Second

	<-ctx.Done()
	time.Sleep(shutdownDelay)

	log.Error("failed to graceful shutdown")
	os.Exit(1)
}
