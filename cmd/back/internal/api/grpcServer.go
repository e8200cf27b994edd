package api

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	pb "tweetchain/api/tweet/v1"
	"tweetchain/cmd/back/internal/ledger"
	"tweetchain/cmd/back/internal/program"
	"tweetchain/internal/account"
	"tweetchain/internal/logger"
	"tweetchain/internal/metrics"
	"tweetchain/internal/rabbitmq"
)

const (
	EventTweetCreated = "tweet.created"
	EventTweetUpdated = "tweet.updated"
	EventTweetDeleted = "tweet.deleted"
)

type TweetEvent struct {
	Address          string `json:"address"`
	Author           string `json:"author"`
	Topic            string `json:"topic,omitempty"`
	Timestamp        int64  `json:"timestamp,omitempty"`
	RefundedLamports uint64 `json:"refunded_lamports,omitempty"`
}

type Program interface {
	SendTweet(ctx context.Context, accs program.Accounts, topic, content string) (program.Record, error)
	UpdateTweet(ctx context.Context, accs program.Accounts, topic, content string) (program.Record, error)
	DeleteTweet(ctx context.Context, accs program.Accounts) (uint64, error)
	GetTweet(ctx context.Context, address account.PublicKey) (program.Record, error)
	ListTweets(ctx context.Context, q program.Query) ([]program.Record, error)
}

type CacheTweets interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	GetDelete(ctx context.Context, key string) (string, error)
}

// CacheAuthorTweets списки твитов автора. ReplaceList пишет только если версия
// не менялась после ListVersion, иначе список устарел.
type CacheAuthorTweets interface {
	ListVersion(ctx context.Context, key string) (int64, error)
	ReplaceList(ctx context.Context, key string, version int64, expiration time.Duration, items ...string) (bool, error)
	GetList(ctx context.Context, key string) ([]string, error)
	InvalidateList(ctx context.Context, key string) error
}

type Producer interface {
	PublishJSON(ctx context.Context, routingKey string, eventType string, message interface{}) (string, error)
}

type Faucet struct {
	Enabled     bool
	MaxLamports uint64
}

// GrpcServer кэш и очередь необязательны (nil - выключены)
type GrpcServer struct {
	pb.UnimplementedTweetServiceServer

	Program             Program
	Ledger              ledger.Store
	CacheDBTweets       CacheTweets
	CacheDBAuthorTweets CacheAuthorTweets
	CacheTTL            time.Duration
	Producer            Producer
	Faucet              Faucet
}

func (s GrpcServer) SendTweet(ctx context.Context, request *pb.SendTweetRequest) (*pb.SendTweetResponse, error) {
	signers := SignersFromContext(ctx)

	tweetKey, err := parseAddress("tweet", request.Tweet)
	if err != nil {
		return nil, err
	}
	author, err := resolveAuthor(request.Author, signers, tweetKey)
	if err != nil {
		return nil, err
	}

	rec, err := s.Program.SendTweet(ctx, program.Accounts{
		Tweet:   tweetKey,
		Author:  author,
		Signers: signers,
	}, request.Topic, request.Content)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	tweet := toTweet(rec)
	s.cacheTweet(ctx, tweet)
	s.invalidateAuthor(ctx, author)
	s.publish(ctx, EventTweetCreated, TweetEvent{
		Address:   tweet.Address,
		Author:    tweet.Author,
		Topic:     tweet.Topic,
		Timestamp: tweet.Timestamp,
	})

	return &pb.SendTweetResponse{Tweet: tweet}, nil
}

func (s GrpcServer) UpdateTweet(ctx context.Context, request *pb.UpdateTweetRequest) (*pb.UpdateTweetResponse, error) {
	signers := SignersFromContext(ctx)

	tweetKey, err := parseAddress("address", request.Address)
	if err != nil {
		return nil, err
	}
	author, err := resolveAuthor(request.Author, signers, tweetKey)
	if err != nil {
		return nil, err
	}

	rec, err := s.Program.UpdateTweet(ctx, program.Accounts{
		Tweet:   tweetKey,
		Author:  author,
		Signers: signers,
	}, request.Topic, request.Content)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	tweet := toTweet(rec)
	s.cacheTweet(ctx, tweet)
	s.invalidateAuthor(ctx, author)
	s.publish(ctx, EventTweetUpdated, TweetEvent{
		Address:   tweet.Address,
		Author:    tweet.Author,
		Topic:     tweet.Topic,
		Timestamp: tweet.Timestamp,
	})

	return &pb.UpdateTweetResponse{Tweet: tweet}, nil
}

func (s GrpcServer) DeleteTweet(ctx context.Context, request *pb.DeleteTweetRequest) (*pb.DeleteTweetResponse, error) {
	signers := SignersFromContext(ctx)

	tweetKey, err := parseAddress("address", request.Address)
	if err != nil {
		return nil, err
	}
	author, err := resolveAuthor(request.Author, signers, tweetKey)
	if err != nil {
		return nil, err
	}

	refund, err := s.Program.DeleteTweet(ctx, program.Accounts{
		Tweet:   tweetKey,
		Author:  author,
		Signers: signers,
	})
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	if s.CacheDBTweets != nil {
		if _, err := s.CacheDBTweets.GetDelete(ctx, tweetKey.String()); err != nil {
			logger.FromContext(ctx).Debug("cache delete tweet", "address", tweetKey.String(), "error", err)
		}
	}
	s.invalidateAuthor(ctx, author)
	s.publish(ctx, EventTweetDeleted, TweetEvent{
		Address:          tweetKey.String(),
		Author:           author.String(),
		RefundedLamports: refund,
	})

	return &pb.DeleteTweetResponse{RefundedLamports: refund}, nil
}

func (s GrpcServer) GetTweet(ctx context.Context, request *pb.GetTweetRequest) (*pb.GetTweetResponse, error) {
	log := logger.FromContext(ctx)

	tweetKey, err := parseAddress("address", request.Address)
	if err != nil {
		return nil, err
	}

	if s.CacheDBTweets != nil {
		cached, err := s.CacheDBTweets.Get(ctx, tweetKey.String())
		if err == nil {
			var tweet pb.Tweet
			if err = protojson.Unmarshal([]byte(cached), &tweet); err == nil {
				return &pb.GetTweetResponse{Tweet: &tweet}, nil
			}
			log.Warn("cache: bad tweet json", "address", tweetKey.String(), "error", err)
		} else {
			log.Debug("cache miss", "address", tweetKey.String(), "error", err)
		}
	}

	rec, err := s.Program.GetTweet(ctx, tweetKey)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	tweet := toTweet(rec)
	s.cacheTweet(ctx, tweet)

	return &pb.GetTweetResponse{Tweet: tweet}, nil
}

func (s GrpcServer) ListTweets(ctx context.Context, request *pb.ListTweetsRequest) (*pb.ListTweetsResponse, error) {
	log := logger.FromContext(ctx)

	q := program.Query{Topic: request.Topic}
	for _, a := range request.Authors {
		key, err := parseAddress("authors", a)
		if err != nil {
			return nil, err
		}
		q.Authors = append(q.Authors, key)
	}

	// кэшируем только выборку по одному автору
	var (
		cacheKey string
		version  int64
		err      error
	)
	if s.CacheDBAuthorTweets != nil && len(q.Authors) == 1 && q.Topic == nil {
		cacheKey = q.Authors[0].String()
		if version, err = s.CacheDBAuthorTweets.ListVersion(ctx, cacheKey); err != nil {
			log.Warn("cache: list version", "author", cacheKey, "error", err)
			cacheKey = ""
		}
	}
	if cacheKey != "" {
		items, err := s.CacheDBAuthorTweets.GetList(ctx, cacheKey)
		if err == nil && len(items) > 0 {
			tweets := make([]*pb.Tweet, 0, len(items))
			for _, item := range items {
				var tweet pb.Tweet
				if err := protojson.Unmarshal([]byte(item), &tweet); err != nil {
					log.Warn("cache: bad tweet json", "author", cacheKey, "error", err)
					tweets = nil
					break
				}
				tweets = append(tweets, &tweet)
			}
			if tweets != nil {
				return &pb.ListTweetsResponse{Tweets: tweets}, nil
			}
		}
	}

	records, err := s.Program.ListTweets(ctx, q)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	tweets := make([]*pb.Tweet, len(records))
	items := make([]string, 0, len(records))
	for i := range records {
		tweets[i] = toTweet(records[i])
		if b, err := protojson.Marshal(tweets[i]); err == nil {
			items = append(items, string(b))
		}
	}

	if cacheKey != "" && len(items) == len(tweets) {
		stored, err := s.CacheDBAuthorTweets.ReplaceList(ctx, cacheKey, version, s.CacheTTL, items...)
		if err != nil {
			log.Warn("cache: replace author list", "author", cacheKey, "error", err)
		} else if !stored {
			log.Debug("cache: author list changed while reading", "author", cacheKey)
		}
	}

	return &pb.ListTweetsResponse{Tweets: tweets}, nil
}

func (s GrpcServer) GetBalance(ctx context.Context, request *pb.GetBalanceRequest) (*pb.GetBalanceResponse, error) {
	key, err := parseAddress("address", request.Address)
	if err != nil {
		return nil, err
	}
	balance, err := ledger.Balance(ctx, s.Ledger, key)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &pb.GetBalanceResponse{Address: key.String(), Lamports: balance}, nil
}

func (s GrpcServer) RequestAirdrop(ctx context.Context, request *pb.RequestAirdropRequest) (*pb.RequestAirdropResponse, error) {
	if !s.Faucet.Enabled {
		return nil, status.Error(codes.Unimplemented, "faucet is disabled")
	}
	if request.Lamports == 0 || request.Lamports > s.Faucet.MaxLamports {
		return nil, status.Errorf(codes.InvalidArgument, "lamports must be in 1..%d", s.Faucet.MaxLamports)
	}
	key, err := parseAddress("address", request.Address)
	if err != nil {
		return nil, err
	}

	balance, err := ledger.Airdrop(ctx, s.Ledger, key, request.Lamports)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	metrics.LamportsAirdropped.Add(float64(request.Lamports))

	return &pb.RequestAirdropResponse{Address: key.String(), Lamports: balance}, nil
}

func (s GrpcServer) cacheTweet(ctx context.Context, tweet *pb.Tweet) {
	if s.CacheDBTweets == nil {
		return
	}
	tweetJSON, err := protojson.Marshal(tweet)
	if err != nil {
		logger.FromContext(ctx).Warn("cache: marshal tweet", "address", tweet.Address, "error", err)
		return
	}
	if err := s.CacheDBTweets.Set(ctx, tweet.Address, tweetJSON, s.CacheTTL); err != nil {
		logger.FromContext(ctx).Warn("cache: set tweet", "address", tweet.Address, "error", err)
	}
}

func (s GrpcServer) invalidateAuthor(ctx context.Context, author account.PublicKey) {
	if s.CacheDBAuthorTweets == nil {
		return
	}
	if err := s.CacheDBAuthorTweets.InvalidateList(ctx, author.String()); err != nil {
		logger.FromContext(ctx).Warn("cache: invalidate author", "author", author.String(), "error", err)
	}
}

// publish ошибки очереди не ломают запрос, транзакция уже зафиксирована
func (s GrpcServer) publish(ctx context.Context, eventType string, event TweetEvent) {
	if s.Producer == nil {
		return
	}
	id, err := s.Producer.PublishJSON(ctx, rabbitmq.EventsQueue, eventType, event)
	if err != nil {
		logger.FromContext(ctx).Error("rabbit: publish", "event", eventType, "address", event.Address, "error", err)
		return
	}
	logger.FromContext(ctx).Debug("rabbit: published", "event", eventType, "message_id", id)
}

func parseAddress(field, value string) (account.PublicKey, error) {
	if value == "" {
		return account.PublicKey{}, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	key, err := account.ParsePublicKey(value)
	if err != nil {
		return account.PublicKey{}, status.Errorf(codes.InvalidArgument, "%s: %v", field, err)
	}
	return key, nil
}

// resolveAuthor явный author или единственный подписант, не являющийся аккаунтом твита
func resolveAuthor(author string, signers program.Signers, tweet account.PublicKey) (account.PublicKey, error) {
	if author != "" {
		return parseAddress("author", author)
	}

	var candidates []account.PublicKey
	for key := range signers {
		if key != tweet {
			candidates = append(candidates, key)
		}
	}
	switch len(candidates) {
	case 0:
		return account.PublicKey{}, status.Error(codes.Unauthenticated, "author signature is required")
	case 1:
		return candidates[0], nil
	default:
		return account.PublicKey{}, status.Error(codes.InvalidArgument, "author is required when several keys sign the request")
	}
}

func toTweet(rec program.Record) *pb.Tweet {
	return &pb.Tweet{
		Address:   rec.Address.String(),
		Author:    rec.Tweet.Author.String(),
		Timestamp: rec.Tweet.Timestamp,
		CreatedAt: time.Unix(rec.Tweet.Timestamp, 0).UTC().Format(time.RFC3339),
		Topic:     rec.Tweet.Topic,
		Content:   rec.Tweet.Content,
		Lamports:  rec.Lamports,
	}
}
