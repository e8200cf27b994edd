package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/ed25519"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"tweetchain/cmd/back/internal/program"
	"tweetchain/internal/account"
)

type contextKey string

const (
	SignersKey contextKey = "signers"
)

const authScheme = "Bearer "

// AuthInterceptor для gRPC.
// Каждое значение authorization - JWT (EdDSA), подписанный ключом из sub.
// Проверенные ключи кладутся в контекст как program.Signers.
// Запросы без токенов проходят с пустым набором подписантов.
func AuthInterceptor(maxTTL time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		signers := program.NewSigners()

		md, _ := metadata.FromIncomingContext(ctx)
		for _, header := range md.Get("authorization") {
			token := strings.TrimPrefix(header, authScheme)

			// Валидируем токен
			key, err := ValidateToken(token, maxTTL, time.Now())
			if err != nil {
				return nil, status.Error(codes.Unauthenticated, fmt.Sprintf("invalid token: %v", err))
			}
			signers[key] = struct{}{}
		}

		ctx = context.WithValue(ctx, SignersKey, signers)
		return handler(ctx, req)
	}
}

// ValidateToken проверяет подпись токена ключом из sub и срок действия
func ValidateToken(tokenString string, maxTTL time.Duration, now time.Time) (account.PublicKey, error) {
	claims := &jwt.RegisteredClaims{}
	var key account.PublicKey

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		var err error
		key, err = account.ParsePublicKey(claims.Subject)
		if err != nil {
			return nil, fmt.Errorf("subject: %w", err)
		}
		return ed25519.PublicKey(key[:]), nil
	})
	if err != nil {
		return account.PublicKey{}, err
	}
	if !token.Valid {
		return account.PublicKey{}, errors.New("invalid token")
	}

	if claims.ExpiresAt == nil {
		return account.PublicKey{}, errors.New("token has no expiration")
	}
	if claims.ExpiresAt.Time.After(now.Add(maxTTL)) {
		return account.PublicKey{}, fmt.Errorf("token expires later than %s", maxTTL)
	}
	return key, nil
}

// SignToken выпускает токен для ключа kp
func SignToken(kp *account.Keypair, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   kp.PublicKey().String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(kp.PrivateKey())
}

// SignersFromContext извлекает подписантов из контекста
func SignersFromContext(ctx context.Context) program.Signers {
	signers, ok := ctx.Value(SignersKey).(program.Signers)
	if !ok {
		return program.NewSigners()
	}
	return signers
}
