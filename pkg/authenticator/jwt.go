package authenticator

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type claims[T any] struct {
	jwt.RegisteredClaims
	Payload T `json:"obj,omitempty"`
}

// hmacEngine signs tokens with HS256 and rejects any other algorithm.
type hmacEngine[T any] struct {
	secret     []byte
	expiration time.Duration
	parser     *jwt.Parser
}

func NewTokenEngine[T any](secret string, expiration time.Duration) TokenEngine[T] {
	return &hmacEngine[T]{
		secret:     []byte(secret),
		expiration: expiration,
		parser:     jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

func (e *hmacEngine[T]) Generate(sub string, obj T) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims[T]{
		Payload: obj,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(e.expiration)),
		},
	})

	return token.SignedString(e.secret)
}

func (e *hmacEngine[T]) Verify(token string) (T, error) {
	var c claims[T]
	if _, err := e.parser.ParseWithClaims(token, &c, e.key); err != nil {
		var zero T
		return zero, err
	}

	return c.Payload, nil
}

func (e *hmacEngine[T]) key(*jwt.Token) (any, error) {
	return e.secret, nil
}
