package authenticator_test

import (
	"testing"
	"time"

	"github.com/loterias-lab/backend/pkg/authenticator"
	"github.com/stretchr/testify/require"
)

type claims struct {
	ID   string `json:"id"`
	Plan string `json:"plan"`
}

func TestJWT(t *testing.T) {
	engine := authenticator.NewTokenEngine[claims]("secret", time.Minute)
	token, err := engine.Generate("user1", claims{ID: "user1", Plan: "pro"})
	require.NoError(t, err)

	obj, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims{ID: "user1", Plan: "pro"}, obj)
}

func TestJWTExpiration(t *testing.T) {
	engine := authenticator.NewTokenEngine[claims]("secret", -time.Minute)
	token, err := engine.Generate("user1", claims{ID: "user1"})
	require.NoError(t, err)

	_, err = engine.Verify(token)
	require.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := authenticator.NewTokenEngine[claims]("secret", time.Minute).
		Generate("user1", claims{ID: "user1"})
	require.NoError(t, err)

	_, err = authenticator.NewTokenEngine[claims]("other", time.Minute).Verify(token)
	require.Error(t, err)
}
