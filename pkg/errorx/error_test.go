package errorx

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(NotFound, "Not found pick %s", "abc")
	require.Equal(t, "Not found pick abc", err.Error())
	require.Equal(t, NotFound, err.Code)
	require.Equal(t, http.StatusNotFound, err.HTTPStatus())
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", New(PlanExpired, "Plan expired"))
	require.True(t, Is(err, PlanExpired))
	require.False(t, Is(err, UpgradeRequired))
	require.False(t, Is(fmt.Errorf("plain"), PlanExpired))
	require.Equal(t, http.StatusInternalServerError, Unknown.HTTPStatus())
}
