package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Client_GET(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/megasena/2700", r.URL.Path)
		require.Equal(t, "a=1&b=x%20y", r.URL.RawQuery)
		require.Equal(t, "loterias", r.Header.Get("User-Agent"))
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{"numero":2700,"listaDezenas":["01","02"]}`))
	}))
	defer server.Close()

	resp, err := NewGenerator(server.Client(), server.URL).
		New("/%s/%d", "megasena", 2700).
		Header("Accept", "application/json").
		Query(Parameter{"b": "x y", "a": "1"}).
		GET(context.Background(), UserAgent("loterias"))
	require.NoError(t, err)
	require.True(t, resp.OK())
	require.Equal(t, int64(2700), resp.Body.Get("numero").Int())
	require.Equal(t, "02", resp.Body.Get("listaDezenas.1").String())
}

func Test_Client_AllEndpointsFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := NewGenerator(server.Client(), server.URL).New("/x").GET(context.Background())
	require.Error(t, err)
}
