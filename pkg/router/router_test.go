package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/loterias-lab/backend/pkg/errorx"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Name  string `json:"name" form:"name"`
	Count int    `json:"count" form:"count"`
}

type echoResponse struct {
	Name   string `json:"name"`
	Count  int    `json:"count"`
	UserID string `json:"user_id"`
}

func echo(ctx context.Context, req *echoRequest) (*echoResponse, error) {
	if req.Name == "fail" {
		return nil, errorx.New(errorx.NotFound, "Not found %s", req.Name)
	}

	if req.Name == "panic" {
		return nil, errors.New("raw error")
	}

	return &echoResponse{Name: req.Name, Count: req.Count, UserID: xcontext.RequestUserID(ctx)}, nil
}

func do(t *testing.T, h http.Handler, method, target, body string) (int, response) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func Test_Router(t *testing.T) {
	var closed []error
	r := New(context.Background())
	r.AddCloser(func(ctx context.Context) {
		closed = append(closed, xcontext.Error(ctx))
	})

	GET(r, "/echo", echo)

	authRouter := r.Branch()
	authRouter.Before(func(ctx context.Context) (context.Context, error) {
		if xcontext.HTTPRequest(ctx).Header.Get("Authorization") == "" {
			return nil, errorx.New(errorx.Unauthenticated, "Need authentication")
		}
		return xcontext.WithRequestUserID(ctx, "user1"), nil
	})
	POST(authRouter, "/echoAuth", echo)

	h := r.Handler()

	code, resp := do(t, h, http.MethodGet, "/echo?name=quina&count=5", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, int64(0), resp.Code)
	require.Equal(t, map[string]any{"name": "quina", "count": float64(5), "user_id": ""}, resp.Data)

	code, resp = do(t, h, http.MethodGet, "/echo?name=fail", "")
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, int64(errorx.NotFound), resp.Code)
	require.Equal(t, "Not found fail", resp.Error)

	code, resp = do(t, h, http.MethodGet, "/echo?name=panic", "")
	require.Equal(t, http.StatusInternalServerError, code)
	require.Equal(t, int64(errorx.Unknown.Code), resp.Code)

	code, resp = do(t, h, http.MethodGet, "/echo?count=abc", "")
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, int64(errorx.BadRequest), resp.Code)

	code, resp = do(t, h, http.MethodPost, "/echoAuth", `{"name":"lotofacil"}`)
	require.Equal(t, http.StatusUnauthorized, code)
	require.Equal(t, int64(errorx.Unauthenticated), resp.Code)

	req := httptest.NewRequest(http.MethodPost, "/echoAuth", strings.NewReader(`{"name":"lotofacil"}`))
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"code":0,"data":{"name":"lotofacil","count":0,"user_id":"user1"}}`, w.Body.String())

	require.Len(t, closed, 6)
	require.NoError(t, closed[0])
	require.True(t, errorx.Is(closed[1], errorx.NotFound))
	require.NoError(t, closed[5])
}

func Test_StatusCode(t *testing.T) {
	require.Equal(t, http.StatusOK, StatusCode(nil))
	require.Equal(t, http.StatusForbidden, StatusCode(errorx.New(errorx.UpgradeRequired, "pro")))
	require.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("x")))
}
