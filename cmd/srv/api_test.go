package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/loterias-lab/backend/internal/common"
	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/internal/model"
	"github.com/loterias-lab/backend/pkg/errorx"
	"github.com/loterias-lab/backend/pkg/testutil"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Code  int64           `json:"code"`
	Error string          `json:"error"`
	Data  json.RawMessage `json:"data"`
}

func newTestSrv(t *testing.T) *srv {
	s := &srv{ctx: testutil.MockContext()}
	testutil.CreateFixtureDb(s.ctx)

	s.resultCache = common.NewMemoryCache(time.Minute)
	s.publisher = &testutil.RecordPublisher{}
	s.notifier = common.NewNotifier(s.publisher, "notification")
	s.loadRepos()
	s.loadUpdater()
	s.loadDomains()
	s.loadRouter()

	return s
}

func (s *srv) call(t *testing.T, user *entity.User, method, target, body string) (int, apiResponse) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	if user != nil {
		token, err := xcontext.TokenEngine(s.ctx).Generate(user.ID, model.AccessToken{ID: user.ID})
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.Handler().ServeHTTP(w, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func Test_loadRouter_FreeUser(t *testing.T) {
	s := newTestSrv(t)

	tests := []struct {
		name   string
		target string
		body   string
	}{
		{
			name:   "analyze numbers",
			target: "/analyzeNumbers",
			body:   `{"game_type":"megasena","numbers":[1,10]}`,
		},
		{
			name:   "analyze combinations",
			target: "/analyzeCombinations",
			body:   `{"game_type":"megasena","draw_window":10,"combinations":[[1,2,3]]}`,
		},
		{
			name:   "check all picks",
			target: "/checkAllPicks",
			body:   `{}`,
		},
		{
			name:   "check pick",
			target: "/checkPick",
			body:   `{"id":"pick1"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := s.call(t, testutil.User1, http.MethodPost, tt.target, tt.body)
			require.Equal(t, http.StatusOK, status, resp.Error)
			require.Zero(t, resp.Code)
		})
	}

	status, resp := s.call(t, testutil.User1, http.MethodPost, "/checkAllPicks", `{}`)
	require.Equal(t, http.StatusOK, status)
	var checkAll model.CheckAllPicksResponse
	require.NoError(t, json.Unmarshal(resp.Data, &checkAll))
	require.Equal(t, 3, checkAll.TotalPicks)
}

func Test_loadRouter_Guards(t *testing.T) {
	s := newTestSrv(t)

	getDraw := "/getDraw?game_type=megasena&sequence_number=1"

	_, resp := s.call(t, nil, http.MethodPost, "/analyzeNumbers", `{"game_type":"megasena","numbers":[1]}`)
	require.Equal(t, int64(errorx.Unauthenticated), resp.Code)

	_, resp = s.call(t, testutil.User1, http.MethodGet, getDraw, "")
	require.Equal(t, int64(errorx.UpgradeRequired), resp.Code)

	status, resp := s.call(t, testutil.User2, http.MethodGet, getDraw, "")
	require.Equal(t, http.StatusOK, status, resp.Error)

	_, resp = s.call(t, testutil.User2, http.MethodGet, "/getDashboard", "")
	require.Equal(t, int64(errorx.PermissionDenied), resp.Code)

	status, resp = s.call(t, testutil.Admin, http.MethodGet, "/getDashboard", "")
	require.Equal(t, http.StatusOK, status, resp.Error)

	status, resp = s.call(t, nil, http.MethodGet, "/getLatestDraw?game_type=megasena", "")
	require.Equal(t, http.StatusOK, status, resp.Error)
}
