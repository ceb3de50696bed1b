package domain

import (
	"testing"

	"github.com/loterias-lab/backend/internal/model"
	"github.com/loterias-lab/backend/internal/repository"
	"github.com/loterias-lab/backend/pkg/errorx"
	"github.com/loterias-lab/backend/pkg/testutil"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_authDomain_Register(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.InsertUsers(ctx)
	d := NewAuthDomain(repository.NewUserRepository())

	tests := []struct {
		name    string
		req     *model.RegisterRequest
		wantErr errorx.Code
	}{
		{
			name: "happy case",
			req:  &model.RegisterRequest{Name: "Maria", Email: " Maria@Example.com ", Password: "123456"},
		},
		{
			name:    "duplicated email",
			req:     &model.RegisterRequest{Name: "Other", Email: "USER1@example.com", Password: "123456"},
			wantErr: errorx.AlreadyExists,
		},
		{
			name:    "invalid email",
			req:     &model.RegisterRequest{Name: "Other", Email: "not-an-email", Password: "123456"},
			wantErr: errorx.BadRequest,
		},
		{
			name:    "short password",
			req:     &model.RegisterRequest{Name: "Other", Email: "other@example.com", Password: "12345"},
			wantErr: errorx.BadRequest,
		},
		{
			name:    "no name",
			req:     &model.RegisterRequest{Email: "other@example.com", Password: "123456"},
			wantErr: errorx.BadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := d.Register(ctx, tt.req)
			if tt.wantErr != 0 {
				require.True(t, errorx.Is(err, tt.wantErr), "got error %v", err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, "maria@example.com", resp.User.Email)
			require.Equal(t, "free", resp.User.Plan)
			require.Equal(t, "USER", resp.User.Role)

			token, err := xcontext.TokenEngine(ctx).Verify(resp.AccessToken)
			require.NoError(t, err)
			require.Equal(t, resp.User.ID, token.ID)
		})
	}
}

func Test_authDomain_Login(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.InsertUsers(ctx)
	d := NewAuthDomain(repository.NewUserRepository())

	resp, err := d.Login(ctx, &model.LoginRequest{Email: "user2@example.com", Password: testutil.Password})
	require.NoError(t, err)
	require.Equal(t, testutil.User2.ID, resp.User.ID)

	token, err := xcontext.TokenEngine(ctx).Verify(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "pro", token.Plan)

	_, err = d.Login(ctx, &model.LoginRequest{Email: "user2@example.com", Password: "wrong"})
	require.Equal(t, errorx.New(errorx.Unauthenticated, "Invalid email or password"), err)

	_, err = d.Login(ctx, &model.LoginRequest{Email: "nobody@example.com", Password: testutil.Password})
	require.Equal(t, errorx.New(errorx.Unauthenticated, "Invalid email or password"), err)

	me, err := d.GetMe(xcontext.WithRequestUserID(ctx, testutil.User1.ID), &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.Email, me.User.Email)
}
