package middleware

import (
	"context"

	"github.com/loterias-lab/backend/internal/common"
	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/internal/repository"
	"github.com/loterias-lab/backend/pkg/router"
)

// OnlyAdmin guards the admin panel: dashboard, user plans and draw
// maintenance.
type OnlyAdmin struct {
	roleVerifier *common.RoleVerifier
}

func NewOnlyAdmin(userRepo repository.UserRepository) *OnlyAdmin {
	return &OnlyAdmin{roleVerifier: common.NewRoleVerifier(userRepo)}
}

func (a *OnlyAdmin) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if _, err := a.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
			return nil, err
		}

		return nil, nil
	}
}
