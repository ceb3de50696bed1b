package common

import (
	"context"
	"errors"

	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/internal/repository"
	"github.com/loterias-lab/backend/pkg/errorx"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type RoleVerifier struct {
	userRepo repository.UserRepository
}

func NewRoleVerifier(userRepo repository.UserRepository) *RoleVerifier {
	return &RoleVerifier{userRepo: userRepo}
}

// Verify loads the requesting user and checks that it holds one of roles. A
// token of a deleted user is Unauthenticated, a known user without the role
// is PermissionDenied.
func (v *RoleVerifier) Verify(ctx context.Context, roles ...entity.GlobalRole) (*entity.User, error) {
	user, err := v.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "User not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	if !slices.Contains(roles, user.Role) {
		return nil, errorx.New(errorx.PermissionDenied, "Role %s cannot access this feature", user.Role)
	}

	return user, nil
}
