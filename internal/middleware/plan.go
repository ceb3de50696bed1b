package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/loterias-lab/backend/internal/common"
	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/internal/repository"
	"github.com/loterias-lab/backend/pkg/errorx"
	"github.com/loterias-lab/backend/pkg/router"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type PlanVerifier struct {
	userRepo    repository.UserRepository
	planManager *common.PlanManager
}

func NewPlanVerifier(userRepo repository.UserRepository, planManager *common.PlanManager) *PlanVerifier {
	return &PlanVerifier{userRepo: userRepo, planManager: planManager}
}

// RequirePro rejects users without an active pro plan. An expired pro plan is
// downgraded on the fly before the request is rejected.
func (v *PlanVerifier) RequirePro() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		user, err := v.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.Unauthenticated, "User not found")
			}

			xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
			return nil, errorx.Unknown
		}

		now := time.Now()
		if user.ProExpired(now) {
			if err := v.planManager.Downgrade(ctx, user, entity.PlanChangeExpired, ""); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot downgrade expired user %s: %v", user.ID, err)
			}

			return nil, errorx.New(errorx.PlanExpired, "Your pro plan has expired, renew it to keep using this feature")
		}

		if !user.ActivePro(now) {
			return nil, errorx.New(errorx.UpgradeRequired, "This feature is only available on the pro plan")
		}

		return nil, nil
	}
}
