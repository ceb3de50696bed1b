package domain

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/loterias-lab/backend/internal/common"
	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/internal/model"
	"github.com/loterias-lab/backend/internal/repository"
	"github.com/loterias-lab/backend/pkg/errorx"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const maxPlanDurationDays = 3650

var planFeatures = []model.PlanFeatures{
	{
		Plan: string(entity.PlanFree),
		Features: []string{
			"Latest results of every lottery",
			"Save and check picks",
			"Number frequency",
			"Random pick generator",
		},
	},
	{
		Plan: string(entity.PlanPro),
		Features: []string{
			"Everything in the free plan",
			"Results by sequence number and by drawn number",
			"Combination and number delay analysis",
			"Check all saved picks at once",
		},
	},
}

type PlanDomain interface {
	GetMyPlan(context.Context, *model.GetMyPlanRequest) (*model.GetMyPlanResponse, error)
	Upgrade(context.Context, *model.UpgradePlanRequest) (*model.UpgradePlanResponse, error)
	Downgrade(context.Context, *model.DowngradePlanRequest) (*model.DowngradePlanResponse, error)
	GetFeatures(context.Context, *model.GetPlanFeaturesRequest) (*model.GetPlanFeaturesResponse, error)
}

type planDomain struct {
	userRepo    repository.UserRepository
	planManager *common.PlanManager
}

func NewPlanDomain(userRepo repository.UserRepository, planManager *common.PlanManager) *planDomain {
	return &planDomain{userRepo: userRepo, planManager: planManager}
}

func (d *planDomain) getRequestUser(ctx context.Context) (*entity.User, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	return user, nil
}

func (d *planDomain) GetMyPlan(
	ctx context.Context, req *model.GetMyPlanRequest,
) (*model.GetMyPlanResponse, error) {
	user, err := d.getRequestUser(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	resp := &model.GetMyPlanResponse{
		Plan:          string(user.Plan),
		PlanExpiresAt: formatTime(user.PlanExpiresAt),
		Expired:       user.ProExpired(now),
	}

	if user.ActivePro(now) && user.PlanExpiresAt != nil {
		resp.DaysRemaining = int(math.Ceil(user.PlanExpiresAt.Sub(now).Hours() / 24))
	}

	return resp, nil
}

func (d *planDomain) Upgrade(
	ctx context.Context, req *model.UpgradePlanRequest,
) (*model.UpgradePlanResponse, error) {
	if req.DurationDays < 0 || req.DurationDays > maxPlanDurationDays {
		return nil, errorx.New(errorx.BadRequest, "Duration must be between 1 and %d days", maxPlanDurationDays)
	}

	user, err := d.getRequestUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := d.planManager.ActivatePro(ctx, user, req.DurationDays, entity.PlanChangeUpgrade, user.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upgrade plan: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpgradePlanResponse{
		Plan:          string(user.Plan),
		PlanExpiresAt: formatTime(user.PlanExpiresAt),
	}, nil
}

func (d *planDomain) Downgrade(
	ctx context.Context, req *model.DowngradePlanRequest,
) (*model.DowngradePlanResponse, error) {
	user, err := d.getRequestUser(ctx)
	if err != nil {
		return nil, err
	}

	if user.Plan == entity.PlanFree {
		return nil, errorx.New(errorx.BadRequest, "You are already on the free plan")
	}

	if err := d.planManager.Downgrade(ctx, user, entity.PlanChangeDowngrade, user.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot downgrade plan: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DowngradePlanResponse{Plan: string(user.Plan)}, nil
}

func (d *planDomain) GetFeatures(
	ctx context.Context, req *model.GetPlanFeaturesRequest,
) (*model.GetPlanFeaturesResponse, error) {
	return &model.GetPlanFeaturesResponse{Plans: planFeatures}, nil
}
