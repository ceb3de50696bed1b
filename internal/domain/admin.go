package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/loterias-lab/backend/internal/common"
	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/internal/model"
	"github.com/loterias-lab/backend/internal/repository"
	"github.com/loterias-lab/backend/pkg/enum"
	"github.com/loterias-lab/backend/pkg/errorx"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type AdminDomain interface {
	GetDashboard(context.Context, *model.GetDashboardRequest) (*model.GetDashboardResponse, error)
	GetListUser(context.Context, *model.GetListUserRequest) (*model.GetListUserResponse, error)
	GetUser(context.Context, *model.GetUserRequest) (*model.GetUserResponse, error)
	ActivatePro(context.Context, *model.ActivateProRequest) (*model.ActivateProResponse, error)
	DeactivatePro(context.Context, *model.DeactivateProRequest) (*model.DeactivateProResponse, error)
	GetPlanHistory(context.Context, *model.GetPlanHistoryRequest) (*model.GetPlanHistoryResponse, error)
}

type adminDomain struct {
	userRepo        repository.UserRepository
	planHistoryRepo repository.PlanHistoryRepository
	pickRepo        repository.PickRepository
	drawRepo        repository.DrawRepository
	planManager     *common.PlanManager
}

func NewAdminDomain(
	userRepo repository.UserRepository,
	planHistoryRepo repository.PlanHistoryRepository,
	pickRepo repository.PickRepository,
	drawRepo repository.DrawRepository,
	planManager *common.PlanManager,
) *adminDomain {
	return &adminDomain{
		userRepo:        userRepo,
		planHistoryRepo: planHistoryRepo,
		pickRepo:        pickRepo,
		drawRepo:        drawRepo,
		planManager:     planManager,
	}
}

func (d *adminDomain) GetDashboard(
	ctx context.Context, req *model.GetDashboardRequest,
) (*model.GetDashboardResponse, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	resp := &model.GetDashboardResponse{}
	counters := []struct {
		name  string
		value *int64
		count func() (int64, error)
	}{
		{"users", &resp.TotalUsers, func() (int64, error) {
			return d.userRepo.Count(ctx, repository.SearchUserFilter{Now: now})
		}},
		{"free users", &resp.TotalFree, func() (int64, error) {
			return d.userRepo.Count(ctx, repository.SearchUserFilter{Status: "free", Now: now})
		}},
		{"active pro users", &resp.TotalProActive, func() (int64, error) {
			return d.userRepo.Count(ctx, repository.SearchUserFilter{Status: "active", Now: now})
		}},
		{"expired pro users", &resp.TotalProExpired, func() (int64, error) {
			return d.userRepo.Count(ctx, repository.SearchUserFilter{Status: "expired", Now: now})
		}},
		{"expiring pro users", &resp.ExpiringIn7Days, func() (int64, error) {
			return d.userRepo.CountExpiringPro(ctx, now, now.AddDate(0, 0, 7))
		}},
		{"upgrades of today", &resp.UpgradesToday, func() (int64, error) {
			return d.planHistoryRepo.CountByReasonSince(ctx, entity.PlanChangeUpgrade, startOfDay)
		}},
		{"upgrades of this month", &resp.UpgradesThisMonth, func() (int64, error) {
			return d.planHistoryRepo.CountByReasonSince(ctx, entity.PlanChangeUpgrade, startOfMonth)
		}},
		{"picks", &resp.TotalPicks, func() (int64, error) {
			return d.pickRepo.Count(ctx, repository.PickFilter{})
		}},
		{"draws", &resp.TotalDraws, func() (int64, error) {
			return d.drawRepo.Count(ctx, "")
		}},
	}

	for _, c := range counters {
		value, err := c.count()
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot count %s: %v", c.name, err)
			return nil, errorx.Unknown
		}
		*c.value = value
	}

	return resp, nil
}

func (d *adminDomain) GetListUser(
	ctx context.Context, req *model.GetListUserRequest,
) (*model.GetListUserResponse, error) {
	filter := repository.SearchUserFilter{
		Search: strings.TrimSpace(req.Search),
		Now:    time.Now(),
		Offset: req.Offset,
	}

	if req.Plan != "" {
		plan, err := enum.ToEnum[entity.Plan](req.Plan)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid plan %s", req.Plan)
		}
		filter.Plan = plan
	}

	switch req.Status {
	case "", "active", "expired", "free":
		filter.Status = req.Status
	default:
		return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
	}

	limit, err := checkLimit(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}
	filter.Limit = limit

	users, err := d.userRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of users: %v", err)
		return nil, errorx.Unknown
	}

	total, err := d.userRepo.Count(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count users: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.User{}
	for i := range users {
		result = append(result, convertUser(&users[i]))
	}

	return &model.GetListUserResponse{Users: result, Total: total}, nil
}

func (d *adminDomain) GetUser(ctx context.Context, req *model.GetUserRequest) (*model.GetUserResponse, error) {
	user, err := d.getUser(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	totalPicks, err := d.pickRepo.Count(ctx, repository.PickFilter{UserID: user.ID})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count picks of user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetUserResponse{User: convertUser(user), TotalPicks: totalPicks}, nil
}

func (d *adminDomain) ActivatePro(
	ctx context.Context, req *model.ActivateProRequest,
) (*model.ActivateProResponse, error) {
	if req.DurationDays < 0 || req.DurationDays > maxPlanDurationDays {
		return nil, errorx.New(errorx.BadRequest, "Duration must be between 1 and %d days", maxPlanDurationDays)
	}

	user, err := d.getUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	err = d.planManager.ActivatePro(
		ctx, user, req.DurationDays, entity.PlanChangeAdmin, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot activate pro plan: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ActivateProResponse{User: convertUser(user)}, nil
}

func (d *adminDomain) DeactivatePro(
	ctx context.Context, req *model.DeactivateProRequest,
) (*model.DeactivateProResponse, error) {
	user, err := d.getUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if user.Plan != entity.PlanPro {
		return nil, errorx.New(errorx.BadRequest, "User is not on the pro plan")
	}

	err = d.planManager.Downgrade(ctx, user, entity.PlanChangeAdmin, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot deactivate pro plan: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeactivateProResponse{User: convertUser(user)}, nil
}

func (d *adminDomain) GetPlanHistory(
	ctx context.Context, req *model.GetPlanHistoryRequest,
) (*model.GetPlanHistoryResponse, error) {
	limit, err := checkLimit(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	histories, err := d.planHistoryRepo.GetList(ctx, req.UserID, req.Offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get plan history: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.PlanHistory{}
	for i := range histories {
		result = append(result, convertPlanHistory(&histories[i]))
	}

	return &model.GetPlanHistoryResponse{History: result}, nil
}

func (d *adminDomain) getUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := d.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	return user, nil
}
