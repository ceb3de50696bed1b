package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/internal/model"
	"github.com/loterias-lab/backend/internal/repository"
	"github.com/loterias-lab/backend/pkg/errorx"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const maxGroupNameLength = 128

type GroupDomain interface {
	GetList(context.Context, *model.GetListGroupRequest) (*model.GetListGroupResponse, error)
	Create(context.Context, *model.CreateGroupRequest) (*model.CreateGroupResponse, error)
	Rename(context.Context, *model.RenameGroupRequest) (*model.RenameGroupResponse, error)
	Delete(context.Context, *model.DeleteGroupRequest) (*model.DeleteGroupResponse, error)
}

type groupDomain struct {
	groupRepo repository.PickGroupRepository
	pickRepo  repository.PickRepository
}

func NewGroupDomain(
	groupRepo repository.PickGroupRepository,
	pickRepo repository.PickRepository,
) *groupDomain {
	return &groupDomain{groupRepo: groupRepo, pickRepo: pickRepo}
}

func (d *groupDomain) GetList(
	ctx context.Context, req *model.GetListGroupRequest,
) (*model.GetListGroupResponse, error) {
	var gameType entity.GameType
	if req.GameType != "" {
		var err error
		gameType, err = parseGameType(req.GameType)
		if err != nil {
			return nil, err
		}
	}

	groups, err := d.groupRepo.GetList(ctx, xcontext.RequestUserID(ctx), gameType)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of groups: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.PickGroup{}
	for i := range groups {
		result = append(result, convertPickGroup(&groups[i]))
	}

	return &model.GetListGroupResponse{Groups: result}, nil
}

func (d *groupDomain) Create(
	ctx context.Context, req *model.CreateGroupRequest,
) (*model.CreateGroupResponse, error) {
	gameType, err := parseGameType(req.GameType)
	if err != nil {
		return nil, err
	}

	name, err := checkGroupName(req.Name)
	if err != nil {
		return nil, err
	}

	group := &entity.PickGroup{
		Base:     entity.Base{ID: uuid.NewString()},
		UserID:   xcontext.RequestUserID(ctx),
		GameType: gameType,
		Name:     name,
	}

	if err := d.groupRepo.Create(ctx, group); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.AlreadyExists, "Group %s already exists", name)
		}

		xcontext.Logger(ctx).Errorf("Cannot create group: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateGroupResponse{Group: convertPickGroup(group)}, nil
}

// Rename also moves every pick labeled with the old name to the new one.
func (d *groupDomain) Rename(
	ctx context.Context, req *model.RenameGroupRequest,
) (*model.RenameGroupResponse, error) {
	name, err := checkGroupName(req.Name)
	if err != nil {
		return nil, err
	}

	group, err := d.getOwnedGroup(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if group.Name == name {
		return &model.RenameGroupResponse{}, nil
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.groupRepo.Rename(ctx, group.ID, name); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.AlreadyExists, "Group %s already exists", name)
		}

		xcontext.Logger(ctx).Errorf("Cannot rename group: %v", err)
		return nil, errorx.Unknown
	}

	err = d.pickRepo.RenameLabel(ctx, group.UserID, group.GameType, group.Name, name)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot relabel picks: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.RenameGroupResponse{}, nil
}

// Delete keeps the picks of the group, they get the default label back.
func (d *groupDomain) Delete(
	ctx context.Context, req *model.DeleteGroupRequest,
) (*model.DeleteGroupResponse, error) {
	group, err := d.getOwnedGroup(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.groupRepo.Delete(ctx, group.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete group: %v", err)
		return nil, errorx.Unknown
	}

	err = d.pickRepo.RenameLabel(
		ctx, group.UserID, group.GameType, group.Name, defaultPickLabel(group.GameType))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot reset label of picks: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.DeleteGroupResponse{}, nil
}

func (d *groupDomain) getOwnedGroup(ctx context.Context, id string) (*entity.PickGroup, error) {
	group, err := d.groupRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return nil, errorx.Unknown
	}

	if group.UserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.NotFound, "Not found group")
	}

	return group, nil
}

func checkGroupName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errorx.New(errorx.BadRequest, "Group name is required")
	}

	if len(name) > maxGroupNameLength {
		return "", errorx.New(errorx.BadRequest, "Group name is too long")
	}

	return name, nil
}
