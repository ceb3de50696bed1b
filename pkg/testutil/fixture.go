package testutil

import (
	"context"
	"time"

	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/internal/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const Password = "password123"

var (
	now = time.Now()

	// Users
	User1 = &entity.User{
		Base:  entity.Base{ID: "user1"},
		Name:  "User 1",
		Email: "user1@example.com",
		Role:  entity.RoleUser,
		Plan:  entity.PlanFree,
	}

	User2 = &entity.User{
		Base:          entity.Base{ID: "user2"},
		Name:          "User 2",
		Email:         "user2@example.com",
		Role:          entity.RoleUser,
		Plan:          entity.PlanPro,
		PlanExpiresAt: timePtr(now.AddDate(0, 0, 5)),
	}

	User3 = &entity.User{
		Base:          entity.Base{ID: "user3"},
		Name:          "User 3",
		Email:         "user3@example.com",
		Role:          entity.RoleUser,
		Plan:          entity.PlanPro,
		PlanExpiresAt: timePtr(now.AddDate(0, 0, -1)),
	}

	Admin = &entity.User{
		Base:  entity.Base{ID: "admin"},
		Name:  "Admin",
		Email: "admin@example.com",
		Role:  entity.RoleAdmin,
		Plan:  entity.PlanFree,
	}

	Users = []*entity.User{User1, User2, User3, Admin}

	// Draws
	MegaSenaDraw1 = &entity.Draw{
		Base:           entity.Base{ID: "megasena1"},
		GameType:       entity.MegaSena,
		SequenceNumber: 1,
		DrawDate:       now.AddDate(0, 0, -7),
		Numbers:        entity.Array[int]{1, 2, 3, 4, 5, 6},
	}

	MegaSenaDraw2 = &entity.Draw{
		Base:           entity.Base{ID: "megasena2"},
		GameType:       entity.MegaSena,
		SequenceNumber: 2,
		DrawDate:       now.AddDate(0, 0, -4),
		Numbers:        entity.Array[int]{7, 8, 9, 10, 11, 12},
	}

	MegaSenaDraw3 = &entity.Draw{
		Base:               entity.Base{ID: "megasena3"},
		GameType:           entity.MegaSena,
		SequenceNumber:     3,
		DrawDate:           now.AddDate(0, 0, -1),
		Numbers:            entity.Array[int]{1, 2, 3, 10, 20, 30},
		Accumulated:        true,
		AccumulatedAmount:  decimal.RequireFromString("1500000.50"),
		EstimatedNextPrize: decimal.RequireFromString("3000000"),
	}

	DuplaSenaDraw1 = &entity.Draw{
		Base:             entity.Base{ID: "duplasena1"},
		GameType:         entity.DuplaSena,
		SequenceNumber:   100,
		DrawDate:         now.AddDate(0, 0, -2),
		Numbers:          entity.Array[int]{1, 2, 3, 4, 5, 6},
		SecondaryNumbers: entity.Array[int]{5, 6, 7, 8, 9, 10},
	}

	Draws = []*entity.Draw{MegaSenaDraw1, MegaSenaDraw2, MegaSenaDraw3, DuplaSenaDraw1}

	// Picks
	Pick1 = &entity.SavedPick{
		Base:     entity.Base{ID: "pick1", CreatedAt: now.Add(-3 * time.Hour)},
		UserID:   User1.ID,
		GameType: entity.MegaSena,
		Numbers:  entity.Array[int]{1, 2, 3, 10, 40, 50},
		Label:    "Bolão",
	}

	Pick2 = &entity.SavedPick{
		Base:     entity.Base{ID: "pick2", CreatedAt: now.Add(-2 * time.Hour)},
		UserID:   User1.ID,
		GameType: entity.Quina,
		Numbers:  entity.Array[int]{1, 2, 3, 4, 5},
		Label:    "Jogo Quina",
	}

	Pick3 = &entity.SavedPick{
		Base:     entity.Base{ID: "pick3", CreatedAt: now.Add(-1 * time.Hour)},
		UserID:   User1.ID,
		GameType: entity.DuplaSena,
		Numbers:  entity.Array[int]{1, 2, 6, 7, 8, 40},
		Label:    "Jogo Dupla Sena",
		Favorite: true,
	}

	Pick4 = &entity.SavedPick{
		Base:     entity.Base{ID: "pick4", CreatedAt: now},
		UserID:   User2.ID,
		GameType: entity.MegaSena,
		Numbers:  entity.Array[int]{11, 12, 13, 14, 15, 16},
		Label:    "Jogo Mega-Sena",
	}

	Picks = []*entity.SavedPick{Pick1, Pick2, Pick3, Pick4}

	// Groups
	Group1 = &entity.PickGroup{
		Base:     entity.Base{ID: "group1"},
		UserID:   User1.ID,
		GameType: entity.MegaSena,
		Name:     "Bolão",
	}
)

func CreateFixtureDb(ctx context.Context) {
	InsertUsers(ctx)
	InsertDraws(ctx)
	InsertPicks(ctx)
	InsertGroups(ctx)
}

func InsertUsers(ctx context.Context) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}

	userRepo := repository.NewUserRepository()
	for _, u := range Users {
		u.Password = string(hashed)
		if err := userRepo.Create(ctx, u); err != nil {
			panic(err)
		}
	}
}

func InsertDraws(ctx context.Context) {
	drawRepo := repository.NewDrawRepository()
	for _, d := range Draws {
		if err := drawRepo.Create(ctx, d); err != nil {
			panic(err)
		}
	}
}

func InsertPicks(ctx context.Context) {
	pickRepo := repository.NewPickRepository()
	for _, p := range Picks {
		if err := pickRepo.Create(ctx, p); err != nil {
			panic(err)
		}
	}
}

func InsertGroups(ctx context.Context) {
	if err := repository.NewPickGroupRepository().Create(ctx, Group1); err != nil {
		panic(err)
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
