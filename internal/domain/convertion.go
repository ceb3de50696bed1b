package domain

import (
	"time"

	"github.com/loterias-lab/backend/internal/domain/lottery"
	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/internal/model"
)

const defaultTimeLayout string = time.RFC3339Nano

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}

	return t.Format(defaultTimeLayout)
}

func convertUser(user *entity.User) model.User {
	if user == nil {
		return model.User{}
	}

	return model.User{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Role:          string(user.Role),
		Plan:          string(user.Plan),
		PlanExpiresAt: formatTime(user.PlanExpiresAt),
		CreatedAt:     formatTime(&user.CreatedAt),
	}
}

func convertDraw(draw *entity.Draw) model.Draw {
	if draw == nil {
		return model.Draw{}
	}

	return model.Draw{
		GameType:           string(draw.GameType),
		SequenceNumber:     draw.SequenceNumber,
		DrawDate:           draw.DrawDate.Format(time.DateOnly),
		Numbers:            draw.Numbers,
		SecondaryNumbers:   draw.SecondaryNumbers,
		Clovers:            draw.Clovers,
		ExtraField:         draw.ExtraField,
		Accumulated:        draw.Accumulated,
		AccumulatedAmount:  draw.AccumulatedAmount.StringFixed(2),
		EstimatedNextPrize: draw.EstimatedNextPrize.StringFixed(2),
		NextDrawDate:       formatTime(draw.NextDrawDate),
	}
}

func convertPick(pick *entity.SavedPick) model.Pick {
	if pick == nil {
		return model.Pick{}
	}

	return model.Pick{
		ID:                  pick.ID,
		GameType:            string(pick.GameType),
		Numbers:             pick.Numbers,
		Clovers:             pick.Clovers,
		LuckyMonth:          pick.LuckyMonth,
		FavoriteTeam:        pick.FavoriteTeam,
		Label:               pick.Label,
		Notes:               pick.Notes,
		Favorite:            pick.Favorite,
		Checked:             pick.Checked,
		LastMatchCount:      pick.LastMatchCount,
		LastCheckedSequence: pick.LastCheckedSequence,
		IsPrizeWorthy:       pick.IsPrizeWorthy,
		CreatedAt:           formatTime(&pick.CreatedAt),
	}
}

func convertPickGroup(group *entity.PickGroup) model.PickGroup {
	return model.PickGroup{
		ID:        group.ID,
		GameType:  string(group.GameType),
		Name:      group.Name,
		CreatedAt: formatTime(&group.CreatedAt),
	}
}

func convertMatchRecord(record *entity.MatchRecord) model.MatchRecord {
	return model.MatchRecord{
		SequenceNumber: record.SequenceNumber,
		MatchCount:     record.MatchCount,
		IsPrizeWorthy:  record.IsPrizeWorthy,
		CheckedAt:      formatTime(&record.CreatedAt),
	}
}

func convertPlanHistory(history *entity.PlanHistory) model.PlanHistory {
	return model.PlanHistory{
		ID:           history.ID,
		UserID:       history.UserID,
		UserName:     history.User.Name,
		UserEmail:    history.User.Email,
		PreviousPlan: string(history.PreviousPlan),
		NewPlan:      string(history.NewPlan),
		Reason:       string(history.Reason),
		ChangedBy:    history.ChangedBy,
		ExpiresAt:    formatTime(history.ExpiresAt),
		CreatedAt:    formatTime(&history.CreatedAt),
	}
}

func convertAnalysisResult(result lottery.AnalysisResult) model.AnalysisResult {
	return model.AnalysisResult{
		Numbers:              result.Numbers,
		Occurrences:          result.Occurrences,
		OccurrencePercentage: result.OccurrencePercentage,
		CurrentDelay:         result.CurrentDelay,
		MaxDelay:             result.MaxDelay,
		MaxStreak:            result.MaxStreak,
	}
}
