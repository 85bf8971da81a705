package dto

import (
	"time"

	"contractor-service/internal/core/domain"
)

type AchievementResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Points      int     `json:"points"`
	Earned      bool    `json:"earned"`
	EarnedAt    *string `json:"earned_at,omitempty"`
}

type ListAchievementsResponse struct {
	Items []AchievementResponse `json:"items"`
}

func ToAchievementResponse(s domain.AchievementStatus) AchievementResponse {
	resp := AchievementResponse{
		Code:        string(s.Code),
		Name:        s.Name,
		Description: s.Description,
		Points:      s.Points,
		Earned:      s.Earned,
	}
	if s.EarnedAt != nil {
		earned := s.EarnedAt.Format(time.RFC3339)
		resp.EarnedAt = &earned
	}
	return resp
}
