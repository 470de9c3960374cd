// Package salary provides the placeholder salary estimator for the ML service.
package salary

import (
	"github.com/jonathan/career-coach-ml/internal/types"
)

const (
	// BaseSalary is the starting estimate in USD before any skill bonus.
	BaseSalary = 50000
	// SkillBonus is the flat USD increment added per listed skill.
	SkillBonus = 1000
)

// Estimator computes placeholder salary estimates. The formula is a stand-in
// for a trained model and must stay exactly base + bonus per skill until a
// real model replaces it.
type Estimator struct{}

// NewEstimator returns an Estimator using the fixed placeholder parameters.
func NewEstimator() *Estimator {
	return &Estimator{}
}

// Estimate returns the salary estimate for the given number of listed skills.
// Only the count matters; callers never hand over skill content.
func (e *Estimator) Estimate(skillCount int) int {
	return BaseSalary + SkillBonus*skillCount
}

// EstimateRequest computes the prediction response for a decoded request.
func (e *Estimator) EstimateRequest(req *types.PredictionRequest) *types.PredictionResponse {
	return &types.PredictionResponse{
		PredictedSalary: e.Estimate(req.SkillCount()),
	}
}
