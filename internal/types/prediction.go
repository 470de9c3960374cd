// Package types provides type definitions for structured data used throughout the ML service.
package types

import "encoding/json"

// PredictionRequest represents the body of a salary prediction request.
// Skills is optional and defaults to an empty list when the field is missing
// or null. Elements stay raw JSON on purpose: only the count feeds the
// estimate, so element content is never parsed.
type PredictionRequest struct {
	Skills []json.RawMessage `json:"skills,omitempty"`
}

// SkillCount returns the number of entries in the skills list. A missing or
// null skills field counts as zero.
func (r *PredictionRequest) SkillCount() int {
	return len(r.Skills)
}

// PredictionResponse represents the body of a salary prediction response.
type PredictionResponse struct {
	PredictedSalary int `json:"predicted_salary"`
}

// StatusResponse represents the root endpoint acknowledgement payload.
type StatusResponse struct {
	Message string `json:"message"`
}
