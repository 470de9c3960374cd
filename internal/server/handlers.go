package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/career-coach-ml/internal/types"
)

// serviceStatusMessage is the banner returned by the root status endpoint.
// Dashboards and the frontend health widget match on it verbatim.
const serviceStatusMessage = "ML Service is running!"

// handleRoot reports that the service is up
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, types.StatusResponse{Message: serviceStatusMessage})
}

// handlePredictSalary estimates a salary from the skills in the request body
func (s *Server) handlePredictSalary(w http.ResponseWriter, r *http.Request) {
	var req types.PredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		bodyErr := &ErrMalformedBody{Reason: err.Error()}
		s.errorResponse(w, HTTPStatus(bodyErr), bodyErr.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.estimator.EstimateRequest(&req))
}
