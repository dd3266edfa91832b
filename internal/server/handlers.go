package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/jobmatch/internal/engine"
)

// JobSetRequest is the optional request body for rank and improvement
// endpoints. An empty or absent body means "all known jobs" for the
// candidate, subject to the configured cap.
type JobSetRequest struct {
	JobIDs []uuid.UUID `json:"job_ids,omitempty" validate:"max=100"`
}

// IncompleteProfileResponse carries both the corrective message and the
// dedicated error match result, so callers can render the block.
type IncompleteProfileResponse struct {
	Error  string `json:"error"`
	Result any    `json:"result,omitempty"`
}

// handleMatch scores one candidate against one job.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	candidateID, jobID, ok := s.pathIDs(w, r)
	if !ok {
		return
	}

	result, err := s.engine.ComputeMatch(r.Context(), candidateID, jobID)
	if err != nil {
		var incomplete *engine.IncompleteProfileError
		if errors.As(err, &incomplete) {
			s.jsonResponse(w, HTTPStatus(err), IncompleteProfileResponse{Error: err.Error(), Result: result})
			return
		}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGaps returns the enriched gap analysis for one candidate/job pair.
func (s *Server) handleGaps(w http.ResponseWriter, r *http.Request) {
	candidateID, jobID, ok := s.pathIDs(w, r)
	if !ok {
		return
	}

	analysis, err := s.engine.ComputeGaps(r.Context(), candidateID, jobID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleRank ranks a set of jobs (or all known jobs) for the candidate.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := s.candidateID(w, r)
	if !ok {
		return
	}
	req, ok := s.decodeJobSet(w, r)
	if !ok {
		return
	}

	ranked, err := s.engine.RankJobs(r.Context(), candidateID, req.JobIDs)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ranked)
}

// handleImprovements aggregates improvement recommendations across the
// candidate's top-ranked jobs.
func (s *Server) handleImprovements(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := s.candidateID(w, r)
	if !ok {
		return
	}
	req, ok := s.decodeJobSet(w, r)
	if !ok {
		return
	}

	improvements, err := s.engine.RecommendImprovements(r.Context(), candidateID, req.JobIDs)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, improvements)
}

// pathIDs extracts and parses the candidate and job ids from the path.
func (s *Server) pathIDs(w http.ResponseWriter, r *http.Request) (candidateID, jobID uuid.UUID, ok bool) {
	candidateID, ok = s.candidateID(w, r)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	jobID, err := uuid.Parse(r.PathValue("job_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job id")
		return uuid.Nil, uuid.Nil, false
	}
	return candidateID, jobID, true
}

func (s *Server) candidateID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	candidateID, err := uuid.Parse(r.PathValue("candidate_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid candidate id")
		return uuid.Nil, false
	}
	return candidateID, true
}

// decodeJobSet parses the optional job-set body and validates it.
func (s *Server) decodeJobSet(w http.ResponseWriter, r *http.Request) (JobSetRequest, bool) {
	var req JobSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return JobSetRequest{}, false
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, (&ErrValidation{Field: "job_ids", Message: "at most 100 job ids per request"}).Error())
		return JobSetRequest{}, false
	}
	return req, true
}
