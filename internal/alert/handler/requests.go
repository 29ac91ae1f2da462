package handler

import (
	"strings"

	"vigia/internal/alert"
	dErrors "vigia/pkg/domain-errors"
)

// ReviewRequest is the HTTP request body for POST /alerts/{id}/review.
type ReviewRequest struct {
	State   string `json:"state"`
	Comment string `json:"comment"`

	parsedState alert.State
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *ReviewRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.State = strings.TrimSpace(r.State)
	if r.State == "" {
		return dErrors.New(dErrors.CodeValidation, "state is required")
	}
	state, err := alert.ParseState(r.State)
	if err != nil {
		return err
	}
	if state == alert.StatePending {
		return dErrors.New(dErrors.CodeValidation, "alerts cannot be moved back to PENDING")
	}
	r.parsedState = state

	r.Comment = strings.TrimSpace(r.Comment)
	if len(r.Comment) > 2000 {
		return dErrors.New(dErrors.CodeValidation, "comment must be at most 2000 characters")
	}
	return nil
}

// ParsedState returns the validated target state.
func (r *ReviewRequest) ParsedState() alert.State {
	return r.parsedState
}
