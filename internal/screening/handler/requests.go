package handler

import (
	"strings"

	dErrors "vigia/pkg/domain-errors"
)

// PartyPayload is one person in a verification request.
type PartyPayload struct {
	Identification string `json:"identification"`
	FullName       string `json:"full_name"`
}

// VerifyRequest is the HTTP request body for POST /screening/verify.
type VerifyRequest struct {
	Seller PartyPayload `json:"seller"`
	Buyer  PartyPayload `json:"buyer"`
}

// Validate validates and normalizes the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *VerifyRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if err := validateParty("seller", &r.Seller); err != nil {
		return err
	}
	return validateParty("buyer", &r.Buyer)
}

func validateParty(role string, p *PartyPayload) error {
	p.Identification = strings.TrimSpace(p.Identification)
	p.FullName = strings.TrimSpace(p.FullName)

	if p.Identification == "" {
		return dErrors.New(dErrors.CodeValidation, role+".identification is required")
	}
	if len(p.Identification) > 20 {
		return dErrors.New(dErrors.CodeValidation, role+".identification must be at most 20 characters")
	}
	if p.FullName == "" {
		return dErrors.New(dErrors.CodeValidation, role+".full_name is required")
	}
	if len(p.FullName) > 200 {
		return dErrors.New(dErrors.CodeValidation, role+".full_name must be at most 200 characters")
	}
	return nil
}
