package handler

import (
	"vigia/internal/screening"
)

// VerifyResponse is the HTTP response body for POST /screening/verify.
type VerifyResponse struct {
	Status  screening.Status                   `json:"status"`
	Sources map[string]screening.SourceVerdict `json:"sources"`
	Seller  screening.PartyReport              `json:"seller"`
	Buyer   screening.PartyReport              `json:"buyer"`
}

// FromCombined maps a combined report to the response shape.
func FromCombined(report screening.CombinedReport) VerifyResponse {
	return VerifyResponse{
		Status:  report.Status,
		Sources: report.Sources,
		Seller:  report.Seller,
		Buyer:   report.Buyer,
	}
}
