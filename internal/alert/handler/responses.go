package handler

import (
	"vigia/internal/alert"
)

// ListResponse is the HTTP response body for GET /alerts/pending.
type ListResponse struct {
	Alerts []alert.Alert `json:"alerts"`
	Count  int           `json:"count"`
}

// FromAlerts maps stored alerts to the list response shape.
func FromAlerts(alerts []alert.Alert) ListResponse {
	if alerts == nil {
		alerts = []alert.Alert{}
	}
	return ListResponse{Alerts: alerts, Count: len(alerts)}
}
