package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vigia/internal/alert"
	id "vigia/pkg/domain"
	dErrors "vigia/pkg/domain-errors"
	"vigia/pkg/platform/httputil"
	"vigia/pkg/requestcontext"
)

// Service defines the interface for alert review operations.
type Service interface {
	Review(ctx context.Context, input alert.ReviewInput) (alert.Alert, error)
	ListPending(ctx context.Context, notaryID id.NotaryID) ([]alert.Alert, error)
}

// Handler wires alert endpoints to the review service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an alert handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts alert endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/alerts/pending", h.HandleListPending)
	r.Post("/alerts/{id}/review", h.HandleReview)
}

// HandleListPending handles GET /alerts/pending requests.
func (h *Handler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := r.URL.Query().Get("notary_id")
	notaryID := requestcontext.NotaryID(ctx)
	if raw != "" {
		parsed, err := id.ParseNotaryID(raw)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		notaryID = parsed
	}
	if notaryID.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "notary_id is required"))
		return
	}

	alerts, err := h.service.ListPending(ctx, notaryID)
	if err != nil {
		h.logger.ErrorContext(ctx, "pending alert listing failed",
			"request_id", requestcontext.RequestID(ctx),
			"notary_id", notaryID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromAlerts(alerts))
}

// HandleReview handles POST /alerts/{id}/review requests.
func (h *Handler) HandleReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	reviewerID := requestcontext.UserID(ctx)
	if reviewerID.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	alertID, err := id.ParseAlertID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[ReviewRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	reviewed, err := h.service.Review(ctx, alert.ReviewInput{
		AlertID:    alertID,
		ReviewerID: reviewerID,
		Target:     req.ParsedState(),
		Comment:    req.Comment,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "alert review failed",
			"request_id", requestID,
			"alert_id", alertID,
			"reviewer_id", reviewerID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "alert review applied",
		"request_id", requestID,
		"alert_id", alertID,
		"state", reviewed.State,
	)

	httputil.WriteJSON(w, http.StatusOK, reviewed)
}
