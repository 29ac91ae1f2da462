package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"vigia/internal/operation"
	"vigia/internal/risk"
	id "vigia/pkg/domain"
	"vigia/pkg/platform/httputil"
	"vigia/pkg/requestcontext"
)

// Service defines the interface for operation intake and evaluation.
type Service interface {
	Create(ctx context.Context, input operation.CreateInput) (operation.Operation, error)
	Preview(ctx context.Context, input risk.Input) (risk.Assessment, error)
	Evaluate(ctx context.Context, operationID id.OperationID) (*operation.EvaluateResult, error)
}

// Handler wires operation endpoints to the intake service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an operation handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts operation endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/operations", h.HandleCreate)
	r.Post("/operations/preview", h.HandlePreview)
	r.Post("/operations/{id}/evaluate", h.HandleEvaluate)
}

// HandleCreate handles POST /operations requests.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	op, err := h.service.Create(ctx, req.ParsedInput())
	if err != nil {
		h.logger.ErrorContext(ctx, "operation intake failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, op)
}

// HandlePreview handles POST /operations/preview requests.
func (h *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[PreviewRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	assessment, err := h.service.Preview(ctx, req.ParsedInput())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, assessment)
}

// HandleEvaluate handles POST /operations/{id}/evaluate requests.
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	operationID, err := id.ParseOperationID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.Evaluate(ctx, operationID)
	if err != nil {
		h.logger.ErrorContext(ctx, "operation evaluation failed",
			"request_id", requestID,
			"operation_id", operationID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "operation evaluated",
		"request_id", requestID,
		"operation_id", operationID,
		"score", result.Assessment.Score,
		"level", result.Assessment.Level,
		"alerts_created", len(result.Alerts),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, result)
}
