package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"vigia/internal/screening"
	"vigia/pkg/platform/httputil"
	"vigia/pkg/requestcontext"
)

// Handler wires the screening endpoint to the verifier.
type Handler struct {
	verifier screening.Verifier
	logger   *slog.Logger
}

// New constructs a screening handler with its dependencies.
func New(verifier screening.Verifier, logger *slog.Logger) *Handler {
	return &Handler{
		verifier: verifier,
		logger:   logger,
	}
}

// Register mounts screening endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/screening/verify", h.HandleVerify)
}

// HandleVerify handles POST /screening/verify requests.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[VerifyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	combined, err := screening.VerifyParties(ctx, h.verifier,
		screening.PartyInput{Role: "seller", Identification: req.Seller.Identification, FullName: req.Seller.FullName},
		screening.PartyInput{Role: "buyer", Identification: req.Buyer.Identification, FullName: req.Buyer.FullName},
	)
	if err != nil {
		h.logger.ErrorContext(ctx, "party verification failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "parties verified",
		"request_id", requestID,
		"status", combined.Status,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromCombined(combined))
}
