package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigia/internal/alert"
	id "vigia/pkg/domain"
	dErrors "vigia/pkg/domain-errors"
	"vigia/pkg/requestcontext"
)

type stubService struct {
	reviewFn func(ctx context.Context, input alert.ReviewInput) (alert.Alert, error)
	listFn   func(ctx context.Context, notaryID id.NotaryID) ([]alert.Alert, error)
}

func (s *stubService) Review(ctx context.Context, input alert.ReviewInput) (alert.Alert, error) {
	return s.reviewFn(ctx, input)
}

func (s *stubService) ListPending(ctx context.Context, notaryID id.NotaryID) ([]alert.Alert, error) {
	return s.listFn(ctx, notaryID)
}

func newTestRouter(service Service) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	New(service, logger).Register(r)
	return r
}

func TestHandleListPending(t *testing.T) {
	notaryID := id.NewNotaryID()
	service := &stubService{
		listFn: func(_ context.Context, got id.NotaryID) ([]alert.Alert, error) {
			if got != notaryID {
				return nil, nil
			}
			return []alert.Alert{{
				ID:       id.NewAlertID(),
				NotaryID: notaryID,
				Kind:     alert.KindCashLimitBreach,
				Severity: alert.SeverityCritical,
				State:    alert.StatePending,
			}}, nil
		},
	}
	router := newTestRouter(service)

	t.Run("returns alerts for the requested office", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/alerts/pending?notary_id="+notaryID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, float64(1), resp["count"])
	})

	t.Run("falls back to the authenticated office", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/alerts/pending", nil)
		req = req.WithContext(requestcontext.WithNotaryID(req.Context(), notaryID))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("rejects a malformed notary id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/alerts/pending?notary_id=not-a-uuid", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("requires some office identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/alerts/pending", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleReview(t *testing.T) {
	alertID := id.NewAlertID()
	reviewer := id.NewUserID()

	authedRequest := func(body any) *http.Request {
		payload, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/alerts/"+alertID.String()+"/review", bytes.NewReader(payload))
		return req.WithContext(requestcontext.WithUserID(req.Context(), reviewer))
	}

	t.Run("applies a valid transition", func(t *testing.T) {
		now := time.Now()
		service := &stubService{
			reviewFn: func(_ context.Context, input alert.ReviewInput) (alert.Alert, error) {
				assert.Equal(t, alertID, input.AlertID)
				assert.Equal(t, reviewer, input.ReviewerID)
				assert.Equal(t, alert.StateConfirmed, input.Target)
				return alert.Alert{
					ID:         alertID,
					State:      alert.StateConfirmed,
					ReviewedBy: &reviewer,
					ReviewedAt: &now,
				}, nil
			},
		}
		router := newTestRouter(service)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(map[string]string{"state": "CONFIRMED", "comment": "verified"}))

		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "CONFIRMED", resp["state"])
		assert.Equal(t, alertID.String(), resp["id"], "ids must serialize as UUID strings")
	})

	t.Run("requires authentication", func(t *testing.T) {
		router := newTestRouter(&stubService{})
		payload, _ := json.Marshal(map[string]string{"state": "CONFIRMED"})
		req := httptest.NewRequest(http.MethodPost, "/alerts/"+alertID.String()+"/review", bytes.NewReader(payload))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects unknown states", func(t *testing.T) {
		router := newTestRouter(&stubService{})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(map[string]string{"state": "SHREDDED"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects transitions back to pending", func(t *testing.T) {
		router := newTestRouter(&stubService{})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(map[string]string{"state": "PENDING"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps conflicts from the state machine", func(t *testing.T) {
		service := &stubService{
			reviewFn: func(_ context.Context, _ alert.ReviewInput) (alert.Alert, error) {
				return alert.Alert{}, dErrors.New(dErrors.CodeConflict, "cannot transition alert from CONFIRMED to REPORTED")
			},
		}
		router := newTestRouter(service)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(map[string]string{"state": "REPORTED"}))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
