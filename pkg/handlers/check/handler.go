package check

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/de-tools/biz-pulse/pkg/adapters"
	"github.com/de-tools/biz-pulse/pkg/models/api"
	"github.com/de-tools/biz-pulse/pkg/models/domain"
	"github.com/de-tools/biz-pulse/pkg/services/healthcheck"
)

// Runner executes one health check run.
type Runner interface {
	Run(ctx context.Context, req api.CheckRequest) (domain.Report, error)
}

type Handler struct {
	pipeline Runner
}

func NewHandler(pipeline Runner) *Handler {
	return &Handler{pipeline: pipeline}
}

// RunCheck executes a single health check for the snapshots in the request
// body. Input problems (missing fields, zero denominators) map to 400 with
// the pipeline's error message.
func (h *Handler) RunCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.pipeline.Run(ctx, req)
	if err != nil {
		var missingErr *healthcheck.MissingFieldError
		var zeroErr *healthcheck.ZeroDenominatorError
		if errors.As(err, &missingErr) || errors.As(err, &zeroErr) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		logger.Error().Err(err).Msg("health check failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapReportDomainToApi(report)); err != nil {
		logger.Error().Err(err).Msg("failed to encode report")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
