package healthcheck

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/de-tools/biz-pulse/pkg/models/api"
	"github.com/de-tools/biz-pulse/pkg/models/domain"
)

// State accumulates the pipeline output. Each stage populates exactly one
// field and reads only what earlier stages produced.
type State struct {
	Input   *domain.InputBundle
	Metrics *domain.MetricsReport
	Report  *domain.Report
}

// Stage is one transition of the pipeline.
type Stage func(ctx context.Context, s *State) error

// Pipeline runs the validate -> compute -> recommend chain. The zero value is
// ready to use; stages are pure functions, so a single Pipeline is safe for
// arbitrarily many concurrent runs.
type Pipeline struct{}

func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Run executes the pipeline once for the given request. It returns either a
// complete report or the first stage error; there are no retries and no
// partial results.
func (p *Pipeline) Run(ctx context.Context, req api.CheckRequest) (domain.Report, error) {
	state := &State{}
	stages := []Stage{
		validateStage(req),
		metricsStage,
		recommendStage,
	}

	for _, stage := range stages {
		if err := stage(ctx, state); err != nil {
			return domain.Report{}, err
		}
	}

	zerolog.Ctx(ctx).Debug().
		Str("profit_status", string(state.Report.ProfitStatus)).
		Int("alerts", len(state.Report.Alerts)).
		Int("recommendations", len(state.Report.Recommendations)).
		Msg("health check completed")

	return *state.Report, nil
}

func validateStage(req api.CheckRequest) Stage {
	return func(_ context.Context, s *State) error {
		bundle, err := Validate(req)
		if err != nil {
			return err
		}
		s.Input = &bundle
		return nil
	}
}

func metricsStage(_ context.Context, s *State) error {
	metrics, err := ComputeMetrics(*s.Input)
	if err != nil {
		return err
	}
	s.Metrics = &metrics
	return nil
}

func recommendStage(_ context.Context, s *State) error {
	report := Recommend(*s.Metrics)
	s.Report = &report
	return nil
}
