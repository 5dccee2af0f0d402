package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shanehull/matchscout/internal/ai"
	"github.com/shanehull/matchscout/internal/types"
)

const DefaultTimeout = 90 * time.Second

// Analyzer runs one fixture through prompt, remote call, decomposition and assembly.
type Analyzer struct {
	invoker ai.Invoker
	timeout time.Duration
	log     *zap.Logger
	now     func() time.Time
}

func NewAnalyzer(invoker ai.Invoker, timeout time.Duration, log *zap.Logger) *Analyzer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{
		invoker: invoker,
		timeout: timeout,
		log:     log,
		now:     time.Now,
	}
}

// Analyze returns a report for q. An invalid query yields types.ErrMissingTeam without
// contacting the provider; any remote failure yields an error wrapping ai.ErrAnalysisFailed.
func (a *Analyzer) Analyze(ctx context.Context, q types.MatchQuery) (*types.Report, error) {
	q = q.Normalize()
	if err := q.Validate(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	log := a.log.With(zap.String("analysis_id", id), zap.String("match", q.String()))

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := a.now()
	log.Info("Requesting analysis")

	resp, err := a.invoker.Invoke(ctx, ai.BuildPrompt(q))
	if err == nil && resp == nil {
		err = errors.New("nil response")
	}
	if err != nil {
		if !errors.Is(err, ai.ErrAnalysisFailed) {
			err = fmt.Errorf("%w: %w", ai.ErrAnalysisFailed, err)
		}
		log.Error("Analysis failed", zap.Error(err), zap.Duration("elapsed", a.now().Sub(start)))
		return nil, err
	}

	sections := Decompose(resp.Text)
	if sections.DataErr != nil {
		log.Warn("Using default odds data", zap.Error(sections.DataErr))
	}

	result := Assemble(sections, resp.Citations)

	log.Info("Analysis complete",
		zap.Duration("elapsed", a.now().Sub(start)),
		zap.Int("response_len", len(resp.Text)),
		zap.Int("sources", len(result.Sources)),
		zap.Int("odds_points", len(result.SimulatedOddsHistory)),
		zap.Int("confidence", result.ConfidenceScore),
	)

	return &types.Report{
		ID:          id,
		GeneratedAt: a.now().UTC(),
		Query:       q,
		Result:      result,
	}, nil
}
