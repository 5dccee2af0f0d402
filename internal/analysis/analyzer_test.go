package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/shanehull/matchscout/internal/ai"
	"github.com/shanehull/matchscout/internal/types"
)

type fakeInvoker struct {
	resp    *ai.Response
	err     error
	prompts []string
	block   bool
}

func (f *fakeInvoker) Invoke(ctx context.Context, prompt string) (*ai.Response, error) {
	f.prompts = append(f.prompts, prompt)
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.resp, f.err
}

var arsenalChelsea = types.MatchQuery{HomeTeam: "Arsenal", AwayTeam: "Chelsea", League: "Premier League"}

func TestAnalyzeScenarioA(t *testing.T) {
	inv := &fakeInvoker{resp: &ai.Response{
		Text: scenarioA,
		Citations: []ai.Citation{
			{URI: "https://stats.example/h2h", Title: "H2H"},
			{URI: "https://odds.example"},
		},
	}}
	a := NewAnalyzer(inv, time.Second, zap.NewNop())

	report, err := a.Analyze(t.Context(), arsenalChelsea)
	require.NoError(t, err)

	require.Len(t, inv.prompts, 1)
	assert.Equal(t, ai.BuildPrompt(arsenalChelsea), inv.prompts[0])

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, arsenalChelsea, report.Query)
	assert.Equal(t, "Balanced matchup.", report.Result.LeagueAnalysis)
	assert.Equal(t, 72, report.Result.ConfidenceScore)
	assert.Len(t, report.Result.SimulatedOddsHistory, 1)
	assert.Equal(t, []types.GroundingSource{{URI: "https://stats.example/h2h", Title: "H2H"}}, report.Result.Sources)
}

func TestAnalyzeScenarioBLogsDefaultData(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	inv := &fakeInvoker{resp: &ai.Response{Text: "Nothing structured came back."}}
	a := NewAnalyzer(inv, time.Second, zap.New(core))

	report, err := a.Analyze(t.Context(), arsenalChelsea)
	require.NoError(t, err)

	assert.Equal(t, Placeholder, report.Result.LeagueAnalysis)
	assert.Equal(t, Placeholder, report.Result.Recommendation)
	assert.Equal(t, 0, report.Result.ConfidenceScore)
	assert.Empty(t, report.Result.SimulatedOddsHistory)
	assert.Equal(t, 1, logs.FilterMessage("Using default odds data").Len())
}

func TestAnalyzeScenarioCRemoteFailure(t *testing.T) {
	inv := &fakeInvoker{err: errors.New("quota exceeded")}
	a := NewAnalyzer(inv, time.Second, nil)

	report, err := a.Analyze(t.Context(), arsenalChelsea)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ai.ErrAnalysisFailed)
}

func TestAnalyzeNilResponseFails(t *testing.T) {
	a := NewAnalyzer(&fakeInvoker{}, time.Second, nil)

	report, err := a.Analyze(t.Context(), arsenalChelsea)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ai.ErrAnalysisFailed)
}

func TestAnalyzeTimeout(t *testing.T) {
	inv := &fakeInvoker{block: true}
	a := NewAnalyzer(inv, 20*time.Millisecond, nil)

	_, err := a.Analyze(t.Context(), arsenalChelsea)
	assert.ErrorIs(t, err, ai.ErrAnalysisFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAnalyzeRejectsInvalidQuery(t *testing.T) {
	inv := &fakeInvoker{resp: &ai.Response{Text: scenarioA}}
	a := NewAnalyzer(inv, time.Second, nil)

	_, err := a.Analyze(t.Context(), types.MatchQuery{HomeTeam: "  ", AwayTeam: "Chelsea"})
	assert.ErrorIs(t, err, types.ErrMissingTeam)
	assert.Empty(t, inv.prompts)
}

func TestAnalyzeNormalizesQuery(t *testing.T) {
	inv := &fakeInvoker{resp: &ai.Response{Text: scenarioA}}
	a := NewAnalyzer(inv, time.Second, nil)

	report, err := a.Analyze(t.Context(), types.MatchQuery{HomeTeam: " Arsenal ", AwayTeam: "Chelsea\n"})
	require.NoError(t, err)
	assert.Equal(t, types.MatchQuery{HomeTeam: "Arsenal", AwayTeam: "Chelsea"}, report.Query)
}
