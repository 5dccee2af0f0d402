package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shanehull/matchscout/internal/ai"
	"github.com/shanehull/matchscout/internal/types"
)

func TestAssembleScenarioA(t *testing.T) {
	r := Assemble(Decompose(scenarioA), nil)

	assert.Equal(t, "Balanced matchup.", r.LeagueAnalysis)
	assert.Equal(t, "Home won 3 of last 5.", r.H2HAnalysis)
	assert.Equal(t, "Steady line.", r.OddsAnalysis)
	assert.Equal(t, "Back the home side.", r.Recommendation)
	assert.Equal(t, 72, r.ConfidenceScore)
	assert.Len(t, r.SimulatedOddsHistory, 1)
	assert.NotNil(t, r.Sources)
	assert.Empty(t, r.Sources)
}

func TestAssembleScenarioB(t *testing.T) {
	r := Assemble(Decompose("no headings here"), nil)

	assert.Equal(t, Placeholder, r.LeagueAnalysis)
	assert.Equal(t, Placeholder, r.H2HAnalysis)
	assert.Equal(t, Placeholder, r.OddsAnalysis)
	assert.Equal(t, Placeholder, r.Recommendation)
	assert.Equal(t, 0, r.ConfidenceScore)
	assert.Equal(t, []types.OddsPoint{}, r.SimulatedOddsHistory)
}

func TestAssembleEmptySectionUsesPlaceholder(t *testing.T) {
	r := Assemble(Decompose("## League & Context\n   \n## H2H & Form Fact-Check\nok"), nil)
	assert.Equal(t, Placeholder, r.LeagueAnalysis)
	assert.Equal(t, "ok", r.H2HAnalysis)
}

func TestAssembleNilHistory(t *testing.T) {
	r := Assemble(Sections{}, nil)
	assert.NotNil(t, r.SimulatedOddsHistory)
	assert.Equal(t, Placeholder, r.Recommendation)
}

func TestAssembleFiltersCitations(t *testing.T) {
	citations := []ai.Citation{
		{URI: "https://one.example", Title: "One"},
		{URI: "", Title: "No link"},
		{URI: "https://two.example", Title: ""},
		{},
		{URI: "https://three.example", Title: "Three"},
		{URI: "   ", Title: "Blank"},
	}

	r := Assemble(Decompose(scenarioA), citations)

	assert.Equal(t, []types.GroundingSource{
		{URI: "https://one.example", Title: "One"},
		{URI: "https://three.example", Title: "Three"},
	}, r.Sources)
}

func TestAssembleConfidenceNotClamped(t *testing.T) {
	r := Assemble(Decompose("```json\n{\"confidenceScore\": 130}\n```"), nil)
	assert.Equal(t, 130, r.ConfidenceScore)
}
