package analysis

import (
	"strings"

	"github.com/shanehull/matchscout/internal/ai"
	"github.com/shanehull/matchscout/internal/types"
)

// Assemble merges decomposed sections and provider citations into the final result.
func Assemble(s Sections, citations []ai.Citation) types.AnalysisResult {
	history := s.Data.SimulatedOddsHistory
	if history == nil {
		history = []types.OddsPoint{}
	}

	return types.AnalysisResult{
		Summary:              s.Summary,
		LeagueAnalysis:       orPlaceholder(s.League),
		H2HAnalysis:          orPlaceholder(s.H2H),
		OddsAnalysis:         orPlaceholder(s.Odds),
		Recommendation:       orPlaceholder(s.Recommendation),
		ConfidenceScore:      s.Data.ConfidenceScore,
		Sources:              filterSources(citations),
		SimulatedOddsHistory: history,
	}
}

// filterSources drops citations without both a URI and a title, keeping provider order.
func filterSources(citations []ai.Citation) []types.GroundingSource {
	sources := make([]types.GroundingSource, 0, len(citations))
	for _, c := range citations {
		if strings.TrimSpace(c.URI) == "" || strings.TrimSpace(c.Title) == "" {
			continue
		}
		sources = append(sources, types.GroundingSource{URI: c.URI, Title: c.Title})
	}
	return sources
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
