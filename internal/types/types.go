package types

import (
	"errors"
	"strings"
	"time"
)

var ErrMissingTeam = errors.New("home team and away team are required")

// MatchQuery is one fixture submitted for analysis.
type MatchQuery struct {
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	League   string `json:"league,omitempty"`
}

// Normalize trims surrounding whitespace from every field.
func (q MatchQuery) Normalize() MatchQuery {
	return MatchQuery{
		HomeTeam: strings.TrimSpace(q.HomeTeam),
		AwayTeam: strings.TrimSpace(q.AwayTeam),
		League:   strings.TrimSpace(q.League),
	}
}

func (q MatchQuery) Validate() error {
	if strings.TrimSpace(q.HomeTeam) == "" || strings.TrimSpace(q.AwayTeam) == "" {
		return ErrMissingTeam
	}
	return nil
}

func (q MatchQuery) String() string {
	s := q.HomeTeam + " vs " + q.AwayTeam
	if q.League != "" {
		s += " (" + q.League + ")"
	}
	return s
}

type GroundingSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// OddsPoint is one sample of decimal 1x2 odds at a labelled moment.
type OddsPoint struct {
	Time string  `json:"time"`
	Home float64 `json:"home"`
	Draw float64 `json:"draw"`
	Away float64 `json:"away"`
}

type AnalysisResult struct {
	Summary              string            `json:"summary"`
	LeagueAnalysis       string            `json:"leagueAnalysis"`
	H2HAnalysis          string            `json:"h2hAnalysis"`
	OddsAnalysis         string            `json:"oddsAnalysis"`
	Recommendation       string            `json:"recommendation"`
	ConfidenceScore      int               `json:"confidenceScore"`
	Sources              []GroundingSource `json:"sources"`
	SimulatedOddsHistory []OddsPoint       `json:"simulatedOddsHistory"`
}

// RiskLevel is the badge shown next to the confidence score.
func (r AnalysisResult) RiskLevel() string {
	if r.ConfidenceScore > 75 {
		return "LOW"
	}
	return "MED"
}

// Report wraps a result with the query that produced it.
type Report struct {
	ID          string         `json:"id"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Query       MatchQuery     `json:"query"`
	Result      AnalysisResult `json:"result"`
}
