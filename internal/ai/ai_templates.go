package ai

import (
	"fmt"

	"github.com/shanehull/matchscout/internal/types"
)

// Headings the model is told to emit, in order.
const (
	HeadingLeague         = "League & Context"
	HeadingH2H            = "H2H & Form Fact-Check"
	HeadingOdds           = "Odds & Market Logic"
	HeadingRecommendation = "Quantifiable Action Plan"
	HeadingJSON           = "JSON_DATA"
)

var promptTemplate = `
Role: You are the Chief Data Scientist for a leading sportsbook.
Task: Analyze the match between %s and %s%s.

You MUST use Google Search to find REAL, up-to-date information about:
1. Recent form of both teams.
2. Head-to-Head (H2H) history.
3. League characteristics (e.g., goal averages, home advantage bias).
4. Current market odds (European 1x2 and Asian Handicap) if available.

Output Format:
Provide a comprehensive analysis structured with the following sections.
IMPORTANT: You must include a JSON block at the very end of your response containing simulated or real historical odds data for visualization.

Structure:
## ` + HeadingLeague + `
(Qualitative analysis of the league's style and team tiers)

## ` + HeadingH2H + `
(Verified data on past meetings and recent performance)

## ` + HeadingOdds + `
(Analyze the movement of European Odds vs Asian Handicap. Identify if there is "False Odds" or "Induction")

## ` + HeadingRecommendation + `
(Specific recommendation with confidence level)

## ` + HeadingJSON + `
` + "```json" + `
{
  "simulatedOddsHistory": [
    {"time": "Opening", "home": 1.95, "draw": 3.4, "away": 3.8},
    {"time": "24h Pre", "home": 1.90, "draw": 3.5, "away": 4.0},
    {"time": "12h Pre", "home": 1.98, "draw": 3.4, "away": 3.7},
    {"time": "1h Pre", "home": 2.05, "draw": 3.3, "away": 3.6}
  ],
  "confidenceScore": 85
}
` + "```" + `
`

// BuildPrompt renders the analysis instruction for a fixture. It has no side effects.
func BuildPrompt(q types.MatchQuery) string {
	league := ""
	if q.League != "" {
		league = " in the " + q.League
	}

	return fmt.Sprintf(promptTemplate, q.HomeTeam, q.AwayTeam, league)
}
