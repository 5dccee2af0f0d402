/*
Package analysis turns a free-text model answer into a structured match report.

The answer is read with a two-tier grammar:

	answer   = { text | section } [ jsonblock ]
	section  = "## " heading body        ; body runs to the nearest "##" or end of text
	jsonblock = "```json" NL payload NL "```"

Headings are matched case-insensitively and only the first occurrence counts. Prose
sections that are missing fall back to a placeholder, and a missing or broken JSON
block falls back to an empty odds series with a zero confidence score.
*/
package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shanehull/matchscout/internal/ai"
	"github.com/shanehull/matchscout/internal/types"
)

const (
	// SummaryLength is counted in characters, not bytes. Truncation ignores word boundaries.
	SummaryLength = 300
	Ellipsis      = "..."
	Placeholder   = "Analysis pending..."
)

var (
	errNoJSONBlock = errors.New("no fenced json block")

	jsonBlockRe = regexp.MustCompile("(?s)```json\r?\n(.*?)\r?\n```")

	sectionRes = map[string]*regexp.Regexp{
		ai.HeadingLeague:         sectionPattern(ai.HeadingLeague),
		ai.HeadingH2H:            sectionPattern(ai.HeadingH2H),
		ai.HeadingOdds:           sectionPattern(ai.HeadingOdds),
		ai.HeadingRecommendation: sectionPattern(ai.HeadingRecommendation),
	}
)

func sectionPattern(heading string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)## ` + regexp.QuoteMeta(heading) + `(.*?)(?:##|$)`)
}

// Data is the machine-readable attachment at the end of the answer.
type Data struct {
	SimulatedOddsHistory []types.OddsPoint
	ConfidenceScore      int
}

type Sections struct {
	Summary        string
	League         string
	H2H            string
	Odds           string
	Recommendation string
	Data           Data

	// DataErr records why Data holds defaults. It is informational only.
	DataErr error
}

// Decompose splits raw model text into sections. It never fails: every field is
// populated, falling back to placeholders and defaults.
func Decompose(raw string) Sections {
	data, err := extractData(raw)

	return Sections{
		Summary:        summarize(raw),
		League:         extractSection(raw, ai.HeadingLeague),
		H2H:            extractSection(raw, ai.HeadingH2H),
		Odds:           extractSection(raw, ai.HeadingOdds),
		Recommendation: extractSection(raw, ai.HeadingRecommendation),
		Data:           data,
		DataErr:        err,
	}
}

// summarize keeps the first SummaryLength characters and always appends the ellipsis,
// even when the text is shorter.
func summarize(raw string) string {
	if utf8.RuneCountInString(raw) <= SummaryLength {
		return raw + Ellipsis
	}

	n := 0
	for i := range raw {
		if n == SummaryLength {
			return raw[:i] + Ellipsis
		}
		n++
	}
	return raw + Ellipsis
}

func extractSection(raw, heading string) string {
	re, ok := sectionRes[heading]
	if !ok {
		re = sectionPattern(heading)
	}

	m := re.FindStringSubmatch(raw)
	if m == nil {
		return Placeholder
	}
	return strings.TrimSpace(m[1])
}

func defaultData() Data {
	return Data{SimulatedOddsHistory: []types.OddsPoint{}}
}

func extractData(raw string) (Data, error) {
	m := jsonBlockRe.FindStringSubmatch(raw)
	if m == nil {
		return defaultData(), errNoJSONBlock
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(m[1]), &fields); err != nil {
		return defaultData(), fmt.Errorf("failed to parse embedded JSON: %w", err)
	}

	data := defaultData()
	var errs []error

	if rawScore, ok := fields["confidenceScore"]; ok {
		score, err := parseScore(rawScore)
		if err != nil {
			errs = append(errs, err)
		} else {
			data.ConfidenceScore = score
		}
	}

	if rawHistory, ok := fields["simulatedOddsHistory"]; ok && string(rawHistory) != "null" {
		var history []types.OddsPoint
		if err := json.Unmarshal(rawHistory, &history); err != nil {
			errs = append(errs, fmt.Errorf("failed to parse simulatedOddsHistory: %w", err))
		} else if history != nil {
			data.SimulatedOddsHistory = history
		}
	}

	return data, errors.Join(errs...)
}

// parseScore accepts a JSON number or a numeric string and rounds to the nearest integer.
// Values outside 0-100 are passed through unchanged.
func parseScore(raw json.RawMessage) (int, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(math.Round(f)), nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return int(math.Round(f)), nil
		}
	}

	if string(raw) == "null" {
		return 0, nil
	}
	return 0, fmt.Errorf("failed to parse confidenceScore %s", string(raw))
}
