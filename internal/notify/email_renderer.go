package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// HTMLEmailRenderer renders reports as HTML emails with a plain text fallback.
type HTMLEmailRenderer struct {
	tmpl *template.Template
}

// NewHTMLEmailRenderer creates a renderer with the default email template.
func NewHTMLEmailRenderer() *HTMLEmailRenderer {
	t := template.Must(template.New("email").Parse(emailHTMLTemplate))
	return &HTMLEmailRenderer{tmpl: t}
}

// Render produces an HTML email with plain text alternative.
func (r *HTMLEmailRenderer) Render(data NotificationData) (*RenderedMessage, error) {
	if data.Report == nil {
		return nil, fmt.Errorf("no report to render")
	}

	res := data.Report.Result
	subject := fmt.Sprintf("Match Analysis: %s - %d%% confidence", data.Report.Query.String(), res.ConfidenceScore)

	var htmlBuf bytes.Buffer
	if err := r.tmpl.Execute(&htmlBuf, data); err != nil {
		return nil, fmt.Errorf("failed to render HTML template: %w", err)
	}

	return &RenderedMessage{
		Subject: subject,
		Text:    renderPlainText(data),
		HTML:    htmlBuf.String(),
	}, nil
}

// renderPlainText produces a readable plain text version for email clients that don't support HTML.
func renderPlainText(data NotificationData) string {
	rep := data.Report
	res := rep.Result
	var sb strings.Builder

	sb.WriteString(rep.Query.String() + "\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	sb.WriteString(fmt.Sprintf("Generated: %s\n", rep.GeneratedAt.Format("02 Jan 2006 3:04 PM")))
	sb.WriteString(fmt.Sprintf("Confidence: %d%% (risk %s)\n\n", res.ConfidenceScore, res.RiskLevel()))

	writeSection(&sb, "RECOMMENDATION", res.Recommendation)
	writeSection(&sb, "LEAGUE & CONTEXT", res.LeagueAnalysis)
	writeSection(&sb, "H2H & FORM", res.H2HAnalysis)
	writeSection(&sb, "ODDS & MARKET", res.OddsAnalysis)

	if len(res.SimulatedOddsHistory) > 0 {
		sb.WriteString("ODDS MOVEMENT (1 / X / 2)\n")
		sb.WriteString(strings.Repeat("-", 20) + "\n")
		for _, p := range res.SimulatedOddsHistory {
			sb.WriteString(fmt.Sprintf("• %-10s %.2f / %.2f / %.2f\n", p.Time, p.Home, p.Draw, p.Away))
		}
		sb.WriteString("\n")
	}

	if len(res.Sources) > 0 {
		sb.WriteString("SOURCES\n")
		sb.WriteString(strings.Repeat("-", 20) + "\n")
		for _, s := range res.Sources {
			sb.WriteString(fmt.Sprintf("• %s - %s\n", s.Title, s.URI))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeSection(sb *strings.Builder, title, body string) {
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("-", 20) + "\n")
	sb.WriteString(body + "\n\n")
}
