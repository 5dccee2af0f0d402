package web

import (
	"github.com/shanehull/matchscout/internal/session"
	"github.com/shanehull/matchscout/internal/types"
)

type pageData struct {
	State     session.State
	Form      types.MatchQuery
	FormError string
}

func (d pageData) Busy() bool { return d.State.Status == session.StatusRequesting }

func (d pageData) Completed() bool {
	return d.State.Status == session.StatusCompleted && d.State.Report != nil
}

func (d pageData) Failed() bool { return d.State.Status == session.StatusFailed }

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  {{if .Busy}}<meta http-equiv="refresh" content="3" />{{end}}
  <title>matchscout · Strategic Intelligence Center</title>
  <style>
    body { margin: 0; background: #f3f4f6; color: #1f2937; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; }
    header { background: #00143c; color: #fff; padding: 16px 32px; font-weight: 700; letter-spacing: 0.05em; }
    header span { color: #fcd34d; }
    main { max-width: 1120px; margin: 0 auto; padding: 32px; }
    h2 { margin: 0 0 4px; font-size: 28px; color: #00143c; }
    .lead { margin: 0 0 24px; color: #4b5563; }
    .card { background: #fff; border: 1px solid #e5e7eb; border-radius: 12px; padding: 24px; margin-bottom: 24px; }
    form.query { display: grid; grid-template-columns: 1fr 1fr 1fr auto; gap: 12px; align-items: end; }
    label { display: block; font-size: 12px; font-weight: 700; text-transform: uppercase; color: #6b7280; margin-bottom: 4px; }
    input { width: 100%; box-sizing: border-box; padding: 10px; border: 1px solid #d1d5db; border-radius: 6px; font-size: 14px; }
    button { padding: 10px 20px; border: 0; border-radius: 6px; background: #00143c; color: #fcd34d; font-weight: 700; cursor: pointer; }
    button:disabled { opacity: 0.5; cursor: not-allowed; }
    .form-error { color: #b91c1c; font-size: 14px; margin-top: 12px; }
    .searching { text-align: center; padding: 64px 0; color: #00143c; }
    .error-banner { background: #fef2f2; border-left: 4px solid #ef4444; padding: 16px; border-radius: 6px; color: #b91c1c; margin-bottom: 24px; }
    .grid { display: grid; grid-template-columns: 2fr 1fr; gap: 24px; }
    .strategy { background: linear-gradient(135deg, #00143c, #002543); color: #fff; }
    .strategy .label { color: #fcd34d; font-size: 12px; font-weight: 700; text-transform: uppercase; }
    .strategy .rec { font-size: 20px; font-weight: 700; white-space: pre-line; margin: 8px 0 16px; }
    .badge { display: inline-block; background: rgba(255,255,255,0.1); border: 1px solid rgba(255,255,255,0.2); border-radius: 8px; padding: 8px 16px; margin-right: 8px; }
    .badge small { display: block; font-size: 11px; text-transform: uppercase; color: #d1d5db; }
    .badge strong { font-size: 22px; color: #fcd34d; }
    .risk-LOW strong { color: #4ade80; }
    .risk-MED strong { color: #fb923c; }
    .sources ul { list-style: none; padding: 0; margin: 0; max-height: 160px; overflow-y: auto; }
    .sources li { margin-bottom: 8px; font-size: 13px; }
    .section h3 { margin: 0 0 12px; font-size: 16px; text-transform: uppercase; color: #00143c; }
    .prose { white-space: pre-line; line-height: 1.6; font-size: 14px; }
    .muted { color: #9ca3af; font-size: 13px; }
    @media (max-width: 800px) { form.query, .grid { grid-template-columns: 1fr; } }
  </style>
</head>
<body>
  <header>MATCH<span>SCOUT</span></header>
  <main>
    <h2>Strategic Intelligence Center</h2>
    <p class="lead">Search-grounded match analysis: league context, head-to-head, market odds and a quantified action plan.</p>

    <div class="card">
      <form class="query" method="post" action="/analyze" id="query-form">
        <div>
          <label for="league">League (optional)</label>
          <input id="league" name="league" value="{{.Form.League}}" placeholder="e.g. Premier League" />
        </div>
        <div>
          <label for="homeTeam">Home team</label>
          <input id="homeTeam" name="homeTeam" value="{{.Form.HomeTeam}}" required />
        </div>
        <div>
          <label for="awayTeam">Away team</label>
          <input id="awayTeam" name="awayTeam" value="{{.Form.AwayTeam}}" required />
        </div>
        <button type="submit" id="analyze-button" {{if .Busy}}disabled{{end}}>Run analysis</button>
      </form>
      {{if .FormError}}<div class="form-error" id="form-error">{{.FormError}}</div>{{end}}
    </div>

    <div class="searching" id="searching" {{if not .Busy}}hidden{{end}}>
      <p><strong>Aggregating Global Data Sources...</strong></p>
      <p class="muted">Scanning match history, odds movements, and league metrics.</p>
    </div>

    {{if .Failed}}
    <div class="error-banner" id="error-banner">{{.State.Error}}</div>
    {{end}}

    {{if .Completed}}
    {{with .State.Report.Result}}
    <div class="grid">
      <div class="card strategy">
        <div class="label">Primary Strategy</div>
        <div class="rec" id="recommendation">{{.Recommendation}}</div>
        <div class="badge"><small>Confidence Model</small><strong id="confidence">{{.ConfidenceScore}}%</strong></div>
        <div class="badge risk-{{.RiskLevel}}"><small>Risk Level</small><strong id="risk">{{.RiskLevel}}</strong></div>
      </div>
      <div class="card sources">
        <h3>Verified Sources</h3>
        {{if .Sources}}
        <ul id="sources">
          {{range .Sources}}<li><a href="{{.URI}}" target="_blank" rel="noreferrer">{{.Title}}</a></li>{{end}}
        </ul>
        {{else}}
        <p class="muted">No direct sources cited by the model.</p>
        {{end}}
      </div>
    </div>

    <div class="card">
      <h3>Odds Movement</h3>
      {{if .SimulatedOddsHistory}}
      <canvas id="odds-chart" height="110"></canvas>
      {{else}}
      <p class="muted">No odds series was returned.</p>
      {{end}}
    </div>

    <div class="grid">
      <div class="card section">
        <h3>League &amp; Context</h3>
        <div class="prose" id="league-analysis">{{.LeagueAnalysis}}</div>
      </div>
      <div class="card section">
        <h3>Summary</h3>
        <div class="prose" id="summary">{{.Summary}}</div>
      </div>
    </div>
    <div class="grid">
      <div class="card section">
        <h3>H2H &amp; Form Fact-Check</h3>
        <div class="prose" id="h2h-analysis">{{.H2HAnalysis}}</div>
      </div>
      <div class="card section">
        <h3>Odds &amp; Market Logic</h3>
        <div class="prose" id="odds-analysis">{{.OddsAnalysis}}</div>
      </div>
    </div>

    <form method="post" action="/reset"><button type="submit">New analysis</button></form>

    {{if .SimulatedOddsHistory}}
    <script src="https://cdn.jsdelivr.net/npm/chart.js@4"></script>
    <script>
      const odds = {{.SimulatedOddsHistory}};
      new Chart(document.getElementById("odds-chart"), {
        type: "line",
        data: {
          labels: odds.map(p => p.time),
          datasets: [
            { label: "Home", data: odds.map(p => p.home), borderColor: "#00143c" },
            { label: "Draw", data: odds.map(p => p.draw), borderColor: "#9ca3af" },
            { label: "Away", data: odds.map(p => p.away), borderColor: "#f59e0b" }
          ]
        },
        options: { scales: { y: { title: { display: true, text: "Decimal odds" } } } }
      });
    </script>
    {{end}}
    {{end}}
    {{end}}
  </main>
  <script>
    document.getElementById("query-form").addEventListener("submit", function () {
      document.getElementById("analyze-button").disabled = true;
      document.getElementById("searching").hidden = false;
    });
  </script>
</body>
</html>`
