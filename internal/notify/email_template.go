package notify

const emailHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Report.Query.HomeTeam}} vs {{.Report.Query.AwayTeam}}</title>
  <style>
    body {
      margin: 0;
      padding: 24px;
      background-color: #f3f4f6;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      color: #111827;
      line-height: 1.5;
    }

    .container {
      max-width: 640px;
      margin: 0 auto;
      background: #ffffff;
      border-radius: 8px;
      border: 1px solid #e5e7eb;
      overflow: hidden;
    }

    .header {
      padding: 20px 24px;
      background: linear-gradient(135deg, #00143c 0%, #002543 100%);
      color: #ffffff;
    }

    .fixture {
      font-size: 22px;
      font-weight: 700;
      margin-bottom: 4px;
    }

    .league {
      font-size: 14px;
      opacity: 0.85;
    }

    .badge {
      display: inline-block;
      margin-top: 8px;
      margin-right: 6px;
      padding: 4px 10px;
      font-size: 11px;
      font-weight: 600;
      border-radius: 4px;
      background: #fcd34d;
      color: #00143c;
      text-transform: uppercase;
      letter-spacing: 0.05em;
    }

    .section {
      padding: 16px 24px;
      border-top: 1px solid #f3f4f6;
    }

    .section-title {
      font-size: 11px;
      font-weight: 700;
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.1em;
      margin-bottom: 12px;
    }

    .prose {
      font-size: 14px;
      white-space: pre-line;
    }

    .odds-table {
      width: 100%;
      font-size: 13px;
      border-collapse: collapse;
    }

    .odds-table th,
    .odds-table td {
      padding: 4px 8px;
      text-align: left;
      border-bottom: 1px solid #f3f4f6;
    }

    .source-list {
      margin: 0;
      padding-left: 20px;
      font-size: 13px;
    }

    .footer {
      padding: 16px 24px;
      font-size: 12px;
      color: #9ca3af;
      text-align: center;
      background: #f9fafb;
      border-top: 1px solid #f3f4f6;
    }

    a {
      color: #0b3d91;
      text-decoration: none;
    }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <div class="fixture">{{.Report.Query.HomeTeam}} vs {{.Report.Query.AwayTeam}}</div>
      {{if .Report.Query.League}}
      <div class="league">{{.Report.Query.League}}</div>
      {{end}}
      <span class="badge">Confidence {{.Report.Result.ConfidenceScore}}%</span>
      <span class="badge">Risk {{.Report.Result.RiskLevel}}</span>
    </div>

    <div class="section">
      <div class="section-title">Primary Strategy</div>
      <div class="prose">{{.Report.Result.Recommendation}}</div>
    </div>

    <div class="section">
      <div class="section-title">League &amp; Context</div>
      <div class="prose">{{.Report.Result.LeagueAnalysis}}</div>
    </div>

    <div class="section">
      <div class="section-title">H2H &amp; Form Fact-Check</div>
      <div class="prose">{{.Report.Result.H2HAnalysis}}</div>
    </div>

    <div class="section">
      <div class="section-title">Odds &amp; Market Logic</div>
      <div class="prose">{{.Report.Result.OddsAnalysis}}</div>
    </div>

    {{if .Report.Result.SimulatedOddsHistory}}
    <div class="section">
      <div class="section-title">Odds Movement</div>
      <table class="odds-table">
        <tr><th>Time</th><th>Home</th><th>Draw</th><th>Away</th></tr>
        {{range .Report.Result.SimulatedOddsHistory}}
        <tr><td>{{.Time}}</td><td>{{printf "%.2f" .Home}}</td><td>{{printf "%.2f" .Draw}}</td><td>{{printf "%.2f" .Away}}</td></tr>
        {{end}}
      </table>
    </div>
    {{end}}

    {{if .Report.Result.Sources}}
    <div class="section">
      <div class="section-title">Verified Sources</div>
      <ul class="source-list">
        {{range .Report.Result.Sources}}
        <li><a href="{{.URI}}" target="_blank" rel="noopener">{{.Title}}</a></li>
        {{end}}
      </ul>
    </div>
    {{end}}

    <div class="footer">
      Generated by matchscout on {{.Report.GeneratedAt.Format "02 Jan 2006 3:04 PM"}}
    </div>
  </div>
</body>
</html>`
