// Package templates holds the HTML page templates emitted by the renderer.
// Kept as data so the render package stays logic-only.
package templates

// Index is the main article listing page.
const Index = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>PolicyRadar — Indian Policy News</title>
<style>
body { font-family: Georgia, serif; max-width: 960px; margin: 0 auto; padding: 1rem; color: #1a1a1a; }
header { border-bottom: 3px solid #16355c; margin-bottom: 1.5rem; }
h1 { color: #16355c; margin-bottom: 0.2rem; }
.generated { color: #666; font-size: 0.85rem; }
.banner { padding: 0.6rem 1rem; border-radius: 4px; margin: 1rem 0; }
.banner.warn { background: #fff3cd; border: 1px solid #ffc107; }
.banner.severe { background: #f8d7da; border: 1px solid #dc3545; }
section.category { margin-bottom: 2rem; }
h2 { color: #16355c; border-bottom: 1px solid #ddd; padding-bottom: 0.3rem; }
article { margin: 0.8rem 0; }
article h3 { margin: 0 0 0.2rem; font-size: 1.05rem; }
article a { color: #0b4f8a; text-decoration: none; }
.meta { color: #666; font-size: 0.8rem; }
.summary { margin: 0.3rem 0 0; font-size: 0.92rem; }
.tag { display: inline-block; background: #eef3f8; color: #16355c; font-size: 0.72rem; padding: 0.1rem 0.45rem; border-radius: 3px; margin-right: 0.3rem; }
footer { border-top: 1px solid #ddd; margin-top: 2rem; padding-top: 0.8rem; font-size: 0.8rem; color: #666; }
</style>
</head>
<body>
<header>
<h1>PolicyRadar</h1>
<p class="generated">Indian public policy news &middot; generated {{.Generated}}</p>
</header>
{{if .Banner}}<div class="banner {{.BannerClass}}">{{.Banner}}</div>{{end}}
{{range .Categories}}
<section class="category">
<h2>{{.Name}}</h2>
{{range .Articles}}
<article>
<h3><a href="{{.URL}}" rel="noopener">{{.Title}}</a></h3>
<p class="meta">{{.Source}}{{if .PublishedDate}} &middot; {{.PublishedDate.Format "02 Jan 2006 15:04"}}{{end}}</p>
{{if .Summary}}<p class="summary">{{.Summary}}</p>{{end}}
{{if .Tags}}<p>{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</p>{{end}}
</article>
{{end}}
</section>
{{end}}
<footer>
<p>{{.TotalArticles}} articles from {{.TotalSources}} sources &middot; <a href="about.html">About</a> &middot; <a href="health.html">Feed health</a> &middot; <a href="api_data.json">JSON</a></p>
</footer>
</body>
</html>
`

// Health is the feed-health dashboard.
const Health = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>PolicyRadar — Feed Health</title>
<style>
body { font-family: Georgia, serif; max-width: 960px; margin: 0 auto; padding: 1rem; color: #1a1a1a; }
h1 { color: #16355c; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
th, td { text-align: left; padding: 0.4rem 0.6rem; border-bottom: 1px solid #ddd; font-size: 0.85rem; }
.inactive { color: #dc3545; }
.stats { display: flex; gap: 2rem; margin: 1rem 0; }
.stats div { background: #eef3f8; padding: 0.6rem 1rem; border-radius: 4px; }
</style>
</head>
<body>
<h1>Feed Health</h1>
<p>Generated {{.Generated}}</p>
<div class="stats">
<div><strong>{{.Report.Total}}</strong> tracked</div>
<div><strong>{{.Report.Active}}</strong> active</div>
<div><strong>{{.Report.Healthy}}</strong> healthy</div>
<div><strong>{{.Report.Unhealthy}}</strong> unhealthy</div>
<div><strong>{{printf "%.2f" .Report.AvgScore}}</strong> average score</div>
</div>
<h2>Worst feeds</h2>
<table>
<tr><th>Feed</th><th>Score</th><th>Attempts</th><th>Consecutive failures</th><th>Last error</th><th>Status</th></tr>
{{range .Report.Worst}}
<tr>
<td>{{.URL}}</td>
<td>{{printf "%.2f" .Score}}</td>
<td>{{.SuccessfulAttempts}}/{{.TotalAttempts}}</td>
<td>{{.ConsecutiveFailures}}</td>
<td>{{.LastErrorType}}</td>
<td>{{if .Active}}active{{else}}<span class="inactive">inactive</span>{{end}}</td>
</tr>
{{end}}
</table>
<p><a href="index.html">Back to articles</a></p>
</body>
</html>
`

// About is the static project description page.
const About = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>PolicyRadar — About</title>
<style>
body { font-family: Georgia, serif; max-width: 720px; margin: 0 auto; padding: 1rem; color: #1a1a1a; }
h1 { color: #16355c; }
</style>
</head>
<body>
<h1>About PolicyRadar</h1>
<p>PolicyRadar aggregates Indian public policy news from government portals,
regulators, legal publishers, think tanks and mainstream media. Every few
hours it fetches around two hundred sources, scores each item for policy
relevance, and publishes the result as this static site.</p>
<p>Articles are classified into policy sectors (technology, economy, health,
environment, law, defence and more) using a transparent keyword ruleset.
Scores blend policy relevance, source reliability, recency and sector
specificity; clearly foreign stories are filtered down.</p>
<p>Generated {{.Generated}}.</p>
<p><a href="index.html">Back to articles</a></p>
</body>
</html>
`
