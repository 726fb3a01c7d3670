package site

import (
	"html/template"
)

const pageCSS = `
:root{--fg:#111;--muted:#666;--bg:#fff;--acc:#cc0000}
*{box-sizing:border-box}
body{margin:0;background:var(--bg);color:var(--fg);font:16px/1.6 system-ui,-apple-system,Segoe UI,Roboto,Ubuntu,"Helvetica Neue",Arial}
main{max-width:820px;margin:3rem auto;padding:0 1rem}
h1{font-size:1.9rem;margin:0 0 0.5rem}
p{margin:1rem 0}
a{color:var(--acc);text-decoration:none}
a:hover{text-decoration:underline}
img.hero{display:block;width:100%;height:auto;border-radius:10px;margin:1rem 0}
.card{border:1px solid #eee;border-radius:14px;padding:1rem 1.2rem;margin:1rem 0;box-shadow:0 1px 2px rgba(0,0,0,.03)}
.meta{color:var(--muted);font-size:.95rem}
.btn{display:inline-block;margin-top:1rem;border:1px solid var(--acc);padding:.5rem .9rem;border-radius:10px}
footer{margin:3rem 0 1rem;color:var(--muted);font-size:.9rem}
`

// The outbound link posts a navigate message to the parent instead of
// navigating when the page is framed by another origin.
var postTemplate = template.Must(template.New("post").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<link rel="canonical" href="{{.Link}}">
<title>{{.Title}}</title>
<style>{{.CSS}}</style>
</head>
<body>
<main>
  <article class="card">
    <h1>{{.Title}}</h1>
    <div class="meta">Published: {{.Published}}</div>
    {{- if .Image}}
    <img class="hero" src="{{.Image}}" alt="">
    {{- end}}
    <div class="body">{{.Body}}</div>
    <p><a class="btn" id="read-original" href="{{.Link}}" target="_top" rel="noopener nofollow">Read the original article →</a></p>
  </article>
  <footer>Curated by <a href="{{.SiteLink}}">{{.SiteTitle}}</a></footer>
</main>
<script>
(function () {
  var link = document.getElementById("read-original");
  if (!link || window.self === window.top) return;
  link.addEventListener("click", function (e) {
    var foreign = true;
    try { foreign = window.top.location.origin !== window.location.origin; } catch (err) { foreign = true; }
    if (!foreign) return;
    e.preventDefault();
    window.parent.postMessage({ type: "pulse:navigate", url: link.href }, "*");
  });
})();
</script>
</body>
</html>
`))

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Title}}</title>
<link rel="alternate" type="application/rss+xml" title="{{.Title}}" href="feed.xml">
<style>body{font:16px/1.6 system-ui;margin:2rem} a{color:#cc0000;text-decoration:none} a:hover{text-decoration:underline}</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Description}}</p>
<ul>
{{- range .Items}}
  <li><a href="{{.Href}}">{{.Title}}</a></li>
{{- end}}
</ul>
</body>
</html>
`))

type postView struct {
	Title     string
	Link      string
	Published string
	Image     string
	Body      template.HTML
	CSS       template.CSS
	SiteLink  string
	SiteTitle string
}

type indexEntry struct {
	Title string
	Href  string
}

type indexView struct {
	Title       string
	Description string
	Items       []indexEntry
}
