package web

import "html/template"

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>100 Days of Code</title>
<style>
body { font-family: system-ui, sans-serif; margin: 0 auto; max-width: 52rem; padding: 1rem; background: #f7f7f7; color: #1d1d1d; }
body.dark-mode { background: #161616; color: #e4e4e4; }
.day-block { margin-bottom: 2rem; }
.day-title { font-weight: 700; font-size: 1.2rem; margin-bottom: .5rem; }
.question { border-radius: .6rem; padding: 1rem; margin-bottom: 1rem; }
.question.current { border: 3px solid #3a7bd5; }
.question.past { opacity: .85; }
.question-header { display: flex; align-items: center; gap: .5rem; }
.question-header h2 { flex: 1; font-size: 1.05rem; margin: 0; }
.question-text { white-space: pre-wrap; word-wrap: break-word; overflow-wrap: break-word; }
.copy-btn { background: none; border: none; cursor: pointer; font-size: 1.1rem; }
.notes img { max-width: 100%; }
.scroll-reveal { opacity: 0; transform: translateY(24px); transition: opacity .5s, transform .5s; }
.scroll-reveal.visible { opacity: 1; transform: none; }
</style>
</head>
<body{{if .Dark}} class="dark-mode"{{end}}>
<header>
<h1>100 Days of Code</h1>
<form method="post" action="/theme"><button id="modeToggle" type="submit">{{if .Dark}}☀️ Light mode{{else}}🌙 Dark mode{{end}}</button></form>
</header>
<main id="{{.Container}}">
{{- if .Failure}}
<p class="load-error">{{.Failure}}</p>
{{- else}}
{{- range .Days}}
<section class="day-block scroll-reveal">
<div class="day-title">{{.Title}}</div>
{{- range .Questions}}
<article class="question {{.Role}} scroll-reveal"{{with .Style}} style="{{.}}"{{end}}>
{{- range .Units}}
{{- if eq .Kind "header"}}
<div class="question-header">
<span class="section-icon">{{.Icon}}</span>
<h2>{{.Header.Title}}</h2>
<button class="copy-btn" type="button" aria-label="{{.Header.Copy.AriaLabel}}" data-ack="{{.Header.Copy.AckLabel}}" data-transcript="{{.Header.Copy.Transcript}}">{{.Header.Copy.Label}}</button>
</div>
{{- else if eq .Kind "body"}}
<p class="question-text">{{.Text}}</p>
{{- else if eq .Kind "testcases"}}
<details class="testcases">
<summary>{{.TestCases.Summary}}</summary>
{{- range .TestCases.Cases}}
<div class="testcase">
{{- range .Fields}}
<b>{{.Label}}</b>
<pre>{{.Value}}</pre>
{{- end}}
</div>
{{- end}}
</details>
{{- else if eq .Kind "video"}}
<p><a href="{{.Video.Href}}"{{if .Video.NewContext}} target="_blank" rel="noopener noreferrer"{{end}}>{{.Video.Label}}</a></p>
{{- else if eq .Kind "notes"}}
<div class="notes">
{{- if .NoteImage}}
<img src="{{.Notes.Value}}" alt="{{.Notes.Alt}}">
{{- else}}
<p class="question-text">{{.Notes.Value}}</p>
{{- end}}
</div>
{{- end}}
{{- end}}
</article>
{{- end}}
</section>
{{- end}}
{{- end}}
</main>
<script>
(function () {
  const ackDelay = {{.AckDelay}};
  document.querySelectorAll(".copy-btn").forEach(function (btn) {
    btn.addEventListener("click", function () {
      if (!navigator.clipboard) { return; }
      navigator.clipboard.writeText(btn.dataset.transcript).then(function () {
        const label = btn.textContent;
        btn.textContent = btn.dataset.ack;
        setTimeout(function () { btn.textContent = label; }, ackDelay);
      }).catch(function () {});
    });
  });
  function reveal() {
    const limit = window.innerHeight - 100;
    document.querySelectorAll(".scroll-reveal").forEach(function (el) {
      if (el.getBoundingClientRect().top < limit) { el.classList.add("visible"); }
    });
  }
  window.addEventListener("scroll", reveal);
  window.addEventListener("resize", reveal);
  reveal();
})();
</script>
</body>
</html>
`
