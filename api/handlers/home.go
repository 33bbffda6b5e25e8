// ABOUTME: Home page handler serving the interactive web form
// ABOUTME: Renders the HTML page that exercises the JSON API from a browser

package handlers

import (
	"bytes"
	"html/template"
	"net/http"

	"textprep-app-api/api/dto/mappers"
)

var homeTemplate = template.Must(template.New("home").Parse(homePage))

// homeData feeds the home page template
type homeData struct {
	PreviewLimit int
}

// HomeHandler serves the interactive web form
type HomeHandler struct{}

// NewHomeHandler creates a new home handler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// RegisterRoutes registers the home page route
func (h *HomeHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Home)
}

// Home handles the GET / endpoint
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := homeTemplate.Execute(&buf, homeData{PreviewLimit: mappers.CleanedTextPreviewLimit}); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

const homePage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Text Preprocessing Service</title>
<style>
  body { font-family: Georgia, serif; max-width: 52rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
  h1 { font-size: 1.6rem; }
  section { margin-bottom: 2.5rem; }
  label { display: block; margin-bottom: .4rem; font-weight: bold; }
  input[type=url], textarea { width: 100%; padding: .5rem; font-size: 1rem; box-sizing: border-box; }
  textarea { height: 8rem; font-family: inherit; }
  button { margin-top: .6rem; padding: .5rem 1.2rem; font-size: 1rem; cursor: pointer; }
  .error { color: #a00; }
  table { border-collapse: collapse; margin-top: 1rem; }
  td, th { border: 1px solid #ccc; padding: .3rem .8rem; text-align: left; }
  pre { white-space: pre-wrap; background: #f6f6f6; padding: .8rem; }
</style>
</head>
<body>
<h1>Text Preprocessing Service</h1>
<p>Fetch a Project Gutenberg plain-text book, strip the boilerplate and read its
statistics, or paste your own text below. Cleaning returns the first
{{.PreviewLimit}} characters of the cleaned document along with full statistics
and a short summary.</p>

<section>
<h2>Clean a document</h2>
<label for="url">Plain-text URL (.txt)</label>
<input type="url" id="url" placeholder="https://www.gutenberg.org/files/11/11-0.txt">
<button id="clean-btn">Clean and analyze</button>
<div id="clean-result"></div>
</section>

<section>
<h2>Analyze raw text</h2>
<label for="text">Text</label>
<textarea id="text" placeholder="Paste any text here."></textarea>
<button id="analyze-btn">Analyze</button>
<div id="analyze-result"></div>
</section>

<script>
function postJSON(path, payload) {
  return fetch(path, {
    method: "POST",
    headers: { "Content-Type": "application/json" },
    body: JSON.stringify(payload)
  }).then(function (resp) { return resp.json(); });
}

function statsTable(stats) {
  var table = document.createElement("table");
  var rows = [
    ["Characters", stats.characters],
    ["Words", stats.words],
    ["Sentences", stats.sentences],
    ["Average word length", stats.avg_word_length],
    ["Average sentence length", stats.avg_sentence_length]
  ];
  rows.forEach(function (row) {
    var tr = document.createElement("tr");
    var th = document.createElement("th");
    th.textContent = row[0];
    var td = document.createElement("td");
    td.textContent = row[1];
    tr.appendChild(th);
    tr.appendChild(td);
    table.appendChild(tr);
  });
  var tr = document.createElement("tr");
  var th = document.createElement("th");
  th.textContent = "Most common words";
  var td = document.createElement("td");
  td.textContent = stats.most_common_words.map(function (wc) {
    return wc.word + " (" + wc.count + ")";
  }).join(", ");
  tr.appendChild(th);
  tr.appendChild(td);
  table.appendChild(tr);
  return table;
}

function renderError(target, message) {
  target.innerHTML = "";
  var p = document.createElement("p");
  p.className = "error";
  p.textContent = message;
  target.appendChild(p);
}

function heading(text) {
  var h = document.createElement("h3");
  h.textContent = text;
  return h;
}

function preBlock(text) {
  var pre = document.createElement("pre");
  pre.textContent = text;
  return pre;
}

document.getElementById("clean-btn").addEventListener("click", function () {
  var target = document.getElementById("clean-result");
  target.textContent = "Working...";
  postJSON("/api/clean", { url: document.getElementById("url").value })
    .then(function (body) {
      if (!body.success) {
        renderError(target, body.error);
        return;
      }
      target.innerHTML = "";
      target.appendChild(statsTable(body.statistics));
      target.appendChild(heading("Summary"));
      target.appendChild(preBlock(body.summary));
      target.appendChild(heading("Cleaned text (preview)"));
      target.appendChild(preBlock(body.cleaned_text));
    })
    .catch(function () { renderError(target, "request failed"); });
});

document.getElementById("analyze-btn").addEventListener("click", function () {
  var target = document.getElementById("analyze-result");
  target.textContent = "Working...";
  postJSON("/api/analyze", { text: document.getElementById("text").value })
    .then(function (body) {
      if (!body.success) {
        renderError(target, body.error);
        return;
      }
      target.innerHTML = "";
      target.appendChild(statsTable(body.statistics));
    })
    .catch(function () { renderError(target, "request failed"); });
});
</script>
</body>
</html>
`
