package web

import "html/template"

// pageTemplate is the single-page web-form rendering of the catalog, the
// pantry, the grocery list and the assistant. It is intentionally plain:
// every action is a POST form followed by a redirect back to "/".
var pageTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>HomeChef</title>
<style>
body { font-family: sans-serif; margin: 2em; max-width: 60em; }
section { border: 1px solid #ccc; border-radius: 6px; padding: 1em; margin-bottom: 1.5em; }
h2 { margin-top: 0; }
li.satisfied { text-decoration: line-through; color: #888; }
pre { background: #f6f6f6; padding: 1em; white-space: pre-wrap; }
.error { color: #a00; }
</style>
</head>
<body>
<h1>HomeChef</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}

<section>
<h2>Recipes</h2>
<form method="GET" action="/">
  <input name="search" placeholder="Search recipes..." value="{{.Search}}">
  <label><input type="checkbox" name="favorites" value="true" {{if .FavoritesOnly}}checked{{end}}> favorites only</label>
  <button>Search</button>
</form>
<ul>
{{range .Recipes}}
  <li>
    <strong>{{.Name}}</strong> ({{.Difficulty}}, {{.CookTime}} min){{if .Favorite}} &#9733;{{end}}
    <form method="POST" action="/recipes/{{.ID}}/favorite" style="display:inline"><button>toggle favorite</button></form>
    <form method="POST" action="/grocery/reconcile/{{.ID}}" style="display:inline"><button>add missing to grocery</button></form>
    <form method="POST" action="/recipes/{{.ID}}/delete" style="display:inline"><button>delete</button></form>
  </li>
{{end}}
</ul>
<h3>Add recipe</h3>
<form method="POST" action="/recipes">
  <p><input name="name" placeholder="Name" required></p>
  <p><textarea name="ingredients" rows="4" cols="50" placeholder="One ingredient per line: name, quantity, unit"></textarea></p>
  <p><textarea name="steps" rows="4" cols="50" placeholder="One step per line"></textarea></p>
  <p><input name="cook_time" type="number" placeholder="Cook time (min)">
  <select name="difficulty">
    <option value="easy">easy</option>
    <option value="medium">medium</option>
    <option value="hard">hard</option>
  </select>
  <button>Add</button></p>
</form>
</section>

<section>
<h2>Pantry</h2>
<ul>
{{range .Pantry}}
  <li>{{.Name}}{{if .Quantity}} &mdash; {{.Quantity}} {{.Unit}}{{end}}
    <form method="POST" action="/pantry/remove" style="display:inline">
      <input type="hidden" name="name" value="{{.Name}}"><button>remove</button>
    </form>
  </li>
{{end}}
</ul>
<form method="POST" action="/pantry">
  <input name="name" placeholder="Ingredient" required>
  <input name="quantity" type="number" step="any" placeholder="Quantity">
  <input name="unit" placeholder="Unit">
  <button>Add to pantry</button>
</form>
</section>

<section>
<h2>Grocery list</h2>
<ul>
{{range .Grocery}}
  <li{{if .Satisfied}} class="satisfied"{{end}}>{{.Name}}{{if .Quantity}} &mdash; {{.Quantity}} {{.Unit}}{{end}}
    <form method="POST" action="/grocery/{{.ID}}/toggle" style="display:inline"><button>check</button></form>
    <form method="POST" action="/grocery/{{.ID}}/delete" style="display:inline"><button>remove</button></form>
  </li>
{{end}}
</ul>
<form method="POST" action="/grocery">
  <input name="name" placeholder="Grocery item" required>
  <button>Add</button>
</form>
<form method="POST" action="/grocery/clear"><button>Clear list</button></form>
<p><a href="/grocery/export">Export as text</a></p>
</section>

<section>
<h2>AI suggestions</h2>
<form method="POST" action="/suggest">
  <input name="ingredients" size="50" placeholder="Comma-separated ingredients you have (e.g., eggs, flour, milk)">
  <button>Suggest recipes</button>
</form>
{{if .Suggestion}}
  {{if .Suggestion.Candidates}}
  <h3>Candidates</h3>
  <ul>{{range .Suggestion.Candidates}}<li>{{.}}</li>{{end}}</ul>
  {{end}}
  <pre>{{.Suggestion.Text}}</pre>
{{end}}
</section>

<section>
<h2>AI assistant</h2>
<form method="POST" action="/chat">
  <input name="message" size="50" placeholder="Ask for cooking tips, substitutions, or guidance...">
  <button>Send</button>
</form>
{{if .ChatReply}}<pre>{{.ChatReply}}</pre>{{end}}
</section>

</body>
</html>
`))
