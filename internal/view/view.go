// Package view holds the HTML components served by the handler package.
package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/msomdec/todo-api/internal/domain"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"

// HomePage renders the single page shell. The list is filled in by the
// /api/todos/feed stream once a token has been entered.
func HomePage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Todos</title>
<script type="module" src="`+datastarScript+`"></script>
</head>
<body data-signals="{token: ''}">
<main>
<h1>Todos</h1>
<label>Token <input type="password" data-bind="token"></label>
<button data-on:click="@get('/api/todos/feed', {headers: {Authorization: $token}})">Load</button>
<ul id="todo-list"></ul>
</main>
</body>
</html>
`)
		return err
	})
}

// TodoList renders the items of the #todo-list element.
func TodoList(todos []domain.Todo) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(todos) == 0 {
			_, err := io.WriteString(w, `<li class="empty">No todos yet.</li>`)
			return err
		}
		for _, td := range todos {
			class := "todo"
			if td.Completed {
				class += " done"
			}
			_, err := io.WriteString(w, `<li id="todo-`+templ.EscapeString(td.ID)+`" class="`+class+`">`+
				templ.EscapeString(td.Text)+`</li>`)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
