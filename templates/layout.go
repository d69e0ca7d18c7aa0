// Package templates holds the templ components for every page and fragment.
// Components write HTML directly; all dynamic values pass through
// templ.EscapeString.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Page wraps a body component in the full HTML shell: head, nav, toast
// region, htmx script.
func Page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<link href="https://cdn.jsdelivr.net/npm/daisyui@4.12.10/dist/full.min.css" rel="stylesheet" type="text/css">
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="min-h-screen bg-base-200">
`, templ.EscapeString(title)); err != nil {
			return err
		}
		if err := navbar().Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main id="content" class="container mx-auto p-4 max-w-4xl">
`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</main>
<div id="toast-region" class="toast toast-top toast-end"></div>
<script>
document.body.addEventListener("showToast", function (evt) {
  var detail = evt.detail;
  var el = document.createElement("div");
  el.className = "alert alert-" + (detail.type || "info");
  el.textContent = detail.message;
  document.getElementById("toast-region").appendChild(el);
  setTimeout(function () { el.remove(); }, 4000);
});
</script>
</body>
</html>
`); err != nil {
			return err
		}
		return nil
	})
}

func navbar() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<nav class="navbar bg-base-100 shadow">
<div class="flex-1">
<a href="/quotations/new" class="btn btn-ghost text-xl">OM Photography</a>
</div>
<div class="flex-none gap-2">
<a href="/quotations/new" class="btn btn-sm btn-primary">New Quotation</a>
<a href="/quotations" class="btn btn-sm btn-ghost">History</a>
<a href="/catalog/pricelist.pdf" class="btn btn-sm btn-ghost">Price List</a>
<a href="/quotations/register.xlsx" class="btn btn-sm btn-ghost">Register</a>
</div>
</nav>
`)
		return err
	})
}
