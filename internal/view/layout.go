// Package view renders the blog's HTML pages as templ components.
// Components are plain templ.ComponentFunc values so handlers can both
// render full pages and stream fragments over SSE.
package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/jmorhart/inkwell/internal/domain"
)

// esc escapes a string for safe interpolation into HTML.
func esc(s string) string {
	return templ.EscapeString(s)
}

// layout wraps page content with the shared chrome: head, nav with
// auth-aware links, flash banner, and footer.
func layout(title string, user *domain.User, flash string, content func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s · Inkwell</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script>
</head>
<body>
<nav>
<a href="/">Home</a>
<a href="/about">About</a>
<a href="/contact">Contact</a>
`, esc(title)); err != nil {
			return err
		}

		if user != nil {
			if user.IsAdmin() {
				if _, err := io.WriteString(w, `<a href="/new-post">New Post</a>
`); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, `<span class="nav-user">%s</span>
<a href="/logout">Log Out</a>
`, esc(user.Name)); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<a href="/login">Log In</a>
<a href="/register">Register</a>
`); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, "</nav>\n"); err != nil {
			return err
		}

		if flash != "" {
			if _, err := fmt.Fprintf(w, `<div class="flash">%s</div>
`, esc(flash)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, "<main>\n"); err != nil {
			return err
		}
		if err := content(w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main>\n</body>\n</html>\n")
		return err
	})
}
