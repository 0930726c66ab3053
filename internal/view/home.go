package view

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/jmorhart/inkwell/internal/domain"
)

// HomePage renders the post list.
func HomePage(user *domain.User, flash string, posts []domain.Post) templ.Component {
	return layout("Home", user, flash, func(w io.Writer) error {
		if _, err := io.WriteString(w, "<h1>Inkwell</h1>\n<section class=\"posts\">\n"); err != nil {
			return err
		}

		if len(posts) == 0 {
			if _, err := io.WriteString(w, "<p>No posts yet.</p>\n"); err != nil {
				return err
			}
		}

		for _, p := range posts {
			if _, err := fmt.Fprintf(w, `<article class="post-card">
<h2><a href="/post/%d">%s</a></h2>
<h3>%s</h3>
<p class="byline">Posted by %s on %s</p>
`, p.ID, esc(p.Title), esc(p.Subtitle), esc(p.Author.Name), esc(p.Date)); err != nil {
				return err
			}
			if user.IsAdmin() {
				if _, err := fmt.Fprintf(w, `<a href="/edit-post/%d">Edit</a>
<a href="/delete/%d">Delete</a>
`, p.ID, p.ID); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</article>\n"); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</section>\n")
		return err
	})
}

// AboutPage renders the static about page.
func AboutPage(user *domain.User) templ.Component {
	return layout("About", user, "", func(w io.Writer) error {
		_, err := io.WriteString(w, "<h1>About Us</h1>\n<p>Inkwell is a small blog about whatever is on the author's mind.</p>\n")
		return err
	})
}

// ContactPage renders the static contact page.
func ContactPage(user *domain.User) templ.Component {
	return layout("Contact", user, "", func(w io.Writer) error {
		_, err := io.WriteString(w, "<h1>Contact</h1>\n<p>Reach the author at the usual places.</p>\n")
		return err
	})
}
