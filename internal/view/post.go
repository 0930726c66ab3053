package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/jmorhart/inkwell/internal/domain"
)

// PostPage renders a single post with its comments and, for logged-in
// readers, the comment form. The form posts the comment over SSE via
// datastar and falls back to a plain form submission without JavaScript.
func PostPage(user *domain.User, flash string, post *domain.Post) templ.Component {
	return layout(post.Title, user, flash, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<article class="post">
<h1>%s</h1>
<h2>%s</h2>
<p class="byline">Posted by %s on %s</p>
<img src="%s" alt="">
<div class="post-body">%s</div>
</article>
`, esc(post.Title), esc(post.Subtitle), esc(post.Author.Name), esc(post.Date),
			esc(post.ImgURL), post.Body); err != nil {
			return err
		}

		if user.IsAdmin() {
			if _, err := fmt.Fprintf(w, `<a href="/edit-post/%d">Edit</a>
<a href="/delete/%d">Delete</a>
`, post.ID, post.ID); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<section class="comments">
<h3>Comments</h3>
<ul id="comment-list">
`); err != nil {
			return err
		}
		for _, c := range post.Comments {
			if err := writeComment(w, c); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</ul>\n"); err != nil {
			return err
		}

		if user != nil {
			if _, err := fmt.Fprintf(w, `<form method="post" action="/post/%d" data-on-submit="@post('/post/%d/comments', {contentType: 'form'})">
<label>Comment <textarea name="text" required></textarea></label>
<button type="submit">Submit Comment</button>
</form>
`, post.ID, post.ID); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<p><a href="/login">Log in</a> to comment.</p>
`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</section>\n")
		return err
	})
}

// CommentItem renders one comment list entry. It is also streamed as an
// SSE fragment appended to #comment-list after a datastar submission.
func CommentItem(c domain.Comment) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeComment(w, c)
	})
}

func writeComment(w io.Writer, c domain.Comment) error {
	_, err := fmt.Fprintf(w, `<li id="comment-%d" class="comment">
<p>%s</p>
<p class="byline">%s</p>
</li>
`, c.ID, esc(c.Text), esc(c.Author.Name))
	return err
}

// PostEditorPage renders the post creation/edit form. A nil post means a
// new post; otherwise the form is pre-filled and submits to the edit route.
func PostEditorPage(user *domain.User, post *domain.Post, errMsg string) templ.Component {
	title := "New Post"
	action := "/new-post"
	var titleVal, subtitleVal, imgVal, bodyVal string
	if post != nil {
		titleVal, subtitleVal, imgVal, bodyVal = post.Title, post.Subtitle, post.ImgURL, post.Body
		// A post without an ID is a failed creation being re-rendered;
		// it still submits to the create route.
		if post.ID != 0 {
			title = "Edit Post"
			action = fmt.Sprintf("/edit-post/%d", post.ID)
		}
	}

	return layout(title, user, errMsg, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>%s</h1>
<form method="post" action="%s">
<label>Title <input type="text" name="title" value="%s" required></label>
<label>Subtitle <input type="text" name="subtitle" value="%s" required></label>
<label>Image URL <input type="url" name="img_url" value="%s"></label>
<label>Body <textarea name="body" required>%s</textarea></label>
<button type="submit">Save Post</button>
</form>
`, esc(title), action, esc(titleVal), esc(subtitleVal), esc(imgVal), esc(bodyVal))
		return err
	})
}
