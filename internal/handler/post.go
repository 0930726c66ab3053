package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jmorhart/inkwell/internal/domain"
	"github.com/jmorhart/inkwell/internal/service"
	"github.com/jmorhart/inkwell/internal/view"
	"github.com/starfederation/datastar-go/datastar"
)

// PostHandler handles post pages and admin post management.
type PostHandler struct {
	posts    *service.PostService
	comments *service.CommentService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts *service.PostService, comments *service.CommentService) *PostHandler {
	return &PostHandler{posts: posts, comments: comments}
}

// HandleHome renders the post list.
// GET /
func (h *PostHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	posts, err := h.posts.List(r.Context())
	if err != nil {
		slog.Error("list posts", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view.HomePage(UserFromContext(r.Context()), takeFlash(w, r), posts).Render(r.Context(), w)
}

// HandleShow renders a post with its comments.
// GET /post/{id}
func (h *PostHandler) HandleShow(w http.ResponseWriter, r *http.Request) {
	post, ok := h.loadPost(w, r)
	if !ok {
		return
	}
	view.PostPage(UserFromContext(r.Context()), takeFlash(w, r), post).Render(r.Context(), w)
}

// HandleAddComment processes the plain comment form and re-renders the
// post page with the new comment (POST-redirect-GET).
// POST /post/{id}
func (h *PostHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	user := UserFromContext(r.Context())
	if user == nil {
		setFlash(w, "Log in to comment.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if _, err := h.comments.Add(r.Context(), id, user.ID, r.PostFormValue("text")); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			http.Error(w, "Not Found", http.StatusNotFound)
		case errors.Is(err, domain.ErrInvalidInput):
			setFlash(w, "Comment text is required.")
			http.Redirect(w, r, "/post/"+r.PathValue("id"), http.StatusSeeOther)
		default:
			slog.Error("add comment", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/post/"+r.PathValue("id"), http.StatusSeeOther)
}

// HandleAddCommentSSE is the datastar variant of the comment form: the
// stored comment is appended to the on-page list as an SSE fragment
// patch, without a full page reload.
// POST /post/{id}/comments
func (h *PostHandler) HandleAddCommentSSE(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	user := UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	comment, err := h.comments.Add(r.Context(), id, user.ID, r.PostFormValue("text"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			http.Error(w, "Not Found", http.StatusNotFound)
		case errors.Is(err, domain.ErrInvalidInput):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			slog.Error("add comment", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(
		view.CommentItem(*comment),
		datastar.WithSelectorID("comment-list"),
		datastar.WithModeAppend(),
	)
}

// HandleNewForm renders the post creation form. Admin-gated upstream.
// GET /new-post
func (h *PostHandler) HandleNewForm(w http.ResponseWriter, r *http.Request) {
	view.PostEditorPage(UserFromContext(r.Context()), nil, "").Render(r.Context(), w)
}

// HandleCreate processes post creation. Admin-gated upstream.
// POST /new-post
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	post := &domain.Post{
		AuthorID: user.ID,
		Title:    r.PostFormValue("title"),
		Subtitle: r.PostFormValue("subtitle"),
		Body:     r.PostFormValue("body"),
		ImgURL:   r.PostFormValue("img_url"),
	}

	if err := h.posts.Create(r.Context(), post); err != nil {
		h.renderEditorWithError(w, r, user, post, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleEditForm renders the edit form pre-filled from the stored post.
// Admin-gated upstream.
// GET /edit-post/{id}
func (h *PostHandler) HandleEditForm(w http.ResponseWriter, r *http.Request) {
	post, ok := h.loadPost(w, r)
	if !ok {
		return
	}
	view.PostEditorPage(UserFromContext(r.Context()), post, "").Render(r.Context(), w)
}

// HandleUpdate processes an edit submission and redirects to the post
// page. Submissions are accepted only on POST; the publication date is
// never rewritten. Admin-gated upstream.
// POST /edit-post/{id}
func (h *PostHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	user := UserFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	post := &domain.Post{
		ID:       id,
		AuthorID: user.ID,
		Title:    r.PostFormValue("title"),
		Subtitle: r.PostFormValue("subtitle"),
		Body:     r.PostFormValue("body"),
		ImgURL:   r.PostFormValue("img_url"),
	}

	if err := h.posts.Update(r.Context(), post); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.renderEditorWithError(w, r, user, post, err)
		return
	}

	http.Redirect(w, r, "/post/"+r.PathValue("id"), http.StatusSeeOther)
}

// HandleDelete removes a post and its comments. Admin-gated upstream.
// GET /delete/{id}
func (h *PostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.posts.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		slog.Error("delete post", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// HandleAbout renders the static about page.
// GET /about
func (h *PostHandler) HandleAbout(w http.ResponseWriter, r *http.Request) {
	view.AboutPage(UserFromContext(r.Context())).Render(r.Context(), w)
}

// HandleContact renders the static contact page.
// GET /contact
func (h *PostHandler) HandleContact(w http.ResponseWriter, r *http.Request) {
	view.ContactPage(UserFromContext(r.Context())).Render(r.Context(), w)
}

func (h *PostHandler) loadPost(w http.ResponseWriter, r *http.Request) (*domain.Post, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return nil, false
	}

	post, err := h.posts.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return nil, false
		}
		slog.Error("get post", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}
	return post, true
}

func (h *PostHandler) renderEditorWithError(w http.ResponseWriter, r *http.Request, user *domain.User, post *domain.Post, err error) {
	var message string
	switch {
	case errors.Is(err, domain.ErrDuplicateTitle):
		message = "A post with that title already exists."
	case errors.Is(err, domain.ErrInvalidInput):
		message = err.Error()
	default:
		slog.Error("save post", "error", err)
		message = "An unexpected error occurred. Please try again."
	}

	w.WriteHeader(http.StatusUnprocessableEntity)
	view.PostEditorPage(user, post, message).Render(r.Context(), w)
}
