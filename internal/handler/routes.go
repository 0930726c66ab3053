package handler

import (
	"net/http"

	"github.com/jmorhart/inkwell/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Every route
// runs OptionalAuth so pages can render nav state for the current
// identity; the post-management routes additionally run RequireAdmin.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, posts *service.PostService, comments *service.CommentService, cookieSecure bool) {
	authHandler := NewAuthHandler(auth, cookieSecure)
	postHandler := NewPostHandler(posts, comments)

	public := func(h http.HandlerFunc) http.Handler {
		return OptionalAuth(auth, h)
	}
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return OptionalAuth(auth, RequireAdmin(h))
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.Handle("GET /", public(postHandler.HandleHome))
	mux.Handle("GET /about", public(postHandler.HandleAbout))
	mux.Handle("GET /contact", public(postHandler.HandleContact))

	mux.Handle("GET /register", public(authHandler.HandleRegisterForm))
	mux.Handle("POST /register", public(authHandler.HandleRegister))
	mux.Handle("GET /login", public(authHandler.HandleLoginForm))
	mux.Handle("POST /login", public(authHandler.HandleLogin))
	mux.Handle("GET /logout", public(authHandler.HandleLogout))

	mux.Handle("GET /post/{id}", public(postHandler.HandleShow))
	mux.Handle("POST /post/{id}", public(postHandler.HandleAddComment))
	mux.Handle("POST /post/{id}/comments", public(postHandler.HandleAddCommentSSE))

	mux.Handle("GET /new-post", adminOnly(postHandler.HandleNewForm))
	mux.Handle("POST /new-post", adminOnly(postHandler.HandleCreate))
	mux.Handle("GET /edit-post/{id}", adminOnly(postHandler.HandleEditForm))
	mux.Handle("POST /edit-post/{id}", adminOnly(postHandler.HandleUpdate))
	mux.Handle("GET /delete/{id}", adminOnly(postHandler.HandleDelete))
}
