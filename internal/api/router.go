package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered. The
// database handle, JWT secret and base URL are injected here so tests can
// provide their own.
func NewRouter(db *sql.DB, jwtSecret, baseURL string) http.Handler {
	mux := http.NewServeMux()

	urls := URLBuilder{Base: baseURL}
	garmentsHandler := &GarmentsHandler{DB: db, URLs: urls}
	commentsHandler := &CommentsHandler{DB: db, URLs: urls}
	labelsHandler := &LabelsHandler{DB: db, URLs: urls}
	usersHandler := &UsersHandler{DB: db, JWTSecret: jwtSecret, URLs: urls}

	authMW := AuthMiddleware(jwtSecret)
	optionalAuth := OptionalAuth(jwtSecret)

	// Garments.
	mux.HandleFunc("GET /api/garments", garmentsHandler.List)
	mux.HandleFunc("POST /api/garments", garmentsHandler.Create)
	mux.HandleFunc("GET /api/garments/{id}", garmentsHandler.GetContent)
	mux.HandleFunc("PUT /api/garments/{id}", garmentsHandler.Update)
	mux.HandleFunc("DELETE /api/garments/{id}", garmentsHandler.Delete)
	mux.HandleFunc("GET /api/garments/{id}/thumbnail", garmentsHandler.GetThumbnail)
	mux.HandleFunc("GET /api/garments/{id}/comments", garmentsHandler.ListComments)
	mux.HandleFunc("GET /api/garments/{id}/labels", garmentsHandler.ListLabels)
	mux.HandleFunc("POST /api/garments/{id}/labels/{label_id}", garmentsHandler.AddLabel)
	mux.HandleFunc("DELETE /api/garments/{id}/labels/{label_id}", garmentsHandler.RemoveLabel)

	// Comments. Creation records the author when a valid token is sent.
	mux.HandleFunc("GET /api/comments", commentsHandler.List)
	mux.Handle("POST /api/comments", optionalAuth(http.HandlerFunc(commentsHandler.Create)))
	mux.HandleFunc("GET /api/comments/{id}", commentsHandler.Get)
	mux.HandleFunc("PUT /api/comments/{id}", commentsHandler.Update)
	mux.HandleFunc("DELETE /api/comments/{id}", commentsHandler.Delete)

	// Labels require a valid session token. Browsing garments by label
	// stays open like the rest of the garment endpoints.
	mux.Handle("GET /api/labels", authMW(http.HandlerFunc(labelsHandler.List)))
	mux.Handle("POST /api/labels", authMW(http.HandlerFunc(labelsHandler.Create)))
	mux.Handle("GET /api/labels/{id}", authMW(http.HandlerFunc(labelsHandler.Get)))
	mux.Handle("DELETE /api/labels/{id}", authMW(http.HandlerFunc(labelsHandler.Delete)))
	mux.HandleFunc("GET /api/labels/{id}/garments", labelsHandler.ListGarments)

	// Users.
	mux.HandleFunc("POST /api/users", usersHandler.Register)
	mux.HandleFunc("POST /api/users/login", usersHandler.Login)

	return mux
}
