package api

import (
	"fmt"
	"net/http"
	"strings"
)

// URLBuilder constructs absolute resource URLs for Location headers and
// creation response bodies. If Base is empty the URL is derived from the
// request's scheme and host.
type URLBuilder struct {
	Base string
}

// Resource returns the absolute URL for the given path.
func (b URLBuilder) Resource(r *http.Request, path string) string {
	if b.Base != "" {
		return strings.TrimRight(b.Base, "/") + path
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host + path
}

// Garment returns the URL of a garment resource.
func (b URLBuilder) Garment(r *http.Request, id int64) string {
	return b.Resource(r, fmt.Sprintf("/api/garments/%d", id))
}

// Comment returns the URL of a comment resource.
func (b URLBuilder) Comment(r *http.Request, id int64) string {
	return b.Resource(r, fmt.Sprintf("/api/comments/%d", id))
}

// Label returns the URL of a label resource.
func (b URLBuilder) Label(r *http.Request, id int64) string {
	return b.Resource(r, fmt.Sprintf("/api/labels/%d", id))
}

// User returns the URL of a user resource.
func (b URLBuilder) User(r *http.Request, id int64) string {
	return b.Resource(r, fmt.Sprintf("/api/users/%d", id))
}

// Association returns the URL of a garment-label association resource.
func (b URLBuilder) Association(r *http.Request, garmentID, labelID int64) string {
	return b.Resource(r, fmt.Sprintf("/api/garments/%d/labels/%d", garmentID, labelID))
}

// created writes a 201 response with a Location header and a {message, url}
// body pointing at the new resource.
func created(w http.ResponseWriter, message, url string) {
	w.Header().Set("Location", url)
	jsonResponse(w, http.StatusCreated, map[string]string{
		"message": message,
		"url":     url,
	})
}
