package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/erazemk/garderoba/internal/model"
)

func TestCommentCreateValidation(t *testing.T) {
	server := setupTestServer(t)

	// Missing fields.
	req, _ := authRequest("POST", server.URL+"/api/comments", "", map[string]any{"text": "no garment"})
	resp, _ := http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for missing garment_id, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Unknown garment.
	req, _ = authRequest("POST", server.URL+"/api/comments", "", map[string]any{"garment_id": 9999, "text": "ghost"})
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown garment, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestCommentFlow(t *testing.T) {
	server := setupTestServer(t)

	uploadGarment(t, server.URL, "kilt.jpg", model.TypeImage, testJPEG(10, 10)).Body.Close()

	req, _ := authRequest("POST", server.URL+"/api/comments", "", map[string]any{"garment_id": 1, "text": "hem is torn"})
	resp, _ := http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if resp.Header.Get("Location") == "" {
		t.Error("expected Location header on 201")
	}
	resp.Body.Close()

	// Get by id.
	resp, _ = http.Get(server.URL + "/api/comments/1")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var comment map[string]any
	json.NewDecoder(resp.Body).Decode(&comment)
	resp.Body.Close()
	if comment["text"] != "hem is torn" {
		t.Errorf("expected comment text, got %v", comment["text"])
	}
	if _, ok := comment["author_id"]; ok {
		t.Error("expected no author for anonymous comment")
	}

	// Update text only.
	req, _ = authRequest("PUT", server.URL+"/api/comments/1", "", map[string]any{"text": "fixed"})
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Empty patch.
	req, _ = authRequest("PUT", server.URL+"/api/comments/1", "", map[string]any{})
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for empty patch, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Moving to an unknown garment fails.
	req, _ = authRequest("PUT", server.URL+"/api/comments/1", "", map[string]any{"garment_id": 9999})
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown garment, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Delete, then delete again.
	req, _ = authRequest("DELETE", server.URL+"/api/comments/1", "", nil)
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	req, _ = authRequest("DELETE", server.URL+"/api/comments/1", "", nil)
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for deleted comment, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestCommentAuthorFromToken(t *testing.T) {
	server := setupTestServer(t)
	token := registerAndLogin(t, server.URL, "ana", model.RoleDancer)

	uploadGarment(t, server.URL, "kilt.jpg", model.TypeImage, testJPEG(10, 10)).Body.Close()

	req, _ := authRequest("POST", server.URL+"/api/comments", token, map[string]any{"garment_id": 1, "text": "signed note"})
	resp, _ := http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp, _ = http.Get(server.URL + "/api/comments/1")
	var comment map[string]any
	json.NewDecoder(resp.Body).Decode(&comment)
	resp.Body.Close()
	if comment["author_id"] == nil {
		t.Error("expected author_id from session token")
	}
}

func TestCommentsByGarment(t *testing.T) {
	server := setupTestServer(t)

	uploadGarment(t, server.URL, "kilt.jpg", model.TypeImage, testJPEG(10, 10)).Body.Close()
	uploadGarment(t, server.URL, "avba.jpg", model.TypeImage, testJPEG(12, 12)).Body.Close()

	for _, c := range []map[string]any{
		{"garment_id": 1, "text": "first"},
		{"garment_id": 1, "text": "second"},
		{"garment_id": 2, "text": "other"},
	} {
		req, _ := authRequest("POST", server.URL+"/api/comments", "", c)
		resp, _ := http.DefaultClient.Do(req)
		resp.Body.Close()
	}

	resp, _ := http.Get(server.URL + "/api/garments/1/comments")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var comments []map[string]any
	json.NewDecoder(resp.Body).Decode(&comments)
	resp.Body.Close()
	if len(comments) != 2 {
		t.Errorf("expected 2 comments, got %d", len(comments))
	}

	resp, _ = http.Get(server.URL + "/api/garments/9999/comments")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown garment, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}
