//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
)

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	resp, err := http.Get(baseURL + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, decodeJSON(t, resp)
}

func postJSON(t *testing.T, path string, payload any) (int, map[string]any) {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload for %s: %v", path, err)
	}

	resp, err := http.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, decodeJSON(t, resp)
}

func deleteJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, baseURL+path, nil)
	if err != nil {
		t.Fatalf("build DELETE %s: %v", path, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, decodeJSON(t, resp)
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode %s response: %v", resp.Request.URL, err)
	}
	return out
}

// createQuestion inserts a question and returns a cleanup that deletes it.
func createQuestion(t *testing.T, question, answer string, categoryID, difficulty int) func() {
	t.Helper()

	status, _ := postJSON(t, "/questions", map[string]any{
		"question":   question,
		"answer":     answer,
		"category":   categoryID,
		"difficulty": difficulty,
	})
	if status != http.StatusCreated {
		t.Fatalf("unexpected create status: %d", status)
	}

	return func() {
		_, body := postJSON(t, "/questions", map[string]any{"searchTerm": question})
		questions, _ := body["questions"].([]any)
		for _, raw := range questions {
			q, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if id, ok := q["id"].(float64); ok {
				deleteJSON(t, fmt.Sprintf("/questions/%d", int(id)))
			}
		}
	}
}
