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
	"time"
)

type questionInfo struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int32  `json:"difficulty"`
	Category   int64  `json:"category"`
}

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func baseURL() string {
	return envOrDefault("INTEGRATION_BASE_URL", "http://localhost:5000")
}

// createQuestion inserts a uniquely-worded question in category 1 and
// registers cleanup so runs stay independent.
func createQuestion(t *testing.T, text string) questionInfo {
	t.Helper()

	payload := map[string]any{
		"question":   fmt.Sprintf("%s (%d)", text, time.Now().UnixNano()),
		"answer":     "integration answer",
		"category":   1,
		"difficulty": 1,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal question payload: %v", err)
	}

	resp, err := http.Post(fmt.Sprintf("%s/questions", baseURL()), "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("create question request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected create response status: %d", resp.StatusCode)
	}

	var out struct {
		Success  bool         `json:"success"`
		Question questionInfo `json:"question"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode create response failed: %v", err)
	}
	if !out.Success || out.Question.ID == 0 {
		t.Fatalf("create response missing assigned id: %+v", out)
	}

	t.Cleanup(func() {
		deleteQuestion(t, out.Question.ID)
	})
	return out.Question
}

func deleteQuestion(t *testing.T, id int64) int {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/questions/%d", baseURL(), id), nil)
	if err != nil {
		t.Fatalf("build delete request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete question request failed: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func postJSON(t *testing.T, path string, payload any) (*http.Response, func()) {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	resp, err := http.Post(baseURL()+path, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return resp, func() { resp.Body.Close() }
}
