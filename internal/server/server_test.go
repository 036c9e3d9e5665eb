package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/drafthaus/orthodraw/pkg/session"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	srv := New(logger, session.NewMemoryStore())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

func TestHealth(t *testing.T) {
	ts := testServer(t)

	resp, body := get(t, ts, "/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if body != "ok\n" {
		t.Errorf("body = %q, want ok", body)
	}
}

func TestDrawingSVG(t *testing.T) {
	ts := testServer(t)

	resp, body := get(t, ts, "/drawing.svg?width=6&height=4&depth=5&area_width=16&area_height=16")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.HasPrefix(body, "<svg") {
		t.Errorf("body is not SVG: %.60s", body)
	}
	if strings.Contains(body, ">unknown</text>") {
		t.Error("calculated drawing should not contain placeholder labels")
	}
}

func TestDrawingSVGPlaceholder(t *testing.T) {
	ts := testServer(t)

	// No input fields at all renders the initial placeholder state.
	resp, body := get(t, ts, "/drawing.svg")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(body, ">unknown</text>") {
		t.Error("placeholder drawing should label dimensions as unknown")
	}
}

func TestDrawingSVGBadTheme(t *testing.T) {
	ts := testServer(t)

	resp, body := get(t, ts, "/drawing.svg?theme=neon")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var out map[string]string
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	if out["code"] != "INVALID_THEME" {
		t.Errorf("code = %q, want INVALID_THEME", out["code"])
	}
}

func TestDrawingJSON(t *testing.T) {
	ts := testServer(t)

	resp, body := get(t, ts, "/drawing.json?width=6&height=4&depth=5&area_width=16&area_height=16")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out struct {
		Calculated bool              `json:"calculated"`
		Spacing    map[string]string `json:"spacing"`
	}
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if !out.Calculated {
		t.Error("calculated = false, want true")
	}
	if out.Spacing["v0"] != "2.00" || out.Spacing["v1"] != "3.00" {
		t.Errorf("vertical spacing = %v", out.Spacing)
	}
	if out.Spacing["h0"] != "1.50" || out.Spacing["h1"] != "2.00" {
		t.Errorf("horizontal spacing = %v", out.Spacing)
	}
}

func TestSessionFlow(t *testing.T) {
	ts := testServer(t)

	// Calculate once.
	resp, err := http.Post(ts.URL+"/sessions", "application/json",
		strings.NewReader(`{"width":"6","height":"4","depth":"5","area_width":"16","area_height":"16"}`))
	if err != nil {
		t.Fatalf("POST /sessions: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", resp.StatusCode, body)
	}

	var created struct {
		ID      string            `json:"id"`
		Spacing map[string]string `json:"spacing"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if created.ID == "" {
		t.Fatal("no session id returned")
	}
	if created.Spacing["h0"] != "1.50" {
		t.Errorf("spacing[h0] = %q, want 1.50", created.Spacing["h0"])
	}

	// Resize twice: same inputs, different viewports.
	for _, avail := range []string{"avail_width=400&avail_height=300", "avail_width=1200&avail_height=900"} {
		resp, svg := get(t, ts, "/sessions/"+created.ID+"/drawing.svg?"+avail)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("resize render status = %d", resp.StatusCode)
		}
		if strings.Contains(svg, ">unknown</text>") {
			t.Error("session render should use the stored inputs, not placeholders")
		}
	}

	// The textual summary matches the calculation.
	resp2, spacingBody := get(t, ts, "/sessions/"+created.ID+"/spacing")
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("spacing status = %d", resp2.StatusCode)
	}
	var spacing map[string]string
	if err := json.Unmarshal([]byte(spacingBody), &spacing); err != nil {
		t.Fatalf("spacing is not JSON: %v", err)
	}
	if spacing["v1"] != "3.00" {
		t.Errorf("spacing[v1] = %q, want 3.00", spacing["v1"])
	}

	// Delete, then the session is gone.
	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/sessions/"+created.ID, nil)
	resp3, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE: %v", err)
	}
	resp3.Body.Close()
	if resp3.StatusCode != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", resp3.StatusCode)
	}

	resp4, _ := get(t, ts, "/sessions/"+created.ID+"/spacing")
	if resp4.StatusCode != http.StatusNotFound {
		t.Errorf("status after delete = %d, want 404", resp4.StatusCode)
	}
}

func TestSessionNotFound(t *testing.T) {
	ts := testServer(t)

	resp, body := get(t, ts, "/sessions/nope/drawing.svg")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	var out map[string]string
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	if out["code"] != "SESSION_NOT_FOUND" {
		t.Errorf("code = %q, want SESSION_NOT_FOUND", out["code"])
	}
}

func TestCreateSessionBadBody(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Post(ts.URL+"/sessions", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("POST /sessions: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
