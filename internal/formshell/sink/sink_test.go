package sink

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
}

func TestReceiveAndList(t *testing.T) {
	_, ts := newTestServer(t)
	body := `{"name":"Ada","score":5}`
	resp, err := http.Post(ts.URL+"/api/submissions", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	var env struct {
		OK   bool       `json:"ok"`
		Data Submission `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	if !env.OK || env.Data.ID == "" {
		t.Fatalf("expected ok envelope with id, got %+v", env)
	}
	if env.Data.Data["name"] != "Ada" {
		t.Fatalf("expected echoed payload, got %+v", env.Data.Data)
	}

	listResp, err := http.Get(ts.URL + "/api/submissions")
	if err != nil {
		t.Fatal(err)
	}
	defer listResp.Body.Close()
	var listEnv struct {
		OK   bool         `json:"ok"`
		Data []Submission `json:"data"`
	}
	if err := json.NewDecoder(listResp.Body).Decode(&listEnv); err != nil {
		t.Fatal(err)
	}
	if len(listEnv.Data) != 1 || listEnv.Data[0].ID != env.Data.ID {
		t.Fatalf("expected stored submission, got %+v", listEnv.Data)
	}
}

func TestReceiveRejectsNonObject(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Post(ts.URL+"/api/submissions", "application/json", strings.NewReader(`[1,2]`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
}

func TestListenRejectsNonLoopback(t *testing.T) {
	s, err := New("")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.ListenAndServe("0.0.0.0:0"); err == nil {
		t.Fatalf("expected non-loopback rejection")
	}
}
