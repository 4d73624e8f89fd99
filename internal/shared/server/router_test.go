package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/analyses"
	"resume-matcher/internal/llm"
	"resume-matcher/internal/matching"
	"resume-matcher/internal/matching/taxonomy"
	"resume-matcher/internal/optimize"
	"resume-matcher/internal/services/health"
	"resume-matcher/internal/shared/config"
)

const analyzeBody = `{"resumeText":"I have experience with Python and SQL databases.","jobDescription":"Looking for a candidate skilled in Python, Java, and leadership."}`

func newTestRouter(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tax := taxonomy.Default()
	return NewRouter(RouterDeps{
		Config:          cfg,
		AnalysisHandler: analyses.NewHandler(analyses.NewService(matching.New(tax))),
		OptimizeHandler: optimize.NewHandler(optimize.NewService(llm.PlaceholderClient{})),
		Health:          health.NewService("builtin", tax),
		Taxonomy:        tax,
	})
}

func testConfig() config.Config {
	return config.Config{
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:3000"},
		RateLimitRPS:    100,
		RateLimitBurst:  100,
	}
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAnalyzeServedAtRootAndVersionedPath(t *testing.T) {
	router := newTestRouter(t, testConfig())

	for _, path := range []string{"/analyze", "/api/v1/analyze"} {
		resp := serve(router, http.MethodPost, path, analyzeBody)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", path, resp.Code, resp.Body.String())
		}
		var result struct {
			MatchRate int `json:"matchRate"`
		}
		if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
			t.Fatalf("%s: decode: %v", path, err)
		}
		if result.MatchRate != 33 {
			t.Fatalf("%s: expected matchRate 33, got %d", path, result.MatchRate)
		}
		if resp.Header().Get("X-Request-Id") == "" {
			t.Fatalf("%s: expected X-Request-Id header", path)
		}
	}
}

func TestOptimizeServedAtRootAndVersionedPath(t *testing.T) {
	router := newTestRouter(t, testConfig())
	body := `{"resumeText":"r","jobDescription":"j","issues":["Missing: java"]}`

	for _, path := range []string{"/optimize", "/api/v1/optimize"} {
		resp := serve(router, http.MethodPost, path, body)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", path, resp.Code, resp.Body.String())
		}
		if !strings.Contains(resp.Body.String(), llm.PlaceholderOutput) {
			t.Fatalf("%s: unexpected body %s", path, resp.Body.String())
		}
	}
}

func TestHealthReportsTaxonomy(t *testing.T) {
	router := newTestRouter(t, testConfig())

	resp := serve(router, http.MethodGet, "/api/v1/health", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var status health.Status
	if err := json.Unmarshal(resp.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !status.OK || status.Taxonomy.Source != "builtin" {
		t.Fatalf("unexpected status %+v", status)
	}
	if status.Taxonomy.Checksum != taxonomy.Default().Checksum() {
		t.Fatalf("checksum mismatch: %s", status.Taxonomy.Checksum)
	}
}

func TestTaxonomyEndpoint(t *testing.T) {
	router := newTestRouter(t, testConfig())

	resp := serve(router, http.MethodGet, "/api/v1/taxonomy", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var doc taxonomy.Document
	if err := json.Unmarshal(resp.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.Hard) == 0 || len(doc.Soft) == 0 || len(doc.Experience) == 0 || len(doc.Education) == 0 {
		t.Fatalf("expected all sections populated, got %+v", doc)
	}
}

func TestTaxonomyEndpointWithoutTaxonomy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(RouterDeps{Config: testConfig()})

	resp := serve(router, http.MethodGet, "/api/v1/taxonomy", "")
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t, testConfig())
	serve(router, http.MethodPost, "/analyze", analyzeBody)

	resp := serve(router, http.MethodGet, "/metrics", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "analysis_requests_total") {
		t.Fatalf("expected analysis counter in output: %s", resp.Body.String())
	}
}

func TestRateLimitAppliesToPosts(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1
	router := newTestRouter(t, cfg)

	first := serve(router, http.MethodPost, "/analyze", analyzeBody)
	if first.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", first.Code)
	}
	second := serve(router, http.MethodPost, "/analyze", analyzeBody)
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", second.Code)
	}
	if second.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	router := newTestRouter(t, testConfig())
	resp := serve(router, http.MethodGet, "/nope", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestAddr(t *testing.T) {
	tests := map[string]string{
		"":      ":8080",
		"9000":  ":9000",
		":7000": ":7000",
	}
	for in, want := range tests {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
