package analyses

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/matching"
	"resume-matcher/internal/matching/taxonomy"
	"resume-matcher/internal/shared/server/middleware"
)

func setupAnalysisRouter(t *testing.T, engine Analyzer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	NewHandler(NewService(engine)).RegisterRoutes(router)
	return router
}

func postJSON(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAnalyzeEndToEnd(t *testing.T) {
	router := setupAnalysisRouter(t, matching.New(taxonomy.Default()))

	payload, err := json.Marshal(map[string]string{
		"resumeText":     "I have experience with Python and SQL databases.",
		"jobDescription": "Looking for a candidate skilled in Python, Java, and leadership.",
	})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var result struct {
		MatchRate  int `json:"matchRate"`
		Categories []struct {
			Name   string `json:"name"`
			Score  int    `json:"score"`
			Issues []struct {
				Description string `json:"description"`
			} `json:"issues"`
		} `json:"categories"`
		MatchedKeywords []struct {
			Keyword  string `json:"keyword"`
			Context  string `json:"context"`
			Category string `json:"category"`
		} `json:"matchedKeywords"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if result.MatchRate != 33 {
		t.Fatalf("expected matchRate 33, got %d", result.MatchRate)
	}
	if len(result.Categories) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(result.Categories))
	}
	wantNames := []string{"Hard Skills", "Soft Skills", "Experience", "Education"}
	for i, name := range wantNames {
		if result.Categories[i].Name != name {
			t.Fatalf("category %d: expected %q, got %q", i, name, result.Categories[i].Name)
		}
	}
	if result.Categories[0].Score != 90 || result.Categories[1].Score != 90 {
		t.Fatalf("unexpected scores: %+v", result.Categories)
	}
	if len(result.Categories[0].Issues) != 1 || !strings.Contains(result.Categories[0].Issues[0].Description, "java") {
		t.Fatalf("expected one hard-skill issue about java, got %+v", result.Categories[0].Issues)
	}
	if len(result.Categories[1].Issues) != 1 || !strings.Contains(result.Categories[1].Issues[0].Description, "leadership") {
		t.Fatalf("expected one soft-skill issue about leadership, got %+v", result.Categories[1].Issues)
	}
	if len(result.MatchedKeywords) != 1 || result.MatchedKeywords[0].Keyword != "python" || result.MatchedKeywords[0].Category != "hard" {
		t.Fatalf("unexpected matched keywords: %+v", result.MatchedKeywords)
	}
	if !strings.HasPrefix(result.MatchedKeywords[0].Context, `"...`) || !strings.HasSuffix(result.MatchedKeywords[0].Context, `..."`) {
		t.Fatalf("unexpected context format: %q", result.MatchedKeywords[0].Context)
	}
}

func TestAnalyzeIssuesNeverNull(t *testing.T) {
	router := setupAnalysisRouter(t, matching.New(taxonomy.Default()))
	resp := postJSON(t, router, `{"resumeText":"Python","jobDescription":"Python"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if strings.Contains(resp.Body.String(), "null") {
		t.Fatalf("response contains null: %s", resp.Body.String())
	}
}

func TestAnalyzeValidation(t *testing.T) {
	router := setupAnalysisRouter(t, &countingAnalyzer{})

	tests := []struct {
		name string
		body string
	}{
		{name: "missing resume", body: `{"jobDescription":"Go developer"}`},
		{name: "missing job", body: `{"resumeText":"Go developer"}`},
		{name: "empty strings", body: `{"resumeText":"","jobDescription":""}`},
		{name: "empty object", body: `{}`},
		{name: "not json", body: `resume please`},
		{name: "empty body", body: ``},
		{name: "wrong type", body: `{"resumeText":42,"jobDescription":"Go"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, router, tt.body)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.Code)
			}
			var body map[string]any
			if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["error"] != MessageInvalidInput {
				t.Fatalf("unexpected error message: %v", body["error"])
			}
		})
	}
}

func TestAnalyzeInternalError(t *testing.T) {
	router := setupAnalysisRouter(t, panicAnalyzer{})
	resp := postJSON(t, router, `{"resumeText":"a","jobDescription":"b"}`)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != MessageFailed {
		t.Fatalf("unexpected error: %q", body["error"])
	}
	if !strings.Contains(body["details"], "index out of range") {
		t.Fatalf("expected panic message in details, got %q", body["details"])
	}
	if strings.Contains(body["details"], "goroutine") {
		t.Fatalf("stack trace leaked: %q", body["details"])
	}
}
