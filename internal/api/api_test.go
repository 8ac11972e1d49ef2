package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestReportDomain(t *testing.T) {
	if got := reportDomain("https://Fake-News.example.com/story/123"); got != "fake-news.example.com" {
		t.Fatalf("reportDomain = %q, want host", got)
	}
	if got := reportDomain("not a url at all"); got != "not a url at all" {
		t.Fatalf("reportDomain fallback = %q, want raw input", got)
	}
}

func TestAPISummarizeShortText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}
	r := gin.New()
	r.POST("/api/summarize", s.apiSummarize)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader(`{"text":"too short"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "too short to summarize") {
		t.Fatalf("body = %s, want short-content message", w.Body.String())
	}
}

func TestAPISummarizeShortMultibyteText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}
	r := gin.New()
	r.POST("/api/summarize", s.apiSummarize)

	// 60 characters, 120 bytes: still under the 100-character minimum.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/summarize",
		strings.NewReader(`{"text":"`+strings.Repeat("ñ", 60)+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "too short to summarize") {
		t.Fatalf("body = %s, want short-content message", w.Body.String())
	}
}

func TestAPISummarizeLongText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}
	r := gin.New()
	r.POST("/api/summarize", s.apiSummarize)

	text := strings.Repeat("The committee approved the measure after a long hearing. ", 5)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader(`{"text":"`+strings.TrimSpace(text)+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "summary") {
		t.Fatalf("body = %s, want a summary field", w.Body.String())
	}
}
