package api

import (
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RonaldMark17/TrueBayan/internal/credibility"
	"github.com/RonaldMark17/TrueBayan/internal/storage"
)

// reportDomain extracts the host for source aggregation, falling back to the
// raw string when the URL does not parse.
func reportDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return strings.ToLower(u.Host)
}

func (s *Server) recordReport(userID uint, title, articleURL string, result credibility.Result) error {
	report := &storage.FakeNewsReport{
		UserID:          userID,
		ArticleURL:      articleURL,
		ArticleTitle:    title,
		SourceURL:       articleURL,
		DetectionLabel:  result.Label,
		ConfidenceScore: result.Confidence,
		AIScore:         result.Score,
		Reasons:         strings.Join(result.Reasons, "; "),
		ReportedAt:      time.Now(),
	}
	if err := s.store.InsertReport(report); err != nil {
		return err
	}
	return s.store.RecordSourceReport(reportDomain(articleURL), articleURL, result.Confidence)
}

type reportRequest struct {
	Title       string `json:"title" form:"title"`
	URL         string `json:"url" form:"url"`
	Description string `json:"description" form:"description"`
}

// reportFake scores an article the user already has in front of them and
// files the report under their account.
func (s *Server) reportFake(c *gin.Context) {
	var req reportRequest
	if err := c.Bind(&req); err != nil {
		return
	}
	if req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "url is required"})
		return
	}

	result := credibility.Score(req.Description, req.URL)
	if err := s.recordReport(currentUserID(c), req.Title, req.URL, result); err != nil {
		log.Printf("reports: record: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"label":      result.Label,
		"confidence": result.Confidence,
		"ai_score":   result.Score,
		"reasons":    result.Reasons,
	})
}

// submitFakeURL analyzes an arbitrary URL: the page is scraped and its
// title, description and body are scored together.
func (s *Server) submitFakeURL(c *gin.Context) {
	var req struct {
		URL string `json:"url" form:"url"`
	}
	if err := c.Bind(&req); err != nil {
		return
	}
	if req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "url is required"})
		return
	}

	page, err := s.pages.FetchPage(req.URL)
	if err != nil {
		log.Printf("reports: fetch %s: %v", req.URL, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Could not analyze URL. The site might be blocking our scanner.",
		})
		return
	}

	text := page.Title + ". " + page.Description + ". " + page.Body
	result := credibility.Score(text, req.URL)
	if err := s.recordReport(currentUserID(c), page.Title, req.URL, result); err != nil {
		log.Printf("reports: record: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"title":      page.Title,
		"label":      result.Label,
		"confidence": result.Confidence,
		"ai_score":   result.Score,
		"reasons":    result.Reasons,
	})
}

func (s *Server) blacklistSource(c *gin.Context) {
	var req struct {
		SourceID uint   `json:"source_id" form:"source_id"`
		Action   string `json:"action" form:"action"`
	}
	if err := c.Bind(&req); err != nil {
		return
	}
	if req.SourceID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "source_id is required"})
		return
	}

	blacklisted := req.Action == "blacklist"
	if err := s.store.SetSourceBlacklist(req.SourceID, blacklisted); err != nil {
		log.Printf("reports: blacklist: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
