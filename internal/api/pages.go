package api

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/RonaldMark17/TrueBayan/internal/classify"
	"github.com/RonaldMark17/TrueBayan/internal/feed"
	"github.com/RonaldMark17/TrueBayan/internal/storage"
)

// landing serves the public front page. Logged-in users go straight to the
// dashboard.
func (s *Server) landing(c *gin.Context) {
	if currentUserID(c) != 0 {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{
		"headlines":  s.feeds.LandingHeadlines(ctx),
		"latestNews": s.feeds.Latest(ctx, 0),
	})
}

func (s *Server) dashboard(c *gin.Context) {
	userID := currentUserID(c)
	ctx := c.Request.Context()

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	category := c.Query("category")

	headlines := s.feeds.DashboardHeadlines(ctx, userID, category)
	latest := s.feeds.LatestPaginated(ctx, userID)
	recommended := s.feeds.Personalized(ctx, userID)

	prefs, err := s.store.Preferences(userID)
	if err != nil {
		log.Printf("dashboard: load preferences: %v", err)
	}

	paginated, totalPages := feed.Page(latest, page)
	c.JSON(http.StatusOK, gin.H{
		"headlines":   headlines,
		"latestNews":  paginated,
		"recommended": recommended,
		"preferences": prefs,
		"username":    currentUsername(c),
		"page":        page,
		"totalPages":  totalPages,
	})
}

type searchRequest struct {
	Keyword string `json:"keyword" form:"keyword"`
}

// dashboardSearch runs a keyword search over Philippine coverage with the
// full enrichment set.
func (s *Server) dashboardSearch(c *gin.Context) {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return
	}
	if req.Keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "keyword is required"})
		return
	}

	userID := currentUserID(c)
	ctx := c.Request.Context()

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	results := s.feeds.Search(ctx, userID, req.Keyword)
	paginated, totalPages := feed.Page(results, page)

	c.JSON(http.StatusOK, gin.H{
		"articles":    paginated,
		"keyword":     req.Keyword,
		"recommended": s.feeds.Personalized(ctx, userID),
		"username":    currentUsername(c),
		"page":        page,
		"totalPages":  totalPages,
	})
}

func (s *Server) getPreferences(c *gin.Context) {
	prefs, err := s.store.Preferences(currentUserID(c))
	if err != nil {
		log.Printf("preferences: load: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"preferences": prefs,
		"categories":  classify.CategoryNames(),
		"username":    currentUsername(c),
	})
}

type preferencesRequest struct {
	Politics      bool `json:"politics" form:"politics"`
	Business      bool `json:"business" form:"business"`
	Technology    bool `json:"technology" form:"technology"`
	Sports        bool `json:"sports" form:"sports"`
	Entertainment bool `json:"entertainment" form:"entertainment"`
	Health        bool `json:"health" form:"health"`
	Education     bool `json:"education" form:"education"`
	Environment   bool `json:"environment" form:"environment"`
	Crime         bool `json:"crime" form:"crime"`
	Weather       bool `json:"weather" form:"weather"`
	Lifestyle     bool `json:"lifestyle" form:"lifestyle"`
	Food          bool `json:"food" form:"food"`
}

func (s *Server) updatePreferences(c *gin.Context) {
	var req preferencesRequest
	if err := c.Bind(&req); err != nil {
		return
	}

	prefs := storage.UserPreference{
		Politics:      req.Politics,
		Business:      req.Business,
		Technology:    req.Technology,
		Sports:        req.Sports,
		Entertainment: req.Entertainment,
		Health:        req.Health,
		Education:     req.Education,
		Environment:   req.Environment,
		Crime:         req.Crime,
		Weather:       req.Weather,
		Lifestyle:     req.Lifestyle,
		Food:          req.Food,
	}
	if err := s.store.UpdatePreferences(currentUserID(c), prefs); err != nil {
		log.Printf("preferences: update: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Preferences updated successfully!"})
}

func (s *Server) savedArticles(c *gin.Context) {
	articles, err := s.store.SavedArticles(currentUserID(c))
	if err != nil {
		log.Printf("saved: list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles, "username": currentUsername(c)})
}

func (s *Server) readingHistory(c *gin.Context) {
	history, err := s.store.RecentHistory(currentUserID(c), 50)
	if err != nil {
		log.Printf("history: list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history, "username": currentUsername(c)})
}

// readArticle serves the in-app reader: scraped body text cached on first
// read. When the scrape fails the user is sent to the original page instead
// of seeing an error.
func (s *Server) readArticle(c *gin.Context) {
	url := c.Query("url")
	title := c.DefaultQuery("title", "Article")
	if url == "" {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	userID := currentUserID(c)

	cached, err := s.store.CachedArticleByURL(url)
	if err != nil {
		log.Printf("read_article: cache lookup: %v", err)
	}
	if cached == nil {
		body, err := s.pages.FetchArticle(url)
		if err != nil {
			log.Printf("read_article: scrape %s: %v", url, err)
			c.Redirect(http.StatusFound, url)
			return
		}

		snippet := body.Content
		if len(snippet) > 500 {
			snippet = snippet[:500]
		}
		paragraphs := 0
		if body.Content != "" {
			paragraphs = strings.Count(body.Content, "\n\n") + 1
		}
		cached = &storage.CachedArticle{
			URL:      url,
			Title:    title,
			Content:  body.Content,
			ImageURL: body.ImageURL,
			Category: classify.DetectCategory(title, snippet),
			Extra: datatypes.JSONMap{
				"sourceHost": reportDomain(url),
				"paragraphs": paragraphs,
				"hasImage":   body.ImageURL != "",
			},
		}
		if err := s.store.StoreCachedArticle(cached); err != nil {
			log.Printf("read_article: cache store: %v", err)
		}
	}

	if err := s.store.AddReadingHistory(userID, cached.Title, url); err != nil {
		log.Printf("read_article: history: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"article": cached, "username": currentUsername(c)})
}

func (s *Server) fakeNewsTracker(c *gin.Context) {
	userID := currentUserID(c)

	reports, err := s.store.UserReports(userID, 50)
	if err != nil {
		log.Printf("tracker: reports: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}
	sources, err := s.store.TrendingSources(20)
	if err != nil {
		log.Printf("tracker: sources: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}
	stats, err := s.store.UserReportStats(userID)
	if err != nil {
		log.Printf("tracker: stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recentReports":   reports,
		"trendingSources": sources,
		"stats":           stats,
		"username":        currentUsername(c),
	})
}

func (s *Server) chatbotPage(c *gin.Context) {
	conversations, err := s.store.RecentChatMessages(currentUserID(c), 20)
	if err != nil {
		log.Printf("chatbot: history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": conversations, "username": currentUsername(c)})
}

func (s *Server) adminDashboard(c *gin.Context) {
	users, err := s.store.AllUsers()
	if err != nil {
		log.Printf("admin: users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}
	reports, err := s.store.AllReportsWithUsernames()
	if err != nil {
		log.Printf("admin: reports: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}
	sources, err := s.store.AllSources()
	if err != nil {
		log.Printf("admin: sources: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}
	totals, err := s.store.AdminStats()
	if err != nil {
		log.Printf("admin: totals: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":    users,
		"reports":  reports,
		"sources":  sources,
		"totals":   totals,
		"username": currentUsername(c),
	})
}
