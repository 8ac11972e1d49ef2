// Package api wires the HTTP surface: session auth, feed pages, the social
// JSON endpoints, reporting, chat, admin views, and the convenience APIs.
package api

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/RonaldMark17/TrueBayan/internal/feed"
	"github.com/RonaldMark17/TrueBayan/internal/scraper"
	"github.com/RonaldMark17/TrueBayan/internal/speech"
	"github.com/RonaldMark17/TrueBayan/internal/storage"
	"github.com/RonaldMark17/TrueBayan/internal/translate"
)

type Server struct {
	store      *storage.Store
	feeds      *feed.Service
	pages      *scraper.Fetcher
	translator *translate.Translator
	speech     *speech.Synthesizer
}

func NewServer(store *storage.Store, feeds *feed.Service, pages *scraper.Fetcher, translator *translate.Translator, synth *speech.Synthesizer) *Server {
	return &Server{
		store:      store,
		feeds:      feeds,
		pages:      pages,
		translator: translator,
		speech:     synth,
	}
}

func (s *Server) RegisterRoutes(r *gin.Engine, sessionKey string) {
	r.Use(sessions.Sessions("truebayan_session", cookie.NewStore([]byte(sessionKey))))

	r.GET("/health", s.health)

	// public
	r.GET("/", s.landing)
	r.POST("/register", s.register)
	r.POST("/login", s.login)
	r.POST("/logout", s.logout)
	r.GET("/api/news", s.apiNews)

	// convenience JSON, no login needed
	r.POST("/translate_article", s.translateArticle)
	r.POST("/api/speak", s.apiSpeak)
	r.POST("/api/summarize", s.apiSummarize)

	// authenticated pages: no session redirects to the landing page
	pages := r.Group("", s.requirePageUser())
	{
		pages.GET("/dashboard", s.dashboard)
		pages.POST("/dashboard", s.dashboardSearch)
		pages.GET("/preferences", s.getPreferences)
		pages.POST("/preferences", s.updatePreferences)
		pages.GET("/saved", s.savedArticles)
		pages.GET("/history", s.readingHistory)
		pages.GET("/read_article", s.readArticle)
		pages.GET("/fake_news_tracker", s.fakeNewsTracker)
		pages.GET("/chatbot", s.chatbotPage)
	}

	// authenticated JSON: no session is a 401
	authed := r.Group("", s.requireJSONUser())
	{
		authed.POST("/toggle_like", s.toggleLike)
		authed.POST("/check_likes", s.checkLikes)
		authed.POST("/toggle_save", s.toggleSave)
		authed.POST("/check_saved", s.checkSaved)
		authed.POST("/save", s.saveArticle)
		authed.POST("/delete_saved", s.deleteSaved)
		authed.GET("/get_user_stats", s.userStats)
		authed.POST("/track_read", s.trackRead)
		authed.POST("/report_fake", s.reportFake)
		authed.POST("/submit_fake_url", s.submitFakeURL)
		authed.POST("/chat", s.chat)
	}

	admin := r.Group("/admin", s.requireJSONUser(), s.requireAdmin())
	{
		admin.GET("/dashboard", s.adminDashboard)
		admin.POST("/blacklist_source", s.blacklistSource)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
