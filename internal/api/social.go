package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type articleRequest struct {
	Title string `json:"title" form:"title"`
	URL   string `json:"url" form:"url"`
}

func (s *Server) toggleLike(c *gin.Context) {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return
	}
	if req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "url is required"})
		return
	}

	action, err := s.store.ToggleLike(currentUserID(c), req.URL)
	if err != nil {
		log.Printf("social: toggle like: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "action": action})
}

// checkLikes reports which of the posted URLs the user has liked.
func (s *Server) checkLikes(c *gin.Context) {
	var req struct {
		URLs []string `json:"urls" form:"urls[]"`
	}
	if err := c.Bind(&req); err != nil {
		return
	}

	urls, err := s.store.LikedURLs(currentUserID(c), req.URLs)
	if err != nil {
		log.Printf("social: liked urls: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}
	if urls == nil {
		urls = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"liked_urls": urls})
}

func (s *Server) toggleSave(c *gin.Context) {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return
	}
	if req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "url is required"})
		return
	}

	action, err := s.store.ToggleSave(currentUserID(c), req.Title, req.URL)
	if err != nil {
		log.Printf("social: toggle save: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "action": action})
}

func (s *Server) checkSaved(c *gin.Context) {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return
	}

	saved, err := s.store.IsSaved(currentUserID(c), req.URL)
	if err != nil {
		log.Printf("social: check saved: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

func (s *Server) saveArticle(c *gin.Context) {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return
	}
	if req.Title == "" || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "title and url are required"})
		return
	}

	alreadySaved, err := s.store.SaveArticle(currentUserID(c), req.Title, req.URL)
	if err != nil {
		log.Printf("social: save: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}
	if alreadySaved {
		c.JSON(http.StatusOK, gin.H{"status": "info", "message": "Already saved!"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Article saved!"})
}

func (s *Server) deleteSaved(c *gin.Context) {
	var req struct {
		ArticleID uint `json:"article_id" form:"article_id"`
	}
	if err := c.Bind(&req); err != nil {
		return
	}

	deleted, err := s.store.DeleteSaved(currentUserID(c), req.ArticleID)
	if err != nil {
		log.Printf("social: delete saved: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Article not found!"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Article removed!"})
}

func (s *Server) userStats(c *gin.Context) {
	saved, liked, err := s.store.UserStats(currentUserID(c))
	if err != nil {
		log.Printf("social: stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved_count": saved, "liked_count": liked})
}

func (s *Server) trackRead(c *gin.Context) {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return
	}
	if req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "url is required"})
		return
	}
	if req.Title == "" {
		req.Title = "Article"
	}

	if err := s.store.AddReadingHistory(currentUserID(c), req.Title, req.URL); err != nil {
		log.Printf("social: track read: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
