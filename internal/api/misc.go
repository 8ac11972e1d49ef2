package api

import (
	"log"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/RonaldMark17/TrueBayan/internal/chatbot"
	"github.com/RonaldMark17/TrueBayan/internal/processor"
	"github.com/RonaldMark17/TrueBayan/internal/translate"
)

// apiNews is the open JSON feed used by external consumers.
func (s *Server) apiNews(c *gin.Context) {
	articles := s.feeds.APINews(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "success", "articles": articles})
}

type textRequest struct {
	Text string `json:"text" form:"text"`
}

func (s *Server) translateArticle(c *gin.Context) {
	var req textRequest
	if err := c.Bind(&req); err != nil {
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "text is required"})
		return
	}

	translated := s.translator.Translate(req.Text, translate.TargetFilipino)
	c.JSON(http.StatusOK, gin.H{"status": "success", "translated": translated})
}

func (s *Server) apiSpeak(c *gin.Context) {
	var req struct {
		Text string `json:"text" form:"text"`
		Lang string `json:"lang" form:"lang"`
	}
	if err := c.Bind(&req); err != nil {
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "text is required"})
		return
	}
	if req.Lang == "" {
		req.Lang = "en"
	}

	audio, err := s.speech.Synthesize(req.Text, req.Lang)
	if err != nil {
		log.Printf("speak: synthesize: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Speech synthesis failed."})
		return
	}
	c.Data(http.StatusOK, "audio/mp3", audio)
}

func (s *Server) apiSummarize(c *gin.Context) {
	var req textRequest
	if err := c.Bind(&req); err != nil {
		return
	}
	if utf8.RuneCountInString(req.Text) < 100 {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"summary": "Content is too short to summarize effectively.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"summary": processor.SummarizeAdvanced(req.Text, 3),
	})
}

func (s *Server) chat(c *gin.Context) {
	var req struct {
		Message string `json:"message" form:"message"`
	}
	if err := c.Bind(&req); err != nil {
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "message is required"})
		return
	}

	response := chatbot.Reply(req.Message)
	if err := s.store.AddChatMessage(currentUserID(c), req.Message, response); err != nil {
		log.Printf("chat: store message: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "response": response})
}
